package reward

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"minedin_bot/internal/coin"
	"minedin_bot/internal/providers"
)

const whatToMineBaseURL = "https://whattomine.com"

// whattomine endpoint IDs per coin.
var whatToMineCoinIDs = map[string]int{
	coin.ETH.Symbol: 151,
	coin.ETC.Symbol: 162,
	coin.ZEC.Symbol: 166,
}

var (
	// whattomine normalizes estimated_rewards to an 84 MH/s rig. This is
	// an upstream quirk, not a universal constant.
	whatToMineBaseMegahashes = decimal.NewFromInt(84)

	hoursPerDay  = decimal.NewFromInt(24)
	daysPerWeek  = decimal.NewFromInt(7)
	daysPerMonth = decimal.NewFromInt(30)
	daysPerYear  = decimal.NewFromInt(365)
)

const (
	megahashDecimals = 6
	// Reward values truncate toward zero at this scale.
	rewardScale int32 = 6
)

// snapshot is one cached upstream response.
type snapshot struct {
	info            coin.Info
	estimatedPerDay decimal.Decimal
	expiresAt       time.Time
}

// WhatToMineRequestor estimates rewards from whattomine network stats.
// Responses are cached per coin until the upstream timestamp plus the
// configured TTL; concurrent refreshes race benignly, last writer wins.
type WhatToMineRequestor struct {
	client  *http.Client
	baseURL string
	ttl     time.Duration
	now     func() time.Time

	mu    sync.RWMutex
	cache map[string]snapshot
}

// NewWhatToMineRequestor creates a requestor against the production API.
func NewWhatToMineRequestor(client *http.Client, ttl time.Duration) *WhatToMineRequestor {
	return newWhatToMineRequestor(client, ttl, whatToMineBaseURL, time.Now)
}

func newWhatToMineRequestor(client *http.Client, ttl time.Duration, baseURL string, now func() time.Time) *WhatToMineRequestor {
	return &WhatToMineRequestor{
		client:  client,
		baseURL: baseURL,
		ttl:     ttl,
		now:     now,
		cache:   make(map[string]snapshot),
	}
}

type whatToMineResponse struct {
	Tag              string      `json:"tag"`
	BlockTime        string      `json:"block_time"`
	BlockReward      json.Number `json:"block_reward"`
	LastBlock        json.Number `json:"last_block"`
	Difficulty       json.Number `json:"difficulty"`
	NetHash          json.Number `json:"nethash"`
	EstimatedRewards string      `json:"estimated_rewards"`
	Timestamp        int64       `json:"timestamp"`
}

func (r *WhatToMineRequestor) GetReward(ctx context.Context, c coin.Coin, hashrate *decimal.Decimal) (*Reward, error) {
	snap, err := r.getOrRefresh(ctx, c)
	if err != nil {
		return nil, err
	}
	reward := &Reward{CoinInfo: snap.info}
	if hashrate == nil {
		return reward, nil
	}
	// QuoRem keeps the quotient truncated toward zero at the reward
	// scale; a plain Div would round half-up before truncation and
	// could overstate the estimate.
	perDay, _ := hashrate.Shift(-megahashDecimals).
		Mul(snap.estimatedPerDay).
		QuoRem(whatToMineBaseMegahashes, rewardScale)
	perHour, _ := perDay.QuoRem(hoursPerDay, rewardScale)
	reward.ReportedHashrate = hashrate
	reward.PerDay = perDay
	reward.PerHour = perHour
	reward.PerWeek = perDay.Mul(daysPerWeek)
	reward.PerMonth = perDay.Mul(daysPerMonth)
	reward.PerYear = perDay.Mul(daysPerYear)
	return reward, nil
}

// getOrRefresh returns the cached snapshot for c while it is fresh and
// refetches it otherwise, overwriting whatever is stored.
func (r *WhatToMineRequestor) getOrRefresh(ctx context.Context, c coin.Coin) (snapshot, error) {
	r.mu.RLock()
	snap, ok := r.cache[c.Symbol]
	r.mu.RUnlock()
	if ok && r.now().Before(snap.expiresAt) {
		return snap, nil
	}

	snap, err := r.fetch(ctx, c)
	if err != nil {
		return snapshot{}, err
	}
	r.mu.Lock()
	r.cache[c.Symbol] = snap
	r.mu.Unlock()
	return snap, nil
}

func (r *WhatToMineRequestor) fetch(ctx context.Context, c coin.Coin) (snapshot, error) {
	id, ok := whatToMineCoinIDs[c.Symbol]
	if !ok {
		return snapshot{}, providers.NewError(providers.InvalidInput, fmt.Sprintf("no whattomine endpoint for %s", c.Symbol))
	}
	var resp whatToMineResponse
	url := fmt.Sprintf("%s/coins/%d.json", r.baseURL, id)
	if err := providers.GetJSON(ctx, r.client, url, &resp); err != nil {
		return snapshot{}, err
	}

	blockTime, derr := providers.DecimalFromString(resp.BlockTime)
	if derr != nil {
		return snapshot{}, derr
	}
	blockReward, derr := providers.DecimalFromNumber(resp.BlockReward)
	if derr != nil {
		return snapshot{}, derr
	}
	lastBlock, derr := providers.DecimalFromNumber(resp.LastBlock)
	if derr != nil {
		return snapshot{}, derr
	}
	difficulty, derr := providers.DecimalFromNumber(resp.Difficulty)
	if derr != nil {
		return snapshot{}, derr
	}
	netHash, derr := providers.DecimalFromNumber(resp.NetHash)
	if derr != nil {
		return snapshot{}, derr
	}
	estimated, derr := providers.DecimalFromString(resp.EstimatedRewards)
	if derr != nil {
		return snapshot{}, derr
	}

	return snapshot{
		info: coin.Info{
			Coin:            c,
			BlockTime:       blockTime,
			BlockReward:     blockReward,
			BlockCount:      lastBlock,
			Difficulty:      difficulty,
			NetworkHashrate: netHash,
		},
		estimatedPerDay: estimated,
		expiresAt:       time.Unix(resp.Timestamp, 0).Add(r.ttl),
	}, nil
}
