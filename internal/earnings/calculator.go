package earnings

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"minedin_bot/internal/coin"
	"minedin_bot/internal/exchanger"
	"minedin_bot/internal/pool"
	"minedin_bot/internal/reward"
)

const (
	coinScale     = 8
	currencyScale = 2
)

// MinedEarnings is the result of one balance lookup: the coin balance
// truncated to 8 places, USD amounts truncated to 2, and the projected
// reward when the pool reported a hashrate.
type MinedEarnings struct {
	CoinBalance decimal.Decimal
	UsdBalance  decimal.Decimal
	BuyPrice    decimal.Decimal
	SellPrice   decimal.Decimal
	Reward      *reward.Reward
}

// PoolError marks a failure that originated in a pool lookup.
type PoolError struct {
	Pool string
	Err  error
}

func (e *PoolError) Error() string { return fmt.Sprintf("pool %s: %v", e.Pool, e.Err) }
func (e *PoolError) Unwrap() error { return e.Err }

// ExchangerError marks a failure that originated in an exchanger lookup.
type ExchangerError struct {
	Exchanger string
	Err       error
}

func (e *ExchangerError) Error() string { return fmt.Sprintf("exchanger %s: %v", e.Exchanger, e.Err) }
func (e *ExchangerError) Unwrap() error { return e.Err }

// Calculator composes pool, exchanger and reward lookups into earnings.
// The factory funcs are fields so tests can substitute stub requestors.
type Calculator struct {
	httpClient  *http.Client
	accountsFor func(pool.Pool, coin.Coin, *http.Client) (pool.AccountRequestor, error)
	pairsFor    func(exchanger.Exchanger, *http.Client) (exchanger.PairRequestor, error)
	rewards     reward.Requestor
}

// NewCalculator wires the production factories with a shared HTTP client.
func NewCalculator(client *http.Client, rewards reward.Requestor) *Calculator {
	return &Calculator{
		httpClient:  client,
		accountsFor: pool.RequestorFor,
		pairsFor:    exchanger.RequestorFor,
		rewards:     rewards,
	}
}

// Calculate fetches the wallet balance from the pool and the current
// quote from the exchanger, then combines them. The first failing call
// fails the whole operation; no partial result is returned.
func (c *Calculator) Calculate(ctx context.Context, walletAddress string, cn coin.Coin, p pool.Pool, ex exchanger.Exchanger) (*MinedEarnings, error) {
	accounts, err := c.accountsFor(p, cn, c.httpClient)
	if err != nil {
		return nil, &PoolError{Pool: p.Name, Err: err}
	}
	pairs, err := c.pairsFor(ex, c.httpClient)
	if err != nil {
		return nil, &ExchangerError{Exchanger: ex.Name, Err: err}
	}

	account, err := accounts.GetAccount(ctx, walletAddress)
	if err != nil {
		return nil, &PoolError{Pool: p.Name, Err: err}
	}
	pair, err := pairs.GetPair(ctx, cn)
	if err != nil {
		return nil, &ExchangerError{Exchanger: ex.Name, Err: err}
	}

	result := &MinedEarnings{
		CoinBalance: account.WalletBalance.Truncate(coinScale),
		UsdBalance:  account.WalletBalance.Mul(pair.BuyPrice).Truncate(currencyScale),
		BuyPrice:    pair.BuyPrice.Truncate(currencyScale),
		SellPrice:   pair.SellPrice.Truncate(currencyScale),
	}
	if c.rewards != nil && account.ReportedHashrate != nil {
		rw, err := c.rewards.GetReward(ctx, cn, account.ReportedHashrate)
		if err != nil {
			return nil, err
		}
		result.Reward = rw
	}
	return result, nil
}
