package pool

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"minedin_bot/internal/coin"
	"minedin_bot/internal/providers"
)

const nanopoolBaseURL = "https://api.nanopool.org/v1"

// Nanopool reports hashrate in MH/s; accounts carry H/s.
var megahash = decimal.New(1, 6)

// NanopoolRequestor fetches balance and reported hashrate from the
// nanopool API. The two calls are one logical fetch: a failure of the
// second discards the whole account.
type NanopoolRequestor struct {
	client  *http.Client
	baseURL string
	coin    coin.Coin
}

// NewNanopoolRequestor creates a requestor against the production API.
func NewNanopoolRequestor(client *http.Client, c coin.Coin) *NanopoolRequestor {
	return newNanopoolRequestor(client, c, nanopoolBaseURL)
}

func newNanopoolRequestor(client *http.Client, c coin.Coin, baseURL string) *NanopoolRequestor {
	return &NanopoolRequestor{client: client, baseURL: baseURL, coin: c}
}

type nanopoolResponse struct {
	Status bool        `json:"status"`
	Error  string      `json:"error"`
	Data   json.Number `json:"data"`
}

func (r *NanopoolRequestor) GetAccount(ctx context.Context, walletAddress string) (*Account, error) {
	if walletAddress == "" {
		return nil, providers.NewError(providers.InvalidInput, "empty wallet address")
	}
	balance, err := r.fetchNumber(ctx, "/balance/", walletAddress)
	if err != nil {
		return nil, err
	}
	hashrate, err := r.fetchNumber(ctx, "/reportedhashrate/", walletAddress)
	if err != nil {
		return nil, err
	}
	reported := hashrate.Mul(megahash)
	return &Account{
		WalletAddress:    walletAddress,
		WalletBalance:    balance,
		ReportedHashrate: &reported,
	}, nil
}

func (r *NanopoolRequestor) fetchNumber(ctx context.Context, path, walletAddress string) (decimal.Decimal, error) {
	var resp nanopoolResponse
	url := r.baseURL + "/" + nanopoolCoinPath(r.coin) + path + walletAddress
	if err := providers.GetJSON(ctx, r.client, url, &resp); err != nil {
		return decimal.Decimal{}, err
	}
	if !resp.Status {
		return decimal.Decimal{}, providers.NewError(providers.RemoteError, resp.Error)
	}
	value, err := providers.DecimalFromNumber(resp.Data)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return value, nil
}

func nanopoolCoinPath(c coin.Coin) string {
	switch c.Symbol {
	case coin.ETC.Symbol:
		return "etc"
	case coin.ZEC.Symbol:
		return "zec"
	default:
		return "eth"
	}
}
