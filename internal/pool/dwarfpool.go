package pool

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"minedin_bot/internal/coin"
	"minedin_bot/internal/providers"
)

const dwarfpoolBaseURL = "http://dwarfpool.com"

// DwarfpoolRequestor fetches wallet state from the dwarfpool API. The
// balance arrives as a JSON string and the total hashrate in MH/s.
type DwarfpoolRequestor struct {
	client  *http.Client
	baseURL string
	coin    coin.Coin
}

// NewDwarfpoolRequestor creates a requestor against the production API.
func NewDwarfpoolRequestor(client *http.Client, c coin.Coin) *DwarfpoolRequestor {
	return newDwarfpoolRequestor(client, c, dwarfpoolBaseURL)
}

func newDwarfpoolRequestor(client *http.Client, c coin.Coin, baseURL string) *DwarfpoolRequestor {
	return &DwarfpoolRequestor{client: client, baseURL: baseURL, coin: c}
}

type dwarfpoolResponse struct {
	Error         bool        `json:"error"`
	ErrorCode     string      `json:"error_code"`
	Wallet        string      `json:"wallet"`
	WalletBalance string      `json:"wallet_balance"`
	TotalHashrate json.Number `json:"total_hashrate"`
}

func (r *DwarfpoolRequestor) GetAccount(ctx context.Context, walletAddress string) (*Account, error) {
	if walletAddress == "" {
		return nil, providers.NewError(providers.InvalidInput, "empty wallet address")
	}
	url := r.baseURL + "/" + strings.ToLower(r.coin.Symbol) + "/api?wallet=" + walletAddress
	var resp dwarfpoolResponse
	if err := providers.GetJSON(ctx, r.client, url, &resp); err != nil {
		return nil, err
	}
	if resp.Error {
		return nil, providers.NewError(providers.RemoteError, resp.ErrorCode)
	}
	balance, derr := providers.DecimalFromString(resp.WalletBalance)
	if derr != nil {
		return nil, derr
	}
	account := &Account{WalletAddress: walletAddress, WalletBalance: balance}
	if resp.TotalHashrate != "" {
		rate, derr := providers.DecimalFromNumber(resp.TotalHashrate)
		if derr != nil {
			return nil, derr
		}
		reported := rate.Mul(megahash)
		account.ReportedHashrate = &reported
	}
	return account, nil
}
