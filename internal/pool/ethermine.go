package pool

import (
	"context"
	"encoding/json"
	"net/http"

	"minedin_bot/internal/coin"
	"minedin_bot/internal/providers"
)

const (
	ethermineBaseURL    = "https://api.ethermine.org"
	ethermineEtcBaseURL = "https://api-etc.ethermine.org"
)

// Ethermine reports unpaid balances in wei. The conversion is a
// power-of-ten shift, not a division, so all 18 decimals survive.
const weiDecimals = 18

// EthermineRequestor fetches miner stats from the ethermine API. One
// call carries both the unpaid balance and the reported hashrate.
type EthermineRequestor struct {
	client  *http.Client
	baseURL string
}

// NewEthermineRequestor creates a requestor against the production API
// for the given coin.
func NewEthermineRequestor(client *http.Client, c coin.Coin) *EthermineRequestor {
	base := ethermineBaseURL
	if c.Symbol == coin.ETC.Symbol {
		base = ethermineEtcBaseURL
	}
	return newEthermineRequestor(client, base)
}

func newEthermineRequestor(client *http.Client, baseURL string) *EthermineRequestor {
	return &EthermineRequestor{client: client, baseURL: baseURL}
}

type ethermineResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
	Data   struct {
		Unpaid           json.Number `json:"unpaid"`
		ReportedHashrate json.Number `json:"reportedHashrate"`
	} `json:"data"`
}

func (r *EthermineRequestor) GetAccount(ctx context.Context, walletAddress string) (*Account, error) {
	if walletAddress == "" {
		return nil, providers.NewError(providers.InvalidInput, "empty wallet address")
	}
	var resp ethermineResponse
	url := r.baseURL + "/miner/" + walletAddress + "/currentStats"
	if err := providers.GetJSON(ctx, r.client, url, &resp); err != nil {
		return nil, err
	}
	if resp.Status != "OK" {
		return nil, providers.NewError(providers.RemoteError, resp.Error)
	}
	unpaid, derr := providers.DecimalFromNumber(resp.Data.Unpaid)
	if derr != nil {
		return nil, derr
	}
	account := &Account{
		WalletAddress: walletAddress,
		WalletBalance: unpaid.Shift(-weiDecimals),
	}
	if resp.Data.ReportedHashrate != "" {
		rate, derr := providers.DecimalFromNumber(resp.Data.ReportedHashrate)
		if derr != nil {
			return nil, derr
		}
		account.ReportedHashrate = &rate
	}
	return account, nil
}
