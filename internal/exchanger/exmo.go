package exchanger

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"minedin_bot/internal/coin"
	"minedin_bot/internal/providers"
)

const exmoBaseURL = "https://api.exmo.com/v1"

// ExmoRequestor fetches coin/USD quotes from the exmo ticker. The ticker
// returns every pair keyed by name, with string prices; errors come back
// as a {"result": false, "error": ...} body.
type ExmoRequestor struct {
	client  *http.Client
	baseURL string
}

// NewExmoRequestor creates a requestor against the production API.
func NewExmoRequestor(client *http.Client) *ExmoRequestor {
	return newExmoRequestor(client, exmoBaseURL)
}

func newExmoRequestor(client *http.Client, baseURL string) *ExmoRequestor {
	return &ExmoRequestor{client: client, baseURL: baseURL}
}

type exmoTicker struct {
	BuyPrice  string `json:"buy_price"`
	SellPrice string `json:"sell_price"`
}

func (r *ExmoRequestor) GetPair(ctx context.Context, c coin.Coin) (*CurrencyPair, error) {
	var raw map[string]json.RawMessage
	if err := providers.GetJSON(ctx, r.client, r.baseURL+"/ticker/", &raw); err != nil {
		return nil, err
	}
	if rawErr, ok := raw["error"]; ok {
		var remote string
		if json.Unmarshal(rawErr, &remote) == nil && remote != "" {
			return nil, providers.NewError(providers.RemoteError, remote)
		}
	}
	pairName := c.Symbol + "_USD"
	rawPair, ok := raw[pairName]
	if !ok {
		return nil, providers.NewError(providers.RemoteError, fmt.Sprintf("pair %s not listed", pairName))
	}
	var ticker exmoTicker
	if err := json.Unmarshal(rawPair, &ticker); err != nil {
		return nil, providers.WrapError(providers.MalformedResponse, err)
	}
	buy, derr := providers.DecimalFromString(ticker.BuyPrice)
	if derr != nil {
		return nil, derr
	}
	sell, derr := providers.DecimalFromString(ticker.SellPrice)
	if derr != nil {
		return nil, derr
	}
	return &CurrencyPair{Coin: c, BuyPrice: buy, SellPrice: sell}, nil
}
