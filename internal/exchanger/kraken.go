package exchanger

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"minedin_bot/internal/coin"
	"minedin_bot/internal/providers"
)

const krakenBaseURL = "https://api.kraken.com/0"

// Kraken names its USD pairs with X/Z prefixes in the result map.
var krakenPairs = map[string]string{
	coin.ETH.Symbol: "XETHZUSD",
	coin.ETC.Symbol: "XETCZUSD",
	coin.ZEC.Symbol: "XZECZUSD",
}

// KrakenRequestor fetches coin/USD quotes from the kraken public ticker.
// Buy price is the best ask, sell price the best bid.
type KrakenRequestor struct {
	client  *http.Client
	baseURL string
}

// NewKrakenRequestor creates a requestor against the production API.
func NewKrakenRequestor(client *http.Client) *KrakenRequestor {
	return newKrakenRequestor(client, krakenBaseURL)
}

func newKrakenRequestor(client *http.Client, baseURL string) *KrakenRequestor {
	return &KrakenRequestor{client: client, baseURL: baseURL}
}

type krakenResponse struct {
	Error  []string `json:"error"`
	Result map[string]struct {
		Ask []string `json:"a"`
		Bid []string `json:"b"`
	} `json:"result"`
}

func (r *KrakenRequestor) GetPair(ctx context.Context, c coin.Coin) (*CurrencyPair, error) {
	pairName, ok := krakenPairs[c.Symbol]
	if !ok {
		return nil, providers.NewError(providers.InvalidInput, fmt.Sprintf("no kraken pair for %s", c.Symbol))
	}
	url := r.baseURL + "/public/Ticker?pair=" + c.Symbol + "USD"
	var resp krakenResponse
	if err := providers.GetJSON(ctx, r.client, url, &resp); err != nil {
		return nil, err
	}
	if len(resp.Error) > 0 {
		return nil, providers.NewError(providers.RemoteError, strings.Join(resp.Error, "; "))
	}
	ticker, ok := resp.Result[pairName]
	if !ok || len(ticker.Ask) == 0 || len(ticker.Bid) == 0 {
		return nil, providers.NewError(providers.RemoteError, fmt.Sprintf("pair %s not listed", pairName))
	}
	buy, derr := providers.DecimalFromString(ticker.Ask[0])
	if derr != nil {
		return nil, derr
	}
	sell, derr := providers.DecimalFromString(ticker.Bid[0])
	if derr != nil {
		return nil, derr
	}
	return &CurrencyPair{Coin: c, BuyPrice: buy, SellPrice: sell}, nil
}
