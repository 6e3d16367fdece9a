package exchanger

import (
	"fmt"
	"net/http"

	"minedin_bot/internal/providers"
)

var requestorTable = map[string]func(*http.Client) PairRequestor{
	Exmo.Name:   func(c *http.Client) PairRequestor { return NewExmoRequestor(c) },
	Kraken.Name: func(c *http.Client) PairRequestor { return NewKrakenRequestor(c) },
}

// RequestorFor selects the pair requestor for the given exchanger.
func RequestorFor(e Exchanger, client *http.Client) (PairRequestor, error) {
	construct, ok := requestorTable[e.Name]
	if !ok {
		return nil, fmt.Errorf("%w: exchanger %q", providers.ErrUnsupportedKey, e.Name)
	}
	return construct(client), nil
}
