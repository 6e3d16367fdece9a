package pool

import (
	"fmt"
	"net/http"

	"minedin_bot/internal/coin"
	"minedin_bot/internal/providers"
)

// Constructors are registered in a table instead of a switch so adding a
// pool is one entry, not another conditional branch.
var requestorTable = map[string]func(*http.Client, coin.Coin) AccountRequestor{
	Dwarfpool.Name: func(c *http.Client, cn coin.Coin) AccountRequestor { return NewDwarfpoolRequestor(c, cn) },
	Ethermine.Name: func(c *http.Client, cn coin.Coin) AccountRequestor { return NewEthermineRequestor(c, cn) },
	Nanopool.Name:  func(c *http.Client, cn coin.Coin) AccountRequestor { return NewNanopoolRequestor(c, cn) },
}

// RequestorFor selects the account requestor for the given pool and coin.
func RequestorFor(p Pool, c coin.Coin, client *http.Client) (AccountRequestor, error) {
	construct, ok := requestorTable[p.Name]
	if !ok {
		return nil, fmt.Errorf("%w: pool %q", providers.ErrUnsupportedKey, p.Name)
	}
	if !p.Serves(c) {
		return nil, fmt.Errorf("%w: pool %q does not serve %s", providers.ErrUnsupportedKey, p.Name, c.Symbol)
	}
	return construct(client, c), nil
}
