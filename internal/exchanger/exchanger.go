package exchanger

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"minedin_bot/internal/coin"
)

// Exchanger is one entry of the static exchanger catalog.
type Exchanger struct {
	Name    string
	Website string
}

var (
	Exmo   = Exchanger{Name: "exmo", Website: "https://exmo.com"}
	Kraken = Exchanger{Name: "kraken", Website: "https://kraken.com"}
)

var catalog = []Exchanger{Exmo, Kraken}

// All returns every known exchanger, ordered alphabetically by name.
func All() []Exchanger {
	out := make([]Exchanger, len(catalog))
	copy(out, catalog)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ByName resolves an exchanger by its name.
func ByName(name string) (Exchanger, bool) {
	for _, e := range catalog {
		if e.Name == name {
			return e, true
		}
	}
	return Exchanger{}, false
}

// CurrencyPair is a coin/USD quote snapshotted from one exchanger.
type CurrencyPair struct {
	Coin      coin.Coin
	BuyPrice  decimal.Decimal
	SellPrice decimal.Decimal
}

// PairRequestor fetches the current coin/USD quote from an exchanger.
type PairRequestor interface {
	GetPair(ctx context.Context, c coin.Coin) (*CurrencyPair, error)
}
