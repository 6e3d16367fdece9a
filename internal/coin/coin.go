package coin

import "github.com/shopspring/decimal"

// Coin is one entry of the static coin catalog.
type Coin struct {
	Symbol string
	Name   string
}

var (
	ETH = Coin{Symbol: "ETH", Name: "Ethereum"}
	ETC = Coin{Symbol: "ETC", Name: "Ethereum Classic"}
	ZEC = Coin{Symbol: "ZEC", Name: "Zcash"}
)

var catalog = []Coin{ETH, ETC, ZEC}

// All returns the supported coins in catalog order.
func All() []Coin {
	out := make([]Coin, len(catalog))
	copy(out, catalog)
	return out
}

// BySymbol resolves a coin by its symbol.
func BySymbol(symbol string) (Coin, bool) {
	for _, c := range catalog {
		if c.Symbol == symbol {
			return c, true
		}
	}
	return Coin{}, false
}

// Info is a point-in-time snapshot of network statistics for one coin,
// as reported by a reward-estimation provider.
type Info struct {
	Coin            Coin
	BlockTime       decimal.Decimal
	BlockReward     decimal.Decimal
	BlockCount      decimal.Decimal
	Difficulty      decimal.Decimal
	NetworkHashrate decimal.Decimal
}
