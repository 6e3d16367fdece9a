package pool

import (
	"sort"

	"minedin_bot/internal/coin"
)

// Pool is one entry of the static mining-pool catalog.
type Pool struct {
	Name    string
	Website string
	Coins   []coin.Coin
}

var (
	Dwarfpool = Pool{
		Name:    "dwarfpool",
		Website: "https://dwarfpool.com",
		Coins:   []coin.Coin{coin.ETH, coin.ETC, coin.ZEC},
	}
	Ethermine = Pool{
		Name:    "ethermine",
		Website: "https://ethermine.org",
		Coins:   []coin.Coin{coin.ETH, coin.ETC},
	}
	Nanopool = Pool{
		Name:    "nanopool",
		Website: "https://nanopool.org",
		Coins:   []coin.Coin{coin.ETH, coin.ETC, coin.ZEC},
	}
)

var catalog = []Pool{Dwarfpool, Ethermine, Nanopool}

// All returns every known pool.
func All() []Pool {
	out := make([]Pool, len(catalog))
	copy(out, catalog)
	return out
}

// ByName resolves a pool by its name.
func ByName(name string) (Pool, bool) {
	for _, p := range catalog {
		if p.Name == name {
			return p, true
		}
	}
	return Pool{}, false
}

// Serves reports whether the pool mines the given coin.
func (p Pool) Serves(c coin.Coin) bool {
	for _, pc := range p.Coins {
		if pc.Symbol == c.Symbol {
			return true
		}
	}
	return false
}

// ForCoin returns the pools serving c, ordered alphabetically by name.
func ForCoin(c coin.Coin) []Pool {
	var out []Pool
	for _, p := range catalog {
		if p.Serves(c) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
