package reward

import (
	"context"

	"github.com/shopspring/decimal"

	"minedin_bot/internal/coin"
)

// Reward projects earnings from a reported hashrate against a network
// snapshot. The per-period values are zero when no hashrate was reported.
type Reward struct {
	CoinInfo         coin.Info
	ReportedHashrate *decimal.Decimal
	PerHour          decimal.Decimal
	PerDay           decimal.Decimal
	PerWeek          decimal.Decimal
	PerMonth         decimal.Decimal
	PerYear          decimal.Decimal
}

// Requestor estimates the reward for a reported hashrate in H/s.
// A nil hashrate still returns the coin info snapshot.
type Requestor interface {
	GetReward(ctx context.Context, c coin.Coin, hashrate *decimal.Decimal) (*Reward, error)
}
