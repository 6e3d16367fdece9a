package pool

import (
	"context"

	"github.com/shopspring/decimal"
)

// Account is a pool-side view of one wallet, built from a single logical
// fetch and immutable afterwards. ReportedHashrate is in H/s and nil when
// the pool exposes no hashrate endpoint.
type Account struct {
	WalletAddress    string
	WalletBalance    decimal.Decimal
	ReportedHashrate *decimal.Decimal
}

// AccountRequestor fetches the account state of one wallet from a pool.
// Implementations issue one logical fetch; some pools need two sequential
// calls (balance, then hashrate) and both must succeed.
type AccountRequestor interface {
	GetAccount(ctx context.Context, walletAddress string) (*Account, error)
}
