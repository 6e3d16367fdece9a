package earnings

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"minedin_bot/internal/coin"
	"minedin_bot/internal/exchanger"
	"minedin_bot/internal/pool"
	"minedin_bot/internal/providers"
	"minedin_bot/internal/reward"
)

type stubAccounts struct {
	account *pool.Account
	err     error
}

func (s *stubAccounts) GetAccount(ctx context.Context, walletAddress string) (*pool.Account, error) {
	return s.account, s.err
}

type stubPairs struct {
	pair *exchanger.CurrencyPair
	err  error
}

func (s *stubPairs) GetPair(ctx context.Context, c coin.Coin) (*exchanger.CurrencyPair, error) {
	return s.pair, s.err
}

type stubRewards struct {
	reward *reward.Reward
	err    error
}

func (s *stubRewards) GetReward(ctx context.Context, c coin.Coin, hashrate *decimal.Decimal) (*reward.Reward, error) {
	return s.reward, s.err
}

func newStubCalculator(accounts pool.AccountRequestor, pairs exchanger.PairRequestor, rewards reward.Requestor) *Calculator {
	return &Calculator{
		httpClient: &http.Client{},
		accountsFor: func(pool.Pool, coin.Coin, *http.Client) (pool.AccountRequestor, error) {
			return accounts, nil
		},
		pairsFor: func(exchanger.Exchanger, *http.Client) (exchanger.PairRequestor, error) {
			return pairs, nil
		},
		rewards: rewards,
	}
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestCalculateTruncatesDownward(t *testing.T) {
	accounts := &stubAccounts{account: &pool.Account{
		WalletAddress: "0xabc",
		WalletBalance: mustDecimal(t, "12.345678905"),
	}}
	pairs := &stubPairs{pair: &exchanger.CurrencyPair{
		Coin:      coin.ETH,
		BuyPrice:  mustDecimal(t, "694.999"),
		SellPrice: mustDecimal(t, "693.999"),
	}}
	calc := newStubCalculator(accounts, pairs, nil)

	result, err := calc.Calculate(context.Background(), "0xabc", coin.ETH, pool.Nanopool, exchanger.Exmo)
	require.NoError(t, err)

	// Coin amounts truncate at 8 places, never round up.
	require.Equal(t, "12.34567890", result.CoinBalance.StringFixed(8))
	// Currency amounts truncate at 2 places.
	require.Equal(t, "694.99", result.BuyPrice.StringFixed(2))
	require.Equal(t, "693.99", result.SellPrice.StringFixed(2))
	require.True(t, result.CoinBalance.Equal(mustDecimal(t, "12.3456789")))
}

func TestCalculateUsdTruncation(t *testing.T) {
	accounts := &stubAccounts{account: &pool.Account{
		WalletAddress: "0xabc",
		WalletBalance: decimal.NewFromInt(1),
	}}
	pairs := &stubPairs{pair: &exchanger.CurrencyPair{
		Coin:      coin.ETH,
		BuyPrice:  mustDecimal(t, "101.999"),
		SellPrice: mustDecimal(t, "101.5"),
	}}
	calc := newStubCalculator(accounts, pairs, nil)

	result, err := calc.Calculate(context.Background(), "0xabc", coin.ETH, pool.Nanopool, exchanger.Exmo)
	require.NoError(t, err)
	require.Equal(t, "101.99", result.UsdBalance.StringFixed(2))
}

func TestCalculatePoolFailurePropagates(t *testing.T) {
	accounts := &stubAccounts{err: providers.NewError(providers.RemoteError, "BAD_WALLET")}
	pairs := &stubPairs{pair: &exchanger.CurrencyPair{Coin: coin.ETH}}
	calc := newStubCalculator(accounts, pairs, nil)

	_, err := calc.Calculate(context.Background(), "0xabc", coin.ETH, pool.Nanopool, exchanger.Exmo)

	var poolErr *PoolError
	require.ErrorAs(t, err, &poolErr)
	require.Equal(t, pool.Nanopool.Name, poolErr.Pool)

	var perr *providers.Error
	require.ErrorAs(t, err, &perr)
	require.Equal(t, "BAD_WALLET", perr.Detail)
}

func TestCalculateExchangerFailurePropagates(t *testing.T) {
	accounts := &stubAccounts{account: &pool.Account{
		WalletAddress: "0xabc",
		WalletBalance: decimal.NewFromInt(1),
	}}
	pairs := &stubPairs{err: providers.NewError(providers.TransportError, "connection refused")}
	calc := newStubCalculator(accounts, pairs, nil)

	_, err := calc.Calculate(context.Background(), "0xabc", coin.ETH, pool.Nanopool, exchanger.Exmo)

	var exchErr *ExchangerError
	require.ErrorAs(t, err, &exchErr)
	require.Equal(t, exchanger.Exmo.Name, exchErr.Exchanger)
}

func TestCalculateIncludesRewardWhenHashrateReported(t *testing.T) {
	hashrate := decimal.NewFromInt(84000000)
	accounts := &stubAccounts{account: &pool.Account{
		WalletAddress:    "0xabc",
		WalletBalance:    decimal.NewFromInt(1),
		ReportedHashrate: &hashrate,
	}}
	pairs := &stubPairs{pair: &exchanger.CurrencyPair{
		Coin:     coin.ETH,
		BuyPrice: decimal.NewFromInt(700),
	}}
	rewards := &stubRewards{reward: &reward.Reward{
		ReportedHashrate: &hashrate,
		PerDay:           mustDecimal(t, "0.0132"),
	}}
	calc := newStubCalculator(accounts, pairs, rewards)

	result, err := calc.Calculate(context.Background(), "0xabc", coin.ETH, pool.Nanopool, exchanger.Exmo)
	require.NoError(t, err)
	require.NotNil(t, result.Reward)
	require.Equal(t, "0.0132", result.Reward.PerDay.String())
}

func TestCalculateRewardFailureFailsWholeOperation(t *testing.T) {
	hashrate := decimal.NewFromInt(84000000)
	accounts := &stubAccounts{account: &pool.Account{
		WalletAddress:    "0xabc",
		WalletBalance:    decimal.NewFromInt(1),
		ReportedHashrate: &hashrate,
	}}
	pairs := &stubPairs{pair: &exchanger.CurrencyPair{Coin: coin.ETH, BuyPrice: decimal.NewFromInt(700)}}
	rewards := &stubRewards{err: errors.New("whattomine down")}
	calc := newStubCalculator(accounts, pairs, rewards)

	result, err := calc.Calculate(context.Background(), "0xabc", coin.ETH, pool.Nanopool, exchanger.Exmo)
	require.Error(t, err)
	require.Nil(t, result)
}
