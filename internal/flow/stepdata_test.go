package flow

import (
	"testing"

	"github.com/stretchr/testify/require"

	"minedin_bot/internal/coin"
	"minedin_bot/internal/exchanger"
	"minedin_bot/internal/pool"
)

func TestStepTokenRoundTrip(t *testing.T) {
	for _, c := range coin.All() {
		for _, p := range pool.ForCoin(c) {
			for _, e := range exchanger.All() {
				data := StepData{Step: StepComplete, Coin: c, Pool: p, Exchanger: e}
				decoded, err := ParseStepToken(data.Token())
				require.NoError(t, err)
				require.Equal(t, data, decoded)
			}
		}
	}
}

func TestParseStepTokenSteps(t *testing.T) {
	data, err := ParseStepToken("ETH")
	require.NoError(t, err)
	require.Equal(t, StepAwaitingPool, data.Step)
	require.Equal(t, coin.ETH, data.Coin)

	data, err = ParseStepToken("ETH_nanopool")
	require.NoError(t, err)
	require.Equal(t, StepAwaitingExchanger, data.Step)
	require.Equal(t, pool.Nanopool, data.Pool)

	data, err = ParseStepToken("ETH_nanopool_exmo")
	require.NoError(t, err)
	require.Equal(t, StepComplete, data.Step)
	require.Equal(t, exchanger.Exmo, data.Exchanger)
}

func TestParseStepTokenRejectsUnknownSegments(t *testing.T) {
	cases := []string{
		"",
		"DOGE",
		"ETH_suprnova",
		"ETH_nanopool_binance",
		"ETH_nanopool_exmo_extra",
	}
	for _, token := range cases {
		_, err := ParseStepToken(token)
		require.ErrorIs(t, err, ErrInvalidStepToken, "token %q", token)
	}
}
