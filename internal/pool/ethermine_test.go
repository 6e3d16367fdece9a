package pool

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"minedin_bot/internal/providers"
)

func TestEthermineGetAccount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/miner/0xabc/currentStats", r.URL.Path)
		w.Write([]byte(`{"status": "OK", "data": {"unpaid": 1500000000000000000, "reportedHashrate": 84000000}}`))
	}))
	defer server.Close()

	requestor := newEthermineRequestor(server.Client(), server.URL)
	account, err := requestor.GetAccount(context.Background(), "0xabc")
	require.NoError(t, err)

	require.Equal(t, "1.5", account.WalletBalance.String())
	require.NotNil(t, account.ReportedHashrate)
	require.Equal(t, "84000000", account.ReportedHashrate.String())
}

func TestEthermineWeiConversionKeepsAllDecimals(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "OK", "data": {"unpaid": 1999999999999999999}}`))
	}))
	defer server.Close()

	requestor := newEthermineRequestor(server.Client(), server.URL)
	account, err := requestor.GetAccount(context.Background(), "0xabc")
	require.NoError(t, err)

	// 18 significant decimals must survive the wei shift intact; a
	// division at default precision would round this up to 2.
	require.Equal(t, "1.999999999999999999", account.WalletBalance.String())
	require.Equal(t, "1.99999999", account.WalletBalance.Truncate(8).StringFixed(8))
}

func TestEthermineRemoteError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ERROR", "error": "Invalid address"}`))
	}))
	defer server.Close()

	requestor := newEthermineRequestor(server.Client(), server.URL)
	_, err := requestor.GetAccount(context.Background(), "0xabc")

	var perr *providers.Error
	require.ErrorAs(t, err, &perr)
	require.Equal(t, providers.RemoteError, perr.Kind)
	require.Equal(t, "Invalid address", perr.Detail)
}
