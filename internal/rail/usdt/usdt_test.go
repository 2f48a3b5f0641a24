package usdt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AlexZinkM/rail-wallet/internal/model"
	"github.com/AlexZinkM/rail-wallet/internal/rail"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const recipient = "0x52908400098527886E0F7030069857D2E4169EE7"

func TestNew_RequiresKeyAndBase(t *testing.T) {
	assert.True(t, New(Config{APIKey: "k"}, nil).Info().Simulated)
	assert.True(t, New(Config{BaseURL: "https://x"}, nil).Info().Simulated)
	assert.True(t, New(Config{APIKey: "k", BaseURL: "https://x", UseSimulation: true}, nil).Info().Simulated)
	assert.False(t, New(Config{APIKey: "k", BaseURL: "https://x"}, nil).Info().Simulated)
}

func TestSimulation_TransferDebitsSeed(t *testing.T) {
	ctx := context.Background()
	sim := NewSimulation(rail.NewLedger(), "ethereum")

	w, err := sim.CreateWallet(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "500.00", w.Balance)

	res, err := sim.CreateTransfer(ctx, rail.TransferRequest{
		WalletRef:      w.Ref,
		ToAddress:      recipient,
		Amount:         "100.00",
		IdempotencyKey: "usdt-u1-1",
	})
	require.NoError(t, err)
	assert.Equal(t, model.TransferSimulated, res.Status)

	bal, err := sim.GetBalance(ctx, w.Ref)
	require.NoError(t, err)
	assert.Equal(t, "400.00", bal)
}

func TestSimulation_OverdraftClampsToZero(t *testing.T) {
	ctx := context.Background()
	sim := NewSimulation(rail.NewLedger(), "ethereum")

	w, err := sim.CreateWallet(ctx, "u1")
	require.NoError(t, err)

	res, err := sim.CreateTransfer(ctx, rail.TransferRequest{
		WalletRef:      w.Ref,
		ToAddress:      recipient,
		Amount:         "750.00",
		IdempotencyKey: "usdt-u1-2",
	})
	require.NoError(t, err)
	assert.Equal(t, model.TransferSimulated, res.Status)

	bal, err := sim.GetBalance(ctx, w.Ref)
	require.NoError(t, err)
	assert.Equal(t, "0.00", bal)
}

func TestSimulation_SeparateInstancesDoNotShareState(t *testing.T) {
	ctx := context.Background()
	a := NewSimulation(rail.NewLedger(), "ethereum")
	b := NewSimulation(rail.NewLedger(), "ethereum")

	w, err := a.CreateWallet(ctx, "u1")
	require.NoError(t, err)
	_, err = a.CreateTransfer(ctx, rail.TransferRequest{WalletRef: w.Ref, ToAddress: recipient, Amount: "1", IdempotencyKey: "k"})
	require.NoError(t, err)

	// b has never seen the wallet and reopens it at the seed
	bal, err := b.GetBalance(ctx, w.Ref)
	require.NoError(t, err)
	assert.Equal(t, "500.00", bal)

	bal, err = a.GetBalance(ctx, w.Ref)
	require.NoError(t, err)
	assert.Equal(t, "499.00", bal)
}

func TestSimulation_TransferLookup(t *testing.T) {
	ctx := context.Background()
	sim := NewSimulation(rail.NewLedger(), "ethereum")
	w, err := sim.CreateWallet(ctx, "u1")
	require.NoError(t, err)

	res, err := sim.CreateTransfer(ctx, rail.TransferRequest{WalletRef: w.Ref, ToAddress: recipient, Amount: "2", IdempotencyKey: "usdt-u1-7"})
	require.NoError(t, err)

	got, err := sim.GetTransfer(ctx, res.ProviderRef)
	require.NoError(t, err)
	assert.Equal(t, *res, *got)

	found, err := sim.FindTransfer(ctx, "usdt-u1-7")
	require.NoError(t, err)
	assert.Equal(t, res.ProviderRef, found.ProviderRef)

	_, err = sim.FindTransfer(ctx, "usdt-u1-8")
	assert.True(t, rail.IsDefinitive(err))
	_, err = sim.GetTransfer(ctx, "sim-transfer-missing")
	assert.True(t, rail.IsDefinitive(err))
}

func TestSimulation_UnprefixedWalletIsRejected(t *testing.T) {
	sim := NewSimulation(rail.NewLedger(), "ethereum")
	_, err := sim.GetBalance(context.Background(), "0xdeposit")
	assert.True(t, rail.IsDefinitive(err))
	_, err = sim.GetBalance(context.Background(), "usdt-sim-")
	assert.True(t, rail.IsDefinitive(err))
}

func TestClient_CreateTransfer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transaction/send", r.URL.Path)
		assert.Equal(t, "usdt-u1-5", r.Header.Get("Idempotency-Key"))
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"transaction_id":"t-9","hash":"0xfeed","status":"pending"}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "key", BaseURL: srv.URL, Chain: "ethereum"})
	res, err := c.CreateTransfer(context.Background(), rail.TransferRequest{
		WalletRef:      "0xfrom",
		ToAddress:      recipient,
		Amount:         "5.000000",
		IdempotencyKey: "usdt-u1-5",
	})
	require.NoError(t, err)
	assert.Equal(t, "t-9", res.ProviderRef)
	assert.Equal(t, "0xfeed", res.TxHash)
	assert.Equal(t, model.TransferPending, res.Status)
	assert.Equal(t, "pending", res.RawStatus)
}

func TestClient_GetTransfer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/transaction/t-9", r.URL.Path)
		_, _ = w.Write([]byte(`{"tx_hash":"0xfeed","status":"confirmed"}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "key", BaseURL: srv.URL})
	res, err := c.GetTransfer(context.Background(), "t-9")
	require.NoError(t, err)
	assert.Equal(t, "t-9", res.ProviderRef)
	assert.Equal(t, "0xfeed", res.TxHash)
	assert.Equal(t, "confirmed", res.RawStatus)
}

func TestClient_WalletAndBalance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/wallet/create":
			_, _ = w.Write([]byte(`{"address":"0xdeposit"}`))
		case "/wallet/balance/0xdeposit":
			_, _ = w.Write([]byte(`{"balance":"12.5"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "key", BaseURL: srv.URL})
	w, err := c.CreateWallet(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "0xdeposit", w.Ref)
	assert.Equal(t, "0", w.Balance)

	bal, err := c.GetBalance(context.Background(), w.Ref)
	require.NoError(t, err)
	assert.Equal(t, "12.5", bal)
}
