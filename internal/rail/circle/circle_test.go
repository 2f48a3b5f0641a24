package circle

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AlexZinkM/rail-wallet/internal/model"
	"github.com/AlexZinkM/rail-wallet/internal/rail"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SelectsVariant(t *testing.T) {
	ledger := rail.NewLedger()

	tests := []struct {
		name    string
		cfg     Config
		wantSim bool
	}{
		{name: "no key", cfg: Config{}, wantSim: true},
		{name: "forced", cfg: Config{APIKey: "k", UseSimulation: true}, wantSim: true},
		{name: "live", cfg: Config{APIKey: "k"}, wantSim: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(tt.cfg, ledger)
			assert.Equal(t, tt.wantSim, r.Info().Simulated)
			assert.Equal(t, "ETH", r.Info().Chain)
		})
	}
}

func TestSimulation_SeedsAndDebits(t *testing.T) {
	ctx := context.Background()
	sim := NewSimulation(rail.NewLedger(), "ETH")

	w, err := sim.CreateWallet(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "sim-wallet-u1", w.Ref)
	assert.Equal(t, "1000.00", w.Balance)

	res, err := sim.CreateTransfer(ctx, rail.TransferRequest{
		WalletRef:      w.Ref,
		ToAddress:      "0x52908400098527886E0F7030069857D2E4169EE7",
		Amount:         "250.5",
		IdempotencyKey: "usdc-u1-1",
	})
	require.NoError(t, err)
	assert.Equal(t, model.TransferSimulated, res.Status)
	assert.Contains(t, res.TxHash, "0xsim")

	bal, err := sim.GetBalance(ctx, w.Ref)
	require.NoError(t, err)
	assert.Equal(t, "749.50", bal)

	// a second init must not reseed
	w, err = sim.CreateWallet(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "749.50", w.Balance)
}

func TestSimulation_UnknownWalletIsRejected(t *testing.T) {
	sim := NewSimulation(nil, "ETH")
	_, err := sim.CreateTransfer(context.Background(), rail.TransferRequest{WalletRef: "nope", Amount: "1", IdempotencyKey: "k"})
	assert.True(t, rail.IsDefinitive(err))
}

func TestClient_CreateTransfer(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/transfers", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"data":{"id":"tr-1","status":"complete","transactionHash":"0xabc"}}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL, Chain: "MATIC"})
	res, err := c.CreateTransfer(context.Background(), rail.TransferRequest{
		WalletRef:      "1000216185",
		ToAddress:      "0x52908400098527886E0F7030069857D2E4169EE7",
		Amount:         "10.000000",
		IdempotencyKey: "usdc-u1-1700000000000",
	})
	require.NoError(t, err)

	assert.Equal(t, "tr-1", res.ProviderRef)
	assert.Equal(t, "0xabc", res.TxHash)
	assert.Equal(t, model.TransferCompleted, res.Status)
	assert.Equal(t, IdempotencyUUID("usdc-u1-1700000000000"), got["idempotencyKey"])
	assert.Equal(t, "MATIC", got["destination"].(map[string]any)["chain"])
	assert.Equal(t, "1000216185", got["source"].(map[string]any)["id"])
}

func TestClient_CreateTransfer_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":2,"message":"Invalid destination address"}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL, Chain: "ETH"})
	_, err := c.CreateTransfer(context.Background(), rail.TransferRequest{WalletRef: "w", Amount: "1", IdempotencyKey: "k"})

	pe, ok := rail.AsProviderError(err)
	require.True(t, ok)
	assert.True(t, pe.Definitive)
	assert.Equal(t, "Invalid destination address", pe.Message)
}

func TestClient_CreateTransfer_ServerErrorIsAmbiguous(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL, Chain: "ETH"})
	_, err := c.CreateTransfer(context.Background(), rail.TransferRequest{WalletRef: "w", Amount: "1", IdempotencyKey: "k"})

	pe, ok := rail.AsProviderError(err)
	require.True(t, ok)
	assert.False(t, pe.Definitive)
}

func TestClient_GetTransfer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/transfers/tr-1", r.URL.Path)
		assert.Equal(t, "Bearer k", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"data":{"id":"tr-1","status":"failed","errorCode":"insufficient_funds"}}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL, Chain: "ETH"})
	res, err := c.GetTransfer(context.Background(), "tr-1")
	require.NoError(t, err)
	assert.Equal(t, "tr-1", res.ProviderRef)
	assert.Equal(t, model.TransferFailed, res.Status)
}

func TestClient_GetTransfer_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":404,"message":"Transfer not found"}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL, Chain: "ETH"})
	_, err := c.GetTransfer(context.Background(), "missing")
	assert.True(t, rail.IsDefinitive(err))
}

func TestSimulation_ReopensPersistedWallet(t *testing.T) {
	ctx := context.Background()
	before := NewSimulation(rail.NewLedger(), "ETH")
	w, err := before.CreateWallet(ctx, "u1")
	require.NoError(t, err)

	after := NewSimulation(rail.NewLedger(), "ETH")
	_, err = after.CreateTransfer(ctx, rail.TransferRequest{WalletRef: w.Ref, Amount: "1", IdempotencyKey: "k"})
	require.NoError(t, err)

	bal, err := after.GetBalance(ctx, w.Ref)
	require.NoError(t, err)
	assert.Equal(t, "999.00", bal)
}

func TestClient_WalletAndBalance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/v1/wallets":
			_, _ = w.Write([]byte(`{"data":{"walletId":"1000216185","entityId":"e","type":"end_user_wallet","balances":[]}}`))
		case r.Method == http.MethodGet && r.URL.Path == "/v1/wallets/1000216185":
			_, _ = w.Write([]byte(`{"data":{"walletId":"1000216185","balances":[{"amount":"3.14","currency":"USD"}]}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL, Chain: "ETH"})
	w, err := c.CreateWallet(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "1000216185", w.Ref)
	assert.Equal(t, "0", w.Balance)

	bal, err := c.GetBalance(context.Background(), w.Ref)
	require.NoError(t, err)
	assert.Equal(t, "3.14", bal)
}

func TestIdempotencyUUID_Stable(t *testing.T) {
	assert.Equal(t, IdempotencyUUID("a"), IdempotencyUUID("a"))
	assert.NotEqual(t, IdempotencyUUID("a"), IdempotencyUUID("b"))
}
