package handler

import (
	"bytes"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AlexZinkM/rail-wallet/internal/balance"
	"github.com/AlexZinkM/rail-wallet/internal/crypto"
	"github.com/AlexZinkM/rail-wallet/internal/custody"
	"github.com/AlexZinkM/rail-wallet/internal/mocks"
	"github.com/AlexZinkM/rail-wallet/internal/model"
	"github.com/AlexZinkM/rail-wallet/internal/rail"
	"github.com/AlexZinkM/rail-wallet/internal/rail/circle"
	"github.com/AlexZinkM/rail-wallet/internal/rail/giftbit"
	"github.com/AlexZinkM/rail-wallet/internal/rail/usdt"
	"github.com/AlexZinkM/rail-wallet/internal/store"
	"github.com/AlexZinkM/rail-wallet/internal/transfer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const evmRecipient = "0x52908400098527886E0F7030069857D2E4169EE7"

func newTestHandler(t *testing.T) *WalletHandler {
	t.Helper()

	cipher, err := crypto.NewCipher([]byte("handler-test-secret"))
	require.NoError(t, err)

	xrp := mocks.NewMockChainPayerForTest(t)
	xrp.EXPECT().Info().Return(rail.Info{Provider: "xrpl", Chain: "ripple"}).AnyTimes()
	sol := mocks.NewMockChainPayerForTest(t)
	sol.EXPECT().Info().Return(rail.Info{Provider: "solana", Chain: "solana"}).AnyTimes()

	solBalance := mocks.NewMockBalanceReaderForTest(t)
	solBalance.EXPECT().GetBalance(gomock.Any(), gomock.Any()).Return(uint64(1_500_000_000), nil).AnyTimes()
	xrpBalance := mocks.NewMockBalanceReaderForTest(t)
	xrpBalance.EXPECT().GetBalance(gomock.Any(), gomock.Any()).Return(uint64(20_000_000), nil).AnyTimes()

	ethBalance := mocks.NewMockEthBalanceReaderForTest(t)
	ethBalance.EXPECT().BalanceAt(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(big.NewInt(2_000_000_000_000_000_000), nil).AnyTimes()

	ledger := rail.NewLedger()
	svc := transfer.NewService(store.NewMemory(), custody.NewService(cipher), transfer.Rails{
		XRP:  xrp,
		SOL:  sol,
		USDC: circle.NewSimulation(ledger, "ethereum"),
		USDT: usdt.NewSimulation(ledger, "ethereum"),
		Card: giftbit.NewSimulation(ledger),
	})
	return NewWalletHandler(svc, balance.NewAggregator(ethBalance, solBalance, xrpBalance))
}

func do(h http.HandlerFunc, method, target string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(HeaderUserID, "user-1")
	req.Header.Set(HeaderUserEmail, "user@example.com")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestInitWallet(t *testing.T) {
	h := newTestHandler(t)

	rec := do(h.InitWallet, http.MethodPost, "/wallet/init", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	resp := decode[model.WalletInitResponse](t, rec)
	assert.True(t, resp.Initialized)
	assert.Contains(t, resp.XRPLAddress, "...")
	assert.Contains(t, resp.EthereumAddress, "0x")
}

func TestInitWallet_MissingIdentity(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.InitWallet(rec, httptest.NewRequest(http.MethodPost, "/wallet/init", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	resp := decode[model.ErrorResponse](t, rec)
	assert.Equal(t, "UNAUTHORIZED", resp.Error.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestHandler(t)

	rec := do(h.InitWallet, http.MethodGet, "/wallet/init", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodPost, rec.Header().Get("Allow"))
}

func TestGetBalances(t *testing.T) {
	h := newTestHandler(t)

	rec := do(h.GetBalances, http.MethodGet, "/wallet/balances", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "WALLET_NOT_INITIALIZED", decode[model.ErrorResponse](t, rec).Error.Code)

	require.Equal(t, http.StatusOK, do(h.InitWallet, http.MethodPost, "/wallet/init", nil).Code)

	rec = do(h.GetBalances, http.MethodGet, "/wallet/balances", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[model.Balances](t, rec)
	assert.Equal(t, "2.000000000000000000", got.ETH)
	assert.Equal(t, "1.500000000", got.SOL)
	assert.Equal(t, "20.000000", got.XRP)
}

func TestStablecoinFlow(t *testing.T) {
	h := newTestHandler(t)

	rec := do(h.InitRailWallet(model.RailUSDT), http.MethodPost, "/usdt/wallets/init", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "500.00", decode[model.RailWalletResponse](t, rec).Balance)

	rec = do(h.Send(model.RailUSDT), http.MethodPost, "/usdt/send", model.SendRequest{
		ToAddress:   evmRecipient,
		Amount:      "100.00",
		RequestedAt: 1,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	tr := decode[model.Transfer](t, rec)
	assert.Equal(t, model.TransferSimulated, tr.Status)

	rec = do(h.RailBalance(model.RailUSDT), http.MethodGet, "/usdt/balance", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "400.00", decode[model.RailBalanceResponse](t, rec).Balance)

	rec = do(h.ListTransfers, http.MethodGet, "/transfers?limit=10", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	transfers := decode[model.TransfersResponse](t, rec).Transfers
	require.Len(t, transfers, 1)
	assert.Equal(t, tr.ID, transfers[0].ID)

	rec = do(h.TransferStatus, http.MethodGet, "/transfers/status?rail=usdt&requestedAt=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, tr.ID, decode[model.Transfer](t, rec).ID)

	rec = do(h.TransferStatus, http.MethodGet, "/transfers/status?rail=usdt&requestedAt=2", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTransferStatus_BadQuery(t *testing.T) {
	h := newTestHandler(t)

	for _, target := range []string{
		"/transfers/status?rail=doge&requestedAt=1",
		"/transfers/status?rail=xrp",
		"/transfers/status?rail=xrp&requestedAt=-4",
	} {
		rec := do(h.TransferStatus, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestSend_BadInput(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/usdc/send", bytes.NewBufferString("{not json"))
	req.Header.Set(HeaderUserID, "user-1")
	rec := httptest.NewRecorder()
	h.Send(model.RailUSDC)(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decode[model.ErrorResponse](t, rec).Error.Code)

	rec = do(h.Send(model.RailUSDC), http.MethodPost, "/usdc/send", model.SendRequest{
		ToAddress: evmRecipient,
		Amount:    "1.1234567",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[model.ErrorResponse](t, rec).Error.Message, "at most 6 decimal places")

	rec = do(h.ListTransfers, http.MethodGet, "/transfers?limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCardFlow(t *testing.T) {
	h := newTestHandler(t)

	rec := do(h.IssueCard, http.MethodPost, "/card/issue", model.IssueCardRequest{Amount: "20"})
	require.Equal(t, http.StatusOK, rec.Code)
	card := decode[model.Card](t, rec)
	assert.Equal(t, "20.00", card.Balance)

	rec = do(h.TopupCard, http.MethodPost, "/card/topup", model.TopupCardRequest{CardID: card.ID, Amount: "5", RequestedAt: 2})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(h.TopupCard, http.MethodPost, "/card/topup", model.TopupCardRequest{CardID: "nope", Amount: "5"})
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decode[model.ErrorResponse](t, rec).Error.Code)

	rec = do(h.ListCards, http.MethodGet, "/cards", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cards := decode[model.CardsResponse](t, rec).Cards
	require.Len(t, cards, 1)
	assert.Equal(t, "25.00", cards[0].Balance)
}
