package handler

import (
	"net/http"
	"strconv"

	"github.com/AlexZinkM/rail-wallet/internal/apperr"
	"github.com/AlexZinkM/rail-wallet/internal/balance"
	"github.com/AlexZinkM/rail-wallet/internal/model"
	"github.com/AlexZinkM/rail-wallet/internal/transfer"
)

// WalletHandler serves wallet, transfer and card endpoints for the caller
// named in the gateway headers.
type WalletHandler struct {
	transfers *transfer.Service
	balances  *balance.Aggregator
}

// NewWalletHandler creates a new WalletHandler
func NewWalletHandler(transfers *transfer.Service, balances *balance.Aggregator) *WalletHandler {
	return &WalletHandler{transfers: transfers, balances: balances}
}

// InitWallet handles POST /wallet/init
// @Summary      Initialize wallet
// @Description  Generates the caller's Ethereum, Solana and XRPL keys on first call and returns the stored addresses after
// @Tags         wallet
// @Produce      json
// @Param        X-User-ID     header    string  true   "Caller id"
// @Param        X-User-Email  header    string  false  "Caller email"
// @Success      200  {object}  model.WalletInitResponse
// @Failure      401  {object}  model.ErrorResponse
// @Failure      422  {object}  model.ErrorResponse
// @Router       /wallet/init [post]
func (h *WalletHandler) InitWallet(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	caller, err := callerFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.transfers.InitWallet(r.Context(), caller)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetBalances handles GET /wallet/balances
// @Summary      Get chain balances
// @Description  Gets ETH, SOL and XRP balances. A chain that cannot be queried reports 0 and an entry in errors
// @Tags         wallet
// @Produce      json
// @Param        X-User-ID  header    string  true  "Caller id"
// @Success      200  {object}  model.Balances
// @Failure      400  {object}  model.ErrorResponse
// @Router       /wallet/balances [get]
func (h *WalletHandler) GetBalances(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	caller, err := callerFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	acct, err := h.transfers.Account(r.Context(), caller)
	if err != nil {
		writeError(w, r, err)
		return
	}
	balances, err := h.balances.GetBalances(r.Context(), acct)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, balances)
}

// ListTransfers handles GET /transfers
// @Summary      Get transfer history
// @Description  Gets the caller's transfers on every rail, newest first
// @Tags         wallet
// @Produce      json
// @Param        X-User-ID  header    string  true   "Caller id"
// @Param        limit      query     int     false  "Maximum number of transfers (default and max 50)"
// @Success      200  {object}  model.TransfersResponse
// @Router       /transfers [get]
func (h *WalletHandler) ListTransfers(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	caller, err := callerFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		limit, err = strconv.Atoi(s)
		if err != nil || limit < 0 {
			writeError(w, r, apperr.Validation("invalid limit %q", s))
			return
		}
	}

	transfers, err := h.transfers.ListTransfers(r.Context(), caller, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, model.TransfersResponse{Transfers: transfers})
}

// TransferStatus handles GET /transfers/status
// @Summary      Get transfer status
// @Description  Resolves the outcome of one send or top-up by its rail and requestedAt. Use it after a PROVIDER_ERROR before retrying. A pending stablecoin transfer is refreshed from its provider
// @Tags         wallet
// @Produce      json
// @Param        X-User-ID    header    string  true  "Caller id"
// @Param        rail         query     string  true  "XRP, SOL, USDC, USDT or CARD"
// @Param        requestedAt  query     int     true  "requestedAt of the original request, unix millis"
// @Success      200  {object}  model.Transfer
// @Failure      400  {object}  model.ErrorResponse
// @Failure      404  {object}  model.ErrorResponse
// @Router       /transfers/status [get]
func (h *WalletHandler) TransferStatus(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	caller, err := callerFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	q := r.URL.Query()
	rail, ok := model.ParseRail(q.Get("rail"))
	if !ok {
		writeError(w, r, apperr.Validation("invalid rail %q", q.Get("rail")))
		return
	}
	requestedAt, err := strconv.ParseInt(q.Get("requestedAt"), 10, 64)
	if err != nil || requestedAt <= 0 {
		writeError(w, r, apperr.Validation("invalid requestedAt %q", q.Get("requestedAt")))
		return
	}

	t, err := h.transfers.TransferStatus(r.Context(), caller, rail, requestedAt)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}
