package handler

import (
	"net/http"

	"github.com/AlexZinkM/rail-wallet/internal/model"
)

// Send returns the handler for POST /{rail}/send.
// @Summary      Send funds
// @Description  Sends funds on one rail. Resending the same requestedAt returns the transfer already recorded for it. PROVIDER_ERROR means the outcome is unknown: query /transfers/status with the same requestedAt before retrying
// @Tags         transfers
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    string             true  "Caller id"
// @Param        request    body      model.SendRequest  true  "Transfer data"
// @Success      200  {object}  model.Transfer
// @Failure      400  {object}  model.ErrorResponse
// @Failure      422  {object}  model.ErrorResponse
// @Failure      502  {object}  model.ErrorResponse
// @Router       /xrp/send [post]
// @Router       /sol/send [post]
// @Router       /usdc/send [post]
// @Router       /usdt/send [post]
func (h *WalletHandler) Send(rail model.Rail) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !allowMethod(w, r, http.MethodPost) {
			return
		}
		caller, err := callerFrom(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		var req model.SendRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		t, err := h.transfers.Send(r.Context(), caller, rail, req)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, t)
	}
}

// InitRailWallet returns the handler for POST /{rail}/wallets/init.
// @Summary      Initialize stablecoin wallet
// @Description  Creates the caller's provider-custodied wallet once and returns it with its balance
// @Tags         stablecoin
// @Produce      json
// @Param        X-User-ID  header    string  true  "Caller id"
// @Success      200  {object}  model.RailWalletResponse
// @Failure      502  {object}  model.ErrorResponse
// @Router       /usdc/wallets/init [post]
// @Router       /usdt/wallets/init [post]
func (h *WalletHandler) InitRailWallet(rail model.Rail) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !allowMethod(w, r, http.MethodPost) {
			return
		}
		caller, err := callerFrom(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		resp, err := h.transfers.InitRailWallet(r.Context(), caller, rail)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// RailBalance returns the handler for GET /{rail}/balance.
// @Summary      Get stablecoin balance
// @Tags         stablecoin
// @Produce      json
// @Param        X-User-ID  header    string  true  "Caller id"
// @Success      200  {object}  model.RailBalanceResponse
// @Failure      400  {object}  model.ErrorResponse
// @Router       /usdc/balance [get]
// @Router       /usdt/balance [get]
func (h *WalletHandler) RailBalance(rail model.Rail) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !allowMethod(w, r, http.MethodGet) {
			return
		}
		caller, err := callerFrom(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		resp, err := h.transfers.RailBalance(r.Context(), caller, rail)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
