package handler

import (
	"net/http"

	"github.com/AlexZinkM/rail-wallet/internal/model"
)

// IssueCard handles POST /card/issue
// @Summary      Issue prepaid card
// @Description  Issues a card loaded with amount. Reissuing with the same requestedAt returns the card already issued
// @Tags         card
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    string                  true  "Caller id"
// @Param        request    body      model.IssueCardRequest  true  "Initial load"
// @Success      200  {object}  model.Card
// @Failure      400  {object}  model.ErrorResponse
// @Router       /card/issue [post]
func (h *WalletHandler) IssueCard(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	caller, err := callerFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req model.IssueCardRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	card, err := h.transfers.IssueCard(r.Context(), caller, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, card)
}

// TopupCard handles POST /card/topup
// @Summary      Top up prepaid card
// @Tags         card
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    string                  true  "Caller id"
// @Param        request    body      model.TopupCardRequest  true  "Top-up data"
// @Success      200  {object}  model.Transfer
// @Failure      404  {object}  model.ErrorResponse
// @Router       /card/topup [post]
func (h *WalletHandler) TopupCard(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	caller, err := callerFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req model.TopupCardRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	t, err := h.transfers.TopupCard(r.Context(), caller, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// ListCards handles GET /cards
// @Summary      List prepaid cards
// @Tags         card
// @Produce      json
// @Param        X-User-ID  header    string  true  "Caller id"
// @Success      200  {object}  model.CardsResponse
// @Router       /cards [get]
func (h *WalletHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	caller, err := callerFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	cards, err := h.transfers.ListCards(r.Context(), caller)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, model.CardsResponse{Cards: cards})
}
