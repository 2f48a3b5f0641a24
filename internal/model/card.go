package model

import "time"

// Card is a prepaid card issued through the card rail.
type Card struct {
	ID         string    `json:"cardId"`
	OwnerID    string    `json:"-"`
	Provider   string    `json:"provider"`
	ProviderID string    `json:"providerId"`
	Last4      string    `json:"last4"`
	Expiry     string    `json:"expiry"`
	Balance    string    `json:"balance"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// IssueCardRequest represents request for POST /card/issue
// RequestedAt identifies the request: reissuing with the same value returns
// the card already issued for it.
type IssueCardRequest struct {
	Amount      string `json:"amount"`
	RequestedAt int64  `json:"requestedAt,omitempty"`
}

// TopupCardRequest represents request for POST /card/topup
type TopupCardRequest struct {
	CardID      string `json:"cardId"`
	Amount      string `json:"amount"`
	RequestedAt int64  `json:"requestedAt,omitempty"`
}

// CardsResponse represents response for GET /cards
type CardsResponse struct {
	Cards []Card `json:"cards"`
}
