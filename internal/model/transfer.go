package model

import "time"

// TransferStatus is the normalized outcome shared by every rail.
type TransferStatus string

const (
	TransferPending   TransferStatus = "PENDING"
	TransferCompleted TransferStatus = "COMPLETED"
	TransferFailed    TransferStatus = "FAILED"
	TransferSimulated TransferStatus = "SIMULATED"
)

// Transfer is the immutable record of one provider-side effect.
type Transfer struct {
	ID             string         `json:"id"`
	OwnerID        string         `json:"-"`
	Asset          string         `json:"asset"`
	Chain          string         `json:"chain"`
	Rail           Rail           `json:"rail"`
	ToAddress      string         `json:"toAddress"`
	Amount         string         `json:"amount"`
	TxHash         string         `json:"txHash,omitempty"`
	ProviderRef    string         `json:"providerRef,omitempty"`
	Status         TransferStatus `json:"status"`
	Label          string         `json:"label,omitempty"`
	IdempotencyKey string         `json:"idempotencyKey"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// SendRequest represents request for POST /{rail}/send
type SendRequest struct {
	ToAddress      string  `json:"toAddress"`
	Amount         string  `json:"amount"`
	Label          string  `json:"label,omitempty"`
	DestinationTag *uint32 `json:"destinationTag,omitempty"`
	// RequestedAt is the client's request instant in unix milliseconds.
	// Resending the same value resolves to the same transfer.
	RequestedAt int64 `json:"requestedAt,omitempty"`
}

// TransfersResponse represents response for GET /transfers
type TransfersResponse struct {
	Transfers []Transfer `json:"transfers"`
}
