// Package rail defines the capability interfaces every asset rail satisfies
// and the shared types its Live and Simulated variants return.
package rail

import (
	"context"

	"github.com/AlexZinkM/rail-wallet/internal/model"
)

// Info describes the implementation behind a rail.
type Info struct {
	Provider  string
	Chain     string
	Simulated bool
}

// Wallet is a provider-custodied wallet.
type Wallet struct {
	Ref     string
	Address string
	Balance string
}

// TransferRequest asks a provider to move funds out of a custodied wallet.
type TransferRequest struct {
	WalletRef      string
	ToAddress      string
	Amount         string
	IdempotencyKey string
}

// TransferResult is the normalized outcome of a provider call.
// Live adapters fill it from provider responses; nothing above the adapter
// looks at provider JSON.
type TransferResult struct {
	ProviderRef string
	TxHash      string
	Status      model.TransferStatus
	RawStatus   string
}

// Stablecoin is an API-custodied stablecoin rail.
type Stablecoin interface {
	Info() Info
	CreateWallet(ctx context.Context, ownerID string) (*Wallet, error)
	GetBalance(ctx context.Context, walletRef string) (string, error)
	CreateTransfer(ctx context.Context, req TransferRequest) (*TransferResult, error)
	GetTransfer(ctx context.Context, ref string) (*TransferResult, error)
}

// TransferLookup is implemented by rails that can find a transfer by the
// idempotency key it was submitted under, for outcomes that never reached
// the local store.
type TransferLookup interface {
	FindTransfer(ctx context.Context, idempotencyKey string) (*TransferResult, error)
}

// Card is a prepaid card as reported by the issuer.
type Card struct {
	ProviderID string
	Last4      string
	Expiry     string
	Balance    string
	Status     string
}

// IssueRequest asks the issuer for a new card loaded with Amount.
type IssueRequest struct {
	OwnerID        string
	Amount         string
	ExpiryMonths   int
	IdempotencyKey string
}

// TopupRequest loads Amount onto an existing card.
type TopupRequest struct {
	CardRef        string
	Amount         string
	IdempotencyKey string
}

// CardIssuer is the prepaid card rail.
type CardIssuer interface {
	Info() Info
	IssueCard(ctx context.Context, req IssueRequest) (*Card, error)
	GetCard(ctx context.Context, cardRef string) (*Card, error)
	TopupCard(ctx context.Context, req TopupRequest) (*TransferResult, error)
	GetBalance(ctx context.Context, cardRef string) (string, error)
}

// CardRestorer is implemented by issuers that keep cards in process memory
// and need a stored card handed back after a restart.
type CardRestorer interface {
	RestoreCard(card Card)
}

// ChainTransferRequest is a native payment signed with custodied keys.
// Secret is only valid for the duration of the call.
type ChainTransferRequest struct {
	Secret         []byte
	FromAddress    string
	ToAddress      string
	Amount         uint64
	DestinationTag *uint32
	IdempotencyKey string
}

// ChainPayer signs and submits native payments on one chain.
type ChainPayer interface {
	Info() Info
	Pay(ctx context.Context, req ChainTransferRequest) (*TransferResult, error)
}
