// Package store persists accounts, rail wallets, transfers and cards.
package store

import (
	"context"
	"errors"

	"github.com/AlexZinkM/rail-wallet/internal/model"
)

var (
	ErrNotFound                = errors.New("not found")
	ErrDuplicateIdempotencyKey = errors.New("duplicate idempotency key")
)

// DefaultTransferLimit bounds ListTransfers when the caller passes no limit.
const DefaultTransferLimit = 50

// Store is the persistence boundary used by the services.
type Store interface {
	GetAccount(ctx context.Context, ownerID string) (*model.Account, error)
	// CreateAccount stores acct unless the owner already has one, and returns
	// the stored account with created reporting which case happened.
	CreateAccount(ctx context.Context, acct *model.Account) (stored *model.Account, created bool, err error)

	GetRailWallet(ctx context.Context, ownerID string, rail model.Rail) (*model.RailWallet, error)
	// PutRailWallet is create-if-absent, like CreateAccount.
	PutRailWallet(ctx context.Context, w *model.RailWallet) (stored *model.RailWallet, created bool, err error)

	// CreateTransfer fails with ErrDuplicateIdempotencyKey when the key exists.
	CreateTransfer(ctx context.Context, t *model.Transfer) error
	GetTransferByIdempotencyKey(ctx context.Context, key string) (*model.Transfer, error)
	// UpdateTransfer rewrites the status, tx hash and provider ref of the
	// transfer stored under t.IdempotencyKey.
	UpdateTransfer(ctx context.Context, t *model.Transfer) error
	// ListTransfers returns the owner's transfers newest first.
	ListTransfers(ctx context.Context, ownerID string, limit int) ([]model.Transfer, error)

	CreateCard(ctx context.Context, c *model.Card) error
	UpdateCard(ctx context.Context, c *model.Card) error
	GetCard(ctx context.Context, ownerID, cardID string) (*model.Card, error)
	ListCards(ctx context.Context, ownerID string) ([]model.Card, error)

	Close() error
}

func normalizeLimit(limit int) int {
	if limit <= 0 || limit > DefaultTransferLimit {
		return DefaultTransferLimit
	}
	return limit
}
