package transfer

import (
	"context"
	"errors"

	"github.com/AlexZinkM/rail-wallet/internal/apperr"
	"github.com/AlexZinkM/rail-wallet/internal/model"
	"github.com/AlexZinkM/rail-wallet/internal/rail"
	"github.com/AlexZinkM/rail-wallet/internal/store"

	"go.uber.org/zap"
)

// TransferStatus reports the outcome of the request the caller made on r at
// requestedAt. It is how a caller resolves a PROVIDER_ERROR send before
// retrying.
//
// A recorded transfer still PENDING on a stablecoin rail is refreshed from
// the provider. A request with no record is looked up on providers that can
// find transfers by idempotency key; such a result is returned unrecorded.
func (s *Service) TransferStatus(ctx context.Context, caller model.Caller, r model.Rail, requestedAt int64) (*model.Transfer, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	parsed, ok := model.ParseRail(string(r))
	if !ok {
		return nil, apperr.Validation("unknown rail %q", r)
	}
	r = parsed
	if requestedAt <= 0 {
		return nil, apperr.Validation("requestedAt is required")
	}
	key := IdempotencyKey(r, caller.ID, requestedAt)

	t, err := s.store.GetTransferByIdempotencyKey(ctx, key)
	if err == nil {
		if coin, cerr := s.stablecoin(r); cerr == nil && t.Status == model.TransferPending && t.ProviderRef != "" {
			s.refreshTransfer(ctx, coin, t)
		}
		return t, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, storeError(err)
	}

	notFound := apperr.New(apperr.CodeNotFound, "no transfer found for this request")
	coin, err := s.stablecoin(r)
	if err != nil {
		return nil, notFound
	}
	lookup, ok := coin.(rail.TransferLookup)
	if !ok {
		return nil, notFound
	}

	res, err := lookup.FindTransfer(ctx, key)
	if rail.IsDefinitive(err) {
		return nil, notFound
	}
	if err != nil {
		return nil, providerError(err)
	}

	status := res.Status
	if status == "" {
		status = rail.NormalizeStatus(res.RawStatus)
	}
	return &model.Transfer{
		OwnerID:        caller.ID,
		Asset:          string(r),
		Chain:          coin.Info().Chain,
		Rail:           r,
		TxHash:         res.TxHash,
		ProviderRef:    res.ProviderRef,
		Status:         status,
		IdempotencyKey: key,
	}, nil
}

// refreshTransfer updates t from the provider. The stored record stays
// authoritative when the provider cannot be reached.
func (s *Service) refreshTransfer(ctx context.Context, coin rail.Stablecoin, t *model.Transfer) {
	res, err := coin.GetTransfer(ctx, t.ProviderRef)
	if err != nil {
		s.log.Warn("failed to refresh transfer",
			zap.String("idempotency_key", t.IdempotencyKey),
			zap.String("provider_ref", t.ProviderRef),
			zap.Error(err))
		return
	}

	status := res.Status
	if status == "" {
		status = rail.NormalizeStatus(res.RawStatus)
	}
	if status == t.Status && (res.TxHash == "" || res.TxHash == t.TxHash) {
		return
	}
	t.Status = status
	if res.TxHash != "" {
		t.TxHash = res.TxHash
	}
	if err := s.store.UpdateTransfer(ctx, t); err != nil {
		s.log.Warn("failed to update transfer", zap.String("idempotency_key", t.IdempotencyKey), zap.Error(err))
		return
	}
	s.log.Info("transfer status changed",
		zap.String("id", t.ID),
		zap.String("rail", string(t.Rail)),
		zap.String("status", string(t.Status)))
}
