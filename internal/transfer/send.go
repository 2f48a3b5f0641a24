package transfer

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlexZinkM/rail-wallet/internal/apperr"
	"github.com/AlexZinkM/rail-wallet/internal/custody"
	"github.com/AlexZinkM/rail-wallet/internal/model"
	"github.com/AlexZinkM/rail-wallet/internal/rail"
	"github.com/AlexZinkM/rail-wallet/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IdempotencyKey derives the key of a request: one transfer per rail, owner
// and request instant.
func IdempotencyKey(r model.Rail, ownerID string, requestedAtMillis int64) string {
	return fmt.Sprintf("%s-%s-%d", r.Key(), ownerID, requestedAtMillis)
}

// sendPlan is a validated send.
type sendPlan struct {
	caller model.Caller
	rail   model.Rail
	req    model.SendRequest
	units  uint64
	amount string
	key    string
	info   rail.Info
}

// Send moves funds on r. Validation happens before any side effect. A
// repeated request (same rail, owner and RequestedAt) returns the transfer
// already recorded for it. A provider rejection is recorded as a FAILED
// transfer; an unknown outcome is returned as PROVIDER_ERROR and nothing is
// recorded, so the caller must query TransferStatus with the same
// RequestedAt before retrying.
func (s *Service) Send(ctx context.Context, caller model.Caller, r model.Rail, req model.SendRequest) (*model.Transfer, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}

	plan, err := s.plan(caller, r, req)
	if err != nil {
		return nil, err
	}

	if existing, err := s.store.GetTransferByIdempotencyKey(ctx, plan.key); err == nil {
		return existing, nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, storeError(err)
	}

	// collapsed callers share this call, so it must outlive the leader's ctx
	v, err, shared := s.group.Do(plan.key, func() (any, error) {
		return s.execute(context.WithoutCancel(ctx), plan)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.log.Debug("collapsed duplicate send", zap.String("idempotency_key", plan.key))
	}
	return v.(*model.Transfer), nil
}

func (s *Service) plan(caller model.Caller, r model.Rail, req model.SendRequest) (*sendPlan, error) {
	var info rail.Info
	switch r {
	case model.RailXRP:
		info = s.rails.XRP.Info()
	case model.RailSOL:
		info = s.rails.SOL.Info()
	case model.RailUSDC:
		info = s.rails.USDC.Info()
	case model.RailUSDT:
		info = s.rails.USDT.Info()
	case model.RailCard:
		return nil, apperr.Validation("card rail is funded through card top-up")
	default:
		return nil, apperr.Validation("unknown rail %q", r)
	}

	if err := validateRecipient(r, info.Chain, req.ToAddress); err != nil {
		return nil, err
	}
	units, amount, err := parseAmount(r, req.Amount)
	if err != nil {
		return nil, err
	}
	if err := validateLabel(req.Label); err != nil {
		return nil, err
	}
	if req.DestinationTag != nil && r != model.RailXRP {
		return nil, apperr.Validation("destination tag is only supported on XRP")
	}

	requestedAt := req.RequestedAt
	if requestedAt <= 0 {
		requestedAt = s.now().UnixMilli()
	}

	return &sendPlan{
		caller: caller,
		rail:   r,
		req:    req,
		units:  units,
		amount: amount,
		key:    IdempotencyKey(r, caller.ID, requestedAt),
		info:   info,
	}, nil
}

func (s *Service) execute(ctx context.Context, p *sendPlan) (*model.Transfer, error) {
	// a collapsed or racing request may have finished meanwhile
	if existing, err := s.store.GetTransferByIdempotencyKey(ctx, p.key); err == nil {
		return existing, nil
	}

	var (
		res *rail.TransferResult
		err error
	)
	if p.rail.ChainSigned() {
		res, err = s.payOnChain(ctx, p)
	} else {
		res, err = s.payThroughProvider(ctx, p)
	}

	if err != nil {
		if pe, ok := rail.AsProviderError(err); ok && pe.Definitive {
			s.log.Warn("provider rejected transfer",
				zap.String("rail", string(p.rail)),
				zap.String("idempotency_key", p.key),
				zap.String("code", pe.Code),
				zap.String("message", pe.Message))
			return s.record(ctx, p, &rail.TransferResult{Status: model.TransferFailed, RawStatus: pe.Code})
		}
		return nil, sendError(p, err)
	}
	return s.record(ctx, p, res)
}

func (s *Service) payOnChain(ctx context.Context, p *sendPlan) (*rail.TransferResult, error) {
	acct, err := s.store.GetAccount(ctx, p.caller.ID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.WalletNotInitialized("wallet")
	}
	if err != nil {
		return nil, storeError(err)
	}

	var res *rail.TransferResult
	err = s.custody.WithKeys(ctx, acct.EncryptedKeys, func(keys *custody.KeyMaterial) error {
		req := rail.ChainTransferRequest{
			ToAddress:      p.req.ToAddress,
			Amount:         p.units,
			DestinationTag: p.req.DestinationTag,
			IdempotencyKey: p.key,
		}
		var payer rail.ChainPayer
		switch p.rail {
		case model.RailXRP:
			payer = s.rails.XRP
			req.FromAddress = keys.XRPLAddress
			req.Secret = []byte(keys.XRPLSeed)
			defer clear(req.Secret)
		case model.RailSOL:
			payer = s.rails.SOL
			req.FromAddress = keys.SolanaAddress
			req.Secret = keys.SolanaPrivateKey
		}

		var perr error
		res, perr = payer.Pay(ctx, req)
		return perr
	})
	return res, err
}

func (s *Service) payThroughProvider(ctx context.Context, p *sendPlan) (*rail.TransferResult, error) {
	coin, err := s.stablecoin(p.rail)
	if err != nil {
		return nil, err
	}
	w, err := s.railWallet(ctx, p.caller.ID, p.rail)
	if err != nil {
		return nil, err
	}
	return coin.CreateTransfer(ctx, rail.TransferRequest{
		WalletRef:      w.WalletRef,
		ToAddress:      p.req.ToAddress,
		Amount:         p.amount,
		IdempotencyKey: p.key,
	})
}

// record persists the outcome. Losing a race on the idempotency key returns
// the winner's record.
func (s *Service) record(ctx context.Context, p *sendPlan, res *rail.TransferResult) (*model.Transfer, error) {
	status := res.Status
	if status == "" {
		status = rail.NormalizeStatus(res.RawStatus)
	}

	t := &model.Transfer{
		ID:             uuid.NewString(),
		OwnerID:        p.caller.ID,
		Asset:          string(p.rail),
		Chain:          p.info.Chain,
		Rail:           p.rail,
		ToAddress:      p.req.ToAddress,
		Amount:         p.amount,
		TxHash:         res.TxHash,
		ProviderRef:    res.ProviderRef,
		Status:         status,
		Label:          p.req.Label,
		IdempotencyKey: p.key,
		CreatedAt:      s.now().UTC(),
	}

	err := s.store.CreateTransfer(ctx, t)
	if errors.Is(err, store.ErrDuplicateIdempotencyKey) {
		existing, gerr := s.store.GetTransferByIdempotencyKey(ctx, p.key)
		if gerr != nil {
			return nil, storeError(gerr)
		}
		return existing, nil
	}
	if err != nil {
		// the provider call already happened; this must not look like a clean failure
		s.log.Error("failed to record transfer",
			zap.String("idempotency_key", p.key),
			zap.String("tx_hash", t.TxHash),
			zap.String("status", string(t.Status)),
			zap.Error(err))
		return nil, apperr.Internal(err)
	}

	s.log.Info("transfer recorded",
		zap.String("id", t.ID),
		zap.String("rail", string(t.Rail)),
		zap.String("status", string(t.Status)),
		zap.String("to", custody.MaskAddress(t.ToAddress)),
		zap.String("idempotency_key", t.IdempotencyKey))
	return t, nil
}

// sendError maps a failure that left no record.
func sendError(p *sendPlan, err error) error {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		return err
	}
	if _, ok := rail.AsProviderError(err); ok ||
		errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return apperr.Wrap(apperr.CodeProvider,
			fmt.Sprintf("%s transfer outcome unknown; query /transfers/status with the same requestedAt before retrying", p.rail), err)
	}
	return apperr.Internal(err)
}
