package xrpl

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/AlexZinkM/rail-wallet/internal/apperr"
	"github.com/AlexZinkM/rail-wallet/internal/client"
	"github.com/AlexZinkM/rail-wallet/internal/common"
	"github.com/AlexZinkM/rail-wallet/internal/logger"
	"github.com/AlexZinkM/rail-wallet/internal/model"
	"github.com/AlexZinkM/rail-wallet/internal/rail"

	"go.uber.org/zap"
)

const (
	providerName = "xrpl"

	// LastLedgerSequence is set this many ledgers past the current one so an
	// unconfirmed payment expires instead of lingering.
	ledgerOffset = 20

	defaultConfirmTimeout = 30 * time.Second
	defaultPollInterval   = time.Second
)

// Node is the subset of rippled used to pay.
type Node interface {
	AccountInfo(ctx context.Context, address string) (*client.AccountInfo, error)
	Fee(ctx context.Context) (uint64, error)
	LedgerCurrent(ctx context.Context) (uint32, error)
	Submit(ctx context.Context, txBlob string) (*client.SubmitResult, error)
	Tx(ctx context.Context, hash string) (*client.TxStatus, error)
}

// Payer signs native XRP payments locally and submits them to a node.
type Payer struct {
	node           Node
	confirmTimeout time.Duration
	pollInterval   time.Duration
	log            *zap.Logger

	// one payment in flight per source account; concurrent ones would be
	// autofilled with the same Sequence
	accounts sync.Map // address -> *sync.Mutex
}

type PayerOption func(*Payer)

// WithConfirmation sets how long Pay waits for validation and how often it polls.
func WithConfirmation(timeout, interval time.Duration) PayerOption {
	return func(p *Payer) {
		p.confirmTimeout = timeout
		p.pollInterval = interval
	}
}

func NewPayer(node Node, opts ...PayerOption) *Payer {
	p := &Payer{
		node:           node,
		confirmTimeout: defaultConfirmTimeout,
		pollInterval:   defaultPollInterval,
		log:            logger.Component("xrpl-payer"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Payer) Info() rail.Info {
	return rail.Info{Provider: providerName, Chain: "ripple"}
}

// Pay sends req.Amount drops from the wallet of the seed in req.Secret.
//
// Failures before submit and transport failures during submit are ambiguous.
// tem, tef and tel results are definitive rejections: the transaction was not
// applied and cannot be. Anything else is polled until it is validated or the
// confirmation window closes, in which case the payment is reported PENDING.
func (p *Payer) Pay(ctx context.Context, req rail.ChainTransferRequest) (*rail.TransferResult, error) {
	w, err := WalletFromSeed(string(req.Secret))
	if err != nil {
		return nil, rail.Rejected(providerName, "INVALID_SEED", err.Error())
	}
	defer w.Wipe()

	if w.Address != req.FromAddress {
		return nil, rail.Rejected(providerName, "INVALID_SEED", "seed does not derive the source address")
	}

	if req.Amount == 0 || req.Amount > MaxDrops {
		return nil, apperr.Validation("XRP amount must be between 1 drop and the total supply")
	}

	mu, _ := p.accounts.LoadOrStore(w.Address, &sync.Mutex{})
	mu.(*sync.Mutex).Lock()
	defer mu.(*sync.Mutex).Unlock()

	payment, err := p.autofill(ctx, &Payment{
		Account:        w.Address,
		Destination:    req.ToAddress,
		Amount:         req.Amount,
		DestinationTag: req.DestinationTag,
	})
	if err != nil {
		return nil, err
	}

	signed, err := payment.Sign(w)
	if err != nil {
		return nil, rail.Rejected(providerName, "INVALID_PAYMENT", err.Error())
	}

	p.log.Info("submitting payment",
		zap.String("hash", signed.Hash),
		zap.Uint32("sequence", payment.Sequence),
		zap.String("idempotency_key", req.IdempotencyKey))

	sub, err := p.node.Submit(ctx, signed.Blob)
	if err != nil {
		var xe *client.XRPLError
		if errors.As(err, &xe) {
			return nil, rail.Rejected(providerName, xe.Code, xe.Message)
		}
		return nil, rail.Ambiguous(providerName, err)
	}
	if isRejectedResult(sub.EngineResult) {
		return nil, rail.Rejected(providerName, sub.EngineResult, sub.EngineResultMessage)
	}

	hash := signed.Hash
	if sub.Hash != "" {
		hash = sub.Hash
	}
	return p.awaitValidation(ctx, hash, sub.EngineResult), nil
}

func (p *Payer) autofill(ctx context.Context, payment *Payment) (*Payment, error) {
	info, err := p.node.AccountInfo(ctx, payment.Account)
	if errors.Is(err, client.ErrAccountNotFound) {
		return nil, rail.Rejected(providerName, "actNotFound", "source account is not funded")
	}
	if err != nil {
		return nil, rail.Ambiguous(providerName, fmt.Errorf("account_info: %w", err))
	}

	fee, err := p.node.Fee(ctx)
	if err != nil {
		return nil, rail.Ambiguous(providerName, fmt.Errorf("fee: %w", err))
	}

	current, err := p.node.LedgerCurrent(ctx)
	if err != nil {
		return nil, rail.Ambiguous(providerName, fmt.Errorf("ledger_current: %w", err))
	}

	if !common.CoversAmountAndFee(info.Balance, payment.Amount, fee) {
		return nil, rail.Rejected(providerName, "tecUNFUNDED_PAYMENT", "insufficient XRP balance")
	}

	payment.Sequence = info.Sequence
	payment.Fee = fee
	payment.LastLedgerSequence = current + ledgerOffset
	return payment, nil
}

// awaitValidation polls tx until the payment lands in a validated ledger.
// It never fails: an unconfirmed payment is PENDING with its hash.
func (p *Payer) awaitValidation(ctx context.Context, hash, preliminary string) *rail.TransferResult {
	result := &rail.TransferResult{
		ProviderRef: hash,
		TxHash:      hash,
		Status:      model.TransferPending,
		RawStatus:   preliminary,
	}

	ctx, cancel := context.WithTimeout(ctx, p.confirmTimeout)
	defer cancel()

	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		st, err := p.node.Tx(ctx, hash)
		switch {
		case err == nil && st.Validated:
			result.RawStatus = st.TransactionResult
			if st.TransactionResult == "tesSUCCESS" {
				result.Status = model.TransferCompleted
			} else {
				result.Status = model.TransferFailed
			}
			return result
		case err != nil && !errors.Is(err, client.ErrTxNotFound):
			p.log.Debug("tx lookup failed", zap.String("hash", hash), zap.Error(err))
		}

		select {
		case <-ctx.Done():
			p.log.Warn("payment not validated before timeout", zap.String("hash", hash))
			return result
		case <-ticker.C:
		}
	}
}

func isRejectedResult(engineResult string) bool {
	for _, prefix := range []string{"tem", "tef", "tel"} {
		if strings.HasPrefix(engineResult, prefix) {
			return true
		}
	}
	return false
}
