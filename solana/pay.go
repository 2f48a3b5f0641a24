package solana

import (
	"context"
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
	providerName   = "solana"
	solFeeLamports = 5000 // Fee in lamports (0.000005 SOL)

	// MaxLamports is one billion SOL, above the total supply.
	MaxLamports uint64 = 1_000_000_000 * 1_000_000_000

	defaultConfirmTimeout = 30 * time.Second
	defaultPollInterval   = time.Second
)

// Node is the subset of the Solana RPC client used to pay.
type Node interface {
	BalanceReader
	SendSOL(ctx context.Context, privateKeyBytes []byte, toAddress string, lamports uint64) (string, error)
	WaitForSignature(ctx context.Context, signature string, timeout, interval time.Duration) (*client.SignatureState, error)
}

// Payer sends native SOL transfers.
type Payer struct {
	node           Node
	confirmTimeout time.Duration
	pollInterval   time.Duration
	log            *zap.Logger

	payMutex sync.Map // address -> *sync.Mutex
}

type PayerOption func(*Payer)

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
		log:            logger.Component("solana-payer"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Payer) Info() rail.Info {
	return rail.Info{Provider: providerName, Chain: "solana"}
}

// Pay sends req.Amount lamports signed with the 64-byte key in req.Secret.
// A send that the node rejects (including preflight) is definitive; a send
// whose confirmation does not arrive in time is PENDING.
func (p *Payer) Pay(ctx context.Context, req rail.ChainTransferRequest) (*rail.TransferResult, error) {
	if !IsValidAddress(req.ToAddress) {
		return nil, apperr.Validation("invalid Solana address")
	}
	if req.Amount == 0 || req.Amount > MaxLamports {
		return nil, apperr.Validation("SOL amount must be between 1 lamport and the total supply")
	}

	address, err := AddressFromPrivateKey(req.Secret)
	if err != nil {
		return nil, rail.Rejected(providerName, "INVALID_KEY", err.Error())
	}
	// Verify wallet matches from address
	if address != req.FromAddress {
		return nil, rail.Rejected(providerName, "INVALID_KEY", "private key does not match address")
	}

	mu, _ := p.payMutex.LoadOrStore(address, &sync.Mutex{})
	mu.(*sync.Mutex).Lock()
	defer mu.(*sync.Mutex).Unlock()

	balance, err := p.node.GetBalance(ctx, address)
	if err != nil {
		return nil, rail.Ambiguous(providerName, err)
	}

	// Check SOL sufficiency (amount + fee)
	if !common.CoversAmountAndFee(balance, req.Amount, solFeeLamports) {
		var maxLamports uint64
		if balance > solFeeLamports {
			maxLamports = balance - solFeeLamports
		}
		return nil, apperr.Validation("insufficient SOL balance. Transaction fee: %s SOL. Max you can send: %s SOL",
			common.LamportsToSOL(solFeeLamports), common.LamportsToSOL(maxLamports))
	}

	sig, err := p.node.SendSOL(ctx, req.Secret, req.ToAddress, req.Amount)
	if err != nil {
		if client.IsRPCRejection(err) {
			return nil, rail.Rejected(providerName, "SEND_REJECTED", err.Error())
		}
		return nil, rail.Ambiguous(providerName, err)
	}

	p.log.Info("transaction sent",
		zap.String("signature", sig),
		zap.String("idempotency_key", req.IdempotencyKey))

	result := &rail.TransferResult{
		ProviderRef: sig,
		TxHash:      sig,
		Status:      model.TransferPending,
		RawStatus:   "processed",
	}

	state, err := p.node.WaitForSignature(ctx, sig, p.confirmTimeout, p.pollInterval)
	if err != nil {
		p.log.Warn("confirmation lookup failed", zap.String("signature", sig), zap.Error(err))
		return result, nil
	}
	switch {
	case state.Failed:
		result.Status = model.TransferFailed
		result.RawStatus = state.Err
	case state.Confirmed:
		result.Status = model.TransferCompleted
		result.RawStatus = "confirmed"
	}
	return result, nil
}
