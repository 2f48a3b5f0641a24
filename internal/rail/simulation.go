package rail

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/AlexZinkM/rail-wallet/internal/common"
	"github.com/AlexZinkM/rail-wallet/internal/model"
)

// SimConfig parameterizes a simulated stablecoin rail.
type SimConfig struct {
	Provider     string
	Chain        string
	WalletPrefix string
	TxPrefix     string
	Seed         string
	Decimals     int
}

// SimStablecoin is a deterministic in-process Stablecoin. Wallet refs are
// derived from the owner id, transaction refs from the idempotency key.
//
// Balances live in memory only. A wallet ref carrying this rail's prefix
// that the ledger has not seen, such as one persisted before a restart, is
// reopened at the seed balance.
type SimStablecoin struct {
	cfg    SimConfig
	seed   uint64
	ledger *Ledger

	mu        sync.Mutex
	transfers map[string]TransferResult // by provider ref
	byKey     map[string]string         // idempotency key -> provider ref
}

var (
	_ Stablecoin     = (*SimStablecoin)(nil)
	_ TransferLookup = (*SimStablecoin)(nil)
)

// NewSimStablecoin creates a simulated rail over ledger. A nil ledger gets a
// private one.
func NewSimStablecoin(cfg SimConfig, ledger *Ledger) *SimStablecoin {
	if ledger == nil {
		ledger = NewLedger()
	}
	seed, err := common.ParseUnits(cfg.Seed, cfg.Decimals)
	if err != nil {
		panic("invalid simulation seed " + cfg.Seed + ": " + err.Error())
	}
	return &SimStablecoin{
		cfg:       cfg,
		seed:      seed,
		ledger:    ledger,
		transfers: make(map[string]TransferResult),
		byKey:     make(map[string]string),
	}
}

func (s *SimStablecoin) Info() Info {
	return Info{Provider: s.cfg.Provider, Chain: s.cfg.Chain, Simulated: true}
}

// CreateWallet seeds a wallet on first call and returns it unchanged after.
func (s *SimStablecoin) CreateWallet(ctx context.Context, ownerID string) (*Wallet, error) {
	ref := s.cfg.WalletPrefix + ownerID
	s.ledger.Open(ref, s.seed)

	balance, err := s.GetBalance(ctx, ref)
	if err != nil {
		return nil, err
	}
	return &Wallet{Ref: ref, Address: ref, Balance: balance}, nil
}

func (s *SimStablecoin) GetBalance(_ context.Context, walletRef string) (string, error) {
	s.reopen(walletRef)
	units, err := s.ledger.Balance(walletRef)
	if err != nil {
		return "", s.walletError(err)
	}
	return common.FormatDisplay(units, s.cfg.Decimals), nil
}

// CreateTransfer debits the wallet, clamping at zero, and always reports
// SIMULATED. Insufficient funds are not rejected.
func (s *SimStablecoin) CreateTransfer(_ context.Context, req TransferRequest) (*TransferResult, error) {
	units, err := common.ParsePositive(req.Amount, s.cfg.Decimals)
	if err != nil {
		return nil, Rejected(s.cfg.Provider, "INVALID_AMOUNT", err.Error())
	}
	s.reopen(req.WalletRef)
	if _, err := s.ledger.Debit(req.WalletRef, units, req.IdempotencyKey); err != nil {
		return nil, s.walletError(err)
	}

	res := TransferResult{
		ProviderRef: SimulatedRef("sim-transfer-", req.IdempotencyKey),
		TxHash:      SimulatedRef(s.cfg.TxPrefix, req.IdempotencyKey),
		Status:      model.TransferSimulated,
		RawStatus:   "complete",
	}
	s.mu.Lock()
	s.transfers[res.ProviderRef] = res
	if req.IdempotencyKey != "" {
		s.byKey[req.IdempotencyKey] = res.ProviderRef
	}
	s.mu.Unlock()
	return &res, nil
}

// GetTransfer reports a transfer this instance accepted.
func (s *SimStablecoin) GetTransfer(_ context.Context, ref string) (*TransferResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, ok := s.transfers[ref]
	if !ok {
		return nil, Rejected(s.cfg.Provider, "TRANSFER_NOT_FOUND", "transfer "+ref+" not found")
	}
	return &res, nil
}

// FindTransfer reports the transfer accepted under idempotencyKey.
func (s *SimStablecoin) FindTransfer(ctx context.Context, idempotencyKey string) (*TransferResult, error) {
	s.mu.Lock()
	ref, ok := s.byKey[idempotencyKey]
	s.mu.Unlock()
	if !ok {
		return nil, Rejected(s.cfg.Provider, "TRANSFER_NOT_FOUND", "no transfer for this request")
	}
	return s.GetTransfer(ctx, ref)
}

func (s *SimStablecoin) reopen(ref string) {
	if len(ref) > len(s.cfg.WalletPrefix) && strings.HasPrefix(ref, s.cfg.WalletPrefix) {
		s.ledger.Open(ref, s.seed)
	}
}

func (s *SimStablecoin) walletError(err error) error {
	if errors.Is(err, ErrUnknownWallet) {
		return &ProviderError{Provider: s.cfg.Provider, Code: "WALLET_NOT_FOUND", Message: err.Error(), Definitive: true, Err: err}
	}
	return err
}
