// Package transfer orchestrates wallet initialization, sends and card
// operations across the chain-signed and provider-custodied rails.
package transfer

import (
	"context"
	"errors"
	"time"

	"github.com/AlexZinkM/rail-wallet/internal/apperr"
	"github.com/AlexZinkM/rail-wallet/internal/common"
	"github.com/AlexZinkM/rail-wallet/internal/custody"
	"github.com/AlexZinkM/rail-wallet/internal/logger"
	"github.com/AlexZinkM/rail-wallet/internal/model"
	"github.com/AlexZinkM/rail-wallet/internal/rail"
	"github.com/AlexZinkM/rail-wallet/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Rails holds one implementation per rail. Live or Simulated is decided by
// whoever builds it.
type Rails struct {
	XRP  rail.ChainPayer
	SOL  rail.ChainPayer
	USDC rail.Stablecoin
	USDT rail.Stablecoin
	Card rail.CardIssuer
}

type Service struct {
	store   store.Store
	custody *custody.Service
	rails   Rails
	now     func() time.Time
	group   singleflight.Group
	log     *zap.Logger
}

type Option func(*Service)

// WithClock replaces time.Now, which also supplies the default request instant.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(st store.Store, keys *custody.Service, rails Rails, opts ...Option) *Service {
	s := &Service{
		store:   st,
		custody: keys,
		rails:   rails,
		now:     time.Now,
		log:     logger.Component("transfer"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func requireCaller(caller model.Caller) error {
	if caller.ID == "" {
		return apperr.New(apperr.CodeUnauthorized, "caller identity is required")
	}
	return nil
}

// InitWallet creates the caller's chain account on first call and returns
// the stored one after. Addresses are masked; the QR codes carry them in full.
func (s *Service) InitWallet(ctx context.Context, caller model.Caller) (*model.WalletInitResponse, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}

	acct, err := s.store.GetAccount(ctx, caller.ID)
	if errors.Is(err, store.ErrNotFound) {
		acct, err = s.createAccount(ctx, caller)
	}
	if err != nil {
		return nil, storeError(err)
	}

	resp := &model.WalletInitResponse{
		EthereumAddress: custody.MaskAddress(acct.EthereumAddress),
		SolanaAddress:   custody.MaskAddress(acct.SolanaAddress),
		XRPLAddress:     custody.MaskAddress(acct.XRPLAddress),
		Initialized:     true,
	}
	if resp.EthereumQR, err = common.AddressQR(acct.EthereumAddress); err != nil {
		return nil, apperr.Internal(err)
	}
	if resp.SolanaQR, err = common.AddressQR(acct.SolanaAddress); err != nil {
		return nil, apperr.Internal(err)
	}
	if resp.XRPLQR, err = common.AddressQR(acct.XRPLAddress); err != nil {
		return nil, apperr.Internal(err)
	}
	return resp, nil
}

func (s *Service) createAccount(ctx context.Context, caller model.Caller) (*model.Account, error) {
	keys, blob, err := s.custody.Generate()
	if err != nil {
		return nil, err
	}
	defer keys.Wipe()

	stored, created, err := s.store.CreateAccount(ctx, &model.Account{
		ID:              uuid.NewString(),
		OwnerID:         caller.ID,
		EthereumAddress: keys.EthereumAddress,
		SolanaAddress:   keys.SolanaAddress,
		XRPLAddress:     keys.XRPLAddress,
		EncryptedKeys:   blob.String(),
		CreatedAt:       s.now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	if created {
		s.log.Info("wallet initialized",
			zap.String("owner_id", caller.ID),
			zap.String("eth", custody.MaskAddress(stored.EthereumAddress)),
			zap.String("solana", custody.MaskAddress(stored.SolanaAddress)),
			zap.String("xrpl", custody.MaskAddress(stored.XRPLAddress)))
	}
	return stored, nil
}

// Account returns the caller's chain account.
func (s *Service) Account(ctx context.Context, caller model.Caller) (*model.Account, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	acct, err := s.store.GetAccount(ctx, caller.ID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.WalletNotInitialized("wallet")
	}
	if err != nil {
		return nil, storeError(err)
	}
	return acct, nil
}

func (s *Service) stablecoin(r model.Rail) (rail.Stablecoin, error) {
	switch r {
	case model.RailUSDC:
		return s.rails.USDC, nil
	case model.RailUSDT:
		return s.rails.USDT, nil
	}
	return nil, apperr.Validation("%s is not a stablecoin rail", r)
}

// InitRailWallet creates the caller's provider-custodied wallet on r once.
func (s *Service) InitRailWallet(ctx context.Context, caller model.Caller, r model.Rail) (*model.RailWalletResponse, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	coin, err := s.stablecoin(r)
	if err != nil {
		return nil, err
	}

	w, err := s.store.GetRailWallet(ctx, caller.ID, r)
	if errors.Is(err, store.ErrNotFound) {
		created, cerr := coin.CreateWallet(ctx, caller.ID)
		if cerr != nil {
			return nil, providerError(cerr)
		}
		w, _, err = s.store.PutRailWallet(ctx, &model.RailWallet{
			Rail:      r,
			OwnerID:   caller.ID,
			WalletRef: created.Ref,
			Address:   created.Address,
			CreatedAt: s.now().UTC(),
		})
	}
	if err != nil {
		return nil, storeError(err)
	}

	balance, err := coin.GetBalance(ctx, w.WalletRef)
	if err != nil {
		return nil, providerError(err)
	}
	return &model.RailWalletResponse{Rail: r, WalletRef: w.WalletRef, Address: w.Address, Balance: balance}, nil
}

// RailBalance returns the balance of the caller's wallet on a stablecoin rail.
func (s *Service) RailBalance(ctx context.Context, caller model.Caller, r model.Rail) (*model.RailBalanceResponse, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	coin, err := s.stablecoin(r)
	if err != nil {
		return nil, err
	}

	w, err := s.railWallet(ctx, caller.ID, r)
	if err != nil {
		return nil, err
	}
	balance, err := coin.GetBalance(ctx, w.WalletRef)
	if err != nil {
		return nil, providerError(err)
	}
	return &model.RailBalanceResponse{Rail: r, Balance: balance, Currency: string(r)}, nil
}

func (s *Service) railWallet(ctx context.Context, ownerID string, r model.Rail) (*model.RailWallet, error) {
	w, err := s.store.GetRailWallet(ctx, ownerID, r)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.WalletNotInitialized(string(r) + " wallet")
	}
	if err != nil {
		return nil, storeError(err)
	}
	return w, nil
}

// ListTransfers returns the caller's most recent transfers, newest first.
func (s *Service) ListTransfers(ctx context.Context, caller model.Caller, limit int) ([]model.Transfer, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	transfers, err := s.store.ListTransfers(ctx, caller.ID, limit)
	if err != nil {
		return nil, storeError(err)
	}
	if transfers == nil {
		transfers = []model.Transfer{}
	}
	return transfers, nil
}

func storeError(err error) error {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		return err
	}
	return apperr.Internal(err)
}

// providerError classifies a failed provider call outside the send path.
func providerError(err error) error {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		return err
	}
	if pe, ok := rail.AsProviderError(err); ok {
		return apperr.Wrap(apperr.CodeProvider, pe.Provider+" request failed", err)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return apperr.Wrap(apperr.CodeProvider, "provider request timed out", err)
	}
	return apperr.Internal(err)
}
