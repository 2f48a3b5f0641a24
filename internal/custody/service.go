package custody

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlexZinkM/rail-wallet/ethereum"
	"github.com/AlexZinkM/rail-wallet/internal/apperr"
	"github.com/AlexZinkM/rail-wallet/internal/crypto"
	"github.com/AlexZinkM/rail-wallet/internal/logger"
	"github.com/AlexZinkM/rail-wallet/solana"
	"github.com/AlexZinkM/rail-wallet/xrpl"

	"go.uber.org/zap"
)

var errAddressMismatch = errors.New("revealed secret does not derive the stored address")

// Service owns the envelope cipher. Plaintext keys exist only inside
// Generate and WithKeys.
type Service struct {
	cipher *crypto.Cipher
	log    *zap.Logger
}

func NewService(cipher *crypto.Cipher) *Service {
	return &Service{cipher: cipher, log: logger.Component("custody")}
}

// Generate creates an Ethereum key, a Solana keypair and an XRPL ed25519
// wallet and returns them together with their encrypted form. The caller
// wipes the material.
func (s *Service) Generate() (*KeyMaterial, *crypto.EncryptedBlob, error) {
	eth, err := ethereum.NewWallet()
	if err != nil {
		return nil, nil, apperr.Wrap(apperr.CodeKeyCustody, "failed to generate Ethereum key", err)
	}
	sol := solana.NewWallet()

	xw, err := xrpl.NewWallet()
	if err != nil {
		clear(eth.PrivateKey)
		clear(sol.PrivateKey)
		return nil, nil, apperr.Wrap(apperr.CodeKeyCustody, "failed to generate XRPL wallet", err)
	}
	defer xw.Wipe()

	keys := &KeyMaterial{
		EthereumPrivateKey: eth.PrivateKey,
		EthereumAddress:    eth.Address,
		SolanaPrivateKey:   sol.PrivateKey,
		SolanaAddress:      sol.Address,
		XRPLSeed:           xw.Seed,
		XRPLAddress:        xw.Address,
	}

	blob, err := s.cipher.EncryptJSON(keys)
	if err != nil {
		keys.Wipe()
		return nil, nil, apperr.Wrap(apperr.CodeKeyCustody, "failed to encrypt key material", err)
	}

	s.log.Info("generated key material",
		zap.String("eth", MaskAddress(keys.EthereumAddress)),
		zap.String("solana", MaskAddress(keys.SolanaAddress)),
		zap.String("xrpl", MaskAddress(keys.XRPLAddress)))

	return keys, blob, nil
}

// Reveal decrypts blob and checks that each secret derives its address.
// Every failure is a KEY_CUSTODY_ERROR; no partial material is returned.
func (s *Service) Reveal(blob *crypto.EncryptedBlob) (*KeyMaterial, error) {
	var keys KeyMaterial
	if err := s.cipher.DecryptJSON(blob, &keys); err != nil {
		return nil, apperr.Wrap(apperr.CodeKeyCustody, "failed to decrypt key material", err)
	}

	if err := verify(&keys); err != nil {
		keys.Wipe()
		return nil, apperr.Wrap(apperr.CodeKeyCustody, "key material is inconsistent", err)
	}
	return &keys, nil
}

// RevealStored is Reveal for the stored envelope string.
func (s *Service) RevealStored(stored string) (*KeyMaterial, error) {
	blob, err := crypto.ParseBlob(stored)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeKeyCustody, "stored key material is malformed", err)
	}
	return s.Reveal(blob)
}

// WithKeys reveals the stored material, runs fn and wipes the material
// whatever fn returns.
func (s *Service) WithKeys(ctx context.Context, stored string, fn func(*KeyMaterial) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	keys, err := s.RevealStored(stored)
	if err != nil {
		s.log.Error("failed to reveal key material", zap.Error(err))
		return err
	}
	defer keys.Wipe()

	return fn(keys)
}

func verify(keys *KeyMaterial) error {
	ethAddress, err := ethereum.AddressFromPrivateKey(keys.EthereumPrivateKey)
	if err != nil {
		return fmt.Errorf("ethereum: %w", err)
	}
	if ethAddress != keys.EthereumAddress {
		return fmt.Errorf("ethereum: %w", errAddressMismatch)
	}

	address, err := solana.AddressFromPrivateKey(keys.SolanaPrivateKey)
	if err != nil {
		return fmt.Errorf("solana: %w", err)
	}
	if address != keys.SolanaAddress {
		return fmt.Errorf("solana: %w", errAddressMismatch)
	}

	xw, err := xrpl.WalletFromSeed(keys.XRPLSeed)
	if err != nil {
		return fmt.Errorf("xrpl: %w", err)
	}
	defer xw.Wipe()
	if xw.Address != keys.XRPLAddress {
		return fmt.Errorf("xrpl: %w", errAddressMismatch)
	}
	return nil
}
