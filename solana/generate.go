package solana

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// Wallet is a freshly generated Solana keypair.
// PrivateKey is the full 64-byte key; callers clear it after use.
type Wallet struct {
	PrivateKey []byte
	Address    string
}

// NewWallet generates a new Solana keypair.
func NewWallet() *Wallet {
	w := solana.NewWallet()
	return &Wallet{
		PrivateKey: w.PrivateKey,
		Address:    w.PublicKey().String(),
	}
}

// AddressFromPrivateKey returns the address a 64-byte private key signs for.
func AddressFromPrivateKey(privateKey []byte) (string, error) {
	if len(privateKey) != 64 {
		return "", fmt.Errorf("invalid private key length: expected 64 bytes, got %d", len(privateKey))
	}
	return solana.PrivateKey(privateKey).PublicKey().String(), nil
}

// IsValidAddress reports whether address is a base58 ed25519 public key.
func IsValidAddress(address string) bool {
	_, err := solana.PublicKeyFromBase58(address)
	return err == nil
}
