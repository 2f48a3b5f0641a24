// Package ethereum generates the account's Ethereum key and reads its ETH
// balance over JSON-RPC.
package ethereum

import (
	"fmt"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Wallet is a freshly generated secp256k1 key.
// PrivateKey is the 32-byte scalar; callers clear it after use.
type Wallet struct {
	PrivateKey []byte
	Address    string
}

// NewWallet generates a new Ethereum key.
func NewWallet() (*Wallet, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}
	return &Wallet{
		PrivateKey: crypto.FromECDSA(key),
		Address:    crypto.PubkeyToAddress(key.PublicKey).Hex(),
	}, nil
}

// AddressFromPrivateKey returns the checksummed address of a 32-byte key.
func AddressFromPrivateKey(privateKey []byte) (string, error) {
	key, err := crypto.ToECDSA(privateKey)
	if err != nil {
		return "", fmt.Errorf("invalid private key: %w", err)
	}
	return crypto.PubkeyToAddress(key.PublicKey).Hex(), nil
}

// IsValidAddress reports whether address is a 0x-prefixed 20-byte hex address.
func IsValidAddress(address string) bool {
	return len(address) == 42 && ethcommon.IsHexAddress(address)
}
