package xrpl

import (
	"fmt"

	xrplcrypto "github.com/Peersyst/xrpl-go/pkg/crypto"
	"github.com/Peersyst/xrpl-go/xrpl/wallet"
)

// Wallet is an ed25519 XRPL keypair.
type Wallet struct {
	Seed    string
	Address string
	keys    wallet.Wallet
}

// NewWallet generates a wallet from fresh random entropy.
func NewWallet() (*Wallet, error) {
	w, err := wallet.New(xrplcrypto.ED25519())
	if err != nil {
		return nil, fmt.Errorf("failed to generate wallet: %w", err)
	}
	return fromKeys(w), nil
}

// WalletFromSeed derives the wallet of an "sEd..." seed.
func WalletFromSeed(seed string) (*Wallet, error) {
	if err := checkSeed(seed); err != nil {
		return nil, err
	}
	w, err := wallet.FromSeed(seed, "")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}
	return fromKeys(w), nil
}

func fromKeys(w wallet.Wallet) *Wallet {
	return &Wallet{Seed: w.Seed, Address: w.ClassicAddress.String(), keys: w}
}

// PublicKeyHex returns the upper-case hex public key as used in tx_json.
func (w *Wallet) PublicKeyHex() string {
	return w.keys.PublicKey
}

// Wipe drops the seed and private key. Go strings cannot be zeroed in place,
// so this only releases the references.
func (w *Wallet) Wipe() {
	w.Seed = ""
	w.keys.Seed = ""
	w.keys.PrivateKey = ""
}
