// Package xrpl generates XRP Ledger ed25519 wallets and signs native XRP
// payments locally, so seeds never leave the process.
package xrpl

import (
	"bytes"
	"errors"

	addresscodec "github.com/Peersyst/xrpl-go/address-codec"
)

var (
	ErrInvalidAddress = errors.New("invalid XRPL address")
	ErrInvalidSeed    = errors.New("invalid XRPL seed")
)

var ed25519SeedPrefix = []byte{0x01, 0xE1, 0x4B}

// IsValidAddress reports whether address is a classic address with a valid
// checksum. The codec's own IsValidClassicAddress only checks the length.
func IsValidAddress(address string) bool {
	raw, err := addresscodec.Base58CheckDecode(address)
	if err != nil {
		return false
	}
	return len(raw) == 1+addresscodec.AccountAddressLength && raw[0] == addresscodec.AccountAddressPrefix
}

// checkSeed accepts only checksummed ed25519 family seeds ("sEd...").
func checkSeed(seed string) error {
	raw, err := addresscodec.Base58CheckDecode(seed)
	if err != nil {
		return ErrInvalidSeed
	}
	if len(raw) != len(ed25519SeedPrefix)+addresscodec.FamilySeedLength || !bytes.HasPrefix(raw, ed25519SeedPrefix) {
		return ErrInvalidSeed
	}
	return nil
}
