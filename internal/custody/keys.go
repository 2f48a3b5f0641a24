// Package custody generates chain key material, keeps it envelope-encrypted
// at rest and reveals it only for the duration of a signing operation.
package custody

// KeyMaterial is the plaintext secret set of one account.
// It must never be logged or serialized outside this package.
type KeyMaterial struct {
	EthereumPrivateKey []byte `json:"ethPrivateKey"`
	EthereumAddress    string `json:"ethAddress"`
	SolanaPrivateKey   []byte `json:"solanaPrivateKey"`
	SolanaAddress      string `json:"solanaAddress"`
	XRPLSeed           string `json:"xrplSeed"`
	XRPLAddress        string `json:"xrplAddress"`
}

// Wipe zeroes the private key bytes and drops the seed.
func (k *KeyMaterial) Wipe() {
	if k == nil {
		return
	}
	clear(k.EthereumPrivateKey)
	clear(k.SolanaPrivateKey)
	k.XRPLSeed = ""
}

// String keeps key material out of formatted output.
func (k *KeyMaterial) String() string {
	return "KeyMaterial{eth:" + MaskAddress(k.EthereumAddress) + " solana:" + MaskAddress(k.SolanaAddress) + " xrpl:" + MaskAddress(k.XRPLAddress) + "}"
}

// MaskAddress shortens an address to first6...last4 for display and logs.
func MaskAddress(address string) string {
	if len(address) < 10 {
		return address
	}
	return address[:6] + "..." + address[len(address)-4:]
}
