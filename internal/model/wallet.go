package model

import "time"

// Caller is the verified identity supplied by the gateway.
type Caller struct {
	ID    string
	Email string
}

// Account holds one owner's chain addresses and encrypted key material.
// EncryptedKeys is the stored envelope string; it is never rendered.
type Account struct {
	ID              string    `json:"id"`
	OwnerID         string    `json:"ownerId"`
	EthereumAddress string    `json:"ethAddress"`
	SolanaAddress   string    `json:"solanaAddress"`
	XRPLAddress     string    `json:"xrplAddress"`
	EncryptedKeys   string    `json:"-"`
	CreatedAt       time.Time `json:"createdAt"`
}

// RailWallet references a wallet custodied by a rail provider.
type RailWallet struct {
	Rail      Rail      `json:"rail"`
	OwnerID   string    `json:"ownerId"`
	WalletRef string    `json:"walletRef"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// WalletInitResponse represents response for POST /wallet/init
type WalletInitResponse struct {
	EthereumAddress string `json:"ethAddress"`
	SolanaAddress   string `json:"solanaAddress"`
	XRPLAddress     string `json:"xrplAddress"`
	EthereumQR      string `json:"ethQr,omitempty"`
	SolanaQR        string `json:"solanaQr,omitempty"`
	XRPLQR          string `json:"xrplQr,omitempty"`
	Initialized     bool   `json:"initialized"`
}

// RailWalletResponse represents response for POST /{rail}/wallets/init
type RailWalletResponse struct {
	Rail      Rail   `json:"rail"`
	WalletRef string `json:"walletRef"`
	Address   string `json:"address,omitempty"`
	Balance   string `json:"balance"`
}
