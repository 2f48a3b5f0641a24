package model

// Balances represents response for GET /wallet/balances
// A chain whose query failed reports "0" and an entry in Errors.
type Balances struct {
	ETH    string            `json:"eth"`
	SOL    string            `json:"sol"`
	XRP    string            `json:"xrp"`
	Errors map[string]string `json:"errors,omitempty"`
}

// RailBalanceResponse represents response for GET /{rail}/balance
type RailBalanceResponse struct {
	Rail     Rail   `json:"rail"`
	Balance  string `json:"balance"`
	Currency string `json:"currency"`
}
