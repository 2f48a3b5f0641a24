package model

import "strings"

// Rail identifies one asset-transfer pathway.
type Rail string

const (
	RailXRP  Rail = "XRP"
	RailSOL  Rail = "SOL"
	RailUSDC Rail = "USDC"
	RailUSDT Rail = "USDT"
	RailCard Rail = "CARD"
)

// ParseRail accepts rail names case-insensitively.
func ParseRail(s string) (Rail, bool) {
	r := Rail(strings.ToUpper(strings.TrimSpace(s)))
	switch r {
	case RailXRP, RailSOL, RailUSDC, RailUSDT, RailCard:
		return r, true
	}
	return "", false
}

// ChainSigned reports whether transfers on r are signed with custodied keys.
func (r Rail) ChainSigned() bool {
	return r == RailXRP || r == RailSOL
}

// Key returns the lower-case form used in idempotency keys and routes.
func (r Rail) Key() string {
	return strings.ToLower(string(r))
}
