package transfer

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"math"
	"strings"

	"github.com/AlexZinkM/rail-wallet/internal/apperr"
	"github.com/AlexZinkM/rail-wallet/internal/common"
	"github.com/AlexZinkM/rail-wallet/internal/model"
	"github.com/AlexZinkM/rail-wallet/solana"
	"github.com/AlexZinkM/rail-wallet/xrpl"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/mr-tron/base58"
)

const maxLabelLen = 140

// Decimals returns the precision of amounts on r.
func Decimals(r model.Rail) int {
	switch r {
	case model.RailSOL:
		return common.SOLDecimals
	case model.RailXRP:
		return common.XRPDecimals
	case model.RailUSDC:
		return common.USDCDecimals
	case model.RailUSDT:
		return common.USDTDecimals
	default:
		return common.CardDecimals
	}
}

// parseAmount returns the amount in smallest units and its normalized form.
func parseAmount(r model.Rail, amount string) (uint64, string, error) {
	decimals := Decimals(r)
	units, err := common.ParsePositive(amount, decimals)
	if err != nil {
		if errors.Is(err, common.ErrTooManyDigits) {
			return 0, "", apperr.Validation("invalid amount: at most %d decimal places for %s", decimals, r)
		}
		return 0, "", apperr.Validation("invalid amount: %v", err)
	}
	if limit := maxUnits(r); units > limit {
		return 0, "", apperr.Validation("invalid amount: exceeds the total %s supply", r)
	}
	return units, common.FormatUnits(units, decimals), nil
}

// maxUnits bounds native amounts so that amount plus fee arithmetic further
// down cannot overflow.
func maxUnits(r model.Rail) uint64 {
	switch r {
	case model.RailXRP:
		return xrpl.MaxDrops
	case model.RailSOL:
		return solana.MaxLamports
	default:
		return math.MaxUint64
	}
}

// validateRecipient checks the destination format for the rail and, for the
// stablecoin rails, the chain the provider settles on.
func validateRecipient(r model.Rail, chain, to string) error {
	to = strings.TrimSpace(to)
	if to == "" {
		return apperr.Validation("recipient address is required")
	}

	var ok bool
	switch r {
	case model.RailXRP:
		ok = xrpl.IsValidAddress(to)
	case model.RailSOL:
		ok = solana.IsValidAddress(to)
	case model.RailUSDC, model.RailUSDT:
		ok = validChainAddress(chain, to)
	default:
		ok = true
	}
	if !ok {
		return apperr.Validation("invalid %s recipient address", r)
	}
	return nil
}

func validChainAddress(chain, to string) bool {
	switch strings.ToLower(chain) {
	case "eth", "ethereum", "matic", "polygon", "avax", "arb", "base", "op", "bsc":
		return ethcommon.IsHexAddress(to)
	case "sol", "solana":
		return solana.IsValidAddress(to)
	case "trx", "tron":
		return isTronAddress(to)
	default:
		return true
	}
}

// isTronAddress checks a base58check address with the 0x41 version byte.
func isTronAddress(s string) bool {
	raw, err := base58.Decode(s)
	if err != nil || len(raw) != 25 || raw[0] != 0x41 {
		return false
	}
	first := sha256.Sum256(raw[:21])
	second := sha256.Sum256(first[:])
	return bytes.Equal(second[:4], raw[21:])
}

func validateLabel(label string) error {
	if len(label) > maxLabelLen {
		return apperr.Validation("label must be at most %d characters", maxLabelLen)
	}
	return nil
}
