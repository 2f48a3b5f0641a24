package common

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

const (
	SOLDecimals    = 9 // SOL has 9 decimals (lamports)
	XRPDecimals    = 6 // XRP has 6 decimals (drops)
	USDCDecimals   = 6 // USDC has 6 decimals (micro)
	USDTDecimals   = 6 // USDT has 6 decimals (micro)
	CardDecimals   = 2 // card amounts are cents
	ETHDecimals    = 18
	displayMinFrac = 2
)

var (
	ErrEmptyAmount    = errors.New("amount is required")
	ErrInvalidAmount  = errors.New("invalid amount format")
	ErrTooManyDigits  = errors.New("too many fractional digits")
	ErrNonPositive    = errors.New("amount must be greater than zero")
	ErrAmountOverflow = errors.New("amount is too large")
)

var weiPerETH = new(big.Int).Exp(big.NewInt(10), big.NewInt(ETHDecimals), nil)

// LamportsToSOL converts lamports to SOL string without float precision loss
func LamportsToSOL(lamports uint64) string {
	return FormatUnits(lamports, SOLDecimals)
}

// DropsToXRP converts drops to XRP string without float precision loss
func DropsToXRP(drops uint64) string {
	return FormatUnits(drops, XRPDecimals)
}

// FormatWei renders a wei balance as ETH. Wei balances do not fit in uint64.
func FormatWei(wei *big.Int) string {
	if wei == nil || wei.Sign() <= 0 {
		return FormatUnits(0, ETHDecimals)
	}
	whole, frac := new(big.Int).QuoRem(wei, weiPerETH, new(big.Int))
	fs := frac.String()
	return whole.String() + "." + strings.Repeat("0", ETHDecimals-len(fs)) + fs
}

// FormatUnits converts integer to decimal string by inserting decimal point
// Example: FormatUnits(24981836, 9) = "0.024981836"
func FormatUnits(value uint64, decimals int) string {
	s := strconv.FormatUint(value, 10)
	if decimals == 0 {
		return s
	}

	// Pad with leading zeros if needed
	if len(s) <= decimals {
		s = strings.Repeat("0", decimals-len(s)+1) + s
	}

	// Insert decimal point
	pos := len(s) - decimals
	return s[:pos] + "." + s[pos:]
}

// FormatDisplay formats like FormatUnits but trims trailing zeros down to two
// fractional digits, e.g. FormatDisplay(400000000, 6) = "400.00".
func FormatDisplay(value uint64, decimals int) string {
	s := FormatUnits(value, decimals)
	if decimals <= displayMinFrac {
		return s
	}
	dot := strings.IndexByte(s, '.')
	end := len(s)
	for end > dot+1+displayMinFrac && s[end-1] == '0' {
		end--
	}
	return s[:end]
}

// ParseUnits converts decimal string to integer smallest units.
// Unlike the display helpers it is strict: more fractional digits than
// decimals is an error, never a silent truncation.
// Example: ParseUnits("0.024981836", 9) = 24981836
func ParseUnits(s string, decimals int) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmptyAmount
	}

	whole, frac, hasDot := strings.Cut(s, ".")
	if whole == "" || (hasDot && frac == "") {
		return 0, ErrInvalidAmount
	}
	if !isDigits(whole) || !isDigits(frac) {
		return 0, ErrInvalidAmount
	}
	if len(frac) > decimals {
		return 0, fmt.Errorf("%w: at most %d allowed", ErrTooManyDigits, decimals)
	}

	// Pad fractional part to exact decimals
	frac += strings.Repeat("0", decimals-len(frac))

	n, err := strconv.ParseUint(whole+frac, 10, 64)
	if err != nil {
		return 0, ErrAmountOverflow
	}
	return n, nil
}

// ParsePositive is ParseUnits that also rejects zero.
func ParsePositive(s string, decimals int) (uint64, error) {
	n, err := ParseUnits(s, decimals)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, ErrNonPositive
	}
	return n, nil
}

// CoversAmountAndFee reports whether balance pays amount plus fee. The sum is
// never formed, so amounts near the uint64 limit cannot wrap.
func CoversAmountAndFee(balance, amount, fee uint64) bool {
	return amount <= balance && balance-amount >= fee
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
