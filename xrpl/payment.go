package xrpl

import (
	"errors"
	"fmt"
	"strconv"
)

// MaxDrops is the total XRP supply in drops.
const MaxDrops uint64 = 100_000_000_000 * 1_000_000

var ErrInvalidPayment = errors.New("invalid payment")

// Payment is a native XRP payment. Amounts are in drops.
type Payment struct {
	Account            string
	Destination        string
	Amount             uint64
	Fee                uint64
	Sequence           uint32
	LastLedgerSequence uint32
	Flags              uint32
	DestinationTag     *uint32
}

// SignedTx is a signed transaction ready for submit.
type SignedTx struct {
	Blob string // upper-case hex
	Hash string // upper-case hex transaction id
}

func (p *Payment) validate() error {
	if !IsValidAddress(p.Account) {
		return fmt.Errorf("%w: account: %w", ErrInvalidPayment, ErrInvalidAddress)
	}
	if !IsValidAddress(p.Destination) {
		return fmt.Errorf("%w: destination: %w", ErrInvalidPayment, ErrInvalidAddress)
	}
	if p.Account == p.Destination {
		return fmt.Errorf("%w: destination equals account", ErrInvalidPayment)
	}
	if p.Amount == 0 || p.Amount > MaxDrops {
		return fmt.Errorf("%w: amount out of range", ErrInvalidPayment)
	}
	if p.Fee == 0 || p.Fee > MaxDrops {
		return fmt.Errorf("%w: fee out of range", ErrInvalidPayment)
	}
	return nil
}

// txJSON renders the payment in the field shapes the binary codec expects:
// drops as decimal strings and every UInt32 as uint32.
func (p *Payment) txJSON() map[string]any {
	tx := map[string]any{
		"TransactionType": "Payment",
		"Account":         p.Account,
		"Destination":     p.Destination,
		"Amount":          strconv.FormatUint(p.Amount, 10),
		"Fee":             strconv.FormatUint(p.Fee, 10),
		"Flags":           p.Flags,
		"Sequence":        p.Sequence,
	}
	if p.LastLedgerSequence != 0 {
		tx["LastLedgerSequence"] = p.LastLedgerSequence
	}
	if p.DestinationTag != nil {
		tx["DestinationTag"] = *p.DestinationTag
	}
	return tx
}

// Sign serializes the payment, signs it with w and returns the blob and hash.
// w must own p.Account.
func (p *Payment) Sign(w *Wallet) (*SignedTx, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if w.Address != p.Account {
		return nil, fmt.Errorf("%w: wallet does not own account %s", ErrInvalidPayment, p.Account)
	}

	blob, hash, err := w.keys.Sign(p.txJSON())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayment, err)
	}
	return &SignedTx{Blob: blob, Hash: hash}, nil
}
