package rail

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"sync"
)

var ErrUnknownWallet = errors.New("wallet not found in simulation ledger")

// Ledger is the balance store behind the Simulated rails. Each constructed
// instance is independent; balances are integer smallest units.
type Ledger struct {
	mu      sync.Mutex
	wallets map[string]*ledgerEntry
}

type ledgerEntry struct {
	mu      sync.Mutex
	balance uint64
	applied map[string]Movement
}

// Movement is the effect of one Debit or Credit.
type Movement struct {
	Before   uint64
	After    uint64
	Replayed bool
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{wallets: make(map[string]*ledgerEntry)}
}

// Open creates ref with seed units. Reopening an existing wallet leaves its
// balance untouched and returns false.
func (l *Ledger) Open(ref string, seed uint64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.wallets[ref]; ok {
		return false
	}
	l.wallets[ref] = &ledgerEntry{balance: seed, applied: make(map[string]Movement)}
	return true
}

// Balance returns the current balance of ref.
func (l *Ledger) Balance(ref string) (uint64, error) {
	e, err := l.entry(ref)
	if err != nil {
		return 0, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.balance, nil
}

// Debit subtracts amount from ref, clamping at zero. A key that was already
// applied returns the original movement without debiting again.
func (l *Ledger) Debit(ref string, amount uint64, key string) (Movement, error) {
	return l.apply(ref, key, func(balance uint64) uint64 {
		if amount > balance {
			return 0
		}
		return balance - amount
	})
}

// Credit adds amount to ref. Idempotent per key like Debit.
func (l *Ledger) Credit(ref string, amount uint64, key string) (Movement, error) {
	return l.apply(ref, key, func(balance uint64) uint64 {
		return balance + amount
	})
}

func (l *Ledger) apply(ref, key string, next func(uint64) uint64) (Movement, error) {
	e, err := l.entry(ref)
	if err != nil {
		return Movement{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if key != "" {
		if m, ok := e.applied[key]; ok {
			m.Replayed = true
			return m, nil
		}
	}

	m := Movement{Before: e.balance}
	e.balance = next(e.balance)
	m.After = e.balance
	if key != "" {
		e.applied[key] = m
	}
	return m, nil
}

func (l *Ledger) entry(ref string) (*ledgerEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.wallets[ref]
	if !ok {
		return nil, ErrUnknownWallet
	}
	return e, nil
}

// SimulatedRef derives a stable synthetic reference from an idempotency key,
// so a replayed request reports the same reference.
func SimulatedRef(prefix, key string) string {
	sum := sha256.Sum256([]byte(key))
	return prefix + hex.EncodeToString(sum[:16])
}
