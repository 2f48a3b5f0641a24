package giftbit

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"github.com/AlexZinkM/rail-wallet/internal/common"
	"github.com/AlexZinkM/rail-wallet/internal/model"
	"github.com/AlexZinkM/rail-wallet/internal/rail"
)

const cardActive = "ACTIVE"

// Simulation is the in-memory card rail. Card balances live in the injected
// ledger; card details are derived from the issuing idempotency key.
type Simulation struct {
	ledger *rail.Ledger
	now    func() time.Time

	mu    sync.Mutex
	cards map[string]rail.Card
}

var (
	_ rail.CardIssuer   = (*Simulation)(nil)
	_ rail.CardRestorer = (*Simulation)(nil)
)

// NewSimulation creates a simulated card issuer over ledger.
func NewSimulation(ledger *rail.Ledger) *Simulation {
	if ledger == nil {
		ledger = rail.NewLedger()
	}
	return &Simulation{
		ledger: ledger,
		now:    time.Now,
		cards:  make(map[string]rail.Card),
	}
}

func (s *Simulation) Info() rail.Info {
	return rail.Info{Provider: providerName, Simulated: true}
}

func (s *Simulation) IssueCard(_ context.Context, req rail.IssueRequest) (*rail.Card, error) {
	units, err := common.ParsePositive(req.Amount, common.CardDecimals)
	if err != nil {
		return nil, rail.Rejected(providerName, "INVALID_AMOUNT", err.Error())
	}
	months := req.ExpiryMonths
	if months <= 0 {
		months = defaultExpiryMonths
	}

	ref := rail.SimulatedRef("sim-card-", req.IdempotencyKey)

	s.mu.Lock()
	defer s.mu.Unlock()

	if card, ok := s.cards[ref]; ok {
		return s.withBalance(card)
	}

	sum := sha256.Sum256([]byte(req.IdempotencyKey))
	expiry := s.now().AddDate(0, months, 0)
	card := rail.Card{
		ProviderID: ref,
		Last4:      fmt.Sprintf("%04d", 1000+binary.BigEndian.Uint32(sum[:4])%9000),
		Expiry:     expiry.Format("01/06"),
		Status:     cardActive,
	}
	s.ledger.Open(ref, units)
	s.cards[ref] = card
	return s.withBalance(card)
}

func (s *Simulation) GetCard(_ context.Context, cardRef string) (*rail.Card, error) {
	s.mu.Lock()
	card, ok := s.cards[cardRef]
	s.mu.Unlock()
	if !ok {
		return nil, rail.Rejected(providerName, "CARD_NOT_FOUND", "card "+cardRef+" not found in simulation")
	}
	return s.withBalance(card)
}

// TopupCard credits the card; replaying a key does not credit twice.
func (s *Simulation) TopupCard(ctx context.Context, req rail.TopupRequest) (*rail.TransferResult, error) {
	units, err := common.ParsePositive(req.Amount, common.CardDecimals)
	if err != nil {
		return nil, rail.Rejected(providerName, "INVALID_AMOUNT", err.Error())
	}
	if _, err := s.GetCard(ctx, req.CardRef); err != nil {
		return nil, err
	}
	if _, err := s.ledger.Credit(req.CardRef, units, req.IdempotencyKey); err != nil {
		return nil, rail.Rejected(providerName, "CARD_NOT_FOUND", err.Error())
	}
	return &rail.TransferResult{
		ProviderRef: rail.SimulatedRef("sim-topup-", req.IdempotencyKey),
		Status:      model.TransferSimulated,
		RawStatus:   "completed",
	}, nil
}

// RestoreCard re-registers a stored card at its stored balance. Cards this
// instance already knows are left alone.
func (s *Simulation) RestoreCard(card rail.Card) {
	units, err := common.ParseUnits(card.Balance, common.CardDecimals)
	if err != nil {
		units = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cards[card.ProviderID]; ok {
		return
	}
	card.Balance = ""
	s.ledger.Open(card.ProviderID, units)
	s.cards[card.ProviderID] = card
}

func (s *Simulation) GetBalance(ctx context.Context, cardRef string) (string, error) {
	card, err := s.GetCard(ctx, cardRef)
	if err != nil {
		return "", err
	}
	return card.Balance, nil
}

func (s *Simulation) withBalance(card rail.Card) (*rail.Card, error) {
	units, err := s.ledger.Balance(card.ProviderID)
	if err != nil {
		return nil, rail.Rejected(providerName, "CARD_NOT_FOUND", err.Error())
	}
	card.Balance = common.FormatUnits(units, common.CardDecimals)
	return &card, nil
}
