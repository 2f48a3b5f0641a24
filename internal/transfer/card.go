package transfer

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlexZinkM/rail-wallet/internal/apperr"
	"github.com/AlexZinkM/rail-wallet/internal/model"
	"github.com/AlexZinkM/rail-wallet/internal/rail"
	"github.com/AlexZinkM/rail-wallet/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const cardExpiryMonths = 12

// IssueCard issues a prepaid card loaded with req.Amount. A repeated request
// (same owner and RequestedAt) returns the card already recorded for it.
func (s *Service) IssueCard(ctx context.Context, caller model.Caller, req model.IssueCardRequest) (*model.Card, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	_, amount, err := parseAmount(model.RailCard, req.Amount)
	if err != nil {
		return nil, err
	}

	requestedAt := req.RequestedAt
	if requestedAt <= 0 {
		requestedAt = s.now().UnixMilli()
	}
	key := fmt.Sprintf("card-issue-%s-%d", caller.ID, requestedAt)

	v, err, _ := s.group.Do(key, func() (any, error) {
		return s.issueCard(context.WithoutCancel(ctx), caller, amount, key)
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.Card), nil
}

func (s *Service) issueCard(ctx context.Context, caller model.Caller, amount, key string) (*model.Card, error) {
	issued, err := s.rails.Card.IssueCard(ctx, rail.IssueRequest{
		OwnerID:        caller.ID,
		Amount:         amount,
		ExpiryMonths:   cardExpiryMonths,
		IdempotencyKey: key,
	})
	if err != nil {
		return nil, providerError(err)
	}

	existing, err := s.cardByProviderID(ctx, caller.ID, issued.ProviderID)
	if err != nil {
		return nil, storeError(err)
	}
	if existing != nil {
		return existing, nil
	}

	card := &model.Card{
		ID:         uuid.NewString(),
		OwnerID:    caller.ID,
		Provider:   s.rails.Card.Info().Provider,
		ProviderID: issued.ProviderID,
		Last4:      issued.Last4,
		Expiry:     issued.Expiry,
		Balance:    issued.Balance,
		Status:     issued.Status,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.store.CreateCard(ctx, card); err != nil {
		s.log.Error("failed to record issued card",
			zap.String("provider_id", issued.ProviderID), zap.Error(err))
		return nil, storeError(err)
	}

	s.log.Info("card issued", zap.String("card_id", card.ID), zap.String("last4", card.Last4))
	return card, nil
}

func (s *Service) cardByProviderID(ctx context.Context, ownerID, providerID string) (*model.Card, error) {
	cards, err := s.store.ListCards(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	for i := range cards {
		if cards[i].ProviderID == providerID {
			return &cards[i], nil
		}
	}
	return nil, nil
}

// TopupCard loads funds onto one of the caller's cards and records the
// movement as a transfer on the card rail, with the same idempotency and
// failure rules as Send.
func (s *Service) TopupCard(ctx context.Context, caller model.Caller, req model.TopupCardRequest) (*model.Transfer, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	units, amount, err := parseAmount(model.RailCard, req.Amount)
	if err != nil {
		return nil, err
	}
	if req.CardID == "" {
		return nil, apperr.Validation("card id is required")
	}

	card, err := s.store.GetCard(ctx, caller.ID, req.CardID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.New(apperr.CodeNotFound, "card not found")
	}
	if err != nil {
		return nil, storeError(err)
	}

	requestedAt := req.RequestedAt
	if requestedAt <= 0 {
		requestedAt = s.now().UnixMilli()
	}
	info := s.rails.Card.Info()
	p := &sendPlan{
		caller: caller,
		rail:   model.RailCard,
		req:    model.SendRequest{ToAddress: card.ID, Amount: amount},
		units:  units,
		amount: amount,
		key:    IdempotencyKey(model.RailCard, caller.ID, requestedAt),
		info:   rail.Info{Provider: info.Provider, Chain: info.Provider},
	}

	if existing, err := s.store.GetTransferByIdempotencyKey(ctx, p.key); err == nil {
		return existing, nil
	}

	v, err, _ := s.group.Do(p.key, func() (any, error) {
		ctx := context.WithoutCancel(ctx)
		if existing, err := s.store.GetTransferByIdempotencyKey(ctx, p.key); err == nil {
			return existing, nil
		}

		if restorer, ok := s.rails.Card.(rail.CardRestorer); ok {
			restorer.RestoreCard(rail.Card{
				ProviderID: card.ProviderID,
				Last4:      card.Last4,
				Expiry:     card.Expiry,
				Balance:    card.Balance,
				Status:     card.Status,
			})
		}

		res, err := s.rails.Card.TopupCard(ctx, rail.TopupRequest{
			CardRef:        card.ProviderID,
			Amount:         amount,
			IdempotencyKey: p.key,
		})
		if err != nil {
			if rail.IsDefinitive(err) {
				pe, _ := rail.AsProviderError(err)
				return s.record(ctx, p, &rail.TransferResult{Status: model.TransferFailed, RawStatus: pe.Code})
			}
			return nil, sendError(p, err)
		}

		t, err := s.record(ctx, p, res)
		if err != nil {
			return nil, err
		}
		s.refreshCard(ctx, card)
		return t, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.Transfer), nil
}

// refreshCard copies the issuer's balance onto the stored card. The topup is
// already recorded, so failures here are only logged.
func (s *Service) refreshCard(ctx context.Context, card *model.Card) {
	balance, err := s.rails.Card.GetBalance(ctx, card.ProviderID)
	if err != nil {
		s.log.Warn("failed to refresh card balance", zap.String("card_id", card.ID), zap.Error(err))
		return
	}
	card.Balance = balance
	if err := s.store.UpdateCard(ctx, card); err != nil {
		s.log.Warn("failed to update card", zap.String("card_id", card.ID), zap.Error(err))
	}
}

// ListCards returns the caller's cards, newest first.
func (s *Service) ListCards(ctx context.Context, caller model.Caller) ([]model.Card, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	cards, err := s.store.ListCards(ctx, caller.ID)
	if err != nil {
		return nil, storeError(err)
	}
	if cards == nil {
		cards = []model.Card{}
	}
	return cards, nil
}
