package transfer

import (
	"context"
	"testing"

	"github.com/AlexZinkM/rail-wallet/internal/apperr"
	"github.com/AlexZinkM/rail-wallet/internal/mocks"
	"github.com/AlexZinkM/rail-wallet/internal/model"
	"github.com/AlexZinkM/rail-wallet/internal/rail"
	"github.com/AlexZinkM/rail-wallet/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestIssueAndTopupCard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	card, err := f.svc.IssueCard(ctx, testCaller, model.IssueCardRequest{Amount: "25"})
	require.NoError(t, err)
	assert.Equal(t, "25.00", card.Balance)
	assert.Equal(t, "giftbit", card.Provider)
	assert.Len(t, card.Last4, 4)

	tr, err := f.svc.TopupCard(ctx, testCaller, model.TopupCardRequest{CardID: card.ID, Amount: "10.5", RequestedAt: 7})
	require.NoError(t, err)
	assert.Equal(t, model.TransferSimulated, tr.Status)
	assert.Equal(t, model.RailCard, tr.Rail)
	assert.Equal(t, "10.50", tr.Amount)
	assert.Equal(t, "card-user-1-7", tr.IdempotencyKey)

	again, err := f.svc.TopupCard(ctx, testCaller, model.TopupCardRequest{CardID: card.ID, Amount: "10.5", RequestedAt: 7})
	require.NoError(t, err)
	assert.Equal(t, tr.ID, again.ID)

	cards, err := f.svc.ListCards(ctx, testCaller)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "35.50", cards[0].Balance)

	transfers, err := f.svc.ListTransfers(ctx, testCaller, 0)
	require.NoError(t, err)
	assert.Len(t, transfers, 1)
}

func TestIssueCard_RepeatedRequestReturnsSameCard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.svc.IssueCard(ctx, testCaller, model.IssueCardRequest{Amount: "25", RequestedAt: 5})
	require.NoError(t, err)
	second, err := f.svc.IssueCard(ctx, testCaller, model.IssueCardRequest{Amount: "25", RequestedAt: 5})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	third, err := f.svc.IssueCard(ctx, testCaller, model.IssueCardRequest{Amount: "25", RequestedAt: 6})
	require.NoError(t, err)
	assert.NotEqual(t, first.ProviderID, third.ProviderID)

	cards, err := f.svc.ListCards(ctx, testCaller)
	require.NoError(t, err)
	assert.Len(t, cards, 2)
}

func TestRestart_CardTopupUsesStoredCard(t *testing.T) {
	st := store.NewMemory()
	ctx := context.Background()

	before := newFixtureOver(t, st)
	card, err := before.svc.IssueCard(ctx, testCaller, model.IssueCardRequest{Amount: "25", RequestedAt: 1})
	require.NoError(t, err)

	after := newFixtureOver(t, st)
	tr, err := after.svc.TopupCard(ctx, testCaller, model.TopupCardRequest{CardID: card.ID, Amount: "10", RequestedAt: 2})
	require.NoError(t, err)
	assert.Equal(t, model.TransferSimulated, tr.Status)

	cards, err := after.svc.ListCards(ctx, testCaller)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "35.00", cards[0].Balance)
}

func TestTopupCard_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.TopupCard(ctx, testCaller, model.TopupCardRequest{CardID: "missing", Amount: "1"})
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))

	_, err = f.svc.TopupCard(ctx, testCaller, model.TopupCardRequest{CardID: "missing", Amount: "1.001"})
	assert.True(t, apperr.Is(err, apperr.CodeValidation))

	_, err = f.svc.TopupCard(ctx, testCaller, model.TopupCardRequest{Amount: "1"})
	assert.True(t, apperr.Is(err, apperr.CodeValidation))

	_, err = f.svc.IssueCard(ctx, testCaller, model.IssueCardRequest{Amount: "0"})
	assert.True(t, apperr.Is(err, apperr.CodeValidation))
}

func TestTopupCard_OtherOwnersCardNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	card, err := f.svc.IssueCard(ctx, testCaller, model.IssueCardRequest{Amount: "5"})
	require.NoError(t, err)

	_, err = f.svc.TopupCard(ctx, model.Caller{ID: "user-2"}, model.TopupCardRequest{CardID: card.ID, Amount: "1"})
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
}

func TestTopupCard_DefinitiveRejectionRecordedAsFailed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	issuer := mocks.NewMockCardIssuerForTest(t)
	issuer.EXPECT().Info().Return(rail.Info{Provider: "giftbit"}).AnyTimes()
	issuer.EXPECT().IssueCard(gomock.Any(), gomock.Any()).
		Return(&rail.Card{ProviderID: "gb-1", Last4: "4242", Expiry: "01/26", Balance: "5.00", Status: "ACTIVE"}, nil)
	issuer.EXPECT().TopupCard(gomock.Any(), rail.TopupRequest{CardRef: "gb-1", Amount: "1.00", IdempotencyKey: "card-user-1-3"}).
		Return(nil, rail.Rejected("giftbit", "CARD_FROZEN", "card is frozen"))
	f.svc.rails.Card = issuer

	card, err := f.svc.IssueCard(ctx, testCaller, model.IssueCardRequest{Amount: "5"})
	require.NoError(t, err)

	tr, err := f.svc.TopupCard(ctx, testCaller, model.TopupCardRequest{CardID: card.ID, Amount: "1", RequestedAt: 3})
	require.NoError(t, err)
	assert.Equal(t, model.TransferFailed, tr.Status)
}

func TestListCards_Empty(t *testing.T) {
	f := newFixture(t)

	cards, err := f.svc.ListCards(context.Background(), testCaller)
	require.NoError(t, err)
	assert.NotNil(t, cards)
	assert.Empty(t, cards)
}
