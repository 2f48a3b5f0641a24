package store

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/AlexZinkM/rail-wallet/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testStore runs the shared suite against a Store implementation.
// Owner ids are unique per run so a persistent database can be reused.
func testStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()
	owner := "owner-" + uuid.NewString()
	base := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("AccountCreateIsIdempotent", func(t *testing.T) {
		_, err := s.GetAccount(ctx, owner)
		assert.ErrorIs(t, err, ErrNotFound)

		first := &model.Account{
			ID: uuid.NewString(), OwnerID: owner,
			EthereumAddress: "0x-1", SolanaAddress: "sol-1", XRPLAddress: "r-1",
			EncryptedKeys: `{"encrypted":"00","iv":"01","authTag":"02"}`,
			CreatedAt:     base,
		}
		stored, created, err := s.CreateAccount(ctx, first)
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, first.EncryptedKeys, stored.EncryptedKeys)

		second := *first
		second.ID = uuid.NewString()
		second.SolanaAddress = "sol-2"
		stored, created, err = s.CreateAccount(ctx, &second)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.ID, stored.ID)
		assert.Equal(t, "sol-1", stored.SolanaAddress)

		got, err := s.GetAccount(ctx, owner)
		require.NoError(t, err)
		assert.Equal(t, first.EncryptedKeys, got.EncryptedKeys)
		assert.Equal(t, "0x-1", got.EthereumAddress)
	})

	t.Run("RailWallet", func(t *testing.T) {
		_, err := s.GetRailWallet(ctx, owner, model.RailUSDC)
		assert.ErrorIs(t, err, ErrNotFound)

		w := &model.RailWallet{Rail: model.RailUSDC, OwnerID: owner, WalletRef: "sim-wallet-1", CreatedAt: base}
		_, created, err := s.PutRailWallet(ctx, w)
		require.NoError(t, err)
		assert.True(t, created)

		other := *w
		other.WalletRef = "sim-wallet-2"
		stored, created, err := s.PutRailWallet(ctx, &other)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, "sim-wallet-1", stored.WalletRef)

		_, err = s.GetRailWallet(ctx, owner, model.RailUSDT)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("TransfersUniqueAndNewestFirst", func(t *testing.T) {
		for i := 0; i < DefaultTransferLimit+5; i++ {
			tr := &model.Transfer{
				ID: uuid.NewString(), OwnerID: owner,
				Asset: "USDC", Chain: "ETH", Rail: model.RailUSDC,
				ToAddress: "0xabc", Amount: fmt.Sprintf("%d.000000", i),
				Status: model.TransferSimulated, IdempotencyKey: fmt.Sprintf("usdc-%s-%d", owner, i),
				CreatedAt: base.Add(time.Duration(i) * time.Second),
			}
			require.NoError(t, s.CreateTransfer(ctx, tr))
		}

		dup := &model.Transfer{
			ID: uuid.NewString(), OwnerID: owner, Rail: model.RailUSDC, Status: model.TransferFailed,
			IdempotencyKey: fmt.Sprintf("usdc-%s-0", owner), CreatedAt: base,
		}
		assert.ErrorIs(t, s.CreateTransfer(ctx, dup), ErrDuplicateIdempotencyKey)

		got, err := s.GetTransferByIdempotencyKey(ctx, fmt.Sprintf("usdc-%s-3", owner))
		require.NoError(t, err)
		assert.Equal(t, "3.000000", got.Amount)
		assert.Equal(t, owner, got.OwnerID)
		assert.Equal(t, model.TransferSimulated, got.Status)

		list, err := s.ListTransfers(ctx, owner, 0)
		require.NoError(t, err)
		require.Len(t, list, DefaultTransferLimit)
		assert.Equal(t, fmt.Sprintf("%d.000000", DefaultTransferLimit+4), list[0].Amount)
		for i := 1; i < len(list); i++ {
			assert.True(t, list[i-1].CreatedAt.After(list[i].CreatedAt))
		}

		list, err = s.ListTransfers(ctx, owner, 3)
		require.NoError(t, err)
		assert.Len(t, list, 3)

		none, err := s.ListTransfers(ctx, "nobody-"+owner, 10)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("UpdateTransfer", func(t *testing.T) {
		tr := &model.Transfer{
			ID: uuid.NewString(), OwnerID: owner, Asset: "USDT", Chain: "ethereum", Rail: model.RailUSDT,
			ToAddress: "0xabc", Amount: "1.000000", ProviderRef: "t-1",
			Status: model.TransferPending, IdempotencyKey: "usdt-" + owner + "-pending", CreatedAt: base,
		}
		require.NoError(t, s.CreateTransfer(ctx, tr))

		tr.Status = model.TransferCompleted
		tr.TxHash = "0xfeed"
		tr.Amount = "999.000000"
		require.NoError(t, s.UpdateTransfer(ctx, tr))

		got, err := s.GetTransferByIdempotencyKey(ctx, tr.IdempotencyKey)
		require.NoError(t, err)
		assert.Equal(t, model.TransferCompleted, got.Status)
		assert.Equal(t, "0xfeed", got.TxHash)
		assert.Equal(t, "1.000000", got.Amount)
		assert.Equal(t, owner, got.OwnerID)

		missing := *tr
		missing.IdempotencyKey = "usdt-" + owner + "-missing"
		assert.ErrorIs(t, s.UpdateTransfer(ctx, &missing), ErrNotFound)
	})

	t.Run("ConcurrentDuplicateTransfers", func(t *testing.T) {
		key := "xrp-" + owner + "-race"
		var wg sync.WaitGroup
		errs := make(chan error, 8)
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs <- s.CreateTransfer(ctx, &model.Transfer{
					ID: uuid.NewString(), OwnerID: owner, Rail: model.RailXRP,
					Status: model.TransferPending, IdempotencyKey: key, CreatedAt: time.Now().UTC(),
				})
			}()
		}
		wg.Wait()
		close(errs)

		ok := 0
		for err := range errs {
			if err == nil {
				ok++
				continue
			}
			assert.ErrorIs(t, err, ErrDuplicateIdempotencyKey)
		}
		assert.Equal(t, 1, ok)
	})

	t.Run("Cards", func(t *testing.T) {
		c := &model.Card{
			ID: uuid.NewString(), OwnerID: owner, Provider: "giftbit", ProviderID: "gb-1",
			Last4: "4242", Expiry: "01/29", Balance: "10.00", Status: "active", CreatedAt: base,
		}
		require.NoError(t, s.CreateCard(ctx, c))

		c.Balance = "15.00"
		require.NoError(t, s.UpdateCard(ctx, c))

		got, err := s.GetCard(ctx, owner, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "15.00", got.Balance)
		assert.Equal(t, owner, got.OwnerID)

		_, err = s.GetCard(ctx, "someone-else", c.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		missing := *c
		missing.ID = uuid.NewString()
		assert.ErrorIs(t, s.UpdateCard(ctx, &missing), ErrNotFound)

		cards, err := s.ListCards(ctx, owner)
		require.NoError(t, err)
		require.Len(t, cards, 1)
		assert.Equal(t, "4242", cards[0].Last4)
	})
}

func TestMemoryStore(t *testing.T) {
	s := NewMemory()
	defer s.Close()
	testStore(t, s)
}

func TestBadgerStore(t *testing.T) {
	s, err := OpenBadger(t.TempDir())
	require.NoError(t, err)
	defer s.Close()
	testStore(t, s)
}

func TestBadgerStore_Reopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := OpenBadger(dir)
	require.NoError(t, err)
	_, _, err = s.CreateAccount(ctx, &model.Account{ID: "a1", OwnerID: "o1", EncryptedKeys: "blob", CreatedAt: time.Now()})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = OpenBadger(dir)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.GetAccount(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, "blob", got.EncryptedKeys)
}

func TestPostgresStore(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	s, err := OpenPostgres(context.Background(), dsn)
	require.NoError(t, err)
	defer s.Close()
	testStore(t, s)
}
