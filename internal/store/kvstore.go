package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/AlexZinkM/rail-wallet/internal/model"
)

// Key layout:
//
//	a/<owner>                     account
//	w/<owner>/<rail>              rail wallet
//	t/<idempotency key>           transfer
//	o/<owner>/<created nanos>/<id> -> idempotency key, for listing
//	c/<owner>/<card id>           card
const (
	prefixAccount    = "a/"
	prefixWallet     = "w/"
	prefixTransfer   = "t/"
	prefixOwnerIndex = "o/"
	prefixCard       = "c/"
)

// The model types hide owner ids and key blobs from API responses;
// records keep them.
type accountRecord struct {
	model.Account
	EncryptedKeys string `json:"encryptedKeys"`
}

type transferRecord struct {
	model.Transfer
	OwnerID string `json:"ownerId"`
}

type cardRecord struct {
	model.Card
	OwnerID string `json:"ownerId"`
}

// KVStore implements Store on any KV backend. Writes are serialized so the
// create-if-absent checks hold within one process.
type KVStore struct {
	kv KV
	mu sync.Mutex
}

func NewKVStore(kv KV) *KVStore {
	return &KVStore{kv: kv}
}

// NewMemory returns a Store kept in process memory.
func NewMemory() *KVStore {
	return NewKVStore(NewMemoryKV())
}

// OpenBadger returns a Store backed by a Badger database at path.
func OpenBadger(path string) (*KVStore, error) {
	kv, err := OpenBadgerKV(path)
	if err != nil {
		return nil, err
	}
	return NewKVStore(kv), nil
}

func (s *KVStore) getJSON(key string, v any) error {
	data, err := s.kv.Get([]byte(key))
	if errors.Is(err, errKeyNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (s *KVStore) putJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.kv.Put([]byte(key), data)
}

func (s *KVStore) GetAccount(_ context.Context, ownerID string) (*model.Account, error) {
	var rec accountRecord
	if err := s.getJSON(prefixAccount+ownerID, &rec); err != nil {
		return nil, err
	}
	acct := rec.Account
	acct.EncryptedKeys = rec.EncryptedKeys
	return &acct, nil
}

func (s *KVStore) CreateAccount(ctx context.Context, acct *model.Account) (*model.Account, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.GetAccount(ctx, acct.OwnerID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, false, err
	}

	if err := s.putJSON(prefixAccount+acct.OwnerID, accountRecord{Account: *acct, EncryptedKeys: acct.EncryptedKeys}); err != nil {
		return nil, false, err
	}
	stored := *acct
	return &stored, true, nil
}

func walletKey(ownerID string, rail model.Rail) string {
	return prefixWallet + ownerID + "/" + string(rail)
}

func (s *KVStore) GetRailWallet(_ context.Context, ownerID string, rail model.Rail) (*model.RailWallet, error) {
	var w model.RailWallet
	if err := s.getJSON(walletKey(ownerID, rail), &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *KVStore) PutRailWallet(ctx context.Context, w *model.RailWallet) (*model.RailWallet, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.GetRailWallet(ctx, w.OwnerID, w.Rail)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, false, err
	}

	if err := s.putJSON(walletKey(w.OwnerID, w.Rail), w); err != nil {
		return nil, false, err
	}
	stored := *w
	return &stored, true, nil
}

func (s *KVStore) CreateTransfer(_ context.Context, t *model.Transfer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := prefixTransfer + t.IdempotencyKey
	exists, err := s.kv.Has([]byte(key))
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicateIdempotencyKey
	}

	if err := s.putJSON(key, transferRecord{Transfer: *t, OwnerID: t.OwnerID}); err != nil {
		return err
	}
	index := fmt.Sprintf("%s%s/%020d/%s", prefixOwnerIndex, t.OwnerID, t.CreatedAt.UnixNano(), t.ID)
	return s.kv.Put([]byte(index), []byte(t.IdempotencyKey))
}

func (s *KVStore) GetTransferByIdempotencyKey(_ context.Context, key string) (*model.Transfer, error) {
	var rec transferRecord
	if err := s.getJSON(prefixTransfer+key, &rec); err != nil {
		return nil, err
	}
	t := rec.Transfer
	t.OwnerID = rec.OwnerID
	return &t, nil
}

func (s *KVStore) UpdateTransfer(ctx context.Context, t *model.Transfer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, err := s.GetTransferByIdempotencyKey(ctx, t.IdempotencyKey)
	if err != nil {
		return err
	}
	stored.Status = t.Status
	stored.TxHash = t.TxHash
	stored.ProviderRef = t.ProviderRef
	return s.putJSON(prefixTransfer+t.IdempotencyKey, transferRecord{Transfer: *stored, OwnerID: stored.OwnerID})
}

func (s *KVStore) ListTransfers(ctx context.Context, ownerID string, limit int) ([]model.Transfer, error) {
	limit = normalizeLimit(limit)

	var keys []string
	err := s.kv.ForEach([]byte(prefixOwnerIndex+ownerID+"/"), func(_, value []byte) error {
		keys = append(keys, string(value))
		return nil
	})
	if err != nil {
		return nil, err
	}

	// index keys sort oldest first
	out := make([]model.Transfer, 0, min(limit, len(keys)))
	for i := len(keys) - 1; i >= 0 && len(out) < limit; i-- {
		t, err := s.GetTransferByIdempotencyKey(ctx, keys[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	return out, nil
}

func cardKey(ownerID, cardID string) string {
	return prefixCard + ownerID + "/" + cardID
}

func (s *KVStore) CreateCard(_ context.Context, c *model.Card) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.putJSON(cardKey(c.OwnerID, c.ID), cardRecord{Card: *c, OwnerID: c.OwnerID})
}

func (s *KVStore) UpdateCard(ctx context.Context, c *model.Card) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.GetCard(ctx, c.OwnerID, c.ID); err != nil {
		return err
	}
	return s.putJSON(cardKey(c.OwnerID, c.ID), cardRecord{Card: *c, OwnerID: c.OwnerID})
}

func (s *KVStore) GetCard(_ context.Context, ownerID, cardID string) (*model.Card, error) {
	var rec cardRecord
	if err := s.getJSON(cardKey(ownerID, cardID), &rec); err != nil {
		return nil, err
	}
	c := rec.Card
	c.OwnerID = rec.OwnerID
	return &c, nil
}

func (s *KVStore) ListCards(_ context.Context, ownerID string) ([]model.Card, error) {
	var cards []model.Card
	err := s.kv.ForEach([]byte(prefixCard+ownerID+"/"), func(_, value []byte) error {
		var rec cardRecord
		if err := json.Unmarshal(value, &rec); err != nil {
			return fmt.Errorf("decode card: %w", err)
		}
		c := rec.Card
		c.OwnerID = rec.OwnerID
		cards = append(cards, c)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].CreatedAt.After(cards[j].CreatedAt)
	})
	return cards, nil
}

func (s *KVStore) Close() error {
	return s.kv.Close()
}
