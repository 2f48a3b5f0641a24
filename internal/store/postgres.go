package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AlexZinkM/rail-wallet/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

const schema = `
CREATE TABLE IF NOT EXISTS accounts (
	id             TEXT PRIMARY KEY,
	owner_id       TEXT NOT NULL UNIQUE,
	eth_address    TEXT NOT NULL DEFAULT '',
	solana_address TEXT NOT NULL,
	xrpl_address   TEXT NOT NULL,
	encrypted_keys TEXT NOT NULL,
	created_at     TIMESTAMPTZ NOT NULL
);
ALTER TABLE accounts ADD COLUMN IF NOT EXISTS eth_address TEXT NOT NULL DEFAULT '';
CREATE TABLE IF NOT EXISTS rail_wallets (
	owner_id   TEXT NOT NULL,
	rail       TEXT NOT NULL,
	wallet_ref TEXT NOT NULL,
	address    TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL,
	PRIMARY KEY (owner_id, rail)
);
CREATE TABLE IF NOT EXISTS transfers (
	id              TEXT PRIMARY KEY,
	owner_id        TEXT NOT NULL,
	asset           TEXT NOT NULL,
	chain           TEXT NOT NULL,
	rail            TEXT NOT NULL,
	to_address      TEXT NOT NULL,
	amount          TEXT NOT NULL,
	tx_hash         TEXT NOT NULL DEFAULT '',
	provider_ref    TEXT NOT NULL DEFAULT '',
	status          TEXT NOT NULL,
	label           TEXT NOT NULL DEFAULT '',
	idempotency_key TEXT NOT NULL UNIQUE,
	created_at      TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS transfers_owner_created_idx ON transfers (owner_id, created_at DESC);
CREATE TABLE IF NOT EXISTS cards (
	id          TEXT PRIMARY KEY,
	owner_id    TEXT NOT NULL,
	provider    TEXT NOT NULL,
	provider_id TEXT NOT NULL,
	last4       TEXT NOT NULL,
	expiry      TEXT NOT NULL,
	balance     TEXT NOT NULL,
	status      TEXT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS cards_owner_idx ON cards (owner_id, created_at DESC);
`

// Postgres implements Store on a pgx connection pool.
type Postgres struct {
	pool *pgxpool.Pool
}

// OpenPostgres connects to dsn and applies the schema.
func OpenPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 15 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Postgres{pool: pool}, nil
}

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func (p *Postgres) GetAccount(ctx context.Context, ownerID string) (*model.Account, error) {
	var a model.Account
	err := p.pool.QueryRow(ctx, `
		SELECT id, owner_id, eth_address, solana_address, xrpl_address, encrypted_keys, created_at
		FROM accounts WHERE owner_id = $1`, ownerID).
		Scan(&a.ID, &a.OwnerID, &a.EthereumAddress, &a.SolanaAddress, &a.XRPLAddress, &a.EncryptedKeys, &a.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &a, nil
}

func (p *Postgres) CreateAccount(ctx context.Context, acct *model.Account) (*model.Account, bool, error) {
	tag, err := p.pool.Exec(ctx, `
		INSERT INTO accounts (id, owner_id, eth_address, solana_address, xrpl_address, encrypted_keys, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (owner_id) DO NOTHING`,
		acct.ID, acct.OwnerID, acct.EthereumAddress, acct.SolanaAddress, acct.XRPLAddress, acct.EncryptedKeys, acct.CreatedAt)
	if err != nil {
		return nil, false, fmt.Errorf("insert account: %w", err)
	}

	stored, err := p.GetAccount(ctx, acct.OwnerID)
	if err != nil {
		return nil, false, err
	}
	return stored, tag.RowsAffected() == 1, nil
}

func (p *Postgres) GetRailWallet(ctx context.Context, ownerID string, rail model.Rail) (*model.RailWallet, error) {
	var w model.RailWallet
	err := p.pool.QueryRow(ctx, `
		SELECT owner_id, rail, wallet_ref, address, created_at
		FROM rail_wallets WHERE owner_id = $1 AND rail = $2`, ownerID, string(rail)).
		Scan(&w.OwnerID, &w.Rail, &w.WalletRef, &w.Address, &w.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &w, nil
}

func (p *Postgres) PutRailWallet(ctx context.Context, w *model.RailWallet) (*model.RailWallet, bool, error) {
	tag, err := p.pool.Exec(ctx, `
		INSERT INTO rail_wallets (owner_id, rail, wallet_ref, address, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (owner_id, rail) DO NOTHING`,
		w.OwnerID, string(w.Rail), w.WalletRef, w.Address, w.CreatedAt)
	if err != nil {
		return nil, false, fmt.Errorf("insert rail wallet: %w", err)
	}

	stored, err := p.GetRailWallet(ctx, w.OwnerID, w.Rail)
	if err != nil {
		return nil, false, err
	}
	return stored, tag.RowsAffected() == 1, nil
}

func (p *Postgres) CreateTransfer(ctx context.Context, t *model.Transfer) error {
	_, err := p.pool.Exec(ctx, `
		INSERT INTO transfers (id, owner_id, asset, chain, rail, to_address, amount, tx_hash,
			provider_ref, status, label, idempotency_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		t.ID, t.OwnerID, t.Asset, t.Chain, string(t.Rail), t.ToAddress, t.Amount, t.TxHash,
		t.ProviderRef, string(t.Status), t.Label, t.IdempotencyKey, t.CreatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicateIdempotencyKey
	}
	if err != nil {
		return fmt.Errorf("insert transfer: %w", err)
	}
	return nil
}

const transferColumns = `id, owner_id, asset, chain, rail, to_address, amount, tx_hash,
	provider_ref, status, label, idempotency_key, created_at`

func scanTransfer(row pgx.Row) (*model.Transfer, error) {
	var t model.Transfer
	err := row.Scan(&t.ID, &t.OwnerID, &t.Asset, &t.Chain, &t.Rail, &t.ToAddress, &t.Amount, &t.TxHash,
		&t.ProviderRef, &t.Status, &t.Label, &t.IdempotencyKey, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (p *Postgres) GetTransferByIdempotencyKey(ctx context.Context, key string) (*model.Transfer, error) {
	t, err := scanTransfer(p.pool.QueryRow(ctx,
		`SELECT `+transferColumns+` FROM transfers WHERE idempotency_key = $1`, key))
	if err != nil {
		return nil, notFound(err)
	}
	return t, nil
}

func (p *Postgres) UpdateTransfer(ctx context.Context, t *model.Transfer) error {
	tag, err := p.pool.Exec(ctx, `
		UPDATE transfers SET status = $2, tx_hash = $3, provider_ref = $4 WHERE idempotency_key = $1`,
		t.IdempotencyKey, string(t.Status), t.TxHash, t.ProviderRef)
	if err != nil {
		return fmt.Errorf("update transfer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) ListTransfers(ctx context.Context, ownerID string, limit int) ([]model.Transfer, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT `+transferColumns+` FROM transfers WHERE owner_id = $1 ORDER BY created_at DESC LIMIT $2`,
		ownerID, normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()

	var out []model.Transfer
	for rows.Next() {
		t, err := scanTransfer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		out = append(out, *t)
	}
	return out, rows.Err()
}

func (p *Postgres) CreateCard(ctx context.Context, c *model.Card) error {
	_, err := p.pool.Exec(ctx, `
		INSERT INTO cards (id, owner_id, provider, provider_id, last4, expiry, balance, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		c.ID, c.OwnerID, c.Provider, c.ProviderID, c.Last4, c.Expiry, c.Balance, c.Status, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert card: %w", err)
	}
	return nil
}

func (p *Postgres) UpdateCard(ctx context.Context, c *model.Card) error {
	tag, err := p.pool.Exec(ctx, `
		UPDATE cards SET balance = $3, status = $4 WHERE owner_id = $1 AND id = $2`,
		c.OwnerID, c.ID, c.Balance, c.Status)
	if err != nil {
		return fmt.Errorf("update card: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

const cardColumns = `id, owner_id, provider, provider_id, last4, expiry, balance, status, created_at`

func scanCard(row pgx.Row) (*model.Card, error) {
	var c model.Card
	err := row.Scan(&c.ID, &c.OwnerID, &c.Provider, &c.ProviderID, &c.Last4, &c.Expiry, &c.Balance, &c.Status, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (p *Postgres) GetCard(ctx context.Context, ownerID, cardID string) (*model.Card, error) {
	c, err := scanCard(p.pool.QueryRow(ctx,
		`SELECT `+cardColumns+` FROM cards WHERE owner_id = $1 AND id = $2`, ownerID, cardID))
	if err != nil {
		return nil, notFound(err)
	}
	return c, nil
}

func (p *Postgres) ListCards(ctx context.Context, ownerID string) ([]model.Card, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT `+cardColumns+` FROM cards WHERE owner_id = $1 ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	defer rows.Close()

	var out []model.Card
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("scan card: %w", err)
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}
