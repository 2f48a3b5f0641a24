package circle

import (
	"context"
	"fmt"
	"net/url"

	"github.com/AlexZinkM/rail-wallet/internal/client"
	"github.com/AlexZinkM/rail-wallet/internal/rail"

	"github.com/google/uuid"
)

// Circle requires UUID idempotency keys; ours are derived deterministically
// so a replayed key maps to the same Circle request.
var idempotencyNamespace = uuid.MustParse("6f1c2a7e-1d4b-4c8e-9a51-3f0b8d2e7c40")

// Client is the Live USDC rail.
type Client struct {
	rest   *client.RESTClient
	apiKey string
	chain  string
}

var _ rail.Stablecoin = (*Client)(nil)

// NewClient creates a Circle API client.
func NewClient(cfg Config, opts ...client.RESTOption) *Client {
	opts = append([]client.RESTOption{client.WithBaseURL(cfg.BaseURL)}, opts...)
	return &Client{
		rest:   client.NewRESTClient(opts...),
		apiKey: cfg.APIKey,
		chain:  cfg.Chain,
	}
}

type amountJSON struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

type walletJSON struct {
	WalletID    string       `json:"walletId"`
	EntityID    string       `json:"entityId"`
	Type        string       `json:"type"`
	Description string       `json:"description"`
	Balances    []amountJSON `json:"balances"`
}

type transferJSON struct {
	ID              string `json:"id"`
	Status          string `json:"status"`
	TransactionHash string `json:"transactionHash"`
	ErrorCode       string `json:"errorCode"`
}

type envelope[T any] struct {
	Data T `json:"data"`
}

func (c *Client) Info() rail.Info {
	return rail.Info{Provider: providerName, Chain: c.chain}
}

// CreateWallet creates an end-user wallet. Repeated calls for the same owner
// reuse one idempotency key, so Circle returns the same wallet.
func (c *Client) CreateWallet(ctx context.Context, ownerID string) (*rail.Wallet, error) {
	body := map[string]string{
		"idempotencyKey": IdempotencyUUID("wallet-" + ownerID),
		"description":    "Wallet for user " + ownerID,
	}

	var resp envelope[walletJSON]
	if err := c.rest.PostJSON(ctx, "/v1/wallets", body, &resp, client.WithBearerToken(c.apiKey)); err != nil {
		return nil, rail.FromHTTP(providerName, err)
	}
	if resp.Data.WalletID == "" {
		return nil, rail.Ambiguous(providerName, fmt.Errorf("wallet response has no walletId"))
	}

	return &rail.Wallet{Ref: resp.Data.WalletID, Balance: usdBalance(resp.Data.Balances)}, nil
}

// GetBalance returns the wallet's USD balance, "0" when it holds none.
func (c *Client) GetBalance(ctx context.Context, walletRef string) (string, error) {
	var resp envelope[walletJSON]
	path := "/v1/wallets/" + url.PathEscape(walletRef)
	if err := c.rest.GetJSON(ctx, path, &resp, client.WithBearerToken(c.apiKey)); err != nil {
		return "", rail.FromHTTP(providerName, err)
	}
	return usdBalance(resp.Data.Balances), nil
}

// CreateTransfer sends USDC from a wallet to a blockchain address.
func (c *Client) CreateTransfer(ctx context.Context, req rail.TransferRequest) (*rail.TransferResult, error) {
	body := map[string]any{
		"idempotencyKey": IdempotencyUUID(req.IdempotencyKey),
		"source": map[string]string{
			"type": "wallet",
			"id":   req.WalletRef,
		},
		"destination": map[string]string{
			"type":    "blockchain",
			"address": req.ToAddress,
			"chain":   c.chain,
		},
		"amount": amountJSON{Amount: req.Amount, Currency: currencyUSD},
	}

	var resp envelope[transferJSON]
	if err := c.rest.PostJSON(ctx, "/v1/transfers", body, &resp, client.WithBearerToken(c.apiKey)); err != nil {
		return nil, rail.FromHTTP(providerName, err)
	}

	return transferResult(resp.Data)
}

// GetTransfer reads the current state of a transfer by its Circle id.
func (c *Client) GetTransfer(ctx context.Context, ref string) (*rail.TransferResult, error) {
	var resp envelope[transferJSON]
	path := "/v1/transfers/" + url.PathEscape(ref)
	if err := c.rest.GetJSON(ctx, path, &resp, client.WithBearerToken(c.apiKey)); err != nil {
		return nil, rail.FromHTTP(providerName, err)
	}
	return transferResult(resp.Data)
}

func transferResult(t transferJSON) (*rail.TransferResult, error) {
	if t.ID == "" {
		return nil, rail.Ambiguous(providerName, fmt.Errorf("transfer response has no id"))
	}
	return &rail.TransferResult{
		ProviderRef: t.ID,
		TxHash:      t.TransactionHash,
		Status:      rail.NormalizeStatus(t.Status),
		RawStatus:   t.Status,
	}, nil
}

// IdempotencyUUID maps an arbitrary key onto a stable UUID.
func IdempotencyUUID(key string) string {
	return uuid.NewSHA1(idempotencyNamespace, []byte(key)).String()
}

func usdBalance(balances []amountJSON) string {
	for _, b := range balances {
		if b.Currency == currencyUSD {
			return b.Amount
		}
	}
	return "0"
}
