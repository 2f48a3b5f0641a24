// Package usdt implements the USDT rail: a bearer-token custody API and its
// in-memory simulation.
package usdt

import (
	"context"
	"fmt"
	"net/url"

	"github.com/AlexZinkM/rail-wallet/internal/client"
	"github.com/AlexZinkM/rail-wallet/internal/common"
	"github.com/AlexZinkM/rail-wallet/internal/logger"
	"github.com/AlexZinkM/rail-wallet/internal/rail"

	"go.uber.org/zap"
)

const (
	providerName = "usdt"
	currency     = "USDT"
	defaultChain = "ethereum"
	simSeed      = "500.00"
)

// Config selects and configures the USDT rail.
type Config struct {
	APIKey        string
	BaseURL       string
	Chain         string
	UseSimulation bool
}

// New returns the Live client only when both API key and base URL are set
// and simulation is not forced.
func New(cfg Config, ledger *rail.Ledger) rail.Stablecoin {
	if cfg.Chain == "" {
		cfg.Chain = defaultChain
	}
	if cfg.UseSimulation || cfg.APIKey == "" || cfg.BaseURL == "" {
		logger.Info("USDT rail using simulation", zap.Bool("forced", cfg.UseSimulation))
		return NewSimulation(ledger, cfg.Chain)
	}
	logger.Info("USDT rail using custody API", zap.String("base_url", cfg.BaseURL))
	return NewClient(cfg)
}

// NewSimulation returns the simulated USDT rail. Wallets start at 500.00.
func NewSimulation(ledger *rail.Ledger, chain string) *rail.SimStablecoin {
	return rail.NewSimStablecoin(rail.SimConfig{
		Provider:     providerName,
		Chain:        chain,
		WalletPrefix: "usdt-sim-",
		TxPrefix:     "0xusdt",
		Seed:         simSeed,
		Decimals:     common.USDTDecimals,
	}, ledger)
}

// Client is the Live USDT rail. Wallets are addressed by their deposit
// address, which doubles as the wallet ref.
type Client struct {
	rest   *client.RESTClient
	apiKey string
	chain  string
}

var _ rail.Stablecoin = (*Client)(nil)

// NewClient creates a USDT custody API client.
func NewClient(cfg Config, opts ...client.RESTOption) *Client {
	opts = append([]client.RESTOption{client.WithBaseURL(cfg.BaseURL)}, opts...)
	return &Client{
		rest:   client.NewRESTClient(opts...),
		apiKey: cfg.APIKey,
		chain:  cfg.Chain,
	}
}

func (c *Client) Info() rail.Info {
	return rail.Info{Provider: providerName, Chain: c.chain}
}

type walletResponse struct {
	Address string `json:"address"`
	Balance string `json:"balance"`
}

type sendResponse struct {
	TransactionID string `json:"transaction_id"`
	TxHash        string `json:"tx_hash"`
	Hash          string `json:"hash"`
	Status        string `json:"status"`
}

func (c *Client) CreateWallet(ctx context.Context, ownerID string) (*rail.Wallet, error) {
	body := map[string]string{
		"user_id":  ownerID,
		"currency": currency,
	}

	var resp walletResponse
	if err := c.rest.PostJSON(ctx, "/wallet/create", body, &resp, client.WithBearerToken(c.apiKey)); err != nil {
		return nil, rail.FromHTTP(providerName, err)
	}
	if resp.Address == "" {
		return nil, rail.Ambiguous(providerName, fmt.Errorf("wallet response has no address"))
	}
	return &rail.Wallet{Ref: resp.Address, Address: resp.Address, Balance: orZero(resp.Balance)}, nil
}

func (c *Client) GetBalance(ctx context.Context, walletRef string) (string, error) {
	var resp walletResponse
	path := "/wallet/balance/" + url.PathEscape(walletRef)
	if err := c.rest.GetJSON(ctx, path, &resp, client.WithBearerToken(c.apiKey)); err != nil {
		return "", rail.FromHTTP(providerName, err)
	}
	return orZero(resp.Balance), nil
}

func (c *Client) CreateTransfer(ctx context.Context, req rail.TransferRequest) (*rail.TransferResult, error) {
	body := map[string]string{
		"from_address": req.WalletRef,
		"to_address":   req.ToAddress,
		"amount":       req.Amount,
		"currency":     currency,
		"network":      c.chain,
	}

	var resp sendResponse
	err := c.rest.PostJSON(ctx, "/transaction/send", body, &resp,
		client.WithBearerToken(c.apiKey),
		client.WithHeader("Idempotency-Key", req.IdempotencyKey),
	)
	if err != nil {
		return nil, rail.FromHTTP(providerName, err)
	}
	return sendResult(resp)
}

// GetTransfer reads a transaction by the id the send call returned.
func (c *Client) GetTransfer(ctx context.Context, ref string) (*rail.TransferResult, error) {
	var resp sendResponse
	path := "/transaction/" + url.PathEscape(ref)
	if err := c.rest.GetJSON(ctx, path, &resp, client.WithBearerToken(c.apiKey)); err != nil {
		return nil, rail.FromHTTP(providerName, err)
	}
	if resp.TransactionID == "" {
		resp.TransactionID = ref
	}
	return sendResult(resp)
}

func sendResult(resp sendResponse) (*rail.TransferResult, error) {
	if resp.TransactionID == "" {
		return nil, rail.Ambiguous(providerName, fmt.Errorf("send response has no transaction_id"))
	}

	// older API versions report the hash as "hash"
	txHash := resp.TxHash
	if txHash == "" {
		txHash = resp.Hash
	}
	return &rail.TransferResult{
		ProviderRef: resp.TransactionID,
		TxHash:      txHash,
		Status:      rail.NormalizeStatus(resp.Status),
		RawStatus:   resp.Status,
	}, nil
}

func orZero(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
