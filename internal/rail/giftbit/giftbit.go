// Package giftbit implements the prepaid card rail.
package giftbit

import (
	"context"
	"fmt"
	"net/url"

	"github.com/AlexZinkM/rail-wallet/internal/client"
	"github.com/AlexZinkM/rail-wallet/internal/logger"
	"github.com/AlexZinkM/rail-wallet/internal/rail"

	"go.uber.org/zap"
)

const (
	providerName        = "giftbit"
	currency            = "USD"
	defaultExpiryMonths = 12
)

// Config selects and configures the card rail.
type Config struct {
	APIKey        string
	BaseURL       string
	UseSimulation bool
}

// New returns the Live client only when both API key and base URL are set
// and simulation is not forced.
func New(cfg Config, ledger *rail.Ledger) rail.CardIssuer {
	if cfg.UseSimulation || cfg.APIKey == "" || cfg.BaseURL == "" {
		logger.Info("card rail using simulation", zap.Bool("forced", cfg.UseSimulation))
		return NewSimulation(ledger)
	}
	logger.Info("card rail using Giftbit API", zap.String("base_url", cfg.BaseURL))
	return NewClient(cfg)
}

// Client is the Live card rail.
type Client struct {
	rest   *client.RESTClient
	apiKey string
}

var _ rail.CardIssuer = (*Client)(nil)

// NewClient creates a Giftbit API client.
func NewClient(cfg Config, opts ...client.RESTOption) *Client {
	opts = append([]client.RESTOption{client.WithBaseURL(cfg.BaseURL)}, opts...)
	return &Client{rest: client.NewRESTClient(opts...), apiKey: cfg.APIKey}
}

func (c *Client) Info() rail.Info {
	return rail.Info{Provider: providerName}
}

type cardResponse struct {
	CardID   string `json:"card_id"`
	LastFour string `json:"last_four"`
	Expiry   string `json:"expiry"`
	Balance  string `json:"balance"`
	Status   string `json:"status"`
}

type topupResponse struct {
	TopupID string `json:"topup_id"`
	Status  string `json:"status"`
}

func (r cardResponse) card(id string) *rail.Card {
	if r.CardID != "" {
		id = r.CardID
	}
	return &rail.Card{
		ProviderID: id,
		Last4:      r.LastFour,
		Expiry:     r.Expiry,
		Balance:    r.Balance,
		Status:     r.Status,
	}
}

func (c *Client) IssueCard(ctx context.Context, req rail.IssueRequest) (*rail.Card, error) {
	months := req.ExpiryMonths
	if months <= 0 {
		months = defaultExpiryMonths
	}
	body := map[string]any{
		"user_id":       req.OwnerID,
		"amount":        req.Amount,
		"expiry_months": months,
		"currency":      currency,
	}

	var resp cardResponse
	err := c.rest.PostJSON(ctx, "/cards/issue", body, &resp,
		client.WithBearerToken(c.apiKey),
		client.WithHeader("Idempotency-Key", req.IdempotencyKey),
	)
	if err != nil {
		return nil, rail.FromHTTP(providerName, err)
	}
	if resp.CardID == "" {
		return nil, rail.Ambiguous(providerName, fmt.Errorf("issue response has no card_id"))
	}
	return resp.card(""), nil
}

func (c *Client) GetCard(ctx context.Context, cardRef string) (*rail.Card, error) {
	var resp cardResponse
	if err := c.rest.GetJSON(ctx, "/cards/"+url.PathEscape(cardRef), &resp, client.WithBearerToken(c.apiKey)); err != nil {
		return nil, rail.FromHTTP(providerName, err)
	}
	return resp.card(cardRef), nil
}

func (c *Client) TopupCard(ctx context.Context, req rail.TopupRequest) (*rail.TransferResult, error) {
	var resp topupResponse
	err := c.rest.PostJSON(ctx, "/cards/"+url.PathEscape(req.CardRef)+"/topup",
		map[string]string{"amount": req.Amount}, &resp,
		client.WithBearerToken(c.apiKey),
		client.WithHeader("Idempotency-Key", req.IdempotencyKey),
	)
	if err != nil {
		return nil, rail.FromHTTP(providerName, err)
	}
	if resp.TopupID == "" {
		return nil, rail.Ambiguous(providerName, fmt.Errorf("topup response has no topup_id"))
	}
	return &rail.TransferResult{
		ProviderRef: resp.TopupID,
		Status:      rail.NormalizeStatus(resp.Status),
		RawStatus:   resp.Status,
	}, nil
}

func (c *Client) GetBalance(ctx context.Context, cardRef string) (string, error) {
	card, err := c.GetCard(ctx, cardRef)
	if err != nil {
		return "", err
	}
	if card.Balance == "" {
		return "0", nil
	}
	return card.Balance, nil
}
