// Package circle implements the USDC rail on top of Circle's wallets API,
// with an in-memory simulation used when no API key is configured.
package circle

import (
	"github.com/AlexZinkM/rail-wallet/internal/logger"
	"github.com/AlexZinkM/rail-wallet/internal/rail"

	"go.uber.org/zap"
)

const (
	providerName   = "circle"
	defaultBaseURL = "https://api-sandbox.circle.com"
	defaultChain   = "ETH"
	currencyUSD    = "USD"
)

// Config selects and configures the USDC rail.
type Config struct {
	APIKey        string
	BaseURL       string
	Chain         string
	UseSimulation bool
}

// New returns the Simulated rail when simulation is forced or no API key is
// set, and the Live client otherwise.
func New(cfg Config, ledger *rail.Ledger) rail.Stablecoin {
	if cfg.Chain == "" {
		cfg.Chain = defaultChain
	}
	if cfg.UseSimulation || cfg.APIKey == "" {
		logger.Info("USDC rail using simulation", zap.Bool("forced", cfg.UseSimulation))
		return NewSimulation(ledger, cfg.Chain)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	logger.Info("USDC rail using Circle API", zap.String("base_url", cfg.BaseURL), zap.String("chain", cfg.Chain))
	return NewClient(cfg)
}
