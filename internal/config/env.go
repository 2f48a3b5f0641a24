package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config contains all configuration parameters for the application.
// The key encryption secret is resolved separately, see LoadSecret.
type Config struct {
	Port     string `envconfig:"PORT" default:"8080"`
	Stage    string `envconfig:"STAGE" default:"dev"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	KeyEncSecret    string `envconfig:"KEY_ENC_SECRET"`
	KeyEncSecretARN string `envconfig:"KEY_ENC_SECRET_ARN"`

	UseSimulation bool `envconfig:"USE_SIMULATION" default:"true"`

	CircleAPIKey string `envconfig:"CIRCLE_API_KEY"`
	CircleBase   string `envconfig:"CIRCLE_BASE"`
	CircleChain  string `envconfig:"CIRCLE_CHAIN" default:"ETH"`

	USDTAPIKey string `envconfig:"USDT_API_KEY"`
	USDTBase   string `envconfig:"USDT_API_BASE"`
	USDTChain  string `envconfig:"USDT_CHAIN" default:"ethereum"`

	GiftbitAPIKey string `envconfig:"GIFTBIT_API_KEY"`
	GiftbitBase   string `envconfig:"GIFTBIT_API_BASE"`

	EthRPCURL    string `envconfig:"ETH_RPC_URL" default:"https://ethereum-sepolia-rpc.publicnode.com"`
	SolanaRPCURL string `envconfig:"SOLANA_RPC_URL" default:"https://api.devnet.solana.com"`
	XRPLRPCURL   string `envconfig:"XRPL_RPC_URL" default:"https://s.altnet.rippletest.net:51234"`

	// DATABASE_URL selects Postgres, STORE_PATH an embedded Badger store.
	// With neither set state lives in memory.
	DatabaseURL string `envconfig:"DATABASE_URL"`
	StorePath   string `envconfig:"STORE_PATH"`

	RateLimitPerMinute int `envconfig:"RATE_LIMIT_PER_MINUTE" default:"60"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables. A .env file in the
// working directory is applied first when present; variables already set
// in the environment win.
func Init() error {
	_ = godotenv.Load()

	c, err := Load()
	if err != nil {
		return err
	}
	cfg = c
	return nil
}

// Load reads the environment without touching the global instance.
func Load() (*Config, error) {
	c := &Config{}
	if err := envconfig.Process("", c); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if c.RateLimitPerMinute <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive, got %d", c.RateLimitPerMinute)
	}
	return c, nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}
