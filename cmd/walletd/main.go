// @title        Rail Wallet API
// @version      1.0
// @description  Custodial Ethereum, XRPL and Solana wallet with USDC, USDT and prepaid card rails.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AlexZinkM/rail-wallet/internal/api"
	"github.com/AlexZinkM/rail-wallet/internal/balance"
	"github.com/AlexZinkM/rail-wallet/internal/client"
	"github.com/AlexZinkM/rail-wallet/internal/config"
	"github.com/AlexZinkM/rail-wallet/internal/crypto"
	"github.com/AlexZinkM/rail-wallet/internal/custody"
	"github.com/AlexZinkM/rail-wallet/internal/handler"
	"github.com/AlexZinkM/rail-wallet/internal/logger"
	"github.com/AlexZinkM/rail-wallet/internal/rail"
	"github.com/AlexZinkM/rail-wallet/internal/rail/circle"
	"github.com/AlexZinkM/rail-wallet/internal/rail/giftbit"
	"github.com/AlexZinkM/rail-wallet/internal/rail/usdt"
	"github.com/AlexZinkM/rail-wallet/internal/store"
	"github.com/AlexZinkM/rail-wallet/internal/transfer"
	"github.com/AlexZinkM/rail-wallet/solana"
	"github.com/AlexZinkM/rail-wallet/xrpl"

	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := config.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg := config.Get()

	logger.InitLogger(cfg.Stage, cfg.LogLevel)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Error("wallet service stopped", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	secret, err := config.LoadSecret(ctx, cfg)
	if err != nil {
		return err
	}
	cipher, err := crypto.NewCipher(secret)
	clear(secret)
	if err != nil {
		return fmt.Errorf("failed to create key cipher: %w", err)
	}

	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	ethRPC, err := ethclient.DialContext(ctx, cfg.EthRPCURL)
	if err != nil {
		return fmt.Errorf("failed to connect to Ethereum RPC: %w", err)
	}
	defer ethRPC.Close()

	solanaRPC := client.NewSolanaClient(cfg.SolanaRPCURL)
	xrplRPC := client.NewXRPLClient(cfg.XRPLRPCURL)

	// the simulated rails share one ledger so a process has one view of balances
	ledger := rail.NewLedger()
	rails := transfer.Rails{
		XRP: xrpl.NewPayer(xrplRPC),
		SOL: solana.NewPayer(solanaRPC),
		USDC: circle.New(circle.Config{
			APIKey:        cfg.CircleAPIKey,
			BaseURL:       cfg.CircleBase,
			Chain:         cfg.CircleChain,
			UseSimulation: cfg.UseSimulation,
		}, ledger),
		USDT: usdt.New(usdt.Config{
			APIKey:        cfg.USDTAPIKey,
			BaseURL:       cfg.USDTBase,
			Chain:         cfg.USDTChain,
			UseSimulation: cfg.UseSimulation,
		}, ledger),
		Card: giftbit.New(giftbit.Config{
			APIKey:        cfg.GiftbitAPIKey,
			BaseURL:       cfg.GiftbitBase,
			UseSimulation: cfg.UseSimulation,
		}, ledger),
	}

	transfers := transfer.NewService(st, custody.NewService(cipher), rails)
	balances := balance.NewAggregator(ethRPC, solanaRPC, xrplRPC)
	router := api.SetupRouter(
		handler.NewWalletHandler(transfers, balances),
		api.NewRateLimiter(ctx, cfg.RateLimitPerMinute),
	)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("port", cfg.Port), zap.String("stage", cfg.Stage))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}

func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch {
	case cfg.DatabaseURL != "":
		logger.Info("using postgres store")
		return store.OpenPostgres(ctx, cfg.DatabaseURL)
	case cfg.StorePath != "":
		logger.Info("using badger store", zap.String("path", cfg.StorePath))
		return store.OpenBadger(cfg.StorePath)
	default:
		logger.Warn("no DATABASE_URL or STORE_PATH set, state is kept in memory only")
		return store.NewMemory(), nil
	}
}
