package api

import (
	"net/http"
	"time"

	_ "github.com/AlexZinkM/rail-wallet/docs"
	"github.com/AlexZinkM/rail-wallet/internal/handler"
	"github.com/AlexZinkM/rail-wallet/internal/logger"
	"github.com/AlexZinkM/rail-wallet/internal/model"

	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// SetupRouter sets up router with handlers. Every API route is rate limited;
// the Swagger UI is not.
func SetupRouter(h *handler.WalletHandler, limiter *RateLimiter) http.Handler {
	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	api := http.NewServeMux()

	// Chain wallet
	api.HandleFunc("/wallet/init", h.InitWallet)
	api.HandleFunc("/wallet/balances", h.GetBalances)
	api.HandleFunc("/xrp/send", h.Send(model.RailXRP))
	api.HandleFunc("/sol/send", h.Send(model.RailSOL))

	// Stablecoin rails
	for _, rail := range []model.Rail{model.RailUSDC, model.RailUSDT} {
		prefix := "/" + rail.Key()
		api.HandleFunc(prefix+"/wallets/init", h.InitRailWallet(rail))
		api.HandleFunc(prefix+"/balance", h.RailBalance(rail))
		api.HandleFunc(prefix+"/send", h.Send(rail))
	}

	// Card rail
	api.HandleFunc("/card/issue", h.IssueCard)
	api.HandleFunc("/card/topup", h.TopupCard)
	api.HandleFunc("/cards", h.ListCards)

	api.HandleFunc("/transfers", h.ListTransfers)
	api.HandleFunc("/transfers/status", h.TransferStatus)

	mux.Handle("/", limiter.Middleware(api))
	return logRequests(mux)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)))
	})
}
