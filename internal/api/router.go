package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/nanmu42/gzip"
	"github.com/sheikh-saqib/bank-account-ledger/internal/models"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Ledger is the set of ledger operations exposed over HTTP.
type Ledger interface {
	CreateAccount(ctx context.Context, category string, accountId string, initialDeposit decimal.Decimal) (models.AccountView, error)
	FindAccount(accountId string) (models.AccountView, bool)
	Deposit(ctx context.Context, accountId string, amount decimal.Decimal) (models.AccountView, error)
	Withdraw(ctx context.Context, accountId string, amount decimal.Decimal) (models.AccountView, error)
	Transfer(ctx context.Context, fromAccountId, toAccountId string, amount decimal.Decimal) (models.Transaction, error)
	ListAccounts() []models.AccountView
}

type Handler struct {
	ledger Ledger
	logger *zap.Logger
}

// NewRouter builds the HTTP API. metricsHandler is mounted on /metrics when not nil.
func NewRouter(ledger Ledger, logger *zap.Logger, metricsHandler http.Handler) *chi.Mux {
	h := &Handler{ledger: ledger, logger: logger}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(accessLog(logger))
	router.Use(middleware.Recoverer)
	router.Use(gzip.DefaultHandler().WrapHandler)

	router.Get("/health", h.Health)
	if metricsHandler != nil {
		router.Handle("/metrics", metricsHandler)
	}

	router.Route("/accounts", func(r chi.Router) {
		r.Post("/", h.CreateAccount)
		r.Get("/", h.ListAccounts)
		r.Get("/{id}", h.GetAccount)
		r.Post("/{id}/deposit", h.Deposit)
		r.Post("/{id}/withdraw", h.Withdraw)
	})
	router.Post("/transfers", h.Transfer)

	return router
}

// accessLog logs every request once it has been served.
func accessLog(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}
