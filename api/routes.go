package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-tracker/internal/handlers/v1/category"
	"github.com/carson-networks/budget-tracker/internal/handlers/v1/report"
	"github.com/carson-networks/budget-tracker/internal/handlers/v1/settings"
	"github.com/carson-networks/budget-tracker/internal/handlers/v1/status"
	"github.com/carson-networks/budget-tracker/internal/handlers/v1/transaction"
	"github.com/carson-networks/budget-tracker/internal/handlers/v1/wallet"
	"github.com/carson-networks/budget-tracker/internal/logging"
	"github.com/carson-networks/budget-tracker/internal/service"
)

const shutdownTimeout = 30 * time.Second

type Rest struct {
	Logger         *logrus.Logger
	Port           string
	Service        *service.Service
	AllowedOrigins []string
}

// Router builds the HTTP handler: /status plus the Huma API under /v1.
func (r *Rest) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: r.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		ExposedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	statusHandler := status.NewHandler()
	router.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	router.Group(func(apiRouter chi.Router) {
		apiRouter.Use(logging.Middleware(r.Logger))

		api := humachi.New(apiRouter, huma.DefaultConfig("Budget Tracker API", "1.0.0"))
		transaction.NewCreateTransactionHandler(r.Service.Transaction).Register(api)
		transaction.NewDeleteTransactionHandler(r.Service.Transaction).Register(api)
		transaction.NewListTransactionsHandler(r.Service.Transaction).Register(api)
		report.NewHandler(r.Service.Report).Register(api)
		wallet.NewHandler(r.Service.Wallet).Register(api)
		settings.NewHandler(r.Service.Wallet).Register(api)
		category.NewHandler(r.Service.Category).Register(api)
	})

	return router
}

// Serve listens until ctx is cancelled, then shuts the server down gracefully.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Router(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		return err
	}
	return nil
}
