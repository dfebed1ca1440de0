package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/nikolayk812/shopcart/internal/api"
	"github.com/nikolayk812/shopcart/internal/apiclient"
	"github.com/nikolayk812/shopcart/internal/config"
	"github.com/nikolayk812/shopcart/internal/logger"
	"github.com/nikolayk812/shopcart/internal/repository"
	"github.com/nikolayk812/shopcart/internal/store"
	"github.com/nikolayk812/shopcart/pkg/sigctx"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	sigCtx, stop := sigctx.NotifyContext()
	defer stop()

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting shopcart",
		zap.String("addr", cfg.HTTPServerAddr),
		zap.String("api", cfg.API.BaseURL),
		zap.String("environment", cfg.Environment),
	)

	client, err := apiclient.New(cfg.API.BaseURL, cfg.API.ClientOptions(log)...)
	if err != nil {
		log.Fatal("Failed to create API client", zap.Error(err))
	}

	cart := store.New(repository.NewProduct(client),
		store.WithLogger(log),
		store.WithInitLimit(cfg.Cart.InitLimit),
		store.WithInitCategory(cfg.InitCategory()),
	)

	srv := &http.Server{
		Addr:         cfg.HTTPServerAddr,
		Handler:      api.NewRouter(cfg.IsProduction(), cart, cfg.CurrencyUnit(), log),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.API.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Failed to start server", zap.Error(err))
			stop()
		}
	}()

	log.Info("Server started", zap.String("address", srv.Addr))

	<-sigCtx.Done()

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}
