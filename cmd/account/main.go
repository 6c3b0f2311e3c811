package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"
	"github.com/iskorotkov/account-ledger/internal/domain"
	"github.com/iskorotkov/account-ledger/internal/metrics"
	"github.com/iskorotkov/account-ledger/internal/server"
	"github.com/iskorotkov/account-ledger/internal/service"
	"github.com/iskorotkov/account-ledger/internal/storage"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n", err)
			os.Exit(1)
		}
	}()

	config, err := env.ParseAs[Config]()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: config.LogLevel,
	})))

	if err := run(ctx, config); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type Config struct {
	LogLevel       slog.Level      `env:"LOG_LEVEL"`
	Addr           string          `env:"ADDR" envDefault:":8080"`
	InitialBalance decimal.Decimal `env:"INITIAL_BALANCE" envDefault:"0"`
	Metrics        bool            `env:"METRICS" envDefault:"true"`
}

func run(ctx context.Context, c Config) error {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generate account id: %w", err)
	}

	account, err := domain.NewAccount(id, c.InitialBalance)
	if err != nil {
		return fmt.Errorf("create account: %w", err)
	}

	var (
		m         *metrics.Metrics
		observers []storage.Observer
	)
	if c.Metrics {
		m = metrics.New(prometheus.NewRegistry())
		m.SetBalance(account.Snapshot())
		observers = append(observers, m)
	}

	storage := storage.NewAccount(account, observers...)
	service := service.NewAccount(storage)

	var protocols http.Protocols
	protocols.SetHTTP1(true)
	protocols.SetHTTP2(true)
	protocols.SetUnencryptedHTTP2(true)

	srv := &http.Server{
		Addr:         c.Addr,
		Handler:      h2c.NewHandler(server.NewHandler(service, m), &http2.Server{}),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		Protocols:    &protocols,
	}

	slog.InfoContext(ctx, "starting server",
		"addr", c.Addr,
		"account_id", id,
		"balance", account.Balance(),
	)
	go func() {
		<-ctx.Done()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		slog.InfoContext(ctx, "stopping server")
		if err := srv.Shutdown(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to shutdown server", "error", err)
		}
		slog.InfoContext(ctx, "server stopped")
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
