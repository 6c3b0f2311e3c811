package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/caarlos0/env/v11"
	accountv1 "github.com/iskorotkov/account-ledger/internal/api/accountv1"
	"github.com/iskorotkov/account-ledger/internal/api/accountv1/accountv1connect"
	"github.com/iskorotkov/account-ledger/internal/domain"
	"github.com/iskorotkov/account-ledger/internal/middleware"
	"github.com/iskorotkov/account-ledger/internal/transform"
	"github.com/shopspring/decimal"
)

var errUnsupportedOp = errors.New("unsupported operation")

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
	LogLevel slog.Level      `env:"LOG_LEVEL"`
	Addr     string          `env:"ADDR" envDefault:"http://localhost:8080"`
	GRPC     bool            `env:"GRPC"`
	Op       domain.Op       `env:"OP" envDefault:"balance"`
	Amount   decimal.Decimal `env:"AMOUNT"`

	// Load mode: LOAD_COUNT random deposits and withdrawals every LOAD_INTERVAL.
	LoadInterval time.Duration `env:"LOAD_INTERVAL" envDefault:"1s"`
	LoadCount    int           `env:"LOAD_COUNT"`
}

func run(ctx context.Context, c Config) error {
	opts := []connect.ClientOption{
		connect.WithInterceptors(middleware.LogRequests()),
	}
	if c.GRPC {
		opts = append(opts, connect.WithGRPC())
	}

	client := accountv1connect.NewAccountServiceClient(&http.Client{}, c.Addr, opts...)

	if c.LoadCount > 0 {
		generateLoad(ctx, c, client)
		return nil
	}

	b, err := call(ctx, client, c.Op, c.Amount)
	if err != nil {
		return fmt.Errorf("%s: %w", c.Op, err)
	}

	fmt.Printf("%s %s\n", b.AccountID, b.Amount)
	return nil
}

func call(
	ctx context.Context,
	client accountv1connect.AccountServiceClient,
	op domain.Op,
	amount decimal.Decimal,
) (domain.Balance, error) {
	var (
		resp *connect.Response[accountv1.BalanceResponse]
		err  error
	)

	switch op {
	case domain.OpDeposit:
		resp, err = client.Deposit(ctx, connect.NewRequest(&accountv1.DepositRequest{
			Amount: transform.AmountToProto(amount),
		}))
	case domain.OpWithdraw:
		resp, err = client.Withdraw(ctx, connect.NewRequest(&accountv1.WithdrawRequest{
			Amount: transform.AmountToProto(amount),
		}))
	case domain.OpBalance:
		resp, err = client.Balance(ctx, connect.NewRequest(&accountv1.BalanceRequest{}))
	default:
		return domain.Balance{}, fmt.Errorf("%w: %v", errUnsupportedOp, op)
	}
	if err != nil {
		return domain.Balance{}, err
	}

	return transform.BalanceFromProto(resp.Msg)
}

func generateLoad(ctx context.Context, c Config, client accountv1connect.AccountServiceClient) {
	ticker := time.NewTicker(c.LoadInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			var rejected int
			for i := range c.LoadCount {
				op := domain.OpDeposit
				if rand.IntN(2) == 1 {
					op = domain.OpWithdraw
				}

				amount := c.Amount.Mul(decimal.NewFromFloat(rand.Float64())).Round(2)
				if _, err := call(ctx, client, op, amount); err != nil {
					if connect.CodeOf(err) == connect.CodeFailedPrecondition ||
						connect.CodeOf(err) == connect.CodeInvalidArgument {
						rejected++
						continue
					}

					slog.ErrorContext(ctx, "call account service", "error", err, "i", i, "op", op)
				}
			}

			slog.InfoContext(ctx, "generated load", "count", c.LoadCount, "rejected", rejected)
		}
	}
}
