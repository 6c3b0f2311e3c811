package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"
	accountv1 "github.com/iskorotkov/account-ledger/internal/api/accountv1"
	"github.com/iskorotkov/account-ledger/internal/domain"
	"github.com/iskorotkov/account-ledger/internal/transform"
	"github.com/shopspring/decimal"
)

type Storage interface {
	Deposit(ctx context.Context, amount decimal.Decimal) (domain.Balance, error)
	Withdraw(ctx context.Context, amount decimal.Decimal) (domain.Balance, error)
	Balance(ctx context.Context) (domain.Balance, error)
}

func NewAccount(s Storage) *Account {
	return &Account{
		s: s,
	}
}

type Account struct {
	s Storage
}

func (a *Account) Deposit(
	ctx context.Context,
	req *connect.Request[accountv1.DepositRequest],
) (*connect.Response[accountv1.BalanceResponse], error) {
	amount, err := transform.AmountFromProto(req.Msg.GetAmount())
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	balance, err := a.s.Deposit(ctx, amount)
	if err != nil {
		return nil, toConnectError(ctx, err, "failed to deposit")
	}

	return balanceResponse(balance)
}

func (a *Account) Withdraw(
	ctx context.Context,
	req *connect.Request[accountv1.WithdrawRequest],
) (*connect.Response[accountv1.BalanceResponse], error) {
	amount, err := transform.AmountFromProto(req.Msg.GetAmount())
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	balance, err := a.s.Withdraw(ctx, amount)
	if err != nil {
		return nil, toConnectError(ctx, err, "failed to withdraw")
	}

	return balanceResponse(balance)
}

func (a *Account) Balance(
	ctx context.Context,
	_ *connect.Request[accountv1.BalanceRequest],
) (*connect.Response[accountv1.BalanceResponse], error) {
	balance, err := a.s.Balance(ctx)
	if err != nil {
		return nil, toConnectError(ctx, err, "failed to get balance")
	}

	return balanceResponse(balance)
}

func balanceResponse(b domain.Balance) (*connect.Response[accountv1.BalanceResponse], error) {
	protoBalance, err := transform.BalanceToProto(b)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(protoBalance), nil
}

// toConnectError keeps the account's own message for rejected operations and
// hides everything else behind msg.
func toConnectError(ctx context.Context, err error, msg string) error {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, domain.ErrInsufficientFunds):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	}

	slog.ErrorContext(ctx, msg, "error", err)
	return connect.NewError(connect.CodeInternal, errors.New(msg))
}
