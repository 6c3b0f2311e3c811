// Package accountv1connect wires account.v1.AccountService into connect
// clients and handlers.
//
// It follows the layout of protoc-gen-connect-go output but is written by
// hand: there is no .proto schema and nothing to regenerate with buf. Keep
// procedure constants, interfaces and constructors in sync with
// package accountv1 manually.
package accountv1connect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
	accountv1 "github.com/iskorotkov/account-ledger/internal/api/accountv1"
)

const AccountServiceName = "account.v1.AccountService"

const (
	AccountServiceDepositProcedure  = "/account.v1.AccountService/Deposit"
	AccountServiceWithdrawProcedure = "/account.v1.AccountService/Withdraw"
	AccountServiceBalanceProcedure  = "/account.v1.AccountService/Balance"
)

type AccountServiceClient interface {
	Deposit(context.Context, *connect.Request[accountv1.DepositRequest]) (*connect.Response[accountv1.BalanceResponse], error)
	Withdraw(context.Context, *connect.Request[accountv1.WithdrawRequest]) (*connect.Response[accountv1.BalanceResponse], error)
	Balance(context.Context, *connect.Request[accountv1.BalanceRequest]) (*connect.Response[accountv1.BalanceResponse], error)
}

// NewAccountServiceClient talks JSON to the service at baseURL. Options
// passed by the caller are applied after the codec.
func NewAccountServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) AccountServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(accountv1.JSONCodec{})}, opts...)

	return &accountServiceClient{
		deposit: connect.NewClient[accountv1.DepositRequest, accountv1.BalanceResponse](
			httpClient,
			baseURL+AccountServiceDepositProcedure,
			opts...,
		),
		withdraw: connect.NewClient[accountv1.WithdrawRequest, accountv1.BalanceResponse](
			httpClient,
			baseURL+AccountServiceWithdrawProcedure,
			opts...,
		),
		balance: connect.NewClient[accountv1.BalanceRequest, accountv1.BalanceResponse](
			httpClient,
			baseURL+AccountServiceBalanceProcedure,
			append(opts, connect.WithIdempotency(connect.IdempotencyNoSideEffects))...,
		),
	}
}

type accountServiceClient struct {
	deposit  *connect.Client[accountv1.DepositRequest, accountv1.BalanceResponse]
	withdraw *connect.Client[accountv1.WithdrawRequest, accountv1.BalanceResponse]
	balance  *connect.Client[accountv1.BalanceRequest, accountv1.BalanceResponse]
}

func (c *accountServiceClient) Deposit(
	ctx context.Context,
	req *connect.Request[accountv1.DepositRequest],
) (*connect.Response[accountv1.BalanceResponse], error) {
	return c.deposit.CallUnary(ctx, req)
}

func (c *accountServiceClient) Withdraw(
	ctx context.Context,
	req *connect.Request[accountv1.WithdrawRequest],
) (*connect.Response[accountv1.BalanceResponse], error) {
	return c.withdraw.CallUnary(ctx, req)
}

func (c *accountServiceClient) Balance(
	ctx context.Context,
	req *connect.Request[accountv1.BalanceRequest],
) (*connect.Response[accountv1.BalanceResponse], error) {
	return c.balance.CallUnary(ctx, req)
}

type AccountServiceHandler interface {
	Deposit(context.Context, *connect.Request[accountv1.DepositRequest]) (*connect.Response[accountv1.BalanceResponse], error)
	Withdraw(context.Context, *connect.Request[accountv1.WithdrawRequest]) (*connect.Response[accountv1.BalanceResponse], error)
	Balance(context.Context, *connect.Request[accountv1.BalanceRequest]) (*connect.Response[accountv1.BalanceResponse], error)
}

// NewAccountServiceHandler returns the path to mount the service on and the
// handler serving it.
func NewAccountServiceHandler(svc AccountServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(accountv1.JSONCodec{})}, opts...)

	depositHandler := connect.NewUnaryHandler(
		AccountServiceDepositProcedure,
		svc.Deposit,
		opts...,
	)
	withdrawHandler := connect.NewUnaryHandler(
		AccountServiceWithdrawProcedure,
		svc.Withdraw,
		opts...,
	)
	balanceHandler := connect.NewUnaryHandler(
		AccountServiceBalanceProcedure,
		svc.Balance,
		append(opts, connect.WithIdempotency(connect.IdempotencyNoSideEffects))...,
	)

	return "/" + AccountServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case AccountServiceDepositProcedure:
			depositHandler.ServeHTTP(w, r)
		case AccountServiceWithdrawProcedure:
			withdrawHandler.ServeHTTP(w, r)
		case AccountServiceBalanceProcedure:
			balanceHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}
