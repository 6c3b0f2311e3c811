package storage

import (
	"context"
	"sync"

	"github.com/iskorotkov/account-ledger/internal/domain"
	"github.com/shopspring/decimal"
)

// Observer is notified after every successful change of the balance.
type Observer interface {
	BalanceChanged(op domain.Op, b domain.Balance)
}

func NewAccount(a *domain.Account, observers ...Observer) *Account {
	return &Account{
		a:         a,
		observers: observers,
	}
}

// Account serializes access to a single domain.Account so it can be shared
// between request handlers.
type Account struct {
	mu        sync.Mutex
	a         *domain.Account
	observers []Observer
}

func (s *Account) Deposit(ctx context.Context, amount decimal.Decimal) (domain.Balance, error) {
	return s.apply(ctx, domain.OpDeposit, amount, s.a.Deposit)
}

func (s *Account) Withdraw(ctx context.Context, amount decimal.Decimal) (domain.Balance, error) {
	return s.apply(ctx, domain.OpWithdraw, amount, s.a.Withdraw)
}

func (s *Account) Balance(ctx context.Context) (domain.Balance, error) {
	if err := ctx.Err(); err != nil {
		return domain.Balance{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.a.Snapshot(), nil
}

func (s *Account) apply(
	ctx context.Context,
	op domain.Op,
	amount decimal.Decimal,
	fn func(decimal.Decimal) error,
) (domain.Balance, error) {
	// A request abandoned before it got here must not move money.
	if err := ctx.Err(); err != nil {
		return domain.Balance{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(amount); err != nil {
		return domain.Balance{}, err
	}

	b := s.a.Snapshot()
	for _, o := range s.observers {
		o.BalanceChanged(op, b)
	}

	return b, nil
}
