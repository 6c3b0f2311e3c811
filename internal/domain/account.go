package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account holds a balance that never drops below zero. A failed operation
// leaves the balance untouched.
//
// Account is not safe for concurrent use.
type Account struct {
	ID      uuid.UUID
	balance decimal.Decimal
}

// NewAccount opens an account with the given initial balance. Zero is the
// usual starting point.
func NewAccount(id uuid.UUID, initial decimal.Decimal) (*Account, error) {
	if initial.IsNegative() {
		return nil, ErrNegativeInitialBalance
	}

	return &Account{
		ID:      id,
		balance: initial,
	}, nil
}

func (a *Account) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrNonPositiveDeposit
	}

	a.balance = a.balance.Add(amount)
	return nil
}

func (a *Account) Withdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrNonPositiveWithdrawal
	}

	if amount.GreaterThan(a.balance) {
		return ErrWithdrawalOverBalance
	}

	a.balance = a.balance.Sub(amount)
	return nil
}

func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

func (a *Account) Snapshot() Balance {
	return Balance{
		AccountID: a.ID,
		Amount:    a.balance,
	}
}
