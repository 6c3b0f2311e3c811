package domain

import "errors"

// Error kinds. Match them with errors.Is.
var (
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

var (
	ErrNegativeInitialBalance = newError(ErrInvalidAmount, "Initial balance cannot be negative")
	ErrNonPositiveDeposit     = newError(ErrInvalidAmount, "Deposit amount must be greater than zero")
	ErrNonPositiveWithdrawal  = newError(ErrInvalidAmount, "Withdrawal amount must be greater than zero")
	ErrWithdrawalOverBalance  = newError(ErrInsufficientFunds, "Insufficient funds for withdrawal")
)

// Error is a rejected account operation. Its message is meant for humans,
// its kind for code.
type Error struct {
	kind error
	msg  string
}

func newError(kind error, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.kind
}

