package transform

import (
	"errors"
	"fmt"

	accountv1 "github.com/iskorotkov/account-ledger/internal/api/accountv1"
	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid amount")

// Bounds on accepted amounts. Arithmetic on a decimal costs time and memory
// proportional to its digits, and a short string like "1e-20000000" expands
// to millions of them.
const (
	MaxAmountExponent = 18
	MaxAmountDigits   = 38
)

func AmountFromProto(d *accountv1.Decimal) (decimal.Decimal, error) {
	if d.GetValue() == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: %v", ErrInvalidAmount, "amount is unspecified")
	}

	amount, err := decimal.NewFromString(d.GetValue())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}

	if exp := amount.Exponent(); exp < -MaxAmountExponent || exp > MaxAmountExponent {
		return decimal.Decimal{}, fmt.Errorf("%w: exponent %d out of range", ErrInvalidAmount, exp)
	}
	if digits := amount.NumDigits(); digits > MaxAmountDigits {
		return decimal.Decimal{}, fmt.Errorf("%w: %d digits, at most %d allowed", ErrInvalidAmount, digits, MaxAmountDigits)
	}

	return amount, nil
}

func AmountToProto(d decimal.Decimal) *accountv1.Decimal {
	return &accountv1.Decimal{
		Value: d.String(),
	}
}
