package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Balance struct {
	AccountID uuid.UUID
	Amount    decimal.Decimal
}
