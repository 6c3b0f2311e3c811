package transform

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	accountv1 "github.com/iskorotkov/account-ledger/internal/api/accountv1"
	"github.com/iskorotkov/account-ledger/internal/domain"
)

var ErrInvalidAccountID = errors.New("invalid account id")

func BalanceToProto(b domain.Balance) (*accountv1.BalanceResponse, error) {
	return &accountv1.BalanceResponse{
		AccountID: b.AccountID.String(),
		Amount:    AmountToProto(b.Amount),
	}, nil
}

func BalanceFromProto(proto *accountv1.BalanceResponse) (domain.Balance, error) {
	accountID, err := uuid.Parse(proto.GetAccountID())
	if err != nil {
		return domain.Balance{}, fmt.Errorf("%w: %v", ErrInvalidAccountID, err)
	}

	amount, err := AmountFromProto(proto.GetAmount())
	if err != nil {
		return domain.Balance{}, err
	}

	return domain.Balance{
		AccountID: accountID,
		Amount:    amount,
	}, nil
}
