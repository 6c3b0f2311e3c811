// Package accountv1 holds the wire messages of account.v1.AccountService.
//
// Messages are plain structs encoded as JSON by JSONCodec, not generated
// protobuf types; there is no .proto schema. Amounts are decimal strings so
// no precision is lost between client and server.
package accountv1

type Decimal struct {
	Value string `json:"value"`
}

func (d *Decimal) GetValue() string {
	if d == nil {
		return ""
	}
	return d.Value
}

type DepositRequest struct {
	Amount *Decimal `json:"amount,omitempty"`
}

func (r *DepositRequest) GetAmount() *Decimal {
	if r == nil {
		return nil
	}
	return r.Amount
}

type WithdrawRequest struct {
	Amount *Decimal `json:"amount,omitempty"`
}

func (r *WithdrawRequest) GetAmount() *Decimal {
	if r == nil {
		return nil
	}
	return r.Amount
}

type BalanceRequest struct{}

type BalanceResponse struct {
	AccountID string   `json:"account_id"`
	Amount    *Decimal `json:"amount"`
}

func (r *BalanceResponse) GetAccountID() string {
	if r == nil {
		return ""
	}
	return r.AccountID
}

func (r *BalanceResponse) GetAmount() *Decimal {
	if r == nil {
		return nil
	}
	return r.Amount
}
