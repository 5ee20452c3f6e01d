package request

import (
	"teamflow_payments/internal/usecase"

	"github.com/shopspring/decimal"
)

// FinanceConfigRequest is the body of PUT .../finance-config/:owner_id.
// Money fields accept JSON numbers or strings.
type FinanceConfigRequest struct {
	TotalPrice          decimal.Decimal `json:"total_price"`
	Capacity            int             `json:"capacity"`
	Currency            string          `json:"currency"`
	AllowedInstallments []int           `json:"allowed_installments"`
	DepositEnabled      bool            `json:"deposit_enabled"`
	DepositAmount       decimal.Decimal `json:"deposit_amount"`
}

func (r FinanceConfigRequest) ToInput() usecase.FinanceConfigInput {
	return usecase.FinanceConfigInput{
		TotalPrice:          r.TotalPrice,
		Capacity:            r.Capacity,
		Currency:            r.Currency,
		AllowedInstallments: r.AllowedInstallments,
		DepositEnabled:      r.DepositEnabled,
		DepositAmount:       r.DepositAmount,
	}
}
