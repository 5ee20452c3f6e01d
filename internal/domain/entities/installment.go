package entities

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInstallmentCountNotAllowed = errors.New("installment count not allowed by finance config")

// Installment is one charge of an installment schedule.
type Installment struct {
	Number  int             `json:"number"`
	Amount  decimal.Decimal `json:"amount"`
	DueDate *time.Time      `json:"due_date,omitempty"`
}

// InstallmentSchedule splits PayableInstallmentBase across Count installments.
//
// Rounding: every installment is base/count truncated to cents and the last one
// absorbs the remainder, so the installments always add up to Base exactly.
type InstallmentSchedule struct {
	EventID       string          `json:"event_id"`
	OwnerEntityID string          `json:"owner_entity_id"`
	Currency      string          `json:"currency,omitempty"`
	Count         int             `json:"count"`
	Deposit       decimal.Decimal `json:"deposit"`
	Base          decimal.Decimal `json:"base"`
	Installments  []Installment   `json:"installments"`
}

// PlanInstallments builds the schedule for count installments under cfg.
func PlanInstallments(cfg FinanceConfig, count int) (InstallmentSchedule, error) {
	if count < MinInstallments || count > MaxInstallments || !cfg.InstallmentPlan.Allows(count) {
		return InstallmentSchedule{}, ErrInstallmentCountNotAllowed
	}

	base := cfg.PayableInstallmentBase()
	deposit := decimal.Zero
	if cfg.Deposit.Enabled {
		deposit = cfg.Deposit.Amount
	}

	share := base.Div(decimal.NewFromInt(int64(count))).Truncate(2)
	installments := make([]Installment, count)
	for i := 0; i < count-1; i++ {
		installments[i] = Installment{Number: i + 1, Amount: share}
	}
	last := base.Sub(share.Mul(decimal.NewFromInt(int64(count - 1))))
	installments[count-1] = Installment{Number: count, Amount: last}

	return InstallmentSchedule{
		EventID:       cfg.EventID,
		OwnerEntityID: cfg.OwnerEntityID,
		Currency:      cfg.Currency,
		Count:         count,
		Deposit:       deposit,
		Base:          base,
		Installments:  installments,
	}, nil
}

// WithMonthlyDueDates assigns first, first+1 month, ... to the installments.
func (s InstallmentSchedule) WithMonthlyDueDates(first time.Time) InstallmentSchedule {
	out := s
	out.Installments = make([]Installment, len(s.Installments))
	for i, inst := range s.Installments {
		due := first.AddDate(0, i, 0)
		inst.DueDate = &due
		out.Installments[i] = inst
	}
	return out
}

// Total is deposit plus every installment.
func (s InstallmentSchedule) Total() decimal.Decimal {
	total := s.Deposit
	for _, inst := range s.Installments {
		total = total.Add(inst.Amount)
	}
	return total
}
