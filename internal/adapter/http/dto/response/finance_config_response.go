package response

import (
	"time"

	"teamflow_payments/internal/domain/entities"
)

type FinanceConfigResponse struct {
	EventID             string     `json:"event_id"`
	OwnerEntityID       string     `json:"owner_entity_id"`
	TotalPrice          string     `json:"total_price"`
	Capacity            int        `json:"capacity"`
	Currency            string     `json:"currency,omitempty"`
	AllowedInstallments []int      `json:"allowed_installments"`
	DepositEnabled      bool       `json:"deposit_enabled"`
	DepositAmount       string     `json:"deposit_amount"`
	IsDefault           bool       `json:"is_default"`
	UpdatedBy           string     `json:"updated_by,omitempty"`
	UpdatedAt           *time.Time `json:"updated_at,omitempty"`
}

func FromFinanceConfig(c entities.FinanceConfig) FinanceConfigResponse {
	out := FinanceConfigResponse{
		EventID:             c.EventID,
		OwnerEntityID:       c.OwnerEntityID,
		TotalPrice:          c.TotalPrice.StringFixed(2),
		Capacity:            c.Capacity,
		Currency:            c.Currency,
		AllowedInstallments: c.InstallmentPlan.Allowed,
		DepositEnabled:      c.Deposit.Enabled,
		DepositAmount:       c.Deposit.Amount.StringFixed(2),
		IsDefault:           c.IsDefault,
		UpdatedBy:           c.UpdatedBy,
	}
	if out.AllowedInstallments == nil {
		out.AllowedInstallments = []int{}
	}
	if !c.UpdatedAt.IsZero() {
		updated := c.UpdatedAt
		out.UpdatedAt = &updated
	}
	return out
}

type InstallmentResponse struct {
	Number  int    `json:"number"`
	Amount  string `json:"amount"`
	DueDate string `json:"due_date,omitempty"`
}

type InstallmentScheduleResponse struct {
	EventID       string                `json:"event_id"`
	OwnerEntityID string                `json:"owner_entity_id"`
	Currency      string                `json:"currency,omitempty"`
	Count         int                   `json:"count"`
	Deposit       string                `json:"deposit"`
	Base          string                `json:"base"`
	Total         string                `json:"total"`
	Installments  []InstallmentResponse `json:"installments"`
}

func FromInstallmentSchedule(s entities.InstallmentSchedule) InstallmentScheduleResponse {
	out := InstallmentScheduleResponse{
		EventID:       s.EventID,
		OwnerEntityID: s.OwnerEntityID,
		Currency:      s.Currency,
		Count:         s.Count,
		Deposit:       s.Deposit.StringFixed(2),
		Base:          s.Base.StringFixed(2),
		Total:         s.Total().StringFixed(2),
		Installments:  make([]InstallmentResponse, 0, len(s.Installments)),
	}
	for _, inst := range s.Installments {
		r := InstallmentResponse{Number: inst.Number, Amount: inst.Amount.StringFixed(2)}
		if inst.DueDate != nil {
			r.DueDate = inst.DueDate.Format(dateLayout)
		}
		out.Installments = append(out.Installments, r)
	}
	return out
}
