package entities

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	MinInstallments = 1
	MaxInstallments = 10
)

var ErrInvalidFinanceConfig = errors.New("invalid finance config")

// FinanceConfig is the financial setup of one bookable event (stage/trip or tournament)
// for one organizing entity. A club saving its own config overrides the organizer's
// pricing for that club.
//
// Storage model (DynamoDB):
//   - PK: event_id
//   - SK: owner_entity_id
//
// Monetary representation:
//   - TotalPrice and Deposit.Amount are decimals persisted as strings.
type FinanceConfig struct {
	EventID         string          `json:"event_id"`
	OwnerEntityID   string          `json:"owner_entity_id"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	Capacity        int             `json:"capacity"`
	Currency        string          `json:"currency,omitempty"`
	InstallmentPlan InstallmentPlan `json:"installment_plan"`
	Deposit         Deposit         `json:"deposit"`
	UpdatedBy       string          `json:"updated_by,omitempty"`
	UpdatedAt       time.Time       `json:"updated_at"`

	// IsDefault is set on reads when nothing has been saved for the pair yet.
	IsDefault bool `json:"is_default"`
}

// InstallmentPlan lists the installment counts a payer may choose.
type InstallmentPlan struct {
	Allowed []int `json:"allowed"`
}

// Deposit is the upfront "matrícula" charged before installments.
type Deposit struct {
	Enabled bool            `json:"enabled"`
	Amount  decimal.Decimal `json:"amount"`
}

// DefaultFinanceConfig is returned for pairs that were never saved.
func DefaultFinanceConfig(eventID, ownerEntityID string) FinanceConfig {
	return FinanceConfig{
		EventID:         eventID,
		OwnerEntityID:   ownerEntityID,
		TotalPrice:      decimal.Zero,
		InstallmentPlan: InstallmentPlan{Allowed: []int{1}},
		Deposit:         Deposit{Enabled: false, Amount: decimal.Zero},
		IsDefault:       true,
	}
}

// Allows reports whether count is one of the allowed installment counts.
func (p InstallmentPlan) Allows(count int) bool {
	for _, n := range p.Allowed {
		if n == count {
			return true
		}
	}
	return false
}

// NormalizeInstallments sorts and deduplicates installment counts.
func NormalizeInstallments(in []int) []int {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[int]struct{}, len(in))
	out := make([]int, 0, len(in))
	for _, n := range in {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// PayableInstallmentBase is the amount divided across installments.
func (c FinanceConfig) PayableInstallmentBase() decimal.Decimal {
	if c.Deposit.Enabled {
		return c.TotalPrice.Sub(c.Deposit.Amount)
	}
	return c.TotalPrice
}

// Validate collects every rule violation into a single *ValidationError.
func (c FinanceConfig) Validate() error {
	fields := map[string]string{}

	if strings.TrimSpace(c.EventID) == "" {
		fields["event_id"] = "is required"
	}
	if strings.TrimSpace(c.OwnerEntityID) == "" {
		fields["owner_entity_id"] = "is required"
	}
	if c.TotalPrice.IsNegative() {
		fields["total_price"] = "must be >= 0"
	}
	if c.Capacity < 0 {
		fields["capacity"] = "must be >= 0"
	}

	switch {
	case len(c.InstallmentPlan.Allowed) == 0:
		fields["installment_plan.allowed"] = "must not be empty"
	case !c.InstallmentPlan.Allows(1):
		fields["installment_plan.allowed"] = "must include 1"
	default:
		for _, n := range c.InstallmentPlan.Allowed {
			if n < MinInstallments || n > MaxInstallments {
				fields["installment_plan.allowed"] = fmt.Sprintf("values must be between %d and %d", MinInstallments, MaxInstallments)
				break
			}
		}
	}

	if c.Deposit.Enabled {
		switch {
		case c.Deposit.Amount.IsNegative():
			fields["deposit.amount"] = "must be >= 0"
		case !c.Deposit.Amount.LessThan(c.TotalPrice):
			fields["deposit.amount"] = "must be lower than total_price"
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// ValidationError carries one message per offending field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return ErrInvalidFinanceConfig.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidFinanceConfig
}
