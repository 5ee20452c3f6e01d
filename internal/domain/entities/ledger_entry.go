package entities

import (
	"errors"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// LedgerStatus is the state of a payment obligation.
//
// The only transition is pendiente -> pagado and it is applied by the webhook reconciler.
type LedgerStatus string

const (
	LedgerStatusPendiente LedgerStatus = "pendiente"
	LedgerStatusPagado    LedgerStatus = "pagado"
)

// Gateway status values stored in stripe_status.
const (
	GatewayStatusOpen = "open"
	GatewayStatusPaid = "paid"
)

var (
	ErrAmountNotChargeable = errors.New("amount cannot be charged in minor units")
	ErrEntryNotPending     = errors.New("ledger entry is not pending")
)

var hundred = decimal.NewFromInt(100)

// LedgerEntry is one payment obligation ("pago") of a payer.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI payer_id-index: payer_id + created_at
//   - GSI subject_id-index: subject_id + created_at
//
// Gateway fields are written only by the checkout initiator and the webhook reconciler.
type LedgerEntry struct {
	ID        string          `json:"id"`
	PayerID   string          `json:"payer_id"`
	SubjectID string          `json:"subject_id,omitempty"`
	EventID   string          `json:"event_id,omitempty"`
	Concept   string          `json:"concept"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency,omitempty"`
	Status    LedgerStatus    `json:"status"`
	DueDate   *time.Time      `json:"due_date,omitempty"`
	PaidAt    *time.Time      `json:"paid_at,omitempty"`
	CreatedAt time.Time       `json:"created_at"`

	GatewaySessionID       string `json:"gateway_session_id,omitempty"`
	GatewayPaymentIntentID string `json:"gateway_payment_intent_id,omitempty"`
	GatewayStatus          string `json:"gateway_status,omitempty"`
}

// IsPayable reports whether a checkout may be started for the entry.
func (e LedgerEntry) IsPayable() bool {
	return e.Status == LedgerStatusPendiente
}

func (e LedgerEntry) IsPaid() bool {
	return e.Status == LedgerStatusPagado
}

// MinorUnits converts Amount to the gateway integer unit (cents), rounding half away from zero.
func (e LedgerEntry) MinorUnits() (int64, error) {
	return ToMinorUnits(e.Amount)
}

// ToMinorUnits returns amount*100 rounded to an integer. The result must be positive and fit in int64.
func ToMinorUnits(amount decimal.Decimal) (int64, error) {
	cents := amount.Mul(hundred).Round(0)
	if !cents.IsPositive() {
		return 0, ErrAmountNotChargeable
	}
	if cents.GreaterThan(decimal.NewFromInt(math.MaxInt64)) {
		return 0, ErrAmountNotChargeable
	}
	return cents.IntPart(), nil
}
