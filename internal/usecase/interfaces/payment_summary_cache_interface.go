package interfaces

import (
	"context"
	"time"

	"teamflow_payments/internal/domain/entities"
)

// PaymentSummaryLoader computes a summary from the ledger.
type PaymentSummaryLoader func(ctx context.Context, payerID, subjectID string) (entities.PaymentSummary, error)

// IPaymentSummaryCache caches per (payer, subject) summaries.
//
// Fetch loads on a miss; Refresh always reloads. Both return the time the
// returned summary was computed.
type IPaymentSummaryCache interface {
	Fetch(ctx context.Context, payerID, subjectID string) (entities.PaymentSummary, time.Time, error)
	Refresh(ctx context.Context, payerID, subjectID string) (entities.PaymentSummary, time.Time, error)
}
