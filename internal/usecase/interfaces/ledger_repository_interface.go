package interfaces

import (
	"context"
	"time"

	"teamflow_payments/internal/domain/entities"
)

// ILedgerRepository abstracts DynamoDB persistence for LedgerEntry.
//
// GetByID returns a zero entry (ID == "") when nothing is stored under id.
// Listing methods page through the table until exhausted and return entries
// newest first.
type ILedgerRepository interface {
	// CreateBatch writes all entries in one transaction.
	CreateBatch(ctx context.Context, entries []entities.LedgerEntry) error
	GetByID(ctx context.Context, id string) (entities.LedgerEntry, error)
	ListByPayerID(ctx context.Context, payerID string) ([]entities.LedgerEntry, error)
	ListBySubjectID(ctx context.Context, subjectID string) ([]entities.LedgerEntry, error)

	// AttachCheckoutSession records the gateway session on a pending entry.
	// It returns entities.ErrEntryNotPending when the entry is gone or no longer pending.
	AttachCheckoutSession(ctx context.Context, id, sessionID string) error

	// MarkPaid applies the pending -> paid transition. It never creates a row:
	// found is false when id does not exist. paidAt is kept from the first call.
	MarkPaid(ctx context.Context, id string, paidAt time.Time, gatewayStatus, paymentIntentID string) (updated entities.LedgerEntry, found bool, err error)
}
