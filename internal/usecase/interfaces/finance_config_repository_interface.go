package interfaces

import (
	"context"

	"teamflow_payments/internal/domain/entities"
)

// IFinanceConfigRepository abstracts DynamoDB persistence for FinanceConfig.
//
// Get returns a zero config (EventID == "") when the pair was never saved.
type IFinanceConfigRepository interface {
	Save(ctx context.Context, cfg entities.FinanceConfig) (entities.FinanceConfig, error)
	Get(ctx context.Context, eventID, ownerEntityID string) (entities.FinanceConfig, error)
}
