package interfaces

import (
	"context"

	"teamflow_payments/internal/domain/entities"
)

// IProfileRepository reads profiles maintained by the auth provider.
type IProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (entities.Profile, error)
}
