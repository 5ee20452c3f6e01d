package usecase

import (
	"context"
	"errors"
	"strings"

	"teamflow_payments/internal/domain/entities"
	"teamflow_payments/internal/usecase/interfaces"
)

var (
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrForbiddenRole      = errors.New("role not allowed for this operation")
	ErrForbiddenEntity    = errors.New("not an administrator of the owning entity")
	ErrProfileUnavailable = errors.New("profile repository not configured")
)

// loadProfile resolves the caller. Unknown users get a zero profile with RoleUnknown,
// which every authorization switch rejects.
func loadProfile(ctx context.Context, profiles interfaces.IProfileRepository, userID string) (entities.Profile, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Profile{}, ErrUnauthenticated
	}
	if profiles == nil {
		return entities.Profile{}, ErrProfileUnavailable
	}
	p, err := profiles.GetByUserID(ctx, userID)
	if err != nil {
		return entities.Profile{}, err
	}
	if p.UserID == "" {
		return entities.Profile{UserID: userID, Role: entities.RoleUnknown}, nil
	}
	return p, nil
}

// requirePayer returns the caller's payer identity or ErrForbiddenRole.
func requirePayer(p entities.Profile) (string, error) {
	switch p.Role {
	case entities.RoleFamily:
		if payerID := p.PayerID(); payerID != "" {
			return payerID, nil
		}
		return "", ErrForbiddenRole
	case entities.RoleAdmin, entities.RoleTeam, entities.RoleClubOwner, entities.RoleTournamentOrganizer, entities.RoleUnknown:
		return "", ErrForbiddenRole
	}
	return "", ErrForbiddenRole
}

// requireEntityAdmin checks that p may write financial data for any of entityIDs.
func requireEntityAdmin(p entities.Profile, entityIDs ...string) error {
	switch p.Role {
	case entities.RoleAdmin, entities.RoleClubOwner, entities.RoleTournamentOrganizer:
		for _, id := range entityIDs {
			if id != "" && p.CanManageEntity(id) {
				return nil
			}
		}
		return ErrForbiddenEntity
	case entities.RoleTeam, entities.RoleFamily, entities.RoleUnknown:
		return ErrForbiddenRole
	}
	return ErrForbiddenRole
}
