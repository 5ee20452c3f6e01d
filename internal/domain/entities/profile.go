package entities

// Profile is the read-only view of a user maintained by the auth provider.
//
// Storage model (DynamoDB):
//   - PK: id (auth user id)
//
// FamilyID is the payer identity for family users; EntityID is the club or organizer
// the user administers (club owners and tournament organizers).
type Profile struct {
	UserID   string `json:"user_id"`
	Role     Role   `json:"role"`
	FamilyID string `json:"family_id,omitempty"`
	EntityID string `json:"entity_id,omitempty"`
}

// PayerID returns the payer identity, empty for non-family profiles.
func (p Profile) PayerID() string {
	if !p.Role.IsPayer() {
		return ""
	}
	return p.FamilyID
}

// CanManageEntity reports whether the profile may write financial data owned by entityID.
func (p Profile) CanManageEntity(entityID string) bool {
	switch p.Role {
	case RoleAdmin:
		return true
	case RoleClubOwner, RoleTournamentOrganizer:
		return p.EntityID != "" && p.EntityID == entityID
	case RoleTeam, RoleFamily, RoleUnknown:
		return false
	}
	return false
}
