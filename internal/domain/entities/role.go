package entities

import (
	"errors"
	"fmt"
	"strings"
)

// Role is the closed set of portal roles a profile can hold.
//
// Every switch over Role in this module lists all five values; a new role has to be
// added to each of them (ParseRole, String and the authorization helpers).
type Role int

const (
	RoleUnknown Role = iota
	RoleAdmin
	RoleTeam
	RoleFamily
	RoleClubOwner
	RoleTournamentOrganizer
)

var ErrUnknownRole = errors.New("unknown role")

// ParseRole maps the role string stored in the profiles table.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin":
		return RoleAdmin, nil
	case "team":
		return RoleTeam, nil
	case "family":
		return RoleFamily, nil
	case "club_owner":
		return RoleClubOwner, nil
	case "tournament_organizer":
		return RoleTournamentOrganizer, nil
	default:
		return RoleUnknown, fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
}

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleTeam:
		return "team"
	case RoleFamily:
		return "family"
	case RoleClubOwner:
		return "club_owner"
	case RoleTournamentOrganizer:
		return "tournament_organizer"
	case RoleUnknown:
		return "unknown"
	}
	return "unknown"
}

// IsPayer reports whether the role pays ledger entries.
func (r Role) IsPayer() bool {
	switch r {
	case RoleFamily:
		return true
	case RoleAdmin, RoleTeam, RoleClubOwner, RoleTournamentOrganizer, RoleUnknown:
		return false
	}
	return false
}

func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}
