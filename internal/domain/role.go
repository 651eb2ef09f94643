package domain

import "fmt"

// Role is the closed set of account types. Every branch that depends
// on a role must handle both values explicitly; unknown strings are
// rejected at the parsing boundary.
type Role string

const (
	// RoleOwner lists properties.
	RoleOwner Role = "Owner"

	// RoleRenter browses properties and expresses interest.
	RoleRenter Role = "Renter"
)

// ParseRole converts a raw string into a Role.
// Returns ErrInvalidRole for anything outside the known set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleOwner:
		return RoleOwner, nil
	case RoleRenter:
		return RoleRenter, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
}

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleRenter:
		return true
	default:
		return false
	}
}

// String returns the role as stored and serialized.
func (r Role) String() string {
	return string(r)
}
