package entity

import (
	"slices"
	"strings"
)

// Role is the access level carried in a user's token.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	// RoleAdmin manages the catalog, orders and the location tree.
	RoleAdmin Role = "ADMIN"
)

func (r Role) String() string {
	return string(r)
}

// IsValid reports whether r is one of the known roles, spelled exactly.
func (r Role) IsValid() bool {
	return r == RoleCustomer || r == RoleAdmin
}

// ParseRole accepts any letter case and surrounding whitespace.
func ParseRole(s string) (Role, bool) {
	role := Role(strings.ToUpper(strings.TrimSpace(s)))

	return role, role.IsValid()
}

type Roles []Role

func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// IsAdmin is shorthand for Contains(RoleAdmin).
func (rs Roles) IsAdmin() bool {
	return rs.Contains(RoleAdmin)
}

// ToStrings renders the roles for a token claim.
func (rs Roles) ToStrings() []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, string(r))
	}

	return out
}

// RolesFromStrings decodes a token claim, dropping unknown values and duplicates.
func RolesFromStrings(ss []string) Roles {
	var roles Roles
	for _, s := range ss {
		if role, ok := ParseRole(s); ok && !roles.Contains(role) {
			roles = append(roles, role)
		}
	}

	return roles
}
