package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	role, ok := ParseRole(" admin ")
	assert.True(t, ok)
	assert.Equal(t, RoleAdmin, role)

	_, ok = ParseRole("owner")
	assert.False(t, ok)
}

func TestRolesFromStrings(t *testing.T) {
	roles := RolesFromStrings([]string{"CUSTOMER", "ghost", "admin", "ADMIN"})

	assert.Equal(t, Roles{RoleCustomer, RoleAdmin}, roles)
	assert.True(t, roles.IsAdmin())
	assert.Equal(t, []string{"CUSTOMER", "ADMIN"}, roles.ToStrings())
	assert.False(t, Roles{RoleCustomer}.IsAdmin())
}
