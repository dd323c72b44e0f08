package identity_test

import (
	"testing"

	"repairshop/internal/domain/identity"

	"github.com/stretchr/testify/assert"
)

func TestRoleOf(t *testing.T) {
	testCases := []struct {
		name     string
		claims   identity.Claims
		expected identity.Role
	}{
		{
			name:     "Manager via public metadata claim only",
			claims:   identity.Claims{PublicMetadataRole: "manager"},
			expected: identity.RoleManager,
		},
		{
			name:     "Manager via org role claim only",
			claims:   identity.Claims{OrgRole: "manager"},
			expected: identity.RoleManager,
		},
		{
			name:     "Manager via both claims",
			claims:   identity.Claims{PublicMetadataRole: "manager", OrgRole: "manager"},
			expected: identity.RoleManager,
		},
		{
			name:     "Tech when both claims empty",
			claims:   identity.Claims{},
			expected: identity.RoleTech,
		},
		{
			name:     "Tech when claims carry other values",
			claims:   identity.Claims{PublicMetadataRole: "admin", OrgRole: "member"},
			expected: identity.RoleTech,
		},
		{
			name:     "Role comparison is case sensitive",
			claims:   identity.Claims{PublicMetadataRole: "Manager"},
			expected: identity.RoleTech,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, identity.RoleOf(tc.claims))
		})
	}
}

func TestFromClaims(t *testing.T) {
	ident := identity.FromClaims(identity.Claims{
		UserID:  "user_123",
		Email:   "boss@example.com",
		OrgRole: "manager",
	})

	assert.True(t, ident.Authenticated)
	assert.Equal(t, "user_123", ident.UserID)
	assert.Equal(t, "boss@example.com", ident.Email)
	assert.True(t, ident.IsManager())
}

func TestAnonymous(t *testing.T) {
	ident := identity.Anonymous()

	assert.False(t, ident.Authenticated)
	assert.Empty(t, ident.UserID)
	assert.Equal(t, identity.RoleTech, ident.Role)
	assert.False(t, ident.IsManager())
}
