package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleOrdering(t *testing.T) {
	assert.True(t, RoleGod.AtLeast(RoleAdmin))
	assert.True(t, RoleAdmin.AtLeast(RoleUser))
	assert.False(t, RoleUser.AtLeast(RoleAdmin))
}

func TestCheckPreconditions(t *testing.T) {
	guest := Session{Role: RoleGuest}
	user := Session{Role: RoleUser}
	admin := Session{Role: RoleAdmin}
	god := Session{Role: RoleGod}

	assert.NoError(t, Check(guest, PrecondRead, "GO"))
	assert.Error(t, Check(guest, PrecondDataWrite, "INSERT VERTEX"))
	assert.NoError(t, Check(user, PrecondDataWrite, "INSERT VERTEX"))
	assert.Error(t, Check(user, PrecondSchemaWrite, "CREATE TAG"))
	assert.NoError(t, Check(admin, PrecondSchemaWrite, "CREATE TAG"))
	assert.Error(t, Check(admin, PrecondUserManage, "CREATE USER"))
	assert.NoError(t, Check(god, PrecondUserManage, "CREATE USER"))
}

func TestCheckGrantRequiresStrictlyGreaterRole(t *testing.T) {
	admin := Session{Role: RoleAdmin}
	assert.NoError(t, CheckGrant(admin, RoleUser, "GRANT ROLE USER"))
	assert.Error(t, CheckGrant(admin, RoleAdmin, "GRANT ROLE ADMIN"))
	assert.Error(t, CheckGrant(admin, RoleGod, "GRANT ROLE GOD"))
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole("ADMIN")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, r)

	_, err = ParseRole("nonsense")
	assert.Error(t, err)
}
