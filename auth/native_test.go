package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserStoreCreateAuthenticate(t *testing.T) {
	s := NewUserStore()
	require.NoError(t, s.CreateUser("bob", "hunter2", RoleUser))

	role, err := s.Authenticate("bob", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, RoleUser, role)

	_, err = s.Authenticate("bob", "wrong")
	assert.Error(t, err)

	_, err = s.Authenticate("nobody", "x")
	assert.Error(t, err)
}

func TestUserStoreDuplicateCreate(t *testing.T) {
	s := NewUserStore()
	require.NoError(t, s.CreateUser("bob", "p", RoleUser))
	assert.Error(t, s.CreateUser("bob", "p2", RoleAdmin))
}

func TestUserStoreChangePasswordAndRole(t *testing.T) {
	s := NewUserStore()
	require.NoError(t, s.CreateUser("bob", "p", RoleUser))
	require.NoError(t, s.ChangePassword("bob", "p2"))
	_, err := s.Authenticate("bob", "p")
	assert.Error(t, err)
	role, err := s.Authenticate("bob", "p2")
	require.NoError(t, err)
	assert.Equal(t, RoleUser, role)

	require.NoError(t, s.SetRole("bob", RoleAdmin))
	role, err = s.RoleOf("bob")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)
}

func TestUserStoreDropUser(t *testing.T) {
	s := NewUserStore()
	require.NoError(t, s.CreateUser("bob", "p", RoleUser))
	require.NoError(t, s.DropUser("bob"))
	assert.Error(t, s.DropUser("bob"))
	_, err := s.Authenticate("bob", "p")
	assert.Error(t, err)
}
