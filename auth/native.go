package auth

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/src-d/go-errors.v1"
)

var (
	// ErrDuplicateUser happens when CREATE USER names an account that
	// already exists.
	ErrDuplicateUser = errors.NewKind("duplicate user `%s'")
	// ErrUnknownUser happens when a user name does not resolve.
	ErrUnknownUser = errors.NewKind("unknown user `%s'")
	// ErrBadPassword happens when Authenticate is given the wrong password.
	ErrBadPassword = errors.NewKind("bad password for user `%s'")
)

// account holds credentials and the granted role for one user.
type account struct {
	Name         string
	PasswordHash string
	Role         Role
}

// NativePassword hashes a cleartext password with double SHA1
// (mysql_native_password format), the account store's at-rest password
// format.
func NativePassword(password string) string {
	if len(password) == 0 {
		return ""
	}
	hash := sha1.New()
	hash.Write([]byte(password))
	s1 := hash.Sum(nil)

	hash.Reset()
	hash.Write(s1)
	s2 := hash.Sum(nil)

	return fmt.Sprintf("*%s", strings.ToUpper(hex.EncodeToString(s2)))
}

// UserStore is an in-memory account directory backing CREATE/DROP/ALTER USER
// and CHANGE PASSWORD.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]*account
}

// NewUserStore returns an empty store.
func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]*account)}
}

// CreateUser adds a new account with the given cleartext password and role.
func (s *UserStore) CreateUser(name, password string, role Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[name]; ok {
		return ErrDuplicateUser.New(name)
	}
	s.users[name] = &account{Name: name, PasswordHash: NativePassword(password), Role: role}
	return nil
}

// DropUser removes an account.
func (s *UserStore) DropUser(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[name]; !ok {
		return ErrUnknownUser.New(name)
	}
	delete(s.users, name)
	return nil
}

// ChangePassword resets name's password hash.
func (s *UserStore) ChangePassword(name, newPassword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[name]
	if !ok {
		return ErrUnknownUser.New(name)
	}
	u.PasswordHash = NativePassword(newPassword)
	return nil
}

// SetRole updates name's granted role (backing GRANT/REVOKE ROLE), the
// caller having already passed CheckGrant.
func (s *UserStore) SetRole(name string, role Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[name]
	if !ok {
		return ErrUnknownUser.New(name)
	}
	u.Role = role
	return nil
}

// Authenticate validates a cleartext password and returns the account's
// role on success.
func (s *UserStore) Authenticate(name, password string) (Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[name]
	if !ok {
		return RoleGuest, ErrUnknownUser.New(name)
	}
	if u.PasswordHash != NativePassword(password) {
		return RoleGuest, ErrBadPassword.New(name)
	}
	return u.Role, nil
}

// RoleOf returns name's currently granted role without authenticating,
// for validators that already trust an established session's identity.
func (s *UserStore) RoleOf(name string) (Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[name]
	if !ok {
		return RoleGuest, ErrUnknownUser.New(name)
	}
	return u.Role, nil
}

// Names lists every account, for SHOW USERS.
func (s *UserStore) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.users))
	for n := range s.users {
		out = append(out, n)
	}
	return out
}
