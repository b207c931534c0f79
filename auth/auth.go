// Package auth implements the role model and permission precondition table
// that every validator consults before building a plan: Role, the six
// precondition classes (none, schema-write, data-write, read, user/host
// management, grant/revoke), and the sentinel errors a failed check returns.
package auth

import (
	"strings"

	"gopkg.in/src-d/go-errors.v1"
)

// Role is the privilege level assigned to a session, ordered GOD > ADMIN >
// USER > GUEST so a plain integer comparison decides "at least as
// privileged as".
type Role int

const (
	RoleGuest Role = iota
	RoleUser
	RoleAdmin
	RoleGod
)

func (r Role) String() string {
	switch r {
	case RoleGuest:
		return "GUEST"
	case RoleUser:
		return "USER"
	case RoleAdmin:
		return "ADMIN"
	case RoleGod:
		return "GOD"
	default:
		return "UNKNOWN"
	}
}

// AtLeast reports whether r is at least as privileged as min.
func (r Role) AtLeast(min Role) bool { return r >= min }

var (
	// ErrNotAuthorized is returned when a session's role does not meet a
	// sentence's precondition.
	ErrNotAuthorized = errors.NewKind("no permission to %s")
	// ErrUnknownRole is returned when a role name does not resolve.
	ErrUnknownRole = errors.NewKind("unknown role `%s'")
)

// ParseRole resolves a role name (as accepted by `GRANT ROLE <name> ON ...`)
// to a Role, case-insensitively.
func ParseRole(name string) (Role, error) {
	switch strings.ToUpper(name) {
	case "GOD":
		return RoleGod, nil
	case "ADMIN":
		return RoleAdmin, nil
	case "USER":
		return RoleUser, nil
	case "GUEST":
		return RoleGuest, nil
	default:
		return RoleGuest, ErrUnknownRole.New(name)
	}
}

// Precondition is one of the six permission classes a sentence declares
// before validation may lower it to a plan.
type Precondition int

const (
	// PrecondNone requires no specific role beyond being authenticated.
	PrecondNone Precondition = iota
	// PrecondRead is satisfied by any authenticated role.
	PrecondRead
	// PrecondDataWrite requires at least USER.
	PrecondDataWrite
	// PrecondSchemaWrite requires at least ADMIN.
	PrecondSchemaWrite
	// PrecondUserManage requires exactly GOD (user/host account management).
	PrecondUserManage
	// PrecondGrantRevoke requires the granter's role to strictly exceed the
	// role being granted or revoked; Check takes the target role as `min`.
	PrecondGrantRevoke
)

// Session is the minimal identity a permission Check needs: the caller's
// role. It holds a single Role with no per-space variant, so every check
// uses that one role whatever the current space. A validator builds this
// from its querycontext.Context at sentence-entry time.
type Session struct {
	Role Role
}

// Check enforces one Precondition against a session, returning
// ErrNotAuthorized when the role requirement is not met. action names the
// operation for the error message (e.g. "CREATE TAG", "INSERT VERTEX").
func Check(sess Session, p Precondition, action string) error {
	switch p {
	case PrecondNone, PrecondRead:
		return nil
	case PrecondDataWrite:
		if sess.Role.AtLeast(RoleUser) {
			return nil
		}
	case PrecondSchemaWrite:
		if sess.Role.AtLeast(RoleAdmin) {
			return nil
		}
	case PrecondUserManage:
		if sess.Role == RoleGod {
			return nil
		}
	case PrecondGrantRevoke:
		// Handled by CheckGrant, which needs the target role too; reaching
		// here without it is a validator bug, not a user error.
		return ErrNotAuthorized.New(action)
	}
	return ErrNotAuthorized.New(action)
}

// CheckGrant enforces PrecondGrantRevoke: granting or revoking `target`
// requires the caller's role to strictly exceed target.
func CheckGrant(sess Session, target Role, action string) error {
	if sess.Role > target {
		return nil
	}
	return ErrNotAuthorized.New(action)
}
