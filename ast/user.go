package ast

import "github.com/graphlang/ngqlcore/auth"

// CreateUser is `CREATE USER [IF NOT EXISTS] name WITH PASSWORD 'pw'`.
type CreateUser struct {
	Name        string
	Password    string
	IfNotExists bool
}

func (s *CreateUser) Kind() Kind       { return KindCreateUser }
func (s *CreateUser) Accept(v Visitor) { v.Visit(s) }
func (s *CreateUser) String() string   { return "CREATE USER " + s.Name }

// DropUser is `DROP USER [IF EXISTS] name`.
type DropUser struct {
	Name     string
	IfExists bool
}

func (s *DropUser) Kind() Kind       { return KindDropUser }
func (s *DropUser) Accept(v Visitor) { v.Visit(s) }
func (s *DropUser) String() string   { return "DROP USER " + s.Name }

// ChangePassword is `CHANGE PASSWORD name FROM old TO new` (or, for the
// caller's own account, old is empty and unchecked).
type ChangePassword struct {
	Name        string
	OldPassword string
	NewPassword string
}

func (s *ChangePassword) Kind() Kind       { return KindChangePassword }
func (s *ChangePassword) Accept(v Visitor) { v.Visit(s) }
func (s *ChangePassword) String() string   { return "CHANGE PASSWORD " + s.Name }

// Grant assigns a role to a user, scoped to a space when Space is non-empty.
type Grant struct {
	Name  string
	Role  auth.Role
	Space string
}

func (s *Grant) Kind() Kind       { return KindGrant }
func (s *Grant) Accept(v Visitor) { v.Visit(s) }
func (s *Grant) String() string   { return "GRANT ROLE " + s.Role.String() + " ON " + s.Name }

// Revoke removes a previously granted role from a user.
type Revoke struct {
	Name  string
	Role  auth.Role
	Space string
}

func (s *Revoke) Kind() Kind       { return KindRevoke }
func (s *Revoke) Accept(v Visitor) { v.Visit(s) }
func (s *Revoke) String() string   { return "REVOKE ROLE " + s.Role.String() + " ON " + s.Name }

// ShowUsers lists every account.
type ShowUsers struct{}

func (s *ShowUsers) Kind() Kind       { return KindShowUsers }
func (s *ShowUsers) Accept(v Visitor) { v.Visit(s) }
func (s *ShowUsers) String() string   { return "SHOW USERS" }

// ShowRoles lists role grants in a space.
type ShowRoles struct{ Space string }

func (s *ShowRoles) Kind() Kind       { return KindShowRoles }
func (s *ShowRoles) Accept(v Visitor) { v.Visit(s) }
func (s *ShowRoles) String() string   { return "SHOW ROLES IN " + s.Space }
