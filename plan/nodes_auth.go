package plan

import "github.com/graphlang/ngqlcore/auth"

// CreateUser materializes a new account.
type CreateUser struct {
	leaf
	Name, Password string
	IfNotExists    bool
}

func NewCreateUser(name, password string, ifNotExists bool) *CreateUser {
	return &CreateUser{leaf: newLeaf(nil), Name: name, Password: password, IfNotExists: ifNotExists}
}
func (n *CreateUser) Kind() Kind     { return KindCreateUser }
func (n *CreateUser) String() string { return "CreateUser " + n.Name }

// DropUser removes an account.
type DropUser struct {
	leaf
	Name     string
	IfExists bool
}

func NewDropUser(name string, ifExists bool) *DropUser {
	return &DropUser{leaf: newLeaf(nil), Name: name, IfExists: ifExists}
}
func (n *DropUser) Kind() Kind     { return KindDropUser }
func (n *DropUser) String() string { return "DropUser " + n.Name }

// ChangePassword updates an account's password.
type ChangePassword struct {
	leaf
	Name, OldPassword, NewPassword string
}

func NewChangePassword(name, oldPW, newPW string) *ChangePassword {
	return &ChangePassword{leaf: newLeaf(nil), Name: name, OldPassword: oldPW, NewPassword: newPW}
}
func (n *ChangePassword) Kind() Kind     { return KindChangePassword }
func (n *ChangePassword) String() string { return "ChangePassword " + n.Name }

// Grant assigns a role to an account.
type Grant struct {
	leaf
	Name  string
	Role  auth.Role
	Space string
}

func NewGrant(name string, role auth.Role, space string) *Grant {
	return &Grant{leaf: newLeaf(nil), Name: name, Role: role, Space: space}
}
func (n *Grant) Kind() Kind     { return KindGrant }
func (n *Grant) String() string { return "Grant " + n.Role.String() + " " + n.Name }

// Revoke removes a role grant from an account.
type Revoke struct {
	leaf
	Name  string
	Role  auth.Role
	Space string
}

func NewRevoke(name string, role auth.Role, space string) *Revoke {
	return &Revoke{leaf: newLeaf(nil), Name: name, Role: role, Space: space}
}
func (n *Revoke) Kind() Kind     { return KindRevoke }
func (n *Revoke) String() string { return "Revoke " + n.Role.String() + " " + n.Name }

// ShowUsers lists every account.
type ShowUsers struct{ leaf }

func NewShowUsers() *ShowUsers { return &ShowUsers{newLeaf([]string{"Account"})} }
func (n *ShowUsers) Kind() Kind     { return KindShowUsers }
func (n *ShowUsers) String() string { return "ShowUsers" }

// ShowRoles lists role grants in a space.
type ShowRoles struct {
	leaf
	Space string
}

func NewShowRoles(space string) *ShowRoles {
	return &ShowRoles{leaf: newLeaf([]string{"Account", "Role"}), Space: space}
}
func (n *ShowRoles) Kind() Kind     { return KindShowRoles }
func (n *ShowRoles) String() string { return "ShowRoles" }
