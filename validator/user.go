package validator

import (
	"github.com/graphlang/ngqlcore/ast"
	"github.com/graphlang/ngqlcore/auth"
	"github.com/graphlang/ngqlcore/plan"
	"github.com/graphlang/ngqlcore/value"
)

func (v *Validator) validateCreateUser(s *ast.CreateUser) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.checkPerm(auth.PrecondUserManage, "CREATE USER"); err != nil {
		return nil, nil, err
	}
	return plan.NewCreateUser(s.Name, s.Password, s.IfNotExists), nil, nil
}

func (v *Validator) validateDropUser(s *ast.DropUser) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.checkPerm(auth.PrecondUserManage, "DROP USER"); err != nil {
		return nil, nil, err
	}
	return plan.NewDropUser(s.Name, s.IfExists), nil, nil
}

func (v *Validator) validateChangePassword(s *ast.ChangePassword) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.checkPerm(auth.PrecondUserManage, "CHANGE PASSWORD"); err != nil {
		return nil, nil, err
	}
	return plan.NewChangePassword(s.Name, s.OldPassword, s.NewPassword), nil, nil
}

// validateGrant enforces that the granter outranks the role being granted,
// a check relative to the target role rather than the fixed-role comparison
// checkPerm performs, so it goes straight to auth.CheckGrant.
func (v *Validator) validateGrant(s *ast.Grant) (plan.PlanNode, value.ColumnSchema, error) {
	if err := auth.CheckGrant(v.ctx.Session, s.Role, "GRANT ROLE"); err != nil {
		return nil, nil, err
	}
	return plan.NewGrant(s.Name, s.Role, s.Space), nil, nil
}

func (v *Validator) validateRevoke(s *ast.Revoke) (plan.PlanNode, value.ColumnSchema, error) {
	if err := auth.CheckGrant(v.ctx.Session, s.Role, "REVOKE ROLE"); err != nil {
		return nil, nil, err
	}
	return plan.NewRevoke(s.Name, s.Role, s.Space), nil, nil
}

func (v *Validator) validateShowUsers(s *ast.ShowUsers) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.checkPerm(auth.PrecondUserManage, "SHOW USERS"); err != nil {
		return nil, nil, err
	}
	n := plan.NewShowUsers()
	return n, columnSchemaOf(n.ColNames()), nil
}

func (v *Validator) validateShowRoles(s *ast.ShowRoles) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.checkPerm(auth.PrecondSchemaWrite, "SHOW ROLES"); err != nil {
		return nil, nil, err
	}
	n := plan.NewShowRoles(s.Space)
	return n, columnSchemaOf(n.ColNames()), nil
}
