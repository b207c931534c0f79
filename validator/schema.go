package validator

import (
	"strconv"

	"github.com/graphlang/ngqlcore/ast"
	"github.com/graphlang/ngqlcore/auth"
	"github.com/graphlang/ngqlcore/catalog"
	"github.com/graphlang/ngqlcore/plan"
	"github.com/graphlang/ngqlcore/value"
)

// parseDefaultLiteral best-effort parses a property's DEFAULT literal text
// into a Value: bool/int/float first, falling back to a bare string. This
// mirrors the parser leaving literal interpretation to validation time
// rather than guessing a type at parse time.
func parseDefaultLiteral(text string) value.Value {
	if text == "" {
		return value.Value{}
	}
	if b, err := strconv.ParseBool(text); err == nil {
		return value.Bool(b)
	}
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return value.Int(i)
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		return value.Float(f)
	}
	return value.Str(text)
}

// resolvePropertySpecs turns parsed PropertySpecs into catalog.PropertyDefs,
// raising ErrUnknownType for any property whose declared type word doesn't
// resolve.
func resolvePropertySpecs(specs []ast.PropertySpec) ([]catalog.PropertyDef, error) {
	out := ast.ToPropertyDefs(specs, value.ParseTypeName)
	for i, p := range specs {
		if _, ok := value.ParseTypeName(p.Type); !ok {
			return nil, ErrUnknownType.New(p.Type, p.Name)
		}
		if p.Default != "" {
			d := parseDefaultLiteral(p.Default)
			out[i].Default = &d
		}
	}
	return out, nil
}

func (v *Validator) validateCreateSpace(s *ast.CreateSpace) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.checkPerm(auth.PrecondSchemaWrite, "CREATE SPACE"); err != nil {
		return nil, nil, err
	}
	if _, err := v.ctx.Catalog.CreateSpace(s.Name); err != nil {
		if s.IfNotExists {
			return plan.NewCreateSpace(s.Name, s.PartitionNum, s.ReplicaFactor, s.IfNotExists), nil, nil
		}
		return nil, nil, err
	}
	return plan.NewCreateSpace(s.Name, s.PartitionNum, s.ReplicaFactor, s.IfNotExists), nil, nil
}

func (v *Validator) validateDropSpace(s *ast.DropSpace) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.checkPerm(auth.PrecondSchemaWrite, "DROP SPACE"); err != nil {
		return nil, nil, err
	}
	if err := v.ctx.Catalog.DropSpace(s.Name); err != nil && !s.IfExists {
		return nil, nil, err
	}
	return plan.NewDropSpace(s.Name, s.IfExists), nil, nil
}

func (v *Validator) validateDescSpace(s *ast.DescSpace) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.requireSpace(); err != nil {
		return nil, nil, err
	}
	if _, err := v.ctx.Catalog.SpaceByName(s.Name); err != nil {
		return nil, nil, err
	}
	n := plan.NewDescSpace(s.Name)
	return n, columnSchemaOf(n.ColNames()), nil
}

func (v *Validator) validateShowSpaces(s *ast.ShowSpaces) (plan.PlanNode, value.ColumnSchema, error) {
	n := plan.NewShowSpaces()
	return n, columnSchemaOf(n.ColNames()), nil
}

func (v *Validator) validateUseSpace(s *ast.UseSpace) (plan.PlanNode, value.ColumnSchema, error) {
	if _, err := v.ctx.Catalog.SpaceByName(s.Name); err != nil {
		return nil, nil, err
	}
	v.ctx.Space = s.Name
	return plan.NewPassThrough(plan.NewStart(nil)), nil, nil
}

func (v *Validator) validateCreateTag(s *ast.CreateTag) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.requireSpace(); err != nil {
		return nil, nil, err
	}
	if err := v.checkPerm(auth.PrecondSchemaWrite, "CREATE TAG"); err != nil {
		return nil, nil, err
	}
	props, err := resolvePropertySpecs(s.Props)
	if err != nil {
		return nil, nil, err
	}
	if err := v.ctx.Catalog.CreateTag(v.ctx.Space, &catalog.TagSchema{Name: s.Name, Props: props}); err != nil {
		if s.IfNotExists {
			return plan.NewCreateTag(s.Name, props, s.IfNotExists), nil, nil
		}
		return nil, nil, err
	}
	return plan.NewCreateTag(s.Name, props, s.IfNotExists), nil, nil
}

func (v *Validator) validateCreateEdge(s *ast.CreateEdge) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.requireSpace(); err != nil {
		return nil, nil, err
	}
	if err := v.checkPerm(auth.PrecondSchemaWrite, "CREATE EDGE"); err != nil {
		return nil, nil, err
	}
	props, err := resolvePropertySpecs(s.Props)
	if err != nil {
		return nil, nil, err
	}
	if err := v.ctx.Catalog.CreateEdge(v.ctx.Space, &catalog.EdgeSchema{Name: s.Name, Props: props}); err != nil {
		if s.IfNotExists {
			return plan.NewCreateEdge(s.Name, props, s.IfNotExists), nil, nil
		}
		return nil, nil, err
	}
	return plan.NewCreateEdge(s.Name, props, s.IfNotExists), nil, nil
}

func (v *Validator) validateAlterTag(s *ast.AlterTag) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.requireSpace(); err != nil {
		return nil, nil, err
	}
	if err := v.checkPerm(auth.PrecondSchemaWrite, "ALTER TAG"); err != nil {
		return nil, nil, err
	}
	if _, err := v.ctx.Catalog.TagSchema(v.ctx.Space, s.Name); err != nil {
		return nil, nil, err
	}
	add, err := resolvePropertySpecs(s.AddProps)
	if err != nil {
		return nil, nil, err
	}
	if err := v.ctx.Catalog.AlterTag(v.ctx.Space, s.Name, add, s.DropCols); err != nil {
		return nil, nil, err
	}
	return plan.NewAlterTag(s.Name, add, s.DropCols), nil, nil
}

func (v *Validator) validateAlterEdge(s *ast.AlterEdge) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.requireSpace(); err != nil {
		return nil, nil, err
	}
	if err := v.checkPerm(auth.PrecondSchemaWrite, "ALTER EDGE"); err != nil {
		return nil, nil, err
	}
	if _, err := v.ctx.Catalog.EdgeSchema(v.ctx.Space, s.Name); err != nil {
		return nil, nil, err
	}
	add, err := resolvePropertySpecs(s.AddProps)
	if err != nil {
		return nil, nil, err
	}
	if err := v.ctx.Catalog.AlterEdge(v.ctx.Space, s.Name, add, s.DropCols); err != nil {
		return nil, nil, err
	}
	return plan.NewAlterEdge(s.Name, add, s.DropCols), nil, nil
}

func (v *Validator) validateDropTag(s *ast.DropTag) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.requireSpace(); err != nil {
		return nil, nil, err
	}
	if err := v.checkPerm(auth.PrecondSchemaWrite, "DROP TAG"); err != nil {
		return nil, nil, err
	}
	if err := v.ctx.Catalog.DropTag(v.ctx.Space, s.Name); err != nil && !s.IfExists {
		return nil, nil, err
	}
	return plan.NewDropTag(s.Name, s.IfExists), nil, nil
}

func (v *Validator) validateDropEdge(s *ast.DropEdge) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.requireSpace(); err != nil {
		return nil, nil, err
	}
	if err := v.checkPerm(auth.PrecondSchemaWrite, "DROP EDGE"); err != nil {
		return nil, nil, err
	}
	if err := v.ctx.Catalog.DropEdge(v.ctx.Space, s.Name); err != nil && !s.IfExists {
		return nil, nil, err
	}
	return plan.NewDropEdge(s.Name, s.IfExists), nil, nil
}

func (v *Validator) validateDescTag(s *ast.DescTag) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.requireSpace(); err != nil {
		return nil, nil, err
	}
	if _, err := v.ctx.Catalog.TagSchema(v.ctx.Space, s.Name); err != nil {
		return nil, nil, err
	}
	n := plan.NewDescTag(s.Name)
	return n, columnSchemaOf(n.ColNames()), nil
}

func (v *Validator) validateDescEdge(s *ast.DescEdge) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.requireSpace(); err != nil {
		return nil, nil, err
	}
	if _, err := v.ctx.Catalog.EdgeSchema(v.ctx.Space, s.Name); err != nil {
		return nil, nil, err
	}
	n := plan.NewDescEdge(s.Name)
	return n, columnSchemaOf(n.ColNames()), nil
}

func (v *Validator) validateShowTags(s *ast.ShowTags) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.requireSpace(); err != nil {
		return nil, nil, err
	}
	n := plan.NewShowTags()
	return n, columnSchemaOf(n.ColNames()), nil
}

func (v *Validator) validateShowEdges(s *ast.ShowEdges) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.requireSpace(); err != nil {
		return nil, nil, err
	}
	n := plan.NewShowEdges()
	return n, columnSchemaOf(n.ColNames()), nil
}

func (v *Validator) validateShowCreateTag(s *ast.ShowCreateTag) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.requireSpace(); err != nil {
		return nil, nil, err
	}
	if _, err := v.ctx.Catalog.TagSchema(v.ctx.Space, s.Name); err != nil {
		return nil, nil, err
	}
	n := plan.NewShowCreateTag(s.Name)
	return n, columnSchemaOf(n.ColNames()), nil
}

func (v *Validator) validateShowCreateEdge(s *ast.ShowCreateEdge) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.requireSpace(); err != nil {
		return nil, nil, err
	}
	if _, err := v.ctx.Catalog.EdgeSchema(v.ctx.Space, s.Name); err != nil {
		return nil, nil, err
	}
	n := plan.NewShowCreateEdge(s.Name)
	return n, columnSchemaOf(n.ColNames()), nil
}

func (v *Validator) validateCreateTagIndex(s *ast.CreateTagIndex) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.requireSpace(); err != nil {
		return nil, nil, err
	}
	if err := v.checkPerm(auth.PrecondSchemaWrite, "CREATE TAG INDEX"); err != nil {
		return nil, nil, err
	}
	schema, err := v.ctx.Catalog.TagSchema(v.ctx.Space, s.TagName)
	if err != nil {
		return nil, nil, err
	}
	for _, f := range s.Fields {
		found := false
		for _, p := range schema.Props {
			if p.Name == f {
				found = true
				break
			}
		}
		if !found {
			return nil, nil, ErrColumnNotFound.New(f)
		}
	}
	if err := v.ctx.Catalog.CreateTagIndex(v.ctx.Space, &catalog.IndexDef{Name: s.IndexName, Owner: s.TagName, Fields: s.Fields}); err != nil {
		return nil, nil, err
	}
	return plan.NewCreateTagIndex(s.IndexName, s.TagName, s.Fields), nil, nil
}

func (v *Validator) validateCreateEdgeIndex(s *ast.CreateEdgeIndex) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.requireSpace(); err != nil {
		return nil, nil, err
	}
	if err := v.checkPerm(auth.PrecondSchemaWrite, "CREATE EDGE INDEX"); err != nil {
		return nil, nil, err
	}
	schema, err := v.ctx.Catalog.EdgeSchema(v.ctx.Space, s.EdgeName)
	if err != nil {
		return nil, nil, err
	}
	for _, f := range s.Fields {
		found := false
		for _, p := range schema.Props {
			if p.Name == f {
				found = true
				break
			}
		}
		if !found {
			return nil, nil, ErrColumnNotFound.New(f)
		}
	}
	if err := v.ctx.Catalog.CreateEdgeIndex(v.ctx.Space, &catalog.IndexDef{Name: s.IndexName, Owner: s.EdgeName, Fields: s.Fields}); err != nil {
		return nil, nil, err
	}
	return plan.NewCreateEdgeIndex(s.IndexName, s.EdgeName, s.Fields), nil, nil
}

func (v *Validator) validateDropTagIndex(s *ast.DropTagIndex) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.requireSpace(); err != nil {
		return nil, nil, err
	}
	if err := v.checkPerm(auth.PrecondSchemaWrite, "DROP TAG INDEX"); err != nil {
		return nil, nil, err
	}
	if err := v.ctx.Catalog.DropTagIndex(v.ctx.Space, s.IndexName); err != nil {
		return nil, nil, err
	}
	return plan.NewDropTagIndex(s.IndexName), nil, nil
}

func (v *Validator) validateDropEdgeIndex(s *ast.DropEdgeIndex) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.requireSpace(); err != nil {
		return nil, nil, err
	}
	if err := v.checkPerm(auth.PrecondSchemaWrite, "DROP EDGE INDEX"); err != nil {
		return nil, nil, err
	}
	if err := v.ctx.Catalog.DropEdgeIndex(v.ctx.Space, s.IndexName); err != nil {
		return nil, nil, err
	}
	return plan.NewDropEdgeIndex(s.IndexName), nil, nil
}

func (v *Validator) validateDescTagIndex(s *ast.DescTagIndex) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.requireSpace(); err != nil {
		return nil, nil, err
	}
	if _, err := v.ctx.Catalog.TagIndex(v.ctx.Space, s.IndexName); err != nil {
		return nil, nil, err
	}
	n := plan.NewDescTagIndex(s.IndexName)
	return n, columnSchemaOf(n.ColNames()), nil
}

func (v *Validator) validateDescEdgeIndex(s *ast.DescEdgeIndex) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.requireSpace(); err != nil {
		return nil, nil, err
	}
	if _, err := v.ctx.Catalog.EdgeIndex(v.ctx.Space, s.IndexName); err != nil {
		return nil, nil, err
	}
	n := plan.NewDescEdgeIndex(s.IndexName)
	return n, columnSchemaOf(n.ColNames()), nil
}

func (v *Validator) validateShowTagIndexes(s *ast.ShowTagIndexes) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.requireSpace(); err != nil {
		return nil, nil, err
	}
	n := plan.NewShowTagIndexes()
	return n, columnSchemaOf(n.ColNames()), nil
}

func (v *Validator) validateShowEdgeIndexes(s *ast.ShowEdgeIndexes) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.requireSpace(); err != nil {
		return nil, nil, err
	}
	n := plan.NewShowEdgeIndexes()
	return n, columnSchemaOf(n.ColNames()), nil
}

func (v *Validator) validateRebuildTagIndex(s *ast.RebuildTagIndex) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.requireSpace(); err != nil {
		return nil, nil, err
	}
	if err := v.checkPerm(auth.PrecondSchemaWrite, "REBUILD TAG INDEX"); err != nil {
		return nil, nil, err
	}
	if _, err := v.ctx.Catalog.TagIndex(v.ctx.Space, s.IndexName); err != nil {
		return nil, nil, err
	}
	n := plan.NewRebuildTagIndex(s.IndexName)
	return n, columnSchemaOf(n.ColNames()), nil
}

func (v *Validator) validateRebuildEdgeIndex(s *ast.RebuildEdgeIndex) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.requireSpace(); err != nil {
		return nil, nil, err
	}
	if err := v.checkPerm(auth.PrecondSchemaWrite, "REBUILD EDGE INDEX"); err != nil {
		return nil, nil, err
	}
	if _, err := v.ctx.Catalog.EdgeIndex(v.ctx.Space, s.IndexName); err != nil {
		return nil, nil, err
	}
	n := plan.NewRebuildEdgeIndex(s.IndexName)
	return n, columnSchemaOf(n.ColNames()), nil
}

// columnSchemaOf builds a STRING-typed ColumnSchema from a plan node's output
// column names, for the DDL/SHOW nodes whose rows are admin-formatted text
// rather than typed query results.
func columnSchemaOf(names []string) value.ColumnSchema {
	out := make(value.ColumnSchema, len(names))
	for i, n := range names {
		out[i] = value.ColumnDef{Name: n, Type: value.TypeString}
	}
	return out
}
