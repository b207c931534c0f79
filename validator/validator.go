// Package validator type-checks a parsed ast.Sentence against the current
// catalog and symbol table, enforces its permission precondition, and lowers
// it to a plan.PlanNode. Validation runs as a single dispatching pass:
// each sentence kind knows its own validation and lowering in one step,
// the way a single-pass type checker does.
package validator

import (
	"gopkg.in/src-d/go-errors.v1"

	"github.com/graphlang/ngqlcore/ast"
	"github.com/graphlang/ngqlcore/auth"
	"github.com/graphlang/ngqlcore/expression"
	"github.com/graphlang/ngqlcore/plan"
	"github.com/graphlang/ngqlcore/querycontext"
	"github.com/graphlang/ngqlcore/value"
)

var (
	// ErrColumnNotFound is returned when a WHERE/YIELD/ORDER BY expression
	// references a column absent from the input schema.
	ErrColumnNotFound = errors.NewKind("column `%s' not exist in input.")
	// ErrMultipleDataSources is returned when a sentence mixes a pipe input
	// with a `$var` reference, or references more than one variable.
	ErrMultipleDataSources = errors.NewKind("only support single data source.")
	// ErrUnsupportedScope is returned when YIELD projects a property the
	// sentence kind does not expose (e.g. LOOKUP yielding an unrelated
	// tag's property).
	ErrUnsupportedScope = errors.NewKind("`%s' is not supported in this scope.")
	// ErrUnknownSentence is returned for a Sentence implementation this
	// validator has no case for, which can only happen from a parser/
	// validator version skew, not from user input.
	ErrUnknownSentence = errors.NewKind("unsupported sentence: %T")
	// ErrNoSpaceSelected is returned when a sentence that requires a space
	// binding (anything but space-level DDL/admin) runs before `USE <space>`.
	ErrNoSpaceSelected = errors.NewKind("no space chosen")
	// ErrNotSupported is returned for a syntactically valid but
	// intentionally unimplemented feature, e.g. the tagged property path
	// `$$.tag[field].prop`.
	ErrNotSupported = errors.NewKind("not supported: %s")
	// ErrUnknownType is returned when a CREATE TAG/EDGE property names a
	// type word the value package does not recognize.
	ErrUnknownType = errors.NewKind("unknown type `%s' for property `%s'")
	// ErrBadFormat is returned for an EXPLAIN FORMAT value other than
	// "row", "dot", or "dot:struct" (case-insensitively).
	ErrBadFormat = errors.NewKind("invalid explain format `%s'")
)

// Validator walks one ast.Sentence and produces its plan.PlanNode, carrying
// the query-scoped Context a sentence needs (catalog, symbol table, arena,
// session) through every nested call.
type Validator struct {
	ctx    *querycontext.Context
	result plan.PlanNode
	schema value.ColumnSchema
	err    error
}

// New builds a Validator bound to ctx.
func New(ctx *querycontext.Context) *Validator { return &Validator{ctx: ctx} }

// Validate type-checks and lowers s, returning its plan, its output
// ColumnSchema, and the first error encountered. The output schema becomes
// the next pipe stage's input, or a following `$var = s` assignment's
// symbol-table entry.
func (val *Validator) Validate(s ast.Sentence) (plan.PlanNode, value.ColumnSchema, error) {
	v := &Validator{ctx: val.ctx}
	s.Accept(v)
	return v.result, v.schema, v.err
}

// Visit implements ast.Visitor by dispatching s to its family's handler.
func (v *Validator) Visit(s ast.Sentence) bool {
	if v.err != nil {
		return false
	}
	switch s := s.(type) {
	case *ast.CreateSpace:
		v.result, v.schema, v.err = v.validateCreateSpace(s)
	case *ast.DropSpace:
		v.result, v.schema, v.err = v.validateDropSpace(s)
	case *ast.DescSpace:
		v.result, v.schema, v.err = v.validateDescSpace(s)
	case *ast.ShowSpaces:
		v.result, v.schema, v.err = v.validateShowSpaces(s)
	case *ast.UseSpace:
		v.result, v.schema, v.err = v.validateUseSpace(s)

	case *ast.CreateTag:
		v.result, v.schema, v.err = v.validateCreateTag(s)
	case *ast.CreateEdge:
		v.result, v.schema, v.err = v.validateCreateEdge(s)
	case *ast.AlterTag:
		v.result, v.schema, v.err = v.validateAlterTag(s)
	case *ast.AlterEdge:
		v.result, v.schema, v.err = v.validateAlterEdge(s)
	case *ast.DropTag:
		v.result, v.schema, v.err = v.validateDropTag(s)
	case *ast.DropEdge:
		v.result, v.schema, v.err = v.validateDropEdge(s)
	case *ast.DescTag:
		v.result, v.schema, v.err = v.validateDescTag(s)
	case *ast.DescEdge:
		v.result, v.schema, v.err = v.validateDescEdge(s)
	case *ast.ShowTags:
		v.result, v.schema, v.err = v.validateShowTags(s)
	case *ast.ShowEdges:
		v.result, v.schema, v.err = v.validateShowEdges(s)
	case *ast.ShowCreateTag:
		v.result, v.schema, v.err = v.validateShowCreateTag(s)
	case *ast.ShowCreateEdge:
		v.result, v.schema, v.err = v.validateShowCreateEdge(s)

	case *ast.CreateTagIndex:
		v.result, v.schema, v.err = v.validateCreateTagIndex(s)
	case *ast.CreateEdgeIndex:
		v.result, v.schema, v.err = v.validateCreateEdgeIndex(s)
	case *ast.DropTagIndex:
		v.result, v.schema, v.err = v.validateDropTagIndex(s)
	case *ast.DropEdgeIndex:
		v.result, v.schema, v.err = v.validateDropEdgeIndex(s)
	case *ast.DescTagIndex:
		v.result, v.schema, v.err = v.validateDescTagIndex(s)
	case *ast.DescEdgeIndex:
		v.result, v.schema, v.err = v.validateDescEdgeIndex(s)
	case *ast.ShowTagIndexes:
		v.result, v.schema, v.err = v.validateShowTagIndexes(s)
	case *ast.ShowEdgeIndexes:
		v.result, v.schema, v.err = v.validateShowEdgeIndexes(s)
	case *ast.RebuildTagIndex:
		v.result, v.schema, v.err = v.validateRebuildTagIndex(s)
	case *ast.RebuildEdgeIndex:
		v.result, v.schema, v.err = v.validateRebuildEdgeIndex(s)

	case *ast.InsertVertices:
		v.result, v.schema, v.err = v.validateInsertVertices(s)
	case *ast.InsertEdges:
		v.result, v.schema, v.err = v.validateInsertEdges(s)
	case *ast.UpdateVertex:
		v.result, v.schema, v.err = v.validateUpdateVertex(s)
	case *ast.UpdateEdge:
		v.result, v.schema, v.err = v.validateUpdateEdge(s)
	case *ast.DeleteVertices:
		v.result, v.schema, v.err = v.validateDeleteVertices(s)
	case *ast.DeleteEdges:
		v.result, v.schema, v.err = v.validateDeleteEdges(s)
	case *ast.Download:
		v.result, v.schema, v.err = v.validateDownload(s)
	case *ast.Ingest:
		v.result, v.schema, v.err = v.validateIngest(s)

	case *ast.Go:
		v.result, v.schema, v.err = v.validateGo(s)
	case *ast.Lookup:
		v.result, v.schema, v.err = v.validateLookup(s)
	case *ast.FetchVertices:
		v.result, v.schema, v.err = v.validateFetchVertices(s)
	case *ast.FetchEdges:
		v.result, v.schema, v.err = v.validateFetchEdges(s)
	case *ast.FindPath:
		v.result, v.schema, v.err = v.validateFindPath(s)
	case *ast.GetSubgraph:
		v.result, v.schema, v.err = v.validateGetSubgraph(s)
	case *ast.Match:
		v.result, v.schema, v.err = v.validateMatch(s)
	case *ast.Unwind:
		v.result, v.schema, v.err = v.validateUnwind(s)
	case *ast.Yield:
		v.result, v.schema, v.err = v.validateYield(s)
	case *ast.OrderBy:
		v.result, v.schema, v.err = v.validateOrderBy(s)
	case *ast.Limit:
		v.result, v.schema, v.err = v.validateLimit(s)
	case *ast.GroupBy:
		v.result, v.schema, v.err = v.validateGroupBy(s)
	case *ast.Set:
		v.result, v.schema, v.err = v.validateSet(s)
	case *ast.Pipe:
		v.result, v.schema, v.err = v.validatePipe(s)
	case *ast.Assignment:
		v.result, v.schema, v.err = v.validateAssignment(s)

	case *ast.AddHosts, *ast.DropHosts, *ast.ShowHosts, *ast.ShowConfigs,
		*ast.SetConfig, *ast.CreateSnapshot, *ast.DropSnapshot, *ast.ShowSnapshots:
		v.result, v.schema, v.err = v.validateAdmin(s)
	case *ast.ShowSessions, *ast.KillSession, *ast.ShowQueries, *ast.KillQuery:
		v.result, v.schema, v.err = v.validateSession(s)

	case *ast.CreateUser:
		v.result, v.schema, v.err = v.validateCreateUser(s)
	case *ast.DropUser:
		v.result, v.schema, v.err = v.validateDropUser(s)
	case *ast.ChangePassword:
		v.result, v.schema, v.err = v.validateChangePassword(s)
	case *ast.Grant:
		v.result, v.schema, v.err = v.validateGrant(s)
	case *ast.Revoke:
		v.result, v.schema, v.err = v.validateRevoke(s)
	case *ast.ShowUsers:
		v.result, v.schema, v.err = v.validateShowUsers(s)
	case *ast.ShowRoles:
		v.result, v.schema, v.err = v.validateShowRoles(s)

	case *ast.SubmitJob:
		v.result, v.schema, v.err = v.validateSubmitJob(s)
	case *ast.ShowJobs:
		v.result, v.schema, v.err = v.validateShowJobs(s)
	case *ast.StopJob:
		v.result, v.schema, v.err = v.validateStopJob(s)
	case *ast.RecoverJob:
		v.result, v.schema, v.err = v.validateRecoverJob(s)

	case *ast.Explain:
		v.result, v.schema, v.err = v.validateExplain(s)
	case *ast.Return:
		v.result, v.schema, v.err = v.validateReturn(s)
	case *ast.Sequential:
		v.result, v.schema, v.err = v.validateSequential(s)

	default:
		v.err = ErrUnknownSentence.New(s)
	}
	return false
}

// checkColumns validates that every column name referenced in used is
// present in input, backing the pipe-chaining and YIELD-scope invariants
// every query sentence enforces against its predecessor's output.
func checkColumns(input value.ColumnSchema, used []string) error {
	for _, name := range used {
		if input.IndexOf(name) < 0 {
			return ErrColumnNotFound.New(name)
		}
	}
	return nil
}

// checkReferencedColumns enforces standalone YIELD's column-exists and
// single-data-source invariants: every bare $-.col must name a column of the
// current pipe input, and every $var.col must name a column of one single
// previously bound variable.
func (v *Validator) checkReferencedColumns(s *ast.Yield) error {
	exprs := make([]expression.Expression, 0, len(s.Clause.Columns)+1)
	for _, yc := range s.Clause.Columns {
		exprs = append(exprs, yc.Expr)
	}
	if s.Where != nil {
		exprs = append(exprs, s.Where.Filter)
	}
	refs := collectColumnRefs(exprs...)
	if len(refs.input) > 0 {
		if v.ctx.InputSchema == nil {
			return ErrColumnNotFound.New(refs.input[0])
		}
		if err := checkColumns(v.ctx.InputSchema, refs.input); err != nil {
			return err
		}
	}
	varName, err := refs.singleVariable()
	if err != nil {
		return err
	}
	if varName != "" {
		schema, ok := v.ctx.Symbols.Lookup(varName)
		if !ok {
			return ErrColumnNotFound.New(varName)
		}
		if err := checkColumns(schema, refs.vars[varName]); err != nil {
			return err
		}
	}
	return nil
}

// requireSpace enforces the space-required precondition every sentence but
// space-level DDL/admin/user-management opts out of.
func (v *Validator) requireSpace() error {
	if v.ctx.Space == "" {
		return ErrNoSpaceSelected.New()
	}
	return nil
}

// checkPerm enforces a permission precondition against this validation
// pass's session.
func (v *Validator) checkPerm(p auth.Precondition, action string) error {
	return auth.Check(v.ctx.Session, p, action)
}

// typeContext adapts querycontext.Context to expression.TypeContext,
// resolving InputProperty/VariableProperty against the current pipe input
// and symbol table, and SourceProperty/DestProperty/EdgeProperty against
// the current space's tag/edge schemas. Pseudo-attributes (_id, _type,
// _src, _dst, _rank) type-check against any owner without a schema lookup,
// since they are not ordinary declared properties.
type typeContext struct {
	ctx *querycontext.Context
}

func newTypeContext(ctx *querycontext.Context) *typeContext { return &typeContext{ctx: ctx} }

func (t *typeContext) InputColumnType(col string) (value.ValueType, bool) {
	if t.ctx.InputSchema == nil {
		return value.TypeAny, false
	}
	idx := t.ctx.InputSchema.IndexOf(col)
	if idx < 0 {
		return value.TypeAny, false
	}
	return t.ctx.InputSchema[idx].Type, true
}

func (t *typeContext) VariableColumnType(v, col string) (value.ValueType, bool) {
	schema, ok := t.ctx.Symbols.Lookup(v)
	if !ok {
		return value.TypeAny, false
	}
	idx := schema.IndexOf(col)
	if idx < 0 {
		return value.TypeAny, false
	}
	return schema[idx].Type, true
}

func pseudoAttrType(attr string) (value.ValueType, bool) {
	switch attr {
	case expression.AttrID, expression.AttrSrc, expression.AttrDst:
		return value.TypeAny, true
	case expression.AttrType:
		return value.TypeString, true
	case expression.AttrRank:
		return value.TypeInt, true
	default:
		return value.TypeAny, false
	}
}

func (t *typeContext) TagPropType(tag, prop string) (value.ValueType, bool) {
	if pt, ok := pseudoAttrType(prop); ok {
		return pt, true
	}
	schema, err := t.ctx.Catalog.TagSchema(t.ctx.Space, tag)
	if err != nil {
		return value.TypeAny, false
	}
	for _, p := range schema.Props {
		if p.Name == prop {
			return p.Type, true
		}
	}
	return value.TypeAny, false
}

func (t *typeContext) EdgePropType(edge, prop string) (value.ValueType, bool) {
	if pt, ok := pseudoAttrType(prop); ok {
		return pt, true
	}
	schema, err := t.ctx.Catalog.EdgeSchema(t.ctx.Space, edge)
	if err != nil {
		return value.TypeAny, false
	}
	for _, p := range schema.Props {
		if p.Name == prop {
			return p.Type, true
		}
	}
	return value.TypeAny, false
}

var _ expression.TypeContext = (*typeContext)(nil)

// columnRefs accumulates the InputProperty/VariableProperty references
// found while walking an expression tree, the raw material for checkColumns
// and the "single data source" variable-reference invariant.
type columnRefs struct {
	input []string
	vars  map[string][]string
}

func newColumnRefs() *columnRefs { return &columnRefs{vars: make(map[string][]string)} }

func (c *columnRefs) Visit(e expression.Expression) bool {
	switch n := e.(type) {
	case *expression.InputProperty:
		c.input = append(c.input, n.Col)
	case *expression.VariableProperty:
		c.vars[n.Var] = append(c.vars[n.Var], n.Col)
	}
	return true
}

// collectColumnRefs walks every expression in exprs, merging their
// InputProperty/VariableProperty references into one columnRefs.
func collectColumnRefs(exprs ...expression.Expression) *columnRefs {
	c := newColumnRefs()
	for _, e := range exprs {
		if e == nil {
			continue
		}
		expression.Walk(c, e)
	}
	return c
}

// singleVariable returns the one variable name referenced across refs,
// enforcing the "only support single data source" invariant: more than one
// distinct `$var` across the checked expressions is an error.
func (c *columnRefs) singleVariable() (string, error) {
	name := ""
	for v := range c.vars {
		if name != "" && name != v {
			return "", ErrMultipleDataSources.New()
		}
		name = v
	}
	return name, nil
}

// scopeChecker rejects property-reference expression kinds outside an
// allowed set (e.g. standalone YIELD permits only Input/Variable property
// references).
type scopeChecker struct {
	allowed map[expression.Kind]bool
	err     error
}

func (s *scopeChecker) Visit(e expression.Expression) bool {
	if s.err != nil {
		return false
	}
	switch e.Kind() {
	case expression.KindInputProperty, expression.KindVariableProperty,
		expression.KindSourceProperty, expression.KindDestProperty, expression.KindEdgeProperty:
		if !s.allowed[e.Kind()] {
			s.err = ErrUnsupportedScope.New(e.String())
			return false
		}
	case expression.KindLabelAttribute:
		// The tagged property path `$$.tag[field].prop` form is left
		// pre-resolution and rejected.
		s.err = ErrNotSupported.New(e.String())
		return false
	}
	return true
}

// checkScope enforces allowed against every expression, returning the
// first violation found across all of them.
func checkScope(allowed map[expression.Kind]bool, exprs ...expression.Expression) error {
	c := &scopeChecker{allowed: allowed}
	for _, e := range exprs {
		if e == nil {
			continue
		}
		expression.Walk(c, e)
		if c.err != nil {
			return c.err
		}
	}
	return nil
}

var (
	scopeGoYield = map[expression.Kind]bool{
		expression.KindInputProperty: true, expression.KindVariableProperty: true,
		expression.KindSourceProperty: true, expression.KindDestProperty: true, expression.KindEdgeProperty: true,
	}
	scopeYieldOnly = map[expression.Kind]bool{
		expression.KindInputProperty: true, expression.KindVariableProperty: true,
	}
	scopeLookup = map[expression.Kind]bool{
		expression.KindSourceProperty: true, expression.KindDestProperty: true, expression.KindEdgeProperty: true,
	}
)

// aggChecker flags any AggregateFunction in a tree; aggregates only make
// sense under a GROUP BY, every other sentence rejects them.
type aggChecker struct{ found expression.Expression }

func (a *aggChecker) Visit(e expression.Expression) bool {
	if e.Kind() == expression.KindAggregateFunction {
		a.found = e
		return false
	}
	return true
}

func checkNoAggregates(exprs ...expression.Expression) error {
	c := &aggChecker{}
	for _, e := range exprs {
		if e == nil {
			continue
		}
		expression.Walk(c, e)
		if c.found != nil {
			return ErrUnsupportedScope.New(c.found.String())
		}
	}
	return nil
}

// buildProjection evaluates a YieldClause (or a validator-supplied default
// column set, when the sentence's YIELD is optional and absent) into the
// plan's ProjectColumn list and the resulting output ColumnSchema.
// Aggregate calls are rejected here; GROUP BY lowers its own aggregate
// items without going through a Project.
func buildProjection(tc expression.TypeContext, yield *ast.YieldClause, defaults []plan.ProjectColumn) ([]plan.ProjectColumn, value.ColumnSchema, bool, error) {
	if yield == nil {
		cols := defaults
		schema := make(value.ColumnSchema, len(cols))
		for i, c := range cols {
			t, err := c.Expr.TypeInfer(tc)
			if err != nil {
				return nil, nil, false, err
			}
			schema[i] = value.ColumnDef{Name: c.Alias, Type: t}
		}
		return cols, schema, false, nil
	}
	cols := make([]plan.ProjectColumn, len(yield.Columns))
	schema := make(value.ColumnSchema, len(yield.Columns))
	for i, yc := range yield.Columns {
		if err := checkNoAggregates(yc.Expr); err != nil {
			return nil, nil, false, err
		}
		alias := yc.Alias
		if alias == "" {
			alias = yc.Expr.String()
		}
		t, err := yc.Expr.TypeInfer(tc)
		if err != nil {
			return nil, nil, false, err
		}
		cols[i] = plan.ProjectColumn{Expr: yc.Expr, Alias: alias}
		schema[i] = value.ColumnDef{Name: alias, Type: t}
	}
	return cols, schema, yield.Distinct, nil
}
