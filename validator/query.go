package validator

import (
	"strings"

	"github.com/graphlang/ngqlcore/ast"
	"github.com/graphlang/ngqlcore/auth"
	"github.com/graphlang/ngqlcore/expression"
	"github.com/graphlang/ngqlcore/plan"
	"github.com/graphlang/ngqlcore/querycontext"
	"github.com/graphlang/ngqlcore/value"
)

// internVIDs interns every literal Constant in vids through arena, so a
// FromClause repeating the same VID (e.g. `FROM 1, 1, 2`) shares one arena
// slot instead of minting a fresh node per occurrence. Non-constant VID
// expressions (only reachable once parsing supports them) pass through
// unchanged.
func internVIDs(arena *querycontext.Arena, vids []expression.Expression) []expression.Expression {
	out := make([]expression.Expression, len(vids))
	for i, e := range vids {
		if c, ok := e.(*expression.Constant); ok {
			out[i] = arena.Get(arena.PutConstant(c))
			continue
		}
		out[i] = e
	}
	return out
}

// resolveFrom lowers a FromClause/ToClause's vertex-ID source into its seed
// expressions and, when fed by a pipe or variable column, the plan node to
// graft onto as input. A literal VID list needs no input plan: plan.Start
// seeds the traversal on its own.
func (v *Validator) resolveFrom(vids []expression.Expression, ref string) ([]expression.Expression, plan.PlanNode, error) {
	if ref == "" {
		return internVIDs(v.ctx.Arena, vids), nil, nil
	}
	if err := checkColumns(v.ctx.InputSchema, []string{ref}); err != nil {
		return nil, nil, err
	}
	input := v.ctx.InputPlan
	if input == nil {
		input = plan.NewStart(nil)
	}
	return []expression.Expression{expression.NewInputProperty(ref)}, input, nil
}

func edgeNames(refs []ast.EdgeRef) []string {
	out := make([]string, len(refs))
	for i, r := range refs {
		out[i] = r.Name
	}
	return out
}

func (v *Validator) validateGo(s *ast.Go) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.requireSpace(); err != nil {
		return nil, nil, err
	}
	if err := v.checkPerm(auth.PrecondRead, "GO"); err != nil {
		return nil, nil, err
	}
	vids, input, err := v.resolveFrom(s.From.VIDs, s.From.Ref)
	if err != nil {
		return nil, nil, err
	}
	var root plan.PlanNode
	if input == nil {
		root = plan.NewStart(vids)
	} else {
		root = input
	}

	edgeTypes := edgeNames(s.Over.Edges)
	for _, name := range edgeTypes {
		if _, err := v.ctx.Catalog.EdgeSchema(v.ctx.Space, name); err != nil {
			return nil, nil, err
		}
	}

	var src expression.Expression
	if len(vids) > 0 {
		src = vids[0]
	}

	var traversal plan.PlanNode
	if s.Steps.Max <= 1 && !s.Steps.Upto {
		traversal = plan.NewGetNeighbors(src, edgeTypes, int(s.Over.Direction), root)
	} else {
		min := s.Steps.Min
		max := s.Steps.Max
		if s.Steps.Upto {
			min = 1
		}
		traversal = plan.NewTraverse(edgeTypes, int(s.Over.Direction), min, max, root)
	}

	if s.Where != nil {
		if err := checkScope(scopeGoYield, s.Where.Filter); err != nil {
			return nil, nil, err
		}
		traversal = plan.NewFilter(s.Where.Filter, traversal)
	}

	tc := newTypeContext(v.ctx)
	defaults := []plan.ProjectColumn{{Expr: expression.NewDestProperty("", expression.AttrID), Alias: "id"}}
	if s.Yield != nil {
		for _, yc := range s.Yield.Columns {
			if err := checkScope(scopeGoYield, yc.Expr); err != nil {
				return nil, nil, err
			}
		}
	}
	cols, schema, distinct, err := buildProjection(tc, s.Yield, defaults)
	if err != nil {
		return nil, nil, err
	}

	// The projection fuses directly atop the GetNeighbors/Traverse scan,
	// with no intervening relational stage to later merge away.
	return plan.NewProject(cols, distinct, traversal), schema, nil
}

func (v *Validator) validateLookup(s *ast.Lookup) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.requireSpace(); err != nil {
		return nil, nil, err
	}
	if err := v.checkPerm(auth.PrecondRead, "LOOKUP"); err != nil {
		return nil, nil, err
	}
	if s.IsEdge {
		if _, err := v.ctx.Catalog.EdgeSchema(v.ctx.Space, s.Owner); err != nil {
			return nil, nil, err
		}
	} else {
		if _, err := v.ctx.Catalog.TagSchema(v.ctx.Space, s.Owner); err != nil {
			return nil, nil, err
		}
	}
	var filter expression.Expression
	if s.Where != nil {
		if err := checkScope(scopeLookup, s.Where.Filter); err != nil {
			return nil, nil, err
		}
		filter = s.Where.Filter
	}
	scan := plan.NewIndexScan(s.Owner, s.IsEdge, filter)

	tc := newTypeContext(v.ctx)
	var defaults []plan.ProjectColumn
	if s.IsEdge {
		defaults = []plan.ProjectColumn{
			{Expr: expression.NewEdgeProperty(s.Owner, expression.AttrSrc), Alias: "SrcVID"},
			{Expr: expression.NewEdgeProperty(s.Owner, expression.AttrDst), Alias: "DstVID"},
		}
	} else {
		defaults = []plan.ProjectColumn{{Expr: expression.NewSourceProperty(s.Owner, expression.AttrID), Alias: "VertexID"}}
	}
	if s.Yield != nil {
		for _, yc := range s.Yield.Columns {
			if err := checkScope(scopeLookup, yc.Expr); err != nil {
				return nil, nil, err
			}
		}
	}
	cols, schema, distinct, err := buildProjection(tc, s.Yield, defaults)
	if err != nil {
		return nil, nil, err
	}
	return plan.NewProject(cols, distinct, scan), schema, nil
}

func (v *Validator) validateFetchVertices(s *ast.FetchVertices) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.requireSpace(); err != nil {
		return nil, nil, err
	}
	if err := v.checkPerm(auth.PrecondRead, "FETCH PROP ON"); err != nil {
		return nil, nil, err
	}
	for _, tag := range s.Tags {
		if _, err := v.ctx.Catalog.TagSchema(v.ctx.Space, tag); err != nil {
			return nil, nil, err
		}
	}
	vids, input, err := v.resolveFrom(s.VIDs, s.Ref)
	if err != nil {
		return nil, nil, err
	}
	var src expression.Expression
	if len(vids) > 0 {
		src = vids[0]
	}
	scan := plan.NewGetVertices(src, s.Tags, input)

	tc := newTypeContext(v.ctx)
	defaults := []plan.ProjectColumn{{Expr: expression.NewSourceProperty("", expression.AttrID), Alias: "VertexID"}}
	cols, schema, distinct, err := buildProjection(tc, s.Yield, defaults)
	if err != nil {
		return nil, nil, err
	}
	return plan.NewProject(cols, distinct, scan), schema, nil
}

func (v *Validator) validateFetchEdges(s *ast.FetchEdges) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.requireSpace(); err != nil {
		return nil, nil, err
	}
	if err := v.checkPerm(auth.PrecondRead, "FETCH PROP ON"); err != nil {
		return nil, nil, err
	}
	if _, err := v.ctx.Catalog.EdgeSchema(v.ctx.Space, s.EdgeType); err != nil {
		return nil, nil, err
	}
	scan := plan.NewGetEdges(s.EdgeType, v.ctx.InputPlan)

	tc := newTypeContext(v.ctx)
	defaults := []plan.ProjectColumn{
		{Expr: expression.NewEdgeProperty(s.EdgeType, expression.AttrSrc), Alias: "SrcVID"},
		{Expr: expression.NewEdgeProperty(s.EdgeType, expression.AttrDst), Alias: "DstVID"},
	}
	cols, schema, distinct, err := buildProjection(tc, s.Yield, defaults)
	if err != nil {
		return nil, nil, err
	}
	return plan.NewProject(cols, distinct, scan), schema, nil
}

func (v *Validator) validateFindPath(s *ast.FindPath) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.requireSpace(); err != nil {
		return nil, nil, err
	}
	if err := v.checkPerm(auth.PrecondRead, "FIND PATH"); err != nil {
		return nil, nil, err
	}
	fromVids, fromInput, err := v.resolveFrom(s.From.VIDs, s.From.Ref)
	if err != nil {
		return nil, nil, err
	}
	if _, _, err := v.resolveFrom(s.To.VIDs, s.To.Ref); err != nil {
		return nil, nil, err
	}
	edgeTypes := edgeNames(s.Over.Edges)
	for _, name := range edgeTypes {
		if _, err := v.ctx.Catalog.EdgeSchema(v.ctx.Space, name); err != nil {
			return nil, nil, err
		}
	}
	root := fromInput
	if root == nil {
		root = plan.NewStart(fromVids)
	}
	min := s.Steps.Min
	max := s.Steps.Max
	if s.Steps.Upto {
		min = 1
	}
	// Path search expands iteratively: a Loop around the step expansion,
	// terminated by the step counter reaching the bound, with every round's
	// paths gathered by DataCollect before the final projection.
	body := plan.NewTraverse(edgeTypes, int(s.Over.Direction), min, max, root)
	cond := expression.NewRelational(expression.RelLT,
		expression.NewVariableProperty("__fp_steps", ""),
		expression.NewConstant(value.Int(int64(max))))
	loop := plan.NewLoop(cond, body)
	collect := plan.NewDataCollect([]string{"_path"}, loop)
	schema := value.ColumnSchema{{Name: "path", Type: value.TypePath}}
	proj := []plan.ProjectColumn{{Expr: expression.NewInputProperty("_path"), Alias: "path"}}
	return plan.NewProject(proj, false, collect), schema, nil
}

func (v *Validator) validateGetSubgraph(s *ast.GetSubgraph) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.requireSpace(); err != nil {
		return nil, nil, err
	}
	if err := v.checkPerm(auth.PrecondRead, "GET SUBGRAPH"); err != nil {
		return nil, nil, err
	}
	vids, input, err := v.resolveFrom(s.From.VIDs, s.From.Ref)
	if err != nil {
		return nil, nil, err
	}
	root := input
	if root == nil {
		root = plan.NewStart(vids)
	}
	edgeTypes := edgeNames(s.Over.Edges)
	for _, name := range edgeTypes {
		if _, err := v.ctx.Catalog.EdgeSchema(v.ctx.Space, name); err != nil {
			return nil, nil, err
		}
	}
	traverse := plan.NewTraverse(edgeTypes, int(s.Over.Direction), 0, s.Steps, root)
	schema := value.ColumnSchema{{Name: "_vid", Type: value.TypeVertex}, {Name: "_edge", Type: value.TypeEdge}}
	return traverse, schema, nil
}

func (v *Validator) validateYield(s *ast.Yield) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.checkPerm(auth.PrecondRead, "YIELD"); err != nil {
		return nil, nil, err
	}
	for _, yc := range s.Clause.Columns {
		if err := checkScope(scopeYieldOnly, yc.Expr); err != nil {
			return nil, nil, err
		}
	}
	if err := v.checkReferencedColumns(s); err != nil {
		return nil, nil, err
	}
	tc := newTypeContext(v.ctx)
	root := v.ctx.InputPlan
	if root == nil {
		root = plan.NewStart(nil)
	}
	if s.Where != nil {
		if err := checkScope(scopeYieldOnly, s.Where.Filter); err != nil {
			return nil, nil, err
		}
		root = plan.NewFilter(s.Where.Filter, root)
	}
	cols, schema, distinct, err := buildProjection(tc, &s.Clause, nil)
	if err != nil {
		return nil, nil, err
	}
	var node plan.PlanNode = plan.NewProject(cols, false, root)
	if distinct {
		node = plan.NewDedup(node)
	}
	return node, schema, nil
}

func (v *Validator) validateSub(s ast.Sentence) (plan.PlanNode, value.ColumnSchema, error) {
	return New(v.ctx).Validate(s)
}

func (v *Validator) validateSet(s *ast.Set) (plan.PlanNode, value.ColumnSchema, error) {
	leftPlan, leftSchema, err := v.validateSub(s.Left)
	if err != nil {
		return nil, nil, err
	}
	rightPlan, rightSchema, err := v.validateSub(s.Right)
	if err != nil {
		return nil, nil, err
	}
	if !leftSchema.Equal(rightSchema) {
		return nil, nil, ErrColumnNotFound.New(strings.Join(rightSchema.Names(), ","))
	}
	switch s.Op {
	case ast.SetUnion:
		return plan.NewUnion(false, leftPlan, rightPlan), leftSchema, nil
	case ast.SetUnionAll:
		return plan.NewUnion(true, leftPlan, rightPlan), leftSchema, nil
	case ast.SetIntersect:
		return plan.NewIntersect(leftPlan, rightPlan), leftSchema, nil
	default:
		return plan.NewMinus(leftPlan, rightPlan), leftSchema, nil
	}
}

func (v *Validator) validatePipe(s *ast.Pipe) (plan.PlanNode, value.ColumnSchema, error) {
	leftPlan, leftSchema, err := v.validateSub(s.Left)
	if err != nil {
		return nil, nil, err
	}
	rightCtx := v.ctx.WithInput(leftPlan, leftSchema)
	rightPlan, rightSchema, err := New(rightCtx).Validate(s.Right)
	if err != nil {
		return nil, nil, err
	}
	return rightPlan, rightSchema, nil
}

func (v *Validator) validateAssignment(s *ast.Assignment) (plan.PlanNode, value.ColumnSchema, error) {
	queryPlan, schema, err := v.validateSub(s.Query)
	if err != nil {
		return nil, nil, err
	}
	v.ctx.Symbols.Define(s.Variable, schema)
	return plan.NewAssign(s.Variable, queryPlan), schema, nil
}

// pipeInput returns the current pipe input plan, or a bare Start for a
// stage validated without an upstream (legal for UNWIND over a literal
// list, an error surfaced by checkColumns for column-referencing stages).
func (v *Validator) pipeInput() plan.PlanNode {
	if v.ctx.InputPlan != nil {
		return v.ctx.InputPlan
	}
	return plan.NewStart(nil)
}

func (v *Validator) validateOrderBy(s *ast.OrderBy) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.checkPerm(auth.PrecondRead, "ORDER BY"); err != nil {
		return nil, nil, err
	}
	exprs := make([]expression.Expression, 0, len(s.Clause.Factors))
	factors := make([]plan.SortFactor, 0, len(s.Clause.Factors))
	for _, f := range s.Clause.Factors {
		if err := checkScope(scopeYieldOnly, f.Expression()); err != nil {
			return nil, nil, err
		}
		exprs = append(exprs, f.Expression())
		factors = append(factors, plan.SortFactor{Expr: f.Expression(), Descending: f.Descending()})
	}
	refs := collectColumnRefs(exprs...)
	if err := checkColumns(v.ctx.InputSchema, refs.input); err != nil {
		return nil, nil, err
	}
	return plan.NewSort(factors, v.pipeInput()), v.ctx.InputSchema, nil
}

func (v *Validator) validateLimit(s *ast.Limit) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.checkPerm(auth.PrecondRead, "LIMIT"); err != nil {
		return nil, nil, err
	}
	// ORDER BY | LIMIT fuses into TopN: the sort's bounded-heap form needs
	// the limit to exist, so the fusion must happen here rather than in a
	// later rewrite.
	if sort, ok := v.ctx.InputPlan.(*plan.Sort); ok && len(sort.Children()) == 1 {
		return plan.NewTopN(sort.Factors, s.Clause.Offset, s.Clause.Count, sort.Children()[0]), v.ctx.InputSchema, nil
	}
	return plan.NewLimit(s.Clause.Offset, s.Clause.Count, v.pipeInput()), v.ctx.InputSchema, nil
}

func (v *Validator) validateGroupBy(s *ast.GroupBy) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.checkPerm(auth.PrecondRead, "GROUP BY"); err != nil {
		return nil, nil, err
	}
	keyText := make(map[string]bool, len(s.Group.Keys))
	for _, k := range s.Group.Keys {
		if err := checkScope(scopeYieldOnly, k); err != nil {
			return nil, nil, err
		}
		keyText[k.String()] = true
	}
	tc := newTypeContext(v.ctx)
	items := make([]plan.AggItem, 0, len(s.Yield.Columns))
	schema := make(value.ColumnSchema, 0, len(s.Yield.Columns))
	var checked []expression.Expression
	for _, yc := range s.Yield.Columns {
		alias := yc.Alias
		if alias == "" {
			alias = yc.Expr.String()
		}
		t, err := yc.Expr.TypeInfer(tc)
		if err != nil {
			return nil, nil, err
		}
		if agg, ok := yc.Expr.(*expression.AggregateFunction); ok {
			items = append(items, plan.AggItem{Func: agg.Name(), Arg: agg.Arg, Alias: alias})
			if agg.Arg != nil {
				checked = append(checked, agg.Arg)
			}
		} else {
			// A plain yield column must be one of the group keys; anything
			// else has no single per-group value.
			if !keyText[yc.Expr.String()] {
				return nil, nil, ErrUnsupportedScope.New(yc.Expr.String())
			}
			items = append(items, plan.AggItem{Func: "", Arg: yc.Expr, Alias: alias})
			checked = append(checked, yc.Expr)
		}
		schema = append(schema, value.ColumnDef{Name: alias, Type: t})
	}
	checked = append(checked, s.Group.Keys...)
	refs := collectColumnRefs(checked...)
	if err := checkColumns(v.ctx.InputSchema, refs.input); err != nil {
		return nil, nil, err
	}
	return plan.NewAggregate(s.Group.Keys, items, v.pipeInput()), schema, nil
}

func (v *Validator) validateUnwind(s *ast.Unwind) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.checkPerm(auth.PrecondRead, "UNWIND"); err != nil {
		return nil, nil, err
	}
	if err := checkScope(scopeYieldOnly, s.Expr); err != nil {
		return nil, nil, err
	}
	refs := collectColumnRefs(s.Expr)
	if err := checkColumns(v.ctx.InputSchema, refs.input); err != nil {
		return nil, nil, err
	}
	column := s.Expr.String()
	if in, ok := s.Expr.(*expression.InputProperty); ok {
		column = in.Col
	}
	node := plan.NewUnwind(column, s.Alias, v.pipeInput())
	schema := append(append(value.ColumnSchema{}, v.ctx.InputSchema...), value.ColumnDef{Name: s.Alias, Type: value.TypeAny})
	return node, schema, nil
}

// matchAliasSchema binds every named node, edge, and path variable of the
// patterns to its value type, the scope RETURN and WHERE resolve against.
func matchAliasSchema(patterns []ast.PathPattern) value.ColumnSchema {
	var out value.ColumnSchema
	for _, p := range patterns {
		if p.Alias != "" {
			out = append(out, value.ColumnDef{Name: p.Alias, Type: value.TypePath})
		}
		for _, n := range p.Nodes {
			if n.Alias != "" {
				out = append(out, value.ColumnDef{Name: n.Alias, Type: value.TypeVertex})
			}
		}
		for _, e := range p.Edges {
			if e.Alias != "" {
				out = append(out, value.ColumnDef{Name: e.Alias, Type: value.TypeEdge})
			}
		}
	}
	return out
}

// lowerPattern compiles one MATCH path pattern into an IndexScan seeded at
// the first node's tag, a Traverse per edge element, and a trailing
// AppendVertices for the terminal node's properties.
func (v *Validator) lowerPattern(p ast.PathPattern) (plan.PlanNode, error) {
	if len(p.Nodes) == 0 || len(p.Nodes) != len(p.Edges)+1 {
		return nil, ErrNotSupported.New("malformed match pattern")
	}
	first := p.Nodes[0]
	if len(first.Tags) == 0 {
		return nil, ErrNotSupported.New("match pattern must start at a tagged node")
	}
	for _, n := range p.Nodes {
		for _, tag := range n.Tags {
			if _, err := v.ctx.Catalog.TagSchema(v.ctx.Space, tag); err != nil {
				return nil, err
			}
		}
	}
	var cur plan.PlanNode = plan.NewIndexScan(first.Tags[0], false, nil)
	for _, e := range p.Edges {
		for _, et := range e.Types {
			if _, err := v.ctx.Catalog.EdgeSchema(v.ctx.Space, et); err != nil {
				return nil, err
			}
		}
		cur = plan.NewTraverse(e.Types, int(e.Direction), e.MinHops, e.MaxHops, cur)
	}
	last := p.Nodes[len(p.Nodes)-1]
	return plan.NewAppendVertices(last.Tags, cur), nil
}

// sharedAlias finds an alias bound by both schemas, MATCH's implicit join
// key between two comma-separated patterns.
func sharedAlias(a, b value.ColumnSchema) string {
	for _, col := range b {
		if a.IndexOf(col.Name) >= 0 {
			return col.Name
		}
	}
	return ""
}

func (v *Validator) validateMatch(s *ast.Match) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.requireSpace(); err != nil {
		return nil, nil, err
	}
	if err := v.checkPerm(auth.PrecondRead, "MATCH"); err != nil {
		return nil, nil, err
	}
	if len(s.Patterns) == 0 {
		return nil, nil, ErrNotSupported.New("empty match pattern")
	}
	cur, err := v.lowerPattern(s.Patterns[0])
	if err != nil {
		return nil, nil, err
	}
	bound := matchAliasSchema(s.Patterns[:1])
	for _, p := range s.Patterns[1:] {
		next, err := v.lowerPattern(p)
		if err != nil {
			return nil, nil, err
		}
		nextBound := matchAliasSchema([]ast.PathPattern{p})
		var on expression.Expression
		if key := sharedAlias(bound, nextBound); key != "" {
			on = expression.NewRelational(expression.RelEQ,
				expression.NewInputProperty(key), expression.NewInputProperty(key))
		}
		if p.Optional {
			cur = plan.NewLeftJoin(on, cur, next)
		} else {
			cur = plan.NewInnerJoin(on, cur, next)
		}
		bound = append(bound, nextBound...)
	}

	// RETURN and WHERE resolve alias references against the pattern's own
	// bindings, not the pipe input.
	mctx := v.ctx.WithInput(nil, matchAliasSchema(s.Patterns))
	aliasSchema := mctx.InputSchema
	var exprs []expression.Expression
	for _, yc := range s.Return.Columns {
		exprs = append(exprs, yc.Expr)
	}
	if s.Where != nil {
		exprs = append(exprs, s.Where.Filter)
		if err := checkScope(scopeYieldOnly, s.Where.Filter); err != nil {
			return nil, nil, err
		}
	}
	refs := collectColumnRefs(exprs...)
	if err := checkColumns(aliasSchema, refs.input); err != nil {
		return nil, nil, err
	}
	if s.Where != nil {
		cur = plan.NewFilter(s.Where.Filter, cur)
	}
	cols, schema, distinct, err := buildProjection(newTypeContext(mctx), &s.Return, nil)
	if err != nil {
		return nil, nil, err
	}
	return plan.NewProject(cols, distinct, cur), schema, nil
}

func (v *Validator) validateReturn(s *ast.Return) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.checkPerm(auth.PrecondRead, "RETURN"); err != nil {
		return nil, nil, err
	}
	schema, ok := v.ctx.Symbols.Lookup(s.Variable)
	if !ok {
		return nil, nil, ErrColumnNotFound.New(s.Variable)
	}
	if _, ok := v.ctx.Symbols.Lookup(s.Condition); !ok {
		return nil, nil, ErrColumnNotFound.New(s.Condition)
	}
	cond := expression.NewUnary(expression.UnaryIsNotNull,
		expression.NewVariableProperty(s.Condition, ""))
	ifBranch := plan.NewDataCollect([]string{s.Variable}, plan.NewStart(nil))
	elseBranch := plan.NewStart(nil)
	return plan.NewSelect(cond, ifBranch, elseBranch), schema, nil
}
