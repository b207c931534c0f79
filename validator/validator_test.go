package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphlang/ngqlcore/ast"
	"github.com/graphlang/ngqlcore/auth"
	"github.com/graphlang/ngqlcore/catalog"
	"github.com/graphlang/ngqlcore/expression"
	"github.com/graphlang/ngqlcore/expression/function"
	"github.com/graphlang/ngqlcore/plan"
	"github.com/graphlang/ngqlcore/querycontext"
	"github.com/graphlang/ngqlcore/value"
)

func newTestContext(space string, role auth.Role) *querycontext.Context {
	cat := catalog.NewMemCatalog()
	if space != "" {
		if _, err := cat.CreateSpace(space); err != nil {
			panic(err)
		}
	}
	return querycontext.New(space, function.NewRegistry(), cat, auth.Session{Role: role}, nil)
}

func TestValidateCreateAndDropSpace(t *testing.T) {
	ctx := newTestContext("", auth.RoleAdmin)
	v := New(ctx)

	n, _, err := v.Validate(&ast.CreateSpace{Name: "basketball", PartitionNum: 10, ReplicaFactor: 1})
	require.NoError(t, err)
	require.IsType(t, &plan.CreateSpace{}, n)

	_, err = ctx.Catalog.SpaceByName("basketball")
	require.NoError(t, err)

	v2 := New(ctx)
	n2, _, err := v2.Validate(&ast.DropSpace{Name: "basketball"})
	require.NoError(t, err)
	require.IsType(t, &plan.DropSpace{}, n2)
}

func TestCreateSpaceRequiresSchemaWrite(t *testing.T) {
	ctx := newTestContext("", auth.RoleUser)
	v := New(ctx)
	_, _, err := v.Validate(&ast.CreateSpace{Name: "basketball"})
	assert.Error(t, err)
}

func TestCreateTagThenInsertVertex(t *testing.T) {
	ctx := newTestContext("basketball", auth.RoleAdmin)

	v := New(ctx)
	_, _, err := v.Validate(&ast.CreateTag{
		Name: "player",
		Props: []ast.PropertySpec{
			{Name: "name", Type: "string"},
			{Name: "age", Type: "int"},
		},
	})
	require.NoError(t, err)

	v2 := New(ctx)
	n, _, err := v2.Validate(&ast.InsertVertices{
		TagProps: map[string][]string{"player": {"name", "age"}},
		Rows: []ast.VertexRow{
			{VID: expression.NewConstant(value.Str("player100")), Tags: []ast.VertexTagValues{
				{Tag: "player", Values: []expression.Expression{
					expression.NewConstant(value.Str("Tim Duncan")),
					expression.NewConstant(value.Int(42)),
				}},
			}},
		},
	})
	require.NoError(t, err)
	require.IsType(t, &plan.InsertVertices{}, n)
}

func TestInsertVertexRejectsUnknownProperty(t *testing.T) {
	ctx := newTestContext("basketball", auth.RoleAdmin)
	v := New(ctx)
	_, _, err := v.Validate(&ast.CreateTag{Name: "player", Props: []ast.PropertySpec{{Name: "name", Type: "string"}}})
	require.NoError(t, err)

	v2 := New(ctx)
	_, _, err = v2.Validate(&ast.InsertVertices{
		TagProps: map[string][]string{"player": {"nope"}},
		Rows: []ast.VertexRow{
			{VID: expression.NewConstant(value.Str("v1")), Tags: []ast.VertexTagValues{
				{Tag: "player", Values: []expression.Expression{expression.NewConstant(value.Str("x"))}},
			}},
		},
	})
	assert.Error(t, err)
}

func TestValidateGoProducesTraversalPlan(t *testing.T) {
	ctx := newTestContext("basketball", auth.RoleAdmin)
	v := New(ctx)
	require.NoError(t, requireNoErr(v.Validate(&ast.CreateEdge{Name: "serve", Props: []ast.PropertySpec{{Name: "start_year", Type: "int"}}})))

	v2 := New(ctx)
	n, schema, err := v2.Validate(&ast.Go{
		Steps: ast.StepClause{Min: 1, Max: 1},
		From:  ast.FromClause{VIDs: []expression.Expression{expression.NewConstant(value.Str("player100"))}},
		Over:  ast.OverClause{Edges: []ast.EdgeRef{{Name: "serve"}}, Direction: ast.DirOut},
		Yield: &ast.YieldClause{Columns: []ast.YieldColumn{
			{Expr: expression.NewEdgeProperty("serve", "start_year"), Alias: "start_year"},
		}},
	})
	require.NoError(t, err)
	require.NotNil(t, n)
	require.Len(t, schema, 1)
	assert.Equal(t, "start_year", schema[0].Name)
}

func TestValidateGoRejectsUnknownEdgeType(t *testing.T) {
	ctx := newTestContext("basketball", auth.RoleAdmin)
	v := New(ctx)
	_, _, err := v.Validate(&ast.Go{
		Steps: ast.StepClause{Min: 1, Max: 1},
		From:  ast.FromClause{VIDs: []expression.Expression{expression.NewConstant(value.Str("player100"))}},
		Over:  ast.OverClause{Edges: []ast.EdgeRef{{Name: "nope"}}, Direction: ast.DirOut},
		Yield: &ast.YieldClause{Columns: []ast.YieldColumn{
			{Expr: expression.NewEdgeProperty("nope", "start_year"), Alias: "x"},
		}},
	})
	assert.Error(t, err)
}

func TestPipeRejectsColumnMismatch(t *testing.T) {
	ctx := newTestContext("basketball", auth.RoleAdmin)
	v := New(ctx)
	require.NoError(t, requireNoErr(v.Validate(&ast.CreateTag{Name: "player", Props: []ast.PropertySpec{{Name: "name", Type: "string"}}})))

	left := &ast.Yield{Clause: ast.YieldClause{Columns: []ast.YieldColumn{
		{Expr: expression.NewConstant(value.Int(1)), Alias: "id"},
	}}}
	right := &ast.Yield{Clause: ast.YieldClause{Columns: []ast.YieldColumn{
		{Expr: expression.NewInputProperty("missing"), Alias: "x"},
	}}}

	v2 := New(ctx)
	_, _, err := v2.Validate(&ast.Pipe{Left: left, Right: right})
	assert.Error(t, err)
}

func TestGrantRequiresOutrankingRole(t *testing.T) {
	ctx := newTestContext("", auth.RoleAdmin)
	v := New(ctx)
	_, _, err := v.Validate(&ast.Grant{Name: "bob", Role: auth.RoleAdmin})
	assert.Error(t, err)

	ctx2 := newTestContext("", auth.RoleGod)
	v2 := New(ctx2)
	n, _, err := v2.Validate(&ast.Grant{Name: "bob", Role: auth.RoleAdmin})
	require.NoError(t, err)
	require.IsType(t, &plan.Grant{}, n)
}

func TestExplainWrapsInnerPlan(t *testing.T) {
	ctx := newTestContext("basketball", auth.RoleAdmin)
	v := New(ctx)
	n, _, err := v.Validate(&ast.Explain{
		Inner:  &ast.ShowTags{},
		Format: "row",
	})
	require.NoError(t, err)
	require.IsType(t, &plan.Explain{}, n)
	assert.Equal(t, "row", n.(*plan.Explain).Format)
}

func TestExplainRejectsBadFormat(t *testing.T) {
	ctx := newTestContext("basketball", auth.RoleAdmin)
	v := New(ctx)
	_, _, err := v.Validate(&ast.Explain{Inner: &ast.ShowTags{}, Format: "xml"})
	assert.Error(t, err)
}

func requireNoErr(_ plan.PlanNode, _ value.ColumnSchema, err error) error { return err }

func TestAlterTagAddsAndDropsProperties(t *testing.T) {
	ctx := newTestContext("basketball", auth.RoleAdmin)
	v := New(ctx)
	require.NoError(t, requireNoErr(v.Validate(&ast.CreateTag{Name: "player", Props: []ast.PropertySpec{
		{Name: "name", Type: "string"},
		{Name: "age", Type: "int"},
	}})))

	v2 := New(ctx)
	n, _, err := v2.Validate(&ast.AlterTag{
		Name:     "player",
		AddProps: []ast.PropertySpec{{Name: "height", Type: "double"}},
		DropCols: []string{"age"},
	})
	require.NoError(t, err)
	require.IsType(t, &plan.AlterTag{}, n)

	schema, err := ctx.Catalog.TagSchema("basketball", "player")
	require.NoError(t, err)
	names := make([]string, len(schema.Props))
	for i, p := range schema.Props {
		names[i] = p.Name
	}
	assert.Equal(t, []string{"name", "height"}, names)
}

func TestAlterTagRequiresSchemaWrite(t *testing.T) {
	ctx := newTestContext("basketball", auth.RoleGuest)
	v := New(ctx)
	_, _, err := v.Validate(&ast.AlterTag{Name: "player"})
	assert.Error(t, err)
}

func TestShowCreateTagRequiresExistingTag(t *testing.T) {
	ctx := newTestContext("basketball", auth.RoleAdmin)
	v := New(ctx)
	_, _, err := v.Validate(&ast.ShowCreateTag{Name: "nope"})
	assert.Error(t, err)

	require.NoError(t, requireNoErr(New(ctx).Validate(&ast.CreateTag{Name: "player"})))
	n, schema, err := New(ctx).Validate(&ast.ShowCreateTag{Name: "player"})
	require.NoError(t, err)
	require.IsType(t, &plan.ShowCreateTag{}, n)
	require.Len(t, schema, 2)
}

func TestOrderByKeepsInputSchema(t *testing.T) {
	ctx := newTestContext("basketball", auth.RoleAdmin)
	left := &ast.Yield{Clause: ast.YieldClause{Columns: []ast.YieldColumn{
		{Expr: expression.NewConstant(value.Int(1)), Alias: "id"},
	}}}
	right := &ast.OrderBy{Clause: ast.OrderByClause{Factors: []ast.OrderFactor{
		ast.NewOrderFactor(expression.NewInputProperty("id"), true),
	}}}
	n, schema, err := New(ctx).Validate(&ast.Pipe{Left: left, Right: right})
	require.NoError(t, err)
	require.IsType(t, &plan.Sort{}, n)
	require.Len(t, schema, 1)
	assert.Equal(t, "id", schema[0].Name)
}

func TestOrderByRejectsUnknownColumn(t *testing.T) {
	ctx := newTestContext("basketball", auth.RoleAdmin)
	left := &ast.Yield{Clause: ast.YieldClause{Columns: []ast.YieldColumn{
		{Expr: expression.NewConstant(value.Int(1)), Alias: "id"},
	}}}
	right := &ast.OrderBy{Clause: ast.OrderByClause{Factors: []ast.OrderFactor{
		ast.NewOrderFactor(expression.NewInputProperty("missing"), false),
	}}}
	_, _, err := New(ctx).Validate(&ast.Pipe{Left: left, Right: right})
	assert.Error(t, err)
}

func TestLimitFusesWithUpstreamSortIntoTopN(t *testing.T) {
	ctx := newTestContext("basketball", auth.RoleAdmin)
	yield := &ast.Yield{Clause: ast.YieldClause{Columns: []ast.YieldColumn{
		{Expr: expression.NewConstant(value.Int(1)), Alias: "id"},
	}}}
	sorted := &ast.Pipe{Left: yield, Right: &ast.OrderBy{Clause: ast.OrderByClause{Factors: []ast.OrderFactor{
		ast.NewOrderFactor(expression.NewInputProperty("id"), false),
	}}}}
	n, _, err := New(ctx).Validate(&ast.Pipe{Left: sorted, Right: &ast.Limit{Clause: ast.LimitClause{Count: 10}}})
	require.NoError(t, err)
	require.IsType(t, &plan.TopN{}, n)
	assert.Equal(t, int64(10), n.(*plan.TopN).Count)
}

func TestLimitWithoutSortStaysLimit(t *testing.T) {
	ctx := newTestContext("basketball", auth.RoleAdmin)
	yield := &ast.Yield{Clause: ast.YieldClause{Columns: []ast.YieldColumn{
		{Expr: expression.NewConstant(value.Int(1)), Alias: "id"},
	}}}
	n, _, err := New(ctx).Validate(&ast.Pipe{Left: yield, Right: &ast.Limit{Clause: ast.LimitClause{Offset: 2, Count: 3}}})
	require.NoError(t, err)
	require.IsType(t, &plan.Limit{}, n)
}

func TestGroupByAggregatesAndKeys(t *testing.T) {
	ctx := newTestContext("basketball", auth.RoleAdmin)
	yield := &ast.Yield{Clause: ast.YieldClause{Columns: []ast.YieldColumn{
		{Expr: expression.NewConstant(value.Str("a")), Alias: "team"},
		{Expr: expression.NewConstant(value.Int(1)), Alias: "score"},
	}}}
	group := &ast.GroupBy{
		Group: ast.GroupClause{Keys: []expression.Expression{expression.NewInputProperty("team")}},
		Yield: ast.YieldClause{Columns: []ast.YieldColumn{
			{Expr: expression.NewInputProperty("team"), Alias: "team"},
			{Expr: expression.NewAggregateFunction(expression.AggSum, expression.NewInputProperty("score")), Alias: "total"},
		}},
	}
	n, schema, err := New(ctx).Validate(&ast.Pipe{Left: yield, Right: group})
	require.NoError(t, err)
	require.IsType(t, &plan.Aggregate{}, n)
	require.Len(t, schema, 2)
	assert.Equal(t, "total", schema[1].Name)
}

func TestGroupByRejectsNonKeyPlainColumn(t *testing.T) {
	ctx := newTestContext("basketball", auth.RoleAdmin)
	yield := &ast.Yield{Clause: ast.YieldClause{Columns: []ast.YieldColumn{
		{Expr: expression.NewConstant(value.Str("a")), Alias: "team"},
		{Expr: expression.NewConstant(value.Int(1)), Alias: "score"},
	}}}
	group := &ast.GroupBy{
		Group: ast.GroupClause{Keys: []expression.Expression{expression.NewInputProperty("team")}},
		Yield: ast.YieldClause{Columns: []ast.YieldColumn{
			{Expr: expression.NewInputProperty("score"), Alias: "score"},
		}},
	}
	_, _, err := New(ctx).Validate(&ast.Pipe{Left: yield, Right: group})
	assert.Error(t, err)
}

func TestYieldRejectsAggregateOutsideGroupBy(t *testing.T) {
	ctx := newTestContext("basketball", auth.RoleAdmin)
	_, _, err := New(ctx).Validate(&ast.Yield{Clause: ast.YieldClause{Columns: []ast.YieldColumn{
		{Expr: expression.NewAggregateFunction(expression.AggCount, nil), Alias: "n"},
	}}})
	assert.Error(t, err)
}

func TestUnwindAppendsAliasColumn(t *testing.T) {
	ctx := newTestContext("basketball", auth.RoleAdmin)
	yield := &ast.Yield{Clause: ast.YieldClause{Columns: []ast.YieldColumn{
		{Expr: expression.NewListConstructor(expression.NewConstant(value.Int(1)), expression.NewConstant(value.Int(2))), Alias: "xs"},
	}}}
	n, schema, err := New(ctx).Validate(&ast.Pipe{Left: yield, Right: &ast.Unwind{
		Expr:  expression.NewInputProperty("xs"),
		Alias: "x",
	}})
	require.NoError(t, err)
	require.IsType(t, &plan.Unwind{}, n)
	require.Len(t, schema, 2)
	assert.Equal(t, "x", schema[1].Name)
}

func TestMatchLowersToTraversalWithJoin(t *testing.T) {
	ctx := newTestContext("basketball", auth.RoleAdmin)
	require.NoError(t, requireNoErr(New(ctx).Validate(&ast.CreateTag{Name: "player"})))
	require.NoError(t, requireNoErr(New(ctx).Validate(&ast.CreateTag{Name: "team"})))
	require.NoError(t, requireNoErr(New(ctx).Validate(&ast.CreateEdge{Name: "serve"})))

	m := &ast.Match{
		Patterns: []ast.PathPattern{{
			Nodes: []ast.NodePattern{
				{Alias: "p", Tags: []string{"player"}},
				{Alias: "t", Tags: []string{"team"}},
			},
			Edges: []ast.EdgePattern{{Types: []string{"serve"}, Direction: ast.DirOut, MinHops: 1, MaxHops: 1}},
		}},
		Return: ast.YieldClause{Columns: []ast.YieldColumn{
			{Expr: expression.NewInputProperty("p"), Alias: "p"},
			{Expr: expression.NewInputProperty("t"), Alias: "t"},
		}},
	}
	n, schema, err := New(ctx).Validate(m)
	require.NoError(t, err)
	require.IsType(t, &plan.Project{}, n)
	require.Len(t, schema, 2)
	assert.Equal(t, value.TypeVertex, schema[0].Type)
}

func TestMatchRejectsUnboundAlias(t *testing.T) {
	ctx := newTestContext("basketball", auth.RoleAdmin)
	require.NoError(t, requireNoErr(New(ctx).Validate(&ast.CreateTag{Name: "player"})))
	m := &ast.Match{
		Patterns: []ast.PathPattern{{Nodes: []ast.NodePattern{{Alias: "p", Tags: []string{"player"}}}}},
		Return: ast.YieldClause{Columns: []ast.YieldColumn{
			{Expr: expression.NewInputProperty("q"), Alias: "q"},
		}},
	}
	_, _, err := New(ctx).Validate(m)
	assert.Error(t, err)
}

func TestMatchRequiresTaggedStartNode(t *testing.T) {
	ctx := newTestContext("basketball", auth.RoleAdmin)
	m := &ast.Match{
		Patterns: []ast.PathPattern{{Nodes: []ast.NodePattern{{Alias: "p"}}}},
		Return: ast.YieldClause{Columns: []ast.YieldColumn{
			{Expr: expression.NewInputProperty("p"), Alias: "p"},
		}},
	}
	_, _, err := New(ctx).Validate(m)
	assert.Error(t, err)
}

func TestAddHostsRequiresGod(t *testing.T) {
	ctx := newTestContext("", auth.RoleAdmin)
	_, _, err := New(ctx).Validate(&ast.AddHosts{Hosts: []string{"storage1:9779"}})
	assert.Error(t, err)

	ctx2 := newTestContext("", auth.RoleGod)
	n, _, err := New(ctx2).Validate(&ast.AddHosts{Hosts: []string{"storage1:9779"}})
	require.NoError(t, err)
	require.IsType(t, &plan.BalanceDiskAttach{}, n)
}

func TestDownloadAndIngestRequireSpace(t *testing.T) {
	ctx := newTestContext("", auth.RoleAdmin)
	_, _, err := New(ctx).Validate(&ast.Download{URL: "hdfs://host/path"})
	assert.Error(t, err)

	ctx2 := newTestContext("basketball", auth.RoleAdmin)
	n, _, err := New(ctx2).Validate(&ast.Download{URL: "hdfs://host/path"})
	require.NoError(t, err)
	require.IsType(t, &plan.Download{}, n)

	n2, _, err := New(ctx2).Validate(&ast.Ingest{})
	require.NoError(t, err)
	require.IsType(t, &plan.Ingest{}, n2)
}

func TestRecoverJobRequiresSpace(t *testing.T) {
	ctx := newTestContext("basketball", auth.RoleAdmin)
	n, _, err := New(ctx).Validate(&ast.RecoverJob{JobID: 7})
	require.NoError(t, err)
	require.IsType(t, &plan.RecoverJob{}, n)
}

func TestReturnRequiresBoundVariables(t *testing.T) {
	ctx := newTestContext("basketball", auth.RoleAdmin)
	_, _, err := New(ctx).Validate(&ast.Return{Variable: "a", Condition: "b"})
	assert.Error(t, err)

	require.NoError(t, requireNoErr(New(ctx).Validate(&ast.Assignment{
		Variable: "a",
		Query: &ast.Yield{Clause: ast.YieldClause{Columns: []ast.YieldColumn{
			{Expr: expression.NewConstant(value.Int(1)), Alias: "id"},
		}}},
	})))
	require.NoError(t, requireNoErr(New(ctx).Validate(&ast.Assignment{
		Variable: "b",
		Query: &ast.Yield{Clause: ast.YieldClause{Columns: []ast.YieldColumn{
			{Expr: expression.NewConstant(value.Int(2)), Alias: "id"},
		}}},
	})))

	n, schema, err := New(ctx).Validate(&ast.Return{Variable: "a", Condition: "b"})
	require.NoError(t, err)
	require.IsType(t, &plan.Select{}, n)
	require.Len(t, schema, 1)
	assert.Equal(t, "id", schema[0].Name)
}

func TestFindPathPlanLoopsAndCollects(t *testing.T) {
	ctx := newTestContext("basketball", auth.RoleAdmin)
	require.NoError(t, requireNoErr(New(ctx).Validate(&ast.CreateEdge{Name: "serve"})))
	n, schema, err := New(ctx).Validate(&ast.FindPath{
		From:  ast.FromClause{VIDs: []expression.Expression{expression.NewConstant(value.Str("a"))}},
		To:    ast.ToClause{VIDs: []expression.Expression{expression.NewConstant(value.Str("b"))}},
		Over:  ast.OverClause{Edges: []ast.EdgeRef{{Name: "serve"}}, Direction: ast.DirBoth},
		Steps: ast.StepClause{Upto: true, Max: 5},
	})
	require.NoError(t, err)
	require.Len(t, schema, 1)
	assert.Equal(t, value.TypePath, schema[0].Type)
	proj, ok := n.(*plan.Project)
	require.True(t, ok)
	require.IsType(t, &plan.DataCollect{}, proj.Children()[0])
	require.IsType(t, &plan.Loop{}, proj.Children()[0].Children()[0])
}

func TestUserRoleCanWriteDataButNotSchema(t *testing.T) {
	admin := newTestContext("basketball", auth.RoleAdmin)
	require.NoError(t, requireNoErr(New(admin).Validate(&ast.CreateTag{Name: "t"})))

	user := querycontext.New("basketball", admin.Registry, admin.Catalog, auth.Session{Role: auth.RoleUser}, nil)
	_, _, err := New(user).Validate(&ast.CreateTag{Name: "t2"})
	assert.Error(t, err)

	_, _, err = New(user).Validate(&ast.InsertVertices{
		TagProps: map[string][]string{"t": nil},
		Rows: []ast.VertexRow{
			{VID: expression.NewConstant(value.Int(1)), Tags: []ast.VertexTagValues{{Tag: "t"}}},
		},
	})
	assert.NoError(t, err)
}

func TestYieldDistinctAddsDedup(t *testing.T) {
	ctx := newTestContext("basketball", auth.RoleAdmin)
	n, schema, err := New(ctx).Validate(&ast.Yield{Clause: ast.YieldClause{
		Distinct: true,
		Columns: []ast.YieldColumn{
			{Expr: expression.NewConstant(value.Int(1)), Alias: "id"},
		},
	}})
	require.NoError(t, err)
	require.IsType(t, &plan.Dedup{}, n)
	require.IsType(t, &plan.Project{}, n.Children()[0])
	require.Len(t, schema, 1)
}

func TestDescTagIndex(t *testing.T) {
	ctx := newTestContext("basketball", auth.RoleAdmin)
	require.NoError(t, requireNoErr(New(ctx).Validate(&ast.CreateTag{Name: "player", Props: []ast.PropertySpec{{Name: "name", Type: "string"}}})))
	require.NoError(t, requireNoErr(New(ctx).Validate(&ast.CreateTagIndex{IndexName: "player_name", TagName: "player", Fields: []string{"name"}})))

	n, _, err := New(ctx).Validate(&ast.DescTagIndex{IndexName: "player_name"})
	require.NoError(t, err)
	require.IsType(t, &plan.DescTagIndex{}, n)

	_, _, err = New(ctx).Validate(&ast.DescTagIndex{IndexName: "nope"})
	assert.Error(t, err)
}

func TestOptionalMatchUsesLeftJoin(t *testing.T) {
	ctx := newTestContext("basketball", auth.RoleAdmin)
	require.NoError(t, requireNoErr(New(ctx).Validate(&ast.CreateTag{Name: "player"})))
	require.NoError(t, requireNoErr(New(ctx).Validate(&ast.CreateTag{Name: "team"})))
	require.NoError(t, requireNoErr(New(ctx).Validate(&ast.CreateEdge{Name: "serve"})))

	m := &ast.Match{
		Patterns: []ast.PathPattern{
			{Nodes: []ast.NodePattern{{Alias: "p", Tags: []string{"player"}}}},
			{
				Optional: true,
				Nodes: []ast.NodePattern{
					{Alias: "p", Tags: []string{"player"}},
					{Alias: "t", Tags: []string{"team"}},
				},
				Edges: []ast.EdgePattern{{Types: []string{"serve"}, Direction: ast.DirOut, MinHops: 1, MaxHops: 1}},
			},
		},
		Return: ast.YieldClause{Columns: []ast.YieldColumn{
			{Expr: expression.NewInputProperty("t"), Alias: "t"},
		}},
	}
	n, _, err := New(ctx).Validate(m)
	require.NoError(t, err)
	proj := n.(*plan.Project)
	require.IsType(t, &plan.LeftJoin{}, proj.Children()[0])
}
