package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/graphlang/ngqlcore/auth"
	"github.com/graphlang/ngqlcore/expression"
	"github.com/graphlang/ngqlcore/value"
)

// collectingVisitor records every Sentence it visits, letting tests confirm
// Accept dispatches the concrete type rather than the Sentence interface.
type collectingVisitor struct{ kinds []Kind }

func (v *collectingVisitor) Visit(s Sentence) bool {
	v.kinds = append(v.kinds, s.Kind())
	return true
}

func TestCreateSpaceKindAndString(t *testing.T) {
	s := &CreateSpace{Name: "basketball", PartitionNum: 10, ReplicaFactor: 3}
	assert.Equal(t, KindCreateSpace, s.Kind())
	assert.Contains(t, s.String(), "basketball")

	cv := &collectingVisitor{}
	s.Accept(cv)
	assert.Equal(t, []Kind{KindCreateSpace}, cv.kinds)
}

func TestOrderFactorAccessors(t *testing.T) {
	e := expression.NewConstant(value.Int(1))
	f := NewOrderFactor(e, true)
	assert.True(t, f.Descending())
	assert.Equal(t, value.Int(1), f.Expression().Eval(nil))
}

func TestGoSentenceHoldsClauses(t *testing.T) {
	g := &Go{
		Steps: StepClause{Min: 1, Max: 3},
		From:  FromClause{VIDs: []expression.Expression{expression.NewConstant(value.String("v1"))}},
		Over:  OverClause{Edges: []EdgeRef{{Name: "serve"}}, Direction: DirOut},
		Yield: &YieldClause{Columns: []YieldColumn{{Expr: expression.NewConstant(value.Int(1)), Alias: "one"}}},
	}
	assert.Equal(t, KindGo, g.Kind())
	assert.Equal(t, 1, g.Steps.Min)
	assert.Equal(t, DirOut, g.Over.Direction)
	assert.Len(t, g.Yield.Columns, 1)
}

func TestPipeAndAssignment(t *testing.T) {
	inner := &ShowSpaces{}
	p := &Pipe{Left: inner, Right: &ShowTags{}}
	assert.Equal(t, KindPipe, p.Kind())

	asn := &Assignment{Variable: "a", Query: inner}
	assert.Equal(t, KindAssignment, asn.Kind())
	assert.Equal(t, "a", asn.Variable)
}

func TestGrantRevokeCarryRole(t *testing.T) {
	g := &Grant{Name: "alice", Role: auth.RoleAdmin, Space: "basketball"}
	assert.Equal(t, KindGrant, g.Kind())
	assert.Contains(t, g.String(), "alice")

	r := &Revoke{Name: "alice", Role: auth.RoleAdmin}
	assert.Equal(t, KindRevoke, r.Kind())
}

func TestInsertVerticesShape(t *testing.T) {
	ins := &InsertVertices{
		Rows: []VertexRow{
			{
				VID: expression.NewConstant(value.String("v1")),
				Tags: []VertexTagValues{
					{Tag: "player", Values: []expression.Expression{expression.NewConstant(value.String("Tim"))}},
				},
			},
		},
	}
	assert.Equal(t, KindInsertVertices, ins.Kind())
	assert.Len(t, ins.Rows, 1)
	assert.Equal(t, "player", ins.Rows[0].Tags[0].Tag)
}

func TestExplainWrapsInner(t *testing.T) {
	inner := &ShowHosts{}
	e := &Explain{Inner: inner, Profile: true}
	assert.Equal(t, KindExplain, e.Kind())
	assert.True(t, e.Profile)
	assert.Equal(t, KindShowHosts, e.Inner.Kind())
}

func TestMatchPatternShape(t *testing.T) {
	m := &Match{
		Patterns: []PathPattern{{
			Alias: "path",
			Nodes: []NodePattern{{Alias: "p", Tags: []string{"player"}}, {Alias: "t", Tags: []string{"team"}}},
			Edges: []EdgePattern{{Types: []string{"serve"}, Direction: DirOut, MinHops: 1, MaxHops: 1}},
		}},
		Return: YieldClause{Columns: []YieldColumn{{Expr: expression.NewInputProperty("p"), Alias: "p"}}},
	}
	assert.Equal(t, KindMatch, m.Kind())
	assert.Len(t, m.Patterns[0].Nodes, 2)
	assert.Len(t, m.Patterns[0].Edges, 1)
}

func TestPipedStageKinds(t *testing.T) {
	ob := &OrderBy{Clause: OrderByClause{Factors: []OrderFactor{NewOrderFactor(expression.NewInputProperty("id"), true)}}}
	assert.Equal(t, KindOrderBy, ob.Kind())

	lim := &Limit{Clause: LimitClause{Offset: 1, Count: 5}}
	assert.Equal(t, KindLimit, lim.Kind())

	grp := &GroupBy{Group: GroupClause{Keys: []expression.Expression{expression.NewInputProperty("id")}}}
	assert.Equal(t, KindGroupBy, grp.Kind())

	uw := &Unwind{Expr: expression.NewInputProperty("xs"), Alias: "x"}
	assert.Equal(t, KindUnwind, uw.Kind())
}
