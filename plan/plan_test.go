package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/graphlang/ngqlcore/expression"
	"github.com/graphlang/ngqlcore/value"
)

func TestStartColumns(t *testing.T) {
	s := NewStart([]expression.Expression{expression.NewConstant(value.String("v1"))})
	assert.Equal(t, KindStart, s.Kind())
	assert.Equal(t, []string{"VertexID"}, s.ColNames())
	assert.Empty(t, s.Children())
}

func TestGetNeighborsChainsInput(t *testing.T) {
	start := NewStart(nil)
	gn := NewGetNeighbors(expression.NewInputProperty("_vid"), []string{"serve"}, 0, start)
	assert.Equal(t, KindGetNeighbors, gn.Kind())
	assert.Len(t, gn.Children(), 1)
	assert.Equal(t, start, gn.Children()[0])
}

func TestProjectNamesOutputColumns(t *testing.T) {
	p := NewProject([]ProjectColumn{
		{Expr: expression.NewConstant(value.Int(1)), Alias: "one"},
		{Expr: expression.NewConstant(value.Int(2)), Alias: "two"},
	}, true, nil)
	assert.Equal(t, []string{"one", "two"}, p.ColNames())
	assert.True(t, p.Distinct)
}

func TestTopNCarriesSortAndBounds(t *testing.T) {
	start := NewStart(nil)
	top := NewTopN([]SortFactor{{Expr: expression.NewInputProperty("x"), Descending: true}}, 0, 10, start)
	assert.Equal(t, KindTopN, top.Kind())
	assert.Equal(t, int64(10), top.Count)
	assert.Equal(t, start.ColNames(), top.ColNames())
}

func TestUnionAllFlag(t *testing.T) {
	left := NewStart(nil)
	right := NewStart(nil)
	u := NewUnion(true, left, right)
	assert.True(t, u.All)
	assert.Len(t, u.Children(), 2)
}

func TestInnerJoinConcatenatesColumns(t *testing.T) {
	left := NewGetVertices(nil, nil, nil)
	right := NewGetEdges("serve", NewStart(nil))
	j := NewInnerJoin(nil, left, right)
	assert.Equal(t, append(append([]string{}, left.ColNames()...), right.ColNames()...), j.ColNames())
}

func TestCreateSpaceIsLeaf(t *testing.T) {
	cs := NewCreateSpace("basketball", 10, 3, false)
	assert.Equal(t, KindCreateSpace, cs.Kind())
	assert.Empty(t, cs.Children())
}

func TestGrantCarriesRole(t *testing.T) {
	g := NewGrant("alice", 2, "basketball")
	assert.Equal(t, KindGrant, g.Kind())
	assert.Equal(t, "basketball", g.Space)
}
