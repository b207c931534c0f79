package function

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphlang/ngqlcore/value"
)

func call(t *testing.T, r *Registry, name string, args ...value.Value) value.Value {
	t.Helper()
	fn, err := r.Lookup(name, len(args))
	require.NoError(t, err)
	return fn.Call(args)
}

func TestLookupUnknownFunction(t *testing.T) {
	r := NewRegistry()
	_, err := r.Lookup("nope", 1)
	assert.Error(t, err)
}

func TestMathBuiltins(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, value.Int(5), call(t, r, "abs", value.Int(-5)))
	assert.Equal(t, value.Float(2), call(t, r, "sqrt", value.Float(4)))
	assert.Equal(t, value.Int(1), call(t, r, "sign", value.Float(3.2)))
	assert.Equal(t, value.Int(-1), call(t, r, "sign", value.Int(-7)))
}

func TestStringBuiltins(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, value.Str("abc"), call(t, r, "lower", value.Str("ABC")))
	assert.Equal(t, value.Str("cba"), call(t, r, "reverse", value.Str("abc")))
	assert.Equal(t, value.Int(3), call(t, r, "length", value.Str("abc")))
	assert.Equal(t, value.Str("bc"), call(t, r, "substr", value.Str("abc"), value.Int(1)))
	assert.Equal(t, badData(), call(t, r, "substr", value.Str("abc"), value.Int(0), value.Int(-1)))
}

func TestCoercionBuiltins(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, value.Bool(true), call(t, r, "toboolean", value.Str("TRUE")))
	assert.Equal(t, value.Null(), call(t, r, "toboolean", value.Str("nope")))
	assert.Equal(t, value.Int(42), call(t, r, "tointeger", value.Str(" 42 ")))
}

func TestDateTimeBounds(t *testing.T) {
	r := NewRegistry()
	// 2020 is a leap year; 2021 is not.
	leap := call(t, r, "date", value.Str("2020-02-29"))
	assert.Equal(t, value.KindDate, leap.Kind())

	notLeap := call(t, r, "date", value.Str("2021-02-29"))
	assert.True(t, notLeap.IsNull())
	assert.Equal(t, value.NullBadData, notLeap.NullType())
}

func TestRangeZeroStepIsBadData(t *testing.T) {
	r := NewRegistry()
	got := call(t, r, "range", value.Int(1), value.Int(5), value.Int(0))
	assert.True(t, got.IsNull())
	assert.Equal(t, value.NullBadData, got.NullType())
}

func TestRangeAscendingDescending(t *testing.T) {
	r := NewRegistry()
	asc := call(t, r, "range", value.Int(1), value.Int(3))
	l, ok := asc.AsList()
	require.True(t, ok)
	assert.Equal(t, []value.Value{value.Int(1), value.Int(2), value.Int(3)}, l.Elems)

	desc := call(t, r, "range", value.Int(3), value.Int(1), value.Int(-1))
	l2, ok := desc.AsList()
	require.True(t, ok)
	assert.Equal(t, []value.Value{value.Int(3), value.Int(2), value.Int(1)}, l2.Elems)
}

func TestCoalesce(t *testing.T) {
	r := NewRegistry()
	got := call(t, r, "coalesce", value.Null(), value.Null(), value.Int(9))
	assert.Equal(t, value.Int(9), got)

	allNull := call(t, r, "coalesce", value.Null(), value.Null())
	assert.True(t, allNull.IsNull())
}

func TestHeadLastTail(t *testing.T) {
	r := NewRegistry()
	l := value.ListVal(value.NewList(value.Int(1), value.Int(2), value.Int(3)))
	assert.Equal(t, value.Int(1), call(t, r, "head", l))
	assert.Equal(t, value.Int(3), call(t, r, "last", l))
	tail := call(t, r, "tail", l)
	tl, ok := tail.AsList()
	require.True(t, ok)
	assert.Equal(t, []value.Value{value.Int(2), value.Int(3)}, tl.Elems)
}

func TestHashRegressionValues(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, value.Int(1), call(t, r, "hash", value.Bool(true)))
	assert.Equal(t, value.Int(0), call(t, r, "hash", value.Bool(false)))
	assert.Equal(t, value.Int(1234567890), call(t, r, "hash", value.Int(1234567890)))
	assert.Equal(t, value.Int(2275118702903107253), call(t, r, "hash", value.Str("Hello")))
	assert.Equal(t, value.Int(-8359970742410469755), call(t, r, "hash", value.Float(3.14159265)))
}

func TestHashDeterministic(t *testing.T) {
	r := NewRegistry()
	a := call(t, r, "hash", value.Str("Hello"))
	b := call(t, r, "hash", value.Str("Hello"))
	assert.Equal(t, a, b)
	c := call(t, r, "hash", value.Str("World"))
	assert.NotEqual(t, a, c)
}

func TestSchemaAccessors(t *testing.T) {
	r := NewRegistry()
	vx := &value.Vertex{
		ID: value.Str("v1"),
		Tags: []value.Tag{
			{Name: "person", Props: map[string]value.Value{"name": value.Str("bob")}},
		},
	}
	assert.Equal(t, value.Str("v1"), call(t, r, "id", value.VertexVal(vx)))
	tags := call(t, r, "tags", value.VertexVal(vx))
	tl, ok := tags.AsList()
	require.True(t, ok)
	assert.Equal(t, []value.Value{value.Str("person")}, tl.Elems)

	e := &value.Edge{Src: value.Str("a"), Dst: value.Str("b"), Type: 1, Name: "knows", Rank: 0}
	assert.Equal(t, value.Str("knows"), call(t, r, "type", value.EdgeVal(e)))
	assert.Equal(t, value.Str("a"), call(t, r, "src", value.EdgeVal(e)))
	assert.Equal(t, value.Str("b"), call(t, r, "dst", value.EdgeVal(e)))
}

func TestReversePath(t *testing.T) {
	r := NewRegistry()
	src := value.Vertex{ID: value.Str("a")}
	dst := value.Vertex{ID: value.Str("b")}
	p := &value.Path{Src: src, Steps: []value.PathStep{{Dst: dst, Type: 1, Name: "e", Rank: 0}}}
	rev := call(t, r, "reversepath", value.PathVal(p))
	rp, ok := rev.AsPath()
	require.True(t, ok)
	assert.True(t, rp.Src.Equal(&dst))
}

func TestDataSetRowCol(t *testing.T) {
	r := NewRegistry()
	ds := &value.DataSet{ColNames: []string{"a", "b"}, Rows: [][]value.Value{{value.Int(1), value.Int(2)}}}
	got := call(t, r, "datasetrowcol", value.DataSetVal(ds), value.Int(0), value.Int(1))
	assert.Equal(t, value.Int(2), got)

	oob := call(t, r, "datasetrowcol", value.DataSetVal(ds), value.Int(9), value.Int(0))
	assert.True(t, oob.IsNull())
	assert.Equal(t, value.NullBadData, oob.NullType())
}
