package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqualNullPropagation(t *testing.T) {
	require.True(t, Equal(Null(), Null()).IsNull())
	require.True(t, Equal(Null(), Int(1)).IsNull())
	assert.Equal(t, Bool(true), Equal(Empty(), Empty()))
	assert.Equal(t, Bool(false), Equal(Empty(), Int(0)))
}

func TestEqualNumericCoercion(t *testing.T) {
	assert.Equal(t, Bool(true), Equal(Int(3), Float(3.0)))
	assert.Equal(t, Bool(false), Equal(Int(3), Float(3.5)))
	assert.Equal(t, Bool(false), Equal(Int(1), Str("1")))
}

func TestCompareTotalOrder(t *testing.T) {
	// NULL propagates instead of ordering; DataSet sorts after everything else.
	c, null := Compare(Null(), Int(5))
	assert.True(t, null.IsNull())
	_ = c

	c, null = Compare(Int(1), Str("a"))
	require.True(t, null.IsNull() == false)
	assert.Less(t, c, 0)

	c, null = Compare(DataSetVal(&DataSet{}), Str("z"))
	require.False(t, null.IsNull())
	assert.Greater(t, c, 0)
}

func TestArithmetic(t *testing.T) {
	assert.Equal(t, Int(5), Add(Int(2), Int(3)))
	assert.Equal(t, Float(5.5), Add(Int(2), Float(3.5)))
	assert.Equal(t, Str("ab"), Add(Str("a"), Str("b")))
	assert.Equal(t, NullSentinel(NullBadData), Div(Int(1), Int(0)))
	assert.Equal(t, NullSentinel(NullBadType), Mod(Float(1.5), Int(2)))
}

func TestListConcat(t *testing.T) {
	l := Add(ListVal(NewList(Int(1))), ListVal(NewList(Int(2), Int(3))))
	lst, ok := l.AsList()
	require.True(t, ok)
	assert.Len(t, lst.Elems, 3)
}

func TestThreeValuedLogic(t *testing.T) {
	assert.Equal(t, Bool(false), And(Null(), Bool(false)))
	assert.Equal(t, Bool(true), Or(Null(), Bool(true)))
	assert.True(t, And(Null(), Bool(true)).IsNull())
	assert.True(t, Or(Null(), Bool(false)).IsNull())
}

func TestCoercion(t *testing.T) {
	assert.Equal(t, Bool(false), ToBool(Str("fAlse")))
	assert.True(t, ToBool(Str("false ")).IsNull())
	assert.Equal(t, Int(42), ToInt(Str("42")))
	assert.True(t, ToInt(Str("nope")).IsNull())
	assert.Equal(t, NullSentinel(NullBadType), ToInt(ListVal(NewList())))
}

func TestEdgeCanonicalization(t *testing.T) {
	e := &Edge{Src: Int(1), Dst: Int(2), Type: -5, Name: "follow", Rank: 0}
	c := e.Canonical()
	assert.Equal(t, int32(5), c.Type)
	assert.Equal(t, Int(2), c.Src)
	assert.Equal(t, Int(1), c.Dst)
}

func TestVertexFlattenedPropsLaterTagWins(t *testing.T) {
	vx := &Vertex{
		ID: Int(1),
		Tags: []Tag{
			{Name: "a", Props: map[string]Value{"x": Int(1)}},
			{Name: "b", Props: map[string]Value{"x": Int(2)}},
		},
	}
	props := vx.FlattenedProps()
	assert.Equal(t, Int(2), props["x"])
}

func TestPathNodesAndReverse(t *testing.T) {
	p := &Path{
		Src: Vertex{ID: Int(1)},
		Steps: []PathStep{
			{Dst: Vertex{ID: Int(2)}, Type: 1, Name: "e", Rank: 0},
			{Dst: Vertex{ID: Int(3)}, Type: 1, Name: "e", Rank: 0},
		},
	}
	assert.Len(t, p.Nodes(), 3)
	r := p.Reversed()
	assert.Equal(t, Int(3), r.Src.ID)
	assert.Len(t, r.Steps, 2)
}

func TestDateBounds(t *testing.T) {
	assert.False(t, ValidDate(2021, 2, 29))
	assert.True(t, ValidDate(2020, 2, 29))
	assert.True(t, IsLeapYear(2020))
	assert.False(t, IsLeapYear(2021))
}

func TestHashEqualValuesCollide(t *testing.T) {
	assert.Equal(t, Hash(Int(42)), Hash(Int(42)))
	assert.Equal(t, Hash(Str("Tim Duncan")), Hash(Str("Tim Duncan")))
	assert.NotEqual(t, Hash(Int(42)), Hash(Int(43)))
	assert.NotEqual(t, Hash(Str("a")), Hash(Int(1)))
}

func TestHashCompositeRecurses(t *testing.T) {
	l1 := ListVal(NewList(Int(1), Int(2)))
	l2 := ListVal(NewList(Int(1), Int(2)))
	l3 := ListVal(NewList(Int(2), Int(1)))
	assert.Equal(t, Hash(l1), Hash(l2))
	assert.NotEqual(t, Hash(l1), Hash(l3))
}

func TestSetDeduplicatesByHashThenEqual(t *testing.T) {
	s := NewSet(Int(1), Int(1), Int(2), Str("1"))
	assert.Len(t, s.Elems, 3)
	assert.True(t, s.Contains(Int(2)))
	assert.False(t, s.Contains(Int(3)))
}

func TestCompareGraphKinds(t *testing.T) {
	v1 := VertexVal(&Vertex{ID: Int(1)})
	v2 := VertexVal(&Vertex{ID: Int(2)})
	c, null := Compare(v1, v2)
	assert.False(t, null.IsNull())
	assert.Equal(t, -1, c)

	// A reverse-typed edge canonicalizes before ordering, so the pair
	// compares equal to its forward form.
	fwd := EdgeVal(&Edge{Src: Int(1), Dst: Int(2), Type: 3, Rank: 0})
	rev := EdgeVal(&Edge{Src: Int(2), Dst: Int(1), Type: -3, Rank: 0})
	c, null = Compare(fwd, rev)
	assert.False(t, null.IsNull())
	assert.Equal(t, 0, c)

	short := PathVal(&Path{Src: Vertex{ID: Int(1)}})
	long := PathVal(&Path{Src: Vertex{ID: Int(1)}, Steps: []PathStep{{Dst: Vertex{ID: Int(2)}, Type: 3}}})
	c, null = Compare(short, long)
	assert.False(t, null.IsNull())
	assert.Equal(t, -1, c)
}

func TestCompareDurationComponentwise(t *testing.T) {
	a := DurationVal(Duration{Months: 1})
	b := DurationVal(Duration{Seconds: 100000})
	c, null := Compare(a, b)
	assert.False(t, null.IsNull())
	assert.Equal(t, 1, c)
}
