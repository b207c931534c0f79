package expression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphlang/ngqlcore/value"
)

// fakeCtx is a minimal EvalContext for expression-level unit tests; the
// validator/querycontext packages provide the real implementation wired to
// a live function registry and schema.
type fakeCtx struct {
	input map[string]value.Value
	fns   FunctionRegistry
}

func (f *fakeCtx) GetInput(col string) value.Value    { return f.input[col] }
func (f *fakeCtx) GetVariable(string, string) value.Value { return value.Null() }
func (f *fakeCtx) GetSrc(string, string) value.Value   { return value.Null() }
func (f *fakeCtx) GetDst(string, string) value.Value   { return value.Null() }
func (f *fakeCtx) GetEdge(string, string) value.Value  { return value.Null() }
func (f *fakeCtx) GetColumn(int) value.Value           { return value.Null() }
func (f *fakeCtx) Functions() FunctionRegistry          { return f.fns }
func (f *fakeCtx) UUIDSeed() string                     { return "fixed-seed" }

func TestConstantAndArithmetic(t *testing.T) {
	e := NewArithmetic(ArithAdd, NewConstant(value.Int(2)), NewConstant(value.Int(3)))
	assert.Equal(t, value.Int(5), e.Eval(&fakeCtx{}))
	assert.Equal(t, "(2 + 3)", e.String())
}

func TestRelationalIn(t *testing.T) {
	list := NewListConstructor(NewConstant(value.Int(1)), NewConstant(value.Null()), NewConstant(value.Int(3)))
	r := NewRelational(RelIn, NewConstant(value.Int(2)), list)
	assert.True(t, r.Eval(&fakeCtx{}).IsNull())

	r2 := NewRelational(RelIn, NewConstant(value.Int(3)), list)
	assert.Equal(t, value.Bool(true), r2.Eval(&fakeCtx{}))
}

func TestInputProperty(t *testing.T) {
	p := NewInputProperty("age")
	ctx := &fakeCtx{input: map[string]value.Value{"age": value.Int(31)}}
	assert.Equal(t, value.Int(31), p.Eval(ctx))
}

func TestCaseExpressionFirstMatchWins(t *testing.T) {
	ce := &CaseExpression{
		Arms: []WhenThen{
			{When: NewConstant(value.Bool(false)), Then: NewConstant(value.Str("no"))},
			{When: NewConstant(value.Bool(true)), Then: NewConstant(value.Str("yes1"))},
			{When: NewConstant(value.Bool(true)), Then: NewConstant(value.Str("yes2"))},
		},
		Else: NewConstant(value.Str("else")),
	}
	assert.Equal(t, value.Str("yes1"), ce.Eval(&fakeCtx{}))
}

func TestPredicateAnyAll(t *testing.T) {
	list := NewListConstructor(NewConstant(value.Int(1)), NewConstant(value.Int(2)), NewConstant(value.Int(3)))
	pred := &PredicateExpression{
		Op:   PredAll,
		Var:  "x",
		List: list,
		Pred: NewRelational(RelGT, NewVariableProperty("x", ""), NewConstant(value.Int(0))),
	}
	assert.Equal(t, value.Bool(true), pred.Eval(&fakeCtx{}))

	pred.Op = PredNone
	pred.Pred = NewRelational(RelGT, NewVariableProperty("x", ""), NewConstant(value.Int(10)))
	assert.Equal(t, value.Bool(true), pred.Eval(&fakeCtx{}))
}

func TestReduceLeftFold(t *testing.T) {
	list := NewListConstructor(NewConstant(value.Int(1)), NewConstant(value.Int(2)), NewConstant(value.Int(3)))
	r := &ReduceExpression{
		AccName: "acc",
		Init:    NewConstant(value.Int(0)),
		Var:     "x",
		List:    list,
		Expr:    NewArithmetic(ArithAdd, NewVariableProperty("acc", ""), NewVariableProperty("x", "")),
	}
	assert.Equal(t, value.Int(6), r.Eval(&fakeCtx{}))
}

func TestListComprehensionFilterAndMap(t *testing.T) {
	list := NewListConstructor(NewConstant(value.Int(1)), NewConstant(value.Int(2)), NewConstant(value.Int(3)), NewConstant(value.Int(4)))
	lc := &ListComprehension{
		Var:     "x",
		List:    list,
		Where:   NewRelational(RelGT, NewVariableProperty("x", ""), NewConstant(value.Int(1))),
		MapExpr: NewArithmetic(ArithMul, NewVariableProperty("x", ""), NewConstant(value.Int(10))),
	}
	out := lc.Eval(&fakeCtx{})
	l, ok := out.AsList()
	require.True(t, ok)
	assert.Equal(t, []value.Value{value.Int(20), value.Int(30), value.Int(40)}, l.Elems)
}

func TestSubscriptListNegativeIndex(t *testing.T) {
	list := NewListConstructor(NewConstant(value.Int(1)), NewConstant(value.Int(2)), NewConstant(value.Int(3)))
	s := NewSubscript(list, NewConstant(value.Int(-1)))
	assert.Equal(t, value.Int(3), s.Eval(&fakeCtx{}))

	s2 := NewSubscript(list, NewConstant(value.Int(99)))
	assert.True(t, s2.Eval(&fakeCtx{}).IsNull())
}

func TestAttributeOnVertex(t *testing.T) {
	vx := &value.Vertex{ID: value.Int(1), Tags: []value.Tag{{Name: "person", Props: map[string]value.Value{"name": value.Str("bob")}}}}
	attr := NewAttribute(&VertexLiteral{Value: vx}, "name")
	assert.Equal(t, value.Str("bob"), attr.Eval(&fakeCtx{}))
}

func TestPathBuild(t *testing.T) {
	src := &value.Vertex{ID: value.Int(1)}
	dst := &value.Vertex{ID: value.Int(2)}
	pb := &PathBuild{
		Src:   &VertexLiteral{Value: src},
		Steps: []SubPath{{Dst: &VertexLiteral{Value: dst}, Type: 1, Name: "follow", Rank: 0}},
	}
	v := pb.Eval(&fakeCtx{})
	p, ok := v.AsPath()
	require.True(t, ok)
	assert.Equal(t, 1, p.Length())
}

func TestRelationalRegex(t *testing.T) {
	r := NewRelational(RelRegex, NewConstant(value.Str("hello123")), NewConstant(value.Str("^hello[0-9]+$")))
	assert.Equal(t, value.Bool(true), r.Eval(&fakeCtx{}))

	r2 := NewRelational(RelRegex, NewConstant(value.Str("hello")), NewConstant(value.Str("^[")))
	got := r2.Eval(&fakeCtx{})
	assert.True(t, got.IsNull())
	assert.Equal(t, value.NullBadData, got.NullType())
}
