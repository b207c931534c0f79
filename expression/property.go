package expression

import "github.com/graphlang/ngqlcore/value"

// Pseudo-attribute names recognized on vertex/edge scoped property
// references. Not every pseudo-attribute is valid for every
// scope; the validator enforces the per-kind restriction (e.g. _rank is
// only meaningful for edges).
const (
	AttrID   = "_id"
	AttrType = "_type"
	AttrSrc  = "_src"
	AttrDst  = "_dst"
	AttrRank = "_rank"
)

// InputProperty reads a column of the pipe's upstream input ($-.col or a
// bare unqualified YIELD column)
type InputProperty struct{ Col string }

func NewInputProperty(col string) *InputProperty { return &InputProperty{Col: col} }

func (p *InputProperty) Kind() Kind             { return KindInputProperty }
func (p *InputProperty) Eval(ctx EvalContext) value.Value { return ctx.GetInput(p.Col) }
func (p *InputProperty) Children() []Expression { return nil }
func (p *InputProperty) String() string         { return "$-." + p.Col }
func (p *InputProperty) Accept(v Visitor)       { v.Visit(p) }

func (p *InputProperty) TypeInfer(tc TypeContext) (value.ValueType, error) {
	if t, ok := tc.InputColumnType(p.Col); ok {
		return t, nil
	}
	return value.TypeAny, nil
}

// VariableProperty reads $var.col
type VariableProperty struct {
	Var string
	Col string
}

func NewVariableProperty(v, col string) *VariableProperty { return &VariableProperty{Var: v, Col: col} }

func (p *VariableProperty) Kind() Kind             { return KindVariableProperty }
func (p *VariableProperty) Eval(ctx EvalContext) value.Value { return ctx.GetVariable(p.Var, p.Col) }
func (p *VariableProperty) Children() []Expression { return nil }
func (p *VariableProperty) String() string         { return "$" + p.Var + "." + p.Col }
func (p *VariableProperty) Accept(v Visitor)       { v.Visit(p) }

func (p *VariableProperty) TypeInfer(tc TypeContext) (value.ValueType, error) {
	if t, ok := tc.VariableColumnType(p.Var, p.Col); ok {
		return t, nil
	}
	return value.TypeAny, nil
}

// SourceProperty reads $^.tag.prop (the traversal's source vertex)
type SourceProperty struct {
	Tag  string
	Prop string
}

func NewSourceProperty(tag, prop string) *SourceProperty { return &SourceProperty{Tag: tag, Prop: prop} }

func (p *SourceProperty) Kind() Kind             { return KindSourceProperty }
func (p *SourceProperty) Eval(ctx EvalContext) value.Value { return ctx.GetSrc(p.Tag, p.Prop) }
func (p *SourceProperty) Children() []Expression { return nil }
func (p *SourceProperty) String() string         { return "$^." + p.Tag + "." + p.Prop }
func (p *SourceProperty) Accept(v Visitor)       { v.Visit(p) }

func (p *SourceProperty) TypeInfer(tc TypeContext) (value.ValueType, error) {
	if t, ok := tc.TagPropType(p.Tag, p.Prop); ok {
		return t, nil
	}
	return value.TypeAny, nil
}

// DestProperty reads $$.tag.prop (the traversal's destination vertex)
type DestProperty struct {
	Tag  string
	Prop string
}

func NewDestProperty(tag, prop string) *DestProperty { return &DestProperty{Tag: tag, Prop: prop} }

func (p *DestProperty) Kind() Kind             { return KindDestProperty }
func (p *DestProperty) Eval(ctx EvalContext) value.Value { return ctx.GetDst(p.Tag, p.Prop) }
func (p *DestProperty) Children() []Expression { return nil }
func (p *DestProperty) String() string         { return "$$." + p.Tag + "." + p.Prop }
func (p *DestProperty) Accept(v Visitor)       { v.Visit(p) }

func (p *DestProperty) TypeInfer(tc TypeContext) (value.ValueType, error) {
	if t, ok := tc.TagPropType(p.Tag, p.Prop); ok {
		return t, nil
	}
	return value.TypeAny, nil
}

// EdgeProperty reads alias.prop within an edge scope (e.g. a GO...OVER
// alias, or a MATCH relationship variable)
type EdgeProperty struct {
	Alias string
	Prop  string
}

func NewEdgeProperty(alias, prop string) *EdgeProperty { return &EdgeProperty{Alias: alias, Prop: prop} }

func (p *EdgeProperty) Kind() Kind             { return KindEdgeProperty }
func (p *EdgeProperty) Eval(ctx EvalContext) value.Value { return ctx.GetEdge(p.Alias, p.Prop) }
func (p *EdgeProperty) Children() []Expression { return nil }
func (p *EdgeProperty) String() string         { return p.Alias + "." + p.Prop }
func (p *EdgeProperty) Accept(v Visitor)       { v.Visit(p) }

func (p *EdgeProperty) TypeInfer(tc TypeContext) (value.ValueType, error) {
	if t, ok := tc.EdgePropType(p.Alias, p.Prop); ok {
		return t, nil
	}
	return value.TypeAny, nil
}

// IsPseudoAttr reports whether name is one of the four-per-scope
// pseudo-attributes recognized on a property reference.
func IsPseudoAttr(name string) bool {
	switch name {
	case AttrID, AttrType, AttrSrc, AttrDst, AttrRank:
		return true
	default:
		return false
	}
}
