package expression

import "github.com/graphlang/ngqlcore/value"

// Subscript implements a[b]: List integer-index (negative
// counts from end, out-of-bounds -> NULL) and Map string-key lookup.
type Subscript struct {
	Container Expression
	Index     Expression
}

func NewSubscript(c, i Expression) *Subscript { return &Subscript{Container: c, Index: i} }

func (s *Subscript) Kind() Kind             { return KindSubscript }
func (s *Subscript) Children() []Expression { return []Expression{s.Container, s.Index} }
func (s *Subscript) Accept(v Visitor)       { v.Visit(s) }
func (s *Subscript) String() string         { return s.Container.String() + "[" + s.Index.String() + "]" }

func (s *Subscript) Eval(ctx EvalContext) value.Value {
	c := s.Container.Eval(ctx)
	idx := s.Index.Eval(ctx)
	if c.IsNull() || idx.IsNull() {
		return value.Null()
	}
	switch c.Kind() {
	case value.KindList:
		l, _ := c.AsList()
		i, ok := idx.AsInt()
		if !ok {
			return value.NullSentinel(value.NullBadType)
		}
		n := int64(len(l.Elems))
		if i < 0 {
			i += n
		}
		if i < 0 || i >= n {
			return value.Null()
		}
		return l.Elems[i]
	case value.KindMap:
		m, _ := c.AsMap()
		key, ok := idx.AsString()
		if !ok {
			return value.NullSentinel(value.NullBadType)
		}
		v, ok := m.Get(key)
		if !ok {
			return value.Null()
		}
		return v
	default:
		return value.NullSentinel(value.NullBadType)
	}
}

func (s *Subscript) TypeInfer(tc TypeContext) (value.ValueType, error) {
	// The element type of a List/Map is not tracked, so a subscript can
	// only ever narrow to ANY; the container's own inference still runs so
	// its errors surface.
	if _, err := s.Container.TypeInfer(tc); err != nil {
		return value.TypeAny, err
	}
	return value.TypeAny, nil
}

// Attribute implements a.b: Map key lookup, or Vertex/Edge
// property lookup (searching across tags for a Vertex).
type Attribute struct {
	Object Expression
	Name   string
}

func NewAttribute(o Expression, name string) *Attribute { return &Attribute{Object: o, Name: name} }

func (a *Attribute) Kind() Kind             { return KindAttribute }
func (a *Attribute) Children() []Expression { return []Expression{a.Object} }
func (a *Attribute) Accept(v Visitor)       { v.Visit(a) }
func (a *Attribute) String() string         { return a.Object.String() + "." + a.Name }

func (a *Attribute) Eval(ctx EvalContext) value.Value {
	o := a.Object.Eval(ctx)
	if o.IsNull() {
		return value.Null()
	}
	switch o.Kind() {
	case value.KindMap:
		m, _ := o.AsMap()
		v, ok := m.Get(a.Name)
		if !ok {
			return value.Null()
		}
		return v
	case value.KindVertex:
		vx, _ := o.AsVertex()
		props := vx.FlattenedProps()
		if v, ok := props[a.Name]; ok {
			return v
		}
		return value.NullSentinel(value.NullUnknownProp)
	case value.KindEdge:
		e, _ := o.AsEdge()
		if v, ok := e.Props[a.Name]; ok {
			return v
		}
		return value.NullSentinel(value.NullUnknownProp)
	default:
		return value.NullSentinel(value.NullBadType)
	}
}

func (a *Attribute) TypeInfer(TypeContext) (value.ValueType, error) { return value.TypeAny, nil }

// LabelAttribute is the pre-resolution `label.attr` form: the
// validator rewrites it into a Source/Dest/Edge property reference based on
// the surrounding clause; it is never evaluated directly in a validated
// plan, so Eval documents that contract by returning a BadType sentinel.
type LabelAttribute struct {
	Label string
	Attr  string
}

func NewLabelAttribute(label, attr string) *LabelAttribute { return &LabelAttribute{Label: label, Attr: attr} }

func (l *LabelAttribute) Kind() Kind             { return KindLabelAttribute }
func (l *LabelAttribute) Children() []Expression { return nil }
func (l *LabelAttribute) Accept(v Visitor)       { v.Visit(l) }
func (l *LabelAttribute) String() string         { return l.Label + "." + l.Attr }
func (l *LabelAttribute) Eval(EvalContext) value.Value {
	return value.NullSentinel(value.NullBadType)
}
func (l *LabelAttribute) TypeInfer(TypeContext) (value.ValueType, error) { return value.TypeAny, nil }
