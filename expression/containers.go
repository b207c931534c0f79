package expression

import (
	"strings"

	"github.com/graphlang/ngqlcore/value"
)

// ListConstructor builds a List literal from element expressions.
type ListConstructor struct{ Elems []Expression }

func NewListConstructor(elems ...Expression) *ListConstructor { return &ListConstructor{Elems: elems} }

func (l *ListConstructor) Kind() Kind             { return KindListConstructor }
func (l *ListConstructor) Children() []Expression { return l.Elems }
func (l *ListConstructor) Accept(v Visitor)       { v.Visit(l) }
func (l *ListConstructor) String() string {
	parts := make([]string, len(l.Elems))
	for i, e := range l.Elems {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (l *ListConstructor) Eval(ctx EvalContext) value.Value {
	out := make([]value.Value, len(l.Elems))
	for i, e := range l.Elems {
		out[i] = e.Eval(ctx)
	}
	return value.ListVal(&value.List{Elems: out})
}

func (l *ListConstructor) TypeInfer(TypeContext) (value.ValueType, error) { return value.TypeList, nil }

// SetConstructor builds a Set literal.
type SetConstructor struct{ Elems []Expression }

func NewSetConstructor(elems ...Expression) *SetConstructor { return &SetConstructor{Elems: elems} }

func (s *SetConstructor) Kind() Kind             { return KindSetConstructor }
func (s *SetConstructor) Children() []Expression { return s.Elems }
func (s *SetConstructor) Accept(v Visitor)       { v.Visit(s) }
func (s *SetConstructor) String() string {
	parts := make([]string, len(s.Elems))
	for i, e := range s.Elems {
		parts[i] = e.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (s *SetConstructor) Eval(ctx EvalContext) value.Value {
	set := value.NewSet()
	for _, e := range s.Elems {
		set.Add(e.Eval(ctx))
	}
	return value.SetVal(set)
}

func (s *SetConstructor) TypeInfer(TypeContext) (value.ValueType, error) { return value.TypeSet, nil }

// MapEntry is one key:value pair of a MapConstructor.
type MapEntry struct {
	Key   string
	Value Expression
}

// MapConstructor builds a Map literal.
type MapConstructor struct{ Entries []MapEntry }

func NewMapConstructor(entries ...MapEntry) *MapConstructor { return &MapConstructor{Entries: entries} }

func (m *MapConstructor) Kind() Kind { return KindMapConstructor }
func (m *MapConstructor) Children() []Expression {
	out := make([]Expression, len(m.Entries))
	for i, e := range m.Entries {
		out[i] = e.Value
	}
	return out
}
func (m *MapConstructor) Accept(v Visitor) { v.Visit(m) }
func (m *MapConstructor) String() string {
	parts := make([]string, len(m.Entries))
	for i, e := range m.Entries {
		parts[i] = e.Key + ": " + e.Value.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (m *MapConstructor) Eval(ctx EvalContext) value.Value {
	out := value.NewMap()
	for _, e := range m.Entries {
		out.Set(e.Key, e.Value.Eval(ctx))
	}
	return value.MapVal(out)
}

func (m *MapConstructor) TypeInfer(TypeContext) (value.ValueType, error) { return value.TypeMap, nil }

// SubPath is one hop descriptor used to assemble a PathBuild expression,
// matching the subpath shape MATCH lowering produces.
type SubPath struct {
	Dst  Expression // must evaluate to a Vertex
	Type int32
	Name string
	Rank int64
}

// PathBuild constructs a Path value from a source vertex expression and a
// sequence of subpath descriptors, used by MATCH lowering.
type PathBuild struct {
	Src   Expression // must evaluate to a Vertex
	Steps []SubPath
}

func (p *PathBuild) Kind() Kind { return KindPathBuild }
func (p *PathBuild) Children() []Expression {
	out := []Expression{p.Src}
	for _, s := range p.Steps {
		out = append(out, s.Dst)
	}
	return out
}
func (p *PathBuild) Accept(v Visitor) { v.Visit(p) }
func (p *PathBuild) String() string   { return "PathBuild(" + p.Src.String() + ")" }

func (p *PathBuild) Eval(ctx EvalContext) value.Value {
	sv := p.Src.Eval(ctx)
	src, ok := sv.AsVertex()
	if !ok {
		return value.NullSentinel(value.NullBadType)
	}
	out := &value.Path{Src: *src}
	for _, s := range p.Steps {
		dv := s.Dst.Eval(ctx)
		dst, ok := dv.AsVertex()
		if !ok {
			return value.NullSentinel(value.NullBadType)
		}
		out.Steps = append(out.Steps, value.PathStep{Dst: *dst, Type: s.Type, Name: s.Name, Rank: s.Rank})
	}
	return value.PathVal(out)
}

func (p *PathBuild) TypeInfer(TypeContext) (value.ValueType, error) { return value.TypePath, nil }

// UUID generates an opaque identifier, deterministic per query invocation
//: it reads the query-scoped seed from the EvalContext rather
// than drawing fresh randomness on every Eval call, so repeated evaluation
// within one query (e.g. across rows referencing the same UUID() call node)
// is stable.
type UUID struct{}

func (u *UUID) Kind() Kind             { return KindUUID }
func (u *UUID) Children() []Expression { return nil }
func (u *UUID) Accept(v Visitor)       { v.Visit(u) }
func (u *UUID) String() string         { return "uuid()" }

func (u *UUID) Eval(ctx EvalContext) value.Value { return value.Str(ctx.UUIDSeed()) }

func (u *UUID) TypeInfer(TypeContext) (value.ValueType, error) { return value.TypeString, nil }

// VertexLiteral/EdgeLiteral wrap a Vertex/Edge produced only as a function
// return value (e.g. startNode()/endNode()); they are not surface forms
// so they carry the value directly rather than sub-expressions.
type VertexLiteral struct{ Value *value.Vertex }

func (v *VertexLiteral) Kind() Kind                         { return KindVertexLiteral }
func (v *VertexLiteral) Children() []Expression              { return nil }
func (v *VertexLiteral) Accept(vis Visitor)                  { vis.Visit(v) }
func (v *VertexLiteral) String() string                      { return v.Value.String() }
func (v *VertexLiteral) Eval(EvalContext) value.Value        { return value.VertexVal(v.Value) }
func (v *VertexLiteral) TypeInfer(TypeContext) (value.ValueType, error) { return value.TypeVertex, nil }

type EdgeLiteral struct{ Value *value.Edge }

func (e *EdgeLiteral) Kind() Kind                         { return KindEdgeLiteral }
func (e *EdgeLiteral) Children() []Expression              { return nil }
func (e *EdgeLiteral) Accept(v Visitor)                    { v.Visit(e) }
func (e *EdgeLiteral) String() string                      { return e.Value.String() }
func (e *EdgeLiteral) Eval(EvalContext) value.Value        { return value.EdgeVal(e.Value) }
func (e *EdgeLiteral) TypeInfer(TypeContext) (value.ValueType, error) { return value.TypeEdge, nil }
