package value

import (
	"fmt"
	"sort"
	"strings"
)

// Tag is a named, typed property bag attached to a Vertex.
type Tag struct {
	Name  string
	Props map[string]Value
}

// Vertex is {id, tags}.
type Vertex struct {
	ID   Value
	Tags []Tag
}

// Tag returns the named tag, if the vertex carries it.
func (vx *Vertex) Tag(name string) (Tag, bool) {
	for _, t := range vx.Tags {
		if t.Name == name {
			return t, true
		}
	}
	return Tag{}, false
}

// HasTag reports whether the vertex carries the named tag.
func (vx *Vertex) HasTag(name string) bool {
	_, ok := vx.Tag(name)
	return ok
}

// Prop looks up a property across a specific tag's schema.
func (vx *Vertex) Prop(tag, prop string) (Value, bool) {
	t, ok := vx.Tag(tag)
	if !ok {
		return Value{}, false
	}
	v, ok := t.Props[prop]
	return v, ok
}

// FlattenedProps merges all tags' properties into one map, later tags in
// Tags order overriding earlier ones on key conflict.
func (vx *Vertex) FlattenedProps() map[string]Value {
	out := make(map[string]Value)
	for _, t := range vx.Tags {
		for k, v := range t.Props {
			out[k] = v
		}
	}
	return out
}

func (vx *Vertex) String() string {
	names := make([]string, len(vx.Tags))
	for i, t := range vx.Tags {
		names[i] = t.Name
	}
	return fmt.Sprintf("(%s :%s)", vx.ID.String(), strings.Join(names, ":"))
}

// Equal compares vertices by id only.
func (vx *Vertex) Equal(o *Vertex) bool {
	if vx == nil || o == nil {
		return vx == o
	}
	return Equal(vx.ID, o.ID) == Bool(true)
}

// Edge is {src, dst, type, name, rank, props}. A negative Type means a
// reverse-direction edge and must be canonicalized (src/dst swapped, type
// negated) before comparison.
type Edge struct {
	Src   Value
	Dst   Value
	Type  int32
	Name  string
	Rank  int64
	Props map[string]Value
}

// Canonical returns the edge oriented so Type > 0, swapping Src/Dst and
// negating Type when the receiver is a reverse edge.
func (e *Edge) Canonical() *Edge {
	if e.Type >= 0 {
		return e
	}
	return &Edge{Src: e.Dst, Dst: e.Src, Type: -e.Type, Name: e.Name, Rank: e.Rank, Props: e.Props}
}

func (e *Edge) String() string {
	return fmt.Sprintf("(%s)-[:%s@%d]->(%s)", e.Src.String(), e.Name, e.Rank, e.Dst.String())
}

// Equal compares canonical (src, type, rank, dst).
func (e *Edge) Equal(o *Edge) bool {
	if e == nil || o == nil {
		return e == o
	}
	a, b := e.Canonical(), o.Canonical()
	return Equal(a.Src, b.Src) == Bool(true) &&
		a.Type == b.Type &&
		a.Rank == b.Rank &&
		Equal(a.Dst, b.Dst) == Bool(true)
}

// PathStep is one hop of a Path.
type PathStep struct {
	Dst   Vertex
	Type  int32
	Name  string
	Rank  int64
	Props map[string]Value
}

// Path is {src, steps}. A zero-length path is a single vertex.
type Path struct {
	Src   Vertex
	Steps []PathStep
}

func (p *Path) Length() int { return len(p.Steps) }

// Nodes returns src followed by every step's dst: length+1 vertices.
func (p *Path) Nodes() []Vertex {
	out := make([]Vertex, 0, len(p.Steps)+1)
	out = append(out, p.Src)
	for _, s := range p.Steps {
		out = append(out, s.Dst)
	}
	return out
}

// Relationships reconstructs the Edge for each step.
func (p *Path) Relationships() []*Edge {
	out := make([]*Edge, 0, len(p.Steps))
	cur := p.Src
	for _, s := range p.Steps {
		out = append(out, &Edge{Src: cur.ID, Dst: s.Dst.ID, Type: s.Type, Name: s.Name, Rank: s.Rank, Props: s.Props})
		cur = s.Dst
	}
	return out
}

func (p *Path) String() string {
	var sb strings.Builder
	sb.WriteString(p.Src.String())
	for _, s := range p.Steps {
		dir := "-"
		typ := s.Type
		if typ < 0 {
			dir = "<-"
			typ = -typ
		}
		fmt.Fprintf(&sb, "%s[:%s@%d]->%s", dir, s.Name, s.Rank, s.Dst.String())
		_ = typ
	}
	return sb.String()
}

// Reversed returns a new Path walking the same vertices back to front with
// each step's direction flipped, backing the reversePath() builtin.
func (p *Path) Reversed() *Path {
	nodes := p.Nodes()
	n := len(nodes)
	if n == 0 {
		return &Path{}
	}
	out := &Path{Src: nodes[n-1]}
	for i := len(p.Steps) - 1; i >= 0; i-- {
		s := p.Steps[i]
		out.Steps = append(out.Steps, PathStep{
			Dst:   nodes[i],
			Type:  -s.Type,
			Name:  s.Name,
			Rank:  s.Rank,
			Props: s.Props,
		})
	}
	return out
}

// List is an ordered, possibly-heterogeneous sequence.
type List struct{ Elems []Value }

func NewList(elems ...Value) *List { return &List{Elems: elems} }

func (l *List) String() string {
	parts := make([]string, len(l.Elems))
	for i, e := range l.Elems {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Set is an unordered collection with value-equality de-duplication. buckets
// groups Elems indices by Hash(v) so Add/Contains only run the O(n) Equal
// fallback within one hash bucket instead of across the whole set.
type Set struct {
	Elems   []Value
	buckets map[uint64][]int
}

func NewSet(elems ...Value) *Set {
	s := &Set{buckets: make(map[uint64][]int)}
	for _, e := range elems {
		s.Add(e)
	}
	return s
}

func (s *Set) Add(v Value) {
	if s.buckets == nil {
		s.buckets = make(map[uint64][]int)
	}
	h := Hash(v)
	for _, idx := range s.buckets[h] {
		if Equal(s.Elems[idx], v) == Bool(true) {
			return
		}
	}
	s.buckets[h] = append(s.buckets[h], len(s.Elems))
	s.Elems = append(s.Elems, v)
}

func (s *Set) Contains(v Value) bool {
	h := Hash(v)
	for _, idx := range s.buckets[h] {
		if Equal(s.Elems[idx], v) == Bool(true) {
			return true
		}
	}
	return false
}

func (s *Set) String() string {
	parts := make([]string, len(s.Elems))
	for i, e := range s.Elems {
		parts[i] = e.String()
	}
	sort.Strings(parts)
	return "{" + strings.Join(parts, ", ") + "}"
}

// Map is an ordered string-keyed map (insertion order preserved for
// deterministic printing and property flattening).
type Map struct {
	keys   []string
	values map[string]Value
}

func NewMap() *Map { return &Map{values: make(map[string]Value)} }

func (m *Map) Set(k string, v Value) {
	if _, ok := m.values[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.values[k] = v
}

func (m *Map) Get(k string) (Value, bool) {
	v, ok := m.values[k]
	return v, ok
}

func (m *Map) Keys() []string { return m.keys }

func (m *Map) String() string {
	parts := make([]string, 0, len(m.keys))
	for _, k := range m.keys {
		parts = append(parts, fmt.Sprintf("%q: %s", k, m.values[k].String()))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// DataSet is a named-column row table, the terminal shape a validated plan
// produces.
type DataSet struct {
	ColNames []string
	Rows     [][]Value
}

// RowCol fetches row, col bounds-checked, backing dataSetRowCol().
func (d *DataSet) RowCol(row, col int) Value {
	if row < 0 || row >= len(d.Rows) {
		return NullSentinel(NullBadData)
	}
	r := d.Rows[row]
	if col < 0 || col >= len(r) {
		return NullSentinel(NullBadData)
	}
	return r[col]
}

func (d *DataSet) String() string {
	return fmt.Sprintf("DataSet{cols=%v, rows=%d}", d.ColNames, len(d.Rows))
}
