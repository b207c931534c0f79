package value

import "fmt"

// Value is the tagged-union runtime value every expression produces. A zero
// Value is Null (NullDefault). Composite payloads are held by pointer so a
// Value itself stays small and cheap to pass by copy; List/Set/Map/DataSet
// therefore share structure across copies, while remaining copy-on-branch
// for the scalar fields.
type Value struct {
	kind Kind

	null NullType
	b    bool
	i    int64
	f    float64
	s    string

	date     Date
	time     Time
	datetime DateTime
	duration Duration

	vertex *Vertex
	edge   *Edge
	path   *Path

	list    *List
	set     *Set
	m       *Map
	dataSet *DataSet
}

func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is any member of the Null family (including the
// Null* error sentinels).
func (v Value) IsNull() bool { return v.kind == KindNull }

// NullType returns the sentinel sub-kind when IsNull, else NullDefault.
func (v Value) NullType() NullType {
	if v.kind != KindNull {
		return NullDefault
	}
	return v.null
}

func Null() Value                { return Value{kind: KindNull, null: NullDefault} }
func NullSentinel(n NullType) Value { return Value{kind: KindNull, null: n} }
func Empty() Value               { return Value{kind: KindEmpty} }
func Bool(b bool) Value          { return Value{kind: KindBool, b: b} }
func Int(i int64) Value          { return Value{kind: KindInt, i: i} }
func Float(f float64) Value      { return Value{kind: KindFloat, f: f} }
func Str(s string) Value         { return Value{kind: KindString, s: s} }
func String(s string) Value      { return Str(s) }
func DateVal(d Date) Value       { return Value{kind: KindDate, date: d} }
func TimeVal(t Time) Value       { return Value{kind: KindTime, time: t} }
func DateTimeVal(d DateTime) Value { return Value{kind: KindDateTime, datetime: d} }
func DurationVal(d Duration) Value { return Value{kind: KindDuration, duration: d} }
func VertexVal(v *Vertex) Value  { return Value{kind: KindVertex, vertex: v} }
func EdgeVal(e *Edge) Value      { return Value{kind: KindEdge, edge: e} }
func PathVal(p *Path) Value      { return Value{kind: KindPath, path: p} }
func ListVal(l *List) Value      { return Value{kind: KindList, list: l} }
func SetVal(s *Set) Value        { return Value{kind: KindSet, set: s} }
func MapVal(m *Map) Value        { return Value{kind: KindMap, m: m} }
func DataSetVal(d *DataSet) Value { return Value{kind: KindDataSet, dataSet: d} }

func (v Value) AsBool() (bool, bool)           { return v.b, v.kind == KindBool }
func (v Value) AsInt() (int64, bool)           { return v.i, v.kind == KindInt }
func (v Value) AsFloat() (float64, bool)       { return v.f, v.kind == KindFloat }
func (v Value) AsString() (string, bool)       { return v.s, v.kind == KindString }
func (v Value) AsDate() (Date, bool)           { return v.date, v.kind == KindDate }
func (v Value) AsTime() (Time, bool)           { return v.time, v.kind == KindTime }
func (v Value) AsDateTime() (DateTime, bool)   { return v.datetime, v.kind == KindDateTime }
func (v Value) AsDuration() (Duration, bool)   { return v.duration, v.kind == KindDuration }
func (v Value) AsVertex() (*Vertex, bool)      { return v.vertex, v.kind == KindVertex }
func (v Value) AsEdge() (*Edge, bool)          { return v.edge, v.kind == KindEdge }
func (v Value) AsPath() (*Path, bool)          { return v.path, v.kind == KindPath }
func (v Value) AsList() (*List, bool)          { return v.list, v.kind == KindList }
func (v Value) AsSet() (*Set, bool)            { return v.set, v.kind == KindSet }
func (v Value) AsMap() (*Map, bool)            { return v.m, v.kind == KindMap }
func (v Value) AsDataSet() (*DataSet, bool)    { return v.dataSet, v.kind == KindDataSet }

// IsNumeric reports whether v is Int or Float, the two kinds that freely
// coerce into one another for mixed arithmetic.
func (v Value) IsNumeric() bool { return v.kind == KindInt || v.kind == KindFloat }

// NumericFloat returns v's numeric value widened to float64. Only valid
// when IsNumeric() is true.
func (v Value) NumericFloat() float64 {
	if v.kind == KindInt {
		return float64(v.i)
	}
	return v.f
}

func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return v.null.String()
	case KindEmpty:
		return "EMPTY"
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindInt:
		return fmt.Sprintf("%d", v.i)
	case KindFloat:
		return fmt.Sprintf("%g", v.f)
	case KindString:
		return v.s
	case KindDate:
		return v.date.String()
	case KindTime:
		return v.time.String()
	case KindDateTime:
		return v.datetime.String()
	case KindDuration:
		return v.duration.String()
	case KindVertex:
		return v.vertex.String()
	case KindEdge:
		return v.edge.String()
	case KindPath:
		return v.path.String()
	case KindList:
		return v.list.String()
	case KindSet:
		return v.set.String()
	case KindMap:
		return v.m.String()
	case KindDataSet:
		return v.dataSet.String()
	default:
		return "<?>"
	}
}
