package value

import (
	"strconv"
	"strings"
)

// propagateBinary returns the leftmost Null-family operand, if either side
// is NULL, else ok=false.
func propagateBinary(a, b Value) (Value, bool) {
	if a.kind == KindNull {
		return a, true
	}
	if b.kind == KindNull {
		return b, true
	}
	return Value{}, false
}

// Equal implements strict equality: distinct kinds compare FALSE
// except the numeric Int/Float pair; NULL propagates; Empty equals only
// Empty.
func Equal(a, b Value) Value {
	if n, ok := propagateBinary(a, b); ok {
		return n
	}
	if a.kind == KindEmpty || b.kind == KindEmpty {
		return Bool(a.kind == KindEmpty && b.kind == KindEmpty)
	}
	if a.IsNumeric() && b.IsNumeric() {
		if a.kind == KindInt && b.kind == KindInt {
			return Bool(a.i == b.i)
		}
		return Bool(a.NumericFloat() == b.NumericFloat())
	}
	if a.kind != b.kind {
		return Bool(false)
	}
	switch a.kind {
	case KindBool:
		return Bool(a.b == b.b)
	case KindString:
		return Bool(a.s == b.s)
	case KindDate:
		return Bool(a.date.Compare(b.date) == 0)
	case KindTime:
		return Bool(a.time.Compare(b.time) == 0)
	case KindDateTime:
		return Bool(a.datetime.Compare(b.datetime) == 0)
	case KindDuration:
		return Bool(a.duration == b.duration)
	case KindVertex:
		return Bool(a.vertex.Equal(b.vertex))
	case KindEdge:
		return Bool(a.edge.Equal(b.edge))
	case KindList:
		return Bool(listEqual(a.list, b.list))
	case KindSet:
		return Bool(setEqual(a.set, b.set))
	case KindMap:
		return Bool(mapEqual(a.m, b.m))
	case KindPath:
		return Bool(pathEqual(a.path, b.path))
	default:
		return Bool(false)
	}
}

func listEqual(a, b *List) bool {
	if len(a.Elems) != len(b.Elems) {
		return false
	}
	for i := range a.Elems {
		if Equal(a.Elems[i], b.Elems[i]) != Bool(true) {
			return false
		}
	}
	return true
}

func setEqual(a, b *Set) bool {
	if len(a.Elems) != len(b.Elems) {
		return false
	}
	for _, e := range a.Elems {
		if !b.Contains(e) {
			return false
		}
	}
	return true
}

func mapEqual(a, b *Map) bool {
	if len(a.keys) != len(b.keys) {
		return false
	}
	for _, k := range a.keys {
		av, _ := a.Get(k)
		bv, ok := b.Get(k)
		if !ok || Equal(av, bv) != Bool(true) {
			return false
		}
	}
	return true
}

func pathEqual(a, b *Path) bool {
	if !a.Src.Equal(&b.Src) || len(a.Steps) != len(b.Steps) {
		return false
	}
	for i := range a.Steps {
		if a.Steps[i].Type != b.Steps[i].Type || a.Steps[i].Rank != b.Steps[i].Rank || !a.Steps[i].Dst.Equal(&b.Steps[i].Dst) {
			return false
		}
	}
	return true
}

// kindOrder gives the total-order position used when comparing distinct
// non-numeric kinds, matching the Kind discriminant order.
func kindOrder(k Kind) int { return int(k) }

// Compare implements the total order across kinds: within numeric kinds
// by value, Strings by bytes, temporals by point in time, Lists
// element-wise then by length, Sets/Maps/DataSets by size only, and
// otherwise by discriminant position.
// A Null-family operand propagates: the second return is the propagated
// NULL sentinel when the comparison has no real ordering, zero otherwise.
func Compare(a, b Value) (int, Value) {
	if n, ok := propagateBinary(a, b); ok {
		return 0, n
	}
	if a.IsNumeric() && b.IsNumeric() {
		if a.kind == KindInt && b.kind == KindInt {
			return cmpInt64(a.i, b.i), Value{}
		}
		af, bf := a.NumericFloat(), b.NumericFloat()
		switch {
		case af < bf:
			return -1, Value{}
		case af > bf:
			return 1, Value{}
		default:
			return 0, Value{}
		}
	}
	if a.kind != b.kind {
		return cmpInt(kindOrder(a.kind), kindOrder(b.kind)), Value{}
	}
	switch a.kind {
	case KindBool:
		return cmpBool(a.b, b.b), Value{}
	case KindString:
		return strings.Compare(a.s, b.s), Value{}
	case KindDate:
		return a.date.Compare(b.date), Value{}
	case KindTime:
		return a.time.Compare(b.time), Value{}
	case KindDateTime:
		return a.datetime.Compare(b.datetime), Value{}
	case KindList:
		return compareList(a.list, b.list), Value{}
	case KindSet:
		return cmpInt(len(a.set.Elems), len(b.set.Elems)), Value{}
	case KindMap:
		return cmpInt(len(a.m.keys), len(b.m.keys)), Value{}
	case KindDataSet:
		return cmpInt(len(a.dataSet.Rows), len(b.dataSet.Rows)), Value{}
	case KindDuration:
		return compareDuration(a.duration, b.duration), Value{}
	case KindVertex:
		return Compare(a.vertex.ID, b.vertex.ID)
	case KindEdge:
		return compareEdge(a.edge, b.edge)
	case KindPath:
		return comparePath(a.path, b.path)
	default:
		return 0, NullSentinel(NullBadType)
	}
}

// compareDuration orders by (months, seconds, microseconds) component-wise,
// the same precedence date+duration arithmetic applies them in.
func compareDuration(a, b Duration) int {
	if c := cmpInt(int(a.Months), int(b.Months)); c != 0 {
		return c
	}
	if c := cmpInt64(a.Seconds, b.Seconds); c != 0 {
		return c
	}
	return cmpInt(int(a.Microseconds), int(b.Microseconds))
}

// compareEdge orders canonicalized edges by (src, type, rank, dst).
func compareEdge(a, b *Edge) (int, Value) {
	x, y := a.Canonical(), b.Canonical()
	if c, null := Compare(x.Src, y.Src); null.IsNull() || c != 0 {
		return c, null
	}
	if c := cmpInt(int(x.Type), int(y.Type)); c != 0 {
		return c, Value{}
	}
	if c := cmpInt64(x.Rank, y.Rank); c != 0 {
		return c, Value{}
	}
	return Compare(x.Dst, y.Dst)
}

// comparePath orders paths by source vertex, then step-wise, then length.
func comparePath(a, b *Path) (int, Value) {
	if c, null := Compare(a.Src.ID, b.Src.ID); null.IsNull() || c != 0 {
		return c, null
	}
	n := len(a.Steps)
	if len(b.Steps) < n {
		n = len(b.Steps)
	}
	for i := 0; i < n; i++ {
		if c, null := Compare(a.Steps[i].Dst.ID, b.Steps[i].Dst.ID); null.IsNull() || c != 0 {
			return c, null
		}
		if c := cmpInt(int(a.Steps[i].Type), int(b.Steps[i].Type)); c != 0 {
			return c, Value{}
		}
		if c := cmpInt64(a.Steps[i].Rank, b.Steps[i].Rank); c != 0 {
			return c, Value{}
		}
	}
	return cmpInt(len(a.Steps), len(b.Steps)), Value{}
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpBool(a, b bool) int {
	if a == b {
		return 0
	}
	if !a {
		return -1
	}
	return 1
}

func compareList(a, b *List) int {
	n := len(a.Elems)
	if len(b.Elems) < n {
		n = len(b.Elems)
	}
	for i := 0; i < n; i++ {
		c, null := Compare(a.Elems[i], b.Elems[i])
		if null.IsNull() {
			return 0
		}
		if c != 0 {
			return c
		}
	}
	return cmpInt(len(a.Elems), len(b.Elems))
}

// Less is a convenience wrapper returning a three-valued Bool/Null Value.
func Less(a, b Value) Value {
	c, null := Compare(a, b)
	if null.IsNull() {
		return null
	}
	return Bool(c < 0)
}

// Add implements +: numerics, String concat, List concat,
// Date/DateTime + Duration.
func Add(a, b Value) Value {
	if n, ok := propagateBinary(a, b); ok {
		return n
	}
	if a.IsNumeric() && b.IsNumeric() {
		if a.kind == KindInt && b.kind == KindInt {
			return Int(a.i + b.i)
		}
		return Float(a.NumericFloat() + b.NumericFloat())
	}
	if a.kind == KindString && b.kind == KindString {
		return Str(a.s + b.s)
	}
	if a.kind == KindList && b.kind == KindList {
		out := make([]Value, 0, len(a.list.Elems)+len(b.list.Elems))
		out = append(out, a.list.Elems...)
		out = append(out, b.list.Elems...)
		return ListVal(&List{Elems: out})
	}
	if a.kind == KindDate && b.kind == KindDuration {
		dt := DateTime{Date: a.date}
		return DateTimeVal(dt.AddDuration(b.duration)).asDateIfNoTime()
	}
	if a.kind == KindDateTime && b.kind == KindDuration {
		return DateTimeVal(a.datetime.AddDuration(b.duration))
	}
	return NullSentinel(NullBadType)
}

// asDateIfNoTime narrows a DateTime-typed Value with a zero time-of-day
// component back to a Date Value, preserving Date+Duration => Date.
func (v Value) asDateIfNoTime() Value {
	if v.kind != KindDateTime {
		return v
	}
	dt := v.datetime
	if dt.Time == (Time{}) {
		return DateVal(dt.Date)
	}
	return v
}

func arithNumeric(a, b Value, ifn func(a, b int64) (int64, bool), ff func(a, b float64) float64) Value {
	if n, ok := propagateBinary(a, b); ok {
		return n
	}
	if !a.IsNumeric() || !b.IsNumeric() {
		return NullSentinel(NullBadType)
	}
	if a.kind == KindInt && b.kind == KindInt {
		r, ok := ifn(a.i, b.i)
		if !ok {
			return NullSentinel(NullDivByZero)
		}
		return Int(r)
	}
	af, bf := a.NumericFloat(), b.NumericFloat()
	return Float(ff(af, bf))
}

func Sub(a, b Value) Value {
	return arithNumeric(a, b,
		func(x, y int64) (int64, bool) { return x - y, true },
		func(x, y float64) float64 { return x - y })
}

func Mul(a, b Value) Value {
	return arithNumeric(a, b,
		func(x, y int64) (int64, bool) { return x * y, true },
		func(x, y float64) float64 { return x * y })
}

// Div implements /: division by zero returns NullBadData.
func Div(a, b Value) Value {
	if n, ok := propagateBinary(a, b); ok {
		return n
	}
	if !a.IsNumeric() || !b.IsNumeric() {
		return NullSentinel(NullBadType)
	}
	if a.kind == KindInt && b.kind == KindInt {
		if b.i == 0 {
			return NullSentinel(NullBadData)
		}
		return Int(a.i / b.i)
	}
	bf := b.NumericFloat()
	if bf == 0 {
		return NullSentinel(NullBadData)
	}
	return Float(a.NumericFloat() / bf)
}

// Mod implements %: modulo on floats is unspecified and returns
// NullBadType; int modulo by zero returns NullBadData.
func Mod(a, b Value) Value {
	if n, ok := propagateBinary(a, b); ok {
		return n
	}
	if a.kind != KindInt || b.kind != KindInt {
		return NullSentinel(NullBadType)
	}
	if b.i == 0 {
		return NullSentinel(NullBadData)
	}
	return Int(a.i % b.i)
}

// And/Or/Not/Xor implement three-valued logic.
func And(a, b Value) Value {
	ab, aok := a.AsBool()
	bb, bok := b.AsBool()
	if aok && !ab {
		return Bool(false)
	}
	if bok && !bb {
		return Bool(false)
	}
	if a.kind == KindNull || b.kind == KindNull {
		if n, ok := propagateBinary(a, b); ok {
			return n
		}
	}
	if !aok || !bok {
		return NullSentinel(NullBadType)
	}
	return Bool(ab && bb)
}

func Or(a, b Value) Value {
	ab, aok := a.AsBool()
	bb, bok := b.AsBool()
	if aok && ab {
		return Bool(true)
	}
	if bok && bb {
		return Bool(true)
	}
	if a.kind == KindNull || b.kind == KindNull {
		if n, ok := propagateBinary(a, b); ok {
			return n
		}
	}
	if !aok || !bok {
		return NullSentinel(NullBadType)
	}
	return Bool(ab || bb)
}

func Xor(a, b Value) Value {
	if n, ok := propagateBinary(a, b); ok {
		return n
	}
	ab, aok := a.AsBool()
	bb, bok := b.AsBool()
	if !aok || !bok {
		return NullSentinel(NullBadType)
	}
	return Bool(ab != bb)
}

func Not(a Value) Value {
	if a.kind == KindNull {
		return a
	}
	b, ok := a.AsBool()
	if !ok {
		return NullSentinel(NullBadType)
	}
	return Bool(!b)
}

func Neg(a Value) Value {
	switch a.kind {
	case KindNull:
		return a
	case KindInt:
		return Int(-a.i)
	case KindFloat:
		return Float(-a.f)
	default:
		return NullSentinel(NullBadType)
	}
}

func Pos(a Value) Value {
	switch a.kind {
	case KindNull, KindInt, KindFloat:
		return a
	default:
		return NullSentinel(NullBadType)
	}
}

// ToInt coerces a Value to INT (total): impossible parses return
// NullValue (i.e. plain NullDefault), wrong kinds return NullBadType.
func ToInt(v Value) Value {
	switch v.kind {
	case KindNull:
		return v
	case KindInt:
		return v
	case KindFloat:
		return Int(int64(v.f))
	case KindBool:
		if v.b {
			return Int(1)
		}
		return Int(0)
	case KindString:
		n, err := strconv.ParseInt(strings.TrimSpace(v.s), 10, 64)
		if err != nil {
			return NullSentinel(NullDefault)
		}
		return Int(n)
	default:
		return NullSentinel(NullBadType)
	}
}

func ToFloat(v Value) Value {
	switch v.kind {
	case KindNull:
		return v
	case KindFloat:
		return v
	case KindInt:
		return Float(float64(v.i))
	case KindString:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.s), 64)
		if err != nil {
			return NullSentinel(NullDefault)
		}
		return Float(f)
	default:
		return NullSentinel(NullBadType)
	}
}

// ToBool parses boolean strings case-insensitively but without trimming:
// toBool("fAlse") succeeds while toBool("false ") (trailing space) does not
// match the accepted literal set and returns NullValue.
func ToBool(v Value) Value {
	switch v.kind {
	case KindNull:
		return v
	case KindBool:
		return v
	case KindString:
		switch strings.ToLower(v.s) {
		case "true":
			return Bool(true)
		case "false":
			return Bool(false)
		default:
			return NullSentinel(NullDefault)
		}
	default:
		return NullSentinel(NullBadType)
	}
}

func ToStringValue(v Value) Value {
	if v.kind == KindNull {
		return v
	}
	return Str(v.String())
}
