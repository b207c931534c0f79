// Package value implements the runtime value model of the query frontend:
// a tagged union over the heterogeneous graph-database value space (scalars,
// temporals, vertices, edges, paths and the composite container kinds), with
// total ordering, three-valued logic, arithmetic and coercion.
//
// The discriminant order below is significant: it defines the cross-kind
// total order (NULL first, DataSet last).
package value

import "gopkg.in/src-d/go-errors.v1"

// Kind discriminates the tagged union. Its ordinal position defines the
// cross-kind comparison order for heterogeneous Compare calls.
type Kind uint8

const (
	KindNull Kind = iota
	KindEmpty
	KindBool
	KindInt
	KindFloat
	KindString
	KindDate
	KindTime
	KindDateTime
	KindDuration
	KindVertex
	KindEdge
	KindPath
	KindList
	KindSet
	KindMap
	KindDataSet
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "NULL"
	case KindEmpty:
		return "EMPTY"
	case KindBool:
		return "BOOL"
	case KindInt:
		return "INT"
	case KindFloat:
		return "FLOAT"
	case KindString:
		return "STRING"
	case KindDate:
		return "DATE"
	case KindTime:
		return "TIME"
	case KindDateTime:
		return "DATETIME"
	case KindDuration:
		return "DURATION"
	case KindVertex:
		return "VERTEX"
	case KindEdge:
		return "EDGE"
	case KindPath:
		return "PATH"
	case KindList:
		return "LIST"
	case KindSet:
		return "SET"
	case KindMap:
		return "MAP"
	case KindDataSet:
		return "DATASET"
	default:
		return "UNKNOWN"
	}
}

// NullType distinguishes the family of error sentinel a NULL value carries.
// Ordinary unbound/absent values use NullDefault.
type NullType uint8

const (
	NullDefault NullType = iota
	NullBadData
	NullBadType
	NullOutOfRange
	NullDivByZero
	NullOverflow
	NullUnknownProp
)

func (n NullType) String() string {
	switch n {
	case NullBadData:
		return "NULL(BadData)"
	case NullBadType:
		return "NULL(BadType)"
	case NullOutOfRange:
		return "NULL(OutOfRange)"
	case NullDivByZero:
		return "NULL(DivByZero)"
	case NullOverflow:
		return "NULL(Overflow)"
	case NullUnknownProp:
		return "NULL(UnknownProp)"
	default:
		return "NULL"
	}
}

// ErrNotImplemented is returned by operations that are valid for some kinds
// of the union but were invoked against a kind that does not support them
// at construction time (as opposed to producing a Null* sentinel, the
// evaluation-time contract).
var ErrNotImplemented = errors.NewKind("operation not implemented for kind %s")
