package value

import "strings"

// ValueType is the static type lattice consulted by expression type
// inference. TypeAny means the type could not be narrowed
// before execution (e.g. an InputProperty read before schema binding);
// concrete mismatches are then deferred to runtime NullBadType.
type ValueType uint8

const (
	TypeAny ValueType = iota
	TypeNull
	TypeEmpty
	TypeBool
	TypeInt
	TypeFloat
	TypeString
	TypeDate
	TypeTime
	TypeDateTime
	TypeDuration
	TypeVertex
	TypeEdge
	TypePath
	TypeList
	TypeSet
	TypeMap
	TypeDataSet
)

func (t ValueType) String() string {
	switch t {
	case TypeAny:
		return "ANY"
	case TypeNull:
		return "NULL"
	case TypeEmpty:
		return "EMPTY"
	case TypeBool:
		return "BOOL"
	case TypeInt:
		return "INT"
	case TypeFloat:
		return "FLOAT"
	case TypeString:
		return "STRING"
	case TypeDate:
		return "DATE"
	case TypeTime:
		return "TIME"
	case TypeDateTime:
		return "DATETIME"
	case TypeDuration:
		return "DURATION"
	case TypeVertex:
		return "VERTEX"
	case TypeEdge:
		return "EDGE"
	case TypePath:
		return "PATH"
	case TypeList:
		return "LIST"
	case TypeSet:
		return "SET"
	case TypeMap:
		return "MAP"
	case TypeDataSet:
		return "DATASET"
	default:
		return "?"
	}
}

// TypeOf returns the static type tag matching a Value's runtime Kind.
func TypeOf(v Value) ValueType {
	switch v.Kind() {
	case KindNull:
		return TypeNull
	case KindEmpty:
		return TypeEmpty
	case KindBool:
		return TypeBool
	case KindInt:
		return TypeInt
	case KindFloat:
		return TypeFloat
	case KindString:
		return TypeString
	case KindDate:
		return TypeDate
	case KindTime:
		return TypeTime
	case KindDateTime:
		return TypeDateTime
	case KindDuration:
		return TypeDuration
	case KindVertex:
		return TypeVertex
	case KindEdge:
		return TypeEdge
	case KindPath:
		return TypePath
	case KindList:
		return TypeList
	case KindSet:
		return TypeSet
	case KindMap:
		return TypeMap
	case KindDataSet:
		return TypeDataSet
	default:
		return TypeAny
	}
}

// IsNumericType reports whether t is Int or Float.
func IsNumericType(t ValueType) bool { return t == TypeInt || t == TypeFloat }

// ParseTypeName resolves a surface type-name token (as it appears in
// CREATE TAG/EDGE property declarations) to a ValueType, case-insensitively
// and accepting both the NGQL spelling and its common alias.
func ParseTypeName(name string) (ValueType, bool) {
	switch strings.ToLower(name) {
	case "bool", "boolean":
		return TypeBool, true
	case "int", "int64", "integer":
		return TypeInt, true
	case "float", "double":
		return TypeFloat, true
	case "string", "fixed_string":
		return TypeString, true
	case "date":
		return TypeDate, true
	case "time":
		return TypeTime, true
	case "datetime":
		return TypeDateTime, true
	case "duration":
		return TypeDuration, true
	default:
		return TypeAny, false
	}
}

// ColumnSchema is an ordered (name, type) list, the Symbol Table's value
// type.
type ColumnSchema []ColumnDef

type ColumnDef struct {
	Name string
	Type ValueType
}

func (c ColumnSchema) Names() []string {
	out := make([]string, len(c))
	for i, d := range c {
		out[i] = d.Name
	}
	return out
}

func (c ColumnSchema) IndexOf(name string) int {
	for i, d := range c {
		if d.Name == name {
			return i
		}
	}
	return -1
}

// Equal compares schemas by (name, type) in order, backing the pipe-
// chaining invariant.
func (c ColumnSchema) Equal(o ColumnSchema) bool {
	if len(c) != len(o) {
		return false
	}
	for i := range c {
		if c[i].Name != o[i].Name || (c[i].Type != TypeAny && o[i].Type != TypeAny && c[i].Type != o[i].Type) {
			return false
		}
	}
	return true
}
