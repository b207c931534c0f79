// Package function implements the built-in function registry: math, string,
// coercion, date/time, schema-introspection, list, path, hashing and
// dataset families, looked up by (name, arity) and evaluated through a
// total callable contract (never panics; invalid input yields a Null*
// sentinel).
package function

import (
	"fmt"
	"strings"

	"gopkg.in/src-d/go-errors.v1"

	"github.com/graphlang/ngqlcore/expression"
	"github.com/graphlang/ngqlcore/value"
)

// ErrNotDefined and ErrParamType mirror the two registry failure modes: an
// unknown (name, arity) pair, or an argument whose runtime type the
// callable cannot accept.
var (
	ErrNotDefined = errors.NewKind("Function `%s' not defined")
	ErrParamType  = errors.NewKind("Parameter's type error")
)

// Callable is total: it must never panic, returning the
// appropriate Null* sentinel for invalid input instead.
type Callable func(args []value.Value) value.Value

// ReturnTypeRule infers a call's static return type from its argument
// types; an entry with a nil rule returns TypeAny.
type ReturnTypeRule func(argTypes []value.ValueType) (value.ValueType, error)

// Entry is one registration, keyed by (Name, arity range).
type Entry struct {
	Name           string
	MinArity       int
	MaxArity       int // -1 means unbounded
	ReturnTypeRule ReturnTypeRule
	Fn             Callable
}

func (e *Entry) accepts(arity int) bool {
	if arity < e.MinArity {
		return false
	}
	return e.MaxArity < 0 || arity <= e.MaxArity
}

// boundEntry adapts an Entry to expression.Function once arity is known,
// satisfying the interface expression.FunctionCall dispatches through.
type boundEntry struct{ e *Entry }

func (b boundEntry) Call(args []value.Value) value.Value { return b.e.Fn(args) }

func (b boundEntry) ReturnType(argTypes []value.ValueType) (value.ValueType, error) {
	if b.e.ReturnTypeRule == nil {
		return value.TypeAny, nil
	}
	return b.e.ReturnTypeRule(argTypes)
}

// Registry is the name-and-arity keyed function catalog. It is read-only
// after static init and exposed through an explicit handle rather than
// implicit globals; a Registry value is safe for concurrent read-only use
// across queries.
type Registry struct {
	entries map[string][]*Entry
}

// NewRegistry builds a Registry pre-populated with every builtin family.
func NewRegistry() *Registry {
	r := &Registry{entries: make(map[string][]*Entry)}
	registerMath(r)
	registerString(r)
	registerCoercion(r)
	registerDateTime(r)
	registerSchema(r)
	registerList(r)
	registerPath(r)
	registerHashing(r)
	registerDataSet(r)
	return r
}

// Register adds one entry, keyed by lower-cased name.
func (r *Registry) Register(e Entry) {
	name := strings.ToLower(e.Name)
	e.Name = name
	r.entries[name] = append(r.entries[name], &e)
}

// Lookup resolves (name, arity) to a callable, satisfying
// expression.FunctionRegistry.
func (r *Registry) Lookup(name string, arity int) (expression.Function, error) {
	name = strings.ToLower(name)
	candidates, ok := r.entries[name]
	if !ok {
		return nil, ErrNotDefined.New(name)
	}
	for _, e := range candidates {
		if e.accepts(arity) {
			return boundEntry{e}, nil
		}
	}
	return nil, ErrNotDefined.New(fmt.Sprintf("%s/%d", name, arity))
}

// ReturnType resolves the inferred return type for a call, for validators
// that need return-type inference ahead of evaluation.
func (r *Registry) ReturnType(name string, argTypes []value.ValueType) (value.ValueType, error) {
	fn, err := r.Lookup(name, len(argTypes))
	if err != nil {
		return value.TypeAny, err
	}
	return fn.ReturnType(argTypes)
}

// argInt/argFloat/argString extract a typed argument or report failure,
// the common helper used by every family's Callable.
func argInt(v value.Value) (int64, bool)    { return v.AsInt() }
func argFloat(v value.Value) (float64, bool) {
	if f, ok := v.AsFloat(); ok {
		return f, true
	}
	if i, ok := v.AsInt(); ok {
		return float64(i), true
	}
	return 0, false
}
func argString(v value.Value) (string, bool) { return v.AsString() }

func badType() value.Value { return value.NullSentinel(value.NullBadType) }
func badData() value.Value { return value.NullSentinel(value.NullBadData) }

func anyNull(args []value.Value) (value.Value, bool) {
	for _, a := range args {
		if a.IsNull() {
			return a, true
		}
	}
	return value.Value{}, false
}
