// Package expression implements the polymorphic expression tree: roughly
// forty expression kinds grouped into literals, property references,
// operators, function calls, aggregates, container constructors, and the
// case/predicate/reduce/comprehension forms.
//
// Every kind implements a four-method contract: Eval(ctx) -> Value, Kind()
// -> Kind, TypeInfer(schema) -> ValueType, and Accept(visitor). The tree is
// built with ordinary Go pointers during parsing/construction; the
// validator's expression arena (querycontext package) clones nodes into its
// bump allocator only when it needs handle sharing.
package expression

import "github.com/graphlang/ngqlcore/value"

// Kind discriminates the expression node kinds.
type Kind uint8

const (
	KindConstant Kind = iota
	KindInputProperty
	KindVariableProperty
	KindSourceProperty
	KindDestProperty
	KindEdgeProperty
	KindUnary
	KindArithmetic
	KindRelational
	KindLogical
	KindTypeCast
	KindFunctionCall
	KindAggregateFunction
	KindSubscript
	KindAttribute
	KindLabelAttribute
	KindCase
	KindPredicate
	KindReduce
	KindListComprehension
	KindPathBuild
	KindUUID
	KindListConstructor
	KindSetConstructor
	KindMapConstructor
	KindVertexLiteral
	KindEdgeLiteral
)

// EvalContext is the runtime evaluation context: a bag of scope-keyed
// getters. Every getter returns NULL for an unbound
// reference; the validator is responsible for guaranteeing that a
// validated plan never evaluates an unbound reference in practice.
type EvalContext interface {
	GetInput(col string) value.Value
	GetVariable(v, col string) value.Value
	GetSrc(tag, prop string) value.Value
	GetDst(tag, prop string) value.Value
	GetEdge(alias, prop string) value.Value
	GetColumn(index int) value.Value
	Functions() FunctionRegistry
	// UUIDSeed returns a value deterministic for the lifetime of one query
	// invocation, backing the UUID expression kind.
	UUIDSeed() string
}

// TypeContext is consulted by TypeInfer to resolve identifiers against the
// current schema. Implementations live in the catalog/validator packages;
// expression only depends on this interface to avoid an import cycle back
// into the catalog.
type TypeContext interface {
	InputColumnType(col string) (value.ValueType, bool)
	VariableColumnType(v, col string) (value.ValueType, bool)
	TagPropType(tag, prop string) (value.ValueType, bool)
	EdgePropType(edge, prop string) (value.ValueType, bool)
}

// FunctionRegistry is the subset of expression/function.Registry that the
// expression tree itself needs in order to evaluate and type-infer a
// FunctionCall/AggregateFunction node.
type FunctionRegistry interface {
	Lookup(name string, arity int) (Function, error)
}

// Function is a resolved, callable registry entry.
type Function interface {
	Call(args []value.Value) value.Value
	ReturnType(argTypes []value.ValueType) (value.ValueType, error)
}

// Visitor is implemented by tree walkers (printers, folders, the
// validator's fusion-rule matcher). Accept calls the single Visit method
// with the node itself; Visit returns whether the walker recurses, and a
// visitor that recurses calls Children()/Walk itself. Visit cannot return
// a replacement expression.
type Visitor interface {
	Visit(e Expression) (recurse bool)
}

// Expression is the common interface every node in the tree satisfies,
//.
type Expression interface {
	Kind() Kind
	Eval(ctx EvalContext) value.Value
	TypeInfer(tc TypeContext) (value.ValueType, error)
	String() string
	Children() []Expression
	Accept(v Visitor)
}

// Walk performs a pre-order traversal, calling v.Visit on every node;
// Visit returning false stops recursion into that node's children.
func Walk(v Visitor, e Expression) {
	if e == nil {
		return
	}
	if !v.Visit(e) {
		return
	}
	for _, c := range e.Children() {
		Walk(v, c)
	}
}

func (k Kind) String() string {
	names := [...]string{
		"Constant", "InputProperty", "VariableProperty", "SourceProperty",
		"DestProperty", "EdgeProperty", "Unary", "Arithmetic", "Relational",
		"Logical", "TypeCast", "FunctionCall", "AggregateFunction",
		"Subscript", "Attribute", "LabelAttribute", "Case", "Predicate",
		"Reduce", "ListComprehension", "PathBuild", "UUID", "ListConstructor",
		"SetConstructor", "MapConstructor", "VertexLiteral", "EdgeLiteral",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}
