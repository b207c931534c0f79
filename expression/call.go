package expression

import (
	"strings"

	"github.com/graphlang/ngqlcore/value"
)

// FunctionCall dispatches through the FunctionRegistry by (name, arity),
//.
type FunctionCall struct {
	Name string
	Args []Expression
}

func NewFunctionCall(name string, args ...Expression) *FunctionCall {
	return &FunctionCall{Name: strings.ToLower(name), Args: args}
}

func (f *FunctionCall) Kind() Kind             { return KindFunctionCall }
func (f *FunctionCall) Children() []Expression { return f.Args }
func (f *FunctionCall) Accept(v Visitor)       { v.Visit(f) }

func (f *FunctionCall) String() string {
	parts := make([]string, len(f.Args))
	for i, a := range f.Args {
		parts[i] = a.String()
	}
	return f.Name + "(" + strings.Join(parts, ", ") + ")"
}

func (f *FunctionCall) Eval(ctx EvalContext) value.Value {
	fn, err := ctx.Functions().Lookup(f.Name, len(f.Args))
	if err != nil {
		return value.NullSentinel(value.NullBadType)
	}
	args := make([]value.Value, len(f.Args))
	for i, a := range f.Args {
		args[i] = a.Eval(ctx)
	}
	return fn.Call(args)
}

func (f *FunctionCall) TypeInfer(tc TypeContext) (value.ValueType, error) {
	// Return-type inference needs the registry, which lives outside the
	// expression tree's TypeContext; validators resolve FunctionCall types
	// by consulting the registry directly (see validator package) and only
	// fall back to this method for a conservative Any when they don't.
	return value.TypeAny, nil
}

// AggregateOp enumerates the supported aggregate functions. AggregateFunction
// only validates inside a group-by aware context; the validator rejects it
// elsewhere.
type AggregateOp uint8

const (
	AggCount AggregateOp = iota
	AggCountDistinct
	AggSum
	AggAvg
	AggMax
	AggMin
	AggCollect
	AggCollectSet
	AggStd
	AggBitAnd
	AggBitOr
	AggBitXor
)

var aggNames = map[AggregateOp]string{
	AggCount: "COUNT", AggCountDistinct: "COUNT(DISTINCT)", AggSum: "SUM", AggAvg: "AVG",
	AggMax: "MAX", AggMin: "MIN", AggCollect: "COLLECT", AggCollectSet: "COLLECT_SET",
	AggStd: "STD", AggBitAnd: "BIT_AND", AggBitOr: "BIT_OR", AggBitXor: "BIT_XOR",
}

// AggregateFunction is a placeholder leaf evaluated by the plan's Aggregate
// node rather than by ordinary expression evaluation; Eval here returns NULL
// without evaluating its argument (the aggregation itself is stateful across
// rows and is the Aggregate plan node's responsibility).
type AggregateFunction struct {
	Op       AggregateOp
	Arg      Expression
	Distinct bool
}

func NewAggregateFunction(op AggregateOp, arg Expression) *AggregateFunction {
	return &AggregateFunction{Op: op, Arg: arg}
}

func (a *AggregateFunction) Kind() Kind { return KindAggregateFunction }
func (a *AggregateFunction) Children() []Expression {
	if a.Arg == nil {
		return nil
	}
	return []Expression{a.Arg}
}
func (a *AggregateFunction) Accept(v Visitor) { v.Visit(a) }
// Name returns the aggregate's function name without its argument.
func (a *AggregateFunction) Name() string { return aggNames[a.Op] }

func (a *AggregateFunction) String() string {
	inner := "*"
	if a.Arg != nil {
		inner = a.Arg.String()
	}
	return aggNames[a.Op] + "(" + inner + ")"
}

// Eval is not meaningful outside an Aggregate plan node's row-group
// accumulation; returning NULL here documents that rather than panicking.
func (a *AggregateFunction) Eval(EvalContext) value.Value { return value.Null() }

func (a *AggregateFunction) TypeInfer(tc TypeContext) (value.ValueType, error) {
	switch a.Op {
	case AggCount, AggCountDistinct:
		return value.TypeInt, nil
	case AggCollect, AggCollectSet:
		return value.TypeList, nil
	case AggSum, AggAvg, AggStd, AggMax, AggMin:
		if a.Arg == nil {
			return value.TypeAny, nil
		}
		return a.Arg.TypeInfer(tc)
	default:
		return value.TypeAny, nil
	}
}
