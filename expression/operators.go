package expression

import (
	"regexp"
	"strings"

	"github.com/graphlang/ngqlcore/value"
)

// UnaryOp enumerates {+, -, !, NOT, IS NULL, IS NOT NULL}.
type UnaryOp uint8

const (
	UnaryPlus UnaryOp = iota
	UnaryMinus
	UnaryNot
	UnaryIsNull
	UnaryIsNotNull
)

type Unary struct {
	Op   UnaryOp
	Expr Expression
}

func NewUnary(op UnaryOp, e Expression) *Unary { return &Unary{Op: op, Expr: e} }

func (u *Unary) Kind() Kind             { return KindUnary }
func (u *Unary) Children() []Expression { return []Expression{u.Expr} }
func (u *Unary) Accept(v Visitor)       { v.Visit(u) }

func (u *Unary) Eval(ctx EvalContext) value.Value {
	operand := u.Expr.Eval(ctx)
	switch u.Op {
	case UnaryPlus:
		return value.Pos(operand)
	case UnaryMinus:
		return value.Neg(operand)
	case UnaryNot:
		return value.Not(operand)
	case UnaryIsNull:
		return value.Bool(operand.IsNull())
	case UnaryIsNotNull:
		return value.Bool(!operand.IsNull())
	default:
		return value.NullSentinel(value.NullBadType)
	}
}

func (u *Unary) String() string {
	switch u.Op {
	case UnaryPlus:
		return "(+" + u.Expr.String() + ")"
	case UnaryMinus:
		return "(-" + u.Expr.String() + ")"
	case UnaryNot:
		return "(!" + u.Expr.String() + ")"
	case UnaryIsNull:
		return "(" + u.Expr.String() + " IS NULL)"
	case UnaryIsNotNull:
		return "(" + u.Expr.String() + " IS NOT NULL)"
	default:
		return "?"
	}
}

func (u *Unary) TypeInfer(tc TypeContext) (value.ValueType, error) {
	if u.Op == UnaryIsNull || u.Op == UnaryIsNotNull {
		return value.TypeBool, nil
	}
	t, err := u.Expr.TypeInfer(tc)
	if err != nil {
		return value.TypeAny, err
	}
	if u.Op == UnaryNot {
		return value.TypeBool, nil
	}
	return t, nil
}

// ArithOp enumerates {+, -, *, /, %}.
type ArithOp uint8

const (
	ArithAdd ArithOp = iota
	ArithSub
	ArithMul
	ArithDiv
	ArithMod
)

var arithSymbols = [...]string{"+", "-", "*", "/", "%"}

type Arithmetic struct {
	Op          ArithOp
	Left, Right Expression
}

func NewArithmetic(op ArithOp, l, r Expression) *Arithmetic { return &Arithmetic{Op: op, Left: l, Right: r} }

func (a *Arithmetic) Kind() Kind             { return KindArithmetic }
func (a *Arithmetic) Children() []Expression { return []Expression{a.Left, a.Right} }
func (a *Arithmetic) Accept(v Visitor)       { v.Visit(a) }
func (a *Arithmetic) String() string {
	return "(" + a.Left.String() + " " + arithSymbols[a.Op] + " " + a.Right.String() + ")"
}

func (a *Arithmetic) Eval(ctx EvalContext) value.Value {
	l, r := a.Left.Eval(ctx), a.Right.Eval(ctx)
	switch a.Op {
	case ArithAdd:
		return value.Add(l, r)
	case ArithSub:
		return value.Sub(l, r)
	case ArithMul:
		return value.Mul(l, r)
	case ArithDiv:
		return value.Div(l, r)
	case ArithMod:
		return value.Mod(l, r)
	default:
		return value.NullSentinel(value.NullBadType)
	}
}

func (a *Arithmetic) TypeInfer(tc TypeContext) (value.ValueType, error) {
	lt, err := a.Left.TypeInfer(tc)
	if err != nil {
		return value.TypeAny, err
	}
	rt, err := a.Right.TypeInfer(tc)
	if err != nil {
		return value.TypeAny, err
	}
	if lt == value.TypeAny || rt == value.TypeAny {
		return value.TypeAny, nil
	}
	if a.Op == ArithAdd && lt == value.TypeString && rt == value.TypeString {
		return value.TypeString, nil
	}
	if a.Op == ArithAdd && lt == value.TypeList && rt == value.TypeList {
		return value.TypeList, nil
	}
	if value.IsNumericType(lt) && value.IsNumericType(rt) {
		if lt == value.TypeFloat || rt == value.TypeFloat {
			return value.TypeFloat, nil
		}
		return value.TypeInt, nil
	}
	return value.TypeAny, nil
}

// RelOp enumerates the relational operator family.
type RelOp uint8

const (
	RelLT RelOp = iota
	RelLE
	RelGT
	RelGE
	RelEQ
	RelNE
	RelIn
	RelNotIn
	RelContains
	RelStartsWith
	RelEndsWith
	RelRegex
)

var relSymbols = [...]string{"<", "<=", ">", ">=", "==", "!=", "IN", "NOT IN", "CONTAINS", "STARTS WITH", "ENDS WITH", "=~"}

type Relational struct {
	Op          RelOp
	Left, Right Expression
}

func NewRelational(op RelOp, l, r Expression) *Relational { return &Relational{Op: op, Left: l, Right: r} }

func (r *Relational) Kind() Kind             { return KindRelational }
func (r *Relational) Children() []Expression { return []Expression{r.Left, r.Right} }
func (r *Relational) Accept(v Visitor)       { v.Visit(r) }
func (r *Relational) String() string {
	return "(" + r.Left.String() + " " + relSymbols[r.Op] + " " + r.Right.String() + ")"
}

func (r *Relational) Eval(ctx EvalContext) value.Value {
	l, rv := r.Left.Eval(ctx), r.Right.Eval(ctx)
	switch r.Op {
	case RelLT:
		return value.Less(l, rv)
	case RelLE:
		return value.Not(value.Less(rv, l))
	case RelGT:
		return value.Less(rv, l)
	case RelGE:
		return value.Not(value.Less(l, rv))
	case RelEQ:
		return value.Equal(l, rv)
	case RelNE:
		return value.Not(value.Equal(l, rv))
	case RelIn, RelNotIn:
		return evalIn(l, rv, r.Op == RelNotIn)
	case RelContains:
		return evalContains(l, rv)
	case RelStartsWith:
		return evalStrPredicate(l, rv, strings.HasPrefix)
	case RelEndsWith:
		return evalStrPredicate(l, rv, strings.HasSuffix)
	case RelRegex:
		return evalRegex(l, rv)
	default:
		return value.NullSentinel(value.NullBadType)
	}
}

// evalIn implements IN/NOT IN: NULL propagates if the
// container has any NULL and the needle is not otherwise found.
func evalIn(needle, container value.Value, negate bool) value.Value {
	if needle.IsNull() {
		return needle
	}
	var elems []value.Value
	switch container.Kind() {
	case value.KindList:
		l, _ := container.AsList()
		elems = l.Elems
	case value.KindSet:
		s, _ := container.AsSet()
		elems = s.Elems
	case value.KindNull:
		return container
	default:
		return value.NullSentinel(value.NullBadType)
	}
	found := false
	sawNull := false
	for _, e := range elems {
		if e.IsNull() {
			sawNull = true
			continue
		}
		if value.Equal(needle, e) == value.Bool(true) {
			found = true
			break
		}
	}
	if found {
		return value.Bool(!negate)
	}
	if sawNull {
		return value.Null()
	}
	return value.Bool(negate)
}

func evalContains(haystack, needle value.Value) value.Value {
	if haystack.IsNull() || needle.IsNull() {
		return value.Null()
	}
	switch haystack.Kind() {
	case value.KindString:
		s, _ := haystack.AsString()
		n, ok := needle.AsString()
		if !ok {
			return value.NullSentinel(value.NullBadType)
		}
		return value.Bool(strings.Contains(s, n))
	case value.KindList:
		l, _ := haystack.AsList()
		for _, e := range l.Elems {
			if value.Equal(e, needle) == value.Bool(true) {
				return value.Bool(true)
			}
		}
		return value.Bool(false)
	default:
		return value.NullSentinel(value.NullBadType)
	}
}

// evalRegex implements =~: an invalid pattern yields
// NullBadData rather than propagating a compile error.
func evalRegex(l, r value.Value) value.Value {
	if l.IsNull() || r.IsNull() {
		return value.Null()
	}
	s, ok1 := l.AsString()
	pattern, ok2 := r.AsString()
	if !ok1 || !ok2 {
		return value.NullSentinel(value.NullBadType)
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return value.NullSentinel(value.NullBadData)
	}
	return value.Bool(re.MatchString(s))
}

func evalStrPredicate(l, r value.Value, f func(s, prefix string) bool) value.Value {
	if l.IsNull() || r.IsNull() {
		return value.Null()
	}
	ls, ok1 := l.AsString()
	rs, ok2 := r.AsString()
	if !ok1 || !ok2 {
		return value.NullSentinel(value.NullBadType)
	}
	return value.Bool(f(ls, rs))
}

func (r *Relational) TypeInfer(TypeContext) (value.ValueType, error) { return value.TypeBool, nil }

// LogicalOp enumerates {AND, OR, XOR}, three-valued.
type LogicalOp uint8

const (
	LogicalAnd LogicalOp = iota
	LogicalOr
	LogicalXor
)

type Logical struct {
	Op       LogicalOp
	Operands []Expression
}

func NewLogical(op LogicalOp, operands ...Expression) *Logical { return &Logical{Op: op, Operands: operands} }

func (l *Logical) Kind() Kind             { return KindLogical }
func (l *Logical) Children() []Expression { return l.Operands }
func (l *Logical) Accept(v Visitor)       { v.Visit(l) }

func (l *Logical) String() string {
	sym := map[LogicalOp]string{LogicalAnd: " AND ", LogicalOr: " OR ", LogicalXor: " XOR "}[l.Op]
	parts := make([]string, len(l.Operands))
	for i, o := range l.Operands {
		parts[i] = o.String()
	}
	return "(" + strings.Join(parts, sym) + ")"
}

func (l *Logical) Eval(ctx EvalContext) value.Value {
	if len(l.Operands) == 0 {
		return value.Bool(true)
	}
	acc := l.Operands[0].Eval(ctx)
	for _, o := range l.Operands[1:] {
		v := o.Eval(ctx)
		switch l.Op {
		case LogicalAnd:
			acc = value.And(acc, v)
		case LogicalOr:
			acc = value.Or(acc, v)
		case LogicalXor:
			acc = value.Xor(acc, v)
		}
	}
	return acc
}

func (l *Logical) TypeInfer(TypeContext) (value.ValueType, error) { return value.TypeBool, nil }

// TypeCast is the `(<type>)expr` coercion form.
type TypeCast struct {
	Target value.ValueType
	Expr   Expression
}

func NewTypeCast(t value.ValueType, e Expression) *TypeCast { return &TypeCast{Target: t, Expr: e} }

func (c *TypeCast) Kind() Kind             { return KindTypeCast }
func (c *TypeCast) Children() []Expression { return []Expression{c.Expr} }
func (c *TypeCast) Accept(v Visitor)       { v.Visit(c) }
func (c *TypeCast) String() string         { return "(" + c.Target.String() + ")" + c.Expr.String() }

func (c *TypeCast) Eval(ctx EvalContext) value.Value {
	v := c.Expr.Eval(ctx)
	switch c.Target {
	case value.TypeInt:
		return value.ToInt(v)
	case value.TypeFloat:
		return value.ToFloat(v)
	case value.TypeBool:
		return value.ToBool(v)
	case value.TypeString:
		return value.ToStringValue(v)
	default:
		return value.NullSentinel(value.NullBadType)
	}
}

func (c *TypeCast) TypeInfer(TypeContext) (value.ValueType, error) { return c.Target, nil }
