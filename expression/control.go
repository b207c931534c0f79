package expression

import (
	"strings"

	"github.com/graphlang/ngqlcore/value"
)

// WhenThen is one WHEN/THEN arm of a CaseExpression.
type WhenThen struct {
	When Expression
	Then Expression
}

// CaseExpression implements `CASE [condition] WHEN v THEN r ... ELSE e END`.
// When Condition is non-nil this is the "simple" CASE form comparing
// Condition to each arm's When; otherwise each arm's When is itself a
// boolean predicate ("searched" CASE). The first matching arm wins.
type CaseExpression struct {
	Condition Expression // nil for the searched form
	Arms      []WhenThen
	Else      Expression // nil if absent; absent+no-match evaluates to NULL
}

func (c *CaseExpression) Kind() Kind { return KindCase }
func (c *CaseExpression) Children() []Expression {
	out := []Expression{}
	if c.Condition != nil {
		out = append(out, c.Condition)
	}
	for _, a := range c.Arms {
		out = append(out, a.When, a.Then)
	}
	if c.Else != nil {
		out = append(out, c.Else)
	}
	return out
}
func (c *CaseExpression) Accept(v Visitor) { v.Visit(c) }
func (c *CaseExpression) String() string {
	var sb strings.Builder
	sb.WriteString("CASE ")
	if c.Condition != nil {
		sb.WriteString(c.Condition.String() + " ")
	}
	for _, a := range c.Arms {
		sb.WriteString("WHEN " + a.When.String() + " THEN " + a.Then.String() + " ")
	}
	if c.Else != nil {
		sb.WriteString("ELSE " + c.Else.String() + " ")
	}
	sb.WriteString("END")
	return sb.String()
}

func (c *CaseExpression) Eval(ctx EvalContext) value.Value {
	var cond value.Value
	if c.Condition != nil {
		cond = c.Condition.Eval(ctx)
	}
	for _, a := range c.Arms {
		w := a.When.Eval(ctx)
		matched := false
		if c.Condition != nil {
			matched = value.Equal(cond, w) == value.Bool(true)
		} else {
			matched = w == value.Bool(true)
		}
		if matched {
			return a.Then.Eval(ctx)
		}
	}
	if c.Else != nil {
		return c.Else.Eval(ctx)
	}
	return value.Null()
}

func (c *CaseExpression) TypeInfer(tc TypeContext) (value.ValueType, error) {
	if len(c.Arms) == 0 {
		return value.TypeAny, nil
	}
	first, err := c.Arms[0].Then.TypeInfer(tc)
	if err != nil {
		return value.TypeAny, err
	}
	for _, a := range c.Arms[1:] {
		t, err := a.Then.TypeInfer(tc)
		if err != nil {
			return value.TypeAny, err
		}
		if t != first {
			return value.TypeAny, nil
		}
	}
	return first, nil
}

// PredicateOp enumerates {all, any, none, single}
type PredicateOp uint8

const (
	PredAll PredicateOp = iota
	PredAny
	PredNone
	PredSingle
)

var predNames = [...]string{"all", "any", "none", "single"}

// PredicateExpression implements `all|any|none|single(var IN list WHERE pred)`.
type PredicateExpression struct {
	Op   PredicateOp
	Var  string
	List Expression
	Pred Expression
}

func (p *PredicateExpression) Kind() Kind { return KindPredicate }
func (p *PredicateExpression) Children() []Expression { return []Expression{p.List, p.Pred} }
func (p *PredicateExpression) Accept(v Visitor)       { v.Visit(p) }
func (p *PredicateExpression) String() string {
	return predNames[p.Op] + "(" + p.Var + " IN " + p.List.String() + " WHERE " + p.Pred.String() + ")"
}

func (p *PredicateExpression) Eval(ctx EvalContext) value.Value {
	lv := p.List.Eval(ctx)
	if lv.IsNull() {
		return value.Null()
	}
	l, ok := lv.AsList()
	if !ok {
		return value.NullSentinel(value.NullBadType)
	}
	count := 0
	for _, e := range l.Elems {
		sub := &comprehensionCtx{EvalContext: ctx, varName: p.Var, varVal: e}
		r := p.Pred.Eval(sub)
		if r == value.Bool(true) {
			count++
		}
	}
	switch p.Op {
	case PredAll:
		return value.Bool(count == len(l.Elems))
	case PredAny:
		return value.Bool(count > 0)
	case PredNone:
		return value.Bool(count == 0)
	case PredSingle:
		return value.Bool(count == 1)
	default:
		return value.NullSentinel(value.NullBadType)
	}
}

func (p *PredicateExpression) TypeInfer(TypeContext) (value.ValueType, error) { return value.TypeBool, nil }

// comprehensionCtx shadows a single loop-bound variable inside a
// PredicateExpression/ReduceExpression/ListComprehension body. It is
// addressed purely through GetVariable with the reserved column name
// "" (empty): the loop variable is a single-column synthetic variable.
type comprehensionCtx struct {
	EvalContext
	varName string
	varVal  value.Value
	accName string
	accVal  value.Value
}

func (c *comprehensionCtx) GetVariable(v, col string) value.Value {
	if v == c.varName {
		return c.varVal
	}
	if v == c.accName {
		return c.accVal
	}
	return c.EvalContext.GetVariable(v, col)
}

// ReduceExpression implements `reduce(acc = init, var IN list | expr)`: a
// left fold.
type ReduceExpression struct {
	AccName string
	Init    Expression
	Var     string
	List    Expression
	Expr    Expression
}

func (r *ReduceExpression) Kind() Kind { return KindReduce }
func (r *ReduceExpression) Children() []Expression {
	return []Expression{r.Init, r.List, r.Expr}
}
func (r *ReduceExpression) Accept(v Visitor) { v.Visit(r) }
func (r *ReduceExpression) String() string {
	return "reduce(" + r.AccName + " = " + r.Init.String() + ", " + r.Var + " IN " + r.List.String() + " | " + r.Expr.String() + ")"
}

func (r *ReduceExpression) Eval(ctx EvalContext) value.Value {
	lv := r.List.Eval(ctx)
	if lv.IsNull() {
		return value.Null()
	}
	l, ok := lv.AsList()
	if !ok {
		return value.NullSentinel(value.NullBadType)
	}
	acc := r.Init.Eval(ctx)
	for _, e := range l.Elems {
		sub := &comprehensionCtx{EvalContext: ctx, varName: r.Var, varVal: e, accName: r.AccName, accVal: acc}
		acc = r.Expr.Eval(sub)
	}
	return acc
}

func (r *ReduceExpression) TypeInfer(tc TypeContext) (value.ValueType, error) {
	return r.Init.TypeInfer(tc)
}

// ListComprehension implements `[var IN list [WHERE pred] [| mapExpr]]`.
type ListComprehension struct {
	Var     string
	List    Expression
	Where   Expression // nil if absent
	MapExpr Expression // nil means identity (the loop variable itself)
}

func (c *ListComprehension) Kind() Kind { return KindListComprehension }
func (c *ListComprehension) Children() []Expression {
	out := []Expression{c.List}
	if c.Where != nil {
		out = append(out, c.Where)
	}
	if c.MapExpr != nil {
		out = append(out, c.MapExpr)
	}
	return out
}
func (c *ListComprehension) Accept(v Visitor) { v.Visit(c) }
func (c *ListComprehension) String() string {
	s := "[" + c.Var + " IN " + c.List.String()
	if c.Where != nil {
		s += " WHERE " + c.Where.String()
	}
	if c.MapExpr != nil {
		s += " | " + c.MapExpr.String()
	}
	return s + "]"
}

func (c *ListComprehension) Eval(ctx EvalContext) value.Value {
	lv := c.List.Eval(ctx)
	if lv.IsNull() {
		return value.Null()
	}
	l, ok := lv.AsList()
	if !ok {
		return value.NullSentinel(value.NullBadType)
	}
	out := make([]value.Value, 0, len(l.Elems))
	for _, e := range l.Elems {
		sub := &comprehensionCtx{EvalContext: ctx, varName: c.Var, varVal: e}
		if c.Where != nil {
			if c.Where.Eval(sub) != value.Bool(true) {
				continue
			}
		}
		if c.MapExpr != nil {
			out = append(out, c.MapExpr.Eval(sub))
		} else {
			out = append(out, e)
		}
	}
	return value.ListVal(&value.List{Elems: out})
}

func (c *ListComprehension) TypeInfer(TypeContext) (value.ValueType, error) { return value.TypeList, nil }
