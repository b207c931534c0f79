package expression

import "github.com/graphlang/ngqlcore/value"

// Constant wraps a literal Value parsed directly from surface syntax.
type Constant struct {
	Value value.Value
}

func NewConstant(v value.Value) *Constant { return &Constant{Value: v} }

func (c *Constant) Kind() Kind                    { return KindConstant }
func (c *Constant) Eval(EvalContext) value.Value  { return c.Value }
func (c *Constant) Children() []Expression        { return nil }
func (c *Constant) String() string                { return c.Value.String() }
func (c *Constant) Accept(v Visitor)              { v.Visit(c) }

func (c *Constant) TypeInfer(TypeContext) (value.ValueType, error) {
	return value.TypeOf(c.Value), nil
}
