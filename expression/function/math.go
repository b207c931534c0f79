package function

import (
	"math"

	"github.com/graphlang/ngqlcore/value"
)

func unaryFloatFn(name string, f func(float64) float64) Entry {
	return Entry{
		Name: name, MinArity: 1, MaxArity: 1,
		ReturnTypeRule: func([]value.ValueType) (value.ValueType, error) { return value.TypeFloat, nil },
		Fn: func(args []value.Value) value.Value {
			if n, ok := anyNull(args); ok {
				return n
			}
			x, ok := argFloat(args[0])
			if !ok {
				return badType()
			}
			return value.Float(f(x))
		},
	}
}

func nullaryFloatFn(name string, f func() float64) Entry {
	return Entry{
		Name: name, MinArity: 0, MaxArity: 0,
		ReturnTypeRule: func([]value.ValueType) (value.ValueType, error) { return value.TypeFloat, nil },
		Fn: func([]value.Value) value.Value { return value.Float(f()) },
	}
}

func registerMath(r *Registry) {
	r.Register(Entry{
		Name: "abs", MinArity: 1, MaxArity: 1,
		ReturnTypeRule: func(t []value.ValueType) (value.ValueType, error) {
			if len(t) == 1 {
				return t[0], nil
			}
			return value.TypeAny, nil
		},
		Fn: func(args []value.Value) value.Value {
			if n, ok := anyNull(args); ok {
				return n
			}
			switch args[0].Kind() {
			case value.KindInt:
				i, _ := args[0].AsInt()
				if i < 0 {
					i = -i
				}
				return value.Int(i)
			case value.KindFloat:
				f, _ := args[0].AsFloat()
				return value.Float(math.Abs(f))
			default:
				return badType()
			}
		},
	})

	r.Register(unaryFloatFn("ceil", math.Ceil))
	r.Register(unaryFloatFn("floor", math.Floor))
	r.Register(unaryFloatFn("round", math.Round))
	r.Register(unaryFloatFn("sqrt", math.Sqrt))
	r.Register(unaryFloatFn("cbrt", math.Cbrt))
	r.Register(unaryFloatFn("exp", math.Exp))
	r.Register(unaryFloatFn("exp2", math.Exp2))
	r.Register(unaryFloatFn("log", math.Log))
	r.Register(unaryFloatFn("log2", math.Log2))
	r.Register(unaryFloatFn("log10", math.Log10))
	r.Register(unaryFloatFn("sin", math.Sin))
	r.Register(unaryFloatFn("cos", math.Cos))
	r.Register(unaryFloatFn("tan", math.Tan))
	r.Register(unaryFloatFn("asin", math.Asin))
	r.Register(unaryFloatFn("acos", math.Acos))
	r.Register(unaryFloatFn("atan", math.Atan))
	r.Register(unaryFloatFn("radians", func(x float64) float64 { return x * math.Pi / 180 }))

	r.Register(Entry{
		Name: "sign", MinArity: 1, MaxArity: 1,
		ReturnTypeRule: func([]value.ValueType) (value.ValueType, error) { return value.TypeInt, nil },
		Fn: func(args []value.Value) value.Value {
			if n, ok := anyNull(args); ok {
				return n
			}
			f, ok := argFloat(args[0])
			if !ok {
				return badType()
			}
			switch {
			case f > 0:
				return value.Int(1)
			case f < 0:
				return value.Int(-1)
			default:
				return value.Int(0)
			}
		},
	})

	r.Register(Entry{
		Name: "pow", MinArity: 2, MaxArity: 2,
		ReturnTypeRule: func([]value.ValueType) (value.ValueType, error) { return value.TypeFloat, nil },
		Fn: func(args []value.Value) value.Value {
			if n, ok := anyNull(args); ok {
				return n
			}
			x, ok1 := argFloat(args[0])
			y, ok2 := argFloat(args[1])
			if !ok1 || !ok2 {
				return badType()
			}
			return value.Float(math.Pow(x, y))
		},
	})

	r.Register(Entry{
		Name: "hypot", MinArity: 2, MaxArity: 2,
		ReturnTypeRule: func([]value.ValueType) (value.ValueType, error) { return value.TypeFloat, nil },
		Fn: func(args []value.Value) value.Value {
			if n, ok := anyNull(args); ok {
				return n
			}
			x, ok1 := argFloat(args[0])
			y, ok2 := argFloat(args[1])
			if !ok1 || !ok2 {
				return badType()
			}
			return value.Float(math.Hypot(x, y))
		},
	})

	r.Register(nullaryFloatFn("e", func() float64 { return math.E }))
	r.Register(nullaryFloatFn("pi", func() float64 { return math.Pi }))

	bitFn := func(name string, f func(a, b int64) int64) Entry {
		return Entry{
			Name: name, MinArity: 2, MaxArity: 2,
			ReturnTypeRule: func([]value.ValueType) (value.ValueType, error) { return value.TypeInt, nil },
			Fn: func(args []value.Value) value.Value {
				if n, ok := anyNull(args); ok {
					return n
				}
				a, ok1 := argInt(args[0])
				b, ok2 := argInt(args[1])
				if !ok1 || !ok2 {
					return badType()
				}
				return value.Int(f(a, b))
			},
		}
	}
	r.Register(bitFn("bit_and", func(a, b int64) int64 { return a & b }))
	r.Register(bitFn("bit_or", func(a, b int64) int64 { return a | b }))
	r.Register(bitFn("bit_xor", func(a, b int64) int64 { return a ^ b }))
}
