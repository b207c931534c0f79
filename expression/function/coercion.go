package function

import (
	"strings"

	"github.com/spf13/cast"

	"github.com/graphlang/ngqlcore/value"
)

// registerCoercion wires spf13/cast for the total-coercion builtins named
// in toBoolean is intentionally stricter than Go's strconv: only
// the case-insensitive literals "true"/"false" are accepted, any other
// string coerces to NullValue rather than attempting a broader parse.
func registerCoercion(r *Registry) {
	r.Register(Entry{
		Name: "toboolean", MinArity: 1, MaxArity: 1,
		ReturnTypeRule: func([]value.ValueType) (value.ValueType, error) { return value.TypeBool, nil },
		Fn: func(args []value.Value) value.Value {
			if n, ok := anyNull(args); ok {
				return n
			}
			switch args[0].Kind() {
			case value.KindBool:
				return args[0]
			case value.KindString:
				s, _ := args[0].AsString()
				switch strings.ToLower(s) {
				case "true":
					return value.Bool(true)
				case "false":
					return value.Bool(false)
				default:
					return value.Null()
				}
			default:
				return badType()
			}
		},
	})

	r.Register(Entry{
		Name: "tofloat", MinArity: 1, MaxArity: 1,
		ReturnTypeRule: func([]value.ValueType) (value.ValueType, error) { return value.TypeFloat, nil },
		Fn: func(args []value.Value) value.Value {
			if n, ok := anyNull(args); ok {
				return n
			}
			switch args[0].Kind() {
			case value.KindInt:
				i, _ := args[0].AsInt()
				return value.Float(float64(i))
			case value.KindFloat:
				return args[0]
			case value.KindString:
				s, _ := args[0].AsString()
				f, err := cast.ToFloat64E(s)
				if err != nil {
					return value.Null()
				}
				return value.Float(f)
			default:
				return badType()
			}
		},
	})

	r.Register(Entry{
		Name: "tointeger", MinArity: 1, MaxArity: 1,
		ReturnTypeRule: func([]value.ValueType) (value.ValueType, error) { return value.TypeInt, nil },
		Fn: func(args []value.Value) value.Value {
			if n, ok := anyNull(args); ok {
				return n
			}
			switch args[0].Kind() {
			case value.KindInt:
				return args[0]
			case value.KindFloat:
				f, _ := args[0].AsFloat()
				return value.Int(int64(f))
			case value.KindString:
				s, _ := args[0].AsString()
				i, err := cast.ToInt64E(strings.TrimSpace(s))
				if err != nil {
					return value.Null()
				}
				return value.Int(i)
			default:
				return badType()
			}
		},
	})
}
