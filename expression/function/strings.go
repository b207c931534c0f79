package function

import (
	"strings"

	"github.com/graphlang/ngqlcore/value"
)

func registerString(r *Registry) {
	strFn := func(name string, f func(string) string) Entry {
		return Entry{
			Name: name, MinArity: 1, MaxArity: 1,
			ReturnTypeRule: func([]value.ValueType) (value.ValueType, error) { return value.TypeString, nil },
			Fn: func(args []value.Value) value.Value {
				if n, ok := anyNull(args); ok {
					return n
				}
				s, ok := argString(args[0])
				if !ok {
					return badType()
				}
				return value.Str(f(s))
			},
		}
	}
	r.Register(strFn("lower", strings.ToLower))
	r.Register(strFn("tolower", strings.ToLower))
	r.Register(strFn("upper", strings.ToUpper))
	r.Register(strFn("toupper", strings.ToUpper))
	r.Register(strFn("trim", strings.TrimSpace))
	r.Register(strFn("ltrim", func(s string) string { return strings.TrimLeft(s, " \t\n\r") }))
	r.Register(strFn("rtrim", func(s string) string { return strings.TrimRight(s, " \t\n\r") }))

	// reverse overloads both String and List.
	r.Register(Entry{
		Name: "reverse", MinArity: 1, MaxArity: 1,
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
			case value.KindString:
				s, _ := argString(args[0])
				rs := []rune(s)
				for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
					rs[i], rs[j] = rs[j], rs[i]
				}
				return value.Str(string(rs))
			case value.KindList:
				l, _ := args[0].AsList()
				out := make([]value.Value, len(l.Elems))
				for i, e := range l.Elems {
					out[len(l.Elems)-1-i] = e
				}
				return value.ListVal(&value.List{Elems: out})
			default:
				return badType()
			}
		},
	})

	r.Register(Entry{
		Name: "length", MinArity: 1, MaxArity: 1,
		ReturnTypeRule: func([]value.ValueType) (value.ValueType, error) { return value.TypeInt, nil },
		Fn: func(args []value.Value) value.Value {
			if n, ok := anyNull(args); ok {
				return n
			}
			switch args[0].Kind() {
			case value.KindString:
				s, _ := argString(args[0])
				return value.Int(int64(len([]rune(s))))
			case value.KindPath:
				p, _ := args[0].AsPath()
				return value.Int(int64(p.Length()))
			default:
				return badType()
			}
		},
	})

	r.Register(Entry{
		Name: "left", MinArity: 2, MaxArity: 2,
		ReturnTypeRule: func([]value.ValueType) (value.ValueType, error) { return value.TypeString, nil },
		Fn: func(args []value.Value) value.Value {
			if n, ok := anyNull(args); ok {
				return n
			}
			s, ok1 := argString(args[0])
			n, ok2 := argInt(args[1])
			if !ok1 || !ok2 {
				return badType()
			}
			if n < 0 {
				return badData()
			}
			rs := []rune(s)
			if n > int64(len(rs)) {
				n = int64(len(rs))
			}
			return value.Str(string(rs[:n]))
		},
	})

	r.Register(Entry{
		Name: "right", MinArity: 2, MaxArity: 2,
		ReturnTypeRule: func([]value.ValueType) (value.ValueType, error) { return value.TypeString, nil },
		Fn: func(args []value.Value) value.Value {
			if n, ok := anyNull(args); ok {
				return n
			}
			s, ok1 := argString(args[0])
			n, ok2 := argInt(args[1])
			if !ok1 || !ok2 {
				return badType()
			}
			if n < 0 {
				return badData()
			}
			rs := []rune(s)
			if n > int64(len(rs)) {
				n = int64(len(rs))
			}
			return value.Str(string(rs[int64(len(rs))-n:]))
		},
	})

	// substr(s, start[, len]): 0-indexed; negative length -> NullBadData.
	substr := func(args []value.Value) value.Value {
		if n, ok := anyNull(args); ok {
			return n
		}
		s, ok1 := argString(args[0])
		start, ok2 := argInt(args[1])
		if !ok1 || !ok2 {
			return badType()
		}
		rs := []rune(s)
		n := int64(len(rs))
		if start < 0 {
			start += n
		}
		if start < 0 {
			start = 0
		}
		end := n
		if len(args) == 3 {
			l, ok := argInt(args[2])
			if !ok {
				return badType()
			}
			if l < 0 {
				return badData()
			}
			end = start + l
		}
		if start > n {
			start = n
		}
		if end > n {
			end = n
		}
		if end < start {
			end = start
		}
		return value.Str(string(rs[start:end]))
	}
	r.Register(Entry{Name: "substr", MinArity: 2, MaxArity: 3,
		ReturnTypeRule: func([]value.ValueType) (value.ValueType, error) { return value.TypeString, nil }, Fn: substr})
	r.Register(Entry{Name: "substring", MinArity: 2, MaxArity: 3,
		ReturnTypeRule: func([]value.ValueType) (value.ValueType, error) { return value.TypeString, nil }, Fn: substr})

	padFn := func(name string, left bool) Entry {
		return Entry{
			Name: name, MinArity: 3, MaxArity: 3,
			ReturnTypeRule: func([]value.ValueType) (value.ValueType, error) { return value.TypeString, nil },
			Fn: func(args []value.Value) value.Value {
				if n, ok := anyNull(args); ok {
					return n
				}
				s, ok1 := argString(args[0])
				n, ok2 := argInt(args[1])
				pad, ok3 := argString(args[2])
				if !ok1 || !ok2 || !ok3 || pad == "" {
					return badType()
				}
				rs := []rune(s)
				if int64(len(rs)) >= n {
					if left {
						return value.Str(string(rs[int64(len(rs))-n:]))
					}
					return value.Str(string(rs[:n]))
				}
				need := n - int64(len(rs))
				var b strings.Builder
				for int64(b.Len()) < need {
					b.WriteString(pad)
				}
				padding := []rune(b.String())[:need]
				if left {
					return value.Str(string(padding) + s)
				}
				return value.Str(s + string(padding))
			},
		}
	}
	r.Register(padFn("lpad", true))
	r.Register(padFn("rpad", false))

	r.Register(Entry{
		Name: "replace", MinArity: 3, MaxArity: 3,
		ReturnTypeRule: func([]value.ValueType) (value.ValueType, error) { return value.TypeString, nil },
		Fn: func(args []value.Value) value.Value {
			if n, ok := anyNull(args); ok {
				return n
			}
			s, ok1 := argString(args[0])
			old, ok2 := argString(args[1])
			nw, ok3 := argString(args[2])
			if !ok1 || !ok2 || !ok3 {
				return badType()
			}
			return value.Str(strings.ReplaceAll(s, old, nw))
		},
	})

	r.Register(Entry{
		Name: "split", MinArity: 2, MaxArity: 2,
		ReturnTypeRule: func([]value.ValueType) (value.ValueType, error) { return value.TypeList, nil },
		Fn: func(args []value.Value) value.Value {
			if n, ok := anyNull(args); ok {
				return n
			}
			s, ok1 := argString(args[0])
			sep, ok2 := argString(args[1])
			if !ok1 || !ok2 {
				return badType()
			}
			parts := strings.Split(s, sep)
			out := make([]value.Value, len(parts))
			for i, p := range parts {
				out[i] = value.Str(p)
			}
			return value.ListVal(&value.List{Elems: out})
		},
	})

	r.Register(Entry{
		Name: "tostring", MinArity: 1, MaxArity: 1,
		ReturnTypeRule: func([]value.ValueType) (value.ValueType, error) { return value.TypeString, nil },
		Fn: func(args []value.Value) value.Value { return value.ToStringValue(args[0]) },
	})

	r.Register(Entry{
		Name: "strcasecmp", MinArity: 2, MaxArity: 2,
		ReturnTypeRule: func([]value.ValueType) (value.ValueType, error) { return value.TypeInt, nil },
		Fn: func(args []value.Value) value.Value {
			if n, ok := anyNull(args); ok {
				return n
			}
			a, ok1 := argString(args[0])
			b, ok2 := argString(args[1])
			if !ok1 || !ok2 {
				return badType()
			}
			return value.Int(int64(strings.Compare(strings.ToLower(a), strings.ToLower(b))))
		},
	})
}
