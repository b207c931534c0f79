package function

import "github.com/graphlang/ngqlcore/value"

// registerList implements the list-manipulation family:
// head, last, tail, coalesce, range. reverse/length also apply to List but
// are registered in strings.go since they are shared string/list overloads.
func registerList(r *Registry) {
	r.Register(Entry{
		Name: "head", MinArity: 1, MaxArity: 1,
		ReturnTypeRule: func([]value.ValueType) (value.ValueType, error) { return value.TypeAny, nil },
		Fn: func(args []value.Value) value.Value {
			if n, ok := anyNull(args); ok {
				return n
			}
			l, ok := args[0].AsList()
			if !ok {
				return badType()
			}
			if len(l.Elems) == 0 {
				return value.Null()
			}
			return l.Elems[0]
		},
	})

	r.Register(Entry{
		Name: "last", MinArity: 1, MaxArity: 1,
		ReturnTypeRule: func([]value.ValueType) (value.ValueType, error) { return value.TypeAny, nil },
		Fn: func(args []value.Value) value.Value {
			if n, ok := anyNull(args); ok {
				return n
			}
			l, ok := args[0].AsList()
			if !ok {
				return badType()
			}
			if len(l.Elems) == 0 {
				return value.Null()
			}
			return l.Elems[len(l.Elems)-1]
		},
	})

	r.Register(Entry{
		Name: "tail", MinArity: 1, MaxArity: 1,
		ReturnTypeRule: func([]value.ValueType) (value.ValueType, error) { return value.TypeList, nil },
		Fn: func(args []value.Value) value.Value {
			if n, ok := anyNull(args); ok {
				return n
			}
			l, ok := args[0].AsList()
			if !ok {
				return badType()
			}
			if len(l.Elems) == 0 {
				return value.ListVal(&value.List{})
			}
			out := make([]value.Value, len(l.Elems)-1)
			copy(out, l.Elems[1:])
			return value.ListVal(&value.List{Elems: out})
		},
	})

	// coalesce returns the first non-NULL argument, or Null if every
	// argument is NULL. Unlike other callables it does not short-circuit on
	// NULL at the front since NULL itself is the value it skips past.
	r.Register(Entry{
		Name: "coalesce", MinArity: 1, MaxArity: -1,
		ReturnTypeRule: func([]value.ValueType) (value.ValueType, error) { return value.TypeAny, nil },
		Fn: func(args []value.Value) value.Value {
			for _, a := range args {
				if !a.IsNull() {
					return a
				}
			}
			return value.Null()
		},
	})

	// range(start, end[, step]) builds an inclusive integer sequence. A
	// step of 0 is rejected as NullBadData; the sign of step must agree
	// with the direction from start to end or the range is empty.
	r.Register(Entry{
		Name: "range", MinArity: 2, MaxArity: 3,
		ReturnTypeRule: func([]value.ValueType) (value.ValueType, error) { return value.TypeList, nil },
		Fn: func(args []value.Value) value.Value {
			if n, ok := anyNull(args); ok {
				return n
			}
			start, ok1 := argInt(args[0])
			end, ok2 := argInt(args[1])
			if !ok1 || !ok2 {
				return badType()
			}
			step := int64(1)
			if len(args) == 3 {
				s, ok := argInt(args[2])
				if !ok {
					return badType()
				}
				step = s
			}
			if step == 0 {
				return badData()
			}
			var out []value.Value
			if step > 0 {
				for i := start; i <= end; i += step {
					out = append(out, value.Int(i))
				}
			} else {
				for i := start; i >= end; i += step {
					out = append(out, value.Int(i))
				}
			}
			return value.ListVal(&value.List{Elems: out})
		},
	})
}
