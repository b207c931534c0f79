package function

import "github.com/graphlang/ngqlcore/value"

// registerSchema implements the schema-introspection family:
// id, tags/labels, type, typeid, src, dst, rank, properties, keys,
// startNode, endNode, nodes, relationships, length (length lives in
// strings.go since it is also defined over String).
func registerSchema(r *Registry) {
	r.Register(Entry{
		Name: "id", MinArity: 1, MaxArity: 1,
		ReturnTypeRule: func([]value.ValueType) (value.ValueType, error) { return value.TypeAny, nil },
		Fn: func(args []value.Value) value.Value {
			if n, ok := anyNull(args); ok {
				return n
			}
			if vx, ok := args[0].AsVertex(); ok {
				return vx.ID
			}
			return badType()
		},
	})

	tagNamesFn := func(args []value.Value) value.Value {
		if n, ok := anyNull(args); ok {
			return n
		}
		vx, ok := args[0].AsVertex()
		if !ok {
			return badType()
		}
		out := make([]value.Value, len(vx.Tags))
		for i, t := range vx.Tags {
			out[i] = value.Str(t.Name)
		}
		return value.ListVal(&value.List{Elems: out})
	}
	r.Register(Entry{Name: "tags", MinArity: 1, MaxArity: 1,
		ReturnTypeRule: func([]value.ValueType) (value.ValueType, error) { return value.TypeList, nil }, Fn: tagNamesFn})
	r.Register(Entry{Name: "labels", MinArity: 1, MaxArity: 1,
		ReturnTypeRule: func([]value.ValueType) (value.ValueType, error) { return value.TypeList, nil }, Fn: tagNamesFn})

	r.Register(Entry{
		Name: "type", MinArity: 1, MaxArity: 1,
		ReturnTypeRule: func([]value.ValueType) (value.ValueType, error) { return value.TypeString, nil },
		Fn: func(args []value.Value) value.Value {
			if n, ok := anyNull(args); ok {
				return n
			}
			if e, ok := args[0].AsEdge(); ok {
				return value.Str(e.Name)
			}
			return badType()
		},
	})

	r.Register(Entry{
		Name: "typeid", MinArity: 1, MaxArity: 1,
		ReturnTypeRule: func([]value.ValueType) (value.ValueType, error) { return value.TypeInt, nil },
		Fn: func(args []value.Value) value.Value {
			if n, ok := anyNull(args); ok {
				return n
			}
			if e, ok := args[0].AsEdge(); ok {
				return value.Int(int64(e.Type))
			}
			return badType()
		},
	})

	r.Register(Entry{
		Name: "src", MinArity: 1, MaxArity: 1,
		ReturnTypeRule: func([]value.ValueType) (value.ValueType, error) { return value.TypeAny, nil },
		Fn: func(args []value.Value) value.Value {
			if n, ok := anyNull(args); ok {
				return n
			}
			if e, ok := args[0].AsEdge(); ok {
				return e.Src
			}
			return badType()
		},
	})

	r.Register(Entry{
		Name: "dst", MinArity: 1, MaxArity: 1,
		ReturnTypeRule: func([]value.ValueType) (value.ValueType, error) { return value.TypeAny, nil },
		Fn: func(args []value.Value) value.Value {
			if n, ok := anyNull(args); ok {
				return n
			}
			if e, ok := args[0].AsEdge(); ok {
				return e.Dst
			}
			return badType()
		},
	})

	r.Register(Entry{
		Name: "rank", MinArity: 1, MaxArity: 1,
		ReturnTypeRule: func([]value.ValueType) (value.ValueType, error) { return value.TypeInt, nil },
		Fn: func(args []value.Value) value.Value {
			if n, ok := anyNull(args); ok {
				return n
			}
			if e, ok := args[0].AsEdge(); ok {
				return value.Int(e.Rank)
			}
			return badType()
		},
	})

	r.Register(Entry{
		Name: "properties", MinArity: 1, MaxArity: 1,
		ReturnTypeRule: func([]value.ValueType) (value.ValueType, error) { return value.TypeMap, nil },
		Fn: func(args []value.Value) value.Value {
			if n, ok := anyNull(args); ok {
				return n
			}
			m := value.NewMap()
			switch args[0].Kind() {
			case value.KindVertex:
				vx, _ := args[0].AsVertex()
				for k, v := range vx.FlattenedProps() {
					m.Set(k, v)
				}
			case value.KindEdge:
				e, _ := args[0].AsEdge()
				for k, v := range e.Props {
					m.Set(k, v)
				}
			case value.KindMap:
				return args[0]
			default:
				return badType()
			}
			return value.MapVal(m)
		},
	})

	r.Register(Entry{
		Name: "keys", MinArity: 1, MaxArity: 1,
		ReturnTypeRule: func([]value.ValueType) (value.ValueType, error) { return value.TypeList, nil },
		Fn: func(args []value.Value) value.Value {
			if n, ok := anyNull(args); ok {
				return n
			}
			m, ok := args[0].AsMap()
			if !ok {
				return badType()
			}
			out := make([]value.Value, len(m.Keys()))
			for i, k := range m.Keys() {
				out[i] = value.Str(k)
			}
			return value.ListVal(&value.List{Elems: out})
		},
	})

	r.Register(Entry{
		Name: "startnode", MinArity: 1, MaxArity: 1,
		ReturnTypeRule: func([]value.ValueType) (value.ValueType, error) { return value.TypeVertex, nil },
		Fn: func(args []value.Value) value.Value {
			if n, ok := anyNull(args); ok {
				return n
			}
			p, ok := args[0].AsPath()
			if !ok {
				return badType()
			}
			return value.VertexVal(&p.Src)
		},
	})

	r.Register(Entry{
		Name: "endnode", MinArity: 1, MaxArity: 1,
		ReturnTypeRule: func([]value.ValueType) (value.ValueType, error) { return value.TypeVertex, nil },
		Fn: func(args []value.Value) value.Value {
			if n, ok := anyNull(args); ok {
				return n
			}
			p, ok := args[0].AsPath()
			if !ok {
				return badType()
			}
			nodes := p.Nodes()
			return value.VertexVal(&nodes[len(nodes)-1])
		},
	})

	r.Register(Entry{
		Name: "nodes", MinArity: 1, MaxArity: 1,
		ReturnTypeRule: func([]value.ValueType) (value.ValueType, error) { return value.TypeList, nil },
		Fn: func(args []value.Value) value.Value {
			if n, ok := anyNull(args); ok {
				return n
			}
			p, ok := args[0].AsPath()
			if !ok {
				return badType()
			}
			nodes := p.Nodes()
			out := make([]value.Value, len(nodes))
			for i := range nodes {
				out[i] = value.VertexVal(&nodes[i])
			}
			return value.ListVal(&value.List{Elems: out})
		},
	})

	r.Register(Entry{
		Name: "relationships", MinArity: 1, MaxArity: 1,
		ReturnTypeRule: func([]value.ValueType) (value.ValueType, error) { return value.TypeList, nil },
		Fn: func(args []value.Value) value.Value {
			if n, ok := anyNull(args); ok {
				return n
			}
			p, ok := args[0].AsPath()
			if !ok {
				return badType()
			}
			edges := p.Relationships()
			out := make([]value.Value, len(edges))
			for i, e := range edges {
				out[i] = value.EdgeVal(e)
			}
			return value.ListVal(&value.List{Elems: out})
		},
	})
}
