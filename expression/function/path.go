package function

import "github.com/graphlang/ngqlcore/value"

// registerPath implements the path family: hasSameVertexInPath,
// hasSameEdgeInPath, reversePath.
func registerPath(r *Registry) {
	r.Register(Entry{
		Name: "hassamevertexinpath", MinArity: 1, MaxArity: 1,
		ReturnTypeRule: func([]value.ValueType) (value.ValueType, error) { return value.TypeBool, nil },
		Fn: func(args []value.Value) value.Value {
			if n, ok := anyNull(args); ok {
				return n
			}
			p, ok := args[0].AsPath()
			if !ok {
				return badType()
			}
			nodes := p.Nodes()
			for i := 0; i < len(nodes); i++ {
				for j := i + 1; j < len(nodes); j++ {
					if nodes[i].Equal(&nodes[j]) {
						return value.Bool(true)
					}
				}
			}
			return value.Bool(false)
		},
	})

	r.Register(Entry{
		Name: "hassameedgeinpath", MinArity: 1, MaxArity: 1,
		ReturnTypeRule: func([]value.ValueType) (value.ValueType, error) { return value.TypeBool, nil },
		Fn: func(args []value.Value) value.Value {
			if n, ok := anyNull(args); ok {
				return n
			}
			p, ok := args[0].AsPath()
			if !ok {
				return badType()
			}
			edges := p.Relationships()
			for i := 0; i < len(edges); i++ {
				for j := i + 1; j < len(edges); j++ {
					if edges[i].Equal(edges[j]) {
						return value.Bool(true)
					}
				}
			}
			return value.Bool(false)
		},
	})

	r.Register(Entry{
		Name: "reversepath", MinArity: 1, MaxArity: 1,
		ReturnTypeRule: func([]value.ValueType) (value.ValueType, error) { return value.TypePath, nil },
		Fn: func(args []value.Value) value.Value {
			if n, ok := anyNull(args); ok {
				return n
			}
			p, ok := args[0].AsPath()
			if !ok {
				return badType()
			}
			return value.PathVal(p.Reversed())
		},
	})
}
