package function

import "github.com/graphlang/ngqlcore/value"

// registerDataSet implements dataSetRowCol, a bounds-checked
// accessor into a materialized DataSet result.
func registerDataSet(r *Registry) {
	r.Register(Entry{
		Name: "datasetrowcol", MinArity: 3, MaxArity: 3,
		ReturnTypeRule: func([]value.ValueType) (value.ValueType, error) { return value.TypeAny, nil },
		Fn: func(args []value.Value) value.Value {
			if n, ok := anyNull(args); ok {
				return n
			}
			d, ok := args[0].AsDataSet()
			if !ok {
				return badType()
			}
			row, ok1 := argInt(args[1])
			col, ok2 := argInt(args[2])
			if !ok1 || !ok2 {
				return badType()
			}
			return d.RowCol(int(row), int(col))
		},
	})
}
