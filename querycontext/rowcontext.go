package querycontext

import (
	uuid "github.com/satori/go.uuid"

	"github.com/graphlang/ngqlcore/expression"
	"github.com/graphlang/ngqlcore/expression/function"
	"github.com/graphlang/ngqlcore/value"
)

// RowContext is a minimal expression.EvalContext over one in-memory row: the
// reference implementation this module provides so a caller can run
// Eval(ctx) on a validated plan's expressions without the external execution
// engine. Evaluating one row's expressions is not the same as running the
// distributed traversal that produces rows; the latter stays external.
type RowContext struct {
	Input    map[string]value.Value
	Variable map[string]map[string]value.Value
	Src      map[string]map[string]value.Value
	Dst      map[string]map[string]value.Value
	Edge     map[string]map[string]value.Value
	Columns  []value.Value

	registry *function.Registry
	uuidSeed string
}

// NewRowContext builds an empty RowContext backed by reg, minting one UUID
// seed for the lifetime of this context (one query invocation).
func NewRowContext(reg *function.Registry) *RowContext {
	return &RowContext{
		Input:    map[string]value.Value{},
		Variable: map[string]map[string]value.Value{},
		Src:      map[string]map[string]value.Value{},
		Dst:      map[string]map[string]value.Value{},
		Edge:     map[string]map[string]value.Value{},
		registry: reg,
		uuidSeed: uuid.NewV4().String(),
	}
}

func (r *RowContext) GetInput(col string) value.Value {
	if v, ok := r.Input[col]; ok {
		return v
	}
	return value.Null()
}

func (r *RowContext) GetVariable(v, col string) value.Value {
	if cols, ok := r.Variable[v]; ok {
		if val, ok := cols[col]; ok {
			return val
		}
	}
	return value.Null()
}

func (r *RowContext) GetSrc(tag, prop string) value.Value { return lookup2(r.Src, tag, prop) }
func (r *RowContext) GetDst(tag, prop string) value.Value { return lookup2(r.Dst, tag, prop) }
func (r *RowContext) GetEdge(alias, prop string) value.Value { return lookup2(r.Edge, alias, prop) }

func (r *RowContext) GetColumn(index int) value.Value {
	if index < 0 || index >= len(r.Columns) {
		return value.Null()
	}
	return r.Columns[index]
}

func (r *RowContext) Functions() expression.FunctionRegistry { return r.registry }
func (r *RowContext) UUIDSeed() string                       { return r.uuidSeed }

func lookup2(m map[string]map[string]value.Value, outer, inner string) value.Value {
	if cols, ok := m[outer]; ok {
		if v, ok := cols[inner]; ok {
			return v
		}
	}
	return value.Null()
}
