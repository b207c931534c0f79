package validator

import (
	"strings"

	"github.com/graphlang/ngqlcore/ast"
	"github.com/graphlang/ngqlcore/plan"
	"github.com/graphlang/ngqlcore/value"
)

// validateExplain validates and lowers the wrapped sentence first, then
// wraps its plan in a plan.Explain requesting its description instead of
// its result.
func (v *Validator) validateExplain(s *ast.Explain) (plan.PlanNode, value.ColumnSchema, error) {
	switch strings.ToLower(s.Format) {
	case "", "row", "dot", "dot:struct":
	default:
		return nil, nil, ErrBadFormat.New(s.Format)
	}
	inner, _, err := v.validateSub(s.Inner)
	if err != nil {
		return nil, nil, err
	}
	format := s.Format
	if format == "" {
		format = "row"
	}
	n := plan.NewExplain(inner, s.Profile, format)
	return n, columnSchemaOf(n.ColNames()), nil
}

// validateSequential validates each sentence in order against the shared
// context, so catalog and symbol-table side effects carry forward. The
// sequential's output is its last sentence's; any sentence's error aborts
// the whole statement and discards the partial plan.
func (v *Validator) validateSequential(s *ast.Sequential) (plan.PlanNode, value.ColumnSchema, error) {
	var (
		root   plan.PlanNode
		schema value.ColumnSchema
	)
	for _, st := range s.Sentences {
		n, sch, err := v.validateSub(st)
		if err != nil {
			return nil, nil, err
		}
		if n != nil {
			root, schema = n, sch
		}
	}
	return root, schema, nil
}
