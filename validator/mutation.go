package validator

import (
	"github.com/graphlang/ngqlcore/ast"
	"github.com/graphlang/ngqlcore/auth"
	"github.com/graphlang/ngqlcore/catalog"
	"github.com/graphlang/ngqlcore/expression"
	"github.com/graphlang/ngqlcore/plan"
	"github.com/graphlang/ngqlcore/value"
)

// checkTagPropNames rejects a property name the tag schema doesn't declare.
func checkTagPropNames(schema *catalog.TagSchema, names []string) error {
	for _, name := range names {
		found := false
		for _, p := range schema.Props {
			if p.Name == name {
				found = true
				break
			}
		}
		if !found {
			return ErrColumnNotFound.New(name)
		}
	}
	return nil
}

func checkEdgePropNames(schema *catalog.EdgeSchema, names []string) error {
	for _, name := range names {
		found := false
		for _, p := range schema.Props {
			if p.Name == name {
				found = true
				break
			}
		}
		if !found {
			return ErrColumnNotFound.New(name)
		}
	}
	return nil
}

func (v *Validator) validateInsertVertices(s *ast.InsertVertices) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.requireSpace(); err != nil {
		return nil, nil, err
	}
	if err := v.checkPerm(auth.PrecondDataWrite, "INSERT VERTEX"); err != nil {
		return nil, nil, err
	}
	for tag, props := range s.TagProps {
		schema, err := v.ctx.Catalog.TagSchema(v.ctx.Space, tag)
		if err != nil {
			return nil, nil, err
		}
		if err := checkTagPropNames(schema, props); err != nil {
			return nil, nil, err
		}
	}
	var rows []plan.VertexWrite
	for _, row := range s.Rows {
		for _, tv := range row.Tags {
			rows = append(rows, plan.VertexWrite{VID: row.VID, Tag: tv.Tag, Vals: tv.Values})
		}
	}
	return plan.NewInsertVertices(rows, s.Overwrite), nil, nil
}

func (v *Validator) validateInsertEdges(s *ast.InsertEdges) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.requireSpace(); err != nil {
		return nil, nil, err
	}
	if err := v.checkPerm(auth.PrecondDataWrite, "INSERT EDGE"); err != nil {
		return nil, nil, err
	}
	schema, err := v.ctx.Catalog.EdgeSchema(v.ctx.Space, s.EdgeType)
	if err != nil {
		return nil, nil, err
	}
	if err := checkEdgePropNames(schema, s.Props); err != nil {
		return nil, nil, err
	}
	rows := make([]plan.EdgeWrite, len(s.Rows))
	for i, r := range s.Rows {
		rows[i] = plan.EdgeWrite{Src: r.Src, Dst: r.Dst, Rank: r.Rank, Vals: r.Values}
	}
	return plan.NewInsertEdges(s.EdgeType, rows, s.Overwrite), nil, nil
}

func (v *Validator) validateUpdateVertex(s *ast.UpdateVertex) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.requireSpace(); err != nil {
		return nil, nil, err
	}
	if err := v.checkPerm(auth.PrecondDataWrite, "UPDATE VERTEX"); err != nil {
		return nil, nil, err
	}
	schema, err := v.ctx.Catalog.TagSchema(v.ctx.Space, s.Tag)
	if err != nil {
		return nil, nil, err
	}
	names := make([]string, len(s.Items))
	for i, it := range s.Items {
		names[i] = it.Property
	}
	if err := checkTagPropNames(schema, names); err != nil {
		return nil, nil, err
	}
	items := make([]plan.UpdateItem, len(s.Items))
	for i, it := range s.Items {
		items[i] = plan.UpdateItem{Property: it.Property, Value: it.Value}
	}
	var when expression.Expression
	if s.When != nil {
		when = s.When.Filter
	}
	tc := newTypeContext(v.ctx)
	cols, schemaOut, _, err := buildProjection(tc, s.Yield, nil)
	if err != nil {
		return nil, nil, err
	}
	n := plan.NewUpdateVertex(s.Upsert, s.Tag, s.VID, items, when, cols)
	return n, schemaOut, nil
}

func (v *Validator) validateUpdateEdge(s *ast.UpdateEdge) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.requireSpace(); err != nil {
		return nil, nil, err
	}
	if err := v.checkPerm(auth.PrecondDataWrite, "UPDATE EDGE"); err != nil {
		return nil, nil, err
	}
	schema, err := v.ctx.Catalog.EdgeSchema(v.ctx.Space, s.EdgeType)
	if err != nil {
		return nil, nil, err
	}
	names := make([]string, len(s.Items))
	for i, it := range s.Items {
		names[i] = it.Property
	}
	if err := checkEdgePropNames(schema, names); err != nil {
		return nil, nil, err
	}
	items := make([]plan.UpdateItem, len(s.Items))
	for i, it := range s.Items {
		items[i] = plan.UpdateItem{Property: it.Property, Value: it.Value}
	}
	var when expression.Expression
	if s.When != nil {
		when = s.When.Filter
	}
	tc := newTypeContext(v.ctx)
	cols, schemaOut, _, err := buildProjection(tc, s.Yield, nil)
	if err != nil {
		return nil, nil, err
	}
	n := plan.NewUpdateEdge(s.Upsert, s.EdgeType, s.Src, s.Dst, s.Rank, items, when, cols)
	return n, schemaOut, nil
}

func (v *Validator) validateDeleteVertices(s *ast.DeleteVertices) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.requireSpace(); err != nil {
		return nil, nil, err
	}
	if err := v.checkPerm(auth.PrecondDataWrite, "DELETE VERTEX"); err != nil {
		return nil, nil, err
	}
	return plan.NewDeleteVertices(s.VIDs, s.WithEdge), nil, nil
}

func (v *Validator) validateDeleteEdges(s *ast.DeleteEdges) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.requireSpace(); err != nil {
		return nil, nil, err
	}
	if err := v.checkPerm(auth.PrecondDataWrite, "DELETE EDGE"); err != nil {
		return nil, nil, err
	}
	if _, err := v.ctx.Catalog.EdgeSchema(v.ctx.Space, s.EdgeType); err != nil {
		return nil, nil, err
	}
	rows := make([]plan.EdgeWrite, len(s.Edges))
	for i, r := range s.Edges {
		rows[i] = plan.EdgeWrite{Src: r.Src, Dst: r.Dst, Rank: r.Rank, Vals: r.Values}
	}
	return plan.NewDeleteEdges(s.EdgeType, rows), nil, nil
}

func (v *Validator) validateDownload(s *ast.Download) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.requireSpace(); err != nil {
		return nil, nil, err
	}
	if err := v.checkPerm(auth.PrecondDataWrite, "DOWNLOAD"); err != nil {
		return nil, nil, err
	}
	return plan.NewDownload(s.URL), nil, nil
}

func (v *Validator) validateIngest(s *ast.Ingest) (plan.PlanNode, value.ColumnSchema, error) {
	if err := v.requireSpace(); err != nil {
		return nil, nil, err
	}
	if err := v.checkPerm(auth.PrecondDataWrite, "INGEST"); err != nil {
		return nil, nil, err
	}
	return plan.NewIngest(), nil, nil
}
