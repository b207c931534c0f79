package plan

import "github.com/graphlang/ngqlcore/expression"

// InsertVertices writes one or more vertex rows, each tagged with one or
// more property sets.
type InsertVertices struct {
	leaf
	Rows      []VertexWrite
	Overwrite bool
}

// VertexWrite is one row InsertVertices writes: a VID plus per-tag property
// values.
type VertexWrite struct {
	VID  expression.Expression
	Tag  string
	Vals []expression.Expression
}

func NewInsertVertices(rows []VertexWrite, overwrite bool) *InsertVertices {
	return &InsertVertices{leaf: newLeaf(nil), Rows: rows, Overwrite: overwrite}
}
func (n *InsertVertices) Kind() Kind     { return KindInsertVertices }
func (n *InsertVertices) String() string { return "InsertVertices" }

// EdgeWrite is one row InsertEdges/DeleteEdges addresses.
type EdgeWrite struct {
	Src, Dst expression.Expression
	Rank     expression.Expression
	Vals     []expression.Expression
}

// InsertEdges writes one or more edge rows of a single edge type.
type InsertEdges struct {
	leaf
	EdgeType  string
	Rows      []EdgeWrite
	Overwrite bool
}

func NewInsertEdges(edgeType string, rows []EdgeWrite, overwrite bool) *InsertEdges {
	return &InsertEdges{leaf: newLeaf(nil), EdgeType: edgeType, Rows: rows, Overwrite: overwrite}
}
func (n *InsertEdges) Kind() Kind     { return KindInsertEdges }
func (n *InsertEdges) String() string { return "InsertEdges " + n.EdgeType }

// UpdateItem is one `prop = expr` assignment an Update node applies.
type UpdateItem struct {
	Property string
	Value    expression.Expression
}

// UpdateVertex applies UpdateItems to one tag on one vertex, guarded by an
// optional WHEN predicate, yielding an optional row.
type UpdateVertex struct {
	leaf
	Upsert bool
	Tag    string
	VID    expression.Expression
	Items  []UpdateItem
	When   expression.Expression
	Yield  []ProjectColumn
}

func NewUpdateVertex(upsert bool, tag string, vid expression.Expression, items []UpdateItem, when expression.Expression, yield []ProjectColumn) *UpdateVertex {
	cols := make([]string, len(yield))
	for i, y := range yield {
		cols[i] = y.Alias
	}
	return &UpdateVertex{leaf: newLeaf(cols), Upsert: upsert, Tag: tag, VID: vid, Items: items, When: when, Yield: yield}
}
func (n *UpdateVertex) Kind() Kind     { return KindUpdateVertex }
func (n *UpdateVertex) String() string { return "UpdateVertex" }

// UpdateEdge applies UpdateItems to one edge, guarded by an optional WHEN
// predicate, yielding an optional row.
type UpdateEdge struct {
	leaf
	Upsert   bool
	EdgeType string
	Src, Dst expression.Expression
	Rank     expression.Expression
	Items    []UpdateItem
	When     expression.Expression
	Yield    []ProjectColumn
}

func NewUpdateEdge(upsert bool, edgeType string, src, dst, rank expression.Expression, items []UpdateItem, when expression.Expression, yield []ProjectColumn) *UpdateEdge {
	cols := make([]string, len(yield))
	for i, y := range yield {
		cols[i] = y.Alias
	}
	return &UpdateEdge{leaf: newLeaf(cols), Upsert: upsert, EdgeType: edgeType, Src: src, Dst: dst, Rank: rank, Items: items, When: when, Yield: yield}
}
func (n *UpdateEdge) Kind() Kind     { return KindUpdateEdge }
func (n *UpdateEdge) String() string { return "UpdateEdge " + n.EdgeType }

// DeleteVertices removes vertices by VID, optionally cascading to incident
// edges.
type DeleteVertices struct {
	leaf
	VIDs     []expression.Expression
	WithEdge bool
}

func NewDeleteVertices(vids []expression.Expression, withEdge bool) *DeleteVertices {
	return &DeleteVertices{leaf: newLeaf(nil), VIDs: vids, WithEdge: withEdge}
}
func (n *DeleteVertices) Kind() Kind     { return KindDeleteVertices }
func (n *DeleteVertices) String() string { return "DeleteVertices" }

// DeleteEdges removes one or more edge rows of a single edge type.
type DeleteEdges struct {
	leaf
	EdgeType string
	Rows     []EdgeWrite
}

func NewDeleteEdges(edgeType string, rows []EdgeWrite) *DeleteEdges {
	return &DeleteEdges{leaf: newLeaf(nil), EdgeType: edgeType, Rows: rows}
}
func (n *DeleteEdges) Kind() Kind     { return KindDeleteEdges }
func (n *DeleteEdges) String() string { return "DeleteEdges " + n.EdgeType }
