package ast

import "github.com/graphlang/ngqlcore/expression"

// VertexTagValues supplies one tag's property values for one inserted vertex.
type VertexTagValues struct {
	Tag    string
	Values []expression.Expression
}

// VertexRow is one `<vid>: (...), (...)` row in INSERT VERTEX.
type VertexRow struct {
	VID  expression.Expression
	Tags []VertexTagValues
}

// InsertVertices is `INSERT VERTEX tag(props), ... VALUES vid: (...), ...`.
type InsertVertices struct {
	TagProps  map[string][]string // declared property order per tag, for positional VALUES
	Rows      []VertexRow
	Overwrite bool
}

func (s *InsertVertices) Kind() Kind       { return KindInsertVertices }
func (s *InsertVertices) Accept(v Visitor) { v.Visit(s) }
func (s *InsertVertices) String() string   { return "INSERT VERTEX ..." }

// EdgeRow is one `src->dst@rank: (...)` row in INSERT EDGE.
type EdgeRow struct {
	Src, Dst expression.Expression
	Rank     expression.Expression // nil means rank 0
	Values   []expression.Expression
}

// InsertEdges is `INSERT EDGE type(props) VALUES src->dst: (...), ...`.
type InsertEdges struct {
	EdgeType  string
	Props     []string
	Rows      []EdgeRow
	Overwrite bool
}

func (s *InsertEdges) Kind() Kind       { return KindInsertEdges }
func (s *InsertEdges) Accept(v Visitor) { v.Visit(s) }
func (s *InsertEdges) String() string   { return "INSERT EDGE " + s.EdgeType }

// UpdateItem is one `prop = expr` assignment in an UPDATE/UPSERT statement.
type UpdateItem struct {
	Property string
	Value    expression.Expression
}

// UpdateVertex is `UPDATE/UPSERT VERTEX ON tag vid SET prop = expr, ... WHEN ... YIELD ...`.
type UpdateVertex struct {
	Upsert bool
	Tag    string
	VID    expression.Expression
	Items  []UpdateItem
	When   *WhenClause
	Yield  *YieldClause
}

func (s *UpdateVertex) Kind() Kind       { return KindUpdateVertex }
func (s *UpdateVertex) Accept(v Visitor) { v.Visit(s) }
func (s *UpdateVertex) String() string   { return "UPDATE VERTEX ON " + s.Tag }

// UpdateEdge is `UPDATE/UPSERT EDGE ON type src->dst SET prop = expr, ... WHEN ... YIELD ...`.
type UpdateEdge struct {
	Upsert   bool
	EdgeType string
	Src, Dst expression.Expression
	Rank     expression.Expression
	Items    []UpdateItem
	When     *WhenClause
	Yield    *YieldClause
}

func (s *UpdateEdge) Kind() Kind       { return KindUpdateEdge }
func (s *UpdateEdge) Accept(v Visitor) { v.Visit(s) }
func (s *UpdateEdge) String() string   { return "UPDATE EDGE ON " + s.EdgeType }

// DeleteVertices is `DELETE VERTEX vid, ... [WITH EDGE]`.
type DeleteVertices struct {
	VIDs     []expression.Expression
	WithEdge bool
}

func (s *DeleteVertices) Kind() Kind       { return KindDeleteVertices }
func (s *DeleteVertices) Accept(v Visitor) { v.Visit(s) }
func (s *DeleteVertices) String() string   { return "DELETE VERTEX ..." }

// DeleteEdges is `DELETE EDGE type src->dst[@rank], ...`.
type DeleteEdges struct {
	EdgeType string
	Edges    []EdgeRow
}

func (s *DeleteEdges) Kind() Kind       { return KindDeleteEdges }
func (s *DeleteEdges) Accept(v Visitor) { v.Visit(s) }
func (s *DeleteEdges) String() string   { return "DELETE EDGE " + s.EdgeType }

// Download stages an external SST file set at a URL for ingestion into the
// current space.
type Download struct{ URL string }

func (s *Download) Kind() Kind       { return KindDownload }
func (s *Download) Accept(v Visitor) { v.Visit(s) }
func (s *Download) String() string   { return "DOWNLOAD HDFS " + s.URL }

// Ingest loads the most recently downloaded SST file set into the current
// space's storage.
type Ingest struct{}

func (s *Ingest) Kind() Kind       { return KindIngest }
func (s *Ingest) Accept(v Visitor) { v.Visit(s) }
func (s *Ingest) String() string   { return "INGEST" }
