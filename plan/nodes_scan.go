package plan

import "github.com/graphlang/ngqlcore/expression"

// Start is the root of every plan, a zero-input node that seeds the
// traversal with a fixed set of VID expressions (or nothing, for a
// pipe-fed or variable-fed query).
type Start struct {
	base
	VIDs []expression.Expression
}

func NewStart(vids []expression.Expression) *Start {
	return &Start{base: newBase([]string{"VertexID"}), VIDs: vids}
}

func (n *Start) Kind() Kind     { return KindStart }
func (n *Start) String() string { return "Start" }

// GetNeighbors expands one step of OUT/IN/BOTH over named edge types from a
// set of source vertices, the physical operator GO's step compiles to.
type GetNeighbors struct {
	base
	Src        expression.Expression
	EdgeTypes  []string
	Direction  int // mirrors ast.Direction
	Limit      int64
}

func NewGetNeighbors(src expression.Expression, edgeTypes []string, dir int, input PlanNode) *GetNeighbors {
	return &GetNeighbors{base: newBase([]string{"_vid", "_edge"}, input), Src: src, EdgeTypes: edgeTypes, Direction: dir}
}

func (n *GetNeighbors) Kind() Kind     { return KindGetNeighbors }
func (n *GetNeighbors) String() string { return "GetNeighbors" }

// GetVertices fetches vertex properties by VID, FETCH PROP ON vertex's
// physical operator.
type GetVertices struct {
	base
	Src  expression.Expression
	Tags []string // empty means every tag
}

func NewGetVertices(src expression.Expression, tags []string, input PlanNode) *GetVertices {
	var children []PlanNode
	if input != nil {
		children = []PlanNode{input}
	}
	return &GetVertices{base: newBase([]string{"VertexID", "Tags"}, children...), Src: src, Tags: tags}
}

func (n *GetVertices) Kind() Kind     { return KindGetVertices }
func (n *GetVertices) String() string { return "GetVertices" }

// GetEdges fetches edge properties by (src, type, rank, dst), FETCH PROP ON
// edge's physical operator.
type GetEdges struct {
	base
	EdgeType string
}

func NewGetEdges(edgeType string, input PlanNode) *GetEdges {
	return &GetEdges{base: newBase([]string{"SrcVID", "DstVID", "Rank", "Props"}, input), EdgeType: edgeType}
}

func (n *GetEdges) Kind() Kind     { return KindGetEdges }
func (n *GetEdges) String() string { return "GetEdges " + n.EdgeType }

// IndexScan resolves LOOKUP ON tag|edge into an index-backed row scan.
type IndexScan struct {
	base
	Owner  string
	IsEdge bool
	Filter expression.Expression
}

func NewIndexScan(owner string, isEdge bool, filter expression.Expression) *IndexScan {
	return &IndexScan{base: newBase([]string{"VertexID"}), Owner: owner, IsEdge: isEdge, Filter: filter}
}

func (n *IndexScan) Kind() Kind     { return KindIndexScan }
func (n *IndexScan) String() string { return "IndexScan " + n.Owner }

// Traverse repeats GetNeighbors for a step range [Min, Max], the multi-hop
// form GO m TO n STEPS compiles to; GetNeighbors alone only covers one hop.
type Traverse struct {
	base
	EdgeTypes []string
	Direction int
	MinStep   int
	MaxStep   int
}

func NewTraverse(edgeTypes []string, dir, minStep, maxStep int, input PlanNode) *Traverse {
	return &Traverse{base: newBase([]string{"_vid", "_edge", "_path"}, input), EdgeTypes: edgeTypes, Direction: dir, MinStep: minStep, MaxStep: maxStep}
}

func (n *Traverse) Kind() Kind     { return KindTraverse }
func (n *Traverse) String() string { return "Traverse" }

// AppendVertices attaches vertex properties onto a GetNeighbors/Traverse
// row stream, fusing a trailing FETCH onto a GO/FIND PATH's destination
// vertices instead of an extra round trip.
type AppendVertices struct {
	base
	Tags []string
}

func NewAppendVertices(tags []string, input PlanNode) *AppendVertices {
	cols := append(append([]string{}, input.ColNames()...), "VertexProps")
	return &AppendVertices{base: newBase(cols, input), Tags: tags}
}

func (n *AppendVertices) Kind() Kind     { return KindAppendVertices }
func (n *AppendVertices) String() string { return "AppendVertices" }
