package ast

import "github.com/graphlang/ngqlcore/expression"

// Go is `GO [m TO n] STEPS FROM vids OVER edges [WHERE ...] YIELD ...`, the
// multi-hop neighbor-walk query.
type Go struct {
	Steps    StepClause
	From     FromClause
	Over     OverClause
	Where    *WhereClause
	Yield    *YieldClause
	Truncate *TruncateClause
}

func (s *Go) Kind() Kind       { return KindGo }
func (s *Go) Accept(v Visitor) { v.Visit(s) }
func (s *Go) String() string   { return "GO ..." }

// Lookup is `LOOKUP ON tag|edge WHERE ... YIELD ...`, an index-backed scan
// restricted to that tag/edge's own properties.
type Lookup struct {
	Owner  string // tag or edge type name
	IsEdge bool
	Where  *WhereClause
	Yield  *YieldClause
}

func (s *Lookup) Kind() Kind       { return KindLookup }
func (s *Lookup) Accept(v Visitor) { v.Visit(s) }
func (s *Lookup) String() string   { return "LOOKUP ON " + s.Owner }

// FetchVertices is `FETCH PROP ON tag vid, ... YIELD ...`.
type FetchVertices struct {
	Tags  []string // empty means all tags on the vertex
	VIDs  []expression.Expression
	Ref   string
	Yield *YieldClause
}

func (s *FetchVertices) Kind() Kind       { return KindFetchVertices }
func (s *FetchVertices) Accept(v Visitor) { v.Visit(s) }
func (s *FetchVertices) String() string   { return "FETCH PROP ON ..." }

// FetchEdges is `FETCH PROP ON type src->dst[@rank], ... YIELD ...`.
type FetchEdges struct {
	EdgeType string
	Edges    []EdgeRow
	Yield    *YieldClause
}

func (s *FetchEdges) Kind() Kind       { return KindFetchEdges }
func (s *FetchEdges) Accept(v Visitor) { v.Visit(s) }
func (s *FetchEdges) String() string   { return "FETCH PROP ON " + s.EdgeType }

// FindPath is `FIND [SHORTEST|ALL] PATH FROM vids TO vids OVER edges [UPTO n STEPS] YIELD PATH`.
type FindPath struct {
	Shortest bool
	From     FromClause
	To       ToClause
	Over     OverClause
	Steps    StepClause
}

func (s *FindPath) Kind() Kind       { return KindFindPath }
func (s *FindPath) Accept(v Visitor) { v.Visit(s) }
func (s *FindPath) String() string   { return "FIND PATH ..." }

// GetSubgraph is `GET SUBGRAPH n STEPS FROM vids [OVER edges] [BOTH|IN|OUT] YIELD ...`.
type GetSubgraph struct {
	Steps int
	From  FromClause
	Over  OverClause
}

func (s *GetSubgraph) Kind() Kind       { return KindGetSubgraph }
func (s *GetSubgraph) Accept(v Visitor) { v.Visit(s) }
func (s *GetSubgraph) String() string   { return "GET SUBGRAPH ..." }

// Yield is a standalone `YIELD expr AS alias, ...` with no data source,
// evaluated once against constants.
type Yield struct {
	Clause YieldClause
	Where  *WhereClause
}

func (s *Yield) Kind() Kind       { return KindYield }
func (s *Yield) Accept(v Visitor) { v.Visit(s) }
func (s *Yield) String() string   { return "YIELD ..." }

// OrderBy is the piped `| ORDER BY $-.col [ASC|DESC], ...` sort stage; its
// output columns are its input columns unchanged.
type OrderBy struct {
	Clause OrderByClause
}

func (s *OrderBy) Kind() Kind       { return KindOrderBy }
func (s *OrderBy) Accept(v Visitor) { v.Visit(s) }
func (s *OrderBy) String() string   { return "ORDER BY ..." }

// Limit is the piped `| LIMIT [offset,] count` stage.
type Limit struct {
	Clause LimitClause
}

func (s *Limit) Kind() Kind       { return KindLimit }
func (s *Limit) Accept(v Visitor) { v.Visit(s) }
func (s *Limit) String() string   { return "LIMIT ..." }

// GroupBy is the piped `| GROUP BY $-.key YIELD fn($-.col) AS alias, ...`
// aggregation stage. Yield names the per-group output; its aggregate
// columns reduce, its plain columns must be group keys.
type GroupBy struct {
	Group GroupClause
	Yield YieldClause
}

func (s *GroupBy) Kind() Kind       { return KindGroupBy }
func (s *GroupBy) Accept(v Visitor) { v.Visit(s) }
func (s *GroupBy) String() string   { return "GROUP BY ..." }

// Unwind is `UNWIND expr AS alias`, fanning a List value out into one row
// per element.
type Unwind struct {
	Expr  expression.Expression
	Alias string
}

func (s *Unwind) Kind() Kind       { return KindUnwind }
func (s *Unwind) Accept(v Visitor) { v.Visit(s) }
func (s *Unwind) String() string   { return "UNWIND ... AS " + s.Alias }

// NodePattern is one `(alias:Tag)` element of a MATCH path pattern. An
// empty Tags list matches any vertex.
type NodePattern struct {
	Alias string
	Tags  []string
}

// EdgePattern is one `-[alias:type*m..n]->` element of a MATCH path
// pattern. An empty Types list matches any edge type; MinHops/MaxHops of
// 1/1 is a single hop.
type EdgePattern struct {
	Alias     string
	Types     []string
	Direction Direction
	MinHops   int
	MaxHops   int
}

// PathPattern alternates nodes and edges: len(Nodes) == len(Edges)+1.
// Optional marks an `OPTIONAL MATCH` pattern: rows of the preceding
// patterns survive with NULL bindings when this one finds nothing.
type PathPattern struct {
	Alias    string // optional named path variable
	Nodes    []NodePattern
	Edges    []EdgePattern
	Optional bool
}

// Match is `MATCH <pattern>[, <pattern>...] [WHERE ...] RETURN ...`. Each
// pattern binds its node/edge aliases into the sentence's own scope;
// RETURN projects over those bindings.
type Match struct {
	Patterns []PathPattern
	Where    *WhereClause
	Return   YieldClause
}

func (s *Match) Kind() Kind       { return KindMatch }
func (s *Match) Accept(v Visitor) { v.Visit(s) }
func (s *Match) String() string   { return "MATCH ..." }

// Set combines two query results with a set operation: UNION[ALL], INTERSECT,
// or MINUS.
type Set struct {
	Op    SetOp
	Left  Sentence
	Right Sentence
}

// SetOp names Set's combination operator.
type SetOp int

const (
	SetUnion SetOp = iota
	SetUnionAll
	SetIntersect
	SetMinus
)

func (s *Set) Kind() Kind       { return KindSet }
func (s *Set) Accept(v Visitor) { v.Visit(s) }
func (s *Set) String() string   { return "<set op>" }

// Pipe feeds Left's output rows as Right's `$-` input, NGQL's `|` operator.
type Pipe struct {
	Left  Sentence
	Right Sentence
}

func (s *Pipe) Kind() Kind       { return KindPipe }
func (s *Pipe) Accept(v Visitor) { v.Visit(s) }
func (s *Pipe) String() string   { return "<pipe>" }

// Assignment binds a query's output to a session variable: `$var = <query>;`.
type Assignment struct {
	Variable string
	Query    Sentence
}

func (s *Assignment) Kind() Kind       { return KindAssignment }
func (s *Assignment) Accept(v Visitor) { v.Visit(s) }
func (s *Assignment) String() string   { return "$" + s.Variable + " = ..." }
