// Package ast implements the parsed sentence tree: one Sentence value per
// statement kind, plus the clause types shared across several of them
// (StepClause, From/To/Over, Where/When/Yield/Group/OrderBy/Limit). This is
// the validator's input shape; it carries no semantic information of its
// own (no type inference, no catalog lookups) the way expression.Expression
// does for values.
//
// The Sentence/Kind/Accept contract mirrors the style expression.Expression
// establishes: a small discriminated interface walked by a Visitor, rather
// than a type switch at every call site.
package ast

import "github.com/graphlang/ngqlcore/expression"

// Kind discriminates Sentence implementations.
type Kind int

const (
	// Schema-space
	KindCreateSpace Kind = iota
	KindDropSpace
	KindDescSpace
	KindShowSpaces
	KindUseSpace
	// Schema-type
	KindCreateTag
	KindCreateEdge
	KindAlterTag
	KindAlterEdge
	KindDropTag
	KindDropEdge
	KindDescTag
	KindDescEdge
	KindShowTags
	KindShowEdges
	KindShowCreateTag
	KindShowCreateEdge
	// Index
	KindCreateTagIndex
	KindCreateEdgeIndex
	KindDropTagIndex
	KindDropEdgeIndex
	KindDescTagIndex
	KindDescEdgeIndex
	KindShowTagIndexes
	KindShowEdgeIndexes
	KindRebuildTagIndex
	KindRebuildEdgeIndex
	// Mutation
	KindInsertVertices
	KindInsertEdges
	KindUpdateVertex
	KindUpdateEdge
	KindDeleteVertices
	KindDeleteEdges
	KindDownload
	KindIngest
	// Query
	KindGo
	KindLookup
	KindFetchVertices
	KindFetchEdges
	KindFindPath
	KindGetSubgraph
	KindMatch
	KindUnwind
	KindYield
	KindOrderBy
	KindLimit
	KindGroupBy
	KindSet
	KindPipe
	KindAssignment
	// Admin
	KindAddHosts
	KindDropHosts
	KindShowHosts
	KindShowConfigs
	KindSetConfig
	KindCreateSnapshot
	KindDropSnapshot
	KindShowSnapshots
	// Session
	KindShowSessions
	KindKillSession
	KindShowQueries
	KindKillQuery
	// User
	KindCreateUser
	KindDropUser
	KindChangePassword
	KindGrant
	KindRevoke
	KindShowUsers
	KindShowRoles
	// Job
	KindSubmitJob
	KindShowJobs
	KindStopJob
	KindRecoverJob
	// Control
	KindExplain
	KindReturn
	KindSequential
)

// Sentence is the parsed-statement contract every Kind satisfies.
type Sentence interface {
	Kind() Kind
	String() string
	Accept(v Visitor)
}

// Visitor dispatches over Sentence implementations, mirroring
// expression.Visitor's shape.
type Visitor interface {
	Visit(s Sentence) bool
}

// Direction is the edge-traversal direction named in an OverClause.
type Direction uint8

const (
	DirOut Direction = iota
	DirIn
	DirBoth
)

func (d Direction) String() string {
	switch d {
	case DirOut:
		return "OUT"
	case DirIn:
		return "IN"
	default:
		return "BOTH"
	}
}

// StepClause is GO's hop-count form: a single step, an m-to-n range, or the
// legacy UPTO k form (equivalent to steps 1..k).
type StepClause struct {
	Min, Max int
	Upto     bool
}

// EdgeRef names one edge type in an OverClause, with an optional property
// alias used by WHERE/YIELD to refer to that hop's edge.
type EdgeRef struct {
	Name  string
	Alias string
}

// OverClause names which edge types GO/FIND PATH/GET SUBGRAPH traverse, or
// the wildcard `*` over all of them, in a given Direction.
type OverClause struct {
	Edges     []EdgeRef // empty means `*`
	Direction Direction
}

// FromClause supplies GO/FETCH's starting vertex IDs, either a literal list
// or a reference to a prior pipe/variable column.
type FromClause struct {
	VIDs []expression.Expression
	Ref  string // column name in $- or $var, empty if VIDs is used
}

// ToClause is FIND PATH's destination vertex set, shaped like FromClause.
type ToClause struct {
	VIDs []expression.Expression
	Ref  string
}

// WhereClause filters rows by a boolean predicate.
type WhereClause struct{ Filter expression.Expression }

// WhenClause is UPDATE's optional precondition guard.
type WhenClause struct{ Filter expression.Expression }

// YieldColumn is one projected output column, with its expression and
// optional output alias.
type YieldColumn struct {
	Expr  expression.Expression
	Alias string
}

// YieldClause projects and optionally deduplicates output rows.
type YieldClause struct {
	Columns  []YieldColumn
	Distinct bool
}

// GroupClause groups rows by a key list ahead of aggregate YIELD columns.
type GroupClause struct{ Keys []expression.Expression }

// OrderFactor is one `ORDER BY` sort key.
type OrderFactor struct {
	Expr descOrAsc
}

type descOrAsc struct {
	Expr       expression.Expression
	Descending bool
}

// NewOrderFactor builds an OrderFactor.
func NewOrderFactor(e expression.Expression, descending bool) OrderFactor {
	return OrderFactor{Expr: descOrAsc{Expr: e, Descending: descending}}
}

func (f OrderFactor) Expression() expression.Expression { return f.Expr.Expr }
func (f OrderFactor) Descending() bool                  { return f.Expr.Descending }

// OrderByClause sorts rows by a sequence of OrderFactors, ties broken in
// list order.
type OrderByClause struct{ Factors []OrderFactor }

// LimitClause bounds and offsets the result set.
type LimitClause struct {
	Offset int64
	Count  int64 // -1 means unbounded
}

// TruncateClause samples or caps GetNeighbors/GetVertices fan-out.
type TruncateClause struct {
	Expr   expression.Expression
	Sample bool
}
