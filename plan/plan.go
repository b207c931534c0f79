// Package plan defines the logical execution plan a validated sentence
// lowers to: a tree of PlanNode values, each naming its output columns and
// its input nodes. PlanNode follows the same Kind/Children shape as
// ast.Sentence and expression.Expression.
package plan

// Kind discriminates PlanNode implementations.
type Kind int

const (
	// Leaf / scan
	KindStart Kind = iota
	KindGetNeighbors
	KindGetVertices
	KindGetEdges
	KindIndexScan

	// Traversal
	KindTraverse
	KindAppendVertices

	// Relational
	KindFilter
	KindProject
	KindAggregate
	KindSort
	KindTopN
	KindLimit
	KindDedup
	KindUnion
	KindIntersect
	KindMinus
	KindDataCollect
	KindLoop
	KindSelect
	KindPassThrough
	KindAssign
	KindInnerJoin
	KindLeftJoin
	KindUnwind

	// Schema DDL
	KindCreateSpace
	KindDropSpace
	KindDescSpace
	KindShowSpaces
	KindCreateTag
	KindAlterTag
	KindDropTag
	KindDescTag
	KindShowTags
	KindShowCreateTag
	KindCreateEdge
	KindAlterEdge
	KindDropEdge
	KindDescEdge
	KindShowEdges
	KindShowCreateEdge
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

	// Cluster / admin
	KindBalanceDiskAttach
	KindBalanceDiskRemove
	KindSubmitJob
	KindShowJobs
	KindStopJob
	KindRecoverJob
	KindDownload
	KindIngest
	KindKillQuery
	KindKillSession
	KindShowQueries
	KindShowSessions
	KindCreateSnapshot
	KindDropSnapshot
	KindShowSnapshots
	KindShowHosts
	KindShowConfigs
	KindSetConfig

	// Auth
	KindCreateUser
	KindDropUser
	KindChangePassword
	KindGrant
	KindRevoke
	KindShowUsers
	KindShowRoles

	// Control
	KindExplain
)

// PlanNode is one node of a validated execution plan.
type PlanNode interface {
	Kind() Kind
	// ColNames lists the output columns this node produces, in order.
	ColNames() []string
	// Children returns this node's direct inputs, empty for a leaf.
	Children() []PlanNode
	String() string
}

// base is embedded by every concrete PlanNode to carry its column names and
// children.
type base struct {
	cols     []string
	children []PlanNode
}

func (b *base) ColNames() []string   { return b.cols }
func (b *base) Children() []PlanNode { return b.children }

func newBase(cols []string, children ...PlanNode) base {
	return base{cols: cols, children: children}
}
