package ast

import (
	"fmt"
	"strings"

	"github.com/graphlang/ngqlcore/catalog"
	"github.com/graphlang/ngqlcore/value"
)

// CreateSpace declares a new graph space with its partition/replica/vid
// parameters.
type CreateSpace struct {
	Name          string
	PartitionNum  int
	ReplicaFactor int
	VidSize       int
	IfNotExists   bool
}

func (s *CreateSpace) Kind() Kind       { return KindCreateSpace }
func (s *CreateSpace) Accept(v Visitor) { v.Visit(s) }
func (s *CreateSpace) String() string {
	return fmt.Sprintf("CREATE SPACE %s(partition_num=%d, replica_factor=%d)", s.Name, s.PartitionNum, s.ReplicaFactor)
}

// DropSpace removes a graph space.
type DropSpace struct {
	Name     string
	IfExists bool
}

func (s *DropSpace) Kind() Kind       { return KindDropSpace }
func (s *DropSpace) Accept(v Visitor) { v.Visit(s) }
func (s *DropSpace) String() string   { return "DROP SPACE " + s.Name }

// DescSpace describes one space's parameters.
type DescSpace struct{ Name string }

func (s *DescSpace) Kind() Kind       { return KindDescSpace }
func (s *DescSpace) Accept(v Visitor) { v.Visit(s) }
func (s *DescSpace) String() string   { return "DESCRIBE SPACE " + s.Name }

// ShowSpaces lists every space.
type ShowSpaces struct{}

func (s *ShowSpaces) Kind() Kind       { return KindShowSpaces }
func (s *ShowSpaces) Accept(v Visitor) { v.Visit(s) }
func (s *ShowSpaces) String() string   { return "SHOW SPACES" }

// UseSpace switches the session's current space.
type UseSpace struct{ Name string }

func (s *UseSpace) Kind() Kind       { return KindUseSpace }
func (s *UseSpace) Accept(v Visitor) { v.Visit(s) }
func (s *UseSpace) String() string   { return "USE " + s.Name }

// PropertySpec is one property declaration in CREATE/ALTER TAG|EDGE.
type PropertySpec struct {
	Name    string
	Type    string
	Default string // empty if absent; literal text, validator parses it
}

// CreateTag declares a new vertex tag schema.
type CreateTag struct {
	Name        string
	Props       []PropertySpec
	IfNotExists bool
}

func (s *CreateTag) Kind() Kind       { return KindCreateTag }
func (s *CreateTag) Accept(v Visitor) { v.Visit(s) }
func (s *CreateTag) String() string   { return "CREATE TAG " + s.Name }

// CreateEdge declares a new edge type schema.
type CreateEdge struct {
	Name        string
	Props       []PropertySpec
	IfNotExists bool
}

func (s *CreateEdge) Kind() Kind       { return KindCreateEdge }
func (s *CreateEdge) Accept(v Visitor) { v.Visit(s) }
func (s *CreateEdge) String() string   { return "CREATE EDGE " + s.Name }

// AlterTag adds and/or drops properties on an existing tag schema.
type AlterTag struct {
	Name     string
	AddProps []PropertySpec
	DropCols []string
}

func (s *AlterTag) Kind() Kind       { return KindAlterTag }
func (s *AlterTag) Accept(v Visitor) { v.Visit(s) }
func (s *AlterTag) String() string   { return "ALTER TAG " + s.Name }

// AlterEdge adds and/or drops properties on an existing edge type schema.
type AlterEdge struct {
	Name     string
	AddProps []PropertySpec
	DropCols []string
}

func (s *AlterEdge) Kind() Kind       { return KindAlterEdge }
func (s *AlterEdge) Accept(v Visitor) { v.Visit(s) }
func (s *AlterEdge) String() string   { return "ALTER EDGE " + s.Name }

// DropTag removes a tag schema.
type DropTag struct {
	Name     string
	IfExists bool
}

func (s *DropTag) Kind() Kind       { return KindDropTag }
func (s *DropTag) Accept(v Visitor) { v.Visit(s) }
func (s *DropTag) String() string   { return "DROP TAG " + s.Name }

// DropEdge removes an edge type schema.
type DropEdge struct {
	Name     string
	IfExists bool
}

func (s *DropEdge) Kind() Kind       { return KindDropEdge }
func (s *DropEdge) Accept(v Visitor) { v.Visit(s) }
func (s *DropEdge) String() string   { return "DROP EDGE " + s.Name }

// DescTag describes one tag's properties.
type DescTag struct{ Name string }

func (s *DescTag) Kind() Kind       { return KindDescTag }
func (s *DescTag) Accept(v Visitor) { v.Visit(s) }
func (s *DescTag) String() string   { return "DESCRIBE TAG " + s.Name }

// DescEdge describes one edge type's properties.
type DescEdge struct{ Name string }

func (s *DescEdge) Kind() Kind       { return KindDescEdge }
func (s *DescEdge) Accept(v Visitor) { v.Visit(s) }
func (s *DescEdge) String() string   { return "DESCRIBE EDGE " + s.Name }

// ShowTags lists every tag in the current space.
type ShowTags struct{}

func (s *ShowTags) Kind() Kind       { return KindShowTags }
func (s *ShowTags) Accept(v Visitor) { v.Visit(s) }
func (s *ShowTags) String() string   { return "SHOW TAGS" }

// ShowEdges lists every edge type in the current space.
type ShowEdges struct{}

func (s *ShowEdges) Kind() Kind       { return KindShowEdges }
func (s *ShowEdges) Accept(v Visitor) { v.Visit(s) }
func (s *ShowEdges) String() string   { return "SHOW EDGES" }

// ShowCreateTag renders the CREATE TAG statement that reproduces a tag's
// current schema.
type ShowCreateTag struct{ Name string }

func (s *ShowCreateTag) Kind() Kind       { return KindShowCreateTag }
func (s *ShowCreateTag) Accept(v Visitor) { v.Visit(s) }
func (s *ShowCreateTag) String() string   { return "SHOW CREATE TAG " + s.Name }

// ShowCreateEdge renders the CREATE EDGE statement that reproduces an edge
// type's current schema.
type ShowCreateEdge struct{ Name string }

func (s *ShowCreateEdge) Kind() Kind       { return KindShowCreateEdge }
func (s *ShowCreateEdge) Accept(v Visitor) { v.Visit(s) }
func (s *ShowCreateEdge) String() string   { return "SHOW CREATE EDGE " + s.Name }

// CreateTagIndex declares an index over a prefix of a tag's properties.
type CreateTagIndex struct {
	IndexName string
	TagName   string
	Fields    []string
}

func (s *CreateTagIndex) Kind() Kind { return KindCreateTagIndex }
func (s *CreateTagIndex) Accept(v Visitor) { v.Visit(s) }
func (s *CreateTagIndex) String() string {
	return fmt.Sprintf("CREATE TAG INDEX %s ON %s(%s)", s.IndexName, s.TagName, strings.Join(s.Fields, ", "))
}

// CreateEdgeIndex declares an index over a prefix of an edge type's properties.
type CreateEdgeIndex struct {
	IndexName string
	EdgeName  string
	Fields    []string
}

func (s *CreateEdgeIndex) Kind() Kind { return KindCreateEdgeIndex }
func (s *CreateEdgeIndex) Accept(v Visitor) { v.Visit(s) }
func (s *CreateEdgeIndex) String() string {
	return fmt.Sprintf("CREATE EDGE INDEX %s ON %s(%s)", s.IndexName, s.EdgeName, strings.Join(s.Fields, ", "))
}

// DropTagIndex removes a tag index.
type DropTagIndex struct{ IndexName string }

func (s *DropTagIndex) Kind() Kind       { return KindDropTagIndex }
func (s *DropTagIndex) Accept(v Visitor) { v.Visit(s) }
func (s *DropTagIndex) String() string   { return "DROP TAG INDEX " + s.IndexName }

// DropEdgeIndex removes an edge index.
type DropEdgeIndex struct{ IndexName string }

func (s *DropEdgeIndex) Kind() Kind       { return KindDropEdgeIndex }
func (s *DropEdgeIndex) Accept(v Visitor) { v.Visit(s) }
func (s *DropEdgeIndex) String() string   { return "DROP EDGE INDEX " + s.IndexName }

// DescTagIndex describes one tag index's field list.
type DescTagIndex struct{ IndexName string }

func (s *DescTagIndex) Kind() Kind       { return KindDescTagIndex }
func (s *DescTagIndex) Accept(v Visitor) { v.Visit(s) }
func (s *DescTagIndex) String() string   { return "DESCRIBE TAG INDEX " + s.IndexName }

// DescEdgeIndex describes one edge index's field list.
type DescEdgeIndex struct{ IndexName string }

func (s *DescEdgeIndex) Kind() Kind       { return KindDescEdgeIndex }
func (s *DescEdgeIndex) Accept(v Visitor) { v.Visit(s) }
func (s *DescEdgeIndex) String() string   { return "DESCRIBE EDGE INDEX " + s.IndexName }

// ShowTagIndexes lists every tag index in the current space.
type ShowTagIndexes struct{}

func (s *ShowTagIndexes) Kind() Kind       { return KindShowTagIndexes }
func (s *ShowTagIndexes) Accept(v Visitor) { v.Visit(s) }
func (s *ShowTagIndexes) String() string   { return "SHOW TAG INDEXES" }

// ShowEdgeIndexes lists every edge index in the current space.
type ShowEdgeIndexes struct{}

func (s *ShowEdgeIndexes) Kind() Kind       { return KindShowEdgeIndexes }
func (s *ShowEdgeIndexes) Accept(v Visitor) { v.Visit(s) }
func (s *ShowEdgeIndexes) String() string   { return "SHOW EDGE INDEXES" }

// RebuildTagIndex forces a tag index to rebuild from current data.
type RebuildTagIndex struct{ IndexName string }

func (s *RebuildTagIndex) Kind() Kind       { return KindRebuildTagIndex }
func (s *RebuildTagIndex) Accept(v Visitor) { v.Visit(s) }
func (s *RebuildTagIndex) String() string   { return "REBUILD TAG INDEX " + s.IndexName }

// RebuildEdgeIndex forces an edge index to rebuild from current data.
type RebuildEdgeIndex struct{ IndexName string }

func (s *RebuildEdgeIndex) Kind() Kind       { return KindRebuildEdgeIndex }
func (s *RebuildEdgeIndex) Accept(v Visitor) { v.Visit(s) }
func (s *RebuildEdgeIndex) String() string   { return "REBUILD EDGE INDEX " + s.IndexName }

// ToPropertyDefs converts parsed PropertySpecs into catalog.PropertyDef,
// resolving each Type string through resolve (value.ParseTypeName); called
// by the validator rather than at parse time since it needs the value
// package's type-name table. An unresolvable type name yields TypeAny
// rather than failing here — the validator's own CreateTag/CreateEdge
// handler checks ok and raises the SemanticError with the statement's
// identifier context.
func ToPropertyDefs(specs []PropertySpec, resolve func(typeName string) (value.ValueType, bool)) []catalog.PropertyDef {
	out := make([]catalog.PropertyDef, len(specs))
	for i, p := range specs {
		t, _ := resolve(p.Type)
		out[i] = catalog.PropertyDef{Name: p.Name, Type: t}
	}
	return out
}
