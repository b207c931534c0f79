package plan

import "github.com/graphlang/ngqlcore/catalog"

// leaf is the common shape of a zero-input DDL/admin node: it produces a
// fixed column set and consumes nothing.
type leaf struct{ base }

func newLeaf(cols []string) leaf { return leaf{newBase(cols)} }

// CreateSpace materializes a new graph space in the catalog.
type CreateSpace struct {
	leaf
	Name          string
	PartitionNum  int
	ReplicaFactor int
	IfNotExists   bool
}

func NewCreateSpace(name string, partitionNum, replicaFactor int, ifNotExists bool) *CreateSpace {
	return &CreateSpace{leaf: newLeaf(nil), Name: name, PartitionNum: partitionNum, ReplicaFactor: replicaFactor, IfNotExists: ifNotExists}
}
func (n *CreateSpace) Kind() Kind     { return KindCreateSpace }
func (n *CreateSpace) String() string { return "CreateSpace " + n.Name }

// DropSpace removes a graph space from the catalog.
type DropSpace struct {
	leaf
	Name     string
	IfExists bool
}

func NewDropSpace(name string, ifExists bool) *DropSpace {
	return &DropSpace{leaf: newLeaf(nil), Name: name, IfExists: ifExists}
}
func (n *DropSpace) Kind() Kind     { return KindDropSpace }
func (n *DropSpace) String() string { return "DropSpace " + n.Name }

// DescSpace reports one space's parameters.
type DescSpace struct {
	leaf
	Name string
}

func NewDescSpace(name string) *DescSpace {
	return &DescSpace{leaf: newLeaf([]string{"ID", "Partition Number", "Replica Factor", "Vid Type"}), Name: name}
}
func (n *DescSpace) Kind() Kind     { return KindDescSpace }
func (n *DescSpace) String() string { return "DescSpace " + n.Name }

// ShowSpaces lists every space.
type ShowSpaces struct{ leaf }

func NewShowSpaces() *ShowSpaces { return &ShowSpaces{newLeaf([]string{"Name"})} }
func (n *ShowSpaces) Kind() Kind     { return KindShowSpaces }
func (n *ShowSpaces) String() string { return "ShowSpaces" }

// CreateTag materializes a new tag schema.
type CreateTag struct {
	leaf
	Name        string
	Props       []catalog.PropertyDef
	IfNotExists bool
}

func NewCreateTag(name string, props []catalog.PropertyDef, ifNotExists bool) *CreateTag {
	return &CreateTag{leaf: newLeaf(nil), Name: name, Props: props, IfNotExists: ifNotExists}
}
func (n *CreateTag) Kind() Kind     { return KindCreateTag }
func (n *CreateTag) String() string { return "CreateTag " + n.Name }

// AlterTag adds or drops properties on an existing tag schema.
type AlterTag struct {
	leaf
	Name     string
	AddCols  []catalog.PropertyDef
	DropCols []string
}

func NewAlterTag(name string, add []catalog.PropertyDef, drop []string) *AlterTag {
	return &AlterTag{leaf: newLeaf(nil), Name: name, AddCols: add, DropCols: drop}
}
func (n *AlterTag) Kind() Kind     { return KindAlterTag }
func (n *AlterTag) String() string { return "AlterTag " + n.Name }

// DropTag removes a tag schema.
type DropTag struct {
	leaf
	Name     string
	IfExists bool
}

func NewDropTag(name string, ifExists bool) *DropTag {
	return &DropTag{leaf: newLeaf(nil), Name: name, IfExists: ifExists}
}
func (n *DropTag) Kind() Kind     { return KindDropTag }
func (n *DropTag) String() string { return "DropTag " + n.Name }

// DescTag reports one tag's property list.
type DescTag struct {
	leaf
	Name string
}

func NewDescTag(name string) *DescTag {
	return &DescTag{leaf: newLeaf([]string{"Field", "Type", "Null", "Default", "Comment"}), Name: name}
}
func (n *DescTag) Kind() Kind     { return KindDescTag }
func (n *DescTag) String() string { return "DescTag " + n.Name }

// ShowTags lists every tag in the current space.
type ShowTags struct{ leaf }

func NewShowTags() *ShowTags { return &ShowTags{newLeaf([]string{"Name"})} }
func (n *ShowTags) Kind() Kind     { return KindShowTags }
func (n *ShowTags) String() string { return "ShowTags" }

// CreateEdge materializes a new edge type schema.
type CreateEdge struct {
	leaf
	Name        string
	Props       []catalog.PropertyDef
	IfNotExists bool
}

func NewCreateEdge(name string, props []catalog.PropertyDef, ifNotExists bool) *CreateEdge {
	return &CreateEdge{leaf: newLeaf(nil), Name: name, Props: props, IfNotExists: ifNotExists}
}
func (n *CreateEdge) Kind() Kind     { return KindCreateEdge }
func (n *CreateEdge) String() string { return "CreateEdge " + n.Name }

// AlterEdge adds or drops properties on an existing edge type schema.
type AlterEdge struct {
	leaf
	Name     string
	AddCols  []catalog.PropertyDef
	DropCols []string
}

func NewAlterEdge(name string, add []catalog.PropertyDef, drop []string) *AlterEdge {
	return &AlterEdge{leaf: newLeaf(nil), Name: name, AddCols: add, DropCols: drop}
}
func (n *AlterEdge) Kind() Kind     { return KindAlterEdge }
func (n *AlterEdge) String() string { return "AlterEdge " + n.Name }

// DropEdge removes an edge type schema.
type DropEdge struct {
	leaf
	Name     string
	IfExists bool
}

func NewDropEdge(name string, ifExists bool) *DropEdge {
	return &DropEdge{leaf: newLeaf(nil), Name: name, IfExists: ifExists}
}
func (n *DropEdge) Kind() Kind     { return KindDropEdge }
func (n *DropEdge) String() string { return "DropEdge " + n.Name }

// DescEdge reports one edge type's property list.
type DescEdge struct {
	leaf
	Name string
}

func NewDescEdge(name string) *DescEdge {
	return &DescEdge{leaf: newLeaf([]string{"Field", "Type", "Null", "Default", "Comment"}), Name: name}
}
func (n *DescEdge) Kind() Kind     { return KindDescEdge }
func (n *DescEdge) String() string { return "DescEdge " + n.Name }

// ShowEdges lists every edge type in the current space.
type ShowEdges struct{ leaf }

func NewShowEdges() *ShowEdges { return &ShowEdges{newLeaf([]string{"Name"})} }
func (n *ShowEdges) Kind() Kind     { return KindShowEdges }
func (n *ShowEdges) String() string { return "ShowEdges" }

// ShowCreateTag renders one tag's reproducing CREATE statement.
type ShowCreateTag struct {
	leaf
	Name string
}

func NewShowCreateTag(name string) *ShowCreateTag {
	return &ShowCreateTag{leaf: newLeaf([]string{"Tag", "Create Tag"}), Name: name}
}
func (n *ShowCreateTag) Kind() Kind     { return KindShowCreateTag }
func (n *ShowCreateTag) String() string { return "ShowCreateTag " + n.Name }

// ShowCreateEdge renders one edge type's reproducing CREATE statement.
type ShowCreateEdge struct {
	leaf
	Name string
}

func NewShowCreateEdge(name string) *ShowCreateEdge {
	return &ShowCreateEdge{leaf: newLeaf([]string{"Edge", "Create Edge"}), Name: name}
}
func (n *ShowCreateEdge) Kind() Kind     { return KindShowCreateEdge }
func (n *ShowCreateEdge) String() string { return "ShowCreateEdge " + n.Name }

// CreateTagIndex materializes an index over a tag's property prefix.
type CreateTagIndex struct {
	leaf
	IndexName string
	TagName   string
	Fields    []string
}

func NewCreateTagIndex(indexName, tagName string, fields []string) *CreateTagIndex {
	return &CreateTagIndex{leaf: newLeaf(nil), IndexName: indexName, TagName: tagName, Fields: fields}
}
func (n *CreateTagIndex) Kind() Kind     { return KindCreateTagIndex }
func (n *CreateTagIndex) String() string { return "CreateTagIndex " + n.IndexName }

// CreateEdgeIndex materializes an index over an edge type's property prefix.
type CreateEdgeIndex struct {
	leaf
	IndexName string
	EdgeName  string
	Fields    []string
}

func NewCreateEdgeIndex(indexName, edgeName string, fields []string) *CreateEdgeIndex {
	return &CreateEdgeIndex{leaf: newLeaf(nil), IndexName: indexName, EdgeName: edgeName, Fields: fields}
}
func (n *CreateEdgeIndex) Kind() Kind     { return KindCreateEdgeIndex }
func (n *CreateEdgeIndex) String() string { return "CreateEdgeIndex " + n.IndexName }

// DropTagIndex removes a tag index.
type DropTagIndex struct {
	leaf
	IndexName string
}

func NewDropTagIndex(name string) *DropTagIndex { return &DropTagIndex{leaf: newLeaf(nil), IndexName: name} }
func (n *DropTagIndex) Kind() Kind     { return KindDropTagIndex }
func (n *DropTagIndex) String() string { return "DropTagIndex " + n.IndexName }

// DropEdgeIndex removes an edge index.
type DropEdgeIndex struct {
	leaf
	IndexName string
}

func NewDropEdgeIndex(name string) *DropEdgeIndex { return &DropEdgeIndex{leaf: newLeaf(nil), IndexName: name} }
func (n *DropEdgeIndex) Kind() Kind     { return KindDropEdgeIndex }
func (n *DropEdgeIndex) String() string { return "DropEdgeIndex " + n.IndexName }

// DescTagIndex reports one tag index's field list.
type DescTagIndex struct {
	leaf
	IndexName string
}

func NewDescTagIndex(name string) *DescTagIndex {
	return &DescTagIndex{leaf: newLeaf([]string{"Field"}), IndexName: name}
}
func (n *DescTagIndex) Kind() Kind     { return KindDescTagIndex }
func (n *DescTagIndex) String() string { return "DescTagIndex " + n.IndexName }

// DescEdgeIndex reports one edge index's field list.
type DescEdgeIndex struct {
	leaf
	IndexName string
}

func NewDescEdgeIndex(name string) *DescEdgeIndex {
	return &DescEdgeIndex{leaf: newLeaf([]string{"Field"}), IndexName: name}
}
func (n *DescEdgeIndex) Kind() Kind     { return KindDescEdgeIndex }
func (n *DescEdgeIndex) String() string { return "DescEdgeIndex " + n.IndexName }

// ShowTagIndexes lists every tag index in the current space.
type ShowTagIndexes struct{ leaf }

func NewShowTagIndexes() *ShowTagIndexes { return &ShowTagIndexes{newLeaf([]string{"Index Name", "By Tag"})} }
func (n *ShowTagIndexes) Kind() Kind     { return KindShowTagIndexes }
func (n *ShowTagIndexes) String() string { return "ShowTagIndexes" }

// ShowEdgeIndexes lists every edge index in the current space.
type ShowEdgeIndexes struct{ leaf }

func NewShowEdgeIndexes() *ShowEdgeIndexes { return &ShowEdgeIndexes{newLeaf([]string{"Index Name", "By Edge"})} }
func (n *ShowEdgeIndexes) Kind() Kind     { return KindShowEdgeIndexes }
func (n *ShowEdgeIndexes) String() string { return "ShowEdgeIndexes" }

// RebuildTagIndex forces a tag index rebuild.
type RebuildTagIndex struct {
	leaf
	IndexName string
}

func NewRebuildTagIndex(name string) *RebuildTagIndex { return &RebuildTagIndex{leaf: newLeaf([]string{"New Job Id"}), IndexName: name} }
func (n *RebuildTagIndex) Kind() Kind     { return KindRebuildTagIndex }
func (n *RebuildTagIndex) String() string { return "RebuildTagIndex " + n.IndexName }

// RebuildEdgeIndex forces an edge index rebuild.
type RebuildEdgeIndex struct {
	leaf
	IndexName string
}

func NewRebuildEdgeIndex(name string) *RebuildEdgeIndex { return &RebuildEdgeIndex{leaf: newLeaf([]string{"New Job Id"}), IndexName: name} }
func (n *RebuildEdgeIndex) Kind() Kind     { return KindRebuildEdgeIndex }
func (n *RebuildEdgeIndex) String() string { return "RebuildEdgeIndex " + n.IndexName }
