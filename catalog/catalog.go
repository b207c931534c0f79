// Package catalog defines the metadata lookups a validator needs (spaces,
// tag/edge schemas, indexes) and an in-memory implementation for tests.
package catalog

import (
	"sync"

	"gopkg.in/src-d/go-errors.v1"

	"github.com/graphlang/ngqlcore/value"
)

var (
	// ErrSpaceNotFound is returned when a named space does not exist.
	ErrSpaceNotFound = errors.NewKind("space not found: %s")
	// ErrTagNotFound is returned when a named tag does not exist in a space.
	ErrTagNotFound = errors.NewKind("tag not found: %s")
	// ErrEdgeNotFound is the edge-type analogue of ErrTagNotFound.
	ErrEdgeNotFound = errors.NewKind("edge not found: %s")
	// ErrIndexNotFound covers both tag and edge index lookups.
	ErrIndexNotFound = errors.NewKind("index not found: %s")
	// ErrSpaceExists is returned by CreateSpace on a duplicate name.
	ErrSpaceExists = errors.NewKind("space already exists: %s")
	// ErrTagExists/ErrEdgeExists are returned by the corresponding creates.
	ErrTagExists  = errors.NewKind("tag already exists: %s")
	ErrEdgeExists = errors.NewKind("edge already exists: %s")
	// ErrFixtureBadType is returned by LoadFixture for an unresolvable
	// property type word.
	ErrFixtureBadType = errors.NewKind("fixture: unknown property type %q for %s")
)

// PropertyDef is one (name, type [, default]) column of a tag or edge
// schema.
type PropertyDef struct {
	Name    string
	Type    value.ValueType
	Default *value.Value // nil means no default
}

// TagSchema is a named vertex-tag's property list.
type TagSchema struct {
	Name  string
	Props []PropertyDef
}

// EdgeSchema is a named edge-type's property list. TypeID is the signed
// edge-type identifier Edge.Type carries.
type EdgeSchema struct {
	Name   string
	TypeID int32
	Props  []PropertyDef
}

// IndexDef names an index over a prefix of a tag's or edge's properties.
type IndexDef struct {
	Name   string
	Owner  string // tag or edge name
	Fields []string
}

// Space is one graph space's full metadata: its tag/edge schemas and their
// indexes, keyed by name.
type Space struct {
	Name          string
	PartitionNum  int
	ReplicaFactor int
	VidType       value.ValueType

	mu         sync.RWMutex
	tags       map[string]*TagSchema
	edges      map[string]*EdgeSchema
	tagIndex   map[string]*IndexDef
	edgeIndex  map[string]*IndexDef
}

func newSpace(name string) *Space {
	return &Space{
		Name:      name,
		VidType:   value.TypeInt,
		tags:      make(map[string]*TagSchema),
		edges:     make(map[string]*EdgeSchema),
		tagIndex:  make(map[string]*IndexDef),
		edgeIndex: make(map[string]*IndexDef),
	}
}

// Catalog is the metadata surface a validator consults and mutates: space/
// tag/edge/index CRUD plus lookups. All calls are synchronous; a remote
// implementation surfaces RPC failures as ordinary errors.
type Catalog interface {
	CreateSpace(name string) (*Space, error)
	DropSpace(name string) error
	SpaceByName(name string) (*Space, error)
	Spaces() []string

	CreateTag(space string, schema *TagSchema) error
	AlterTag(space, tag string, add []PropertyDef, drop []string) error
	DropTag(space, tag string) error
	TagSchema(space, tag string) (*TagSchema, error)
	Tags(space string) []string

	CreateEdge(space string, schema *EdgeSchema) error
	AlterEdge(space, edge string, add []PropertyDef, drop []string) error
	DropEdge(space, edge string) error
	EdgeSchema(space, edge string) (*EdgeSchema, error)
	Edges(space string) []string

	CreateTagIndex(space string, idx *IndexDef) error
	CreateEdgeIndex(space string, idx *IndexDef) error
	DropTagIndex(space, index string) error
	DropEdgeIndex(space, index string) error
	TagIndex(space, index string) (*IndexDef, error)
	EdgeIndex(space, index string) (*IndexDef, error)
	TagIndexes(space string) []*IndexDef
	EdgeIndexes(space string) []*IndexDef

	IsGod(user string) bool
}

// MemCatalog is an in-memory Catalog, used by tests and the demo
// entrypoint.
type MemCatalog struct {
	mu     sync.RWMutex
	spaces map[string]*Space
	gods   map[string]bool
}

func NewMemCatalog() *MemCatalog {
	return &MemCatalog{spaces: make(map[string]*Space), gods: make(map[string]bool)}
}

func (c *MemCatalog) CreateSpace(name string) (*Space, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.spaces[name]; ok {
		return nil, ErrSpaceExists.New(name)
	}
	sp := newSpace(name)
	c.spaces[name] = sp
	return sp, nil
}

func (c *MemCatalog) DropSpace(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.spaces[name]; !ok {
		return ErrSpaceNotFound.New(name)
	}
	delete(c.spaces, name)
	return nil
}

func (c *MemCatalog) SpaceByName(name string) (*Space, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	sp, ok := c.spaces[name]
	if !ok {
		return nil, ErrSpaceNotFound.New(name)
	}
	return sp, nil
}

// Spaces lists every space name, for SHOW SPACES.
func (c *MemCatalog) Spaces() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.spaces))
	for n := range c.spaces {
		out = append(out, n)
	}
	return out
}

func (c *MemCatalog) CreateTag(space string, schema *TagSchema) error {
	sp, err := c.SpaceByName(space)
	if err != nil {
		return err
	}
	sp.mu.Lock()
	defer sp.mu.Unlock()
	if _, ok := sp.tags[schema.Name]; ok {
		return ErrTagExists.New(schema.Name)
	}
	sp.tags[schema.Name] = schema
	return nil
}

// alterProps applies an ALTER's add/drop lists to an existing property
// list: dropped names are removed, added properties appended in order.
func alterProps(props []PropertyDef, add []PropertyDef, drop []string) []PropertyDef {
	dropped := make(map[string]bool, len(drop))
	for _, d := range drop {
		dropped[d] = true
	}
	out := make([]PropertyDef, 0, len(props)+len(add))
	for _, p := range props {
		if !dropped[p.Name] {
			out = append(out, p)
		}
	}
	return append(out, add...)
}

func (c *MemCatalog) AlterTag(space, tag string, add []PropertyDef, drop []string) error {
	sp, err := c.SpaceByName(space)
	if err != nil {
		return err
	}
	sp.mu.Lock()
	defer sp.mu.Unlock()
	t, ok := sp.tags[tag]
	if !ok {
		return ErrTagNotFound.New(tag)
	}
	t.Props = alterProps(t.Props, add, drop)
	return nil
}

func (c *MemCatalog) DropTag(space, tag string) error {
	sp, err := c.SpaceByName(space)
	if err != nil {
		return err
	}
	sp.mu.Lock()
	defer sp.mu.Unlock()
	if _, ok := sp.tags[tag]; !ok {
		return ErrTagNotFound.New(tag)
	}
	delete(sp.tags, tag)
	return nil
}

func (c *MemCatalog) TagSchema(space, tag string) (*TagSchema, error) {
	sp, err := c.SpaceByName(space)
	if err != nil {
		return nil, err
	}
	sp.mu.RLock()
	defer sp.mu.RUnlock()
	t, ok := sp.tags[tag]
	if !ok {
		return nil, ErrTagNotFound.New(tag)
	}
	return t, nil
}

// Tags lists every tag name declared in space, for SHOW TAGS.
func (c *MemCatalog) Tags(space string) []string {
	sp, err := c.SpaceByName(space)
	if err != nil {
		return nil
	}
	sp.mu.RLock()
	defer sp.mu.RUnlock()
	out := make([]string, 0, len(sp.tags))
	for n := range sp.tags {
		out = append(out, n)
	}
	return out
}

// Edges lists every edge type name declared in space, for SHOW EDGES.
func (c *MemCatalog) Edges(space string) []string {
	sp, err := c.SpaceByName(space)
	if err != nil {
		return nil
	}
	sp.mu.RLock()
	defer sp.mu.RUnlock()
	out := make([]string, 0, len(sp.edges))
	for n := range sp.edges {
		out = append(out, n)
	}
	return out
}

func (c *MemCatalog) CreateEdge(space string, schema *EdgeSchema) error {
	sp, err := c.SpaceByName(space)
	if err != nil {
		return err
	}
	sp.mu.Lock()
	defer sp.mu.Unlock()
	if _, ok := sp.edges[schema.Name]; ok {
		return ErrEdgeExists.New(schema.Name)
	}
	sp.edges[schema.Name] = schema
	return nil
}

func (c *MemCatalog) AlterEdge(space, edge string, add []PropertyDef, drop []string) error {
	sp, err := c.SpaceByName(space)
	if err != nil {
		return err
	}
	sp.mu.Lock()
	defer sp.mu.Unlock()
	e, ok := sp.edges[edge]
	if !ok {
		return ErrEdgeNotFound.New(edge)
	}
	e.Props = alterProps(e.Props, add, drop)
	return nil
}

func (c *MemCatalog) DropEdge(space, edge string) error {
	sp, err := c.SpaceByName(space)
	if err != nil {
		return err
	}
	sp.mu.Lock()
	defer sp.mu.Unlock()
	if _, ok := sp.edges[edge]; !ok {
		return ErrEdgeNotFound.New(edge)
	}
	delete(sp.edges, edge)
	return nil
}

func (c *MemCatalog) EdgeSchema(space, edge string) (*EdgeSchema, error) {
	sp, err := c.SpaceByName(space)
	if err != nil {
		return nil, err
	}
	sp.mu.RLock()
	defer sp.mu.RUnlock()
	e, ok := sp.edges[edge]
	if !ok {
		return nil, ErrEdgeNotFound.New(edge)
	}
	return e, nil
}

func (c *MemCatalog) CreateTagIndex(space string, idx *IndexDef) error {
	sp, err := c.SpaceByName(space)
	if err != nil {
		return err
	}
	if _, ok := sp.tags[idx.Owner]; !ok {
		return ErrTagNotFound.New(idx.Owner)
	}
	sp.mu.Lock()
	defer sp.mu.Unlock()
	sp.tagIndex[idx.Name] = idx
	return nil
}

func (c *MemCatalog) CreateEdgeIndex(space string, idx *IndexDef) error {
	sp, err := c.SpaceByName(space)
	if err != nil {
		return err
	}
	if _, ok := sp.edges[idx.Owner]; !ok {
		return ErrEdgeNotFound.New(idx.Owner)
	}
	sp.mu.Lock()
	defer sp.mu.Unlock()
	sp.edgeIndex[idx.Name] = idx
	return nil
}

func (c *MemCatalog) DropTagIndex(space, index string) error {
	sp, err := c.SpaceByName(space)
	if err != nil {
		return err
	}
	sp.mu.Lock()
	defer sp.mu.Unlock()
	if _, ok := sp.tagIndex[index]; !ok {
		return ErrIndexNotFound.New(index)
	}
	delete(sp.tagIndex, index)
	return nil
}

func (c *MemCatalog) DropEdgeIndex(space, index string) error {
	sp, err := c.SpaceByName(space)
	if err != nil {
		return err
	}
	sp.mu.Lock()
	defer sp.mu.Unlock()
	if _, ok := sp.edgeIndex[index]; !ok {
		return ErrIndexNotFound.New(index)
	}
	delete(sp.edgeIndex, index)
	return nil
}

func (c *MemCatalog) TagIndexes(space string) []*IndexDef {
	sp, err := c.SpaceByName(space)
	if err != nil {
		return nil
	}
	sp.mu.RLock()
	defer sp.mu.RUnlock()
	out := make([]*IndexDef, 0, len(sp.tagIndex))
	for _, idx := range sp.tagIndex {
		out = append(out, idx)
	}
	return out
}

func (c *MemCatalog) EdgeIndexes(space string) []*IndexDef {
	sp, err := c.SpaceByName(space)
	if err != nil {
		return nil
	}
	sp.mu.RLock()
	defer sp.mu.RUnlock()
	out := make([]*IndexDef, 0, len(sp.edgeIndex))
	for _, idx := range sp.edgeIndex {
		out = append(out, idx)
	}
	return out
}

func (c *MemCatalog) TagIndex(space, index string) (*IndexDef, error) {
	sp, err := c.SpaceByName(space)
	if err != nil {
		return nil, err
	}
	sp.mu.RLock()
	defer sp.mu.RUnlock()
	idx, ok := sp.tagIndex[index]
	if !ok {
		return nil, ErrIndexNotFound.New(index)
	}
	return idx, nil
}

func (c *MemCatalog) EdgeIndex(space, index string) (*IndexDef, error) {
	sp, err := c.SpaceByName(space)
	if err != nil {
		return nil, err
	}
	sp.mu.RLock()
	defer sp.mu.RUnlock()
	idx, ok := sp.edgeIndex[index]
	if !ok {
		return nil, ErrIndexNotFound.New(index)
	}
	return idx, nil
}

// SetGod marks user as holding the built-in GOD account.
func (c *MemCatalog) SetGod(user string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gods[user] = true
}

func (c *MemCatalog) IsGod(user string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.gods[user]
}

var _ Catalog = (*MemCatalog)(nil)
