package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphlang/ngqlcore/value"
)

func TestCreateAndLookupSpace(t *testing.T) {
	c := NewMemCatalog()
	_, err := c.CreateSpace("basketball")
	require.NoError(t, err)

	_, err = c.CreateSpace("basketball")
	assert.Error(t, err)

	sp, err := c.SpaceByName("basketball")
	require.NoError(t, err)
	assert.Equal(t, "basketball", sp.Name)

	_, err = c.SpaceByName("nope")
	assert.Error(t, err)
}

func TestTagAndEdgeSchemaLifecycle(t *testing.T) {
	c := NewMemCatalog()
	_, err := c.CreateSpace("s")
	require.NoError(t, err)

	require.NoError(t, c.CreateTag("s", &TagSchema{Name: "player", Props: []PropertyDef{{Name: "name", Type: value.TypeString}}}))
	assert.Error(t, c.CreateTag("s", &TagSchema{Name: "player"}))

	ts, err := c.TagSchema("s", "player")
	require.NoError(t, err)
	assert.Equal(t, "player", ts.Name)

	require.NoError(t, c.CreateEdge("s", &EdgeSchema{Name: "serve", TypeID: 1}))
	es, err := c.EdgeSchema("s", "serve")
	require.NoError(t, err)
	assert.Equal(t, int32(1), es.TypeID)

	require.NoError(t, c.DropTag("s", "player"))
	_, err = c.TagSchema("s", "player")
	assert.Error(t, err)
}

func TestIndexRequiresOwnerSchema(t *testing.T) {
	c := NewMemCatalog()
	_, err := c.CreateSpace("s")
	require.NoError(t, err)

	err = c.CreateTagIndex("s", &IndexDef{Name: "idx_player_name", Owner: "player", Fields: []string{"name"}})
	assert.Error(t, err)

	require.NoError(t, c.CreateTag("s", &TagSchema{Name: "player"}))
	require.NoError(t, c.CreateTagIndex("s", &IndexDef{Name: "idx_player_name", Owner: "player", Fields: []string{"name"}}))

	idx, err := c.TagIndex("s", "idx_player_name")
	require.NoError(t, err)
	assert.Equal(t, "player", idx.Owner)
}

func TestIsGod(t *testing.T) {
	c := NewMemCatalog()
	assert.False(t, c.IsGod("root"))
	c.SetGod("root")
	assert.True(t, c.IsGod("root"))
}

func TestLoadFixture(t *testing.T) {
	c, err := LoadFixture([]byte(`
spaces:
  - name: basketball
    tags:
      player:
        name: string
        age: int
    edges:
      serve:
        start_year: int
`))
	require.NoError(t, err)

	tag, err := c.TagSchema("basketball", "player")
	require.NoError(t, err)
	assert.Len(t, tag.Props, 2)

	edge, err := c.EdgeSchema("basketball", "serve")
	require.NoError(t, err)
	assert.Len(t, edge.Props, 1)
}

func TestLoadFixtureRejectsUnknownType(t *testing.T) {
	_, err := LoadFixture([]byte(`
spaces:
  - name: s
    tags:
      t:
        x: not_a_type
`))
	assert.Error(t, err)
}

func TestAlterTagAppliesAddAndDrop(t *testing.T) {
	c := NewMemCatalog()
	_, err := c.CreateSpace("s")
	require.NoError(t, err)
	require.NoError(t, c.CreateTag("s", &TagSchema{Name: "player", Props: []PropertyDef{
		{Name: "name", Type: value.TypeString},
		{Name: "age", Type: value.TypeInt},
	}}))

	require.NoError(t, c.AlterTag("s", "player",
		[]PropertyDef{{Name: "height", Type: value.TypeFloat}}, []string{"age"}))

	tag, err := c.TagSchema("s", "player")
	require.NoError(t, err)
	require.Len(t, tag.Props, 2)
	assert.Equal(t, "name", tag.Props[0].Name)
	assert.Equal(t, "height", tag.Props[1].Name)

	assert.Error(t, c.AlterTag("s", "nope", nil, nil))
}

func TestAlterEdgeAppliesAddAndDrop(t *testing.T) {
	c := NewMemCatalog()
	_, err := c.CreateSpace("s")
	require.NoError(t, err)
	require.NoError(t, c.CreateEdge("s", &EdgeSchema{Name: "serve", Props: []PropertyDef{
		{Name: "start_year", Type: value.TypeInt},
	}}))

	require.NoError(t, c.AlterEdge("s", "serve", nil, []string{"start_year"}))
	edge, err := c.EdgeSchema("s", "serve")
	require.NoError(t, err)
	assert.Empty(t, edge.Props)
}
