package querycontext

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphlang/ngqlcore/auth"
	"github.com/graphlang/ngqlcore/catalog"
	"github.com/graphlang/ngqlcore/expression"
	"github.com/graphlang/ngqlcore/expression/function"
	"github.com/graphlang/ngqlcore/value"
)

func TestArenaPutGet(t *testing.T) {
	a := &Arena{}
	h := a.Put(expression.NewConstant(value.Int(5)))
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, value.Int(5), a.Get(h).Eval(nil))
}

func TestArenaPutConstantInterns(t *testing.T) {
	a := &Arena{}
	h1 := a.PutConstant(expression.NewConstant(value.Int(7)))
	h2 := a.PutConstant(expression.NewConstant(value.Int(7)))
	h3 := a.PutConstant(expression.NewConstant(value.Int(8)))
	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, h3)
	assert.Equal(t, 2, a.Len())
}

func TestSymbolTableDefineLookup(t *testing.T) {
	s := NewSymbolTable()
	_, ok := s.Lookup("a")
	assert.False(t, ok)

	schema := value.ColumnSchema{{Name: "id", Type: value.TypeInt}}
	s.Define("a", schema)
	got, ok := s.Lookup("a")
	require.True(t, ok)
	assert.True(t, schema.Equal(got))
}

func TestContextWithInputSchema(t *testing.T) {
	log := logrus.New().WithField("test", true)
	c := New("demo", function.NewRegistry(), catalog.NewMemCatalog(), auth.GodSession(), log)
	assert.Nil(t, c.InputSchema)

	schema := value.ColumnSchema{{Name: "x", Type: value.TypeInt}}
	c2 := c.WithInputSchema(schema)
	assert.Nil(t, c.InputSchema)
	assert.True(t, schema.Equal(c2.InputSchema))
}
