package querycontext

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/graphlang/ngqlcore/expression/function"
	"github.com/graphlang/ngqlcore/value"
)

func TestRowContextGettersAndUUIDSeed(t *testing.T) {
	r := NewRowContext(function.NewRegistry())
	r.Input["name"] = value.Str("Bob")
	r.Variable["v"] = map[string]value.Value{"age": value.Int(25)}
	r.Src["person"] = map[string]value.Value{"age": value.Int(25)}
	r.Dst["person"] = map[string]value.Value{"name": value.Str("Alice")}
	r.Edge["serve"] = map[string]value.Value{"start_year": value.Int(2000)}
	r.Columns = []value.Value{value.Int(1), value.Int(2)}

	assert.Equal(t, value.Str("Bob"), r.GetInput("name"))
	assert.True(t, r.GetInput("missing").IsNull())
	assert.Equal(t, value.Int(25), r.GetVariable("v", "age"))
	assert.Equal(t, value.Int(25), r.GetSrc("person", "age"))
	assert.Equal(t, value.Str("Alice"), r.GetDst("person", "name"))
	assert.Equal(t, value.Int(2000), r.GetEdge("serve", "start_year"))
	assert.Equal(t, value.Int(2), r.GetColumn(1))
	assert.True(t, r.GetColumn(5).IsNull())
	assert.NotEmpty(t, r.UUIDSeed())

	r2 := NewRowContext(function.NewRegistry())
	assert.NotEqual(t, r.UUIDSeed(), r2.UUIDSeed())
}
