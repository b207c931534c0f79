package ngqlcore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphlang/ngqlcore/ast"
	"github.com/graphlang/ngqlcore/auth"
	"github.com/graphlang/ngqlcore/catalog"
	"github.com/graphlang/ngqlcore/expression"
	"github.com/graphlang/ngqlcore/plan"
	"github.com/graphlang/ngqlcore/value"
)

func newTestEngine() *Engine {
	return New(Config{}, catalog.NewMemCatalog(), nil)
}

func TestValidateSequentialCarriesSchemaEffects(t *testing.T) {
	e := newTestEngine()
	sess := auth.Session{Role: auth.RoleAdmin}

	res, err := e.Validate(context.Background(), sess, "", &ast.Sequential{Sentences: []ast.Sentence{
		&ast.CreateSpace{Name: "basketball", PartitionNum: 10, ReplicaFactor: 1},
		&ast.UseSpace{Name: "basketball"},
		&ast.CreateTag{Name: "player", Props: []ast.PropertySpec{{Name: "name", Type: "string"}}},
		&ast.ShowTags{},
	}})
	require.NoError(t, err)
	assert.Equal(t, CodeSucceeded, res.Code)
	require.IsType(t, &plan.ShowTags{}, res.Plan)
}

func TestValidateEmptyStatement(t *testing.T) {
	e := newTestEngine()
	sess := auth.Session{Role: auth.RoleAdmin}

	res, err := e.Validate(context.Background(), sess, "", nil)
	assert.Error(t, err)
	assert.Equal(t, CodeStatementEmpty, res.Code)

	res, err = e.Validate(context.Background(), sess, "", &ast.Sequential{})
	assert.Error(t, err)
	assert.Equal(t, CodeStatementEmpty, res.Code)
}

func TestValidateSequentialBound(t *testing.T) {
	e := New(Config{MaxSentencesPerSequential: 2}, catalog.NewMemCatalog(), nil)
	sess := auth.Session{Role: auth.RoleAdmin}

	seq := &ast.Sequential{Sentences: []ast.Sentence{
		&ast.ShowSpaces{}, &ast.ShowSpaces{}, &ast.ShowSpaces{},
	}}
	res, err := e.Validate(context.Background(), sess, "", seq)
	assert.Error(t, err)
	assert.True(t, ErrTooManySentences.Is(err))
	assert.Equal(t, CodeSemanticError, res.Code)
}

func TestValidateMapsPermissionErrors(t *testing.T) {
	e := newTestEngine()
	user := auth.Session{Role: auth.RoleUser}

	res, err := e.Validate(context.Background(), user, "", &ast.CreateSpace{Name: "s"})
	assert.Error(t, err)
	assert.Equal(t, CodeBadPermission, res.Code)
	assert.Equal(t, "E_BAD_PERMISSION", res.Code.String())
}

func TestValidateMapsBadExplainFormatToSyntax(t *testing.T) {
	e := newTestEngine()
	sess := auth.Session{Role: auth.RoleAdmin}

	res, err := e.Validate(context.Background(), sess, "", &ast.Explain{Inner: &ast.ShowSpaces{}, Format: "xml"})
	assert.Error(t, err)
	assert.Equal(t, CodeSyntaxError, res.Code)
}

func TestValidateObservesCancellation(t *testing.T) {
	e := newTestEngine()
	sess := auth.Session{Role: auth.RoleAdmin}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := e.Validate(ctx, sess, "", &ast.ShowSpaces{})
	assert.Error(t, err)
	assert.Equal(t, CodeExecutionError, res.Code)
}

func TestValidateErrorDiscardsPartialPlan(t *testing.T) {
	e := newTestEngine()
	sess := auth.Session{Role: auth.RoleAdmin}

	res, err := e.Validate(context.Background(), sess, "", &ast.Sequential{Sentences: []ast.Sentence{
		&ast.CreateSpace{Name: "s", PartitionNum: 1, ReplicaFactor: 1},
		&ast.UseSpace{Name: "nope"},
	}})
	assert.Error(t, err)
	assert.Nil(t, res.Plan)
}

func TestValidatePipedQueryThroughEngine(t *testing.T) {
	e := newTestEngine()
	sess := auth.Session{Role: auth.RoleAdmin}

	yield := &ast.Yield{Clause: ast.YieldClause{Columns: []ast.YieldColumn{
		{Expr: expression.NewConstant(value.Int(1)), Alias: "id"},
	}}}
	res, err := e.Validate(context.Background(), sess, "", &ast.Pipe{
		Left:  yield,
		Right: &ast.Limit{Clause: ast.LimitClause{Count: 1}},
	})
	require.NoError(t, err)
	require.IsType(t, &plan.Limit{}, res.Plan)
	require.Len(t, res.Schema, 1)
	assert.Equal(t, "id", res.Schema[0].Name)
}
