// Package ngqlcore is the query-language frontend: it takes a parsed
// ast.Sentence tree and produces a validated plan.PlanNode DAG ready for an
// executor, together with a wire-level status code. Parsing the textual
// query into the sentence tree and running the plan are both outside this
// package.
package ngqlcore

import (
	"context"

	"github.com/sirupsen/logrus"
	"gopkg.in/src-d/go-errors.v1"

	"github.com/graphlang/ngqlcore/ast"
	"github.com/graphlang/ngqlcore/auth"
	"github.com/graphlang/ngqlcore/catalog"
	"github.com/graphlang/ngqlcore/expression/function"
	"github.com/graphlang/ngqlcore/plan"
	"github.com/graphlang/ngqlcore/querycontext"
	"github.com/graphlang/ngqlcore/validator"
	"github.com/graphlang/ngqlcore/value"
)

// StatusCode is the wire-level outcome class of one statement.
type StatusCode int

const (
	CodeSucceeded StatusCode = iota
	CodeSyntaxError
	CodeStatementEmpty
	CodeSemanticError
	CodeBadPermission
	CodeExecutionError
)

func (c StatusCode) String() string {
	switch c {
	case CodeSucceeded:
		return "SUCCEEDED"
	case CodeSyntaxError:
		return "E_SYNTAX_ERROR"
	case CodeStatementEmpty:
		return "E_STATEMENT_EMPTY"
	case CodeSemanticError:
		return "E_SEMANTIC_ERROR"
	case CodeBadPermission:
		return "E_BAD_PERMISSION"
	default:
		return "E_EXECUTION_ERROR"
	}
}

var (
	// ErrStatementEmpty is returned for a nil sentence or an empty
	// sequential.
	ErrStatementEmpty = errors.NewKind("statement is empty")
	// ErrTooManySentences bounds a sequential's length; runaway statement
	// lists fail before any of their sentences validate.
	ErrTooManySentences = errors.NewKind("sequential exceeds %d sentences")
	// ErrCancelled is returned when the caller's context expires between
	// sentence validations.
	ErrCancelled = errors.NewKind("query cancelled: %s")
)

// DefaultMaxSentences bounds a sequential statement list unless the Config
// overrides it.
const DefaultMaxSentences = 512

// Config carries the engine's tunables.
type Config struct {
	// MaxSentencesPerSequential caps the number of `;`-separated sentences
	// one statement may carry. Zero means DefaultMaxSentences.
	MaxSentencesPerSequential int
}

// Engine validates parsed statements against a metadata catalog. The
// function registry is built once here and read-only afterwards; the
// catalog is shared and must be safe for concurrent readers. Each Validate
// call gets its own query context, so engines are safe for concurrent use.
type Engine struct {
	cfg      Config
	registry *function.Registry
	catalog  catalog.Catalog
	log      *logrus.Entry
}

// New builds an Engine over cat.
func New(cfg Config, cat catalog.Catalog, log *logrus.Entry) *Engine {
	if cfg.MaxSentencesPerSequential <= 0 {
		cfg.MaxSentencesPerSequential = DefaultMaxSentences
	}
	return &Engine{cfg: cfg, registry: function.NewRegistry(), catalog: cat, log: log}
}

// Registry exposes the engine's builtin-function registry for callers that
// evaluate validated expressions themselves.
func (e *Engine) Registry() *function.Registry { return e.registry }

// Result is one statement's validated outcome.
type Result struct {
	Plan   plan.PlanNode
	Schema value.ColumnSchema
	Code   StatusCode
}

// Validate type-checks s for sess in space and lowers it to a plan. A
// sequential validates sentence by sentence with catalog and symbol-table
// effects carried forward; the first error aborts the statement and
// discards the partial plan. ctx is observed between sentence validations,
// the statement's only safe cancellation points.
func (e *Engine) Validate(ctx context.Context, sess auth.Session, space string, s ast.Sentence) (*Result, error) {
	if s == nil {
		return &Result{Code: CodeStatementEmpty}, ErrStatementEmpty.New()
	}
	sentences := []ast.Sentence{s}
	if seq, ok := s.(*ast.Sequential); ok {
		if len(seq.Sentences) == 0 {
			return &Result{Code: CodeStatementEmpty}, ErrStatementEmpty.New()
		}
		if len(seq.Sentences) > e.cfg.MaxSentencesPerSequential {
			return &Result{Code: CodeSemanticError}, ErrTooManySentences.New(e.cfg.MaxSentencesPerSequential)
		}
		sentences = seq.Sentences
	}

	qctx := querycontext.New(space, e.registry, e.catalog, sess, e.log)
	var res Result
	for _, st := range sentences {
		if err := ctx.Err(); err != nil {
			return &Result{Code: CodeExecutionError}, ErrCancelled.New(err)
		}
		n, schema, err := validator.New(qctx).Validate(st)
		if err != nil {
			return &Result{Code: classify(err)}, err
		}
		if n != nil {
			res.Plan, res.Schema = n, schema
		}
	}
	res.Code = CodeSucceeded
	return &res, nil
}

// classify maps a validation error onto its wire-level status code.
func classify(err error) StatusCode {
	switch {
	case auth.ErrNotAuthorized.Is(err):
		return CodeBadPermission
	case validator.ErrBadFormat.Is(err):
		return CodeSyntaxError
	default:
		return CodeSemanticError
	}
}
