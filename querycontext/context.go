// Package querycontext holds everything scoped to one validation pass: the
// expression arena, the variable symbol table, the current space, and the
// logger/catalog/registry handles a validator consults. Each query gets its
// own Context; nothing in here is shared across queries.
package querycontext

import (
	"github.com/OneOfOne/xxhash"
	"github.com/sirupsen/logrus"

	"github.com/graphlang/ngqlcore/auth"
	"github.com/graphlang/ngqlcore/catalog"
	"github.com/graphlang/ngqlcore/expression"
	"github.com/graphlang/ngqlcore/expression/function"
	"github.com/graphlang/ngqlcore/plan"
	"github.com/graphlang/ngqlcore/value"
)

// Arena is a bump allocator for expressions built during validation: nodes
// are appended and referenced by index handle rather than by pointer, so a
// validated plan can be serialized/compared by handle instead of pointer
// identity.
type Arena struct {
	nodes     []expression.Expression
	constants map[uint64]Handle
}

// Handle is an opaque index into an Arena.
type Handle int

// Put appends e and returns its Handle.
func (a *Arena) Put(e expression.Expression) Handle {
	a.nodes = append(a.nodes, e)
	return Handle(len(a.nodes) - 1)
}

// PutConstant interns a Constant by its printed form's xxhash, the fast
// path the input-property fusion rule relies on: a GO/FETCH sentence
// referencing the same literal VID across its From/To clauses gets one
// arena slot instead of one per occurrence. A hash collision only costs a
// spurious reuse check, so this calls Put on any miss or mismatch rather
// than trusting the hash alone.
func (a *Arena) PutConstant(c *expression.Constant) Handle {
	if a.constants == nil {
		a.constants = make(map[uint64]Handle)
	}
	h := xxhash.ChecksumString64(c.String())
	if existing, ok := a.constants[h]; ok {
		if ec, ok := a.nodes[existing].(*expression.Constant); ok && ec.String() == c.String() {
			return existing
		}
	}
	handle := a.Put(c)
	a.constants[h] = handle
	return handle
}

// Get dereferences a Handle. It panics on an out-of-range handle, which can
// only happen from a validator bug (a Handle minted by one Arena used
// against another), not from user input.
func (a *Arena) Get(h Handle) expression.Expression { return a.nodes[h] }

// Len reports how many expressions the arena currently holds.
func (a *Arena) Len() int { return len(a.nodes) }

// SymbolTable maps a pipe/assignment variable name to the ColumnSchema its
// producing plan node emits: the per-query variable directory consulted by
// pipe-chaining and variable-reference validation.
type SymbolTable struct {
	vars map[string]value.ColumnSchema
}

func NewSymbolTable() *SymbolTable { return &SymbolTable{vars: make(map[string]value.ColumnSchema)} }

// Define records a variable's output schema. Redefining an existing name
// overwrites it, matching assignment-statement semantics (`$a = GO ...;`
// run twice rebinds `$a`).
func (s *SymbolTable) Define(name string, schema value.ColumnSchema) {
	s.vars[name] = schema
}

// Lookup resolves a variable name to its schema.
func (s *SymbolTable) Lookup(name string) (value.ColumnSchema, bool) {
	sc, ok := s.vars[name]
	return sc, ok
}

// Names lists every currently bound variable, for diagnostics.
func (s *SymbolTable) Names() []string {
	out := make([]string, 0, len(s.vars))
	for n := range s.vars {
		out = append(out, n)
	}
	return out
}

// Context is the per-validation-pass state threaded through every sentence
// validator: the active space, the symbol table, the expression arena, the
// function registry, the metadata catalog, the caller's auth session, and a
// scoped logger.
type Context struct {
	Space    string
	Symbols  *SymbolTable
	Arena    *Arena
	Registry *function.Registry
	Catalog  catalog.Catalog
	Session  auth.Session
	Log      *logrus.Entry

	// InputSchema is the schema of whatever the previous pipe stage (or an
	// assignment's referenced variable) produced; nil at the start of a
	// sentence with no input.
	InputSchema value.ColumnSchema

	// InputPlan is the previous pipe stage's lowered plan, the node a
	// sentence consuming $-  grafts itself onto as its own root's input;
	// nil at the start of a sentence with no input.
	InputPlan plan.PlanNode
}

// New builds a Context for one validation pass.
func New(space string, reg *function.Registry, cat catalog.Catalog, sess auth.Session, log *logrus.Entry) *Context {
	return &Context{
		Space:    space,
		Symbols:  NewSymbolTable(),
		Arena:    &Arena{},
		Registry: reg,
		Catalog:  cat,
		Session:  sess,
		Log:      log,
	}
}

// WithInputSchema returns a shallow copy of c with InputSchema replaced,
// used when descending into a pipe stage that consumes the prior stage's
// output.
func (c *Context) WithInputSchema(schema value.ColumnSchema) *Context {
	cp := *c
	cp.InputSchema = schema
	return &cp
}

// WithInput returns a shallow copy of c with both InputPlan and InputSchema
// replaced, used when descending into a pipe stage (or a `$var`-sourced
// sentence) that grafts onto a prior stage's lowered plan.
func (c *Context) WithInput(p plan.PlanNode, schema value.ColumnSchema) *Context {
	cp := *c
	cp.InputPlan = p
	cp.InputSchema = schema
	return &cp
}
