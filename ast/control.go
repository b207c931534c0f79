package ast

import "strings"

// Explain wraps another sentence to request its plan instead of running it;
// Profile additionally requests runtime statistics once executed.
type Explain struct {
	Inner   Sentence
	Profile bool
	Format  string // "row", "dot" or "dot:struct" (empty means "row"), mirrors the plan-description output mode
}

func (s *Explain) Kind() Kind       { return KindExplain }
func (s *Explain) Accept(v Visitor) { v.Visit(s) }
func (s *Explain) String() string   { return "EXPLAIN ..." }

// Return is `RETURN $var IF $cond IS NOT NULL`: forwards a bound variable's
// rows when the condition variable holds a value, otherwise produces
// nothing.
type Return struct {
	Variable  string
	Condition string // variable whose non-NULL first value enables the branch
}

func (s *Return) Kind() Kind       { return KindReturn }
func (s *Return) Accept(v Visitor) { v.Visit(s) }
func (s *Return) String() string   { return "RETURN $" + s.Variable }

// Sequential is the `;`-separated statement list: the top-level owner of a
// parsed query's sentences, validated in order.
type Sequential struct{ Sentences []Sentence }

func (s *Sequential) Kind() Kind       { return KindSequential }
func (s *Sequential) Accept(v Visitor) { v.Visit(s) }
func (s *Sequential) String() string {
	parts := make([]string, len(s.Sentences))
	for i, st := range s.Sentences {
		parts[i] = st.String()
	}
	return strings.Join(parts, "; ")
}
