package plan

import "strings"

// Describe renders a plan tree as an indented, human-readable outline, the
// shape an EXPLAIN FORMAT="row" response walks to produce its rows. Each
// node's own String() supplies the node-specific detail; Describe only adds
// indentation and the column list.
func Describe(n PlanNode) string {
	var b strings.Builder
	describe(&b, n, 0)
	return b.String()
}

func describe(b *strings.Builder, n PlanNode, depth int) {
	if n == nil {
		return
	}
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(n.String())
	if cols := n.ColNames(); len(cols) > 0 {
		b.WriteString("  [")
		b.WriteString(strings.Join(cols, ", "))
		b.WriteString("]")
	}
	b.WriteString("\n")
	for _, c := range n.Children() {
		describe(b, c, depth+1)
	}
}
