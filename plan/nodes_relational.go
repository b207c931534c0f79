package plan

import "github.com/graphlang/ngqlcore/expression"

// Filter drops rows for which Predicate is not true, WHERE/WHEN's physical
// operator.
type Filter struct {
	base
	Predicate expression.Expression
}

func NewFilter(pred expression.Expression, input PlanNode) *Filter {
	return &Filter{base: newBase(input.ColNames(), input), Predicate: pred}
}

func (n *Filter) Kind() Kind     { return KindFilter }
func (n *Filter) String() string { return "Filter" }

// ProjectColumn is one computed output column: an expression plus its
// output name.
type ProjectColumn struct {
	Expr  expression.Expression
	Alias string
}

// Project evaluates a YIELD column list against each input row.
type Project struct {
	base
	Columns  []ProjectColumn
	Distinct bool
}

func NewProject(cols []ProjectColumn, distinct bool, input PlanNode) *Project {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Alias
	}
	var children []PlanNode
	if input != nil {
		children = []PlanNode{input}
	}
	return &Project{base: newBase(names, children...), Columns: cols, Distinct: distinct}
}

func (n *Project) Kind() Kind     { return KindProject }
func (n *Project) String() string { return "Project" }

// AggItem is one `fn(arg) AS alias` aggregate column.
type AggItem struct {
	Func  string
	Arg   expression.Expression
	Alias string
}

// Aggregate groups rows by GroupKeys and reduces each group through Items,
// GROUP BY's physical operator.
type Aggregate struct {
	base
	GroupKeys []expression.Expression
	Items     []AggItem
}

func NewAggregate(keys []expression.Expression, items []AggItem, input PlanNode) *Aggregate {
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.Alias
	}
	return &Aggregate{base: newBase(names, input), GroupKeys: keys, Items: items}
}

func (n *Aggregate) Kind() Kind     { return KindAggregate }
func (n *Aggregate) String() string { return "Aggregate" }

// SortFactor is one ORDER BY key, direction-tagged.
type SortFactor struct {
	Expr       expression.Expression
	Descending bool
}

// Sort reorders rows by a sequence of SortFactors.
type Sort struct {
	base
	Factors []SortFactor
}

func NewSort(factors []SortFactor, input PlanNode) *Sort {
	return &Sort{base: newBase(input.ColNames(), input), Factors: factors}
}

func (n *Sort) Kind() Kind     { return KindSort }
func (n *Sort) String() string { return "Sort" }

// TopN fuses Sort+Limit into one bounded-heap operator, the optimizer's
// usual rewrite of `ORDER BY ... LIMIT n`.
type TopN struct {
	base
	Factors []SortFactor
	Offset  int64
	Count   int64
}

func NewTopN(factors []SortFactor, offset, count int64, input PlanNode) *TopN {
	return &TopN{base: newBase(input.ColNames(), input), Factors: factors, Offset: offset, Count: count}
}

func (n *TopN) Kind() Kind     { return KindTopN }
func (n *TopN) String() string { return "TopN" }

// Limit bounds and offsets a row stream without requiring a sort.
type Limit struct {
	base
	Offset int64
	Count  int64
}

func NewLimit(offset, count int64, input PlanNode) *Limit {
	return &Limit{base: newBase(input.ColNames(), input), Offset: offset, Count: count}
}

func (n *Limit) Kind() Kind     { return KindLimit }
func (n *Limit) String() string { return "Limit" }

// Dedup removes rows that exactly duplicate an earlier row, `YIELD DISTINCT`'s
// physical operator.
type Dedup struct{ base }

func NewDedup(input PlanNode) *Dedup { return &Dedup{base: newBase(input.ColNames(), input)} }

func (n *Dedup) Kind() Kind     { return KindDedup }
func (n *Dedup) String() string { return "Dedup" }

// setOp is shared by Union/Intersect/Minus: two same-shaped inputs combined
// row-wise.
type setOp struct{ base }

// Union concatenates Left and Right, removing duplicates unless All is set.
type Union struct {
	setOp
	All bool
}

func NewUnion(all bool, left, right PlanNode) *Union {
	return &Union{setOp: setOp{newBase(left.ColNames(), left, right)}, All: all}
}

func (n *Union) Kind() Kind     { return KindUnion }
func (n *Union) String() string { return "Union" }

// Intersect keeps rows present in both Left and Right.
type Intersect struct{ setOp }

func NewIntersect(left, right PlanNode) *Intersect {
	return &Intersect{setOp{newBase(left.ColNames(), left, right)}}
}

func (n *Intersect) Kind() Kind     { return KindIntersect }
func (n *Intersect) String() string { return "Intersect" }

// Minus keeps rows present in Left but absent from Right.
type Minus struct{ setOp }

func NewMinus(left, right PlanNode) *Minus {
	return &Minus{setOp{newBase(left.ColNames(), left, right)}}
}

func (n *Minus) Kind() Kind     { return KindMinus }
func (n *Minus) String() string { return "Minus" }

// DataCollect gathers every row produced across this plan's variable-scoped
// subtrees into one DataSet value, used to materialize a `$var` for a later
// reference.
type DataCollect struct {
	base
	Vars []string
}

func NewDataCollect(vars []string, input PlanNode) *DataCollect {
	return &DataCollect{base: newBase(input.ColNames(), input), Vars: vars}
}

func (n *DataCollect) Kind() Kind     { return KindDataCollect }
func (n *DataCollect) String() string { return "DataCollect" }

// Loop re-executes Body while Condition holds, the n-step GO/FIND PATH
// traversal's iterative backbone when steps aren't statically boundable.
type Loop struct {
	base
	Condition expression.Expression
	Body      PlanNode
}

func NewLoop(cond expression.Expression, body PlanNode) *Loop {
	return &Loop{base: newBase(body.ColNames(), body), Condition: cond, Body: body}
}

func (n *Loop) Kind() Kind     { return KindLoop }
func (n *Loop) String() string { return "Loop" }

// Select is an if/else plan branch chosen by Condition, backing conditional
// sentence forms that pick between two sub-plans at runtime.
type Select struct {
	base
	Condition      expression.Expression
	IfBranch, Else PlanNode
}

func NewSelect(cond expression.Expression, ifBranch, elseBranch PlanNode) *Select {
	return &Select{base: newBase(ifBranch.ColNames(), ifBranch, elseBranch), Condition: cond, IfBranch: ifBranch, Else: elseBranch}
}

func (n *Select) Kind() Kind     { return KindSelect }
func (n *Select) String() string { return "Select" }

// PassThrough forwards its input unchanged; used as a placeholder root when
// a sentence needs no relational processing of its own (e.g. a bare
// variable reference).
type PassThrough struct{ base }

func NewPassThrough(input PlanNode) *PassThrough {
	return &PassThrough{base: newBase(input.ColNames(), input)}
}

func (n *PassThrough) Kind() Kind     { return KindPassThrough }
func (n *PassThrough) String() string { return "PassThrough" }

// Assign binds a variable name to the rows flowing out of Input, the plan
// side of an NGQL assignment statement.
type Assign struct {
	base
	Variable string
}

func NewAssign(variable string, input PlanNode) *Assign {
	return &Assign{base: newBase(input.ColNames(), input), Variable: variable}
}

func (n *Assign) Kind() Kind     { return KindAssign }
func (n *Assign) String() string { return "Assign $" + n.Variable }

// joinOp is shared by InnerJoin/LeftJoin.
type joinOp struct {
	base
	On expression.Expression
}

// InnerJoin keeps only row-pairs from Left/Right that satisfy On.
type InnerJoin struct{ joinOp }

func NewInnerJoin(on expression.Expression, left, right PlanNode) *InnerJoin {
	cols := append(append([]string{}, left.ColNames()...), right.ColNames()...)
	return &InnerJoin{joinOp{newBase(cols, left, right), on}}
}

func (n *InnerJoin) Kind() Kind     { return KindInnerJoin }
func (n *InnerJoin) String() string { return "InnerJoin" }

// LeftJoin keeps every Left row, padding with NULLs when no Right row
// satisfies On.
type LeftJoin struct{ joinOp }

func NewLeftJoin(on expression.Expression, left, right PlanNode) *LeftJoin {
	cols := append(append([]string{}, left.ColNames()...), right.ColNames()...)
	return &LeftJoin{joinOp{newBase(cols, left, right), on}}
}

func (n *LeftJoin) Kind() Kind     { return KindLeftJoin }
func (n *LeftJoin) String() string { return "LeftJoin" }

// Explain wraps Inner, requesting its plan description instead of running it.
type Explain struct {
	base
	Inner   PlanNode
	Profile bool
	Format  string
}

func NewExplain(inner PlanNode, profile bool, format string) *Explain {
	return &Explain{base: newBase(inner.ColNames(), inner), Inner: inner, Profile: profile, Format: format}
}

func (n *Explain) Kind() Kind     { return KindExplain }
func (n *Explain) String() string { return "Explain" }

// Unwind flattens a List-valued column into one row per element, backing a
// YIELD expression that fans a List column out into separate rows.
type Unwind struct {
	base
	Column string
	Alias  string
}

func NewUnwind(column, alias string, input PlanNode) *Unwind {
	cols := append(append([]string{}, input.ColNames()...), alias)
	return &Unwind{base: newBase(cols, input), Column: column, Alias: alias}
}

func (n *Unwind) Kind() Kind     { return KindUnwind }
func (n *Unwind) String() string { return "Unwind" }
