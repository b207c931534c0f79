// Command ngqlvalidate demonstrates wiring the validator core into a
// runnable program: stand up an in-memory catalog, seed a tiny schema, and
// validate a handful of sentences the way a server's query path would,
// printing the resulting plan tree and evaluating its projection against a
// sample row. Parsing NGQL text into ast.Sentence values happens upstream
// of this module; this binary builds sentences directly the way a parser's
// output would. Likewise, running the multi-hop graph traversal that a
// GetNeighbors/Traverse scan describes is the executor's job; evaluating
// the projection's own expressions against one row is not.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/graphlang/ngqlcore"
	"github.com/graphlang/ngqlcore/ast"
	"github.com/graphlang/ngqlcore/auth"
	"github.com/graphlang/ngqlcore/catalog"
	"github.com/graphlang/ngqlcore/expression"
	"github.com/graphlang/ngqlcore/plan"
	"github.com/graphlang/ngqlcore/querycontext"
	"github.com/graphlang/ngqlcore/value"
)

func main() {
	log := logrus.New().WithField("component", "ngqlvalidate")

	eng := ngqlcore.New(ngqlcore.Config{}, catalog.NewMemCatalog(), log)
	sess := auth.Session{Role: auth.RoleAdmin}

	if err := run(eng, sess); err != nil {
		log.WithError(err).Error("demo query sequence failed")
		os.Exit(1)
	}
}

// run walks a filtered traversal end to end: create a space and its
// person/follow schema, insert one vertex, then validate the traversal
// and evaluate its projection against a sample destination row.
func run(eng *ngqlcore.Engine, sess auth.Session) error {
	ctx := context.Background()

	setup := &ast.Sequential{Sentences: []ast.Sentence{
		&ast.CreateSpace{Name: "basketball", PartitionNum: 10, ReplicaFactor: 1},
		&ast.UseSpace{Name: "basketball"},
		&ast.CreateTag{Name: "person", Props: []ast.PropertySpec{
			{Name: "name", Type: "string"},
			{Name: "age", Type: "int"},
		}},
		&ast.CreateEdge{Name: "follow", Props: []ast.PropertySpec{
			{Name: "degree", Type: "int"},
		}},
		&ast.InsertVertices{
			TagProps: map[string][]string{"person": {"name", "age"}},
			Rows: []ast.VertexRow{
				{VID: expression.NewConstant(value.Int(1)), Tags: []ast.VertexTagValues{
					{Tag: "person", Values: []expression.Expression{
						expression.NewConstant(value.Str("Bob")),
						expression.NewConstant(value.Int(25)),
					}},
				}},
			},
		},
	}}
	if _, err := eng.Validate(ctx, sess, "", setup); err != nil {
		return errors.Wrap(err, "schema setup")
	}

	goStmt := &ast.Go{
		Steps: ast.StepClause{Min: 1, Max: 1},
		From:  ast.FromClause{VIDs: []expression.Expression{expression.NewConstant(value.Int(1))}},
		Over:  ast.OverClause{Edges: []ast.EdgeRef{{Name: "follow"}}, Direction: ast.DirOut},
		Where: &ast.WhereClause{Filter: expression.NewRelational(expression.RelGT,
			expression.NewDestProperty("person", "age"), expression.NewConstant(value.Int(30)))},
		Yield: &ast.YieldClause{Columns: []ast.YieldColumn{
			{Expr: expression.NewDestProperty("person", "name"), Alias: "name"},
		}},
	}

	res, err := eng.Validate(ctx, sess, "basketball", goStmt)
	if err != nil {
		return errors.Wrap(err, "go")
	}

	fmt.Println(goStmt.String())
	fmt.Print(plan.Describe(res.Plan))
	fmt.Println("output columns:", res.Schema)

	return evalSampleRow(eng, res.Plan)
}

// evalSampleRow evaluates a validated Project's columns against one sample
// destination row, standing in for the rows the external execution engine
// would otherwise feed this core's expression tree.
func evalSampleRow(eng *ngqlcore.Engine, n plan.PlanNode) error {
	proj, ok := n.(*plan.Project)
	if !ok {
		return nil
	}
	row := querycontext.NewRowContext(eng.Registry())
	row.Dst["person"] = map[string]value.Value{
		"name": value.Str("Alice"),
		"age":  value.Int(34),
	}
	for _, col := range proj.Columns {
		fmt.Printf("%s = %s\n", col.Alias, col.Expr.Eval(row).String())
	}
	return nil
}
