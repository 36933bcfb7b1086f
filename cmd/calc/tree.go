package main

import (
	"fmt"
	"os"

	"github.com/midbel/calc/calc"
	"github.com/midbel/cli"
)

var treeCmd = cli.Command{
	Name:    "tree",
	Alias:   []string{"debug"},
	Summary: "print the expression tree of an expression",
	Handler: &TreeCmd{},
}

type TreeCmd struct {
	Infix bool
	Trace bool
}

func (t *TreeCmd) Run(args []string) error {
	set := cli.NewFlagSet("tree")
	set.BoolVar(&t.Infix, "infix", false, "print the tree as a fully parenthesized expression")
	set.BoolVar(&t.Trace, "trace", false, "trace the grammar rules applied on stderr")
	if err := set.Parse(args); err != nil {
		return err
	}
	if set.NArg() != 1 {
		return errMissing
	}
	p := calc.NewParser(calc.ScanString(set.Arg(0)))
	if t.Trace {
		p.Tracer = calc.TraceStderr()
	}
	expr, err := p.Parse()
	if err != nil {
		return err
	}
	if t.Infix {
		fmt.Fprintln(os.Stdout, expr)
	} else {
		fmt.Fprintln(os.Stdout, calc.Debug(expr))
	}
	return nil
}
