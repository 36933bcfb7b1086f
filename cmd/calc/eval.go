package main

import (
	"fmt"
	"os"

	"github.com/midbel/calc/calc"
	"github.com/midbel/cli"
)

var evalCmd = cli.Command{
	Name:    "eval",
	Summary: "evaluate an expression and print its value",
	Handler: &EvalCmd{},
}

type EvalOptions struct {
	Trace bool
	Stack bool
}

type EvalCmd struct {
	EvalOptions
}

func (e *EvalCmd) Run(args []string) error {
	set := cli.NewFlagSet("eval")
	set.BoolVar(&e.Trace, "trace", false, "trace the grammar rules applied on stderr")
	set.BoolVar(&e.Stack, "stack", false, "print the stack attached to an error")
	if err := set.Parse(args); err != nil {
		return err
	}
	if set.NArg() != 1 {
		return errMissing
	}
	return evaluate(set.Arg(0), e.EvalOptions)
}

func evaluate(expr string, opts EvalOptions) error {
	p := calc.NewParser(calc.ScanString(expr))
	if opts.Trace {
		p.Tracer = calc.TraceStderr()
	}
	res, err := calc.EvaluateWith(p)
	if err != nil {
		if opts.Stack {
			errColor.Fprintf(os.Stderr, "%+v\n", err)
			return errFail
		}
		return err
	}
	fmt.Fprintln(os.Stdout, res)
	return nil
}
