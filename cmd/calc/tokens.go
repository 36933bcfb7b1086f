package main

import (
	"fmt"
	"os"

	"github.com/midbel/calc/calc"
	"github.com/midbel/cli"
)

var tokensCmd = cli.Command{
	Name:    "tokens",
	Alias:   []string{"scan"},
	Summary: "print the tokens of an expression",
	Handler: &TokensCmd{},
}

type TokensCmd struct {
	Position bool
}

func (t *TokensCmd) Run(args []string) error {
	set := cli.NewFlagSet("tokens")
	set.BoolVar(&t.Position, "position", false, "print the position of each token")
	if err := set.Parse(args); err != nil {
		return err
	}
	if set.NArg() != 1 {
		return errMissing
	}
	for tok, err := range calc.ScanString(set.Arg(0)).Tokens() {
		if err != nil {
			return err
		}
		if t.Position {
			fmt.Fprintf(os.Stdout, "%s\t%s\n", tok.Position, tok)
		} else {
			fmt.Fprintln(os.Stdout, tok)
		}
	}
	return nil
}
