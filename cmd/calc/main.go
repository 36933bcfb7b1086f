package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"slices"
	"unicode"

	"github.com/fatih/color"
	"github.com/midbel/calc/calc"
	"github.com/midbel/cli"
	"github.com/midbel/distance"
)

var (
	errFail    = errors.New("fail")
	errMissing = errors.New("missing expression")
)

var (
	summary = "calc evaluates integer arithmetic expressions"
	help    = `usage: calc <expression>
       calc <command> [options] <expression>

commands: eval, tokens, tree, serve`
)

var errColor = color.New(color.FgRed)

func main() {
	var (
		root = prepare()
		args = os.Args[1:]
		err  error
	)
	root.SetSummary(summary)
	root.SetHelp(help)

	switch {
	case len(args) == 0:
		err = errMissing
	case slices.Contains(commandNames, args[0]):
		err = root.Execute(args)
	case len(args) == 1:
		err = evaluate(args[0], EvalOptions{})
	default:
		err = root.Execute(args)
	}
	if err == nil {
		return
	}
	if errors.Is(err, flag.ErrHelp) {
		root.Help()
		os.Exit(2)
	}
	if s, ok := err.(cli.SuggestionError); ok && len(s.Others) > 0 {
		fmt.Fprintln(os.Stderr, "similar command(s)")
		for _, n := range s.Others {
			fmt.Fprintln(os.Stderr, "-", n)
		}
	} else if len(args) > 0 && errors.Is(err, calc.ErrUnsupported) {
		suggest(args[0])
	}
	if !errors.Is(err, errFail) {
		errColor.Fprintln(os.Stderr, err)
	}
	os.Exit(1)
}

var commandNames = []string{"eval", "tokens", "scan", "tree", "debug", "serve"}

func prepare() *cli.CommandTrie {
	root := cli.New()
	root.Register([]string{"eval"}, &evalCmd)
	root.Register([]string{"tokens"}, &tokensCmd)
	root.Register([]string{"scan"}, &tokensCmd)
	root.Register([]string{"tree"}, &treeCmd)
	root.Register([]string{"debug"}, &treeCmd)
	root.Register([]string{"serve"}, &serveCmd)
	return root
}

// suggest lists the commands close to word when word could not have been
// meant as an expression.
func suggest(word string) {
	for _, c := range word {
		if !unicode.IsLetter(c) {
			return
		}
	}
	others := distance.Levenshtein(word, commandNames)
	if len(others) == 0 {
		return
	}
	fmt.Fprintln(os.Stderr, "similar command(s)")
	for _, n := range others {
		fmt.Fprintln(os.Stderr, "-", n)
	}
}
