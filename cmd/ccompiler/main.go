package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"minicc/pkg/compiler"
	"minicc/pkg/utils"
)

const testSource = `int main() {
	return !-~5;
}
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run drives the front end over the file named in args, or over testSource
// when none is given, and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("ccompiler", flag.ContinueOnError)
	fs.SetOutput(stderr)
	showTokens := fs.Bool("tokens", false, "print the token stream")
	showAST := fs.Bool("ast", true, "print the AST")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	src := testSource
	if fs.NArg() > 0 {
		var err error
		_, src, err = utils.ReadSource(fs.Arg(0))
		if err != nil {
			fmt.Fprintln(stderr, "read error:", err)
			return 1
		}
	}

	// Lex
	tokens, err := compiler.Lex(src)
	if err != nil {
		fmt.Fprintln(stderr, "lex error:", err)
		return 1
	}

	if *showTokens {
		fmt.Fprintf(stdout, "Tokens (%d)\n", len(tokens))
		for _, tok := range tokens {
			fmt.Fprintln(stdout, " ", tok)
		}
		fmt.Fprintln(stdout)
	}

	// Parse
	prog, err := compiler.Parse(tokens)
	if err != nil {
		fmt.Fprintln(stderr, "parse error:", err)
		return 1
	}

	if *showAST {
		fmt.Fprintln(stdout, "AST")
		for _, fn := range prog.Functions {
			fmt.Fprintln(stdout, " ", fn)
		}
	}
	return 0
}
