package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/jcchavezs/teexec"
)

const usage = "usage: teexec <program> <output-file>"

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(stderr, usage)
		return 1
	}

	opts := teexec.Options{Stdout: stdout}
	if f, ok := stdout.(*os.File); ok {
		// echo the command only on interactive runs
		opts.PrintCommand = term.IsTerminal(int(f.Fd()))
	}

	code, err := teexec.Run(ctx, args[0], args[1], opts)
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return 1
	}

	return code
}
