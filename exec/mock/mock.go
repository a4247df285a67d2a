package mock

import (
	"context"
	"io"

	teexecexec "github.com/jcchavezs/teexec/exec"
)

type Runner struct {
	RunFn func(ctx context.Context, command string, output io.Writer) (teexecexec.Result, error)
}

var _ teexecexec.Runner = Runner{}

func (r Runner) Run(ctx context.Context, command string, output io.Writer) (teexecexec.Result, error) {
	return r.RunFn(ctx, command, output)
}

// Result is a canned command result.
type Result struct {
	Code         int
	WasCancelled bool
}

var _ teexecexec.Result = Result{}

func (r Result) ExitCode() int {
	return r.Code
}

func (r Result) Cancelled() bool {
	return r.WasCancelled
}
