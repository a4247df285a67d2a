package exec

import (
	"context"
	"fmt"
	"io"

	"github.com/alexellis/go-execute/v2"
)

// Runner executes a shell command, streaming its merged stdout+stderr into
// the given writer.
type Runner interface {
	Run(ctx context.Context, command string, output io.Writer) (Result, error)
}

type ShellRunner struct {
	printCommand bool
	env          []string
}

func NewShellRunner(printCommand bool, env ...string) ShellRunner {
	return ShellRunner{printCommand, env}
}

// Run executes command under the platform's shell, so it may contain shell
// syntax such as pipelines and redirections. The child's stdout and stderr
// are wired to the same writer, which yields one merged stream. Output is
// never buffered in memory; bytes reach the writer as the child produces
// them.
func (r ShellRunner) Run(ctx context.Context, command string, output io.Writer) (Result, error) {
	task := execute.ExecTask{
		Command:            command,
		Shell:              true,
		Env:                r.env,
		PrintCommand:       r.printCommand,
		StdOutWriter:       output,
		StdErrWriter:       output,
		DisableStdioBuffer: true,
	}

	execRes, err := task.Execute(ctx)
	if err != nil {
		return result{}, fmt.Errorf("%s: %w", command, err)
	}

	return result{execRes}, nil
}

// RunX executes a command the same way Run does but returns an error when
// the exit code is non zero.
func (r ShellRunner) RunX(ctx context.Context, command string, output io.Writer) error {
	res, err := r.Run(ctx, command, output)
	if err != nil {
		return err
	}

	if res.ExitCode() != 0 {
		return NewExecErr(
			fmt.Sprintf("%s: exit code %d", command, res.ExitCode()),
			res.ExitCode(),
		)
	}

	return nil
}

// Result holds the result from a command run. Output is streamed to the
// caller's writer rather than captured, so only exit information remains.
type Result interface {
	ExitCode() int
	Cancelled() bool
}

type result struct {
	execute.ExecResult
}

func (r result) ExitCode() int {
	return r.ExecResult.ExitCode
}

func (r result) Cancelled() bool {
	return r.ExecResult.Cancelled
}
