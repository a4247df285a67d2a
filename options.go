package teexec

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/afero"

	teexecexec "github.com/jcchavezs/teexec/exec"
)

type Options struct {
	// PrintCommand echoes the command before running it.
	PrintCommand bool

	// Env holds extra "KEY=value" pairs for the child's environment.
	Env []string

	// Stdout receives the terminal copy of the merged stream. Defaults to
	// os.Stdout.
	Stdout io.Writer

	// FS is the filesystem the output file lives on. Defaults to the OS
	// filesystem.
	FS afero.Fs

	// LogHandler receives the runner's own diagnostics. The child's output
	// never goes through it. Defaults to discarding them.
	LogHandler slog.Handler

	// Runner overrides the shell runner, mostly for tests.
	Runner teexecexec.Runner
}

func (o Options) stdout() io.Writer {
	if o.Stdout != nil {
		return o.Stdout
	}

	return os.Stdout
}

func (o Options) fs() afero.Fs {
	if o.FS != nil {
		return o.FS
	}

	return afero.NewOsFs()
}

func (o Options) logHandler() slog.Handler {
	if o.LogHandler != nil {
		return o.LogHandler
	}

	return slog.DiscardHandler
}

func (o Options) runner() teexecexec.Runner {
	if o.Runner != nil {
		return o.Runner
	}

	return teexecexec.NewShellRunner(o.PrintCommand, o.Env...)
}
