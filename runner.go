// Package teexec runs a command under the platform shell and duplicates its
// merged stdout+stderr to the caller's stdout and to a log file opened in
// append mode, the way `cmd 2>&1 | tee -a file` does.
package teexec

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jcchavezs/teexec/tee"
)

var (
	ErrMissingCommand    = errors.New("missing command")
	ErrMissingOutputPath = errors.New("missing output file path")
)

// Run executes command, appending its merged stdout+stderr to the file at
// outputPath while forwarding the same bytes to opts.Stdout as the child
// produces them. The file copy is flushed before Run returns.
//
// The returned code is the command's own exit status. A non-nil error means
// the run itself could not be carried out (bad arguments, unopenable output
// file, unspawnable shell) and the code is 1.
func Run(ctx context.Context, command, outputPath string, opts Options) (int, error) {
	if command == "" {
		return 1, ErrMissingCommand
	}

	if outputPath == "" {
		return 1, ErrMissingOutputPath
	}

	logger := slog.New(opts.logHandler())

	sink, err := tee.NewWriter(opts.fs(), outputPath, opts.stdout())
	if err != nil {
		return 1, err
	}

	logger.DebugContext(ctx, "Running command", "command", command, "output", outputPath)

	start := time.Now()
	res, runErr := opts.runner().Run(ctx, command, sink)
	closeErr := sink.Close()

	if runErr != nil {
		return 1, runErr
	}

	if closeErr != nil {
		return 1, closeErr
	}

	logger.InfoContext(ctx, "Command finished",
		"command", command,
		"exit_code", res.ExitCode(),
		"cancelled", res.Cancelled(),
		"duration", time.Since(start),
	)

	return res.ExitCode(), nil
}
