package tee

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/spf13/afero"
)

// Writer duplicates every byte it receives to a log file opened in append
// mode and to a forward writer, typically the process's own stdout.
type Writer struct {
	mu      sync.Mutex
	file    afero.File
	forward io.Writer
}

// NewWriter opens path on fs for appending, creating the file when missing.
// Pre-existing content is preserved.
func NewWriter(fs afero.Fs, path string, forward io.Writer) (*Writer, error) {
	f, err := fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	return &Writer{file: f, forward: forward}, nil
}

// Write appends p to the file before forwarding it, so any byte that reached
// the forward copy is already in the file, in the same order. The child's
// stdout and stderr pipes write from separate goroutines, hence the lock.
func (w *Writer) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := w.file.Write(p); err != nil {
		return 0, fmt.Errorf("appending to log file: %w", err)
	}

	return w.forward.Write(p)
}

// Close flushes the file copy to stable storage and releases the handle.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.file.Sync(); err != nil {
		_ = w.file.Close()
		return fmt.Errorf("flushing log file: %w", err)
	}

	if err := w.file.Close(); err != nil {
		return fmt.Errorf("closing log file: %w", err)
	}

	return nil
}
