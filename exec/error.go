package exec

import "errors"

type execErr struct {
	msg      string
	exitCode int
}

func (e execErr) Error() string {
	return e.msg
}

func (e execErr) ExitCode() int {
	return e.exitCode
}

func NewExecErr(message string, exitCode int) error {
	if exitCode == 0 {
		return nil
	}

	return execErr{message, exitCode}
}

type ExecErr interface {
	Error() string
	ExitCode() int
}

// GetExitCode returns the exit code carried by err when it is, or wraps, an
// exec error.
func GetExitCode(err error) (int, bool) {
	var ee ExecErr
	if errors.As(err, &ee) {
		return ee.ExitCode(), true
	}

	return 0, false
}
