package toolchain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"
)

// Runner executes a host shell command in a working directory and
// returns its standard output.
type Runner interface {
	Run(ctx context.Context, dir, command string) (string, error)
}

// CommandError reports a command that failed to spawn or exited non-zero.
type CommandError struct {
	// Command is the original command text as given to Run.
	Command string
	// ExitCode is the process exit code, or -1 if the command never ran.
	ExitCode int
	// Output is the captured standard error, trimmed.
	Output string
	// Err is the underlying error.
	Err error
}

// Error returns a diagnostic carrying the command text and exit code.
func (e *CommandError) Error() string {
	if e.ExitCode >= 0 {
		if e.Output != "" {
			return fmt.Sprintf("command %q exited with code %d: %s", e.Command, e.ExitCode, e.Output)
		}
		return fmt.Sprintf("command %q exited with code %d", e.Command, e.ExitCode)
	}
	return fmt.Sprintf("command %q failed to run: %v", e.Command, e.Err)
}

// Unwrap returns the underlying error.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExecRunner runs commands on the host via os/exec.
type ExecRunner struct{}

// Run splits command with shell quoting rules, executes it in dir, and
// returns captured stdout on a zero exit code.
func (ExecRunner) Run(ctx context.Context, dir, command string) (string, error) {
	words, err := shellquote.Split(command)
	if err != nil {
		return "", &CommandError{Command: command, ExitCode: -1, Err: err}
	}
	if len(words) == 0 {
		return "", &CommandError{Command: command, ExitCode: -1, Err: errors.New("empty command")}
	}

	cmd := exec.CommandContext(ctx, words[0], words[1:]...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return "", &CommandError{
			Command:  command,
			ExitCode: exitCode,
			Output:   strings.TrimSpace(stderr.String()),
			Err:      err,
		}
	}

	return stdout.String(), nil
}
