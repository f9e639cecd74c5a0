package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// CommandRunner defines the interface for running external commands
// This allows mocking exec.Command in tests
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) error
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// CommandError is returned when an external tool exits unsuccessfully.
// Stderr holds whatever the tool printed before failing.
type CommandError struct {
	Name     string
	Args     []string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s exited with code %d", e.Name, e.ExitCode)
	if e.ExitCode < 0 {
		msg = fmt.Sprintf("%s: %v", e.Name, e.Err)
	}
	if tail := lastLines(e.Stderr, 5); tail != "" {
		msg += ": " + tail
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExecCommandRunner is the production implementation using os/exec
type ExecCommandRunner struct {
	// Stderr, when set, also receives the tool's diagnostic output as it is produced
	Stderr io.Writer
}

// Run executes a command, capturing stderr for the returned error
func (r *ExecCommandRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)

	var stderr bytes.Buffer
	cmd.Stderr = r.stderrWriter(&stderr)

	if err := cmd.Run(); err != nil {
		return newCommandError(name, args, stderr.String(), err)
	}
	return nil
}

// Output executes a command and returns its standard output
func (r *ExecCommandRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stderr bytes.Buffer
	cmd.Stderr = r.stderrWriter(&stderr)

	out, err := cmd.Output()
	if err != nil {
		return out, newCommandError(name, args, stderr.String(), err)
	}
	return out, nil
}

func (r *ExecCommandRunner) stderrWriter(buf *bytes.Buffer) io.Writer {
	if r.Stderr == nil {
		return buf
	}
	return io.MultiWriter(buf, r.Stderr)
}

func newCommandError(name string, args []string, stderr string, err error) *CommandError {
	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}
	return &CommandError{
		Name:     name,
		Args:     args,
		ExitCode: exitCode,
		Stderr:   stderr,
		Err:      err,
	}
}

// lastLines returns the final n non-empty lines of s joined by " | "
func lastLines(s string, n int) string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, " | ")
}

// StderrOf returns the captured diagnostic text of a failed command, if any
func StderrOf(err error) string {
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Stderr
	}
	return ""
}
