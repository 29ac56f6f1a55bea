// Package runner executes the external generator commands the setup pipeline
// shells out to. The Runner interface keeps orchestration logic testable
// without touching the real filesystem or spawning processes.
package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Runner runs external commands and resolves binaries on PATH.
type Runner interface {
	// Run executes name with args in dir (empty dir means the current
	// directory) and streams output. A non-zero exit is returned as an error.
	Run(ctx context.Context, dir, name string, args ...string) error

	// Output executes name with args and returns its trimmed stdout.
	Output(ctx context.Context, dir, name string, args ...string) (string, error)

	// LookPath reports where name resolves on PATH.
	LookPath(name string) (string, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes the command, streaming stdout/stderr to the configured writers.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	bin, err := exec.LookPath(name)
	if err != nil {
		return fmt.Errorf("%s not found on PATH: %w", name, err)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	cmd.Env = os.Environ()

	stdout := r.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := r.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.Stdin = os.Stdin

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s %s: %w", name, strings.Join(args, " "), err)
	}
	return nil
}

// Output executes the command and captures its stdout.
func (r *ExecRunner) Output(ctx context.Context, dir, name string, args ...string) (string, error) {
	bin, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%s not found on PATH: %w", name, err)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir

	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("running %s %s: %w", name, strings.Join(args, " "), err)
	}
	return strings.TrimSpace(string(out)), nil
}

// LookPath resolves name on PATH.
func (r *ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
