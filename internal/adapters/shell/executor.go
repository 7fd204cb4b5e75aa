// Package shell runs external commands as child processes.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"

	"go.trai.ch/devx/internal/core/domain"
)

// Executor implements ports.Executor using os/exec.
// Children inherit the environment and, unless quiet, the standard streams.
type Executor struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewExecutor creates an Executor attached to the process's standard streams.
func NewExecutor() *Executor {
	return NewExecutorWithStreams(os.Stdin, os.Stdout, os.Stderr)
}

// NewExecutorWithStreams creates an Executor attached to the given streams.
func NewExecutorWithStreams(stdin io.Reader, stdout, stderr io.Writer) *Executor {
	return &Executor{stdin: stdin, stdout: stdout, stderr: stderr}
}

// Execute runs cmd to completion. A child that has started is never cancelled;
// ctx is only consulted before launch.
func (e *Executor) Execute(ctx context.Context, cmd domain.Command) domain.StepResult {
	if ctx.Err() != nil {
		return domain.NotStarted(domain.ErrInterrupted.Error())
	}
	if cmd.Name == "" {
		return domain.NotStarted("empty command")
	}

	executable, err := exec.LookPath(cmd.Name)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			return domain.NotStarted("binary not found: " + cmd.Name)
		}
		return domain.NotStarted(fmt.Sprintf("failed to start %s: %v", cmd.Name, err))
	}

	c := exec.Command(executable, cmd.Args...) //nolint:gosec,noctx // commands come from the fixed pipeline table
	c.Args[0] = cmd.Name
	c.Dir = cmd.Dir
	c.Env = os.Environ()

	if cmd.Quiet {
		c.Stdout = io.Discard
		c.Stderr = io.Discard
	} else {
		c.Stdin = e.stdin
		c.Stdout = e.stdout
		c.Stderr = e.stderr
	}

	if err := c.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return domain.NotStarted("binary not found: " + cmd.Name)
		}
		return domain.NotStarted(fmt.Sprintf("failed to start %s: %v", cmd.Name, err))
	}

	if err := c.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if code := exitErr.ExitCode(); code >= 0 {
				return domain.ExitedNonZero(code)
			}
			return domain.StepResult{ExitCode: -1, Diagnostic: exitErr.String()}
		}
		return domain.StepResult{ExitCode: -1, Diagnostic: err.Error()}
	}

	return domain.Succeeded()
}
