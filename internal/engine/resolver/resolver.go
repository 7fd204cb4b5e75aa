// Package resolver picks the first usable binary from an ordered candidate list.
package resolver

import (
	"context"
	"fmt"
	"strings"

	"go.trai.ch/devx/internal/core/domain"
	"go.trai.ch/devx/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver probes candidate binaries through an Executor.
type Resolver struct {
	executor ports.Executor
	probeArg string
}

// New creates a Resolver that probes with domain.ProbeArg.
func New(executor ports.Executor) *Resolver {
	return &Resolver{executor: executor, probeArg: domain.ProbeArg}
}

// Resolve returns the first candidate of tool whose probe exits successfully.
// Probes run quietly and stop at the first success.
func (r *Resolver) Resolve(ctx context.Context, tool domain.Tool) (string, error) {
	for _, candidate := range tool.Candidates {
		res := r.executor.Execute(ctx, domain.Command{
			Name:  candidate,
			Args:  []string{r.probeArg},
			Quiet: true,
		})
		if res.OK {
			return candidate, nil
		}
	}

	return "", noUsableTool(tool)
}

// Probe runs args against each candidate in order with output inherited,
// returning the first candidate that succeeds and its result. When every
// candidate fails the result carries a diagnostic naming all of them.
func (r *Resolver) Probe(ctx context.Context, tool domain.Tool, args []string) (string, domain.StepResult) {
	var last domain.StepResult
	for _, candidate := range tool.Candidates {
		last = r.executor.Execute(ctx, domain.Command{Name: candidate, Args: args})
		if last.OK {
			return candidate, last
		}
	}

	if len(tool.Candidates) == 1 {
		return "", last
	}

	return "", domain.StepResult{
		ExitCode:   last.ExitCode,
		Diagnostic: fmt.Sprintf("no usable %s among %s", tool.Name, strings.Join(tool.Candidates, ", ")),
	}
}

func noUsableTool(tool domain.Tool) error {
	err := zerr.With(domain.ErrNoUsableTool, "tool", tool.Name)
	return zerr.With(err, "candidates", strings.Join(tool.Candidates, ", "))
}
