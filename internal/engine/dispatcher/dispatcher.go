// Package dispatcher turns a task into a pipeline and runs it step by step.
package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.trai.ch/devx/internal/core/domain"
	"go.trai.ch/devx/internal/core/ports"
	"go.trai.ch/devx/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// Dispatcher runs the pipeline for a task.
type Dispatcher struct {
	table    *Table
	locator  ports.RootLocator
	executor ports.Executor
	resolver *resolver.Resolver
	tracer   ports.Tracer
	logger   ports.Logger
	workDir  func() (string, error)
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithWorkDir overrides how the starting directory for root discovery is found.
func WithWorkDir(fn func() (string, error)) Option {
	return func(d *Dispatcher) {
		d.workDir = fn
	}
}

// New creates a Dispatcher.
func New(
	table *Table,
	locator ports.RootLocator,
	executor ports.Executor,
	res *resolver.Resolver,
	tracer ports.Tracer,
	logger ports.Logger,
	opts ...Option,
) *Dispatcher {
	d := &Dispatcher{
		table:    table,
		locator:  locator,
		executor: executor,
		resolver: res,
		tracer:   tracer,
		logger:   logger,
		workDir:  os.Getwd,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch resolves the root and tools for task, then runs every step in order.
// An error means nothing was run. Step failures are reported in the Report.
func (d *Dispatcher) Dispatch(ctx context.Context, task domain.TaskID) (*domain.Report, error) {
	pipeline, err := d.table.Pipeline(task)
	if err != nil {
		return nil, err
	}

	root, err := d.locateRoot(pipeline)
	if err != nil {
		return nil, err
	}

	binaries, err := d.resolveTools(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	d.tracer.EmitPlan(ctx, task.String(), pipeline.StepNames())

	report := domain.NewReport(task)
	for i, step := range pipeline.Steps {
		if ctx.Err() != nil {
			d.skipRemaining(report, pipeline.Steps[i:])
			break
		}
		report.Record(step.Name, d.runStep(ctx, step, root, binaries))
	}

	return report, nil
}

func (d *Dispatcher) locateRoot(pipeline domain.Pipeline) (string, error) {
	if !pipeline.NeedsRoot() {
		return "", nil
	}

	wd, err := d.workDir()
	if err != nil {
		return "", zerr.With(domain.ErrWorkDirUnavailable, "cause", err.Error())
	}

	root, err := d.locator.Locate(wd)
	if err != nil {
		d.logger.Warn(fmt.Sprintf("no %s found in %s or any parent directory; run devx inside the repository",
			d.table.Layout().Marker, wd))
		return "", err
	}
	return root, nil
}

// resolveTools resolves each distinct tool once. The first unusable tool aborts the run.
func (d *Dispatcher) resolveTools(ctx context.Context, pipeline domain.Pipeline) (map[string]string, error) {
	binaries := make(map[string]string)
	for _, tool := range pipeline.Tools() {
		if ctx.Err() != nil {
			return nil, interrupted(ctx)
		}
		bin, err := d.resolver.Resolve(ctx, tool)
		if err != nil {
			// Probes cut short by an interrupt say nothing about the tool.
			if ctx.Err() != nil {
				return nil, interrupted(ctx)
			}
			d.logger.Warn(fmt.Sprintf("no usable %s found; tried %s",
				tool.Name, strings.Join(tool.Candidates, ", ")))
			return nil, err
		}
		binaries[tool.Name] = bin
	}
	return binaries, nil
}

func (d *Dispatcher) runStep(ctx context.Context, step domain.Step, root string, binaries map[string]string) domain.StepResult {
	_, span := d.tracer.Start(ctx, step.Name,
		ports.WithAttribute("step.command", step.Describe()),
		ports.WithAttribute("step.dir", step.Dir.String()),
	)
	defer span.End()

	var res domain.StepResult
	switch step.Kind {
	case domain.StepProbe:
		var used string
		used, res = d.resolver.Probe(ctx, step.Tool, step.Args)
		if used != "" {
			span.SetAttribute("step.binary", used)
		}
	default:
		bin := binaries[step.Tool.Name]
		span.SetAttribute("step.binary", bin)
		res = d.executor.Execute(ctx, domain.Command{
			Name: bin,
			Args: step.Args,
			Dir:  d.table.Layout().Dir(root, step.Dir),
		})
	}

	span.SetAttribute("step.exit_code", res.ExitCode)
	if !res.OK {
		span.RecordError(errors.New(res.Diagnostic))
	}
	return res
}

func interrupted(ctx context.Context) error {
	return zerr.With(domain.ErrInterrupted, "cause", ctx.Err().Error())
}

func (d *Dispatcher) skipRemaining(report *domain.Report, steps []domain.Step) {
	d.logger.Warn(fmt.Sprintf("interrupted; %d step(s) not started", len(steps)))
	for _, step := range steps {
		report.Record(step.Name, domain.NotStarted(domain.ErrInterrupted.Error()))
	}
}
