// Package app implements the application layer for devx.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.trai.ch/devx/internal/core/domain"
	"go.trai.ch/devx/internal/core/ports"
	"go.trai.ch/zerr"
)

// Dispatcher runs the pipeline for a task.
type Dispatcher interface {
	Dispatch(ctx context.Context, task domain.TaskID) (*domain.Report, error)
}

// Planner returns the pipeline for a task without running it.
type Planner interface {
	Pipeline(task domain.TaskID) (domain.Pipeline, error)
}

// App represents the main application logic.
type App struct {
	dispatcher Dispatcher
	planner    Planner
	logger     ports.Logger
}

// New creates a new App instance.
func New(dispatcher Dispatcher, planner Planner, log ports.Logger) *App {
	return &App{
		dispatcher: dispatcher,
		planner:    planner,
		logger:     log,
	}
}

// Run executes the pipeline for task and logs a summary.
// It returns an error joined with domain.ErrPipelineFailed when any step failed.
func (a *App) Run(ctx context.Context, task domain.TaskID) error {
	report, err := a.dispatcher.Dispatch(ctx, task)
	if err != nil {
		return err
	}

	total := len(report.Outcomes)
	failed := report.Failed()
	if len(failed) == 0 {
		a.logger.Info(fmt.Sprintf("%s: all %d step(s) succeeded", task, total))
		return nil
	}

	a.logger.Warn(fmt.Sprintf("%s: %d of %d step(s) failed: %s",
		task, len(failed), total, strings.Join(failed, ", ")))

	return errors.Join(domain.ErrPipelineFailed, zerr.With(domain.ErrStepFailed, "steps", strings.Join(failed, ", ")))
}

// Plan returns the pipeline that Run would execute for task.
func (a *App) Plan(task domain.TaskID) (domain.Pipeline, error) {
	return a.planner.Pipeline(task)
}
