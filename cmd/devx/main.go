// Package main is the entry point for devx.
package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/devx/cmd/devx/commands"
	"go.trai.ch/devx/internal/adapters/logger"
	"go.trai.ch/devx/internal/app"
	"go.trai.ch/devx/internal/core/domain"
	"go.trai.ch/devx/internal/core/ports"
	_ "go.trai.ch/devx/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, func(ctx context.Context) (*app.Components, error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stdout io.Writer,
	stderr io.Writer,
	provider ComponentProvider,
) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var (
		application commands.Application
		log         ports.Logger
	)

	components, err := provider(ctx)
	if err != nil {
		// help and version still work; commands that need the app report err.
		application = unconfigured{err: err}
		log = logger.NewWithOutput(stderr)
	} else {
		defer func() {
			_ = components.Shutdown(context.WithoutCancel(ctx))
		}()
		application = components.App
		log = components.Logger
	}

	cli := commands.New(application)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		// Step failures were already reported by the app.
		if errors.Is(err, domain.ErrPipelineFailed) {
			return domain.ExitFailure
		}
		log.Error(err)
		return domain.ExitFailure
	}
	return domain.ExitOK
}

// unconfigured stands in for the app when the components could not be built.
type unconfigured struct {
	err error
}

func (u unconfigured) Run(context.Context, domain.TaskID) error {
	return u.err
}

func (u unconfigured) Plan(domain.TaskID) (domain.Pipeline, error) {
	return domain.Pipeline{}, u.err
}
