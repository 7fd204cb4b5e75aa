// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/devx/internal/core/domain"
)

// Executor runs one external command to completion.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute spawns cmd, waits for it and maps the outcome to a StepResult.
	// A process that cannot be started yields a failed result, not an error.
	Execute(ctx context.Context, cmd domain.Command) domain.StepResult
}
