package app

import (
	"context"

	"go.trai.ch/devx/internal/core/ports"
)

// Components is the root object built by the dependency graph.
type Components struct {
	App    *App
	Logger ports.Logger
	Tracer ports.Tracer
}

// Shutdown releases resources held by the components.
func (c *Components) Shutdown(ctx context.Context) error {
	if s, ok := c.Tracer.(interface{ Shutdown(context.Context) error }); ok {
		return s.Shutdown(ctx)
	}
	return nil
}
