// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/devx/internal/adapters/config"
	_ "go.trai.ch/devx/internal/adapters/fs"
	_ "go.trai.ch/devx/internal/adapters/linear"
	_ "go.trai.ch/devx/internal/adapters/logger"
	_ "go.trai.ch/devx/internal/adapters/shell"
	_ "go.trai.ch/devx/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/devx/internal/app"
	_ "go.trai.ch/devx/internal/engine/dispatcher"
	_ "go.trai.ch/devx/internal/engine/resolver"
)
