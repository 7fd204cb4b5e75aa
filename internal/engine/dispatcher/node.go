package dispatcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/devx/internal/adapters/config"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/devx/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/devx/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/devx/internal/adapters/shell"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/devx/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/devx/internal/core/domain"
	"go.trai.ch/devx/internal/core/ports"
	"go.trai.ch/devx/internal/engine/resolver"
)

// NodeID is the unique identifier for the dispatcher Graft node.
const NodeID graft.ID = "engine.dispatcher"

func init() {
	graft.Register(graft.Node[*Dispatcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.LocatorNodeID,
			shell.NodeID,
			resolver.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Dispatcher, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}

			locator, err := graft.Dep[ports.RootLocator](ctx)
			if err != nil {
				return nil, err
			}

			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			res, err := graft.Dep[*resolver.Resolver](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(NewTable(settings.Layout), locator, executor, res, tracer, log), nil
		},
	})
}
