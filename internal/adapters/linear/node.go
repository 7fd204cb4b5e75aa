package linear

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/devx/internal/adapters/config"
	"go.trai.ch/devx/internal/adapters/detector"
	"go.trai.ch/devx/internal/core/domain"
	"go.trai.ch/devx/internal/core/ports"
)

// NodeID is the unique identifier for the renderer Graft node.
const NodeID graft.ID = "adapter.renderer"

func init() {
	graft.Register(graft.Node[ports.Renderer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.Renderer, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			mode := detector.ResolveMode(detector.DetectEnvironment(), settings.Output)
			return NewRenderer(nil, detector.Profile(mode)), nil
		},
	})
}
