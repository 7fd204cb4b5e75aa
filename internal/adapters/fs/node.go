package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/devx/internal/adapters/config"
	"go.trai.ch/devx/internal/core/domain"
	"go.trai.ch/devx/internal/core/ports"
)

// LocatorNodeID is the unique identifier for the root locator Graft node.
const LocatorNodeID graft.ID = "adapter.fs.locator"

func init() {
	graft.Register(graft.Node[ports.RootLocator]{
		ID:        LocatorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.RootLocator, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewLocator(settings.Marker), nil
		},
	})
}
