package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/devx/internal/adapters/config"
	"go.trai.ch/devx/internal/core/domain"
	"go.trai.ch/devx/internal/core/ports"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.Logger, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			lg := New().(*Logger)
			lg.SetJSON(settings.LogFormat == domain.LogFormatJSON)
			return lg, nil
		},
	})
}
