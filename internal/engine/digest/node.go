package digest

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/quilldb/dbdigest/internal/adapters/lockman"   //nolint:depguard // Wired in engine wiring
	"github.com/quilldb/dbdigest/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"github.com/quilldb/dbdigest/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"github.com/quilldb/dbdigest/internal/core/ports"
)

// NodeID is the unique identifier for the digest factory Graft node.
const NodeID graft.ID = "engine.digest"

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			lockman.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Factory, error) {
			locks, err := graft.Dep[ports.LockManager](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return NewFactory(locks, log, tel), nil
		},
	})
}
