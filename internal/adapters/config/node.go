package config

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/quilldb/dbdigest/internal/core/ports"
)

// NodeID is the unique identifier for the fixture loader Graft node.
const NodeID graft.ID = "adapter.fixture_loader"

func init() {
	graft.Register(graft.Node[ports.FixtureLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.FixtureLoader, error) {
			return NewLoader(), nil
		},
	})
}
