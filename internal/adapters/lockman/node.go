package lockman

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/quilldb/dbdigest/internal/core/ports"
)

// NodeID is the unique identifier for the lock manager Graft node.
const NodeID graft.ID = "adapter.lockman"

func init() {
	graft.Register(graft.Node[ports.LockManager]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.LockManager, error) {
			return New(), nil
		},
	})
}
