package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"

	progrockadapter "github.com/quilldb/dbdigest/internal/adapters/telemetry/progrock"
	"github.com/quilldb/dbdigest/internal/core/ports"
)

// NodeID is the unique identifier for the Telemetry adapter Graft node.
const NodeID graft.ID = "adapter.telemetry"

// progressEnv enables the progrock recorder when set to a non-empty value.
const progressEnv = "DBDIGEST_PROGRESS"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Telemetry, error) {
			if os.Getenv(progressEnv) != "" {
				return progrockadapter.New(), nil
			}
			return NewNoOp(), nil
		},
	})
}
