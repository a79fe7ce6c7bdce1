package digest

import (
	"context"

	"go.trai.ch/zerr"

	"github.com/quilldb/dbdigest/internal/core/domain"
	"github.com/quilldb/dbdigest/internal/core/ports"
)

// maxStabilityAttempts bounds the catalog/snapshot stability loop. The loop
// is local retry, not I/O wait; under any realistic DDL rate it converges in
// one or two iterations.
const maxStabilityAttempts = 64

// SnapshotCoordinator acquires a catalog view and a storage snapshot that
// correspond to the same instant, and resolves optional point-in-time
// constraints against the replication and durability bounds.
type SnapshotCoordinator struct {
	catalog    ports.Catalog
	snapshots  ports.SnapshotManager
	repl       ports.ReplicationState
	durability ports.DurabilityWatermark

	// allowPointInTime gates explicit read timestamps; they are a
	// diagnostic/test facility, off by default.
	allowPointInTime bool
}

// NewSnapshotCoordinator creates a SnapshotCoordinator.
func NewSnapshotCoordinator(
	catalog ports.Catalog,
	snapshots ports.SnapshotManager,
	repl ports.ReplicationState,
	durability ports.DurabilityWatermark,
	allowPointInTime bool,
) *SnapshotCoordinator {
	return &SnapshotCoordinator{
		catalog:          catalog,
		snapshots:        snapshots,
		repl:             repl,
		durability:       durability,
		allowPointInTime: allowPointInTime,
	}
}

// ValidateReadTimestamp checks an explicit read timestamp against the
// replication last-applied position and the storage all-durable watermark.
// Called before any lock is taken; a nil timestamp is always valid.
func (c *SnapshotCoordinator) ValidateReadTimestamp(ts *domain.Timestamp) error {
	if ts == nil {
		return nil
	}

	if !c.allowPointInTime {
		return zerr.Wrap(domain.ErrInvalidOptions,
			"point-in-time reads are not enabled on this host")
	}

	if ts.IsZero() {
		return zerr.Wrap(domain.ErrInvalidOptions,
			"read timestamp must not be zero")
	}

	if !c.repl.Enabled() {
		return zerr.Wrap(domain.ErrInvalidOptions,
			"point-in-time reads require replication to be enabled")
	}

	if lastApplied := c.repl.LastApplied(); *ts > lastApplied {
		return zerr.With(
			zerr.With(
				zerr.Wrap(domain.ErrInvalidOptions,
					"read timestamp must not be greater than the last applied position"),
				"requested", ts.String(),
			),
			"last_applied", lastApplied.String(),
		)
	}

	if allDurable := c.durability.AllDurable(); *ts > allDurable {
		return zerr.With(
			zerr.With(
				zerr.Wrap(domain.ErrInvalidOptions,
					"read timestamp must not be greater than the all-durable timestamp"),
				"requested", ts.String(),
			),
			"all_durable", allDurable.String(),
		)
	}

	return nil
}

// Acquire returns a consistent catalog view / storage snapshot pair,
// optionally bound to a point-in-time timestamp. The caller must have run
// ValidateReadTimestamp first.
//
// The loop reads the catalog generation, opens a snapshot, then re-reads the
// generation. Equal generations prove the view enumerates exactly the
// collections visible inside the snapshot; otherwise the snapshot raced a
// concurrent create or drop and is discarded.
func (c *SnapshotCoordinator) Acquire(ctx context.Context, ts *domain.Timestamp) (*DatabaseSnapshot, error) {
	for attempt := 0; attempt < maxStabilityAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, zerr.Wrap(err, "consistent view acquisition interrupted")
		}

		before := c.catalog.Current()

		snap, err := c.snapshots.Open()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to open storage snapshot")
		}

		after := c.catalog.Current()
		if before.Generation() != after.Generation() {
			snap.Close()
			continue
		}

		if ts != nil {
			// A bound timestamp makes every cursor under this snapshot read
			// at the supplied instant. Exact point-in-time semantics also
			// require blocking on prepares active at that instant, so the
			// default ignore policy is switched to enforce.
			snap.BindReadTimestamp(*ts)
			snap.SetPrepareConflictBehavior(domain.PrepareEnforce)
		}

		return &DatabaseSnapshot{View: before, Snap: snap}, nil
	}

	return nil, zerr.With(
		zerr.Wrap(domain.ErrCatalogUnstable,
			"could not acquire a consistent catalog and snapshot"),
		"attempts", maxStabilityAttempts,
	)
}
