package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/quilldb/dbdigest/internal/core/domain"
)

// SnapshotManager opens storage snapshots.
//
//go:generate mockgen -source=storage.go -destination=mocks/mock_storage.go -package=mocks
type SnapshotManager interface {
	// Open returns a snapshot of the latest committed state. The caller owns
	// the snapshot and must Close it.
	Open() (Snapshot, error)
}

// Snapshot is one storage snapshot. A snapshot is used by a single operation
// and is never shared as mutable state across operations.
type Snapshot interface {
	// BindReadTimestamp pins the snapshot's read source to an explicit
	// point-in-time timestamp.
	BindReadTimestamp(ts domain.Timestamp)

	// ReadTimestamp returns the bound point-in-time timestamp, if any.
	ReadTimestamp() (domain.Timestamp, bool)

	// SetPrepareConflictBehavior switches how scans under this snapshot treat
	// prepared transactions.
	SetPrepareConflictBehavior(b domain.PrepareConflictBehavior)

	// Scan opens a cursor over a collection's documents in the given order.
	Scan(ctx context.Context, id uuid.UUID, order domain.ScanOrder) (Cursor, error)

	// Close releases the snapshot.
	Close()
}

// Cursor walks documents one at a time. Next returns ok=false after the last
// document; a non-nil error aborts the scan.
type Cursor interface {
	Next() (doc []byte, ok bool, err error)
	Close() error
}
