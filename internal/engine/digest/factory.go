package digest

import "github.com/quilldb/dbdigest/internal/core/ports"

// Factory builds Runners bound to a storage backend. The lock manager,
// logger and telemetry are process-wide; the catalog, snapshot manager and
// replication/durability sources belong to one opened database instance.
type Factory struct {
	locks     ports.LockManager
	log       ports.Logger
	telemetry ports.Telemetry
}

// NewFactory creates a Factory.
func NewFactory(locks ports.LockManager, log ports.Logger, telemetry ports.Telemetry) *Factory {
	return &Factory{locks: locks, log: log, telemetry: telemetry}
}

// Backend bundles the storage-side collaborators of one database instance.
type Backend struct {
	Catalog    ports.Catalog
	Snapshots  ports.SnapshotManager
	Repl       ports.ReplicationState
	Durability ports.DurabilityWatermark
	Auth       ports.Authorizer

	Host             string
	AllowPointInTime bool
}

// Runner wires a Runner for the given backend.
func (f *Factory) Runner(b Backend) *Runner {
	coordinator := NewSnapshotCoordinator(
		b.Catalog, b.Snapshots, b.Repl, b.Durability, b.AllowPointInTime)
	return NewRunner(
		coordinator,
		NewLockingPolicy(f.locks),
		NewCollectionHasher(f.log),
		b.Auth,
		f.log,
		f.telemetry,
		b.Host,
	)
}
