// Package memstore implements the storage-side ports on an in-memory MVCC
// document store with a versioned catalog. It backs the CLI and the
// integration-style tests; a durable engine would slot in behind the same
// ports.
package memstore

import (
	"sync"

	"github.com/google/uuid"
	"go.trai.ch/zerr"

	"github.com/quilldb/dbdigest/internal/core/domain"
	"github.com/quilldb/dbdigest/internal/core/ports"
)

var (
	// ErrNamespaceExists is returned when creating a collection that already
	// exists.
	ErrNamespaceExists = zerr.New("namespace already exists")

	// ErrNamespaceNotFound is returned when addressing a collection that does
	// not exist.
	ErrNamespaceNotFound = zerr.New("namespace not found")
)

// CollectionOptions carries the catalog flags of a new collection.
type CollectionOptions struct {
	Capped          bool
	Clustered       bool
	Temporary       bool
	DropPending     bool
	GlobalIndex     bool
	NotReplicated   bool
	PrimaryKeyIndex bool
}

// Engine is an in-memory storage engine. Every committed write advances a
// logical clock; visibility is by commit timestamp, so snapshots are cheap:
// a catalog pointer plus a timestamp bound.
type Engine struct {
	mu sync.RWMutex

	replEnabled bool

	clock       domain.Timestamp
	lastApplied domain.Timestamp
	allDurable  domain.Timestamp
	durablePin  bool

	catalog  *catalogState
	prepared map[uuid.UUID][]domain.Timestamp
}

var (
	_ ports.Catalog             = (*Engine)(nil)
	_ ports.SnapshotManager     = (*Engine)(nil)
	_ ports.ReplicationState    = (*Engine)(nil)
	_ ports.DurabilityWatermark = (*Engine)(nil)
)

// New creates an empty engine.
func New(replEnabled bool) *Engine {
	return &Engine{
		replEnabled: replEnabled,
		catalog:     newCatalogState(),
		prepared:    make(map[uuid.UUID][]domain.Timestamp),
	}
}

// NewFromFixture materializes an engine from a fixture description.
// Documents are inserted in fixture order, which becomes natural order.
func NewFromFixture(f *domain.Fixture) (*Engine, error) {
	eng := New(f.ReplicationEnabled)
	for db, dbf := range f.Databases {
		for name, cf := range dbf.Collections {
			_, err := eng.CreateCollection(db, name, CollectionOptions{
				Capped:          cf.Capped,
				Clustered:       cf.Clustered,
				Temporary:       cf.Temporary,
				DropPending:     cf.DropPending,
				GlobalIndex:     cf.GlobalIndex,
				NotReplicated:   cf.NotReplicated,
				PrimaryKeyIndex: cf.PrimaryKeyIndex,
			})
			if err != nil {
				return nil, err
			}
			for _, doc := range cf.Documents {
				if err := eng.Insert(db, name, doc.Key, doc.Fields); err != nil {
					return nil, err
				}
			}
		}
	}
	return eng, nil
}

// tick advances the logical clock and the watermarks. Callers hold mu.
func (e *Engine) tick() domain.Timestamp {
	e.clock++
	e.lastApplied = e.clock
	if !e.durablePin {
		e.allDurable = e.clock
	}
	return e.clock
}

// CreateCollection registers a new collection and bumps the catalog
// generation.
func (e *Engine) CreateCollection(db, name string, opts CollectionOptions) (uuid.UUID, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ns := domain.NewNamespace(db, name)
	if _, ok := e.catalog.lookupByName(ns); ok {
		return uuid.Nil, zerr.With(ErrNamespaceExists, "namespace", ns.String())
	}

	ts := e.tick()
	id := uuid.New()
	desc := domain.CollectionDescriptor{
		Namespace:          ns,
		UUID:               id,
		Capped:             opts.Capped,
		Clustered:          opts.Clustered,
		Temporary:          opts.Temporary,
		DropPending:        opts.DropPending,
		GlobalIndex:        opts.GlobalIndex,
		NotReplicated:      opts.NotReplicated,
		HasPrimaryKeyIndex: opts.PrimaryKeyIndex,
	}
	if opts.GlobalIndex {
		min := ts
		desc.MinValidSnapshot = &min
	}

	record := &collectionRecord{
		desc:      desc,
		createdAt: ts,
		data:      newCollectionData(opts.Clustered),
	}
	e.catalog = e.catalog.withRecord(record)
	return id, nil
}

// DropCollection marks a collection dropped as of now and bumps the catalog
// generation. Historical views can still resolve it at earlier timestamps.
func (e *Engine) DropCollection(db, name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	ns := domain.NewNamespace(db, name)
	record, ok := e.catalog.lookupByName(ns)
	if !ok {
		return zerr.With(ErrNamespaceNotFound, "namespace", ns.String())
	}

	ts := e.tick()
	e.catalog = e.catalog.withDropped(record, ts)
	return nil
}

// Insert commits a new document version.
func (e *Engine) Insert(db, coll, key string, fields map[string]any) error {
	return e.write(db, coll, key, fields, false)
}

// Update commits a replacement version of an existing document.
func (e *Engine) Update(db, coll, key string, fields map[string]any) error {
	return e.write(db, coll, key, fields, false)
}

// Delete commits a deletion marker for a document.
func (e *Engine) Delete(db, coll, key string) error {
	return e.write(db, coll, key, nil, true)
}

func (e *Engine) write(db, coll, key string, fields map[string]any, deleted bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	ns := domain.NewNamespace(db, coll)
	record, ok := e.catalog.lookupByName(ns)
	if !ok {
		return zerr.With(ErrNamespaceNotFound, "namespace", ns.String())
	}

	ts := e.tick()
	version := docVersion{ts: ts, deleted: deleted}
	if !deleted {
		version.data = domain.EncodeDocument(key, fields)
	}
	record.data.append(key, version)
	return nil
}

// Prepare registers a prepared-but-uncommitted write at the current clock.
// Prepared writes are invisible to snapshot reads; they only matter to the
// enforce prepare-conflict policy.
func (e *Engine) Prepare(db, coll string) (domain.Timestamp, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ns := domain.NewNamespace(db, coll)
	record, ok := e.catalog.lookupByName(ns)
	if !ok {
		return 0, zerr.With(ErrNamespaceNotFound, "namespace", ns.String())
	}

	ts := e.tick()
	id := record.desc.UUID
	e.prepared[id] = append(e.prepared[id], ts)
	return ts, nil
}

// ResolvePrepared removes a prepared write, as if its transaction committed
// or aborted.
func (e *Engine) ResolvePrepared(db, coll string, ts domain.Timestamp) {
	e.mu.Lock()
	defer e.mu.Unlock()

	record, ok := e.catalog.lookupByName(domain.NewNamespace(db, coll))
	if !ok {
		return
	}
	id := record.desc.UUID
	pending := e.prepared[id][:0]
	for _, p := range e.prepared[id] {
		if p != ts {
			pending = append(pending, p)
		}
	}
	e.prepared[id] = pending
}

// hasPreparedBefore reports whether a prepared write at or before ts is still
// unresolved for the collection. Callers hold mu (read or write).
func (e *Engine) hasPreparedBefore(id uuid.UUID, ts domain.Timestamp) bool {
	for _, p := range e.prepared[id] {
		if p <= ts {
			return true
		}
	}
	return false
}

// PinAllDurable freezes the all-durable watermark at its current value, so
// later writes advance last-applied but not durability. Test hook for the
// watermark bound checks.
func (e *Engine) PinAllDurable() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.durablePin = true
}

// Current implements ports.Catalog.
func (e *Engine) Current() ports.CatalogView {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.catalog
}

// Open implements ports.SnapshotManager.
func (e *Engine) Open() (ports.Snapshot, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return &snapshot{
		eng:     e,
		catalog: e.catalog,
		at:      e.lastApplied,
	}, nil
}

// Enabled implements ports.ReplicationState.
func (e *Engine) Enabled() bool {
	return e.replEnabled
}

// LastApplied implements ports.ReplicationState.
func (e *Engine) LastApplied() domain.Timestamp {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.lastApplied
}

// AllDurable implements ports.DurabilityWatermark.
func (e *Engine) AllDurable() domain.Timestamp {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.allDurable
}
