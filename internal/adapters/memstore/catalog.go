package memstore

import (
	"sort"

	"github.com/google/uuid"

	"github.com/quilldb/dbdigest/internal/core/domain"
	"github.com/quilldb/dbdigest/internal/core/ports"
)

// catalogState is an immutable catalog version. DDL produces a new state with
// a bumped generation; existing views keep enumerating the old one. The
// records of dropped collections stay in the state so historical resolution
// keeps working.
type catalogState struct {
	gen    uint64
	byUUID map[uuid.UUID]*collectionRecord
	byName map[string]*collectionRecord
}

// collectionRecord is one collection's catalog entry. Immutable after
// creation; dropping clones the record with droppedAt set. The data pointer
// is shared across clones so snapshot reads see every committed version.
type collectionRecord struct {
	desc      domain.CollectionDescriptor
	createdAt domain.Timestamp
	droppedAt *domain.Timestamp
	data      *collectionData
}

var _ ports.CatalogView = (*catalogState)(nil)

func newCatalogState() *catalogState {
	return &catalogState{
		byUUID: make(map[uuid.UUID]*collectionRecord),
		byName: make(map[string]*collectionRecord),
	}
}

func (c *catalogState) clone() *catalogState {
	next := &catalogState{
		gen:    c.gen + 1,
		byUUID: make(map[uuid.UUID]*collectionRecord, len(c.byUUID)+1),
		byName: make(map[string]*collectionRecord, len(c.byName)+1),
	}
	for id, record := range c.byUUID {
		next.byUUID[id] = record
	}
	for name, record := range c.byName {
		next.byName[name] = record
	}
	return next
}

func (c *catalogState) withRecord(record *collectionRecord) *catalogState {
	next := c.clone()
	next.byUUID[record.desc.UUID] = record
	next.byName[record.desc.Namespace.String()] = record
	return next
}

func (c *catalogState) withDropped(record *collectionRecord, at domain.Timestamp) *catalogState {
	dropped := *record
	dropped.droppedAt = &at

	next := c.clone()
	next.byUUID[dropped.desc.UUID] = &dropped
	delete(next.byName, dropped.desc.Namespace.String())
	return next
}

func (c *catalogState) lookupByName(ns domain.Namespace) (*collectionRecord, bool) {
	record, ok := c.byName[ns.String()]
	return record, ok
}

// Generation implements ports.CatalogView.
func (c *catalogState) Generation() uint64 {
	return c.gen
}

// Collections implements ports.CatalogView. Map iteration keeps the
// enumeration order unspecified, as the port allows.
func (c *catalogState) Collections(db string) []domain.CollectionDescriptor {
	var descs []domain.CollectionDescriptor
	for _, record := range c.byName {
		if record.desc.Namespace.DB == db {
			descs = append(descs, record.desc)
		}
	}
	return descs
}

// CollectionsSorted returns the live collections of a database in name
// order. Convenience for tests and tooling; the digest pipeline must not
// depend on it.
func (c *catalogState) CollectionsSorted(db string) []domain.CollectionDescriptor {
	descs := c.Collections(db)
	sort.Slice(descs, func(i, j int) bool {
		return descs[i].Namespace.Collection < descs[j].Namespace.Collection
	})
	return descs
}

// ResolveByUUID implements ports.CatalogView.
func (c *catalogState) ResolveByUUID(db string, id uuid.UUID, at *domain.Timestamp) (domain.CollectionDescriptor, bool) {
	record, ok := c.byUUID[id]
	if !ok || record.desc.Namespace.DB != db {
		return domain.CollectionDescriptor{}, false
	}

	if at == nil {
		if record.droppedAt != nil {
			return domain.CollectionDescriptor{}, false
		}
		return record.desc, true
	}

	existed := record.createdAt <= *at &&
		(record.droppedAt == nil || *at < *record.droppedAt)
	if !existed {
		return domain.CollectionDescriptor{}, false
	}
	return record.desc, true
}
