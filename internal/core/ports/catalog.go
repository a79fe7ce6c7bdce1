package ports

import (
	"github.com/google/uuid"

	"github.com/quilldb/dbdigest/internal/core/domain"
)

// Catalog is the live registry of collection definitions.
//
//go:generate mockgen -source=catalog.go -destination=mocks/mock_catalog.go -package=mocks
type Catalog interface {
	// Current returns an immutable view of the catalog as of now. Views are
	// versioned: two views with equal generations enumerate identical
	// collections.
	Current() CatalogView
}

// CatalogView is an immutable, versioned catalog snapshot. It is explicit
// state passed by value through the digest pipeline; consistency with a
// storage snapshot is established by comparing generations, never assumed.
type CatalogView interface {
	// Generation identifies the catalog version this view describes.
	Generation() uint64

	// Collections enumerates the collections of a database. Enumeration
	// order is unspecified; callers needing determinism must sort.
	Collections(db string) []domain.CollectionDescriptor

	// ResolveByUUID resolves a collection by stable identifier, optionally at
	// a point in time. ok=false means no collection with that identifier
	// existed at that instant.
	ResolveByUUID(db string, id uuid.UUID, at *domain.Timestamp) (domain.CollectionDescriptor, bool)
}
