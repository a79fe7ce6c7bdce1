package domain

import "github.com/google/uuid"

// ScanOrder selects the deterministic order in which a collection's documents
// are walked while hashing.
type ScanOrder int

const (
	// ScanPrimaryKey walks a forward index-ordered scan over the primary-key
	// index, returning full documents in ascending key order.
	ScanPrimaryKey ScanOrder = iota
	// ScanNatural walks the collection in native storage order. Only capped
	// and clustered collections guarantee this order is deterministic.
	ScanNatural
)

// CollectionDescriptor is an immutable snapshot of catalog facts about one
// collection, taken at resolution time. It is passed by value; nothing in it
// may alias live catalog state.
type CollectionDescriptor struct {
	Namespace          Namespace
	UUID               uuid.UUID
	Capped             bool
	Clustered          bool
	Temporary          bool
	HasPrimaryKeyIndex bool
	GlobalIndex        bool
	DropPending        bool
	NotReplicated      bool

	// MinValidSnapshot is the earliest timestamp at which the collection's
	// catalog entry is readable. Set for global-index namespaces, which are
	// resolved against the live catalog rather than at a point in time.
	MinValidSnapshot *Timestamp
}

// ScanOrder returns the deterministic scan order for the collection, or
// ok=false when no deterministic order exists and the digest must fall back
// to the sentinel value.
func (d CollectionDescriptor) ScanOrder() (ScanOrder, bool) {
	switch {
	case d.HasPrimaryKeyIndex:
		return ScanPrimaryKey, true
	case d.Capped || d.Clustered:
		return ScanNatural, true
	default:
		return 0, false
	}
}
