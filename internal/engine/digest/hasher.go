package digest

import (
	"context"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"

	"github.com/quilldb/dbdigest/internal/core/domain"
	"github.com/quilldb/dbdigest/internal/core/ports"
)

// resolutionKind tags the two collection resolution policies. Dispatch is by
// matching on the tag, resolved once per collection.
type resolutionKind int

const (
	resolveOrdinary resolutionKind = iota
	resolveGlobalIndex
)

func classify(desc domain.CollectionDescriptor) resolutionKind {
	if desc.GlobalIndex {
		return resolveGlobalIndex
	}
	return resolveOrdinary
}

// CollectionHasher resolves one collection within the active snapshot and
// folds its documents into a digest in a deterministic scan order.
type CollectionHasher struct {
	log ports.Logger
}

// NewCollectionHasher creates a CollectionHasher.
func NewCollectionHasher(log ports.Logger) *CollectionHasher {
	return &CollectionHasher{log: log}
}

// Resolve turns an enumerated descriptor into the descriptor to hash.
// skip=true (with no error) means the collection did not exist at the read
// timestamp and is silently left out of this invocation.
func (h *CollectionHasher) Resolve(
	snap *DatabaseSnapshot,
	db string,
	desc domain.CollectionDescriptor,
) (resolved domain.CollectionDescriptor, skip bool, err error) {
	readTS, isPointInTime := snap.ReadTimestamp()

	switch classify(desc) {
	case resolveGlobalIndex:
		// Global-index namespaces resolve against the live catalog even when
		// a point-in-time read is active; replicas apply their operations
		// differently enough that reading them earlier than the minimum
		// valid snapshot produces spurious mismatches. Point-in-time
		// resolution for these namespaces is a known, deliberate gap.
		if isPointInTime && desc.MinValidSnapshot != nil && readTS < *desc.MinValidSnapshot {
			return desc, false, zerr.With(
				zerr.With(
					zerr.With(
						zerr.Wrap(domain.ErrSnapshotUnavailable,
							"unable to read from a snapshot due to pending catalog changes; please retry the operation"),
						"namespace", desc.Namespace.String(),
					),
					"snapshot_timestamp", readTS.String(),
				),
				"minimum_timestamp", desc.MinValidSnapshot.String(),
			)
		}
		return desc, false, nil

	default:
		var at *domain.Timestamp
		if isPointInTime {
			at = &readTS
		}
		resolved, ok := snap.View.ResolveByUUID(db, desc.UUID, at)
		if !ok {
			// No collection with this identifier existed at the read
			// timestamp.
			return desc, true, nil
		}
		return resolved, false, nil
	}
}

// Hash scans the collection and folds its documents into a fresh digest.
// The scan runs to completion without yielding; partial progress under a
// released lock would break the atomicity guarantee. Any read failure aborts
// the whole command.
func (h *CollectionHasher) Hash(
	ctx context.Context,
	snap *DatabaseSnapshot,
	desc domain.CollectionDescriptor,
) (string, error) {
	order, ok := desc.ScanOrder()
	if !ok {
		h.log.Warn("no primary-key index for namespace " + desc.Namespace.String())
		return domain.SentinelNoPrimaryKey, nil
	}

	cursor, err := snap.Snap.Scan(ctx, desc.UUID, order)
	if err != nil {
		return "", h.scanFailure(desc, err)
	}
	defer cursor.Close() //nolint:errcheck // Best effort close in defer

	digest := xxhash.New()
	for {
		doc, ok, err := cursor.Next()
		if err != nil {
			h.log.Warn("error while hashing, collection possibly dropped: " + desc.Namespace.String())
			return "", h.scanFailure(desc, err)
		}
		if !ok {
			break
		}
		_, _ = digest.Write(doc)
	}

	return fmt.Sprintf("%016x", digest.Sum64()), nil
}

func (h *CollectionHasher) scanFailure(desc domain.CollectionDescriptor, cause error) error {
	return zerr.With(
		domain.Classify(domain.ErrScanFailed, cause),
		"namespace", desc.Namespace.String(),
	)
}
