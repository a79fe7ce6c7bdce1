package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrInvalidOptions is returned for malformed or out-of-range request
	// options, including read timestamps beyond the replication or
	// durability bounds.
	ErrInvalidOptions = zerr.New("invalid options")

	// ErrInvalidNamespace is returned when the target database name is empty
	// or a resolved namespace does not belong to the target database.
	ErrInvalidNamespace = zerr.New("invalid namespace")

	// ErrUnauthorized is returned when the caller lacks the digest capability
	// on the target database.
	ErrUnauthorized = zerr.New("unauthorized")

	// ErrSnapshotUnavailable is returned when a point-in-time read precedes a
	// namespace's minimum valid snapshot. Retrying at a later timestamp is
	// expected to succeed.
	ErrSnapshotUnavailable = zerr.New("snapshot unavailable")

	// ErrScanFailed is returned when a storage read fails mid-scan. The whole
	// command aborts; no partial digest is reported.
	ErrScanFailed = zerr.New("collection scan failed")

	// ErrPrepareConflict is returned by a snapshot read that encounters a
	// prepared transaction while prepare conflicts are enforced.
	ErrPrepareConflict = zerr.New("prepare conflict")

	// ErrCatalogUnstable is returned when the catalog generation keeps moving
	// and no consistent catalog/snapshot pair could be acquired.
	ErrCatalogUnstable = zerr.New("catalog did not stabilize")

	// ErrDivergence is returned by the compare command when replica digests
	// do not match.
	ErrDivergence = zerr.New("databases diverge")
)

// Classify attaches a distinguishing kind sentinel to cause so that callers
// can match with errors.Is while the original failure stays in the chain.
func Classify(kind, cause error) error {
	if cause == nil {
		return kind
	}
	return fmt.Errorf("%w: %w", kind, cause)
}
