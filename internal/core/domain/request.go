package domain

import "go.trai.ch/zerr"

// DigestRequest carries the options of one digest invocation.
type DigestRequest struct {
	// Database is the target database name.
	Database string

	// Collections, when non-empty, restricts hashing to the named
	// collections.
	Collections []string

	// SkipTempCollections excludes temporary collections from the report.
	SkipTempCollections bool

	// ReadTimestamp binds the run to a point-in-time snapshot. Restricted to
	// diagnostic and test use; nil means "latest".
	ReadTimestamp *Timestamp
}

// Validate checks the request shape before any lock is taken.
func (r DigestRequest) Validate() error {
	if r.Database == "" {
		return zerr.Wrap(ErrInvalidNamespace, "database name must not be empty")
	}
	for _, name := range r.Collections {
		if name == "" {
			return zerr.Wrap(ErrInvalidOptions, "collections entries must be non-empty strings")
		}
	}
	return nil
}

// CollectionSet returns the explicit inclusion list as a set, or nil when no
// list was supplied.
func (r DigestRequest) CollectionSet() map[string]struct{} {
	if len(r.Collections) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(r.Collections))
	for _, name := range r.Collections {
		set[name] = struct{}{}
	}
	return set
}
