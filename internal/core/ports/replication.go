package ports

import "github.com/quilldb/dbdigest/internal/core/domain"

// ReplicationState exposes the two replication facts the digest subsystem
// consumes: whether replication is on, and how far application has advanced.
// Used only to bound point-in-time read requests.
//
//go:generate mockgen -source=replication.go -destination=mocks/mock_replication.go -package=mocks
type ReplicationState interface {
	Enabled() bool
	LastApplied() domain.Timestamp
}
