package ports

import (
	"context"

	"github.com/quilldb/dbdigest/internal/core/domain"
)

// LockManager hands out hierarchical locks at global, database and collection
// granularity. Callers acquire global → database → collection and release in
// strict reverse order on every exit path.
//
//go:generate mockgen -source=locks.go -destination=mocks/mock_locks.go -package=mocks
type LockManager interface {
	LockGlobal(ctx context.Context, mode domain.LockMode) (Guard, error)
	LockDatabase(ctx context.Context, db string, mode domain.LockMode) (Guard, error)
	LockCollection(ctx context.Context, ns domain.Namespace, mode domain.LockMode) (Guard, error)
}

// Guard is a held lock. Release is idempotent.
type Guard interface {
	Release()
}
