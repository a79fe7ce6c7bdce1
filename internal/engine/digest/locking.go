package digest

import (
	"context"

	"go.trai.ch/zerr"

	"github.com/quilldb/dbdigest/internal/core/domain"
	"github.com/quilldb/dbdigest/internal/core/ports"
)

// LockingPolicy derives the required lock granularity from the read mode and
// manages ordered acquisition and release.
//
// Point-in-time mode takes only intent-shared locks: correctness rests on
// snapshot isolation, and replication application must be able to proceed so
// that a prepare conflict can eventually resolve. Latest-snapshot mode takes
// a shared database lock so the contents cannot change under the scan. Both
// modes hold a global intent-shared lock for the whole operation, to
// serialize against storage-engine-wide shutdown.
type LockingPolicy struct {
	locks ports.LockManager
}

// NewLockingPolicy creates a LockingPolicy.
func NewLockingPolicy(locks ports.LockManager) *LockingPolicy {
	return &LockingPolicy{locks: locks}
}

// Begin acquires the global lock, opening a lock session. The session moves
// through Unlocked → GlobalHeld → DbHeld and hands out per-collection guards;
// Release unwinds in strict reverse order.
func (p *LockingPolicy) Begin(ctx context.Context) (*LockSession, error) {
	global, err := p.locks.LockGlobal(ctx, domain.LockIntentShared)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to acquire global lock")
	}
	return &LockSession{locks: p.locks, global: global}, nil
}

// LockSession tracks the coarse locks of one digest invocation.
type LockSession struct {
	locks    ports.LockManager
	global   ports.Guard
	database ports.Guard
}

// LockDatabase acquires the database lock for the session's read mode:
// intent-shared for point-in-time reads, shared otherwise.
func (s *LockSession) LockDatabase(ctx context.Context, db string, pointInTime bool) error {
	mode := domain.LockShared
	if pointInTime {
		mode = domain.LockIntentShared
	}

	guard, err := s.locks.LockDatabase(ctx, db, mode)
	if err != nil {
		return zerr.With(
			zerr.With(zerr.Wrap(err, "failed to acquire database lock"),
				"database", db),
			"mode", mode.String())
	}
	s.database = guard
	return nil
}

// LockCollection acquires an intent-shared collection lock. Guards are taken
// immediately before hashing one collection and released immediately after,
// keeping the contention window to a single collection.
func (s *LockSession) LockCollection(ctx context.Context, ns domain.Namespace) (ports.Guard, error) {
	guard, err := s.locks.LockCollection(ctx, ns, domain.LockIntentShared)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to acquire collection lock"),
			"namespace", ns.String())
	}
	return guard, nil
}

// Release unwinds the session: database lock first, then global. Safe to call
// on every exit path, including before the database lock was taken.
func (s *LockSession) Release() {
	if s.database != nil {
		s.database.Release()
		s.database = nil
	}
	if s.global != nil {
		s.global.Release()
		s.global = nil
	}
}
