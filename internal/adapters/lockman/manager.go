// Package lockman implements a hierarchical lock manager over a resource
// lock table with intent-shared, shared and exclusive modes.
package lockman

import (
	"context"
	"sync"

	"go.trai.ch/zerr"

	"github.com/quilldb/dbdigest/internal/core/domain"
	"github.com/quilldb/dbdigest/internal/core/ports"
)

// Manager is a lock table keyed by resource name. Waiters block until the
// requested mode becomes compatible or their context is cancelled.
type Manager struct {
	mu        sync.Mutex
	resources map[string]*entry
}

type entry struct {
	holders map[domain.LockMode]int
	// changed is closed and replaced whenever a lock is released, waking all
	// waiters to re-check compatibility.
	changed chan struct{}
}

var _ ports.LockManager = (*Manager)(nil)

// New creates an empty lock table.
func New() *Manager {
	return &Manager{resources: make(map[string]*entry)}
}

// compatible reports whether a requested mode can coexist with a held mode.
// IS is compatible with everything but X; S conflicts with X; X conflicts
// with everything.
func compatible(requested, held domain.LockMode) bool {
	if requested == domain.LockExclusive || held == domain.LockExclusive {
		return false
	}
	return true
}

func (m *Manager) acquire(ctx context.Context, key string, mode domain.LockMode) (ports.Guard, error) {
	m.mu.Lock()
	for {
		e, ok := m.resources[key]
		if !ok {
			e = &entry{
				holders: make(map[domain.LockMode]int),
				changed: make(chan struct{}),
			}
			m.resources[key] = e
		}

		if m.grantable(e, mode) {
			e.holders[mode]++
			m.mu.Unlock()
			return &guard{m: m, key: key, mode: mode}, nil
		}

		wait := e.changed
		m.mu.Unlock()

		select {
		case <-wait:
		case <-ctx.Done():
			return nil, zerr.With(
				zerr.With(
					zerr.Wrap(ctx.Err(), "lock acquisition interrupted"),
					"resource", key),
				"mode", mode.String())
		}
		m.mu.Lock()
	}
}

// grantable checks the requested mode against every held mode. Callers hold
// m.mu.
func (m *Manager) grantable(e *entry, mode domain.LockMode) bool {
	for held, count := range e.holders {
		if count > 0 && !compatible(mode, held) {
			return false
		}
	}
	return true
}

func (m *Manager) release(key string, mode domain.LockMode) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.resources[key]
	if !ok {
		return
	}
	if e.holders[mode] > 0 {
		e.holders[mode]--
	}

	close(e.changed)
	e.changed = make(chan struct{})

	total := 0
	for _, count := range e.holders {
		total += count
	}
	if total == 0 {
		delete(m.resources, key)
	}
}

// LockGlobal implements ports.LockManager.
func (m *Manager) LockGlobal(ctx context.Context, mode domain.LockMode) (ports.Guard, error) {
	return m.acquire(ctx, "global", mode)
}

// LockDatabase implements ports.LockManager.
func (m *Manager) LockDatabase(ctx context.Context, db string, mode domain.LockMode) (ports.Guard, error) {
	return m.acquire(ctx, "db:"+db, mode)
}

// LockCollection implements ports.LockManager.
func (m *Manager) LockCollection(ctx context.Context, ns domain.Namespace, mode domain.LockMode) (ports.Guard, error) {
	return m.acquire(ctx, "coll:"+ns.String(), mode)
}

// guard is a held lock. Release is idempotent.
type guard struct {
	m    *Manager
	key  string
	mode domain.LockMode
	once sync.Once
}

func (g *guard) Release() {
	g.once.Do(func() {
		g.m.release(g.key, g.mode)
	})
}
