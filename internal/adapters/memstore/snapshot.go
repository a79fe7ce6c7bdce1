package memstore

import (
	"context"

	"github.com/google/uuid"
	"go.trai.ch/zerr"

	"github.com/quilldb/dbdigest/internal/core/domain"
	"github.com/quilldb/dbdigest/internal/core/ports"
)

// snapshot is a point-in-time read handle: the catalog state at open time
// plus a visibility bound. Used by a single operation; never shared.
type snapshot struct {
	eng     *Engine
	catalog *catalogState

	at       domain.Timestamp
	provided bool
	behavior domain.PrepareConflictBehavior
}

var _ ports.Snapshot = (*snapshot)(nil)

// BindReadTimestamp implements ports.Snapshot.
func (s *snapshot) BindReadTimestamp(ts domain.Timestamp) {
	s.at = ts
	s.provided = true
}

// ReadTimestamp implements ports.Snapshot.
func (s *snapshot) ReadTimestamp() (domain.Timestamp, bool) {
	if !s.provided {
		return 0, false
	}
	return s.at, true
}

// SetPrepareConflictBehavior implements ports.Snapshot.
func (s *snapshot) SetPrepareConflictBehavior(b domain.PrepareConflictBehavior) {
	s.behavior = b
}

// Scan implements ports.Snapshot. Documents visible at the snapshot bound
// are materialized under the engine read lock, so the cursor itself never
// touches shared state.
func (s *snapshot) Scan(ctx context.Context, id uuid.UUID, order domain.ScanOrder) (ports.Cursor, error) {
	s.eng.mu.RLock()
	defer s.eng.mu.RUnlock()

	record, ok := s.catalog.byUUID[id]
	if !ok {
		return nil, zerr.With(ErrNamespaceNotFound, "uuid", id.String())
	}

	if s.behavior == domain.PrepareEnforce && s.eng.hasPreparedBefore(id, s.at) {
		// A real engine would block until the prepared transaction resolves;
		// surfacing the conflict keeps the in-memory engine non-blocking
		// while the policy switch stays observable.
		return nil, zerr.With(
			zerr.With(
				zerr.Wrap(domain.ErrPrepareConflict,
					"read timestamp overlaps an unresolved prepared transaction"),
				"namespace", record.desc.Namespace.String(),
			),
			"read_timestamp", s.at.String(),
		)
	}

	var docs [][]byte
	for _, key := range record.data.keysInOrder(order) {
		if doc, visible := record.data.visibleAt(key, s.at); visible {
			docs = append(docs, doc)
		}
	}

	return &cursor{ctx: ctx, docs: docs}, nil
}

// Close implements ports.Snapshot. The snapshot holds no engine resources
// beyond immutable pointers, so close is a no-op kept for the port contract.
func (s *snapshot) Close() {}

// cursor walks materialized documents. Next fails fast once the surrounding
// operation is cancelled.
type cursor struct {
	ctx  context.Context
	docs [][]byte
	i    int
}

var _ ports.Cursor = (*cursor)(nil)

func (c *cursor) Next() ([]byte, bool, error) {
	if err := c.ctx.Err(); err != nil {
		return nil, false, zerr.Wrap(err, "scan interrupted")
	}
	if c.i >= len(c.docs) {
		return nil, false, nil
	}
	doc := c.docs[c.i]
	c.i++
	return doc, true, nil
}

func (c *cursor) Close() error {
	c.docs = nil
	return nil
}
