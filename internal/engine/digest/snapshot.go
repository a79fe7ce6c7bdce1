package digest

import (
	"github.com/quilldb/dbdigest/internal/core/domain"
	"github.com/quilldb/dbdigest/internal/core/ports"
)

// DatabaseSnapshot pairs a catalog view with a storage snapshot describing
// the same logical instant. The pairing is established by the coordinator's
// stability loop and re-validated there, never assumed.
type DatabaseSnapshot struct {
	View ports.CatalogView
	Snap ports.Snapshot
}

// ReadTimestamp returns the bound point-in-time timestamp, if any.
func (s *DatabaseSnapshot) ReadTimestamp() (domain.Timestamp, bool) {
	return s.Snap.ReadTimestamp()
}

// Close releases the storage snapshot. The catalog view is immutable and
// needs no release.
func (s *DatabaseSnapshot) Close() {
	s.Snap.Close()
}
