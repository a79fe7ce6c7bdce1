// Package auth implements a static authorization adapter: the digest
// capability is granted per database from fixture configuration.
package auth

import (
	"context"

	"go.trai.ch/zerr"

	"github.com/quilldb/dbdigest/internal/core/domain"
	"github.com/quilldb/dbdigest/internal/core/ports"
)

// Static denies the digest capability on an explicit list of databases and
// allows it everywhere else.
type Static struct {
	denied map[string]struct{}
}

var _ ports.Authorizer = (*Static)(nil)

// NewStatic builds an authorizer from a deny list.
func NewStatic(denied []string) *Static {
	set := make(map[string]struct{}, len(denied))
	for _, db := range denied {
		set[db] = struct{}{}
	}
	return &Static{denied: set}
}

// AllowAll grants the capability on every database.
func AllowAll() *Static {
	return NewStatic(nil)
}

// AllowDigest implements ports.Authorizer.
func (s *Static) AllowDigest(_ context.Context, db string) error {
	if _, ok := s.denied[db]; ok {
		return zerr.With(
			zerr.Wrap(domain.ErrUnauthorized, "digest capability denied"),
			"database", db)
	}
	return nil
}
