package ports

import "context"

// Authorizer grants or denies the compute-digest capability on a database.
// Checked before any lock is taken.
//
//go:generate mockgen -source=authorization.go -destination=mocks/mock_authorization.go -package=mocks
type Authorizer interface {
	// AllowDigest returns nil when the caller may digest the database, or an
	// error classified as domain.ErrUnauthorized.
	AllowDigest(ctx context.Context, db string) error
}
