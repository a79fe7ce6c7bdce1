package ports

import "github.com/quilldb/dbdigest/internal/core/domain"

// FixtureLoader reads a database fixture description from disk.
//
//go:generate mockgen -source=fixture_loader.go -destination=mocks/mock_fixture_loader.go -package=mocks
type FixtureLoader interface {
	// Load reads the fixture at path.
	Load(path string) (*domain.Fixture, error)
}
