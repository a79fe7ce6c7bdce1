// Package config provides the YAML fixture loader.
package config

import (
	"os"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/quilldb/dbdigest/internal/core/domain"
	"github.com/quilldb/dbdigest/internal/core/ports"
)

// FileLoader implements ports.FixtureLoader from a YAML file on disk.
type FileLoader struct{}

var _ ports.FixtureLoader = (*FileLoader)(nil)

// NewLoader creates a FileLoader.
func NewLoader() *FileLoader {
	return &FileLoader{}
}

// Load implements ports.FixtureLoader.
func (l *FileLoader) Load(path string) (*domain.Fixture, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read fixture file")
	}

	var dto fixtureDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, zerr.Wrap(err, "failed to parse fixture file")
	}

	host := dto.Host
	if host == "" {
		host, err = os.Hostname()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to resolve host identity")
		}
	}

	fixture := &domain.Fixture{
		Host:               host,
		ReplicationEnabled: dto.Replication,
		AllowPointInTime:   dto.AllowPointInTimeReads,
		DeniedDatabases:    dto.DeniedDatabases,
		Databases:          make(map[string]domain.DatabaseFixture, len(dto.Databases)),
	}

	for dbName, db := range dto.Databases {
		if dbName == "" {
			return nil, zerr.Wrap(domain.ErrInvalidNamespace, "fixture database name must not be empty")
		}
		collections := make(map[string]domain.CollectionFixture, len(db.Collections))
		for collName, coll := range db.Collections {
			if collName == "" {
				return nil, zerr.With(
					zerr.Wrap(domain.ErrInvalidNamespace, "fixture collection name must not be empty"),
					"database", dbName)
			}
			docs := make([]domain.DocumentFixture, 0, len(coll.Documents))
			for _, doc := range coll.Documents {
				if doc.Key == "" {
					return nil, zerr.With(
						zerr.New("fixture document key must not be empty"),
						"namespace", dbName+"."+collName)
				}
				docs = append(docs, domain.DocumentFixture{Key: doc.Key, Fields: doc.Fields})
			}
			collections[collName] = domain.CollectionFixture{
				Capped:          coll.Capped,
				Clustered:       coll.Clustered,
				Temporary:       coll.Temporary,
				DropPending:     coll.DropPending,
				GlobalIndex:     coll.GlobalIndex,
				NotReplicated:   coll.NotReplicated,
				PrimaryKeyIndex: coll.PrimaryKeyIndex,
				Documents:       docs,
			}
		}
		fixture.Databases[dbName] = domain.DatabaseFixture{Collections: collections}
	}

	return fixture, nil
}
