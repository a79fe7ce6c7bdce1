package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quilldb/dbdigest/internal/adapters/config"
	"github.com/quilldb/dbdigest/internal/core/domain"
)

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dbdigest.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFileLoader_Load(t *testing.T) {
	path := writeFixture(t, `
host: node-a
replication: true
allowPointInTimeReads: true
deniedDatabases:
  - admin
databases:
  inventory:
    collections:
      orders:
        primaryKeyIndex: true
        documents:
          - key: o1
            fields:
              total: 100
      logs:
        capped: true
      scratch:
        temporary: true
        primaryKeyIndex: true
`)

	fixture, err := config.NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "node-a", fixture.Host)
	assert.True(t, fixture.ReplicationEnabled)
	assert.True(t, fixture.AllowPointInTime)
	assert.Equal(t, []string{"admin"}, fixture.DeniedDatabases)

	db, ok := fixture.Databases["inventory"]
	require.True(t, ok)
	require.Len(t, db.Collections, 3)

	orders := db.Collections["orders"]
	assert.True(t, orders.PrimaryKeyIndex)
	require.Len(t, orders.Documents, 1)
	assert.Equal(t, "o1", orders.Documents[0].Key)

	assert.True(t, db.Collections["logs"].Capped)
	assert.True(t, db.Collections["scratch"].Temporary)
}

func TestFileLoader_Load_HostDefaultsToHostname(t *testing.T) {
	path := writeFixture(t, `
databases:
  db:
    collections:
      c: {}
`)

	fixture, err := config.NewLoader().Load(path)
	require.NoError(t, err)

	hostname, err := os.Hostname()
	require.NoError(t, err)
	assert.Equal(t, hostname, fixture.Host)
}

func TestFileLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name: "empty collection name",
			content: `
databases:
  db:
    collections:
      "": {}
`,
			wantErr: domain.ErrInvalidNamespace,
		},
		{
			name: "empty database name",
			content: `
databases:
  "":
    collections:
      c: {}
`,
			wantErr: domain.ErrInvalidNamespace,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFixture(t, tt.content)
			_, err := config.NewLoader().Load(path)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFileLoader_Load_MissingDocumentKey(t *testing.T) {
	path := writeFixture(t, `
databases:
  db:
    collections:
      c:
        documents:
          - fields:
              v: 1
`)
	_, err := config.NewLoader().Load(path)
	require.Error(t, err)
}

func TestFileLoader_Load_MissingFile(t *testing.T) {
	_, err := config.NewLoader().Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestFileLoader_Load_MalformedYAML(t *testing.T) {
	path := writeFixture(t, "databases: [not: a: map")
	_, err := config.NewLoader().Load(path)
	require.Error(t, err)
}
