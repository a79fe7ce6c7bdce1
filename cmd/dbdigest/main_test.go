package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureContent = `
host: node-a
replication: true
databases:
  replica1:
    collections:
      orders:
        primaryKeyIndex: true
        documents:
          - key: o1
            fields:
              total: 100
  replica2:
    collections:
      orders:
        primaryKeyIndex: true
        documents:
          - key: o1
            fields:
              total: 100
`

func writeFixture(t *testing.T) string {
	t.Helper()
	path := t.TempDir() + "/dbdigest.yaml"
	require.NoError(t, os.WriteFile(path, []byte(fixtureContent), 0o600))
	return path
}

func TestRun(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tests := []struct {
		name         string
		args         func(fixture string) []string
		expectedExit int
	}{
		{
			name: "digest succeeds",
			args: func(fixture string) []string {
				return []string{"dbdigest", "digest", "replica1", "--fixture", fixture}
			},
			expectedExit: 0,
		},
		{
			name: "compare of identical databases succeeds",
			args: func(fixture string) []string {
				return []string{"dbdigest", "compare", "replica1", "replica2", "--fixture", fixture}
			},
			expectedExit: 0,
		},
		{
			name: "missing fixture fails",
			args: func(string) []string {
				return []string{"dbdigest", "digest", "replica1", "--fixture", "/nonexistent/dbdigest.yaml"}
			},
			expectedExit: 1,
		},
		{
			name: "empty collection entry fails",
			args: func(fixture string) []string {
				return []string{"dbdigest", "digest", "replica1", "--fixture", fixture, "--collections", ""}
			},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixture := writeFixture(t)
			os.Args = tt.args(fixture)

			exitCode := run()
			assert.Equal(t, tt.expectedExit, exitCode)
		})
	}
}
