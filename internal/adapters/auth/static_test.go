package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quilldb/dbdigest/internal/adapters/auth"
	"github.com/quilldb/dbdigest/internal/core/domain"
)

func TestStatic_AllowDigest(t *testing.T) {
	a := auth.NewStatic([]string{"admin", "local"})
	ctx := context.Background()

	assert.NoError(t, a.AllowDigest(ctx, "inventory"))

	err := a.AllowDigest(ctx, "admin")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAllowAll(t *testing.T) {
	a := auth.AllowAll()
	assert.NoError(t, a.AllowDigest(context.Background(), "anything"))
}
