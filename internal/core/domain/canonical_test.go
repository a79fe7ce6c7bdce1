package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quilldb/dbdigest/internal/core/domain"
)

func TestEncodeDocument_FieldOrderIndependent(t *testing.T) {
	a := domain.EncodeDocument("k1", map[string]any{
		"name":  "alice",
		"age":   int64(30),
		"admin": true,
	})
	b := domain.EncodeDocument("k1", map[string]any{
		"admin": true,
		"age":   int64(30),
		"name":  "alice",
	})

	assert.Equal(t, a, b)
}

func TestEncodeDocument_DistinctValuesDistinctBytes(t *testing.T) {
	tests := []struct {
		name  string
		left  map[string]any
		right map[string]any
	}{
		{
			name:  "different string value",
			left:  map[string]any{"v": "a"},
			right: map[string]any{"v": "b"},
		},
		{
			name:  "string vs number",
			left:  map[string]any{"v": "1"},
			right: map[string]any{"v": int64(1)},
		},
		{
			name:  "null vs absent",
			left:  map[string]any{"v": nil},
			right: map[string]any{},
		},
		{
			name:  "nested field differs",
			left:  map[string]any{"v": map[string]any{"x": int64(1)}},
			right: map[string]any{"v": map[string]any{"x": int64(2)}},
		},
		{
			name:  "array order matters",
			left:  map[string]any{"v": []any{int64(1), int64(2)}},
			right: map[string]any{"v": []any{int64(2), int64(1)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left := domain.EncodeDocument("k", tt.left)
			right := domain.EncodeDocument("k", tt.right)
			assert.NotEqual(t, left, right)
		})
	}
}

func TestEncodeDocument_KeyIsPartOfEncoding(t *testing.T) {
	fields := map[string]any{"v": int64(1)}
	assert.NotEqual(t,
		domain.EncodeDocument("k1", fields),
		domain.EncodeDocument("k2", fields))
}

func TestEncodeDocument_FloatStability(t *testing.T) {
	a := domain.EncodeDocument("k", map[string]any{"v": 0.1})
	b := domain.EncodeDocument("k", map[string]any{"v": 0.1})
	assert.Equal(t, a, b)

	c := domain.EncodeDocument("k", map[string]any{"v": 0.2})
	assert.NotEqual(t, a, c)
}
