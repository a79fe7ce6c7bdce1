package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quilldb/dbdigest/internal/adapters/logger"
)

func TestLogger_Levels(t *testing.T) {
	log := logger.New()

	var buf bytes.Buffer
	log.SetOutput(&buf)

	log.Info("snapshot acquired")
	assert.Contains(t, buf.String(), "INFO")
	assert.Contains(t, buf.String(), "snapshot acquired")

	buf.Reset()
	log.Warn("no primary-key index")
	assert.Contains(t, buf.String(), "WARN")

	buf.Reset()
	log.Error(errors.New("scan failed"))
	assert.Contains(t, buf.String(), "ERROR")
	assert.Contains(t, buf.String(), "scan failed")
}
