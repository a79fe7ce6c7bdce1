// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/quilldb/dbdigest/internal/adapters/config"
	_ "github.com/quilldb/dbdigest/internal/adapters/lockman"
	_ "github.com/quilldb/dbdigest/internal/adapters/logger"
	_ "github.com/quilldb/dbdigest/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "github.com/quilldb/dbdigest/internal/app"
	_ "github.com/quilldb/dbdigest/internal/engine/digest"
)
