package ports

import "github.com/quilldb/dbdigest/internal/core/domain"

// DurabilityWatermark exposes the storage engine's all-durable timestamp: the
// highest timestamp at which all earlier writes are guaranteed durable.
//
//go:generate mockgen -source=durability.go -destination=mocks/mock_durability.go -package=mocks
type DurabilityWatermark interface {
	AllDurable() domain.Timestamp
}
