// Package service defines the outbound ports of the domain layer.
package service

import (
	"context"
	"time"

	"prism/internal/domain/entity"
)

// DatasetUpdatedEvent is published after a reconciliation pass commits a
// new dataset version.
type DatasetUpdatedEvent struct {
	RequestID      string          `json:"request_id,omitempty"` // For distributed tracing
	DatasetVersion string          `json:"dataset_version"`
	Platform       entity.Platform `json:"platform"`
	Origin         entity.Origin   `json:"origin"`
	TotalRecords   int             `json:"total_records"`
	OccurredAt     time.Time       `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing dataset lifecycle
// events to downstream consumers (dashboards, cache invalidation, exports).
type EventPublisher interface {
	// PublishDatasetUpdated publishes a dataset-updated event for async processing
	PublishDatasetUpdated(ctx context.Context, event *DatasetUpdatedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
