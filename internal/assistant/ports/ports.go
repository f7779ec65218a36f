// Package ports defines what the assistant reads from other modules.
package ports

import (
	"context"

	"salesspark_backend/internal/assistant/domain"
	leaddomain "salesspark_backend/internal/leads/domain"
)

// PipelineSnapshotter provides the live pipeline aggregates.
type PipelineSnapshotter interface {
	Snapshot(ctx context.Context) (leaddomain.PipelineSnapshot, error)
}

// TopLeadsReader returns the n best-scored leads, best first.
type TopLeadsReader interface {
	TopLeads(ctx context.Context, n int) ([]domain.TopLead, error)
}
