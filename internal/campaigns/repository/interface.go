package repository

import (
	"context"
	"time"
)

// Campaign is a stored campaign brief request.
type Campaign struct {
	ID        int64
	Product   string
	Platform  string
	Goal      string
	CreatedAt time.Time
}

type CreateParams struct {
	Product  string
	Platform string
	Goal     string
}

// CampaignReader is the read side used by analytics and the assistant.
type CampaignReader interface {
	// List returns campaigns newest first. limit <= 0 means no limit.
	List(ctx context.Context, limit int) ([]Campaign, error)
	// Count counts campaigns, optionally restricted to one platform
	// (exact match).
	Count(ctx context.Context, platform *string) (int, error)
	// TopPlatform returns the platform with the most campaigns. Ties go to
	// the platform that was used first. ok is false when there are none.
	TopPlatform(ctx context.Context) (platform string, ok bool, err error)
}

type CampaignWriter interface {
	Create(ctx context.Context, params CreateParams) (Campaign, error)
}

// Repository is the full campaign store.
type Repository interface {
	CampaignReader
	CampaignWriter
}
