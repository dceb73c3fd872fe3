package service

import (
	"context"
	"time"

	"prism/internal/domain/schema"
)

// AdsProvider fetches advertising rows from the platform API. Token
// acquisition and refresh happen upstream; the provider receives an
// already-valid credential through configuration.
type AdsProvider interface {
	// FetchAdRows retrieves raw advertising rows reported since the given time.
	FetchAdRows(ctx context.Context, since time.Time) ([]schema.RawRow, error)
}
