package domain

import (
	"context"
	"errors"
)

var (
	ErrNotFound  = errors.New("hotel not found")
	ErrBadSource = errors.New("source page unusable")
)

type HotelRepository interface {
	// Write path
	UpsertHotel(ctx context.Context, h Hotel) (int64, error)

	// Read paths
	GetHotelByID(ctx context.Context, id int64) (Hotel, error)
	GetHotelByName(ctx context.Context, name string) (Hotel, error)
	ListHotels(ctx context.Context, limit int) ([]Hotel, error)
}

// SiteRepository is the audit trail of generated sites.
type SiteRepository interface {
	RecordBuild(ctx context.Context, hotelID int64, art SiteArtifact) error
}

// Fetcher is the outbound HTTP collaborator used for the source page and
// for every asset download.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// TemplateStore serves first-party templates for the placeholder path.
type TemplateStore interface {
	Get(name string) (string, error)
	List() ([]string, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
