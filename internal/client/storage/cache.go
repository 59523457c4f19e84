package storage

import (
	"context"

	"github.com/iudanet/storekeeper/internal/models"
)

//go:generate moq -out cache_mock.go . CacheStorage

// CacheStorage defines interface for the local read-through cache of
// last-known server profile state, one snapshot per owner
type CacheStorage interface {
	// CacheProfile upserts the snapshot for the owner, overwriting
	// prior data wholesale (no partial merge at the cache layer)
	CacheProfile(ctx context.Context, ownerID string, data map[string]any) error

	// GetCachedProfile returns the snapshot for the owner.
	// Returns ErrCacheMiss if no snapshot exists.
	GetCachedProfile(ctx context.Context, ownerID string) (*models.CachedProfile, error)
}
