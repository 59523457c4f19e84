package storage

import (
	"context"

	"github.com/iudanet/storekeeper/internal/models"
)

// ProfileStorage defines interface for store profile persistence
type ProfileStorage interface {
	// GetProfile retrieves a profile by owner id
	// Returns ErrProfileNotFound if profile doesn't exist
	GetProfile(ctx context.Context, ownerID string) (*models.Profile, error)

	// UpsertProfile applies a partial field update to the profile,
	// creating it if needed. Existing fields not present in the update
	// are preserved. Returns the resulting profile state.
	UpsertProfile(ctx context.Context, ownerID string, fields map[string]any) (*models.Profile, error)
}
