package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/storekeeper/internal/client/storage"
	"github.com/iudanet/storekeeper/internal/models"
)

// CacheProfile upserts the cached snapshot for the owner.
// Prior data is overwritten wholesale: the cache layer never merges.
func (s *Storage) CacheProfile(ctx context.Context, ownerID string, data map[string]any) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	snapshot := &models.CachedProfile{
		OwnerID:     ownerID,
		Data:        data,
		LastUpdated: time.Now().UTC(),
	}

	raw, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal cached profile: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCache)
		if bucket == nil {
			return storage.ErrStorageClosed
		}

		// Один снимок на владельца: ключ - ownerID
		if err := bucket.Put([]byte(ownerID), raw); err != nil {
			return fmt.Errorf("failed to save cached profile: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("cache transaction failed: %w", err)
	}

	return nil
}

// GetCachedProfile retrieves the cached snapshot for the owner.
// Returns storage.ErrCacheMiss if no snapshot exists.
func (s *Storage) GetCachedProfile(ctx context.Context, ownerID string) (*models.CachedProfile, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var snapshot *models.CachedProfile

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCache)
		if bucket == nil {
			return storage.ErrCacheMiss
		}

		data := bucket.Get([]byte(ownerID))
		if data == nil {
			return storage.ErrCacheMiss
		}

		snapshot = &models.CachedProfile{}
		if err := json.Unmarshal(data, snapshot); err != nil {
			return fmt.Errorf("failed to unmarshal cached profile: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return snapshot, nil
}
