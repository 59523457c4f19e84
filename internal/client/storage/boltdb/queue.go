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

// Enqueue stores a new pending update and returns the auto-assigned id
func (s *Storage) Enqueue(ctx context.Context, ownerID string, payload map[string]any) (uint64, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var id uint64

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPending)
		if bucket == nil {
			return storage.ErrStorageClosed
		}

		// NextSequence выдает монотонно возрастающий суррогатный ключ
		seq, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to get next sequence: %w", err)
		}
		id = seq

		update := &models.PendingUpdate{
			ID:        id,
			OwnerID:   ownerID,
			Payload:   payload,
			CreatedAt: time.Now().UTC(),
		}

		data, err := json.Marshal(update)
		if err != nil {
			return fmt.Errorf("failed to marshal pending update: %w", err)
		}

		if err := bucket.Put(itob(id), data); err != nil {
			return fmt.Errorf("failed to save pending update: %w", err)
		}

		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("enqueue transaction failed: %w", err)
	}

	return id, nil
}

// ListPending returns all not-yet-synced updates in insertion order.
// Empty ownerID means all owners.
func (s *Storage) ListPending(ctx context.Context, ownerID string) ([]*models.PendingUpdate, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var updates []*models.PendingUpdate

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPending)
		if bucket == nil {
			return nil
		}

		// Ключи big-endian, поэтому ForEach идет в порядке вставки
		return bucket.ForEach(func(k, v []byte) error {
			var update models.PendingUpdate
			if err := json.Unmarshal(v, &update); err != nil {
				return fmt.Errorf("failed to unmarshal pending update: %w", err)
			}

			// Синхронизированные записи не возвращаются, даже если
			// еще не удалены grace-таймером
			if update.Synced {
				return nil
			}

			if ownerID != "" && update.OwnerID != ownerID {
				return nil
			}

			updates = append(updates, &update)
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list pending updates: %w", err)
	}

	return updates, nil
}

// MarkSynced sets synced=true and synced_at on the update.
// Returns false if no such update exists.
func (s *Storage) MarkSynced(ctx context.Context, id uint64) (bool, error) {
	if s.db == nil {
		return false, storage.ErrStorageClosed
	}

	found := false

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPending)
		if bucket == nil {
			return nil
		}

		data := bucket.Get(itob(id))
		if data == nil {
			return nil
		}

		var update models.PendingUpdate
		if err := json.Unmarshal(data, &update); err != nil {
			return fmt.Errorf("failed to unmarshal pending update: %w", err)
		}

		update.Synced = true
		update.SyncedAt = time.Now().UTC()
		update.Awaiting = false

		updated, err := json.Marshal(&update)
		if err != nil {
			return fmt.Errorf("failed to marshal pending update: %w", err)
		}

		if err := bucket.Put(itob(id), updated); err != nil {
			return fmt.Errorf("failed to save pending update: %w", err)
		}

		found = true
		return nil
	})

	if err != nil {
		return false, fmt.Errorf("mark synced transaction failed: %w", err)
	}

	return found, nil
}

// DeleteByID permanently removes the update. Idempotent.
func (s *Storage) DeleteByID(ctx context.Context, id uint64) (bool, error) {
	if s.db == nil {
		return false, storage.ErrStorageClosed
	}

	existed := false

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPending)
		if bucket == nil {
			return nil
		}

		if bucket.Get(itob(id)) == nil {
			return nil
		}

		if err := bucket.Delete(itob(id)); err != nil {
			return fmt.Errorf("failed to delete pending update: %w", err)
		}

		existed = true
		return nil
	})

	if err != nil {
		return false, fmt.Errorf("delete transaction failed: %w", err)
	}

	return existed, nil
}

// CountPending returns the number of not-yet-synced updates
func (s *Storage) CountPending(ctx context.Context, ownerID string) (int, error) {
	updates, err := s.ListPending(ctx, ownerID)
	if err != nil {
		return 0, err
	}
	return len(updates), nil
}

// PurgeSynced deletes every synced update and returns the count deleted
func (s *Storage) PurgeSynced(ctx context.Context) (int, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	deleted := 0

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPending)
		if bucket == nil {
			return nil
		}

		// Сначала собираем ключи: удалять внутри ForEach нельзя
		var keys [][]byte
		if err := bucket.ForEach(func(k, v []byte) error {
			var update models.PendingUpdate
			if err := json.Unmarshal(v, &update); err != nil {
				return fmt.Errorf("failed to unmarshal pending update: %w", err)
			}
			if update.Synced {
				key := make([]byte, len(k))
				copy(key, k)
				keys = append(keys, key)
			}
			return nil
		}); err != nil {
			return err
		}

		for _, k := range keys {
			if err := bucket.Delete(k); err != nil {
				return fmt.Errorf("failed to delete synced update: %w", err)
			}
			deleted++
		}

		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("purge transaction failed: %w", err)
	}

	return deleted, nil
}

// IncrementRetry increments retry_count on the update and returns the new value
func (s *Storage) IncrementRetry(ctx context.Context, id uint64) (int, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	count := 0

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPending)
		if bucket == nil {
			return storage.ErrUpdateNotFound
		}

		data := bucket.Get(itob(id))
		if data == nil {
			return storage.ErrUpdateNotFound
		}

		var update models.PendingUpdate
		if err := json.Unmarshal(data, &update); err != nil {
			return fmt.Errorf("failed to unmarshal pending update: %w", err)
		}

		update.RetryCount++
		count = update.RetryCount

		updated, err := json.Marshal(&update)
		if err != nil {
			return fmt.Errorf("failed to marshal pending update: %w", err)
		}

		if err := bucket.Put(itob(id), updated); err != nil {
			return fmt.Errorf("failed to save pending update: %w", err)
		}

		return nil
	})

	if err != nil {
		return 0, err
	}

	return count, nil
}

// MarkAwaitingResolution flags an update as waiting for manual conflict
// resolution. Returns false if no such update exists.
func (s *Storage) MarkAwaitingResolution(ctx context.Context, id uint64, awaiting bool) (bool, error) {
	if s.db == nil {
		return false, storage.ErrStorageClosed
	}

	found := false

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPending)
		if bucket == nil {
			return nil
		}

		data := bucket.Get(itob(id))
		if data == nil {
			return nil
		}

		var update models.PendingUpdate
		if err := json.Unmarshal(data, &update); err != nil {
			return fmt.Errorf("failed to unmarshal pending update: %w", err)
		}

		update.Awaiting = awaiting

		updated, err := json.Marshal(&update)
		if err != nil {
			return fmt.Errorf("failed to marshal pending update: %w", err)
		}

		if err := bucket.Put(itob(id), updated); err != nil {
			return fmt.Errorf("failed to save pending update: %w", err)
		}

		found = true
		return nil
	})

	if err != nil {
		return false, fmt.Errorf("mark awaiting transaction failed: %w", err)
	}

	return found, nil
}
