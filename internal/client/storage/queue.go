package storage

import (
	"context"

	"github.com/iudanet/storekeeper/internal/models"
)

//go:generate moq -out queue_mock.go . QueueStorage

// QueueStorage defines interface for the durable queue of
// pending profile updates on the client
type QueueStorage interface {
	// Enqueue stores a new pending update with synced=false and
	// retry_count=0, returning the auto-assigned id
	Enqueue(ctx context.Context, ownerID string, payload map[string]any) (uint64, error)

	// ListPending returns all not-yet-synced updates in insertion order.
	// Empty ownerID means all owners. Already-synced records are never
	// returned, even if not yet deleted.
	ListPending(ctx context.Context, ownerID string) ([]*models.PendingUpdate, error)

	// MarkSynced sets synced=true and synced_at=now on the update.
	// Returns false (not an error) if no such update exists.
	MarkSynced(ctx context.Context, id uint64) (bool, error)

	// DeleteByID permanently removes the update.
	// Idempotent: returns false if the update was already absent.
	DeleteByID(ctx context.Context, id uint64) (bool, error)

	// CountPending returns the number of not-yet-synced updates.
	// Empty ownerID means all owners. Used to drive UI badges.
	CountPending(ctx context.Context, ownerID string) (int, error)

	// PurgeSynced deletes every synced update and returns the count.
	// Safe to run at any time: synced=false records are never touched.
	PurgeSynced(ctx context.Context) (int, error)

	// IncrementRetry increments retry_count on a failed sync attempt
	// and returns the new value
	IncrementRetry(ctx context.Context, id uint64) (int, error)

	// MarkAwaitingResolution flags an update whose manual conflict
	// resolution was cancelled; such updates are skipped by the sync
	// drain until the flag is cleared. Returns false if no such update.
	MarkAwaitingResolution(ctx context.Context, id uint64, awaiting bool) (bool, error)
}
