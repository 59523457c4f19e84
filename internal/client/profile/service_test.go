package profile

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/storekeeper/internal/client/storage"
	"github.com/iudanet/storekeeper/internal/models"
)

func TestSetFields(t *testing.T) {
	var enqueued map[string]any
	queue := &storage.QueueStorageMock{
		EnqueueFunc: func(ctx context.Context, ownerID string, payload map[string]any) (uint64, error) {
			enqueued = payload
			return 42, nil
		},
	}
	svc := NewService(queue, &storage.CacheStorageMock{})

	id, err := svc.SetFields(context.Background(), "store_owner", map[string]any{
		"shop_name": "Corner Shop",
		"currency":  "EUR",
	})

	require.NoError(t, err)
	assert.Equal(t, uint64(42), id)
	assert.Equal(t, "Corner Shop", enqueued["shop_name"])
}

func TestSetFields_Validation(t *testing.T) {
	queue := &storage.QueueStorageMock{
		EnqueueFunc: func(ctx context.Context, ownerID string, payload map[string]any) (uint64, error) {
			return 1, nil
		},
	}
	svc := NewService(queue, &storage.CacheStorageMock{})

	tests := []struct {
		fields  map[string]any
		name    string
		ownerID string
	}{
		{
			name:    "empty owner id",
			ownerID: "",
			fields:  map[string]any{"shop_name": "x"},
		},
		{
			name:    "owner id with spaces",
			ownerID: "store owner",
			fields:  map[string]any{"shop_name": "x"},
		},
		{
			name:    "no fields",
			ownerID: "store_owner",
			fields:  map[string]any{},
		},
		{
			name:    "bad field name",
			ownerID: "store_owner",
			fields:  map[string]any{"Shop Name!": "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SetFields(context.Background(), tt.ownerID, tt.fields)
			require.Error(t, err)
		})
	}
	// Ни одна невалидная правка не дошла до очереди
	assert.Empty(t, queue.EnqueueCalls())
}

func TestLocalProfile_OverlaysPendingUpdates(t *testing.T) {
	queue := &storage.QueueStorageMock{
		ListPendingFunc: func(ctx context.Context, ownerID string) ([]*models.PendingUpdate, error) {
			return []*models.PendingUpdate{
				{ID: 1, OwnerID: ownerID, Payload: map[string]any{"shop_name": "New Name"}},
				{ID: 2, OwnerID: ownerID, Payload: map[string]any{"currency": "USD"}},
			}, nil
		},
	}
	cache := &storage.CacheStorageMock{
		GetCachedProfileFunc: func(ctx context.Context, ownerID string) (*models.CachedProfile, error) {
			return &models.CachedProfile{
				OwnerID:     ownerID,
				LastUpdated: time.Now(),
				Data: map[string]any{
					"shop_name": "Old Name",
					"currency":  "EUR",
					"timezone":  "Europe/Berlin",
				},
			}, nil
		},
	}
	svc := NewService(queue, cache)

	local, err := svc.LocalProfile(context.Background(), "store_owner")

	require.NoError(t, err)
	// Правки из очереди перекрывают кеш, нетронутые поля сохраняются
	assert.Equal(t, "New Name", local["shop_name"])
	assert.Equal(t, "USD", local["currency"])
	assert.Equal(t, "Europe/Berlin", local["timezone"])
}

func TestLocalProfile_NoCache(t *testing.T) {
	queue := &storage.QueueStorageMock{
		ListPendingFunc: func(ctx context.Context, ownerID string) ([]*models.PendingUpdate, error) {
			return []*models.PendingUpdate{
				{ID: 1, OwnerID: ownerID, Payload: map[string]any{"shop_name": "Fresh Store"}},
			}, nil
		},
	}
	cache := &storage.CacheStorageMock{
		GetCachedProfileFunc: func(ctx context.Context, ownerID string) (*models.CachedProfile, error) {
			return nil, storage.ErrCacheMiss
		},
	}
	svc := NewService(queue, cache)

	local, err := svc.LocalProfile(context.Background(), "store_owner")

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"shop_name": "Fresh Store"}, local)
}

func TestResume(t *testing.T) {
	queue := &storage.QueueStorageMock{
		MarkAwaitingResolutionFunc: func(ctx context.Context, id uint64, awaiting bool) (bool, error) {
			return id == 7, nil
		},
	}
	svc := NewService(queue, &storage.CacheStorageMock{})

	require.NoError(t, svc.Resume(context.Background(), 7))

	err := svc.Resume(context.Background(), 8)
	require.ErrorIs(t, err, storage.ErrUpdateNotFound)

	calls := queue.MarkAwaitingResolutionCalls()
	require.Len(t, calls, 2)
	assert.False(t, calls[0].Awaiting)
}

func TestPurgeSynced(t *testing.T) {
	queue := &storage.QueueStorageMock{
		PurgeSyncedFunc: func(ctx context.Context) (int, error) {
			return 3, nil
		},
	}
	svc := NewService(queue, &storage.CacheStorageMock{})

	removed, err := svc.PurgeSynced(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, removed)
}

func TestPendingCount(t *testing.T) {
	queue := &storage.QueueStorageMock{
		CountPendingFunc: func(ctx context.Context, ownerID string) (int, error) {
			return 5, nil
		},
	}
	svc := NewService(queue, &storage.CacheStorageMock{})

	count, err := svc.PendingCount(context.Background(), "store_owner")

	require.NoError(t, err)
	assert.Equal(t, 5, count)
}
