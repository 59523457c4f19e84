package boltdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/storekeeper/internal/client/storage"
)

// Убеждаемся, что Storage реализует интерфейсы клиентского хранилища
var (
	_ storage.QueueStorage = (*Storage)(nil)
	_ storage.CacheStorage = (*Storage)(nil)
)

// createTestStorage создает временное хранилище для тестов
func createTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")

	ctx := context.Background()
	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func TestStorage_Enqueue(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	id1, err := store.Enqueue(ctx, "owner-1", map[string]any{"name": "Alice"})
	require.NoError(t, err)

	id2, err := store.Enqueue(ctx, "owner-1", map[string]any{"phone": "123"})
	require.NoError(t, err)

	// id автоинкрементный и монотонно возрастающий
	assert.Greater(t, id2, id1)

	updates, err := store.ListPending(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, updates, 2)

	first := updates[0]
	assert.Equal(t, id1, first.ID)
	assert.Equal(t, "owner-1", first.OwnerID)
	assert.Equal(t, "Alice", first.Payload["name"])
	assert.False(t, first.Synced)
	assert.Equal(t, 0, first.RetryCount)
	assert.False(t, first.CreatedAt.IsZero())
}

func TestStorage_ListPending_InsertionOrder(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	var ids []uint64
	for i := 0; i < 20; i++ {
		id, err := store.Enqueue(ctx, "owner-1", map[string]any{"seq": i})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	updates, err := store.ListPending(ctx, "")
	require.NoError(t, err)
	require.Len(t, updates, 20)

	// Порядок вставки сохраняется при итерации
	for i, u := range updates {
		assert.Equal(t, ids[i], u.ID)
	}
}

func TestStorage_ListPending_FilterByOwner(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	_, err := store.Enqueue(ctx, "owner-1", map[string]any{"name": "A"})
	require.NoError(t, err)
	_, err = store.Enqueue(ctx, "owner-2", map[string]any{"name": "B"})
	require.NoError(t, err)
	_, err = store.Enqueue(ctx, "owner-1", map[string]any{"name": "C"})
	require.NoError(t, err)

	updates, err := store.ListPending(ctx, "owner-1")
	require.NoError(t, err)
	assert.Len(t, updates, 2)

	all, err := store.ListPending(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestStorage_ListPending_ExcludesSynced(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	id1, err := store.Enqueue(ctx, "owner-1", map[string]any{"name": "A"})
	require.NoError(t, err)
	id2, err := store.Enqueue(ctx, "owner-1", map[string]any{"name": "B"})
	require.NoError(t, err)

	found, err := store.MarkSynced(ctx, id1)
	require.NoError(t, err)
	assert.True(t, found)

	// Синхронизированная запись еще физически присутствует,
	// но из ListPending исключается
	updates, err := store.ListPending(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, updates, 1)
	assert.Equal(t, id2, updates[0].ID)
}

func TestStorage_MarkSynced_NotFound(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	found, err := store.MarkSynced(ctx, 999)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStorage_DeleteByID_Idempotent(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	id, err := store.Enqueue(ctx, "owner-1", map[string]any{"name": "A"})
	require.NoError(t, err)

	existed, err := store.DeleteByID(ctx, id)
	require.NoError(t, err)
	assert.True(t, existed)

	// Повторное удаление не ошибка
	existed, err = store.DeleteByID(ctx, id)
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestStorage_CountPending(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	count, err := store.CountPending(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	id1, err := store.Enqueue(ctx, "owner-1", map[string]any{"name": "A"})
	require.NoError(t, err)
	_, err = store.Enqueue(ctx, "owner-2", map[string]any{"name": "B"})
	require.NoError(t, err)

	count, err = store.CountPending(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = store.CountPending(ctx, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = store.MarkSynced(ctx, id1)
	require.NoError(t, err)

	count, err = store.CountPending(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestStorage_PurgeSynced(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	id1, err := store.Enqueue(ctx, "owner-1", map[string]any{"name": "A"})
	require.NoError(t, err)
	id2, err := store.Enqueue(ctx, "owner-1", map[string]any{"name": "B"})
	require.NoError(t, err)
	_, err = store.Enqueue(ctx, "owner-1", map[string]any{"name": "C"})
	require.NoError(t, err)

	_, err = store.MarkSynced(ctx, id1)
	require.NoError(t, err)
	_, err = store.MarkSynced(ctx, id2)
	require.NoError(t, err)

	pendingBefore, err := store.CountPending(ctx, "")
	require.NoError(t, err)

	deleted, err := store.PurgeSynced(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	// Purge не затрагивает несинхронизированные записи
	pendingAfter, err := store.CountPending(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, pendingBefore, pendingAfter)

	// Повторный purge ничего не находит
	deleted, err = store.PurgeSynced(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, deleted)
}

func TestStorage_IncrementRetry(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	id, err := store.Enqueue(ctx, "owner-1", map[string]any{"name": "A"})
	require.NoError(t, err)

	count, err := store.IncrementRetry(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = store.IncrementRetry(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	updates, err := store.ListPending(ctx, "")
	require.NoError(t, err)
	require.Len(t, updates, 1)
	assert.Equal(t, 2, updates[0].RetryCount)
}

func TestStorage_IncrementRetry_NotFound(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	_, err := store.IncrementRetry(ctx, 999)
	assert.ErrorIs(t, err, storage.ErrUpdateNotFound)
}

func TestStorage_MarkAwaitingResolution(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	id, err := store.Enqueue(ctx, "owner-1", map[string]any{"name": "A"})
	require.NoError(t, err)

	found, err := store.MarkAwaitingResolution(ctx, id, true)
	require.NoError(t, err)
	assert.True(t, found)

	// Запись остается pending, но помечена как ожидающая разрешения
	updates, err := store.ListPending(ctx, "")
	require.NoError(t, err)
	require.Len(t, updates, 1)
	assert.True(t, updates[0].Awaiting)

	found, err = store.MarkAwaitingResolution(ctx, id, false)
	require.NoError(t, err)
	assert.True(t, found)

	updates, err = store.ListPending(ctx, "")
	require.NoError(t, err)
	require.Len(t, updates, 1)
	assert.False(t, updates[0].Awaiting)

	found, err = store.MarkAwaitingResolution(ctx, 999, true)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStorage_Closed(t *testing.T) {
	store := createTestStorage(t)
	store.db = nil

	ctx := context.Background()

	_, err := store.Enqueue(ctx, "owner-1", map[string]any{})
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	_, err = store.ListPending(ctx, "")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	_, err = store.PurgeSynced(ctx)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
