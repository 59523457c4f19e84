package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/storekeeper/internal/client/conflict"
	"github.com/iudanet/storekeeper/internal/client/connectivity"
	"github.com/iudanet/storekeeper/internal/client/profile"
	"github.com/iudanet/storekeeper/internal/client/storage"
	"github.com/iudanet/storekeeper/internal/client/sync"
	"github.com/iudanet/storekeeper/internal/models"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunSet(t *testing.T) {
	var gotFields map[string]any
	queue := &storage.QueueStorageMock{
		EnqueueFunc: func(ctx context.Context, ownerID string, payload map[string]any) (uint64, error) {
			gotFields = payload
			return 1, nil
		},
	}
	ioMock, out := newTestIO()
	c := &Cli{
		io:             ioMock,
		profileService: profile.NewService(queue, &storage.CacheStorageMock{}),
		monitor:        connectivity.NewMonitor(false, discardLogger()),
	}

	err := c.runSet(context.Background(), []string{
		"store_owner", "shop_name=Corner Shop", "tax_rate=19", "delivery=true",
	})

	require.NoError(t, err)
	// Значения приводятся к подходящему типу
	assert.Equal(t, "Corner Shop", gotFields["shop_name"])
	assert.Equal(t, int64(19), gotFields["tax_rate"])
	assert.Equal(t, true, gotFields["delivery"])
	// В офлайне команда предупреждает об отложенной отправке
	assert.Contains(t, out.String(), "Queued update #1")
	assert.Contains(t, out.String(), "unreachable")
}

func TestRunSet_BadArgs(t *testing.T) {
	ioMock, _ := newTestIO()
	c := &Cli{io: ioMock}

	require.Error(t, c.runSet(context.Background(), []string{"store_owner"}))
	require.Error(t, c.runSet(context.Background(), []string{"store_owner", "no-equals-sign"}))
}

func TestRunSync_PrintsResult(t *testing.T) {
	svc := &sync.ServiceMock{
		ForceSyncFunc: func(ctx context.Context) (*sync.Result, error) {
			return &sync.Result{Total: 3, Synced: 2, Failed: 1}, nil
		},
	}
	ioMock, out := newTestIO()
	c := &Cli{io: ioMock, syncService: svc}

	require.NoError(t, c.runSync(context.Background()))
	assert.Contains(t, out.String(), "Pushed to server: 2")
	assert.Contains(t, out.String(), "Failed:           1")
}

func TestRunSync_Offline(t *testing.T) {
	svc := &sync.ServiceMock{
		ForceSyncFunc: func(ctx context.Context) (*sync.Result, error) {
			return nil, sync.ErrOffline
		},
	}
	ioMock, _ := newTestIO()
	c := &Cli{io: ioMock, syncService: svc}

	err := c.runSync(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unreachable")
}

func TestRunSync_AlreadyRunning(t *testing.T) {
	svc := &sync.ServiceMock{
		ForceSyncFunc: func(ctx context.Context) (*sync.Result, error) {
			return nil, sync.ErrSyncInProgress
		},
	}
	ioMock, out := newTestIO()
	c := &Cli{io: ioMock, syncService: svc}

	// Повторный запуск не считается ошибкой
	require.NoError(t, c.runSync(context.Background()))
	assert.Contains(t, out.String(), "already running")
}

func TestRunStrategy(t *testing.T) {
	resolver := conflict.NewResolver(nil, discardLogger())
	ioMock, out := newTestIO()
	c := &Cli{io: ioMock, resolver: resolver}

	require.NoError(t, c.runStrategy([]string{"server-wins"}))
	assert.Equal(t, models.StrategyServerWins, resolver.Strategy())
	assert.Contains(t, out.String(), "server-wins")

	require.Error(t, c.runStrategy([]string{"coin-flip"}))
	assert.Equal(t, models.StrategyServerWins, resolver.Strategy())
}

func TestRunStatus(t *testing.T) {
	queue := &storage.QueueStorageMock{
		CountPendingFunc: func(ctx context.Context, ownerID string) (int, error) {
			return 2, nil
		},
	}
	svc := &sync.ServiceMock{
		GetStatusFunc: func() sync.Status {
			return sync.Status{Online: true}
		},
	}
	ioMock, out := newTestIO()
	c := &Cli{
		io:             ioMock,
		profileService: profile.NewService(queue, &storage.CacheStorageMock{}),
		syncService:    svc,
		resolver:       conflict.NewResolver(nil, discardLogger()),
		monitor:        connectivity.NewMonitor(true, discardLogger()),
	}

	require.NoError(t, c.runStatus(context.Background()))
	assert.Contains(t, out.String(), "Connectivity: online")
	assert.Contains(t, out.String(), "2 update(s)")
}

func TestRunResume(t *testing.T) {
	queue := &storage.QueueStorageMock{
		MarkAwaitingResolutionFunc: func(ctx context.Context, id uint64, awaiting bool) (bool, error) {
			return id == 9, nil
		},
	}
	ioMock, out := newTestIO()
	c := &Cli{
		io:             ioMock,
		profileService: profile.NewService(queue, &storage.CacheStorageMock{}),
	}

	require.NoError(t, c.runResume(context.Background(), []string{"9"}))
	assert.Contains(t, out.String(), "#9")

	err := c.runResume(context.Background(), []string{"10"})
	require.ErrorIs(t, err, storage.ErrUpdateNotFound)

	require.Error(t, c.runResume(context.Background(), []string{"not-a-number"}))
	require.Error(t, c.runResume(context.Background(), nil))
}

func TestRunPending(t *testing.T) {
	queue := &storage.QueueStorageMock{
		ListPendingFunc: func(ctx context.Context, ownerID string) ([]*models.PendingUpdate, error) {
			if ownerID != "store_owner" {
				return nil, errors.New("unexpected owner filter")
			}
			return []*models.PendingUpdate{
				{ID: 1, OwnerID: ownerID, Payload: map[string]any{"shop_name": "x"}, Awaiting: true},
				{ID: 2, OwnerID: ownerID, Payload: map[string]any{"currency": "EUR"}, RetryCount: 2},
			}, nil
		},
	}
	ioMock, out := newTestIO()
	c := &Cli{
		io:             ioMock,
		profileService: profile.NewService(queue, &storage.CacheStorageMock{}),
	}

	require.NoError(t, c.runPending(context.Background(), []string{"store_owner"}))
	assert.Contains(t, out.String(), "manual conflict resolution")
	assert.Contains(t, out.String(), "retries: 2")
}
