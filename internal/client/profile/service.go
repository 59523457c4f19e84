package profile

import (
	"context"
	"errors"
	"fmt"
	"maps"

	"github.com/iudanet/storekeeper/internal/client/storage"
	"github.com/iudanet/storekeeper/internal/models"
	"github.com/iudanet/storekeeper/internal/validation"
)

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс клиентского профильного сервиса.
// Все правки сначала попадают в локальную очередь и до синхронизации
// видны только через локальное представление профиля.
type Service interface {
	// SetFields ставит частичное обновление полей профиля в очередь
	SetFields(ctx context.Context, ownerID string, fields map[string]any) (uint64, error)

	// ListPending возвращает несинхронизированные обновления владельца
	ListPending(ctx context.Context, ownerID string) ([]*models.PendingUpdate, error)

	// PendingCount возвращает количество несинхронизированных обновлений
	PendingCount(ctx context.Context, ownerID string) (int, error)

	// CachedProfile возвращает последний подтвержденный сервером снимок профиля
	CachedProfile(ctx context.Context, ownerID string) (*models.CachedProfile, error)

	// LocalProfile возвращает кешированный снимок с наложенными поверх
	// локальными правками из очереди, в порядке их постановки
	LocalProfile(ctx context.Context, ownerID string) (map[string]any, error)

	// Resume снимает с обновления отметку ручного разрешения,
	// возвращая его в общий порядок синхронизации
	Resume(ctx context.Context, id uint64) error

	// PurgeSynced удаляет отправленные записи, пережившие сбой клиента
	PurgeSynced(ctx context.Context) (int, error)
}

// service handles local profile staging on top of queue and cache storage
type service struct {
	queue storage.QueueStorage
	cache storage.CacheStorage
}

// NewService creates a new profile service
func NewService(queue storage.QueueStorage, cache storage.CacheStorage) Service {
	return &service{
		queue: queue,
		cache: cache,
	}
}

// SetFields validates and enqueues a partial profile update
func (s *service) SetFields(ctx context.Context, ownerID string, fields map[string]any) (uint64, error) {
	if err := validation.ValidateOwnerID(ownerID); err != nil {
		return 0, fmt.Errorf("invalid owner id: %w", err)
	}
	if len(fields) == 0 {
		return 0, errors.New("no fields to update")
	}
	for name := range fields {
		if err := validation.ValidateFieldName(name); err != nil {
			return 0, fmt.Errorf("invalid field %q: %w", name, err)
		}
	}

	id, err := s.queue.Enqueue(ctx, ownerID, fields)
	if err != nil {
		return 0, fmt.Errorf("failed to enqueue update: %w", err)
	}
	return id, nil
}

// ListPending возвращает несинхронизированные обновления владельца
func (s *service) ListPending(ctx context.Context, ownerID string) ([]*models.PendingUpdate, error) {
	updates, err := s.queue.ListPending(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending updates: %w", err)
	}
	return updates, nil
}

// PendingCount возвращает количество несинхронизированных обновлений
func (s *service) PendingCount(ctx context.Context, ownerID string) (int, error) {
	count, err := s.queue.CountPending(ctx, ownerID)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending updates: %w", err)
	}
	return count, nil
}

// CachedProfile возвращает последний подтвержденный сервером снимок профиля
func (s *service) CachedProfile(ctx context.Context, ownerID string) (*models.CachedProfile, error) {
	cached, err := s.cache.GetCachedProfile(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return cached, nil
}

// LocalProfile строит локальное представление профиля: кешированный снимок
// с наложенными поверх ожидающими правками в порядке их постановки
func (s *service) LocalProfile(ctx context.Context, ownerID string) (map[string]any, error) {
	result := make(map[string]any)

	cached, err := s.cache.GetCachedProfile(ctx, ownerID)
	switch {
	case err == nil:
		maps.Copy(result, cached.Data)
	case errors.Is(err, storage.ErrCacheMiss):
		// Кеша еще нет, представление строится только из очереди
	default:
		return nil, fmt.Errorf("failed to read cached profile: %w", err)
	}

	updates, err := s.queue.ListPending(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending updates: %w", err)
	}
	for _, update := range updates {
		maps.Copy(result, update.Payload)
	}

	return result, nil
}

// Resume снимает отметку ручного разрешения с обновления
func (s *service) Resume(ctx context.Context, id uint64) error {
	found, err := s.queue.MarkAwaitingResolution(ctx, id, false)
	if err != nil {
		return fmt.Errorf("failed to resume update: %w", err)
	}
	if !found {
		return storage.ErrUpdateNotFound
	}
	return nil
}

// PurgeSynced удаляет отправленные записи, пережившие сбой клиента
func (s *service) PurgeSynced(ctx context.Context) (int, error) {
	removed, err := s.queue.PurgeSynced(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge synced updates: %w", err)
	}
	return removed, nil
}
