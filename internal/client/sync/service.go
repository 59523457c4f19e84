package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"

	httpClient "github.com/iudanet/storekeeper/internal/client/api"
	"github.com/iudanet/storekeeper/internal/client/conflict"
	"github.com/iudanet/storekeeper/internal/client/storage"
	"github.com/iudanet/storekeeper/internal/models"
	"github.com/iudanet/storekeeper/pkg/api"
)

//go:generate moq -out service_mock.go . Service
//go:generate moq -out deps_mock.go . ConflictResolver OnlineChecker
//go:generate moq -out client_api_mock.go -pkg sync ../api ClientAPI

var (
	// ErrSyncInProgress возвращается, когда синхронизация уже выполняется
	ErrSyncInProgress = errors.New("sync already in progress")
	// ErrOffline возвращается при попытке синхронизации без связи с сервером
	ErrOffline = errors.New("server is not reachable")
)

// EventType тип события синхронизации
type EventType string

const (
	EventSyncStart    EventType = "sync-start"
	EventSyncComplete EventType = "sync-complete"
	EventSyncFailed   EventType = "sync-failed"
)

// Event описывает событие жизненного цикла синхронизации.
// Для EventSyncFailed заполняются UpdateID, OwnerID и RetryCount,
// для EventSyncComplete заполняется Result.
type Event struct {
	Result     *Result
	OwnerID    string
	Type       EventType
	UpdateID   uint64
	RetryCount int
}

// Listener получает уведомления о событиях синхронизации
type Listener func(event Event)

// Result contains sync pass results
type Result struct {
	Total     int // количество записей в очереди на момент запуска
	Synced    int // количество успешно отправленных записей
	Failed    int // количество записей с ошибкой отправки
	Skipped   int // количество пропущенных записей (ждут ручного разрешения)
	Conflicts int // количество обнаруженных конфликтов
}

// Status описывает текущее состояние сервиса синхронизации
type Status struct {
	Syncing  bool `json:"syncing"`
	Online   bool `json:"online"`
	AutoSync bool `json:"auto_sync"`
}

// ConflictResolver определяет интерфейс разрешения конфликтов,
// используемый сервисом синхронизации
type ConflictResolver interface {
	DetectConflict(update *models.PendingUpdate, serverData map[string]any, serverUpdatedAt time.Time) *models.Conflict
	Resolve(ctx context.Context, c *models.Conflict) (*models.Resolution, error)
}

// OnlineChecker сообщает текущее состояние связи с сервером
type OnlineChecker interface {
	Online() bool
}

// Service определяет интерфейс для sync.Service
type Service interface {
	// Sync выполняет один проход синхронизации очереди с сервером
	Sync(ctx context.Context) (*Result, error)

	// ForceSync запускает проход немедленно, вне расписания автосинхронизации
	ForceSync(ctx context.Context) (*Result, error)

	// StartAutoSync включает периодическую фоновую синхронизацию
	StartAutoSync() error

	// StopAutoSync выключает периодическую фоновую синхронизацию
	StopAutoSync()

	// GetStatus возвращает текущее состояние сервиса
	GetStatus() Status

	// AddListener регистрирует подписчика событий и возвращает его id
	AddListener(l Listener) int

	// RemoveListener удаляет подписчика по id
	RemoveListener(id int)
}

// Options настраивают поведение сервиса синхронизации
type Options struct {
	Interval   time.Duration // период автосинхронизации
	RetryDelay time.Duration // пауза перед повторным проходом после ошибок
	GraceDelay time.Duration // задержка физического удаления после успешной отправки
	MaxRetries int           // порог попыток до события EventSyncFailed
}

// DefaultOptions возвращает настройки по умолчанию
func DefaultOptions() Options {
	return Options{
		Interval:   30 * time.Second,
		RetryDelay: 5 * time.Second,
		GraceDelay: 5 * time.Second,
		MaxRetries: 3,
	}
}

// Service handles synchronization between the local queue and the server
type service struct {
	apiClient      httpClient.ClientAPI
	queue          storage.QueueStorage
	cache          storage.CacheStorage
	resolver       ConflictResolver
	online         OnlineChecker
	logger         *slog.Logger
	cron           *cron.Cron
	listeners      map[int]Listener
	opts           Options
	entryID        cron.EntryID
	nextListenerID int
	mu             sync.Mutex
	syncing        atomic.Bool
	retryPending   atomic.Bool
	autoSync       bool
}

// NewService creates a new sync service
func NewService(
	apiClient httpClient.ClientAPI,
	queue storage.QueueStorage,
	cache storage.CacheStorage,
	resolver ConflictResolver,
	online OnlineChecker,
	logger *slog.Logger,
	opts Options,
) Service {
	def := DefaultOptions()
	if opts.Interval <= 0 {
		opts.Interval = def.Interval
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = def.RetryDelay
	}
	if opts.GraceDelay < 0 {
		opts.GraceDelay = def.GraceDelay
	}
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = def.MaxRetries
	}
	return &service{
		apiClient: apiClient,
		queue:     queue,
		cache:     cache,
		resolver:  resolver,
		online:    online,
		logger:    logger,
		cron:      cron.New(),
		listeners: make(map[int]Listener),
		opts:      opts,
	}
}

// Sync performs one synchronization pass
// 1. Acquires the syncing guard, rejects concurrent passes
// 2. Drains the pending queue in insertion order
// 3. Detects and resolves conflicts before each push
func (s *service) Sync(ctx context.Context) (*Result, error) {
	if !s.syncing.CompareAndSwap(false, true) {
		return nil, ErrSyncInProgress
	}
	// Сбрасываем флаг при любом исходе, включая панику ниже по стеку
	defer s.syncing.Store(false)

	if !s.online.Online() {
		return nil, ErrOffline
	}

	updates, err := s.queue.ListPending(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list pending updates: %w", err)
	}

	result := &Result{Total: len(updates)}
	if len(updates) == 0 {
		return result, nil
	}

	s.logger.Info("Starting synchronization", "pending", len(updates))
	s.notify(Event{Type: EventSyncStart})

	// Записи отправляются строго последовательно, в порядке постановки в очередь
	for _, update := range updates {
		if update.Awaiting {
			result.Skipped++
			continue
		}
		s.syncUpdate(ctx, update, result)
	}

	s.logger.Info("Synchronization completed",
		"total", result.Total,
		"synced", result.Synced,
		"failed", result.Failed,
		"skipped", result.Skipped,
		"conflicts", result.Conflicts)

	s.notify(Event{Type: EventSyncComplete, Result: result})
	return result, nil
}

// ForceSync запускает проход немедленно; действует та же защита от
// параллельных запусков, что и у планового прохода
func (s *service) ForceSync(ctx context.Context) (*Result, error) {
	return s.Sync(ctx)
}

// syncUpdate отправляет одну запись очереди и учитывает исход в result
func (s *service) syncUpdate(ctx context.Context, update *models.PendingUpdate, result *Result) {
	// Получаем серверное состояние для проверки конфликта
	var (
		serverFields    map[string]any
		serverUpdatedAt time.Time
	)
	profile, err := s.apiClient.GetProfile(ctx, update.OwnerID)
	switch {
	case err == nil:
		serverFields = profile.Fields
		serverUpdatedAt = profile.UpdatedAt
	case errors.Is(err, httpClient.ErrProfileNotFound):
		// Профиль на сервере еще не создан, конфликт невозможен
	default:
		s.logger.Warn("Failed to fetch server state",
			"update_id", update.ID,
			"owner_id", update.OwnerID,
			"error", err)
		s.fail(ctx, update, result)
		return
	}

	if c := s.resolver.DetectConflict(update, serverFields, serverUpdatedAt); c != nil {
		result.Conflicts++
		resolution, resolveErr := s.resolver.Resolve(ctx, c)
		if resolveErr != nil {
			if errors.Is(resolveErr, conflict.ErrResolutionCancelled) ||
				errors.Is(resolveErr, conflict.ErrNoPresenter) {
				// Откладываем запись до ручного разрешения, счетчик попыток не трогаем
				if _, markErr := s.queue.MarkAwaitingResolution(ctx, update.ID, true); markErr != nil {
					s.logger.Warn("Failed to mark update as awaiting resolution",
						"update_id", update.ID,
						"error", markErr)
				}
				result.Skipped++
				return
			}
			s.logger.Warn("Conflict resolution failed",
				"update_id", update.ID,
				"error", resolveErr)
			s.fail(ctx, update, result)
			return
		}
		if resolution.Action == models.ActionUseServer {
			// Серверная версия побеждает: локальная правка отбрасывается,
			// кеш обновляется серверными данными
			s.logger.Info("Conflict resolved in favor of server",
				"update_id", update.ID,
				"reason", resolution.Reason)
			if cacheErr := s.cache.CacheProfile(ctx, update.OwnerID, resolution.Data); cacheErr != nil {
				s.logger.Warn("Failed to cache server profile", "error", cacheErr)
			}
			s.finish(ctx, update)
			result.Synced++
			return
		}
	}

	resp, err := s.apiClient.UpdateProfile(ctx, update.OwnerID, update.Payload)
	if err != nil {
		s.logger.Warn("Failed to push update",
			"update_id", update.ID,
			"owner_id", update.OwnerID,
			"error", err)
		s.fail(ctx, update, result)
		return
	}
	if resp.Status != api.StatusSuccess {
		s.logger.Warn("Server rejected update",
			"update_id", update.ID,
			"status", resp.Status)
		s.fail(ctx, update, result)
		return
	}

	// Кешируем подтвержденное сервером состояние профиля
	if resp.Profile != nil {
		if cacheErr := s.cache.CacheProfile(ctx, update.OwnerID, resp.Profile.Fields); cacheErr != nil {
			s.logger.Warn("Failed to cache server profile", "error", cacheErr)
		}
	}

	s.finish(ctx, update)
	result.Synced++
}

// fail учитывает неудачную попытку: запись остается в очереди до следующего
// прохода, при достижении порога попыток подписчики получают EventSyncFailed
func (s *service) fail(ctx context.Context, update *models.PendingUpdate, result *Result) {
	result.Failed++

	count, err := s.queue.IncrementRetry(ctx, update.ID)
	if err != nil {
		s.logger.Warn("Failed to increment retry count",
			"update_id", update.ID,
			"error", err)
		count = update.RetryCount + 1
	}

	if count >= s.opts.MaxRetries {
		s.logger.Error("Update exceeded retry limit",
			"update_id", update.ID,
			"owner_id", update.OwnerID,
			"retry_count", count)
		s.notify(Event{
			Type:       EventSyncFailed,
			UpdateID:   update.ID,
			OwnerID:    update.OwnerID,
			RetryCount: count,
		})
	}
}

// finish помечает запись синхронизированной и планирует отложенное удаление
func (s *service) finish(ctx context.Context, update *models.PendingUpdate) {
	if _, err := s.queue.MarkSynced(ctx, update.ID); err != nil {
		s.logger.Warn("Failed to mark update as synced",
			"update_id", update.ID,
			"error", err)
		return
	}

	// Физическое удаление откладывается, чтобы читатели текущего прохода
	// еще видели запись со статусом synced
	id := update.ID
	time.AfterFunc(s.opts.GraceDelay, func() {
		if _, err := s.queue.DeleteByID(context.Background(), id); err != nil {
			s.logger.Warn("Failed to delete synced update",
				"update_id", id,
				"error", err)
		}
	})
}

// StartAutoSync включает периодическую синхронизацию. Если сервер доступен,
// первый проход запускается сразу, не дожидаясь таймера
func (s *service) StartAutoSync() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.autoSync {
		return nil
	}

	entryID, err := s.cron.AddFunc(fmt.Sprintf("@every %s", s.opts.Interval), s.scheduledSync)
	if err != nil {
		return fmt.Errorf("failed to schedule auto sync: %w", err)
	}
	s.entryID = entryID
	s.autoSync = true
	s.cron.Start()

	s.logger.Info("Auto sync enabled", "interval", s.opts.Interval)

	if s.online.Online() {
		go s.scheduledSync()
	}
	return nil
}

// StopAutoSync выключает периодическую синхронизацию
func (s *service) StopAutoSync() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.autoSync {
		return
	}
	s.cron.Remove(s.entryID)
	s.cron.Stop()
	s.autoSync = false

	s.logger.Info("Auto sync disabled")
}

// scheduledSync выполняет плановый проход. Если предыдущий проход еще идет
// или сервер недоступен, запуск просто пропускается
func (s *service) scheduledSync() {
	result, err := s.Sync(context.Background())
	switch {
	case errors.Is(err, ErrSyncInProgress):
		s.logger.Debug("Sync already running, skipping scheduled pass")
	case errors.Is(err, ErrOffline):
		s.logger.Debug("Server unreachable, skipping scheduled pass")
	case err != nil:
		s.logger.Error("Scheduled sync failed", "error", err)
	case result.Failed > 0:
		s.scheduleRetry()
	}
}

// scheduleRetry планирует один дополнительный проход между плановыми,
// чтобы неудавшиеся записи не ждали полный интервал автосинхронизации
func (s *service) scheduleRetry() {
	if !s.retryPending.CompareAndSwap(false, true) {
		return
	}
	time.AfterFunc(s.opts.RetryDelay, func() {
		s.retryPending.Store(false)

		s.mu.Lock()
		enabled := s.autoSync
		s.mu.Unlock()
		if !enabled {
			return
		}

		if _, err := s.Sync(context.Background()); err != nil &&
			!errors.Is(err, ErrSyncInProgress) && !errors.Is(err, ErrOffline) {
			s.logger.Error("Retry sync failed", "error", err)
		}
	})
}

// GetStatus возвращает текущее состояние сервиса синхронизации
func (s *service) GetStatus() Status {
	s.mu.Lock()
	autoSync := s.autoSync
	s.mu.Unlock()

	return Status{
		Syncing:  s.syncing.Load(),
		Online:   s.online.Online(),
		AutoSync: autoSync,
	}
}

// AddListener регистрирует подписчика событий синхронизации
func (s *service) AddListener(l Listener) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextListenerID
	s.nextListenerID++
	s.listeners[id] = l
	return id
}

// RemoveListener удаляет подписчика по id
func (s *service) RemoveListener(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.listeners, id)
}

// notify рассылает событие всем подписчикам. Паника в подписчике
// логируется и не прерывает ни рассылку, ни синхронизацию
func (s *service) notify(event Event) {
	s.mu.Lock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		func() {
			defer func() {
				if r := recover(); r != nil {
					s.logger.Error("Sync listener panicked", "event", event.Type, "panic", r)
				}
			}()
			l(event)
		}()
	}
}
