package conflict

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"sync"
	"time"

	"github.com/iudanet/storekeeper/internal/models"
)

// Resolver решает, конфликтует ли локальная мутация с серверным
// состоянием того же владельца, и разрешает конфликт согласно
// настроенной стратегии. Стратегия процесс-глобальная и может
// меняться в рантайме.
type Resolver struct {
	logger    *slog.Logger
	presenter Presenter
	log       []*models.Conflict
	mu        sync.Mutex
	strategy  models.Strategy
}

// NewResolver создает resolver со стратегией timestamp по умолчанию.
// presenter может быть nil, если стратегия manual не используется.
func NewResolver(presenter Presenter, logger *slog.Logger) *Resolver {
	return &Resolver{
		logger:    logger,
		presenter: presenter,
		strategy:  models.StrategyTimestamp,
	}
}

// SetStrategy меняет стратегию разрешения конфликтов.
// Недопустимое значение отклоняется, текущая стратегия не меняется.
func (r *Resolver) SetStrategy(strategy models.Strategy) error {
	if !strategy.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStrategy, strategy)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.strategy = strategy
	return nil
}

// Strategy возвращает текущую стратегию
func (r *Resolver) Strategy() models.Strategy {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.strategy
}

// DetectConflict сравнивает локальную мутацию с серверным состоянием.
// Конфликт существует тогда и только тогда, когда сервер был изменен
// после постановки локальной мутации в очередь: слепая перезапись
// потеряла бы серверные изменения. Отсутствие серверного состояния
// (nil) или отсутствие updated_at (нулевое время, т.е. epoch) конфликтом
// не является.
//
// Обнаруженный конфликт добавляется во внутренний audit-лог;
// лог живет только в памяти процесса.
func (r *Resolver) DetectConflict(update *models.PendingUpdate, serverData map[string]any, serverUpdatedAt time.Time) *models.Conflict {
	if serverData == nil {
		return nil
	}

	if !serverUpdatedAt.After(update.CreatedAt) {
		return nil
	}

	c := &models.Conflict{
		UpdateID:        update.ID,
		OwnerID:         update.OwnerID,
		LocalData:       update.Payload,
		ServerData:      serverData,
		LocalTimestamp:  update.CreatedAt,
		ServerTimestamp: serverUpdatedAt,
		DetectedAt:      time.Now().UTC(),
	}

	r.logger.Warn("Conflict detected",
		"owner_id", c.OwnerID,
		"update_id", c.UpdateID,
		"local_timestamp", c.LocalTimestamp,
		"server_timestamp", c.ServerTimestamp,
	)

	r.mu.Lock()
	r.log = append(r.log, c)
	r.mu.Unlock()

	return c
}

// Resolve разрешает конфликт согласно текущей стратегии
func (r *Resolver) Resolve(ctx context.Context, c *models.Conflict) (*models.Resolution, error) {
	strategy := r.Strategy()

	switch strategy {
	case models.StrategyTimestamp:
		return r.resolveByTimestamp(c), nil

	case models.StrategyServerWins:
		return &models.Resolution{
			Action: models.ActionUseServer,
			Data:   c.ServerData,
			Reason: "strategy server-wins",
		}, nil

	case models.StrategyClientWins:
		return &models.Resolution{
			Action: models.ActionUseLocal,
			Data:   c.LocalData,
			Reason: "strategy client-wins",
		}, nil

	case models.StrategyManual:
		if r.presenter == nil {
			return nil, ErrNoPresenter
		}
		return r.presenter.Present(ctx, c)
	}

	return nil, fmt.Errorf("%w: %q", ErrInvalidStrategy, strategy)
}

// resolveByTimestamp реализует last-write-wins.
// При равных timestamp побеждает сервер: так мы не рискуем затереть
// конкурентную серверную запись.
func (r *Resolver) resolveByTimestamp(c *models.Conflict) *models.Resolution {
	if c.LocalTimestamp.After(c.ServerTimestamp) {
		return &models.Resolution{
			Action: models.ActionUseLocal,
			Data:   c.LocalData,
			Reason: "local change is newer",
		}
	}

	return &models.Resolution{
		Action: models.ActionUseServer,
		Data:   c.ServerData,
		Reason: "server state is newer",
	}
}

// MergeChanges выполняет пополевое слияние: каждое непустое поле
// локальной версии перекрывает соответствующее поле серверной.
// Не вызывается автоматически из Resolve: это третий вариант для
// пользователя помимо чистого выбора стороны.
func (r *Resolver) MergeChanges(localData, serverData map[string]any) map[string]any {
	merged := make(map[string]any, len(serverData)+len(localData))
	maps.Copy(merged, serverData)

	for k, v := range localData {
		if v == nil {
			continue
		}
		merged[k] = v
	}

	return merged
}

// ConflictLog возвращает копию audit-лога обнаруженных конфликтов
func (r *Resolver) ConflictLog() []*models.Conflict {
	r.mu.Lock()
	defer r.mu.Unlock()

	log := make([]*models.Conflict, len(r.log))
	copy(log, r.log)
	return log
}

// ClearConflictLog очищает audit-лог
func (r *Resolver) ClearConflictLog() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.log = nil
}
