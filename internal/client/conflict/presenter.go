package conflict

import (
	"context"
	"errors"

	"github.com/iudanet/storekeeper/internal/models"
)

//go:generate moq -out presenter_mock.go . Presenter

// Presenter определяет capability-интерфейс для ручного разрешения
// конфликтов: показывает пользователю обе версии и возвращает его выбор.
// Ядро синхронизации не знает о конкретном UI; CLI-реализация живет
// в пакете cli, тестовый дубль отвечает мгновенно.
type Presenter interface {
	// Present показывает конфликт и блокируется до выбора пользователя.
	// Возвращает ErrResolutionCancelled, если пользователь закрыл диалог
	// без выбора: конфликт остается неразрешенным, гадать нельзя.
	Present(ctx context.Context, conflict *models.Conflict) (*models.Resolution, error)
}

var (
	// ErrResolutionCancelled пользователь отказался от выбора
	ErrResolutionCancelled = errors.New("conflict resolution cancelled by user")

	// ErrNoPresenter выбрана стратегия manual, но presenter не настроен
	ErrNoPresenter = errors.New("manual strategy requires a conflict presenter")

	// ErrInvalidStrategy недопустимое значение стратегии
	ErrInvalidStrategy = errors.New("invalid conflict resolution strategy")
)
