package connectivity

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Event тип события смены состояния сети
type Event string

const (
	// EventOnline соединение с сервером восстановлено
	EventOnline Event = "online"
	// EventOffline соединение с сервером потеряно
	EventOffline Event = "offline"
)

// Listener получает уведомление о смене состояния сети.
// Паника внутри listener перехватывается и логируется:
// остальные подписчики все равно будут уведомлены.
type Listener func(event Event, online bool)

// Status представляет текущее состояние монитора
type Status struct {
	Online bool `json:"online"`
}

// HealthChecker определяет зависимость для фонового опроса доступности
// сервера. Реализуется api.Client.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Monitor единственный источник истины о доступности сервера.
// Два состояния (online/offline); переходы инициируются внешним
// сигналом через SetOnline или фоновым опросом StartProbing.
type Monitor struct {
	logger      *slog.Logger
	listeners   map[int]Listener
	syncTrigger func()
	mu          sync.Mutex
	nextID      int
	online      bool
}

// NewMonitor создает монитор с заданным начальным состоянием.
// Начальное состояние следует определять первичной проверкой
// доступности сервера при старте процесса.
func NewMonitor(initiallyOnline bool, logger *slog.Logger) *Monitor {
	return &Monitor{
		logger:    logger,
		listeners: make(map[int]Listener),
		online:    initiallyOnline,
	}
}

// SetSyncTrigger регистрирует callback, вызываемый ровно один раз
// на каждый переход offline -> online. Связь с Sync Manager через
// callback исключает циклическую зависимость пакетов.
func (m *Monitor) SetSyncTrigger(trigger func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.syncTrigger = trigger
}

// Online возвращает текущее состояние
func (m *Monitor) Online() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

// GetStatus возвращает текущее состояние монитора
func (m *Monitor) GetStatus() Status {
	return Status{Online: m.Online()}
}

// AddListener регистрирует подписчика и возвращает его идентификатор
// для последующего RemoveListener
func (m *Monitor) AddListener(l Listener) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	m.listeners[m.nextID] = l
	return m.nextID
}

// RemoveListener снимает подписку; безопасен для неизвестного id
func (m *Monitor) RemoveListener(id int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.listeners, id)
}

// SetOnline фиксирует внешний сигнал о смене состояния сети.
// Повторный сигнал того же состояния игнорируется, поэтому дребезг
// (частые flapping-переходы) не порождает лишних sync-триггеров.
func (m *Monitor) SetOnline(online bool) {
	m.mu.Lock()
	if m.online == online {
		m.mu.Unlock()
		return
	}
	m.online = online

	// Копируем подписчиков под локом, уведомляем без него
	listeners := make([]Listener, 0, len(m.listeners))
	for _, l := range m.listeners {
		listeners = append(listeners, l)
	}
	trigger := m.syncTrigger
	m.mu.Unlock()

	event := EventOffline
	if online {
		event = EventOnline
	}

	m.logger.Info("Connectivity changed", "event", string(event))

	for _, l := range listeners {
		m.notify(l, event, online)
	}

	// Один триггер на переход, не на подписчика.
	// Переход online -> offline синхронизацию не запускает.
	if online && trigger != nil {
		go trigger()
	}
}

// notify вызывает подписчика в защищенном контексте
func (m *Monitor) notify(l Listener, event Event, online bool) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("Connectivity listener panicked",
				"event", string(event),
				"panic", r,
			)
		}
	}()

	l(event, online)
}

// StartProbing запускает фоновый опрос доступности сервера как
// fallback к внешним сигналам. Останавливается отменой ctx.
func (m *Monitor) StartProbing(ctx context.Context, checker HealthChecker, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				m.probe(ctx, checker)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// probe выполняет одиночную проверку и обновляет состояние
func (m *Monitor) probe(ctx context.Context, checker HealthChecker) {
	probeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := checker.Health(probeCtx)
	if err != nil {
		m.logger.Debug("Health probe failed", "error", err)
	}
	m.SetOnline(err == nil)
}
