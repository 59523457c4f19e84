package connectivity

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMonitor_InitialState(t *testing.T) {
	m := NewMonitor(true, testLogger())
	assert.True(t, m.Online())
	assert.Equal(t, Status{Online: true}, m.GetStatus())

	m = NewMonitor(false, testLogger())
	assert.False(t, m.Online())
}

func TestMonitor_Transitions(t *testing.T) {
	m := NewMonitor(true, testLogger())

	var mu sync.Mutex
	var events []Event

	m.AddListener(func(event Event, online bool) {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, event)
	})

	m.SetOnline(false)
	m.SetOnline(true)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []Event{EventOffline, EventOnline}, events)
}

func TestMonitor_SameStateIgnored(t *testing.T) {
	m := NewMonitor(true, testLogger())

	var notified atomic.Int32
	m.AddListener(func(event Event, online bool) {
		notified.Add(1)
	})

	// Повторный сигнал того же состояния не порождает событий
	m.SetOnline(true)
	m.SetOnline(true)
	assert.Equal(t, int32(0), notified.Load())

	m.SetOnline(false)
	m.SetOnline(false)
	assert.Equal(t, int32(1), notified.Load())
}

func TestMonitor_SyncTrigger_OncePerTransition(t *testing.T) {
	m := NewMonitor(false, testLogger())

	triggered := make(chan struct{}, 10)
	m.SetSyncTrigger(func() {
		triggered <- struct{}{}
	})

	// Несколько подписчиков не должны умножать количество триггеров
	m.AddListener(func(Event, bool) {})
	m.AddListener(func(Event, bool) {})
	m.AddListener(func(Event, bool) {})

	m.SetOnline(true)

	select {
	case <-triggered:
	case <-time.After(time.Second):
		t.Fatal("sync trigger was not invoked on offline -> online")
	}

	select {
	case <-triggered:
		t.Fatal("sync trigger invoked more than once per transition")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestMonitor_SyncTrigger_NotFiredOnOffline(t *testing.T) {
	m := NewMonitor(true, testLogger())

	triggered := make(chan struct{}, 1)
	m.SetSyncTrigger(func() {
		triggered <- struct{}{}
	})

	m.SetOnline(false)

	select {
	case <-triggered:
		t.Fatal("sync trigger must not fire on online -> offline")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestMonitor_PanickingListener(t *testing.T) {
	m := NewMonitor(true, testLogger())

	var secondNotified atomic.Bool

	m.AddListener(func(Event, bool) {
		panic("listener failure")
	})
	m.AddListener(func(Event, bool) {
		secondNotified.Store(true)
	})

	// Паника одного подписчика не прерывает уведомление остальных
	require.NotPanics(t, func() {
		m.SetOnline(false)
	})
	assert.True(t, secondNotified.Load())
}

func TestMonitor_RemoveListener(t *testing.T) {
	m := NewMonitor(true, testLogger())

	var notified atomic.Int32
	id := m.AddListener(func(Event, bool) {
		notified.Add(1)
	})

	m.RemoveListener(id)
	m.SetOnline(false)

	assert.Equal(t, int32(0), notified.Load())

	// Удаление неизвестного id безопасно
	m.RemoveListener(999)
}

// fakeChecker реализует HealthChecker для теста фонового опроса
type fakeChecker struct {
	err atomic.Value // error
}

func (f *fakeChecker) Health(ctx context.Context) error {
	if v := f.err.Load(); v != nil {
		if err, ok := v.(error); ok {
			return err
		}
	}
	return nil
}

func TestMonitor_Probing(t *testing.T) {
	m := NewMonitor(false, testLogger())

	checker := &fakeChecker{}

	onlineC := make(chan bool, 10)
	m.AddListener(func(event Event, online bool) {
		onlineC <- online
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m.StartProbing(ctx, checker, 10*time.Millisecond)

	// Сервер доступен: монитор должен перейти в online
	select {
	case online := <-onlineC:
		assert.True(t, online)
	case <-time.After(time.Second):
		t.Fatal("monitor did not transition to online")
	}

	// Сервер падает: монитор должен перейти в offline
	checker.err.Store(errors.New("connection refused"))

	select {
	case online := <-onlineC:
		assert.False(t, online)
	case <-time.After(time.Second):
		t.Fatal("monitor did not transition to offline")
	}
}
