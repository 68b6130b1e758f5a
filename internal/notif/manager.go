package notif

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Manager fans events out to registered observers through a bounded channel
// and a worker pool. It implements Dispatcher: Publish enqueues and returns;
// a full buffer is reported as an error so callers can log the drop.
type Manager struct {
	observers map[string]Observer
	events    chan Event
	ctx       context.Context
	cancel    context.CancelFunc
	mu        sync.RWMutex
	wg        sync.WaitGroup
	logger    *zap.SugaredLogger
}

func NewManager(workers, bufferSize int, logger *zap.SugaredLogger) *Manager {
	ctx, cancel := context.WithCancel(context.Background())

	m := &Manager{
		observers: make(map[string]Observer),
		events:    make(chan Event, bufferSize),
		ctx:       ctx,
		cancel:    cancel,
		logger:    logger,
	}

	for i := 0; i < workers; i++ {
		m.wg.Add(1)
		go m.processEvents()
	}

	return m
}

func (m *Manager) Subscribe(observer Observer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observers[observer.Name()] = observer
	m.logger.Infow("observer subscribed", "observer", observer.Name())
}

func (m *Manager) Unsubscribe(observer Observer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.observers, observer.Name())
	m.logger.Infow("observer unsubscribed", "observer", observer.Name())
}

// Publish enqueues the event for asynchronous fan-out.
func (m *Manager) Publish(ctx context.Context, kind EventKind, payload interface{}) error {
	select {
	case <-m.ctx.Done():
		return fmt.Errorf("dispatcher is shut down")
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	select {
	case m.events <- Event{Kind: kind, Payload: payload, At: time.Now().UTC()}:
		return nil
	default:
		return fmt.Errorf("notification buffer full, dropping %s", kind)
	}
}

// Notify delivers an event to every observer synchronously. Observer errors
// are logged, never propagated.
func (m *Manager) Notify(event Event) {
	m.mu.RLock()
	observers := make([]Observer, 0, len(m.observers))
	for _, obs := range m.observers {
		observers = append(observers, obs)
	}
	m.mu.RUnlock()

	for _, observer := range observers {
		if err := observer.Update(event); err != nil {
			m.logger.Warnw("observer update failed", "observer", observer.Name(), "kind", event.Kind, "error", err)
		}
	}
}

func (m *Manager) processEvents() {
	defer m.wg.Done()

	for {
		select {
		case event := <-m.events:
			m.Notify(event)
		case <-m.ctx.Done():
			return
		}
	}
}

func (m *Manager) Shutdown() {
	m.cancel()
	m.wg.Wait()
	m.logger.Info("notification manager shutdown complete")
}
