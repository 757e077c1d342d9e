package lifecycle

import (
	"context"
	"fmt"
	"sync"

	"github.com/specialistvlad/overlaygo/internal/ctxlog"
)

// Handler reacts to a fired stage. A returned error aborts the stage.
type Handler func(ctx context.Context, stage Stage) error

// Bus publishes lifecycle stages to subscribed handlers. It is owned by the
// host; everything else only subscribes.
type Bus struct {
	mu       sync.RWMutex
	handlers map[Stage][]Handler
}

// NewBus creates a bus with no subscribers.
func NewBus() *Bus {
	return &Bus{handlers: make(map[Stage][]Handler)}
}

// Subscribe adds h to the handlers of stage. Handlers run in subscription order.
func (b *Bus) Subscribe(stage Stage, h Handler) error {
	if !stage.Valid() {
		return fmt.Errorf("subscribe: unknown lifecycle stage %s", stage)
	}
	if h == nil {
		return fmt.Errorf("subscribe: nil handler for stage %s", stage)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[stage] = append(b.handlers[stage], h)
	return nil
}

// Fire runs every handler subscribed to stage, in order, and stops at the
// first error. Fire must not be called from inside a handler.
func (b *Bus) Fire(ctx context.Context, stage Stage) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[stage]...)
	b.mu.RUnlock()

	logger := ctxlog.FromContext(ctx)
	logger.Debug("Firing lifecycle stage.", "stage", stage.String(), "handlers", len(handlers))

	for i, h := range handlers {
		if err := h(ctx, stage); err != nil {
			return fmt.Errorf("stage %s: handler %d: %w", stage, i, err)
		}
	}
	return nil
}

// Subscribers returns the number of handlers subscribed to stage.
func (b *Bus) Subscribers(stage Stage) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[stage])
}
