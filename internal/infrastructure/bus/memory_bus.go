package bus

import (
	"context"
	"encoding/json"
	"sync"

	"payment_service/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

// MemoryBus is an in-process pub/sub used in tests and in EVENT_BUS=memory
// mode. Publish serializes the event to JSON and delivers it synchronously to
// every handler registered for the topic, so callers observe handler errors
// the same way they would observe a broker error.
type MemoryBus struct {
	mu       sync.RWMutex
	handlers map[string][]interfaces.EventHandler
	log      *logrus.Entry
}

var (
	_ interfaces.IEventPublisher  = (*MemoryBus)(nil)
	_ interfaces.IEventSubscriber = (*MemoryBus)(nil)
)

func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: map[string][]interfaces.EventHandler{},
		log:      logrus.StandardLogger().WithField("type", "memory_bus"),
	}
}

func (b *MemoryBus) Subscribe(topic string, handler interfaces.EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[topic] = append(b.handlers[topic], handler)
}

func (b *MemoryBus) Publish(ctx context.Context, topic string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	b.mu.RLock()
	handlers := append([]interfaces.EventHandler(nil), b.handlers[topic]...)
	b.mu.RUnlock()

	for _, h := range handlers {
		if herr := h(ctx, data); herr != nil {
			b.log.WithError(herr).WithField("topic", topic).Warn("handler failed")
			err = herr
		}
	}
	return err
}
