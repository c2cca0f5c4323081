package interfaces

import "context"

// IEventPublisher abstracts the pub/sub component used for outbound events.
//
// Publish is at-least-once from the adapter's perspective; callers that need
// bounded retries wrap it themselves.
type IEventPublisher interface {
	Publish(ctx context.Context, topic string, event any) error
}

// EventHandler consumes one raw message delivered on a topic.
type EventHandler func(ctx context.Context, data []byte) error

// IEventSubscriber registers handlers for inbound topics. The in-memory bus
// implements it directly; in sidecar mode subscriptions are declared over HTTP
// and delivered to the topic routes instead.
type IEventSubscriber interface {
	Subscribe(topic string, handler EventHandler)
}
