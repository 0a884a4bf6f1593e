package bus

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

const (
	queueDepth     = 100
	publishTimeout = 100 * time.Millisecond
)

// MessageBus decouples transports from the dialogue engine. Channels publish
// user turns inbound, the controller publishes replies outbound, and each
// running channel registers a delivery route the outbound dispatcher fans
// messages back out through.
type MessageBus struct {
	inbound         chan InboundMessage
	outbound        chan OutboundMessage
	routes          map[string]DeliverFunc
	closed          bool
	droppedInbound  atomic.Uint64
	droppedOutbound atomic.Uint64
	mu              sync.RWMutex
}

func NewMessageBus() *MessageBus {
	return &MessageBus{
		inbound:  make(chan InboundMessage, queueDepth),
		outbound: make(chan OutboundMessage, queueDepth),
		routes:   make(map[string]DeliverFunc),
	}
}

// enqueue accepts msg, waiting up to publishTimeout when the queue is full.
// It reports whether the message was accepted; callers count the drop.
func enqueue[T any](mb *MessageBus, queue chan<- T, msg T) bool {
	mb.mu.RLock()
	defer mb.mu.RUnlock()
	if mb.closed {
		return false
	}

	select {
	case queue <- msg:
		return true
	default:
	}

	timer := time.NewTimer(publishTimeout)
	defer timer.Stop()
	select {
	case queue <- msg:
		return true
	case <-timer.C:
		return false
	}
}

func dequeue[T any](ctx context.Context, queue <-chan T) (T, bool) {
	var zero T
	select {
	case msg, ok := <-queue:
		if !ok {
			return zero, false
		}
		return msg, true
	case <-ctx.Done():
		return zero, false
	}
}

func (mb *MessageBus) PublishInbound(msg InboundMessage) {
	if !enqueue(mb, mb.inbound, msg) {
		mb.droppedInbound.Add(1)
	}
}

func (mb *MessageBus) ConsumeInbound(ctx context.Context) (InboundMessage, bool) {
	return dequeue(ctx, mb.inbound)
}

func (mb *MessageBus) PublishOutbound(msg OutboundMessage) {
	if !enqueue(mb, mb.outbound, msg) {
		mb.droppedOutbound.Add(1)
	}
}

func (mb *MessageBus) SubscribeOutbound(ctx context.Context) (OutboundMessage, bool) {
	return dequeue(ctx, mb.outbound)
}

// RegisterRoute binds a channel name to its delivery function. Re-registering
// replaces the previous route.
func (mb *MessageBus) RegisterRoute(channel string, deliver DeliverFunc) {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	mb.routes[channel] = deliver
}

func (mb *MessageBus) UnregisterRoute(channel string) {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	delete(mb.routes, channel)
}

// Route returns the delivery function registered for channel.
func (mb *MessageBus) Route(channel string) (DeliverFunc, bool) {
	mb.mu.RLock()
	defer mb.mu.RUnlock()
	deliver, ok := mb.routes[channel]
	return deliver, ok
}

func (mb *MessageBus) Close() {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	if mb.closed {
		return
	}
	mb.closed = true
	close(mb.inbound)
	close(mb.outbound)
}

func (mb *MessageBus) DroppedInbound() uint64 {
	return mb.droppedInbound.Load()
}

func (mb *MessageBus) DroppedOutbound() uint64 {
	return mb.droppedOutbound.Load()
}
