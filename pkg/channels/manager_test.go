package channels

import (
	"context"
	"testing"
	"time"

	"github.com/verdantlab/calmspace/pkg/bus"
)

func TestDispatchOutbound_DeliversThroughRegisteredRoute(t *testing.T) {
	mb := bus.NewMessageBus()
	defer mb.Close()

	received := make(chan bus.OutboundMessage, 2)
	mb.RegisterRoute("discord", func(ctx context.Context, msg bus.OutboundMessage) error {
		received <- msg
		return nil
	})

	m := &Manager{channels: map[string]Channel{}, bus: mb}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go m.dispatchOutbound(ctx)

	// The unrouted message is skipped; the routed one arrives.
	mb.PublishOutbound(bus.OutboundMessage{Channel: "matrix", ChatID: "x", Content: "nowhere"})
	mb.PublishOutbound(bus.OutboundMessage{Channel: "discord", ChatID: "c1", Content: "hi there"})

	select {
	case msg := <-received:
		if msg.Content != "hi there" || msg.ChatID != "c1" {
			t.Fatalf("unexpected message: %+v", msg)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("expected routed delivery")
	}
}
