package bus

import (
	"context"
	"fmt"
	"testing"
)

func TestMessageBus_InboundRoundTrip(t *testing.T) {
	mb := NewMessageBus()
	defer mb.Close()

	mb.PublishInbound(InboundMessage{Channel: "telegram", SenderID: "42", ChatID: "42", Content: "hello"})

	msg, ok := mb.ConsumeInbound(context.Background())
	if !ok {
		t.Fatal("expected inbound message")
	}
	if msg.Channel != "telegram" || msg.Content != "hello" {
		t.Fatalf("unexpected message: %+v", msg)
	}
}

func TestMessageBus_OverflowCountsDrops(t *testing.T) {
	mb := NewMessageBus()
	defer mb.Close()

	for i := 0; i <= queueDepth; i++ {
		mb.PublishInbound(InboundMessage{Channel: "cli", Content: fmt.Sprintf("turn-%d", i)})
		mb.PublishOutbound(OutboundMessage{Channel: "cli", Content: fmt.Sprintf("reply-%d", i)})
	}

	if got := mb.DroppedInbound(); got != 1 {
		t.Fatalf("expected 1 dropped inbound, got %d", got)
	}
	if got := mb.DroppedOutbound(); got != 1 {
		t.Fatalf("expected 1 dropped outbound, got %d", got)
	}
}

func TestMessageBus_RouteRegistry(t *testing.T) {
	mb := NewMessageBus()
	defer mb.Close()

	var delivered []string
	mb.RegisterRoute("discord", func(ctx context.Context, msg OutboundMessage) error {
		delivered = append(delivered, msg.Content)
		return nil
	})

	deliver, ok := mb.Route("discord")
	if !ok {
		t.Fatal("expected registered route")
	}
	if err := deliver(context.Background(), OutboundMessage{Channel: "discord", Content: "breathe with me"}); err != nil {
		t.Fatalf("deliver: %v", err)
	}
	if len(delivered) != 1 || delivered[0] != "breathe with me" {
		t.Fatalf("unexpected deliveries: %v", delivered)
	}

	if _, ok := mb.Route("telegram"); ok {
		t.Fatal("unregistered channel must have no route")
	}

	mb.UnregisterRoute("discord")
	if _, ok := mb.Route("discord"); ok {
		t.Fatal("expected route removed")
	}
}

func TestMessageBus_ClosedBusRejectsTraffic(t *testing.T) {
	mb := NewMessageBus()
	mb.Close()
	mb.Close() // idempotent

	mb.PublishInbound(InboundMessage{Channel: "cli", Content: "late"})
	if got := mb.DroppedInbound(); got != 1 {
		t.Fatalf("expected publish after close to count as dropped, got %d", got)
	}

	if _, ok := mb.ConsumeInbound(context.Background()); ok {
		t.Fatal("expected closed inbound consume to return ok=false")
	}
	if _, ok := mb.SubscribeOutbound(context.Background()); ok {
		t.Fatal("expected closed outbound subscribe to return ok=false")
	}
}
