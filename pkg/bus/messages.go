package bus

import (
	"context"
	"time"
)

// QuickReply is a suggested response shown alongside an outbound message.
// Selecting one re-enters the dialogue as if Value had been typed.
type QuickReply struct {
	Label string
	Value string
}

// InboundMessage is the transport-neutral shape of one user turn. Channels
// produce these; the dialogue engine never sees transport-specific objects.
type InboundMessage struct {
	Channel   string
	SenderID  string
	ChatID    string
	Content   string
	Timestamp time.Time
	Metadata  map[string]string
}

type OutboundMessage struct {
	Channel      string
	ChatID       string
	Content      string
	QuickReplies []QuickReply
}

// DeliverFunc pushes one outbound message over a transport. The channel
// manager registers one per running channel and the outbound dispatcher
// routes through them.
type DeliverFunc func(ctx context.Context, msg OutboundMessage) error
