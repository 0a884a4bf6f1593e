package channels

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/verdantlab/calmspace/pkg/bus"
)

type Channel interface {
	Name() string
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Send(ctx context.Context, msg bus.OutboundMessage) error
	IsRunning() bool
	IsAllowed(senderID string) bool
}

type BaseChannel struct {
	bus       *bus.MessageBus
	running   bool
	name      string
	allowList []string
}

func NewBaseChannel(name string, bus *bus.MessageBus, allowList []string) *BaseChannel {
	return &BaseChannel{
		bus:       bus,
		name:      name,
		allowList: allowList,
	}
}

func (c *BaseChannel) Name() string {
	return c.name
}

func (c *BaseChannel) IsRunning() bool {
	return c.running
}

// IsAllowed checks the allow-list. An empty list admits everyone. Entries
// match either part of a compound senderID like "123456|username".
func (c *BaseChannel) IsAllowed(senderID string) bool {
	if len(c.allowList) == 0 {
		return true
	}

	idPart := senderID
	userPart := ""
	if idx := strings.Index(senderID, "|"); idx > 0 {
		idPart = senderID[:idx]
		userPart = senderID[idx+1:]
	}

	for _, allowed := range c.allowList {
		candidate := strings.TrimSpace(strings.TrimPrefix(allowed, "@"))
		if candidate == "" {
			continue
		}
		if candidate == senderID || candidate == idPart || (userPart != "" && candidate == userPart) {
			return true
		}
	}

	return false
}

// HandleMessage normalizes a transport message onto the bus. Disallowed
// senders are dropped before any session state is touched.
func (c *BaseChannel) HandleMessage(senderID, chatID, content string, metadata map[string]string) {
	if !c.IsAllowed(senderID) {
		return
	}

	c.bus.PublishInbound(bus.InboundMessage{
		Channel:   c.name,
		SenderID:  senderID,
		ChatID:    chatID,
		Content:   content,
		Timestamp: time.Now(),
		Metadata:  metadata,
	})
}

func (c *BaseChannel) setRunning(running bool) {
	c.running = running
}

// runeSafeCut backs a byte offset up to the nearest rune boundary so hard
// splits never emit invalid UTF-8 mid-emoji.
func runeSafeCut(s string, cut int) int {
	if cut >= len(s) {
		return len(s)
	}
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return cut
}
