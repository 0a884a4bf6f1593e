package channels

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/verdantlab/calmspace/pkg/bus"
	"github.com/verdantlab/calmspace/pkg/config"
	"github.com/verdantlab/calmspace/pkg/logger"
)

const (
	sendTimeout           = 10 * time.Second
	typingRefreshInterval = 8 * time.Second
)

type DiscordChannel struct {
	*BaseChannel
	session  *discordgo.Session
	config   config.DiscordConfig
	typing   map[string]*typingSession
	typingMu sync.Mutex
}

type typingSession struct {
	pending int
	cancel  context.CancelFunc
}

func NewDiscordChannel(cfg config.DiscordConfig, bus *bus.MessageBus) (*DiscordChannel, error) {
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}

	return &DiscordChannel{
		BaseChannel: NewBaseChannel("discord", bus, cfg.AllowFrom),
		session:     session,
		config:      cfg,
		typing:      make(map[string]*typingSession),
	}, nil
}

func (c *DiscordChannel) Start(ctx context.Context) error {
	logger.InfoC("discord", "Starting Discord bot")

	c.session.AddHandler(c.handleMessage)

	if err := c.session.Open(); err != nil {
		return fmt.Errorf("failed to open discord session: %w", err)
	}

	c.setRunning(true)

	botUser, err := c.session.User("@me")
	if err != nil {
		return fmt.Errorf("failed to get bot user: %w", err)
	}
	logger.InfoCF("discord", "Discord bot connected", map[string]interface{}{
		"username": botUser.Username,
		"user_id":  botUser.ID,
	})

	return nil
}

func (c *DiscordChannel) Stop(ctx context.Context) error {
	logger.InfoC("discord", "Stopping Discord bot")
	c.setRunning(false)
	c.stopAllTyping()

	if err := c.session.Close(); err != nil {
		return fmt.Errorf("failed to close discord session: %w", err)
	}

	return nil
}

func (c *DiscordChannel) Send(ctx context.Context, msg bus.OutboundMessage) error {
	if !c.IsRunning() {
		return fmt.Errorf("discord bot not running")
	}

	channelID := msg.ChatID
	if channelID == "" {
		return fmt.Errorf("channel ID is empty")
	}
	defer c.endTyping(channelID)

	content := msg.Content
	if footer := quickReplyFooter(msg.QuickReplies); footer != "" {
		content += "\n\n" + footer
	}
	if strings.TrimSpace(content) == "" {
		return nil
	}

	// Discord caps messages at 2000 characters; leave headroom for clean
	// splits at paragraph boundaries.
	for _, chunk := range splitMessage(content, 1500) {
		if err := c.sendChunk(ctx, channelID, chunk); err != nil {
			return err
		}
	}

	return nil
}

// quickReplyFooter renders suggested replies as a one-line hint. Discord has
// no reply keyboard, so the user types the suggestion back.
func quickReplyFooter(replies []bus.QuickReply) string {
	if len(replies) == 0 {
		return ""
	}
	parts := make([]string, 0, len(replies))
	for _, r := range replies {
		parts = append(parts, fmt.Sprintf("%s (`%s`)", r.Label, r.Value))
	}
	return "💡 " + strings.Join(parts, " · ")
}

// splitMessage splits long messages at natural boundaries: the last newline
// within the limit, then the last space, then a hard cut.
func splitMessage(content string, limit int) []string {
	var messages []string

	for len(content) > 0 {
		if len(content) <= limit {
			messages = append(messages, content)
			break
		}

		msgEnd := findLastNewline(content[:limit], 200)
		if msgEnd <= 0 {
			msgEnd = findLastSpace(content[:limit], 100)
		}
		if msgEnd <= 0 {
			msgEnd = runeSafeCut(content, limit)
		}

		messages = append(messages, content[:msgEnd])
		content = strings.TrimSpace(content[msgEnd:])
	}

	return messages
}

func findLastNewline(s string, searchWindow int) int {
	searchStart := len(s) - searchWindow
	if searchStart < 0 {
		searchStart = 0
	}
	for i := len(s) - 1; i >= searchStart; i-- {
		if s[i] == '\n' {
			return i
		}
	}
	return -1
}

func findLastSpace(s string, searchWindow int) int {
	searchStart := len(s) - searchWindow
	if searchStart < 0 {
		searchStart = 0
	}
	for i := len(s) - 1; i >= searchStart; i-- {
		if s[i] == ' ' || s[i] == '\t' {
			return i
		}
	}
	return -1
}

func (c *DiscordChannel) sendChunk(ctx context.Context, channelID, content string) error {
	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		_, err := c.session.ChannelMessageSend(channelID, content)
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send discord message: %w", err)
		}
		return nil
	case <-sendCtx.Done():
		return fmt.Errorf("send message timeout: %w", sendCtx.Err())
	}
}

func (c *DiscordChannel) sendTyping(channelID string) {
	if channelID == "" || c.session == nil {
		return
	}
	if err := c.session.ChannelTyping(channelID); err != nil {
		logger.ErrorCF("discord", "Failed to send typing indicator", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (c *DiscordChannel) beginTyping(channelID string) {
	if channelID == "" {
		return
	}

	c.typingMu.Lock()
	if sess, ok := c.typing[channelID]; ok {
		sess.pending++
		c.typingMu.Unlock()
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.typing[channelID] = &typingSession{
		pending: 1,
		cancel:  cancel,
	}
	c.typingMu.Unlock()

	c.sendTyping(channelID)

	go func() {
		ticker := time.NewTicker(typingRefreshInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if !c.IsRunning() {
					return
				}
				c.sendTyping(channelID)
			}
		}
	}()
}

func (c *DiscordChannel) endTyping(channelID string) {
	if channelID == "" {
		return
	}

	c.typingMu.Lock()
	defer c.typingMu.Unlock()

	sess, ok := c.typing[channelID]
	if !ok {
		return
	}
	sess.pending--
	if sess.pending > 0 {
		return
	}
	delete(c.typing, channelID)
	sess.cancel()
}

func (c *DiscordChannel) stopAllTyping() {
	c.typingMu.Lock()
	defer c.typingMu.Unlock()

	for channelID, sess := range c.typing {
		sess.cancel()
		delete(c.typing, channelID)
	}
}

func (c *DiscordChannel) handleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m == nil || m.Author == nil {
		return
	}

	if m.Author.ID == s.State.User.ID {
		return
	}

	if !c.IsAllowed(m.Author.ID) {
		logger.DebugCF("discord", "Message rejected by allowlist", map[string]interface{}{
			"user_id": m.Author.ID,
		})
		return
	}

	if strings.TrimSpace(m.Content) == "" {
		return
	}

	c.beginTyping(m.ChannelID)

	metadata := map[string]string{
		"message_id": m.ID,
		"username":   m.Author.Username,
		"guild_id":   m.GuildID,
		"is_dm":      fmt.Sprintf("%t", m.GuildID == ""),
	}

	c.HandleMessage(m.Author.ID, m.ChannelID, m.Content, metadata)
}
