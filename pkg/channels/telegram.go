package channels

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/verdantlab/calmspace/pkg/bus"
	"github.com/verdantlab/calmspace/pkg/config"
	"github.com/verdantlab/calmspace/pkg/logger"
)

// telegramMessageLimit stays under Telegram's 4096-char cap.
const telegramMessageLimit = 4000

type TelegramChannel struct {
	*BaseChannel
	config config.TelegramConfig
	bot    *tgbotapi.BotAPI
	cancel context.CancelFunc
}

func NewTelegramChannel(cfg config.TelegramConfig, bus *bus.MessageBus) (*TelegramChannel, error) {
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, fmt.Errorf("telegram token is required")
	}

	return &TelegramChannel{
		BaseChannel: NewBaseChannel("telegram", bus, cfg.AllowFrom),
		config:      cfg,
	}, nil
}

func (c *TelegramChannel) Start(ctx context.Context) error {
	logger.InfoC("telegram", "Starting Telegram bot")

	client := http.DefaultClient
	if c.config.Proxy != "" {
		proxyURL, err := url.Parse(c.config.Proxy)
		if err != nil {
			return fmt.Errorf("parse telegram proxy url: %w", err)
		}
		client = &http.Client{
			Transport: &http.Transport{Proxy: http.ProxyURL(proxyURL)},
		}
	}

	bot, err := tgbotapi.NewBotAPIWithClient(c.config.Token, tgbotapi.APIEndpoint, client)
	if err != nil {
		return fmt.Errorf("failed to create telegram bot: %w", err)
	}
	c.bot = bot

	pollCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := bot.GetUpdatesChan(u)

	go func() {
		for {
			select {
			case update := <-updates:
				if update.CallbackQuery != nil {
					c.handleCallback(update.CallbackQuery)
					continue
				}
				if update.Message == nil {
					continue
				}
				c.handleUpdate(update.Message)
			case <-pollCtx.Done():
				return
			}
		}
	}()

	c.setRunning(true)
	logger.InfoCF("telegram", "Telegram bot connected", map[string]interface{}{
		"username": bot.Self.UserName,
	})
	return nil
}

func (c *TelegramChannel) Stop(ctx context.Context) error {
	logger.InfoC("telegram", "Stopping Telegram bot")
	c.setRunning(false)

	if c.cancel != nil {
		c.cancel()
	}
	if c.bot != nil {
		c.bot.StopReceivingUpdates()
	}
	return nil
}

func (c *TelegramChannel) handleUpdate(msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}

	senderID := strconv.FormatInt(msg.From.ID, 10)
	content := msg.Text
	if content == "" {
		content = msg.Caption
	}
	if strings.TrimSpace(content) == "" {
		return
	}

	metadata := map[string]string{
		"username":   msg.From.UserName,
		"first_name": msg.From.FirstName,
		"message_id": strconv.Itoa(msg.MessageID),
	}

	c.HandleMessage(senderID, strconv.FormatInt(msg.Chat.ID, 10), content, metadata)
}

// handleCallback turns a quick-reply button press into an inbound message
// carrying the button's value, as if the user had typed it.
func (c *TelegramChannel) handleCallback(cq *tgbotapi.CallbackQuery) {
	if cq.From == nil || cq.Message == nil || strings.TrimSpace(cq.Data) == "" {
		return
	}

	if _, err := c.bot.Request(tgbotapi.NewCallback(cq.ID, "")); err != nil {
		logger.WarnCF("telegram", "Failed to answer callback query", map[string]interface{}{
			"error": err.Error(),
		})
	}

	metadata := map[string]string{
		"username": cq.From.UserName,
		"source":   "quick_reply",
	}
	c.HandleMessage(strconv.FormatInt(cq.From.ID, 10), strconv.FormatInt(cq.Message.Chat.ID, 10), cq.Data, metadata)
}

func (c *TelegramChannel) Send(ctx context.Context, msg bus.OutboundMessage) error {
	if c.bot == nil {
		return fmt.Errorf("telegram bot not running")
	}

	chatID, err := strconv.ParseInt(msg.ChatID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid chat id %q: %w", msg.ChatID, err)
	}

	chunks := chunkTelegram(msg.Content, telegramMessageLimit)
	for i, chunk := range chunks {
		tgMsg := tgbotapi.NewMessage(chatID, chunk)
		// Quick replies become an inline keyboard on the final chunk: the
		// button shows the label, the callback carries the value.
		if i == len(chunks)-1 && len(msg.QuickReplies) > 0 {
			tgMsg.ReplyMarkup = quickReplyKeyboard(msg.QuickReplies)
		}
		if _, err := c.bot.Send(tgMsg); err != nil {
			return fmt.Errorf("send telegram message: %w", err)
		}
	}
	return nil
}

func quickReplyKeyboard(replies []bus.QuickReply) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(replies))
	for _, r := range replies {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(r.Label, r.Value)))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// chunkTelegram splits at the last newline before the limit when possible.
func chunkTelegram(content string, limit int) []string {
	var chunks []string
	for len(content) > 0 {
		if len(content) <= limit {
			chunks = append(chunks, content)
			break
		}
		cut := runeSafeCut(content, limit)
		if idx := strings.LastIndex(content[:limit], "\n"); idx > 0 {
			cut = idx
		}
		chunks = append(chunks, content[:cut])
		content = strings.TrimSpace(content[cut:])
	}
	return chunks
}
