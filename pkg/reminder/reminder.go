// Package reminder delivers the daily wellness-challenge nudge. A cron
// expression from config decides when; every user with a started challenge
// and a known origin chat gets their current day's challenge pushed.
package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/adhocore/gronx"
	"github.com/verdantlab/calmspace/pkg/logger"
	"github.com/verdantlab/calmspace/pkg/session"
)

const reminderComponent = "reminder"

// Sender is the outbound side the service needs; the channel manager
// satisfies it.
type Sender interface {
	SendToChannel(ctx context.Context, channel, chatID, content string) error
}

// Renderer produces the nudge text for a challenge day; the dialog composer
// satisfies it.
type Renderer interface {
	Challenge(day int) string
}

type Service struct {
	expr     string
	store    session.Store
	sender   Sender
	renderer Renderer
	gron     *gronx.Gronx
	now      func() time.Time
}

func NewService(expr string, store session.Store, sender Sender, renderer Renderer) (*Service, error) {
	g := gronx.New()
	if !g.IsValid(expr) {
		return nil, fmt.Errorf("invalid reminder cron expression: %q", expr)
	}
	return &Service{
		expr:     expr,
		store:    store,
		sender:   sender,
		renderer: renderer,
		gron:     g,
		now:      time.Now,
	}, nil
}

// Run ticks once per minute and fires when the expression is due. Delivery
// failures are logged per user and never stop the loop.
func (s *Service) Run(ctx context.Context) error {
	logger.InfoCF(reminderComponent, "Reminder service started", map[string]interface{}{
		"cron": s.expr,
	})

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.InfoC(reminderComponent, "Reminder service stopped")
			return ctx.Err()
		case <-ticker.C:
			due, err := s.gron.IsDue(s.expr, s.now())
			if err != nil || !due {
				continue
			}
			s.deliverAll(ctx)
		}
	}
}

func (s *Service) deliverAll(ctx context.Context) {
	keys, err := s.store.Keys()
	if err != nil {
		logger.WarnCF(reminderComponent, "Session listing degraded", map[string]interface{}{
			"error": err.Error(),
		})
	}

	delivered := 0
	for _, userID := range keys {
		if err := s.deliverOne(ctx, userID); err != nil {
			logger.WarnCF(reminderComponent, "Nudge delivery failed", map[string]interface{}{
				"user":  userID,
				"error": err.Error(),
			})
			continue
		}
		delivered++
	}

	logger.InfoCF(reminderComponent, "Nudge round completed", map[string]interface{}{
		"delivered": delivered,
		"sessions":  len(keys),
	})
}

// deliverOne sends the current challenge day to one user. Sessions without a
// started challenge or a known origin are skipped silently.
func (s *Service) deliverOne(ctx context.Context, userID string) error {
	sess, err := s.store.GetOrCreate(userID)
	if err != nil {
		return err
	}
	if sess.ChallengeDay == 0 || sess.Channel == "" || sess.ChatID == "" {
		return nil
	}

	content := "**🌱 Daily check-in!**\n\n" + s.renderer.Challenge(sess.ChallengeDay)
	return s.sender.SendToChannel(ctx, sess.Channel, sess.ChatID, content)
}
