package dialog

import (
	"context"
	"strconv"
	"strings"

	"github.com/verdantlab/calmspace/pkg/bus"
	"github.com/verdantlab/calmspace/pkg/classify"
	"github.com/verdantlab/calmspace/pkg/content"
	"github.com/verdantlab/calmspace/pkg/logger"
	"github.com/verdantlab/calmspace/pkg/session"
)

const controllerComponent = "dialog"

// Controller routes each inbound message to exactly one branch. The order is
// fixed: crisis beats everything, then the command vocabulary, mood digits,
// resource lookup, and finally the model-assisted reply.
type Controller struct {
	bus      *bus.MessageBus
	store    session.Store
	matcher  classify.Matcher
	composer *Composer
}

func NewController(b *bus.MessageBus, store session.Store, matcher classify.Matcher, composer *Composer) *Controller {
	return &Controller{bus: b, store: store, matcher: matcher, composer: composer}
}

// Run consumes inbound messages until the context is canceled or the bus
// closes. Messages are handled one at a time; per-session locking in the
// store makes concurrent callers of Respond safe too.
func (c *Controller) Run(ctx context.Context) error {
	logger.InfoC(controllerComponent, "dialogue controller started")
	for {
		msg, ok := c.bus.ConsumeInbound(ctx)
		if !ok {
			if err := ctx.Err(); err != nil {
				return err
			}
			return nil
		}
		out := c.Respond(ctx, msg)
		c.bus.PublishOutbound(out)
	}
}

// Respond produces the reply for one inbound message. It always returns a
// message: store and upstream failures degrade to a fixed apology that
// repeats the crisis resources.
func (c *Controller) Respond(ctx context.Context, in bus.InboundMessage) bus.OutboundMessage {
	text := strings.TrimSpace(in.Content)
	lower := strings.ToLower(text)
	out := bus.OutboundMessage{Channel: in.Channel, ChatID: in.ChatID}

	if text == "" {
		out.Content = "I'm here whenever you're ready to talk. 💙"
		return out
	}

	if _, err := c.store.GetOrCreate(in.SenderID); err != nil {
		logger.WarnCF(controllerComponent, "session lookup degraded", map[string]interface{}{
			"user": in.SenderID, "error": err.Error(),
		})
	}
	if err := c.store.SetOrigin(in.SenderID, in.Channel, in.ChatID); err != nil {
		logger.WarnCF(controllerComponent, "origin update degraded", map[string]interface{}{
			"user": in.SenderID, "error": err.Error(),
		})
	}

	storeErr := c.store.AppendMessage(in.SenderID, session.RoleUser, text)

	// Crisis wins over every other branch, including a broken store: the
	// reply below is fully static.
	if cat := c.matcher.Crisis(lower); cat != content.CrisisNone {
		logger.WarnCF(controllerComponent, "crisis keywords detected", map[string]interface{}{
			"user": in.SenderID, "category": string(cat),
		})
		out.Content = c.composer.CrisisReply()
		out.QuickReplies = []bus.QuickReply{
			{Label: "🧘 Breathe with me", Value: "breathe"},
			{Label: "💬 Keep talking", Value: "I need to talk"},
		}
		c.appendReply(in.SenderID, out.Content)
		return out
	}

	if storeErr != nil {
		logger.ErrorCF(controllerComponent, "history append failed", map[string]interface{}{
			"user": in.SenderID, "error": storeErr.Error(),
		})
		out.Content = c.composer.Degraded()
		return out
	}

	reply, quick, handled := c.dispatch(in.SenderID, lower)
	if handled {
		out.Content = reply
		out.QuickReplies = quick
		c.appendReply(in.SenderID, out.Content)
		return out
	}

	scenario := c.matcher.Scenario(lower)
	history, err := c.store.RecentMessages(in.SenderID, c.composer.ContextTurns())
	if err != nil {
		history = nil
	}
	aiReply, err := c.composer.AIReply(ctx, history, scenario)
	if err != nil {
		logger.ErrorCF(controllerComponent, "completion failed", map[string]interface{}{
			"user": in.SenderID, "error": err.Error(),
		})
		out.Content = c.composer.Degraded()
		c.appendReply(in.SenderID, out.Content)
		return out
	}

	out.Content = aiReply
	out.QuickReplies = suggestQuickReplies(lower)
	c.appendReply(in.SenderID, out.Content)
	return out
}

// dispatch handles the fixed command vocabulary, mood digits, and resource
// lookup. handled=false means the message falls through to the model.
func (c *Controller) dispatch(userID, lower string) (string, []bus.QuickReply, bool) {
	switch lower {
	case "/start", "start":
		return c.composer.Welcome(), welcomeQuickReplies(), true
	case "menu", "help", "options", "/menu", "/help":
		return c.composer.Menu(), nil, true
	case "resources", "resource", "library", "topics", "/resources":
		return c.composer.ResourceMenu(), nil, true
	case "breathe", "breathing", "breath", "/breathe":
		return c.composer.BreathingMenu(), nil, true
	case "meditate", "meditation", "/meditate":
		return c.composer.MeditationMenu(), nil, true
	case "journal", "journal prompts", "prompts", "/journal":
		return c.composer.JournalPrompts(), nil, true
	case "coping", "cope", "strategies", "/coping":
		return c.composer.Coping(""), nil, true
	case "crisis", "emergency", "help now", "/crisis":
		return c.composer.CrisisReply(), nil, true
	case "mood", "track mood", "my mood", "/mood":
		moods, err := c.store.RecentMoods(userID, 10)
		if err != nil {
			return c.composer.Degraded(), nil, true
		}
		return c.composer.MoodHistory(moods), nil, true
	}

	if reply, quick, handled := c.dispatchChallenge(userID, lower); handled {
		return reply, quick, true
	}

	if arg, ok := strings.CutPrefix(lower, "coping "); ok {
		return c.composer.Coping(arg), nil, true
	}

	// Single digits 1-5 are always mood ratings, never menu numbers.
	if score, ok := parseMoodDigit(lower); ok {
		if err := c.store.AppendMood(userID, score, ""); err != nil {
			return c.composer.Degraded(), nil, true
		}
		return c.composer.MoodReply(score), nil, true
	}

	// Named exercises, then the resource library (tag, title, or 6-20
	// index; 1-5 were consumed above).
	if steps, ok := c.composer.Breathing(lower); ok {
		return steps, nil, true
	}
	if script, ok := c.composer.Meditation(lower); ok {
		return script, nil, true
	}
	if body, ok := c.composer.Resource(lower); ok {
		return body, nil, true
	}

	return "", nil, false
}

func (c *Controller) dispatchChallenge(userID, lower string) (string, []bus.QuickReply, bool) {
	switch lower {
	case "challenge", "wellness", "daily challenge", "/challenge":
		sess, err := c.store.GetOrCreate(userID)
		if err != nil {
			return c.composer.Degraded(), nil, true
		}
		day := sess.ChallengeDay
		if day == 0 {
			day, err = c.store.StartChallenge(userID)
			if err != nil {
				return c.composer.Degraded(), nil, true
			}
		}
		return c.composer.Challenge(day), nil, true
	case "next challenge":
		day, err := c.store.AdvanceChallenge(userID)
		if err != nil {
			return c.composer.Degraded(), nil, true
		}
		return c.composer.Challenge(day), nil, true
	}

	// "challenge N" views a day without touching the counter. A
	// non-numeric suffix falls through to the model.
	if arg, ok := strings.CutPrefix(lower, "challenge "); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(arg)); err == nil {
			return c.composer.Challenge(n), nil, true
		}
	}
	return "", nil, false
}

func (c *Controller) appendReply(userID, reply string) {
	if err := c.store.AppendMessage(userID, session.RoleAssistant, reply); err != nil {
		logger.WarnCF(controllerComponent, "reply append degraded", map[string]interface{}{
			"user": userID, "error": err.Error(),
		})
	}
}

func parseMoodDigit(lower string) (int, bool) {
	if len(lower) != 1 {
		return 0, false
	}
	n := int(lower[0] - '0')
	if n < 1 || n > 5 {
		return 0, false
	}
	return n, true
}

func welcomeQuickReplies() []bus.QuickReply {
	return []bus.QuickReply{
		{Label: "📊 Track mood", Value: "mood"},
		{Label: "🌱 Daily challenge", Value: "challenge"},
		{Label: "📚 Resources", Value: "resources"},
		{Label: "🧘 Breathe", Value: "breathe"},
	}
}

// suggestQuickReplies offers a follow-up action when the message names a
// feeling the exercises or library can help with.
func suggestQuickReplies(lower string) []bus.QuickReply {
	for _, kw := range []string{"anxious", "anxiety", "stressed", "panic", "overwhelmed"} {
		if strings.Contains(lower, kw) {
			return []bus.QuickReply{{Label: "🧘 Try a breathing exercise", Value: "breathe"}}
		}
	}
	for _, kw := range []string{"sad", "down", "depressed", "low"} {
		if strings.Contains(lower, kw) {
			return []bus.QuickReply{{Label: "📚 Browse resources", Value: "resources"}}
		}
	}
	return nil
}
