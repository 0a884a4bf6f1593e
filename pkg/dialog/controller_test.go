package dialog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/verdantlab/calmspace/pkg/bus"
	"github.com/verdantlab/calmspace/pkg/content"
	"github.com/verdantlab/calmspace/pkg/providers"
	"github.com/verdantlab/calmspace/pkg/session"
)

type fakeCompleter struct {
	reply      string
	err        error
	calls      int
	lastSystem []string
	lastMsgs   []providers.Message
}

func (f *fakeCompleter) Complete(ctx context.Context, system []string, messages []providers.Message, maxTokens int, temperature float64) (string, error) {
	f.calls++
	f.lastSystem = system
	f.lastMsgs = messages
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type spyMatcher struct {
	crisis        content.CrisisCategory
	scenario      content.ScenarioTag
	crisisCalls   int
	scenarioCalls int
}

func (s *spyMatcher) Crisis(text string) content.CrisisCategory {
	s.crisisCalls++
	return s.crisis
}

func (s *spyMatcher) Scenario(text string) content.ScenarioTag {
	s.scenarioCalls++
	return s.scenario
}

// failingStore wraps a real MemoryStore but fails durable appends, the way
// the SQLite backend degrades during an outage.
type failingStore struct {
	*session.MemoryStore
}

func (f *failingStore) AppendMessage(userID, role, text string) error {
	_ = f.MemoryStore.AppendMessage(userID, role, text)
	return fmt.Errorf("%w: disk gone", session.ErrStore)
}

func newTestController(completer *fakeCompleter, matcher *spyMatcher, store session.Store) *Controller {
	composer := NewComposer(completer, ComposerOptions{Seed: 1})
	return NewController(bus.NewMessageBus(), store, matcher, composer)
}

func inbound(text string) bus.InboundMessage {
	return bus.InboundMessage{Channel: "telegram", SenderID: "u1", ChatID: "c1", Content: text}
}

func TestRespond_CrisisShortCircuitsEverything(t *testing.T) {
	completer := &fakeCompleter{reply: "should not be used"}
	matcher := &spyMatcher{crisis: content.CrisisSelfHarm}
	store := session.NewMemoryStore(20, 20)
	c := newTestController(completer, matcher, store)

	out := c.Respond(context.Background(), inbound("i want to die"))

	if !strings.Contains(out.Content, "988") {
		t.Fatal("crisis reply must include helpline resources")
	}
	if matcher.scenarioCalls != 0 {
		t.Fatalf("scenario matching must not run on crisis, got %d calls", matcher.scenarioCalls)
	}
	if completer.calls != 0 {
		t.Fatalf("completion must not run on crisis, got %d calls", completer.calls)
	}

	sess, _ := store.GetOrCreate("u1")
	if len(sess.Conversation) != 2 {
		t.Fatalf("expected user turn and crisis reply in history, got %d", len(sess.Conversation))
	}
	if sess.Conversation[1].Role != session.RoleAssistant {
		t.Fatalf("expected assistant reply appended, got role %q", sess.Conversation[1].Role)
	}
}

func TestRespond_CrisisStillWorksWhenStoreFails(t *testing.T) {
	completer := &fakeCompleter{}
	matcher := &spyMatcher{crisis: content.CrisisGeneral}
	store := &failingStore{session.NewMemoryStore(20, 20)}
	c := newTestController(completer, matcher, store)

	out := c.Respond(context.Background(), inbound("i'm in crisis"))
	if !strings.Contains(out.Content, "988") {
		t.Fatal("crisis reply must survive store outage")
	}
}

func TestRespond_StoreFailureDegradesNonCrisis(t *testing.T) {
	completer := &fakeCompleter{reply: "hi"}
	matcher := &spyMatcher{}
	store := &failingStore{session.NewMemoryStore(20, 20)}
	c := newTestController(completer, matcher, store)

	out := c.Respond(context.Background(), inbound("just chatting"))
	if !strings.Contains(out.Content, "trouble connecting") {
		t.Fatalf("expected degraded reply, got %q", out.Content)
	}
	if !strings.Contains(out.Content, "988") {
		t.Fatal("degraded reply must repeat crisis resources")
	}
	if completer.calls != 0 {
		t.Fatal("completion must not run when the store is down")
	}
}

func TestRespond_MoodDigitIsRecorded(t *testing.T) {
	completer := &fakeCompleter{}
	matcher := &spyMatcher{}
	store := session.NewMemoryStore(20, 20)
	c := newTestController(completer, matcher, store)

	out := c.Respond(context.Background(), inbound("3"))
	if !strings.Contains(out.Content, "okay") {
		t.Fatalf("expected mood ack for 3, got %q", out.Content)
	}

	moods, _ := store.RecentMoods("u1", 10)
	if len(moods) != 1 || moods[0].Score != 3 {
		t.Fatalf("expected one mood entry with score 3, got %+v", moods)
	}
	if completer.calls != 0 {
		t.Fatal("mood digits must not reach the model")
	}
}

func TestRespond_LowMoodGetsGentlerAck(t *testing.T) {
	c := newTestController(&fakeCompleter{}, &spyMatcher{}, session.NewMemoryStore(20, 20))

	out := c.Respond(context.Background(), inbound("1"))
	if !strings.Contains(out.Content, "courage") {
		t.Fatalf("expected gentle ack for low mood, got %q", out.Content)
	}
}

func TestRespond_MenuCommand(t *testing.T) {
	completer := &fakeCompleter{}
	c := newTestController(completer, &spyMatcher{}, session.NewMemoryStore(20, 20))

	out := c.Respond(context.Background(), inbound("menu"))
	if !strings.Contains(out.Content, "CalmSpace Menu") {
		t.Fatalf("expected menu text, got %q", out.Content)
	}
	if completer.calls != 0 {
		t.Fatal("menu command must not reach the model")
	}
}

func TestRespond_ResourceByNumberMatchesTag(t *testing.T) {
	c := newTestController(&fakeCompleter{}, &spyMatcher{}, session.NewMemoryStore(20, 20))

	seventh := content.Resources()[6]
	byNumber := c.Respond(context.Background(), inbound("7"))
	byTag := c.Respond(context.Background(), inbound(strings.ReplaceAll(seventh.Tag, "_", " ")))

	if byNumber.Content != seventh.Body {
		t.Fatal("resource 7 must return the seventh resource body")
	}
	if byTag.Content != seventh.Body {
		t.Fatal("resource by tag must match resource by index")
	}
}

func TestRespond_ChallengeLifecycle(t *testing.T) {
	store := session.NewMemoryStore(20, 20)
	c := newTestController(&fakeCompleter{}, &spyMatcher{}, store)
	ctx := context.Background()

	out := c.Respond(ctx, inbound("challenge"))
	if !strings.Contains(out.Content, "Day 1 of 30") {
		t.Fatalf("expected challenge to start at day 1, got %q", out.Content)
	}

	out = c.Respond(ctx, inbound("next challenge"))
	if !strings.Contains(out.Content, "Day 2 of 30") {
		t.Fatalf("expected day 2 after advance, got %q", out.Content)
	}

	// Viewing a specific day does not move the counter.
	out = c.Respond(ctx, inbound("challenge 15"))
	if !strings.Contains(out.Content, "Day 15 of 30") {
		t.Fatalf("expected day 15 view, got %q", out.Content)
	}
	sess, _ := store.GetOrCreate("u1")
	if sess.ChallengeDay != 2 {
		t.Fatalf("viewing a day must not advance, got day %d", sess.ChallengeDay)
	}

	out = c.Respond(ctx, inbound("challenge 99"))
	if !strings.Contains(out.Content, "days 1-30") {
		t.Fatalf("expected range hint for day 99, got %q", out.Content)
	}
}

func TestRespond_ChallengeClampsAtFinalDay(t *testing.T) {
	store := session.NewMemoryStore(20, 20)
	c := newTestController(&fakeCompleter{}, &spyMatcher{}, store)
	ctx := context.Background()

	c.Respond(ctx, inbound("challenge"))
	var out bus.OutboundMessage
	for i := 0; i < 40; i++ {
		out = c.Respond(ctx, inbound("next challenge"))
	}
	if !strings.Contains(out.Content, "Day 30 of 30") {
		t.Fatalf("expected clamp at day 30, got %q", out.Content)
	}
}

func TestRespond_ScenarioGuidanceReachesModel(t *testing.T) {
	completer := &fakeCompleter{reply: "that sounds really hard"}
	matcher := &spyMatcher{scenario: content.ScenarioExamAnxiety}
	store := session.NewMemoryStore(20, 20)
	c := newTestController(completer, matcher, store)

	out := c.Respond(context.Background(), inbound("my finals are crushing me"))
	if out.Content != "that sounds really hard" {
		t.Fatalf("expected model reply passed through, got %q", out.Content)
	}
	if completer.calls != 1 {
		t.Fatalf("expected one completion call, got %d", completer.calls)
	}
	if len(completer.lastSystem) != 2 {
		t.Fatalf("expected main prompt plus scenario guidance, got %d system entries", len(completer.lastSystem))
	}
	scen, _ := content.ScenarioByTag(content.ScenarioExamAnxiety)
	if !strings.Contains(completer.lastSystem[1], scen.Guidance) {
		t.Fatal("scenario guidance missing from system prompt")
	}
	last := completer.lastMsgs[len(completer.lastMsgs)-1]
	if last.Role != session.RoleUser || last.Content != "my finals are crushing me" {
		t.Fatalf("expected current message last in history, got %+v", last)
	}

	sess, _ := store.GetOrCreate("u1")
	if len(sess.Conversation) != 2 {
		t.Fatalf("expected both turns appended, got %d", len(sess.Conversation))
	}
}

func TestRespond_UpstreamFailureDegrades(t *testing.T) {
	completer := &fakeCompleter{err: fmt.Errorf("%w: status 500", providers.ErrUpstream)}
	store := session.NewMemoryStore(20, 20)
	c := newTestController(completer, &spyMatcher{}, store)

	out := c.Respond(context.Background(), inbound("tell me something"))
	if !strings.Contains(out.Content, "trouble connecting") {
		t.Fatalf("expected degraded reply, got %q", out.Content)
	}
	if !errors.Is(completer.err, providers.ErrUpstream) {
		t.Fatal("test fixture should wrap ErrUpstream")
	}

	sess, _ := store.GetOrCreate("u1")
	if len(sess.Conversation) != 2 {
		t.Fatalf("expected user turn and degraded reply in history, got %d", len(sess.Conversation))
	}
}

func TestRespond_HistoryWindowIsBounded(t *testing.T) {
	completer := &fakeCompleter{reply: "ok"}
	store := session.NewMemoryStore(40, 20)
	composer := NewComposer(completer, ComposerOptions{ContextTurns: 10, Seed: 1})
	c := NewController(bus.NewMessageBus(), store, &spyMatcher{}, composer)
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		c.Respond(ctx, inbound(fmt.Sprintf("plain message number %d", i)))
	}

	if len(completer.lastMsgs) > 10 {
		t.Fatalf("expected at most 10 history turns sent, got %d", len(completer.lastMsgs))
	}
}

func TestRespond_AnxiousMessageGetsBreathQuickReply(t *testing.T) {
	completer := &fakeCompleter{reply: "i hear you"}
	c := newTestController(completer, &spyMatcher{}, session.NewMemoryStore(20, 20))

	out := c.Respond(context.Background(), inbound("everything makes me anxious lately"))
	if len(out.QuickReplies) != 1 || out.QuickReplies[0].Value != "breathe" {
		t.Fatalf("expected breathe quick reply, got %+v", out.QuickReplies)
	}
}

func TestRespond_SetsOriginForReminders(t *testing.T) {
	store := session.NewMemoryStore(20, 20)
	c := newTestController(&fakeCompleter{reply: "ok"}, &spyMatcher{}, store)

	c.Respond(context.Background(), inbound("hello there"))

	sess, _ := store.GetOrCreate("u1")
	if sess.Channel != "telegram" || sess.ChatID != "c1" {
		t.Fatalf("expected origin recorded, got %s:%s", sess.Channel, sess.ChatID)
	}
}

func TestRespond_EmptyMessage(t *testing.T) {
	c := newTestController(&fakeCompleter{}, &spyMatcher{}, session.NewMemoryStore(20, 20))

	out := c.Respond(context.Background(), inbound("   "))
	if out.Content == "" {
		t.Fatal("expected a gentle prompt for empty input")
	}
}
