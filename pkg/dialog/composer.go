package dialog

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/verdantlab/calmspace/pkg/content"
	"github.com/verdantlab/calmspace/pkg/providers"
	"github.com/verdantlab/calmspace/pkg/session"
)

// Composer builds outbound text: static table lookups, the crisis
// escalation template, and the model-assisted reply. It never touches the
// session store; the controller owns persistence ordering.
type Composer struct {
	completer    providers.Completer
	maxTokens    int
	temperature  float64
	contextTurns int

	rngMu sync.Mutex
	rng   *rand.Rand
}

type ComposerOptions struct {
	MaxTokens    int
	Temperature  float64
	ContextTurns int
	// Seed fixes the affirmation/journal sampling for tests; 0 seeds from
	// the clock.
	Seed int64
}

func NewComposer(completer providers.Completer, opts ComposerOptions) *Composer {
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = 500
	}
	if opts.Temperature <= 0 {
		opts.Temperature = 0.7
	}
	if opts.ContextTurns <= 0 {
		opts.ContextTurns = 10
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Composer{
		completer:    completer,
		maxTokens:    opts.MaxTokens,
		temperature:  opts.Temperature,
		contextTurns: opts.ContextTurns,
		rng:          rand.New(rand.NewSource(seed)),
	}
}

func (c *Composer) randIntn(n int) int {
	c.rngMu.Lock()
	defer c.rngMu.Unlock()
	return c.rng.Intn(n)
}

func (c *Composer) randPerm(n int) []int {
	c.rngMu.Lock()
	defer c.rngMu.Unlock()
	return c.rng.Perm(n)
}

// Welcome is the first-contact greeting.
func (c *Composer) Welcome() string {
	return `**🌿 Welcome to CalmSpace**

I'm here to support you through whatever you're experiencing—stress, anxiety, loneliness, exam pressure, or just needing someone to talk to.

**This is a safe, judgment-free space.** 💙

You can:
• Just tell me how you're feeling
• Ask for coping strategies
• Track your mood
• Try guided exercises
• Browse mental health resources

**How are you doing today?**

*Note: I'm an AI companion, not a replacement for professional help. If you're in crisis, I'll connect you with real support.*`
}

func (c *Composer) Menu() string {
	return `**🌿 CalmSpace Menu**

Here's what I can help you with:

**💬 Just Chat** — Tell me how you're feeling
**📊 Mood** — Track and view your mood
**🌱 Challenge** — Daily wellness challenge
**📚 Resources** — Mental health topic library
**🧘 Breathe** — Guided breathing exercises
**🧘 Meditate** — Quick meditation scripts
**📝 Journal** — Journaling prompts
**💪 Coping** — Coping strategies
**🆘 Crisis** — Crisis resources

Just type what you need, or say what's on your mind. I'm here to listen. 💙`
}

func (c *Composer) ResourceMenu() string {
	var b strings.Builder
	b.WriteString("**📚 Resource Library**\n\nChoose a topic to learn more:\n\n")
	for i, r := range content.Resources() {
		fmt.Fprintf(&b, "%d. %s\n", i+1, r.Title)
	}
	b.WriteString("\nType the topic name (e.g., 'stress management') or number to view.")
	return b.String()
}

// Resource resolves a free-form query against the library: 1-based index,
// exact tag, or substring of the tag or title. Index N and the Nth tag
// always yield the same body.
func (c *Composer) Resource(query string) (string, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return "", false
	}

	if n, err := strconv.Atoi(q); err == nil {
		r, ok := content.ResourceByIndex(n)
		if !ok {
			return "", false
		}
		return r.Body, true
	}

	// Queries use spaces where tags use underscores.
	normalized := strings.ReplaceAll(q, " ", "_")
	for _, r := range content.Resources() {
		if normalized == r.Tag ||
			strings.Contains(r.Tag, normalized) ||
			strings.Contains(strings.ToLower(r.Title), q) {
			return r.Body, true
		}
	}
	return "", false
}

// Challenge renders the challenge text for a day, with the running counter
// and a rotating affirmation.
func (c *Composer) Challenge(day int) string {
	ch, ok := content.ChallengeForDay(day)
	if !ok {
		return "The 30-day challenge has days 1-30. Which day would you like to see?"
	}
	affirmation := content.Affirmations[c.randIntn(len(content.Affirmations))]

	return fmt.Sprintf(`**🌱 Day %d of %d: %s**

*Category: %s*

**Today's Challenge:**
%s

**Daily Affirmation:**
*"%s"*

---
Type **'next challenge'** when you're ready for tomorrow's challenge.
Type **'challenge [number]'** to see a specific day.`,
		ch.Day, content.ChallengeDays, ch.Title, capitalize(ch.Category), ch.Task, affirmation)
}

const journalSampleSize = 3

// JournalPrompts picks three prompts without replacement.
func (c *Composer) JournalPrompts() string {
	pool := content.JournalPrompts
	perm := c.randPerm(len(pool))

	var b strings.Builder
	b.WriteString("**📝 Journal Prompts**\n\nTake a few minutes to reflect on one or more of these:\n\n")
	for i := 0; i < journalSampleSize && i < len(perm); i++ {
		fmt.Fprintf(&b, "%d. %s\n\n", i+1, pool[perm[i]])
	}
	b.WriteString("*There's no right or wrong way to journal. Just let the words flow.* 💙")
	return b.String()
}

func (c *Composer) BreathingMenu() string {
	var b strings.Builder
	b.WriteString("**🧘 Breathing Exercises**\n\nChoose an exercise:\n\n")
	for _, ex := range content.BreathingExercises() {
		fmt.Fprintf(&b, "• **%s** (%s) — %s\n", ex.Name, ex.Duration, ex.Description)
	}
	b.WriteString("\nType the exercise name to begin (e.g., 'box breathing').")
	return b.String()
}

// Breathing resolves an exercise by tag or name fragment. Separators are
// ignored, so "478", "4 7 8", and "4-7-8" all reach the same exercise.
// Fragments shorter than three characters are ignored so bare digits stay
// available for the resource library.
func (c *Composer) Breathing(query string) (string, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return "", false
	}
	compactQ := compact(q)
	for _, ex := range content.BreathingExercises() {
		name := strings.ToLower(ex.Name)
		switch {
		case q == ex.Tag || compactQ == ex.Tag:
			return ex.Steps, true
		case strings.Contains(q, name) || strings.Contains(compactQ, compact(name)):
			return ex.Steps, true
		case len(q) >= 3 && strings.Contains(name, q):
			return ex.Steps, true
		}
	}
	return "", false
}

// compact strips spaces and hyphens for separator-insensitive matching.
func compact(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, s)
}

func (c *Composer) MeditationMenu() string {
	var b strings.Builder
	b.WriteString("**🧘 Quick Meditations**\n\n")
	for _, m := range content.Meditations() {
		fmt.Fprintf(&b, "• **%s**\n", m.Name)
	}
	b.WriteString("\nType the meditation name to begin.")
	return b.String()
}

func (c *Composer) Meditation(query string) (string, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return "", false
	}
	normalized := strings.ReplaceAll(q, "-", " ")
	for _, m := range content.Meditations() {
		name := strings.ReplaceAll(strings.ToLower(m.Name), "-", " ")
		if q == m.Tag || strings.Contains(normalized, name) || (len(normalized) >= 3 && strings.Contains(name, normalized)) {
			return m.Script, true
		}
	}
	return "", false
}

func (c *Composer) Coping(emotion string) string {
	name, strategies := content.CopingStrategies(strings.ToLower(strings.TrimSpace(emotion)))
	title := "Coping Strategies"
	if name != "general" {
		title = "Coping with " + capitalize(name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**💪 %s**\n\n", title)
	for i, s := range strategies {
		fmt.Fprintf(&b, "%d. %s\n", i+1, s)
	}
	b.WriteString("\nWould you like me to explain any of these in more detail?")
	return b.String()
}

// CrisisReply is the escalation template. Static on purpose: this branch
// must work when everything else is down, so it never goes near the
// completion API or the store.
func (c *Composer) CrisisReply() string {
	return fmt.Sprintf(`I hear that you're going through something really difficult right now, and I'm genuinely concerned about you. 💙

What you're feeling is real, and you deserve support.

%s

I'm here if you want to talk, but please also reach out to one of these resources. You don't have to go through this alone.`, content.CrisisResources)
}

var moodLabels = map[int]string{
	1: "struggling",
	2: "not great",
	3: "okay",
	4: "good",
	5: "great",
}

func (c *Composer) MoodReply(score int) string {
	label := moodLabels[score]
	if score <= 2 {
		return fmt.Sprintf("Thank you for sharing. I've logged that you're feeling %s. That takes courage to acknowledge. 💙\n\nWould you like to talk about what's going on? I'm here to listen.", label)
	}
	return fmt.Sprintf("Logged: Feeling %s! 💙\n\nIs there anything on your mind you'd like to talk about?", label)
}

func (c *Composer) MoodHistory(moods []session.MoodEntry) string {
	if len(moods) == 0 {
		return "**📊 Mood Check-In**\n\nHow are you feeling? Rate 1-5 or just describe it."
	}
	var b strings.Builder
	b.WriteString("**📊 Recent Mood History:**\n\n")
	for _, m := range moods {
		fmt.Fprintf(&b, "• %s: %s (%d/5)\n", m.Timestamp.Format("2006-01-02"), moodLabels[m.Score], m.Score)
	}
	b.WriteString("\nHow are you feeling now? (1-5 or describe)")
	return b.String()
}

// Degraded is the fallback for upstream or store outages. It always repeats
// the crisis resources so a user in trouble is never left with a bare
// apology.
func (c *Composer) Degraded() string {
	return fmt.Sprintf(`I'm having trouble connecting right now. Please try again in a moment. 💙

If you need support right away:

%s`, content.CrisisResources)
}

// ContextTurns reports how many trailing history turns AIReply sends.
func (c *Composer) ContextTurns() int { return c.contextTurns }

// AIReply assembles the completion request: main system prompt, scenario
// guidance when matched, then up to the last contextTurns history turns.
// The history is expected to already end with the current user message.
// The model text comes back unmodified.
func (c *Composer) AIReply(ctx context.Context, history []session.Message, scenario content.ScenarioTag) (string, error) {
	system := []string{content.MainSystemPrompt}
	if s, ok := content.ScenarioByTag(scenario); ok {
		system = append(system, "Context: "+s.Guidance)
	}

	start := 0
	if len(history) > c.contextTurns {
		start = len(history) - c.contextTurns
	}
	messages := make([]providers.Message, 0, len(history)-start)
	for _, m := range history[start:] {
		messages = append(messages, providers.Message{Role: m.Role, Content: m.Content})
	}

	return c.completer.Complete(ctx, system, messages, c.maxTokens, c.temperature)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
