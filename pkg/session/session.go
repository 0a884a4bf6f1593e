// Package session keeps per-user conversational state: bounded conversation
// and mood history, the wellness-challenge day counter, and the origin
// channel/chat used for reminder delivery. Sessions are keyed by an opaque
// user id and created on first contact; there is no delete path.
package session

import (
	"errors"
	"time"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ErrStore marks a durable-backend failure. Callers treat it as transient:
// the in-memory copy of the session has still been updated best-effort.
var ErrStore = errors.New("session store unavailable")

// Message is one turn of conversation history.
type Message struct {
	Role      string
	Content   string
	Timestamp time.Time
}

// MoodEntry is one recorded mood rating, score 1-5.
type MoodEntry struct {
	Score     int
	Note      string
	Timestamp time.Time
}

// Session is a snapshot of one user's state. Mutations go through the Store;
// the snapshot is safe to read without locks.
type Session struct {
	UserID           string
	Channel          string
	ChatID           string
	Conversation     []Message
	Moods            []MoodEntry
	ChallengeDay     int
	ChallengeStarted time.Time
	CreatedAt        time.Time
}

// Store is the session contract shared by the volatile and durable backends.
// Lookups for unknown user ids create a fresh session rather than failing;
// history caps and the challenge clamp hold after any sequence of calls.
type Store interface {
	GetOrCreate(userID string) (Session, error)
	SetOrigin(userID, channel, chatID string) error
	AppendMessage(userID, role, text string) error
	AppendMood(userID string, score int, note string) error
	// StartChallenge moves day 0 to 1 and stamps the start time; it is a
	// no-op once started. AdvanceChallenge increments, clamped at 30.
	StartChallenge(userID string) (int, error)
	AdvanceChallenge(userID string) (int, error)
	RecentMessages(userID string, n int) ([]Message, error)
	RecentMoods(userID string, n int) ([]MoodEntry, error)
	// Keys lists all known user ids, for the diagnostics dump.
	Keys() ([]string, error)
	Close() error
}

// MaxChallengeDay is the challenge clamp.
const MaxChallengeDay = 30

// appendCapped implements keep-last-N: insert, then evict oldest first.
func appendCapped[T any](list []T, item T, cap int) []T {
	list = append(list, item)
	if cap > 0 && len(list) > cap {
		list = list[len(list)-cap:]
	}
	return list
}

// lastN returns up to n trailing entries as a copy.
func lastN[T any](list []T, n int) []T {
	if n <= 0 || len(list) == 0 {
		return nil
	}
	if n > len(list) {
		n = len(list)
	}
	out := make([]T, n)
	copy(out, list[len(list)-n:])
	return out
}
