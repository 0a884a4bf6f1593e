package reminder

import (
	"context"
	"strings"
	"testing"

	"github.com/verdantlab/calmspace/pkg/session"
)

type recordingSender struct {
	channels []string
	chatIDs  []string
	contents []string
}

func (r *recordingSender) SendToChannel(ctx context.Context, channel, chatID, content string) error {
	r.channels = append(r.channels, channel)
	r.chatIDs = append(r.chatIDs, chatID)
	r.contents = append(r.contents, content)
	return nil
}

type fixedRenderer struct{}

func (fixedRenderer) Challenge(day int) string {
	return "challenge text"
}

func TestNewService_RejectsInvalidCron(t *testing.T) {
	store := session.NewMemoryStore(20, 20)
	defer store.Close()

	if _, err := NewService("not a cron", store, &recordingSender{}, fixedRenderer{}); err == nil {
		t.Fatal("expected error for invalid cron expression")
	}
	if _, err := NewService("0 9 * * *", store, &recordingSender{}, fixedRenderer{}); err != nil {
		t.Fatalf("valid expression rejected: %v", err)
	}
}

func TestDeliverAll_SkipsSessionsWithoutChallengeOrOrigin(t *testing.T) {
	store := session.NewMemoryStore(20, 20)
	defer store.Close()

	// Started challenge with origin: delivered.
	if _, err := store.StartChallenge("ready"); err != nil {
		t.Fatalf("StartChallenge: %v", err)
	}
	if err := store.SetOrigin("ready", "telegram", "chat-1"); err != nil {
		t.Fatalf("SetOrigin: %v", err)
	}

	// Started challenge, no origin: skipped.
	if _, err := store.StartChallenge("no-origin"); err != nil {
		t.Fatalf("StartChallenge: %v", err)
	}

	// Origin, no challenge: skipped.
	if err := store.SetOrigin("no-challenge", "discord", "chat-2"); err != nil {
		t.Fatalf("SetOrigin: %v", err)
	}

	sender := &recordingSender{}
	svc, err := NewService("0 9 * * *", store, sender, fixedRenderer{})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	svc.deliverAll(context.Background())

	if len(sender.contents) != 1 {
		t.Fatalf("expected exactly one delivery, got %d", len(sender.contents))
	}
	if sender.channels[0] != "telegram" || sender.chatIDs[0] != "chat-1" {
		t.Fatalf("delivered to wrong target: %s:%s", sender.channels[0], sender.chatIDs[0])
	}
	if !strings.Contains(sender.contents[0], "challenge text") {
		t.Fatalf("expected challenge text in nudge, got %q", sender.contents[0])
	}
}
