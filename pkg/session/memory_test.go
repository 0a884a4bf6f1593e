package session

import (
	"errors"
	"fmt"
	"sync"
	"testing"
)

func TestMemoryStore_GetOrCreateIsIdempotent(t *testing.T) {
	s := NewMemoryStore(20, 20)
	defer s.Close()

	first, err := s.GetOrCreate("alice")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if first.UserID != "alice" {
		t.Fatalf("expected user id alice, got %q", first.UserID)
	}

	if err := s.AppendMessage("alice", RoleUser, "hi"); err != nil {
		t.Fatalf("AppendMessage: %v", err)
	}

	second, err := s.GetOrCreate("alice")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if len(second.Conversation) != 1 {
		t.Fatalf("expected existing session with 1 turn, got %d", len(second.Conversation))
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Fatal("expected same creation time for existing session")
	}
}

func TestMemoryStore_HistoryCapEvictsOldestFirst(t *testing.T) {
	s := NewMemoryStore(20, 20)
	defer s.Close()

	for i := 0; i < 25; i++ {
		if err := s.AppendMessage("u", RoleUser, fmt.Sprintf("msg-%d", i)); err != nil {
			t.Fatalf("AppendMessage: %v", err)
		}
	}

	sess, err := s.GetOrCreate("u")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if len(sess.Conversation) != 20 {
		t.Fatalf("expected 20 turns after cap, got %d", len(sess.Conversation))
	}
	if got := sess.Conversation[0].Content; got != "msg-5" {
		t.Fatalf("expected oldest surviving turn msg-5, got %q", got)
	}
	if got := sess.Conversation[19].Content; got != "msg-24" {
		t.Fatalf("expected newest turn msg-24, got %q", got)
	}
}

func TestMemoryStore_MoodCap(t *testing.T) {
	s := NewMemoryStore(20, 20)
	defer s.Close()

	for i := 0; i < 30; i++ {
		if err := s.AppendMood("u", 1+i%5, ""); err != nil {
			t.Fatalf("AppendMood: %v", err)
		}
	}

	moods, err := s.RecentMoods("u", 100)
	if err != nil {
		t.Fatalf("RecentMoods: %v", err)
	}
	if len(moods) != 20 {
		t.Fatalf("expected 20 moods after cap, got %d", len(moods))
	}
}

func TestMemoryStore_ChallengeClampsAtThirty(t *testing.T) {
	s := NewMemoryStore(20, 20)
	defer s.Close()

	day, err := s.StartChallenge("u")
	if err != nil || day != 1 {
		t.Fatalf("expected start at day 1, got %d (%v)", day, err)
	}

	// Starting again is a no-op.
	day, err = s.StartChallenge("u")
	if err != nil || day != 1 {
		t.Fatalf("expected restart to stay at day 1, got %d (%v)", day, err)
	}

	for i := 0; i < 40; i++ {
		if day, err = s.AdvanceChallenge("u"); err != nil {
			t.Fatalf("AdvanceChallenge: %v", err)
		}
	}
	if day != MaxChallengeDay {
		t.Fatalf("expected clamp at %d, got %d", MaxChallengeDay, day)
	}
}

func TestMemoryStore_SetOrigin(t *testing.T) {
	s := NewMemoryStore(20, 20)
	defer s.Close()

	if err := s.SetOrigin("u", "telegram", "12345"); err != nil {
		t.Fatalf("SetOrigin: %v", err)
	}
	sess, _ := s.GetOrCreate("u")
	if sess.Channel != "telegram" || sess.ChatID != "12345" {
		t.Fatalf("unexpected origin: %s:%s", sess.Channel, sess.ChatID)
	}
}

func TestMemoryStore_KeysSorted(t *testing.T) {
	s := NewMemoryStore(20, 20)
	defer s.Close()

	for _, id := range []string{"charlie", "alice", "bob"} {
		if _, err := s.GetOrCreate(id); err != nil {
			t.Fatalf("GetOrCreate: %v", err)
		}
	}

	keys, err := s.Keys()
	if err != nil {
		t.Fatalf("Keys: %v", err)
	}
	want := []string{"alice", "bob", "charlie"}
	if len(keys) != len(want) {
		t.Fatalf("expected %d keys, got %d", len(want), len(keys))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("expected keys %v, got %v", want, keys)
		}
	}
}

func TestMemoryStore_ConcurrentAppendsRespectCap(t *testing.T) {
	s := NewMemoryStore(20, 20)
	defer s.Close()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				_ = s.AppendMessage("u", RoleUser, fmt.Sprintf("%d-%d", n, j))
			}
		}(i)
	}
	wg.Wait()

	sess, _ := s.GetOrCreate("u")
	if len(sess.Conversation) != 20 {
		t.Fatalf("expected cap of 20 under concurrency, got %d", len(sess.Conversation))
	}
}

func TestErrStore_IsComparable(t *testing.T) {
	wrapped := fmt.Errorf("%w: insert failed", ErrStore)
	if !errors.Is(wrapped, ErrStore) {
		t.Fatal("expected wrapped error to match ErrStore")
	}
}
