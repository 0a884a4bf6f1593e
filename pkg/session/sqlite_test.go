package session

import (
	"fmt"
	"path/filepath"
	"testing"
)

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.db")

	s, err := NewSQLiteStore(path, 20, 20)
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}

	if err := s.SetOrigin("alice", "discord", "chan-1"); err != nil {
		t.Fatalf("SetOrigin: %v", err)
	}
	if err := s.AppendMessage("alice", RoleUser, "hello"); err != nil {
		t.Fatalf("AppendMessage: %v", err)
	}
	if err := s.AppendMessage("alice", RoleAssistant, "hi there"); err != nil {
		t.Fatalf("AppendMessage: %v", err)
	}
	if err := s.AppendMood("alice", 4, ""); err != nil {
		t.Fatalf("AppendMood: %v", err)
	}
	if _, err := s.StartChallenge("alice"); err != nil {
		t.Fatalf("StartChallenge: %v", err)
	}
	if _, err := s.AdvanceChallenge("alice"); err != nil {
		t.Fatalf("AdvanceChallenge: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := NewSQLiteStore(path, 20, 20)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	sess, err := reopened.GetOrCreate("alice")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if len(sess.Conversation) != 2 {
		t.Fatalf("expected 2 turns after reload, got %d", len(sess.Conversation))
	}
	if sess.Conversation[0].Content != "hello" || sess.Conversation[0].Role != RoleUser {
		t.Fatalf("unexpected first turn: %+v", sess.Conversation[0])
	}
	if len(sess.Moods) != 1 || sess.Moods[0].Score != 4 {
		t.Fatalf("unexpected moods after reload: %+v", sess.Moods)
	}
	if sess.ChallengeDay != 2 {
		t.Fatalf("expected challenge day 2 after reload, got %d", sess.ChallengeDay)
	}
	if sess.Channel != "discord" || sess.ChatID != "chan-1" {
		t.Fatalf("unexpected origin after reload: %s:%s", sess.Channel, sess.ChatID)
	}
}

func TestSQLiteStore_TrimsHistoryToCap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.db")

	s, err := NewSQLiteStore(path, 5, 5)
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}

	for i := 0; i < 12; i++ {
		if err := s.AppendMessage("bob", RoleUser, fmt.Sprintf("msg-%d", i)); err != nil {
			t.Fatalf("AppendMessage: %v", err)
		}
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := NewSQLiteStore(path, 5, 5)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	msgs, err := reopened.RecentMessages("bob", 100)
	if err != nil {
		t.Fatalf("RecentMessages: %v", err)
	}
	if len(msgs) != 5 {
		t.Fatalf("expected 5 durable turns after trim, got %d", len(msgs))
	}
	if msgs[0].Content != "msg-7" || msgs[4].Content != "msg-11" {
		t.Fatalf("unexpected surviving window: first=%q last=%q", msgs[0].Content, msgs[4].Content)
	}
}

func TestSQLiteStore_UnknownUserCreatesFreshSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.db")

	s, err := NewSQLiteStore(path, 20, 20)
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	defer s.Close()

	sess, err := s.GetOrCreate("nobody-yet")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if sess.UserID != "nobody-yet" || len(sess.Conversation) != 0 || sess.ChallengeDay != 0 {
		t.Fatalf("expected fresh session, got %+v", sess)
	}
}

func TestSQLiteStore_KeysListsAllUsers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.db")

	s, err := NewSQLiteStore(path, 20, 20)
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	defer s.Close()

	for _, id := range []string{"u1", "u2"} {
		if err := s.AppendMessage(id, RoleUser, "hi"); err != nil {
			t.Fatalf("AppendMessage: %v", err)
		}
	}

	keys, err := s.Keys()
	if err != nil {
		t.Fatalf("Keys: %v", err)
	}
	if len(keys) != 2 {
		t.Fatalf("expected 2 keys, got %v", keys)
	}
}
