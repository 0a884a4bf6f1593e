package session

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/verdantlab/calmspace/pkg/logger"
)

// SQLiteStore is the durable backend. All reads are served from an in-memory
// overlay that is loaded once at open and updated on every write, so a read
// after a write from the same process always sees the write. Durable writes
// are best-effort: on failure the overlay keeps the new state and the caller
// gets ErrStore, preserving conversational context through an outage.
type SQLiteStore struct {
	mem        *MemoryStore
	db         *sql.DB
	historyCap int
	moodCap    int
	now        func() time.Time

	mu  sync.Mutex
	seq map[string]int64
}

// NewSQLiteStore creates/opens the session database at path.
func NewSQLiteStore(path string, historyCap, moodCap int) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create session db dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// Single-process store. One shared connection avoids writer lock
	// contention with SQLite under concurrent goroutines.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	store := &SQLiteStore{
		mem:        NewMemoryStore(historyCap, moodCap),
		db:         db,
		historyCap: store0(historyCap, 20),
		moodCap:    store0(moodCap, 20),
		now:        time.Now,
		seq:        make(map[string]int64),
	}
	if err := store.init(); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := store.load(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func store0(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

func (s *SQLiteStore) init() error {
	stmts := []string{
		`PRAGMA journal_mode=WAL;`,
		`PRAGMA synchronous=NORMAL;`,
		`PRAGMA temp_store=MEMORY;`,
		`PRAGMA busy_timeout=5000;`,
		`CREATE TABLE IF NOT EXISTS sessions (
			user_id TEXT PRIMARY KEY,
			channel TEXT NOT NULL DEFAULT '',
			chat_id TEXT NOT NULL DEFAULT '',
			challenge_day INTEGER NOT NULL DEFAULT 0,
			challenge_started_ms INTEGER NOT NULL DEFAULT 0,
			created_at_ms INTEGER NOT NULL,
			updated_at_ms INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS messages (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			seq INTEGER NOT NULL,
			role TEXT NOT NULL,
			content TEXT NOT NULL,
			created_at_ms INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS messages_user_seq_idx ON messages(user_id, seq);`,
		`CREATE TABLE IF NOT EXISTS moods (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			seq INTEGER NOT NULL,
			score INTEGER NOT NULL,
			note TEXT NOT NULL DEFAULT '',
			created_at_ms INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS moods_user_seq_idx ON moods(user_id, seq);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("init session schema: %w", err)
		}
	}
	return nil
}

// load seeds the overlay with every stored session.
func (s *SQLiteStore) load() error {
	rows, err := s.db.Query(`SELECT user_id, channel, chat_id, challenge_day, challenge_started_ms, created_at_ms FROM sessions`)
	if err != nil {
		return fmt.Errorf("load sessions: %w", err)
	}
	defer rows.Close()

	var loaded []Session
	for rows.Next() {
		var sess Session
		var startedMS, createdMS int64
		if err := rows.Scan(&sess.UserID, &sess.Channel, &sess.ChatID, &sess.ChallengeDay, &startedMS, &createdMS); err != nil {
			return fmt.Errorf("scan session row: %w", err)
		}
		if startedMS > 0 {
			sess.ChallengeStarted = time.UnixMilli(startedMS)
		}
		sess.CreatedAt = time.UnixMilli(createdMS)
		loaded = append(loaded, sess)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate sessions: %w", err)
	}

	for i := range loaded {
		sess := &loaded[i]
		if err := s.loadHistory(sess); err != nil {
			return err
		}
		s.mem.restore(*sess)
	}
	return nil
}

func (s *SQLiteStore) loadHistory(sess *Session) error {
	rows, err := s.db.Query(
		`SELECT seq, role, content, created_at_ms FROM messages WHERE user_id = ? ORDER BY seq ASC`,
		sess.UserID,
	)
	if err != nil {
		return fmt.Errorf("load messages for %s: %w", sess.UserID, err)
	}
	defer rows.Close()

	var maxSeq int64
	for rows.Next() {
		var seq, createdMS int64
		var msg Message
		if err := rows.Scan(&seq, &msg.Role, &msg.Content, &createdMS); err != nil {
			return fmt.Errorf("scan message row: %w", err)
		}
		msg.Timestamp = time.UnixMilli(createdMS)
		sess.Conversation = appendCapped(sess.Conversation, msg, s.historyCap)
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate messages: %w", err)
	}

	moodRows, err := s.db.Query(
		`SELECT seq, score, note, created_at_ms FROM moods WHERE user_id = ? ORDER BY seq ASC`,
		sess.UserID,
	)
	if err != nil {
		return fmt.Errorf("load moods for %s: %w", sess.UserID, err)
	}
	defer moodRows.Close()

	for moodRows.Next() {
		var seq, createdMS int64
		var mood MoodEntry
		if err := moodRows.Scan(&seq, &mood.Score, &mood.Note, &createdMS); err != nil {
			return fmt.Errorf("scan mood row: %w", err)
		}
		mood.Timestamp = time.UnixMilli(createdMS)
		sess.Moods = appendCapped(sess.Moods, mood, s.moodCap)
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	if err := moodRows.Err(); err != nil {
		return fmt.Errorf("iterate moods: %w", err)
	}

	s.mu.Lock()
	s.seq[sess.UserID] = maxSeq
	s.mu.Unlock()
	return nil
}

func (s *SQLiteStore) nextSeq(userID string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq[userID]++
	return s.seq[userID]
}

// ensureRow upserts the session row so history inserts always have a parent.
func (s *SQLiteStore) ensureRow(userID string) error {
	nowMS := s.now().UnixMilli()
	_, err := s.db.Exec(
		`INSERT INTO sessions (user_id, created_at_ms, updated_at_ms) VALUES (?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET updated_at_ms = excluded.updated_at_ms`,
		userID, nowMS, nowMS,
	)
	return err
}

func (s *SQLiteStore) GetOrCreate(userID string) (Session, error) {
	sess, _ := s.mem.GetOrCreate(userID)
	if err := s.ensureRow(userID); err != nil {
		return sess, fmt.Errorf("%w: create session row: %v", ErrStore, err)
	}
	return sess, nil
}

func (s *SQLiteStore) SetOrigin(userID, channel, chatID string) error {
	_ = s.mem.SetOrigin(userID, channel, chatID)
	if err := s.ensureRow(userID); err != nil {
		return fmt.Errorf("%w: set origin: %v", ErrStore, err)
	}
	_, err := s.db.Exec(
		`UPDATE sessions SET channel = ?, chat_id = ?, updated_at_ms = ? WHERE user_id = ?`,
		channel, chatID, s.now().UnixMilli(), userID,
	)
	if err != nil {
		return fmt.Errorf("%w: set origin: %v", ErrStore, err)
	}
	return nil
}

func (s *SQLiteStore) AppendMessage(userID, role, text string) error {
	// Overlay first: the message survives a durable outage.
	_ = s.mem.AppendMessage(userID, role, text)

	if err := s.ensureRow(userID); err != nil {
		return fmt.Errorf("%w: append message: %v", ErrStore, err)
	}
	seq := s.nextSeq(userID)
	_, err := s.db.Exec(
		`INSERT INTO messages (id, user_id, seq, role, content, created_at_ms) VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), userID, seq, role, text, s.now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("%w: append message: %v", ErrStore, err)
	}
	s.trim(userID, "messages", s.historyCap)
	return nil
}

func (s *SQLiteStore) AppendMood(userID string, score int, note string) error {
	_ = s.mem.AppendMood(userID, score, note)

	if err := s.ensureRow(userID); err != nil {
		return fmt.Errorf("%w: append mood: %v", ErrStore, err)
	}
	seq := s.nextSeq(userID)
	_, err := s.db.Exec(
		`INSERT INTO moods (id, user_id, seq, score, note, created_at_ms) VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), userID, seq, score, note, s.now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("%w: append mood: %v", ErrStore, err)
	}
	s.trim(userID, "moods", s.moodCap)
	return nil
}

// trim enforces keep-last-N in the durable copy. A trim failure is only
// logged: the overlay already holds the correctly truncated view and the
// next successful trim catches up.
func (s *SQLiteStore) trim(userID, table string, cap int) {
	query := fmt.Sprintf(
		`DELETE FROM %s WHERE user_id = ? AND seq NOT IN (
			SELECT seq FROM %s WHERE user_id = ? ORDER BY seq DESC LIMIT ?
		)`, table, table)
	if _, err := s.db.Exec(query, userID, userID, cap); err != nil {
		logger.WarnCF("session", "history trim failed", map[string]interface{}{
			"user_id": userID,
			"table":   table,
			"error":   err.Error(),
		})
	}
}

func (s *SQLiteStore) StartChallenge(userID string) (int, error) {
	day, _ := s.mem.StartChallenge(userID)
	if err := s.persistChallenge(userID); err != nil {
		return day, err
	}
	return day, nil
}

func (s *SQLiteStore) AdvanceChallenge(userID string) (int, error) {
	day, _ := s.mem.AdvanceChallenge(userID)
	if err := s.persistChallenge(userID); err != nil {
		return day, err
	}
	return day, nil
}

func (s *SQLiteStore) persistChallenge(userID string) error {
	sess, _ := s.mem.GetOrCreate(userID)
	if err := s.ensureRow(userID); err != nil {
		return fmt.Errorf("%w: persist challenge: %v", ErrStore, err)
	}
	var startedMS int64
	if !sess.ChallengeStarted.IsZero() {
		startedMS = sess.ChallengeStarted.UnixMilli()
	}
	_, err := s.db.Exec(
		`UPDATE sessions SET challenge_day = ?, challenge_started_ms = ?, updated_at_ms = ? WHERE user_id = ?`,
		sess.ChallengeDay, startedMS, s.now().UnixMilli(), userID,
	)
	if err != nil {
		return fmt.Errorf("%w: persist challenge: %v", ErrStore, err)
	}
	return nil
}

func (s *SQLiteStore) RecentMessages(userID string, n int) ([]Message, error) {
	return s.mem.RecentMessages(userID, n)
}

func (s *SQLiteStore) RecentMoods(userID string, n int) ([]MoodEntry, error) {
	return s.mem.RecentMoods(userID, n)
}

func (s *SQLiteStore) Keys() ([]string, error) {
	return s.mem.Keys()
}

func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
