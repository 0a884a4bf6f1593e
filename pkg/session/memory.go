package session

import (
	"sort"
	"sync"
	"time"
)

// MemoryStore is the volatile backend: a map from user id to session with a
// per-session lock, so two messages from the same user can never interleave
// a truncation, while different users proceed independently.
type MemoryStore struct {
	historyCap int
	moodCap    int
	now        func() time.Time

	mu       sync.RWMutex
	sessions map[string]*sessionState
}

type sessionState struct {
	mu   sync.Mutex
	data Session
}

func NewMemoryStore(historyCap, moodCap int) *MemoryStore {
	if historyCap <= 0 {
		historyCap = 20
	}
	if moodCap <= 0 {
		moodCap = 20
	}
	return &MemoryStore{
		historyCap: historyCap,
		moodCap:    moodCap,
		now:        time.Now,
		sessions:   make(map[string]*sessionState),
	}
}

func (s *MemoryStore) state(userID string) *sessionState {
	s.mu.RLock()
	st, ok := s.sessions[userID]
	s.mu.RUnlock()
	if ok {
		return st
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok = s.sessions[userID]; ok {
		return st
	}
	st = &sessionState{data: Session{
		UserID:    userID,
		CreatedAt: s.now(),
	}}
	s.sessions[userID] = st
	return st
}

func (s *MemoryStore) GetOrCreate(userID string) (Session, error) {
	st := s.state(userID)
	st.mu.Lock()
	defer st.mu.Unlock()
	return snapshot(&st.data), nil
}

func (s *MemoryStore) SetOrigin(userID, channel, chatID string) error {
	st := s.state(userID)
	st.mu.Lock()
	defer st.mu.Unlock()
	st.data.Channel = channel
	st.data.ChatID = chatID
	return nil
}

func (s *MemoryStore) AppendMessage(userID, role, text string) error {
	st := s.state(userID)
	st.mu.Lock()
	defer st.mu.Unlock()
	st.data.Conversation = appendCapped(st.data.Conversation, Message{
		Role:      role,
		Content:   text,
		Timestamp: s.now(),
	}, s.historyCap)
	return nil
}

func (s *MemoryStore) AppendMood(userID string, score int, note string) error {
	st := s.state(userID)
	st.mu.Lock()
	defer st.mu.Unlock()
	st.data.Moods = appendCapped(st.data.Moods, MoodEntry{
		Score:     score,
		Note:      note,
		Timestamp: s.now(),
	}, s.moodCap)
	return nil
}

func (s *MemoryStore) StartChallenge(userID string) (int, error) {
	st := s.state(userID)
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.data.ChallengeDay == 0 {
		st.data.ChallengeDay = 1
		st.data.ChallengeStarted = s.now()
	}
	return st.data.ChallengeDay, nil
}

func (s *MemoryStore) AdvanceChallenge(userID string) (int, error) {
	st := s.state(userID)
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.data.ChallengeDay < MaxChallengeDay {
		st.data.ChallengeDay++
		if st.data.ChallengeStarted.IsZero() {
			st.data.ChallengeStarted = s.now()
		}
	}
	return st.data.ChallengeDay, nil
}

func (s *MemoryStore) RecentMessages(userID string, n int) ([]Message, error) {
	st := s.state(userID)
	st.mu.Lock()
	defer st.mu.Unlock()
	return lastN(st.data.Conversation, n), nil
}

func (s *MemoryStore) RecentMoods(userID string, n int) ([]MoodEntry, error) {
	st := s.state(userID)
	st.mu.Lock()
	defer st.mu.Unlock()
	return lastN(st.data.Moods, n), nil
}

func (s *MemoryStore) Keys() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.sessions))
	for k := range s.sessions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *MemoryStore) Close() error {
	return nil
}

// restore seeds a session from the durable backend at open time.
func (s *MemoryStore) restore(data Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[data.UserID] = &sessionState{data: data}
}

func snapshot(data *Session) Session {
	out := *data
	out.Conversation = make([]Message, len(data.Conversation))
	copy(out.Conversation, data.Conversation)
	out.Moods = make([]MoodEntry, len(data.Moods))
	copy(out.Moods, data.Moods)
	return out
}
