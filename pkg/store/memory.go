package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"pdfchat/models"
)

// MemoryStore keeps sessions in a map behind a mutex. It backs handler tests
// and doubles as a zero-setup store for local experiments.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*models.ChatSession
	nextMsg  uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*models.ChatSession)}
}

func (s *MemoryStore) CreateSession(ctx context.Context, title string, initial []models.Message) (*models.ChatSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &models.ChatSession{
		ID:        uuid.NewString(),
		Title:     title,
		UpdatedAt: time.Now(),
	}
	for _, m := range initial {
		s.nextMsg++
		m.ID = s.nextMsg
		m.SessionID = sess.ID
		sess.Messages = append(sess.Messages, m)
	}
	s.sessions[sess.ID] = sess
	return cloneSession(sess), nil
}

func (s *MemoryStore) AppendMessages(ctx context.Context, id string, msgs []models.Message) (*models.ChatSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	for _, m := range msgs {
		s.nextMsg++
		m.ID = s.nextMsg
		m.SessionID = id
		sess.Messages = append(sess.Messages, m)
	}
	sess.UpdatedAt = time.Now()
	return cloneSession(sess), nil
}

func (s *MemoryStore) ListSessions(ctx context.Context) ([]models.SessionSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	summaries := make([]models.SessionSummary, 0, len(s.sessions))
	for _, sess := range s.sessions {
		summaries = append(summaries, sess.Summary())
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[j].UpdatedAt.Before(summaries[i].UpdatedAt)
	})
	return summaries, nil
}

func (s *MemoryStore) GetSession(ctx context.Context, id string) (*models.ChatSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneSession(sess), nil
}

func (s *MemoryStore) RenameSession(ctx context.Context, id string, title string) (*models.ChatSession, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	sess.Title = title
	return cloneSession(sess), nil
}

// cloneSession copies the record so callers cannot mutate stored state.
func cloneSession(s *models.ChatSession) *models.ChatSession {
	out := *s
	out.Messages = append([]models.Message(nil), s.Messages...)
	return &out
}
