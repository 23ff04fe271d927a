package store

import (
	"context"
	"errors"

	"pdfchat/models"
)

var (
	ErrNotFound   = errors.New("session not found")
	ErrEmptyTitle = errors.New("title must not be empty")
)

// SessionStore is the persistence contract for chat sessions. It is injected
// into the handlers so tests can swap in the in-memory implementation.
type SessionStore interface {
	// CreateSession assigns a fresh id and persists the session with its
	// initial messages.
	CreateSession(ctx context.Context, title string, initial []models.Message) (*models.ChatSession, error)
	// AppendMessages atomically adds msgs to the end of the transcript and
	// bumps updated_at. Returns ErrNotFound for an unknown id.
	AppendMessages(ctx context.Context, id string, msgs []models.Message) (*models.ChatSession, error)
	// ListSessions returns summaries of all sessions, most recently updated
	// first. Messages are never included.
	ListSessions(ctx context.Context) ([]models.SessionSummary, error)
	// GetSession returns the full session with messages in append order.
	GetSession(ctx context.Context, id string) (*models.ChatSession, error)
	// RenameSession replaces the title only; updated_at is left untouched so
	// the sidebar keeps ordering by conversation recency. Empty or
	// whitespace-only titles are rejected with ErrEmptyTitle.
	RenameSession(ctx context.Context, id string, title string) (*models.ChatSession, error)
}
