package models

import (
	"time"
)

// ChatSession groups messages into a thread the sidebar can list and reopen.
// The ID is a UUID assigned by the store on creation and never changes.
type ChatSession struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`
	Messages  []Message `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"messages"`
}

// SessionSummary is the projection returned by list queries: never messages.
type SessionSummary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *ChatSession) Summary() SessionSummary {
	return SessionSummary{ID: s.ID, Title: s.Title, UpdatedAt: s.UpdatedAt}
}
