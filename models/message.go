package models

import (
	"time"
)

const (
	RoleUser = "user"
	RoleBot  = "bot"
)

// Message is one turn in a transcript. Row insertion order is the transcript
// order; Timestamp is informational only.
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	SessionID string    `gorm:"index;not null;size:36" json:"-"`
	Role      string    `gorm:"size:20;not null" json:"role"` // "user" or "bot"
	Text      string    `gorm:"type:text;not null" json:"text"`
	Timestamp time.Time `json:"timestamp"`
}
