package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pdfchat/models"
)

// GormStore persists sessions in the relational schema from models:
// one chat_sessions row per thread, messages as child rows whose
// auto-increment id is the transcript order.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) CreateSession(ctx context.Context, title string, initial []models.Message) (*models.ChatSession, error) {
	sess := models.ChatSession{
		ID:        uuid.NewString(),
		Title:     title,
		UpdatedAt: time.Now(),
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&sess).Error; err != nil {
			return err
		}
		for i := range initial {
			initial[i].SessionID = sess.ID
		}
		if len(initial) > 0 {
			if err := tx.Create(&initial).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetSession(ctx, sess.ID)
}

func (s *GormStore) AppendMessages(ctx context.Context, id string, msgs []models.Message) (*models.ChatSession, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The session-row update doubles as the existence check and, on
		// engines with row locks, serializes concurrent appends to one id.
		res := tx.Model(&models.ChatSession{}).Where("id = ?", id).Update("updated_at", time.Now())
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		for i := range msgs {
			msgs[i].ID = 0
			msgs[i].SessionID = id
		}
		if len(msgs) > 0 {
			if err := tx.Create(&msgs).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetSession(ctx, id)
}

func (s *GormStore) ListSessions(ctx context.Context) ([]models.SessionSummary, error) {
	var sessions []models.ChatSession
	if err := s.db.WithContext(ctx).
		Select("id", "title", "updated_at").
		Order("updated_at DESC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	summaries := make([]models.SessionSummary, 0, len(sessions))
	for i := range sessions {
		summaries = append(summaries, sessions[i].Summary())
	}
	return summaries, nil
}

func (s *GormStore) GetSession(ctx context.Context, id string) (*models.ChatSession, error) {
	var sess models.ChatSession
	err := s.db.WithContext(ctx).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("messages.id ASC")
		}).
		First(&sess, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *GormStore) RenameSession(ctx context.Context, id string, title string) (*models.ChatSession, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	// UpdateColumn bypasses GORM's automatic UpdatedAt bump: a label edit
	// must not reorder the session list.
	res := s.db.WithContext(ctx).Model(&models.ChatSession{}).
		Where("id = ?", id).
		UpdateColumn("title", title)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetSession(ctx, id)
}
