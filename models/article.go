package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Article is one ingested web article with its synthesized audio.
// Rows are immutable after creation except for deletion.
type Article struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID      *uuid.UUID `gorm:"type:uuid;index"`
	Title       string     `gorm:"not null"`
	Content     string
	ContentURL  string
	SpeechModel string `gorm:"not null"`
	AudioURL    string
	CreatedAt   time.Time
}

func (a *Article) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// ArticleResponse is the client-facing shape of an article. Storage rows
// are never marshalled to clients directly.
type ArticleResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ContentURL  string    `json:"content_url"`
	AudioURL    string    `json:"audio_url"`
	SpeechModel string    `json:"speech_model"`
	CreatedAt   time.Time `json:"created_at"`
	FeedURL     string    `json:"feed_url,omitempty"`
}

func (a *Article) ToResponse() ArticleResponse {
	return ArticleResponse{
		ID:          a.ID.String(),
		Title:       a.Title,
		Content:     a.Content,
		ContentURL:  a.ContentURL,
		AudioURL:    a.AudioURL,
		SpeechModel: a.SpeechModel,
		CreatedAt:   a.CreatedAt,
	}
}
