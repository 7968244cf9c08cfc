package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"uniqueIndex;not null"`
	Name         string
	PasswordHash string `json:"-"`
	FeedID       string `gorm:"uniqueIndex"`
	CreatedAt    time.Time

	Articles []Article
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.FeedID == "" {
		u.FeedID = uuid.NewString()
	}
	return nil
}
