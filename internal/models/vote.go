package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vote is an immutable record of a single player's answer at a single level.
// The composite unique index is what makes "one vote per user per level" hold
// under concurrent requests; the engine's existence check alone cannot.
type Vote struct {
	ID          string `gorm:"primaryKey;size:36"`
	UserID      string `gorm:"size:36;not null;uniqueIndex:idx_votes_user_level"`
	LevelNumber int    `gorm:"not null;uniqueIndex:idx_votes_user_level;index"`
	Answer      Answer `gorm:"size:10;not null"`
	CastAt      int64  `gorm:"not null"` // unix milliseconds

	User User `gorm:"foreignKey:UserID"`
}

func (v *Vote) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
