package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultTimerSeconds is the advisory countdown length used when a level is
// created or reset.
const DefaultTimerSeconds = 10

// Level represents one round of the game. Levels are created lazily the first
// time the game advances to them and are never deleted; re-entering a level
// resets its state fields instead.
//
// The timer fields are advisory display state: clients compute the remaining
// time from TimerEndsAt locally, and expiry does not close voting by itself.
type Level struct {
	ID                   string `gorm:"primaryKey;size:36"`
	LevelNumber          int    `gorm:"uniqueIndex;not null"`
	CorrectAnswer        Answer `gorm:"size:10"`
	VotingOpen           bool   `gorm:"not null;default:false"`
	VotingEnded          bool   `gorm:"not null;default:false"`
	ResultsRevealed      bool   `gorm:"not null;default:false"`
	TimerActive          bool   `gorm:"not null;default:false"`
	TimerEndsAt          *int64 // unix seconds, nil while no timer is running
	TimerDurationSeconds int    `gorm:"not null;default:10"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (l *Level) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
