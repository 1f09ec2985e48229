package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GameDetails is the game-wide state singleton. Exactly one row exists after
// initialization; CurrentLevel always references an existing Level row
// (maintained by wrapping level creation and the pointer update in one
// transaction).
type GameDetails struct {
	ID                string `gorm:"primaryKey;size:36"`
	AllowRegistration bool   `gorm:"not null;default:true"`
	CurrentLevel      int    `gorm:"not null;default:1"`
	GameStarted       bool   `gorm:"not null;default:false"`
	UpdatedAt         time.Time
}

func (d *GameDetails) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
