package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role values for User.Role.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a player (or admin) in the system.
//
// CurrentLevel, IsActive and Disabled are only mutated by the game engine.
// SessionHash holds the SHA-256 hex digest of the opaque session token, never
// the token itself.
type User struct {
	ID           string `gorm:"primaryKey;size:36"`
	Name         string `gorm:"size:255;not null"`
	Email        string `gorm:"size:255;unique;not null"`
	PasswordHash string `gorm:"size:255"` // empty for regular players, set for admin accounts
	Role         string `gorm:"size:50;not null;default:'user';index"`
	SessionHash  string `gorm:"size:64;index"`
	CurrentLevel int    `gorm:"not null;default:1"`
	Disabled     bool   `gorm:"not null;default:false"`
	IsActive     bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// BeforeCreate assigns a random UUID so user IDs are not guessable.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanPlay reports whether the user is still in the game.
func (u *User) CanPlay() bool {
	return u.IsActive && !u.Disabled
}
