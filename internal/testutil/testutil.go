// Package testutil provides shared helpers for package tests: an in-memory
// SQLite database with the real schema and seed state, plus fixture users and
// sessions.
package testutil

import (
	"testing"

	"github.com/sanyamseac/game/internal/database"
	"github.com/sanyamseac/game/internal/models"
	"github.com/sanyamseac/game/pkg/session"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens an in-memory SQLite database, runs the migrations and
// seeds the game state singleton and level 1, exactly like server startup.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// A single connection keeps every session on the same in-memory database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	if err := database.SeedGameState(db); err != nil {
		t.Fatalf("Failed to seed test database: %v", err)
	}

	return db
}

// CreatePlayer inserts an active player.
func CreatePlayer(t *testing.T, db *gorm.DB, name, email string) *models.User {
	t.Helper()

	user := models.User{
		Name:         name,
		Email:        email,
		Role:         models.RoleUser,
		CurrentLevel: 1,
		IsActive:     true,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create player %s: %v", name, err)
	}
	return &user
}

// CreateAdmin inserts an admin account with the given password.
func CreateAdmin(t *testing.T, db *gorm.DB, email, password string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	user := models.User{
		Name:         "Admin",
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		CurrentLevel: 1,
		IsActive:     true,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create admin: %v", err)
	}
	return &user
}

// CreateSession issues a session token for the user and stores its hash,
// returning the raw token for use in a cookie.
func CreateSession(t *testing.T, db *gorm.DB, user *models.User) string {
	t.Helper()

	token, err := session.GenerateToken()
	if err != nil {
		t.Fatalf("Failed to generate session token: %v", err)
	}
	if err := db.Model(user).Update("session_hash", session.Hash(token)).Error; err != nil {
		t.Fatalf("Failed to store session: %v", err)
	}
	return token
}
