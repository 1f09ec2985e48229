package database

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/sanyamseac/game/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect initializes the database connection, runs migrations and seeds the
// initial game state.
func Connect(dsn string) {
	var err error

	// Configure GORM logger
	customLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             200 * time.Millisecond, // Slow SQL threshold
			LogLevel:                  logger.Warn,            // Log level
			IgnoreRecordNotFoundError: true,                   // Ignore ErrRecordNotFound error for logger
			Colorful:                  true,                   // Enable color
		},
	)

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         customLogger,
		TranslateError: true, // surface unique violations as gorm.ErrDuplicatedKey
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established.")

	if err := Migrate(DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Println("Database migrated successfully.")

	if err := SeedGameState(DB); err != nil {
		log.Fatalf("Failed to seed game state: %v", err)
	}
}

// Migrate runs the schema migrations for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.GameDetails{}, &models.Level{}, &models.Vote{})
}

// SeedGameState makes sure the game details singleton and level 1 exist.
// Level 1 starts with voting disabled; it opens when an admin starts the game.
func SeedGameState(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var details models.GameDetails
		if err := tx.First(&details).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			if err := tx.Create(&models.GameDetails{
				AllowRegistration: true,
				CurrentLevel:      1,
				GameStarted:       false,
			}).Error; err != nil {
				return err
			}
			log.Println("Game details initialized.")
		}

		var level models.Level
		if err := tx.Where("level_number = ?", 1).First(&level).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			if err := tx.Create(&models.Level{
				LevelNumber:          1,
				VotingOpen:           false,
				TimerDurationSeconds: models.DefaultTimerSeconds,
			}).Error; err != nil {
				return err
			}
			log.Println("Level 1 created.")
		}

		return nil
	})
}

// EnsureAdmin creates the admin account if it does not exist yet. No-op when
// either value is empty.
func EnsureAdmin(db *gorm.DB, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:         "Admin",
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		CurrentLevel: 1,
		IsActive:     true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("Admin account created for %s.", email)
	return nil
}
