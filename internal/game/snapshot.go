package game

import (
	"errors"

	"github.com/sanyamseac/game/internal/models"

	"gorm.io/gorm"
)

// VoteTally is the per-answer vote count at one level.
type VoteTally struct {
	Alive int64 `json:"alive"`
	Dead  int64 `json:"dead"`
	Total int64 `json:"total"`
}

// Snapshot is a consistent read of the game-wide state, taken inside a single
// transaction so the current level pointer and the level row always agree.
type Snapshot struct {
	GameStarted       bool
	AllowRegistration bool
	CurrentLevel      int
	Level             models.Level
	Tally             VoteTally
	ActivePlayers     int64
	EliminatedPlayers int64
}

// VoteRecord is one vote joined with its voter, for the admin dashboard and
// the spectator display.
type VoteRecord struct {
	ID        string        `json:"id"`
	UserID    string        `json:"user_id"`
	UserName  string        `json:"user_name"`
	UserEmail string        `json:"user_email"`
	Answer    models.Answer `json:"answer"`
	CastAt    int64         `json:"cast_at"`
}

// EliminatedPlayer is a knocked-out player as listed on the admin dashboard.
type EliminatedPlayer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Level int    `json:"level"`
}

// Winner identifies the last player standing.
type Winner struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Snapshot returns the current game state for any caller.
func (e *Engine) Snapshot() (*Snapshot, error) {
	var snap Snapshot
	err := e.db.Transaction(func(tx *gorm.DB) error {
		details, err := loadDetails(tx)
		if err != nil {
			return err
		}

		level, err := loadLevel(tx, details.CurrentLevel)
		if err != nil {
			return err
		}

		tally, err := tallyForLevel(tx, details.CurrentLevel)
		if err != nil {
			return err
		}

		active, eliminated, err := playerCounts(tx)
		if err != nil {
			return err
		}

		snap = Snapshot{
			GameStarted:       details.GameStarted,
			AllowRegistration: details.AllowRegistration,
			CurrentLevel:      details.CurrentLevel,
			Level:             *level,
			Tally:             tally,
			ActivePlayers:     active,
			EliminatedPlayers: eliminated,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// TallyForLevel returns the vote counts at the given level. Unknown levels
// simply tally to zero, matching what polling clients expect.
func (e *Engine) TallyForLevel(levelNumber int) (VoteTally, error) {
	return tallyForLevel(e.db, levelNumber)
}

// Votes returns every vote at a level with voter details, oldest first.
func (e *Engine) Votes(levelNumber int) ([]VoteRecord, error) {
	return votesForLevel(e.db, levelNumber, 0, false)
}

// RecentVotes returns the newest votes at a level, newest first.
func (e *Engine) RecentVotes(levelNumber, limit int) ([]VoteRecord, error) {
	return votesForLevel(e.db, levelNumber, limit, true)
}

// HasVoted returns the user's vote at a level, or nil if they have not voted.
func (e *Engine) HasVoted(userID string, levelNumber int) (*models.Vote, error) {
	var vote models.Vote
	err := e.db.Where("user_id = ? AND level_number = ?", userID, levelNumber).First(&vote).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vote, nil
}

// EliminatedPlayers lists everyone knocked out of the game, by name.
func (e *Engine) EliminatedPlayers() ([]EliminatedPlayer, error) {
	var players []EliminatedPlayer
	err := e.db.Model(&models.User{}).
		Select("id, name, email, current_level as level").
		Where("role = ? AND is_active = ?", models.RoleUser, false).
		Order("name").
		Scan(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

// Winner returns the last player standing, or nil while more than one player
// is still active.
func (e *Engine) Winner() (*Winner, error) {
	var winner Winner
	err := e.db.Transaction(func(tx *gorm.DB) error {
		active, _, err := playerCounts(tx)
		if err != nil {
			return err
		}
		if active != 1 {
			return gorm.ErrRecordNotFound
		}
		return tx.Model(&models.User{}).
			Select("name, email").
			Where("role = ? AND is_active = ? AND disabled = ?", models.RoleUser, true, false).
			Scan(&winner).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &winner, nil
}

func tallyForLevel(tx *gorm.DB, levelNumber int) (VoteTally, error) {
	var rows []struct {
		Answer models.Answer
		Count  int64
	}
	err := tx.Model(&models.Vote{}).
		Select("answer, count(*) as count").
		Where("level_number = ?", levelNumber).
		Group("answer").
		Scan(&rows).Error
	if err != nil {
		return VoteTally{}, err
	}

	var tally VoteTally
	for _, row := range rows {
		switch row.Answer {
		case models.AnswerAlive:
			tally.Alive = row.Count
		case models.AnswerDead:
			tally.Dead = row.Count
		}
	}
	tally.Total = tally.Alive + tally.Dead
	return tally, nil
}

func votesForLevel(tx *gorm.DB, levelNumber, limit int, newestFirst bool) ([]VoteRecord, error) {
	order := "votes.cast_at"
	if newestFirst {
		order = "votes.cast_at DESC"
	}

	query := tx.Model(&models.Vote{}).
		Select("votes.id, votes.user_id, users.name as user_name, users.email as user_email, votes.answer, votes.cast_at").
		Joins("INNER JOIN users ON users.id = votes.user_id").
		Where("votes.level_number = ?", levelNumber).
		Order(order)
	if limit > 0 {
		query = query.Limit(limit)
	}

	var records []VoteRecord
	if err := query.Scan(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// playerCounts counts players only; admin accounts never join the game.
func playerCounts(tx *gorm.DB) (active, eliminated int64, err error) {
	err = tx.Model(&models.User{}).
		Where("role = ? AND is_active = ? AND disabled = ?", models.RoleUser, true, false).
		Count(&active).Error
	if err != nil {
		return 0, 0, err
	}

	err = tx.Model(&models.User{}).
		Where("role = ? AND is_active = ?", models.RoleUser, false).
		Count(&eliminated).Error
	if err != nil {
		return 0, 0, err
	}
	return active, eliminated, nil
}
