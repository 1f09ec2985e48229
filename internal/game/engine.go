// Package game implements the progression engine: the level lifecycle state
// machine (voting, elimination, advancement) over the relational store. Every
// operation runs inside a single transaction so concurrent requests and
// crashes can never leave the game details pointing at a level whose state
// was only half written.
package game

import (
	"errors"
	"math/rand/v2"
	"time"

	"github.com/sanyamseac/game/internal/models"

	"gorm.io/gorm"
)

// Engine orchestrates game state transitions. Authorization is handled by the
// HTTP middleware; the engine enforces game-state preconditions only.
type Engine struct {
	db *gorm.DB

	// coin draws the correct answer at reveal time. Injectable for tests.
	coin func() models.Answer

	// now is the clock used for timers and vote timestamps.
	now func() time.Time
}

// NewEngine creates an engine over the given database handle.
func NewEngine(db *gorm.DB) *Engine {
	return &Engine{
		db:   db,
		coin: drawAnswer,
		now:  time.Now,
	}
}

// drawAnswer is a fair coin, independent of the vote counts.
func drawAnswer() models.Answer {
	if rand.IntN(2) == 0 {
		return models.AnswerAlive
	}
	return models.AnswerDead
}

// RevealOutcome reports what a reveal did.
type RevealOutcome struct {
	LevelNumber     int
	CorrectAnswer   models.Answer
	EliminatedCount int64
}

// TimerState reports the advisory countdown stored on the current level.
type TimerState struct {
	LevelNumber     int
	EndsAt          int64
	DurationSeconds int
}

// StartGame marks the game as started and opens voting on level 1. Fails with
// a state conflict if the game is already running.
func (e *Engine) StartGame() error {
	return e.db.Transaction(func(tx *gorm.DB) error {
		details, err := loadDetails(tx)
		if err != nil {
			return err
		}
		if details.GameStarted {
			return errf(KindStateConflict, "game has already started")
		}

		err = tx.Model(&models.GameDetails{}).Where("id = ?", details.ID).
			Updates(map[string]interface{}{"game_started": true, "current_level": 1}).Error
		if err != nil {
			return err
		}

		return resetLevel(tx, 1, true)
	})
}

// EndVoting closes voting on the current level. Calling it again is a no-op.
func (e *Engine) EndVoting() (int, error) {
	var levelNumber int
	err := e.db.Transaction(func(tx *gorm.DB) error {
		details, err := loadDetails(tx)
		if err != nil {
			return err
		}
		levelNumber = details.CurrentLevel

		if _, err := loadLevel(tx, levelNumber); err != nil {
			return err
		}

		return tx.Model(&models.Level{}).Where("level_number = ?", levelNumber).
			Updates(map[string]interface{}{"voting_open": false, "voting_ended": true}).Error
	})
	if err != nil {
		return 0, err
	}
	return levelNumber, nil
}

// RevealResults draws the correct answer for the current level and eliminates
// every still-active player who voted for the opposite answer. Players who
// never voted survive the reveal. A level can only be revealed once.
func (e *Engine) RevealResults() (*RevealOutcome, error) {
	var outcome RevealOutcome
	err := e.db.Transaction(func(tx *gorm.DB) error {
		details, err := loadDetails(tx)
		if err != nil {
			return err
		}

		level, err := loadLevel(tx, details.CurrentLevel)
		if err != nil {
			return err
		}
		if level.ResultsRevealed {
			return errf(KindStateConflict, "results have already been revealed for level %d", level.LevelNumber)
		}

		answer := e.coin()

		err = tx.Model(&models.Level{}).Where("level_number = ?", level.LevelNumber).
			Updates(map[string]interface{}{"correct_answer": answer, "results_revealed": true}).Error
		if err != nil {
			return err
		}

		wrongVoters := tx.Model(&models.Vote{}).Select("user_id").
			Where("level_number = ? AND answer = ?", level.LevelNumber, answer.Opposite())

		res := tx.Model(&models.User{}).
			Where("is_active = ? AND id IN (?)", true, wrongVoters).
			Update("is_active", false)
		if res.Error != nil {
			return res.Error
		}

		outcome = RevealOutcome{
			LevelNumber:     level.LevelNumber,
			CorrectAnswer:   answer,
			EliminatedCount: res.RowsAffected,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &outcome, nil
}

// AdvanceLevel moves the game to the next level, creating it on first entry
// or resetting it to a fresh voting-open state otherwise. The current level
// must have been revealed first.
func (e *Engine) AdvanceLevel() (int, error) {
	var next int
	err := e.db.Transaction(func(tx *gorm.DB) error {
		details, err := loadDetails(tx)
		if err != nil {
			return err
		}

		current, err := loadLevel(tx, details.CurrentLevel)
		if err != nil {
			return err
		}
		if !current.ResultsRevealed {
			return errf(KindStateConflict, "reveal results for level %d before advancing", current.LevelNumber)
		}

		next = details.CurrentLevel + 1
		if err := resetLevel(tx, next, true); err != nil {
			return err
		}

		return tx.Model(&models.GameDetails{}).Where("id = ?", details.ID).
			Update("current_level", next).Error
	})
	if err != nil {
		return 0, err
	}
	return next, nil
}

// ResetGame rolls everything back to the pre-lobby state: all players active
// again at level 1, all votes deleted, game not started, level 1 closed until
// the next StartGame.
func (e *Engine) ResetGame() error {
	return e.db.Transaction(func(tx *gorm.DB) error {
		details, err := loadDetails(tx)
		if err != nil {
			return err
		}

		all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})

		err = all.Model(&models.User{}).
			Updates(map[string]interface{}{"is_active": true, "disabled": false, "current_level": 1}).Error
		if err != nil {
			return err
		}

		if err := all.Delete(&models.Vote{}).Error; err != nil {
			return err
		}

		err = tx.Model(&models.GameDetails{}).Where("id = ?", details.ID).
			Updates(map[string]interface{}{"current_level": 1, "game_started": false}).Error
		if err != nil {
			return err
		}

		return resetLevel(tx, 1, false)
	})
}

// ToggleRegistration flips whether new players may register and returns the
// new state.
func (e *Engine) ToggleRegistration() (bool, error) {
	var allowed bool
	err := e.db.Transaction(func(tx *gorm.DB) error {
		details, err := loadDetails(tx)
		if err != nil {
			return err
		}
		allowed = !details.AllowRegistration
		return tx.Model(&models.GameDetails{}).Where("id = ?", details.ID).
			Update("allow_registration", allowed).Error
	})
	if err != nil {
		return false, err
	}
	return allowed, nil
}

// StartTimer stores an advisory countdown on the current level. It does not
// close voting when it expires; an admin still has to call EndVoting. Fails
// once voting has ended.
func (e *Engine) StartTimer(durationSeconds int) (*TimerState, error) {
	if durationSeconds <= 0 {
		durationSeconds = models.DefaultTimerSeconds
	}

	var state TimerState
	err := e.db.Transaction(func(tx *gorm.DB) error {
		details, err := loadDetails(tx)
		if err != nil {
			return err
		}

		level, err := loadLevel(tx, details.CurrentLevel)
		if err != nil {
			return err
		}
		if level.VotingEnded {
			return errf(KindStateConflict, "cannot start timer - voting has ended")
		}

		endsAt := e.now().Unix() + int64(durationSeconds)
		err = tx.Model(&models.Level{}).Where("level_number = ?", level.LevelNumber).
			Updates(map[string]interface{}{
				"timer_active":           true,
				"timer_ends_at":          endsAt,
				"timer_duration_seconds": durationSeconds,
			}).Error
		if err != nil {
			return err
		}

		state = TimerState{
			LevelNumber:     level.LevelNumber,
			EndsAt:          endsAt,
			DurationSeconds: durationSeconds,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// StopTimer clears the advisory countdown on the current level,
// unconditionally.
func (e *Engine) StopTimer() error {
	return e.db.Transaction(func(tx *gorm.DB) error {
		details, err := loadDetails(tx)
		if err != nil {
			return err
		}
		return tx.Model(&models.Level{}).Where("level_number = ?", details.CurrentLevel).
			Updates(map[string]interface{}{"timer_active": false, "timer_ends_at": nil}).Error
	})
}

// CastVote records a player's answer for a level. Preconditions are checked
// in a fixed order and the first failure wins; the unique index on
// (user_id, level_number) backstops the existence check against concurrent
// duplicates.
func (e *Engine) CastVote(user *models.User, levelNumber int, answer models.Answer) error {
	if user == nil {
		return errf(KindUnauthorized, "authentication required")
	}
	if !answer.Valid() {
		return errf(KindInvalidInput, "invalid answer")
	}

	return e.db.Transaction(func(tx *gorm.DB) error {
		level, err := loadLevel(tx, levelNumber)
		if err != nil {
			return err
		}

		details, err := loadDetails(tx)
		if err != nil {
			return err
		}
		if levelNumber != details.CurrentLevel {
			return errf(KindStateConflict, "level %d is not the current level", levelNumber)
		}

		if !level.VotingOpen || level.VotingEnded {
			return errf(KindStateConflict, "voting has ended for this level")
		}

		if user.Disabled || !user.IsActive {
			return errf(KindEliminated, "you have been eliminated")
		}

		var existing models.Vote
		err = tx.Where("user_id = ? AND level_number = ?", user.ID, levelNumber).First(&existing).Error
		if err == nil {
			return errf(KindStateConflict, "you have already voted for this level")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		vote := models.Vote{
			UserID:      user.ID,
			LevelNumber: levelNumber,
			Answer:      answer,
			CastAt:      e.now().UnixMilli(),
		}
		if err := tx.Create(&vote).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return errf(KindStateConflict, "you have already voted for this level")
			}
			return err
		}
		return nil
	})
}

// loadDetails fetches the game details singleton.
func loadDetails(tx *gorm.DB) (*models.GameDetails, error) {
	var details models.GameDetails
	if err := tx.First(&details).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errf(KindNotFound, "game has not been initialized")
		}
		return nil, err
	}
	return &details, nil
}

// loadLevel fetches a level by number.
func loadLevel(tx *gorm.DB, levelNumber int) (*models.Level, error) {
	var level models.Level
	if err := tx.Where("level_number = ?", levelNumber).First(&level).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errf(KindNotFound, "level %d not found", levelNumber)
		}
		return nil, err
	}
	return &level, nil
}

// resetLevel creates the level if it is missing, otherwise clears it back to
// a fresh state. votingOpen distinguishes a level entered mid-game (open)
// from the pre-lobby level 1 (closed).
func resetLevel(tx *gorm.DB, levelNumber int, votingOpen bool) error {
	var level models.Level
	err := tx.Where("level_number = ?", levelNumber).First(&level).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return tx.Create(&models.Level{
			LevelNumber:          levelNumber,
			VotingOpen:           votingOpen,
			TimerDurationSeconds: models.DefaultTimerSeconds,
		}).Error
	}
	if err != nil {
		return err
	}

	return tx.Model(&models.Level{}).Where("level_number = ?", levelNumber).
		Updates(map[string]interface{}{
			"correct_answer":         models.AnswerUnset,
			"voting_open":            votingOpen,
			"voting_ended":           false,
			"results_revealed":       false,
			"timer_active":           false,
			"timer_ends_at":          nil,
			"timer_duration_seconds": models.DefaultTimerSeconds,
		}).Error
}
