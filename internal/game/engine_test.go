package game

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/sanyamseac/game/internal/models"
	"github.com/sanyamseac/game/internal/testutil"

	"gorm.io/gorm"
)

// newTestEngine returns an engine whose coin always lands on the given
// answer.
func newTestEngine(db *gorm.DB, answer models.Answer) *Engine {
	e := NewEngine(db)
	e.coin = func() models.Answer { return answer }
	return e
}

func loadTestLevel(t *testing.T, db *gorm.DB, levelNumber int) models.Level {
	t.Helper()
	var level models.Level
	if err := db.Where("level_number = ?", levelNumber).First(&level).Error; err != nil {
		t.Fatalf("Failed to load level %d: %v", levelNumber, err)
	}
	return level
}

func loadTestDetails(t *testing.T, db *gorm.DB) models.GameDetails {
	t.Helper()
	var details models.GameDetails
	if err := db.First(&details).Error; err != nil {
		t.Fatalf("Failed to load game details: %v", err)
	}
	return details
}

func TestStartGame(t *testing.T) {
	db := testutil.SetupTestDB(t)
	eng := newTestEngine(db, models.AnswerDead)

	if err := eng.StartGame(); err != nil {
		t.Fatalf("StartGame failed: %v", err)
	}

	details := loadTestDetails(t, db)
	if !details.GameStarted {
		t.Error("Expected game_started to be true")
	}
	if details.CurrentLevel != 1 {
		t.Errorf("Expected current level 1, got %d", details.CurrentLevel)
	}

	level := loadTestLevel(t, db, 1)
	if !level.VotingOpen || level.VotingEnded || level.ResultsRevealed {
		t.Errorf("Expected level 1 to be fresh and open, got %+v", level)
	}
	if level.CorrectAnswer != models.AnswerUnset {
		t.Errorf("Expected no correct answer yet, got %q", level.CorrectAnswer)
	}

	// Double-start is rejected.
	err := eng.StartGame()
	if KindOf(err) != KindStateConflict {
		t.Errorf("Expected state conflict on double start, got %v", err)
	}
}

func TestEndVotingIsIdempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	eng := newTestEngine(db, models.AnswerDead)

	if err := eng.StartGame(); err != nil {
		t.Fatalf("StartGame failed: %v", err)
	}

	for i := 0; i < 2; i++ {
		levelNumber, err := eng.EndVoting()
		if err != nil {
			t.Fatalf("EndVoting call %d failed: %v", i+1, err)
		}
		if levelNumber != 1 {
			t.Errorf("Expected level 1, got %d", levelNumber)
		}
	}

	level := loadTestLevel(t, db, 1)
	if level.VotingOpen || !level.VotingEnded {
		t.Errorf("Expected voting closed, got %+v", level)
	}
}

func TestCastVotePreconditions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	eng := newTestEngine(db, models.AnswerDead)

	player := testutil.CreatePlayer(t, db, "Alice", "alice@example.com")
	eliminated := testutil.CreatePlayer(t, db, "Bob", "bob@example.com")
	if err := db.Model(eliminated).Update("is_active", false).Error; err != nil {
		t.Fatalf("Failed to eliminate Bob: %v", err)
	}
	eliminated.IsActive = false

	if err := eng.StartGame(); err != nil {
		t.Fatalf("StartGame failed: %v", err)
	}

	// A second level that exists but is not current.
	if err := db.Create(&models.Level{LevelNumber: 2, VotingOpen: true}).Error; err != nil {
		t.Fatalf("Failed to create level 2: %v", err)
	}

	tests := []struct {
		name     string
		user     *models.User
		level    int
		answer   models.Answer
		expected Kind
	}{
		{"nil user", nil, 1, models.AnswerAlive, KindUnauthorized},
		{"invalid answer", player, 1, models.Answer("maybe"), KindInvalidInput},
		{"unset answer", player, 1, models.AnswerUnset, KindInvalidInput},
		{"missing level", player, 99, models.AnswerAlive, KindNotFound},
		{"not current level", player, 2, models.AnswerAlive, KindStateConflict},
		{"eliminated player", eliminated, 1, models.AnswerAlive, KindEliminated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := eng.CastVote(tt.user, tt.level, tt.answer)
			if KindOf(err) != tt.expected {
				t.Errorf("Expected %s, got %v", tt.expected, err)
			}
		})
	}

	// First valid vote succeeds, second is a conflict.
	if err := eng.CastVote(player, 1, models.AnswerAlive); err != nil {
		t.Fatalf("CastVote failed: %v", err)
	}
	if err := eng.CastVote(player, 1, models.AnswerDead); KindOf(err) != KindStateConflict {
		t.Errorf("Expected conflict on duplicate vote, got %v", err)
	}

	// And once voting ends, no more votes.
	charlie := testutil.CreatePlayer(t, db, "Charlie", "charlie@example.com")
	if _, err := eng.EndVoting(); err != nil {
		t.Fatalf("EndVoting failed: %v", err)
	}
	if err := eng.CastVote(charlie, 1, models.AnswerAlive); KindOf(err) != KindStateConflict {
		t.Errorf("Expected conflict after voting ended, got %v", err)
	}
}

// TestCastVoteConcurrentDuplicates verifies the one-vote-per-level property
// holds when the same player submits simultaneously.
func TestCastVoteConcurrentDuplicates(t *testing.T) {
	db := testutil.SetupTestDB(t)
	eng := newTestEngine(db, models.AnswerDead)

	player := testutil.CreatePlayer(t, db, "Alice", "alice@example.com")
	if err := eng.StartGame(); err != nil {
		t.Fatalf("StartGame failed: %v", err)
	}

	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := eng.CastVote(player, 1, models.AnswerAlive); err == nil {
				successCount.Add(1)
			}
		}()
	}
	wg.Wait()

	if successCount.Load() != 1 {
		t.Errorf("Expected exactly 1 successful vote, got %d", successCount.Load())
	}

	var count int64
	if err := db.Model(&models.Vote{}).Where("user_id = ? AND level_number = ?", player.ID, 1).Count(&count).Error; err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 vote in database, got %d", count)
	}
}

func TestRevealResultsEliminatesWrongVoters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	eng := newTestEngine(db, models.AnswerDead)

	alice := testutil.CreatePlayer(t, db, "Alice", "alice@example.com")
	bob := testutil.CreatePlayer(t, db, "Bob", "bob@example.com")
	carol := testutil.CreatePlayer(t, db, "Carol", "carol@example.com") // never votes

	if err := eng.StartGame(); err != nil {
		t.Fatalf("StartGame failed: %v", err)
	}
	if err := eng.CastVote(alice, 1, models.AnswerAlive); err != nil {
		t.Fatalf("Alice's vote failed: %v", err)
	}
	if err := eng.CastVote(bob, 1, models.AnswerDead); err != nil {
		t.Fatalf("Bob's vote failed: %v", err)
	}
	if _, err := eng.EndVoting(); err != nil {
		t.Fatalf("EndVoting failed: %v", err)
	}

	outcome, err := eng.RevealResults()
	if err != nil {
		t.Fatalf("RevealResults failed: %v", err)
	}
	if outcome.CorrectAnswer != models.AnswerDead {
		t.Errorf("Expected drawn answer dead, got %s", outcome.CorrectAnswer)
	}
	if outcome.EliminatedCount != 1 {
		t.Errorf("Expected 1 player eliminated, got %d", outcome.EliminatedCount)
	}

	var users []models.User
	if err := db.Order("name").Find(&users).Error; err != nil {
		t.Fatalf("Failed to load users: %v", err)
	}
	for _, u := range users {
		switch u.ID {
		case alice.ID:
			if u.IsActive {
				t.Error("Alice voted alive against dead and should be eliminated")
			}
		case bob.ID:
			if !u.IsActive {
				t.Error("Bob voted dead and should still be active")
			}
		case carol.ID:
			if !u.IsActive {
				t.Error("Carol never voted and should not be eliminated")
			}
		}
	}

	level := loadTestLevel(t, db, 1)
	if !level.ResultsRevealed || level.CorrectAnswer != models.AnswerDead {
		t.Errorf("Expected level revealed with answer dead, got %+v", level)
	}
}

func TestRevealResultsOnlyOnce(t *testing.T) {
	db := testutil.SetupTestDB(t)
	eng := newTestEngine(db, models.AnswerDead)

	alice := testutil.CreatePlayer(t, db, "Alice", "alice@example.com")

	if err := eng.StartGame(); err != nil {
		t.Fatalf("StartGame failed: %v", err)
	}
	if err := eng.CastVote(alice, 1, models.AnswerAlive); err != nil {
		t.Fatalf("Vote failed: %v", err)
	}
	if _, err := eng.EndVoting(); err != nil {
		t.Fatalf("EndVoting failed: %v", err)
	}
	if _, err := eng.RevealResults(); err != nil {
		t.Fatalf("First reveal failed: %v", err)
	}

	// Flip the coin; a second reveal must not re-draw or re-eliminate.
	eng.coin = func() models.Answer { return models.AnswerAlive }

	_, err := eng.RevealResults()
	if KindOf(err) != KindStateConflict {
		t.Fatalf("Expected state conflict on second reveal, got %v", err)
	}

	level := loadTestLevel(t, db, 1)
	if level.CorrectAnswer != models.AnswerDead {
		t.Errorf("Expected drawn answer to stay dead, got %s", level.CorrectAnswer)
	}
}

func TestAdvanceLevelRequiresReveal(t *testing.T) {
	db := testutil.SetupTestDB(t)
	eng := newTestEngine(db, models.AnswerDead)

	if err := eng.StartGame(); err != nil {
		t.Fatalf("StartGame failed: %v", err)
	}

	if _, err := eng.AdvanceLevel(); KindOf(err) != KindStateConflict {
		t.Errorf("Expected state conflict advancing before reveal, got %v", err)
	}

	if _, err := eng.EndVoting(); err != nil {
		t.Fatalf("EndVoting failed: %v", err)
	}
	if _, err := eng.RevealResults(); err != nil {
		t.Fatalf("RevealResults failed: %v", err)
	}

	next, err := eng.AdvanceLevel()
	if err != nil {
		t.Fatalf("AdvanceLevel failed: %v", err)
	}
	if next != 2 {
		t.Errorf("Expected level 2, got %d", next)
	}

	details := loadTestDetails(t, db)
	if details.CurrentLevel != 2 {
		t.Errorf("Expected current level 2, got %d", details.CurrentLevel)
	}

	level := loadTestLevel(t, db, 2)
	if !level.VotingOpen || level.VotingEnded || level.ResultsRevealed {
		t.Errorf("Expected fresh open level 2, got %+v", level)
	}
	if level.CorrectAnswer != models.AnswerUnset {
		t.Errorf("Expected no correct answer on level 2, got %q", level.CorrectAnswer)
	}
}

func TestAdvanceLevelResetsExistingLevel(t *testing.T) {
	db := testutil.SetupTestDB(t)
	eng := newTestEngine(db, models.AnswerDead)

	// A stale level 2 from a previous run.
	ends := int64(12345)
	if err := db.Create(&models.Level{
		LevelNumber:     2,
		CorrectAnswer:   models.AnswerAlive,
		VotingEnded:     true,
		ResultsRevealed: true,
		TimerActive:     true,
		TimerEndsAt:     &ends,
	}).Error; err != nil {
		t.Fatalf("Failed to create stale level: %v", err)
	}

	if err := eng.StartGame(); err != nil {
		t.Fatalf("StartGame failed: %v", err)
	}
	if _, err := eng.EndVoting(); err != nil {
		t.Fatalf("EndVoting failed: %v", err)
	}
	if _, err := eng.RevealResults(); err != nil {
		t.Fatalf("RevealResults failed: %v", err)
	}
	if _, err := eng.AdvanceLevel(); err != nil {
		t.Fatalf("AdvanceLevel failed: %v", err)
	}

	level := loadTestLevel(t, db, 2)
	if !level.VotingOpen || level.VotingEnded || level.ResultsRevealed || level.TimerActive {
		t.Errorf("Expected level 2 reset to fresh state, got %+v", level)
	}
	if level.CorrectAnswer != models.AnswerUnset {
		t.Errorf("Expected correct answer cleared, got %q", level.CorrectAnswer)
	}
	if level.TimerEndsAt != nil {
		t.Errorf("Expected timer end cleared, got %v", *level.TimerEndsAt)
	}
}

func TestResetGame(t *testing.T) {
	db := testutil.SetupTestDB(t)
	eng := newTestEngine(db, models.AnswerDead)

	alice := testutil.CreatePlayer(t, db, "Alice", "alice@example.com")
	bob := testutil.CreatePlayer(t, db, "Bob", "bob@example.com")

	if err := eng.StartGame(); err != nil {
		t.Fatalf("StartGame failed: %v", err)
	}
	if err := eng.CastVote(alice, 1, models.AnswerAlive); err != nil {
		t.Fatalf("Vote failed: %v", err)
	}
	if err := eng.CastVote(bob, 1, models.AnswerDead); err != nil {
		t.Fatalf("Vote failed: %v", err)
	}
	if _, err := eng.EndVoting(); err != nil {
		t.Fatalf("EndVoting failed: %v", err)
	}
	if _, err := eng.RevealResults(); err != nil {
		t.Fatalf("RevealResults failed: %v", err)
	}
	if _, err := eng.AdvanceLevel(); err != nil {
		t.Fatalf("AdvanceLevel failed: %v", err)
	}

	if err := eng.ResetGame(); err != nil {
		t.Fatalf("ResetGame failed: %v", err)
	}

	var users []models.User
	if err := db.Find(&users).Error; err != nil {
		t.Fatalf("Failed to load users: %v", err)
	}
	for _, u := range users {
		if !u.IsActive || u.Disabled || u.CurrentLevel != 1 {
			t.Errorf("Expected %s reset to active at level 1, got %+v", u.Name, u)
		}
	}

	var voteCount int64
	if err := db.Model(&models.Vote{}).Count(&voteCount).Error; err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}
	if voteCount != 0 {
		t.Errorf("Expected 0 votes after reset, got %d", voteCount)
	}

	details := loadTestDetails(t, db)
	if details.GameStarted || details.CurrentLevel != 1 {
		t.Errorf("Expected pre-lobby details, got %+v", details)
	}

	// Level 1 is closed until the next StartGame, unlike after StartGame.
	level := loadTestLevel(t, db, 1)
	if level.VotingOpen || level.VotingEnded || level.ResultsRevealed {
		t.Errorf("Expected closed fresh level 1, got %+v", level)
	}
}

func TestToggleRegistration(t *testing.T) {
	db := testutil.SetupTestDB(t)
	eng := newTestEngine(db, models.AnswerDead)

	allowed, err := eng.ToggleRegistration()
	if err != nil {
		t.Fatalf("ToggleRegistration failed: %v", err)
	}
	if allowed {
		t.Error("Expected registration closed after first toggle")
	}

	allowed, err = eng.ToggleRegistration()
	if err != nil {
		t.Fatalf("ToggleRegistration failed: %v", err)
	}
	if !allowed {
		t.Error("Expected registration open after second toggle")
	}
}

func TestTimerLifecycle(t *testing.T) {
	db := testutil.SetupTestDB(t)
	eng := newTestEngine(db, models.AnswerDead)

	if err := eng.StartGame(); err != nil {
		t.Fatalf("StartGame failed: %v", err)
	}

	state, err := eng.StartTimer(0)
	if err != nil {
		t.Fatalf("StartTimer failed: %v", err)
	}
	if state.DurationSeconds != models.DefaultTimerSeconds {
		t.Errorf("Expected default duration %d, got %d", models.DefaultTimerSeconds, state.DurationSeconds)
	}

	level := loadTestLevel(t, db, 1)
	if !level.TimerActive || level.TimerEndsAt == nil {
		t.Errorf("Expected active timer, got %+v", level)
	}

	if err := eng.StopTimer(); err != nil {
		t.Fatalf("StopTimer failed: %v", err)
	}
	level = loadTestLevel(t, db, 1)
	if level.TimerActive || level.TimerEndsAt != nil {
		t.Errorf("Expected cleared timer, got %+v", level)
	}
}

func TestStartTimerAfterVotingEnded(t *testing.T) {
	db := testutil.SetupTestDB(t)
	eng := newTestEngine(db, models.AnswerDead)

	if err := eng.StartGame(); err != nil {
		t.Fatalf("StartGame failed: %v", err)
	}
	if _, err := eng.EndVoting(); err != nil {
		t.Fatalf("EndVoting failed: %v", err)
	}

	_, err := eng.StartTimer(30)
	if KindOf(err) != KindStateConflict {
		t.Errorf("Expected state conflict starting timer after voting ended, got %v", err)
	}
}
