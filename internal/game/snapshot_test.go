package game

import (
	"testing"

	"github.com/sanyamseac/game/internal/models"
	"github.com/sanyamseac/game/internal/testutil"
)

func TestSnapshot(t *testing.T) {
	db := testutil.SetupTestDB(t)
	eng := newTestEngine(db, models.AnswerDead)

	alice := testutil.CreatePlayer(t, db, "Alice", "alice@example.com")
	bob := testutil.CreatePlayer(t, db, "Bob", "bob@example.com")

	snap, err := eng.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if snap.GameStarted {
		t.Error("Expected game not started")
	}
	if snap.CurrentLevel != snap.Level.LevelNumber {
		t.Errorf("Snapshot level pointer disagrees with level row: %d vs %d",
			snap.CurrentLevel, snap.Level.LevelNumber)
	}
	if snap.ActivePlayers != 2 {
		t.Errorf("Expected 2 active players, got %d", snap.ActivePlayers)
	}

	if err := eng.StartGame(); err != nil {
		t.Fatalf("StartGame failed: %v", err)
	}
	if err := eng.CastVote(alice, 1, models.AnswerAlive); err != nil {
		t.Fatalf("Vote failed: %v", err)
	}
	if err := eng.CastVote(bob, 1, models.AnswerAlive); err != nil {
		t.Fatalf("Vote failed: %v", err)
	}

	snap, err = eng.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if !snap.GameStarted || !snap.Level.VotingOpen {
		t.Errorf("Expected started game with open voting, got %+v", snap)
	}
	if snap.Tally.Alive != 2 || snap.Tally.Dead != 0 || snap.Tally.Total != 2 {
		t.Errorf("Unexpected tally: %+v", snap.Tally)
	}
}

func TestTallyForLevel(t *testing.T) {
	db := testutil.SetupTestDB(t)
	eng := newTestEngine(db, models.AnswerDead)

	alice := testutil.CreatePlayer(t, db, "Alice", "alice@example.com")
	bob := testutil.CreatePlayer(t, db, "Bob", "bob@example.com")
	carol := testutil.CreatePlayer(t, db, "Carol", "carol@example.com")

	if err := eng.StartGame(); err != nil {
		t.Fatalf("StartGame failed: %v", err)
	}
	for _, vote := range []struct {
		user   *models.User
		answer models.Answer
	}{
		{alice, models.AnswerAlive},
		{bob, models.AnswerDead},
		{carol, models.AnswerDead},
	} {
		if err := eng.CastVote(vote.user, 1, vote.answer); err != nil {
			t.Fatalf("Vote failed: %v", err)
		}
	}

	tally, err := eng.TallyForLevel(1)
	if err != nil {
		t.Fatalf("TallyForLevel failed: %v", err)
	}
	if tally.Alive != 1 || tally.Dead != 2 || tally.Total != 3 {
		t.Errorf("Unexpected tally: %+v", tally)
	}

	// Unknown levels tally to zero rather than erroring.
	tally, err = eng.TallyForLevel(42)
	if err != nil {
		t.Fatalf("TallyForLevel failed for unknown level: %v", err)
	}
	if tally.Total != 0 {
		t.Errorf("Expected empty tally, got %+v", tally)
	}
}

func TestVotesAndRecentVotes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	eng := newTestEngine(db, models.AnswerDead)

	if err := eng.StartGame(); err != nil {
		t.Fatalf("StartGame failed: %v", err)
	}

	names := []string{"Alice", "Bob", "Carol", "Dave"}
	for i, name := range names {
		player := testutil.CreatePlayer(t, db, name, name+"@example.com")
		// Fixed timestamps so the ordering assertions are deterministic.
		vote := models.Vote{
			UserID:      player.ID,
			LevelNumber: 1,
			Answer:      models.AnswerAlive,
			CastAt:      int64(1000 + i),
		}
		if err := db.Create(&vote).Error; err != nil {
			t.Fatalf("Failed to create vote: %v", err)
		}
	}

	votes, err := eng.Votes(1)
	if err != nil {
		t.Fatalf("Votes failed: %v", err)
	}
	if len(votes) != 4 {
		t.Fatalf("Expected 4 votes, got %d", len(votes))
	}
	if votes[0].UserName != "Alice" || votes[3].UserName != "Dave" {
		t.Errorf("Expected oldest-first ordering, got %s ... %s", votes[0].UserName, votes[3].UserName)
	}
	if votes[0].UserEmail != "Alice@example.com" {
		t.Errorf("Expected joined voter email, got %q", votes[0].UserEmail)
	}

	recent, err := eng.RecentVotes(1, 2)
	if err != nil {
		t.Fatalf("RecentVotes failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 recent votes, got %d", len(recent))
	}
	if recent[0].UserName != "Dave" || recent[1].UserName != "Carol" {
		t.Errorf("Expected newest-first ordering, got %s, %s", recent[0].UserName, recent[1].UserName)
	}
}

func TestHasVoted(t *testing.T) {
	db := testutil.SetupTestDB(t)
	eng := newTestEngine(db, models.AnswerDead)

	alice := testutil.CreatePlayer(t, db, "Alice", "alice@example.com")
	if err := eng.StartGame(); err != nil {
		t.Fatalf("StartGame failed: %v", err)
	}

	vote, err := eng.HasVoted(alice.ID, 1)
	if err != nil {
		t.Fatalf("HasVoted failed: %v", err)
	}
	if vote != nil {
		t.Error("Expected no vote yet")
	}

	if err := eng.CastVote(alice, 1, models.AnswerDead); err != nil {
		t.Fatalf("Vote failed: %v", err)
	}

	vote, err = eng.HasVoted(alice.ID, 1)
	if err != nil {
		t.Fatalf("HasVoted failed: %v", err)
	}
	if vote == nil || vote.Answer != models.AnswerDead {
		t.Errorf("Expected dead vote, got %+v", vote)
	}
}

func TestEliminatedPlayersAndWinner(t *testing.T) {
	db := testutil.SetupTestDB(t)
	eng := newTestEngine(db, models.AnswerDead)

	alice := testutil.CreatePlayer(t, db, "Alice", "alice@example.com")
	bob := testutil.CreatePlayer(t, db, "Bob", "bob@example.com")

	// Two active players: no winner yet.
	winner, err := eng.Winner()
	if err != nil {
		t.Fatalf("Winner failed: %v", err)
	}
	if winner != nil {
		t.Errorf("Expected no winner with 2 active players, got %+v", winner)
	}

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

	eliminated, err := eng.EliminatedPlayers()
	if err != nil {
		t.Fatalf("EliminatedPlayers failed: %v", err)
	}
	if len(eliminated) != 1 || eliminated[0].Name != "Alice" {
		t.Errorf("Expected Alice eliminated, got %+v", eliminated)
	}

	winner, err = eng.Winner()
	if err != nil {
		t.Fatalf("Winner failed: %v", err)
	}
	if winner == nil || winner.Name != "Bob" {
		t.Errorf("Expected Bob as winner, got %+v", winner)
	}
}
