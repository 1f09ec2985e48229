package handler

import (
	"net/http"
	"strconv"

	"github.com/sanyamseac/game/internal/auth"
	"github.com/sanyamseac/game/internal/game"
	"github.com/sanyamseac/game/internal/hub"
	"github.com/sanyamseac/game/internal/models"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// VoteInput defines the structure for casting a vote.
type VoteInput struct {
	Answer models.Answer `json:"answer" binding:"required" example:"alive"`
}

// LevelResponse is the wire form of a level's state.
type LevelResponse struct {
	LevelNumber          int           `json:"level_number"`
	CorrectAnswer        models.Answer `json:"correct_answer,omitempty"`
	VotingOpen           bool          `json:"voting_open"`
	VotingEnded          bool          `json:"voting_ended"`
	ResultsRevealed      bool          `json:"results_revealed"`
	TimerActive          bool          `json:"timer_active"`
	TimerEndsAt          *int64        `json:"timer_ends_at"`
	TimerDurationSeconds int           `json:"timer_duration_seconds"`
}

func newLevelResponse(level models.Level) LevelResponse {
	return LevelResponse{
		LevelNumber:          level.LevelNumber,
		CorrectAnswer:        level.CorrectAnswer,
		VotingOpen:           level.VotingOpen,
		VotingEnded:          level.VotingEnded,
		ResultsRevealed:      level.ResultsRevealed,
		TimerActive:          level.TimerActive,
		TimerEndsAt:          level.TimerEndsAt,
		TimerDurationSeconds: level.TimerDurationSeconds,
	}
}

// SnapshotResponse is the public game snapshot.
type SnapshotResponse struct {
	GameStarted       bool           `json:"game_started"`
	AllowRegistration bool           `json:"allow_registration"`
	CurrentLevel      int            `json:"current_level"`
	Level             LevelResponse  `json:"level"`
	Tally             game.VoteTally `json:"tally"`
	ActivePlayers     int64          `json:"active_players"`
	EliminatedPlayers int64          `json:"eliminated_players"`
}

func newSnapshotResponse(snap *game.Snapshot) SnapshotResponse {
	return SnapshotResponse{
		GameStarted:       snap.GameStarted,
		AllowRegistration: snap.AllowRegistration,
		CurrentLevel:      snap.CurrentLevel,
		Level:             newLevelResponse(snap.Level),
		Tally:             snap.Tally,
		ActivePlayers:     snap.ActivePlayers,
		EliminatedPlayers: snap.EliminatedPlayers,
	}
}

// GameStateResponse is the player's view of the game: the lobby before the
// game starts, the current level afterwards.
type GameStateResponse struct {
	GameStarted       bool           `json:"game_started"`
	AllowRegistration bool           `json:"allow_registration"`
	PlayerCount       int64          `json:"player_count"`
	CurrentLevel      int            `json:"current_level,omitempty"`
	Level             *LevelResponse `json:"level,omitempty"`
	Eliminated        bool           `json:"eliminated"`
	HasVoted          bool           `json:"has_voted"`
	YourAnswer        models.Answer  `json:"your_answer,omitempty"`
}

// EliminatedResponse is the view for knocked-out players.
type EliminatedResponse struct {
	CurrentLevel      int          `json:"current_level"`
	ActivePlayers     int64        `json:"active_players"`
	EliminatedPlayers int64        `json:"eliminated_players"`
	Winner            *game.Winner `json:"winner,omitempty"`
}

// endregion

// GetGameState godoc
// @Summary      Get the player's game view
// @Description  Returns the lobby state before the game starts, or the current level state with the caller's vote once it has.
// @Tags         game
// @Produce      json
// @Security     SessionAuth
// @Success      200  {object}  GameStateResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /game [get]
func GetGameState(c *gin.Context) {
	user := auth.CurrentUser(c)
	eng := engine()

	snap, err := eng.Snapshot()
	if err != nil {
		respondEngineError(c, err)
		return
	}

	response := GameStateResponse{
		GameStarted:       snap.GameStarted,
		AllowRegistration: snap.AllowRegistration,
		PlayerCount:       snap.ActivePlayers,
		Eliminated:        !user.CanPlay(),
	}

	if !snap.GameStarted {
		c.JSON(http.StatusOK, response)
		return
	}

	level := newLevelResponse(snap.Level)
	response.CurrentLevel = snap.CurrentLevel
	response.Level = &level

	vote, err := eng.HasVoted(user.ID, snap.CurrentLevel)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load vote"})
		return
	}
	if vote != nil {
		response.HasVoted = true
		response.YourAnswer = vote.Answer
	}

	c.JSON(http.StatusOK, response)
}

// CastVote godoc
// @Summary      Cast a vote
// @Description  Records the caller's answer for a level. One vote per player per level.
// @Tags         game
// @Accept       json
// @Produce      json
// @Security     SessionAuth
// @Param        level path int       true "Level number"
// @Param        input body VoteInput true "Vote"
// @Success      201  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse "Invalid level or answer"
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Eliminated"
// @Failure      404  {object}  ErrorResponse "Level not found"
// @Failure      409  {object}  ErrorResponse "Voting closed, wrong level, or already voted"
// @Router       /game/levels/{level}/vote [post]
func CastVote(c *gin.Context) {
	user := auth.CurrentUser(c)

	levelNumber, err := strconv.Atoi(c.Param("level"))
	if err != nil || levelNumber < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid level number"})
		return
	}

	var input VoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := engine().CastVote(user, levelNumber, input.Answer); err != nil {
		respondEngineError(c, err)
		return
	}

	hub.GlobalHub.Broadcast(hub.Event{
		Type:    hub.EventVoteCast,
		Payload: gin.H{"level": levelNumber},
	})

	c.JSON(http.StatusCreated, gin.H{"message": "Vote recorded successfully!"})
}

// GetSnapshot godoc
// @Summary      Get the game snapshot
// @Description  Returns the current level, its state, the vote tally and player counts.
// @Tags         game
// @Produce      json
// @Success      200  {object}  SnapshotResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /game/snapshot [get]
func GetSnapshot(c *gin.Context) {
	snap, err := engine().Snapshot()
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, newSnapshotResponse(snap))
}

// GetVoteTally godoc
// @Summary      Get the vote tally for a level
// @Description  Returns alive/dead/total counts for the given level. Used by polling clients.
// @Tags         game
// @Produce      json
// @Param        level path int true "Level number"
// @Success      200  {object}  game.VoteTally
// @Failure      400  {object}  ErrorResponse
// @Router       /votes/{level} [get]
func GetVoteTally(c *gin.Context) {
	levelNumber, err := strconv.Atoi(c.Param("level"))
	if err != nil || levelNumber < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid level"})
		return
	}

	tally, err := engine().TallyForLevel(levelNumber)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch vote stats"})
		return
	}
	c.JSON(http.StatusOK, tally)
}

// GetEliminated godoc
// @Summary      Get the eliminated view
// @Description  Returns player counts and, once a single player remains, the winner.
// @Tags         game
// @Produce      json
// @Security     SessionAuth
// @Success      200  {object}  EliminatedResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /game/eliminated [get]
func GetEliminated(c *gin.Context) {
	eng := engine()

	snap, err := eng.Snapshot()
	if err != nil {
		respondEngineError(c, err)
		return
	}

	winner, err := eng.Winner()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to determine winner"})
		return
	}

	c.JSON(http.StatusOK, EliminatedResponse{
		CurrentLevel:      snap.CurrentLevel,
		ActivePlayers:     snap.ActivePlayers,
		EliminatedPlayers: snap.EliminatedPlayers,
		Winner:            winner,
	})
}
