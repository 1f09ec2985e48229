package handler

import (
	"fmt"
	"net/http"

	"github.com/sanyamseac/game/internal/game"
	"github.com/sanyamseac/game/internal/hub"
	"github.com/sanyamseac/game/internal/models"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// TimerInput defines the optional body for starting the level timer.
type TimerInput struct {
	DurationSeconds int `json:"duration_seconds" example:"10"`
}

// RevealResponse reports the drawn answer and how many players it eliminated.
type RevealResponse struct {
	Message         string        `json:"message"`
	CorrectAnswer   models.Answer `json:"correct_answer"`
	EliminatedCount int64         `json:"eliminated_count"`
}

// AdvanceResponse reports the level the game moved to.
type AdvanceResponse struct {
	Message  string `json:"message"`
	NewLevel int    `json:"new_level"`
}

// DashboardResponse is the admin dashboard payload: everything the admin UI
// shows while running a level.
type DashboardResponse struct {
	SnapshotResponse
	Votes             []game.VoteRecord       `json:"votes"`
	EliminatedPlayers []game.EliminatedPlayer `json:"eliminated_players"`
}

// endregion

// StartGame godoc
// @Summary      Start the game
// @Description  Marks the game as started and opens voting on level 1. Fails if the game is already running.
// @Tags         admin
// @Produce      json
// @Security     SessionAuth
// @Success      200  {object}  MessageResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Failure      409  {object}  ErrorResponse "Game has already started"
// @Router       /admin/game/start [post]
func StartGame(c *gin.Context) {
	if err := engine().StartGame(); err != nil {
		respondEngineError(c, err)
		return
	}

	hub.GlobalHub.Broadcast(hub.Event{Type: hub.EventGameStarted, Payload: gin.H{"level": 1}})
	c.JSON(http.StatusOK, gin.H{"message": "Game started! Level 1 voting is now open."})
}

// EndVoting godoc
// @Summary      End voting on the current level
// @Description  Closes voting for the current level. Safe to call more than once.
// @Tags         admin
// @Produce      json
// @Security     SessionAuth
// @Success      200  {object}  MessageResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Level not found"
// @Router       /admin/game/end-voting [post]
func EndVoting(c *gin.Context) {
	levelNumber, err := engine().EndVoting()
	if err != nil {
		respondEngineError(c, err)
		return
	}

	hub.GlobalHub.Broadcast(hub.Event{Type: hub.EventVotingEnded, Payload: gin.H{"level": levelNumber}})
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Voting ended for level %d", levelNumber)})
}

// RevealResults godoc
// @Summary      Reveal the current level's outcome
// @Description  Draws the correct answer at random and eliminates every active player who voted for the opposite answer. A level can only be revealed once.
// @Tags         admin
// @Produce      json
// @Security     SessionAuth
// @Success      200  {object}  RevealResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Level not found"
// @Failure      409  {object}  ErrorResponse "Results already revealed"
// @Router       /admin/game/reveal [post]
func RevealResults(c *gin.Context) {
	outcome, err := engine().RevealResults()
	if err != nil {
		respondEngineError(c, err)
		return
	}

	hub.GlobalHub.Broadcast(hub.Event{Type: hub.EventResultsRevealed, Payload: outcome})
	c.JSON(http.StatusOK, RevealResponse{
		Message: fmt.Sprintf("Results revealed! Correct answer: %s. %d players eliminated.",
			outcome.CorrectAnswer, outcome.EliminatedCount),
		CorrectAnswer:   outcome.CorrectAnswer,
		EliminatedCount: outcome.EliminatedCount,
	})
}

// AdvanceLevel godoc
// @Summary      Advance to the next level
// @Description  Moves the game to the next level and opens voting on it. The current level must have been revealed first.
// @Tags         admin
// @Produce      json
// @Security     SessionAuth
// @Success      200  {object}  AdvanceResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Level not found"
// @Failure      409  {object}  ErrorResponse "Results not yet revealed"
// @Router       /admin/game/advance [post]
func AdvanceLevel(c *gin.Context) {
	newLevel, err := engine().AdvanceLevel()
	if err != nil {
		respondEngineError(c, err)
		return
	}

	hub.GlobalHub.Broadcast(hub.Event{Type: hub.EventLevelAdvanced, Payload: gin.H{"level": newLevel}})
	c.JSON(http.StatusOK, AdvanceResponse{
		Message:  fmt.Sprintf("Advanced to level %d", newLevel),
		NewLevel: newLevel,
	})
}

// ResetGame godoc
// @Summary      Reset the game
// @Description  Returns everything to the pre-lobby state: all players active at level 1, votes cleared, game stopped.
// @Tags         admin
// @Produce      json
// @Security     SessionAuth
// @Success      200  {object}  MessageResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /admin/game/reset [post]
func ResetGame(c *gin.Context) {
	if err := engine().ResetGame(); err != nil {
		respondEngineError(c, err)
		return
	}

	hub.GlobalHub.Broadcast(hub.Event{Type: hub.EventGameReset})
	c.JSON(http.StatusOK, gin.H{"message": "Game reset successfully. All players are back in the lobby!"})
}

// ToggleRegistration godoc
// @Summary      Toggle player registration
// @Description  Opens or closes registration for new players.
// @Tags         admin
// @Produce      json
// @Security     SessionAuth
// @Success      200  {object}  MessageResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /admin/registration/toggle [post]
func ToggleRegistration(c *gin.Context) {
	allowed, err := engine().ToggleRegistration()
	if err != nil {
		respondEngineError(c, err)
		return
	}

	message := "Registration has been stopped"
	if allowed {
		message = "Registration is now open"
	}

	hub.GlobalHub.Broadcast(hub.Event{Type: hub.EventRegistration, Payload: gin.H{"allowed": allowed}})
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// StartTimer godoc
// @Summary      Start the level timer
// @Description  Stores an advisory countdown on the current level. Clients compute the remaining time locally; expiry does not close voting.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     SessionAuth
// @Param        input body TimerInput false "Timer duration (defaults to 10 seconds)"
// @Success      200  {object}  MessageResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Level not found"
// @Failure      409  {object}  ErrorResponse "Voting has ended"
// @Router       /admin/timer/start [post]
func StartTimer(c *gin.Context) {
	var input TimerInput
	// Body is optional; ignore bind errors on an empty body.
	_ = c.ShouldBindJSON(&input)

	state, err := engine().StartTimer(input.DurationSeconds)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	hub.GlobalHub.Broadcast(hub.Event{Type: hub.EventTimerStarted, Payload: state})
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Timer started for %d seconds!", state.DurationSeconds)})
}

// StopTimer godoc
// @Summary      Stop the level timer
// @Description  Clears the advisory countdown on the current level.
// @Tags         admin
// @Produce      json
// @Security     SessionAuth
// @Success      200  {object}  MessageResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /admin/timer/stop [post]
func StopTimer(c *gin.Context) {
	if err := engine().StopTimer(); err != nil {
		respondEngineError(c, err)
		return
	}

	hub.GlobalHub.Broadcast(hub.Event{Type: hub.EventTimerStopped})
	c.JSON(http.StatusOK, gin.H{"message": "Timer stopped!"})
}

// GetDashboard godoc
// @Summary      Get the admin dashboard
// @Description  Returns the game snapshot plus every vote at the current level (with voter details) and the eliminated players list.
// @Tags         admin
// @Produce      json
// @Security     SessionAuth
// @Success      200  {object}  DashboardResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /admin/dashboard [get]
func GetDashboard(c *gin.Context) {
	eng := engine()

	snap, err := eng.Snapshot()
	if err != nil {
		respondEngineError(c, err)
		return
	}

	votes, err := eng.Votes(snap.CurrentLevel)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load votes"})
		return
	}

	eliminated, err := eng.EliminatedPlayers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load eliminated players"})
		return
	}

	c.JSON(http.StatusOK, DashboardResponse{
		SnapshotResponse:  newSnapshotResponse(snap),
		Votes:             votes,
		EliminatedPlayers: eliminated,
	})
}
