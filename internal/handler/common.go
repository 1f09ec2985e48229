package handler

import (
	"net/http"

	"github.com/sanyamseac/game/internal/database"
	"github.com/sanyamseac/game/internal/game"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// MessageResponse represents a generic success message.
type MessageResponse struct {
	Message string `json:"message" example:"Operation completed"`
}

// engine returns a progression engine over the shared database handle. The
// handle is set after handler package init, so this cannot be a package var.
func engine() *game.Engine {
	return game.NewEngine(database.DB)
}

// respondEngineError maps a game engine error to an HTTP status. Unknown
// errors become a 500 without leaking internals.
func respondEngineError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch game.KindOf(err) {
	case game.KindUnauthorized:
		status, message = http.StatusUnauthorized, err.Error()
	case game.KindForbidden, game.KindEliminated:
		status, message = http.StatusForbidden, err.Error()
	case game.KindNotFound:
		status, message = http.StatusNotFound, err.Error()
	case game.KindInvalidInput:
		status, message = http.StatusBadRequest, err.Error()
	case game.KindStateConflict:
		status, message = http.StatusConflict, err.Error()
	}

	c.JSON(status, gin.H{"error": message})
}
