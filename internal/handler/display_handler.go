package handler

import (
	"io"
	"net/http"

	"github.com/sanyamseac/game/internal/config"
	"github.com/sanyamseac/game/internal/game"
	"github.com/sanyamseac/game/internal/hub"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
)

// recentVoteLimit caps the vote feed shown on the spectator display.
const recentVoteLimit = 10

// DisplayResponse is the spectator display payload.
type DisplayResponse struct {
	SnapshotResponse
	RecentVotes []game.VoteRecord `json:"recent_votes"`
}

// GetDisplay godoc
// @Summary      Get the spectator display
// @Description  Returns the game snapshot plus the most recent votes for the big-screen display. No authentication required.
// @Tags         display
// @Produce      json
// @Success      200  {object}  DisplayResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /display [get]
func GetDisplay(c *gin.Context) {
	eng := engine()

	snap, err := eng.Snapshot()
	if err != nil {
		respondEngineError(c, err)
		return
	}

	recent, err := eng.RecentVotes(snap.CurrentLevel, recentVoteLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load votes"})
		return
	}

	c.JSON(http.StatusOK, DisplayResponse{
		SnapshotResponse: newSnapshotResponse(snap),
		RecentVotes:      recent,
	})
}

// GetDisplayQR godoc
// @Summary      Get the join QR code
// @Description  Returns a PNG QR code pointing at the registration page, for the spectator display.
// @Tags         display
// @Produce      png
// @Success      200  {string}  binary
// @Failure      500  {object}  ErrorResponse
// @Router       /display/qr [get]
func GetDisplayQR(c *gin.Context) {
	png, err := qrcode.Encode(config.AppConfig.PublicURL+"/login", qrcode.Medium, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate QR code"})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// StreamEvents godoc
// @Summary      Subscribe to game events
// @Description  Server-sent event stream of game lifecycle events (votes, reveals, level changes). Advisory refresh hints for display and admin pages.
// @Tags         display
// @Produce      text/event-stream
// @Success      200  {string}  string
// @Router       /events [get]
func StreamEvents(c *gin.Context) {
	client := make(hub.Client, 16)
	hub.GlobalHub.Subscribe(client)
	defer hub.GlobalHub.Unsubscribe(client)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case message, ok := <-client:
			if !ok {
				return false
			}
			c.SSEvent("message", string(message))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
