package hub

import (
	"encoding/json"
	"sync"
)

// Event types broadcast to connected display and admin clients. Events are
// advisory refresh hints; the polling endpoints remain the source of truth.
const (
	EventGameStarted     = "game_started"
	EventGameReset       = "game_reset"
	EventVoteCast        = "vote_cast"
	EventVotingEnded     = "voting_ended"
	EventResultsRevealed = "results_revealed"
	EventLevelAdvanced   = "level_advanced"
	EventTimerStarted    = "timer_started"
	EventTimerStopped    = "timer_stopped"
	EventRegistration    = "registration_toggled"
)

// Event represents a real-time event to be sent to clients.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Client represents a single connected client. It's essentially a channel the
// SSE handler listens to.
type Client chan []byte

// Hub manages all connected clients for the single running game.
type Hub struct {
	clients map[Client]bool
	mu      sync.RWMutex
}

// GlobalHub is the singleton instance of our Hub.
var GlobalHub = NewHub()

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[Client]bool),
	}
}

// Subscribe adds a new client.
func (h *Hub) Subscribe(client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true
}

// Unsubscribe removes a client and closes its channel to signal the SSE
// handler to stop.
func (h *Hub) Unsubscribe(client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client)
	}
}

// Broadcast sends an event to every connected client.
func (h *Hub) Broadcast(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	messageBytes, err := json.Marshal(event)
	if err != nil {
		return
	}

	for client := range h.clients {
		// Non-blocking send so a slow client cannot stall the hub; a full
		// channel just drops the hint and the client catches up on its next
		// poll.
		select {
		case client <- messageBytes:
		default:
		}
	}
}
