// Package network carries the presentation boundary: player actions arrive
// over WebSocket frames and the full state snapshot goes back after every
// applied input.
package network

import (
	"context"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/finlit-games/financial-island/server/internal/engine"
	"github.com/finlit-games/financial-island/server/internal/events"
	"github.com/finlit-games/financial-island/server/internal/platform/logger"
	"github.com/finlit-games/financial-island/server/internal/platform/metrics"
)

// Hub maintains the set of active clients and broadcasts frames to them.
type Hub struct {
	session    *engine.Session
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	mu         sync.Mutex
	logger     *logger.Logger
}

// NewHub initializes a hub bound to one game session.
func NewHub(session *engine.Session, log *logger.Logger) *Hub {
	return &Hub{
		session:    session,
		broadcast:  make(chan []byte),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		logger:     log,
	}
}

// Session exposes the hub's game session for the HTTP API.
func (h *Hub) Session() *engine.Session {
	return h.session
}

// Run starts the hub's main loop to handle connections and broadcasts.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.logger.Info("WebSocket hub shutting down.")
			return
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			metrics.WSConnections.Inc()
			h.logger.Info("New WebSocket client connected")
		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				metrics.WSConnections.Dec()
				h.logger.Info("WebSocket client disconnected")
			}
			h.mu.Unlock()
		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
					metrics.WSMessages.WithLabelValues("out").Inc()
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Frame is the envelope for every server-to-client message.
type Frame struct {
	Type    string      `json:"type"` // "snapshot" or "event"
	Payload interface{} `json:"payload"`
}

// BroadcastSnapshot pushes the current game state to every client.
func (h *Hub) BroadcastSnapshot() {
	h.broadcastFrame(Frame{Type: "snapshot", Payload: h.session.Snapshot()})
}

func (h *Hub) broadcastFrame(frame Frame) {
	payload, err := json.Marshal(frame)
	if err != nil {
		h.logger.Error("Failed to serialize frame for broadcast: " + err.Error())
		return
	}
	h.broadcast <- payload
}

// StartEventPoller spawns a goroutine that tails the transcript and pushes
// new events to connected clients.
func (h *Hub) StartEventPoller(ctx context.Context, eventLog *events.EventLog) {
	go func() {
		pollInterval := time.NewTicker(200 * time.Millisecond)
		defer pollInterval.Stop()

		lastProcessed := 0

		for {
			select {
			case <-ctx.Done():
				return
			case <-pollInterval.C:
				all := eventLog.Replay()
				if len(all) > lastProcessed {
					for _, event := range all[lastProcessed:] {
						h.broadcastFrame(Frame{Type: "event", Payload: event})
					}
					lastProcessed = len(all)
				}
			}
		}
	}()
}
