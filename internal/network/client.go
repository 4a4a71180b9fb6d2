package network

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"

	"github.com/finlit-games/financial-island/server/internal/domain/world"
	"github.com/finlit-games/financial-island/server/internal/engine"
	"github.com/finlit-games/financial-island/server/internal/platform/metrics"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second
	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second
	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10
	// Maximum message size allowed from peer.
	maxMessageSize = 1024
)

// Client represents an active WebSocket connection.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// NewClient creates a new WebSocket client.
func NewClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		hub:  hub,
		conn: conn,
		send: make(chan []byte, 256),
	}
}

// Register adds the client to the hub.
func (c *Client) Register() {
	c.hub.register <- c
}

// PlayerAction is an incoming command from the presentation layer.
type PlayerAction struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Action payload shapes.
type (
	verbPayload     struct{ Verb string `json:"verb"` }
	targetPayload   struct{ TargetID string `json:"target_id"` }
	itemPayload     struct{ ItemID string `json:"item_id"` }
	responsePayload struct{ Index int `json:"index"` }
	quizPayload     struct {
		QuizID string `json:"quiz_id"`
		Index  int    `json:"index"`
	}
	moneyPayload struct {
		Kind   string  `json:"kind"`
		Amount float64 `json:"amount"`
	}
)

// ReadPump pumps messages from the websocket connection into the engine.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Error("WebSocket read error: " + err.Error())
			}
			break
		}
		metrics.WSMessages.WithLabelValues("in").Inc()

		var action PlayerAction
		if err := json.Unmarshal(message, &action); err != nil {
			c.hub.logger.Error("Failed to parse PlayerAction: " + err.Error())
			continue
		}

		c.handlePlayerAction(action)
	}
}

func (c *Client) handlePlayerAction(action PlayerAction) {
	if err := Dispatch(c.hub.session, action); err != nil {
		c.hub.logger.Warn(err.Error())
		return
	}
	c.hub.BroadcastSnapshot()
}

// Dispatch routes one PlayerAction into the engine. Shared by the websocket
// read pump and the HTTP action endpoint.
func Dispatch(session *engine.Session, action PlayerAction) error {
	switch action.Type {
	case "SELECT_VERB":
		var p verbPayload
		if err := json.Unmarshal(action.Payload, &p); err != nil {
			return fmt.Errorf("bad SELECT_VERB payload: %w", err)
		}
		session.SelectVerb(world.Verb(p.Verb))
	case "SELECT_ITEM":
		var p itemPayload
		if err := json.Unmarshal(action.Payload, &p); err != nil {
			return fmt.Errorf("bad SELECT_ITEM payload: %w", err)
		}
		session.SelectItem(world.ItemID(p.ItemID))
	case "INTERACT":
		var p targetPayload
		if err := json.Unmarshal(action.Payload, &p); err != nil {
			return fmt.Errorf("bad INTERACT payload: %w", err)
		}
		session.Interact(p.TargetID)
	case "DIALOGUE_RESPONSE":
		var p responsePayload
		if err := json.Unmarshal(action.Payload, &p); err != nil {
			return fmt.Errorf("bad DIALOGUE_RESPONSE payload: %w", err)
		}
		session.SelectDialogueResponse(p.Index)
	case "QUIZ_ANSWER":
		var p quizPayload
		if err := json.Unmarshal(action.Payload, &p); err != nil {
			return fmt.Errorf("bad QUIZ_ANSWER payload: %w", err)
		}
		session.AnswerQuiz(p.QuizID, p.Index)
	case "ADVANCE_DAY":
		session.AdvanceDay()
	case "BANKING":
		var p moneyPayload
		if err := json.Unmarshal(action.Payload, &p); err != nil {
			return fmt.Errorf("bad BANKING payload: %w", err)
		}
		session.BankingAction(p.Kind, p.Amount)
	case "INVEST":
		var p moneyPayload
		if err := json.Unmarshal(action.Payload, &p); err != nil {
			return fmt.Errorf("bad INVEST payload: %w", err)
		}
		session.InvestmentAction(p.Kind, p.Amount)
	case "DEBT":
		var p moneyPayload
		if err := json.Unmarshal(action.Payload, &p); err != nil {
			return fmt.Errorf("bad DEBT payload: %w", err)
		}
		session.DebtAction(p.Kind, p.Amount)
	case "SNAPSHOT":
		// No engine input; the caller pushes the current snapshot.
	default:
		return fmt.Errorf("unknown PlayerAction type: %s", action.Type)
	}
	return nil
}

// WritePump pumps messages from the hub to the websocket connection.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel.
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			// Add queued messages to the current websocket message.
			n := len(c.send)
			for i := 0; i < n; i++ {
				w.Write([]byte{'\n'})
				w.Write(<-c.send)
			}

			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
