// Package activity pushes back-office events to connected admin dashboards
// over websocket, so a new submission shows up without a refresh.
package activity

import (
	"encoding/json"
	"sync"
	"time"

	"rampung/internal/domain"
	"rampung/internal/pkg/logger"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type Event struct {
	Type    string    `json:"type"`
	At      time.Time `json:"at"`
	Payload any       `json:"payload"`
}

// Hub fans events out to every connected dashboard. Connections that fail a
// write are dropped on the spot.
type Hub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{conns: make(map[*websocket.Conn]bool)}
}

func (h *Hub) register(conn *websocket.Conn) {
	h.mu.Lock()
	h.conns[conn] = true
	h.mu.Unlock()
}

func (h *Hub) unregister(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.conns, conn)
	h.mu.Unlock()
	conn.Close()
}

func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// Broadcast sends the event to all connected clients. Delivery is best
// effort; a slow or dead client loses its connection, not the hub.
func (h *Hub) Broadcast(ev Event) {
	msg, err := json.Marshal(ev)
	if err != nil {
		logger.Log.Error("marshal activity event", zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			delete(h.conns, conn)
			conn.Close()
		}
	}
}

// SubmissionCreated publishes a trimmed view of a fresh submission. Contact
// details stay out of the feed; the dashboard fetches them on demand.
func (h *Hub) SubmissionCreated(s *domain.Submission) {
	h.Broadcast(Event{
		Type: "submission.created",
		At:   time.Now(),
		Payload: map[string]any{
			"id":               s.PublicID,
			"name":             s.Name,
			"total_score":      s.TotalScore,
			"complexity_level": s.ComplexityLevel,
			"timeline_warning": s.TimelineWarning,
		},
	})
}
