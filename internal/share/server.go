// Package share publishes the canvas to read-only viewers on the local
// network. It is strictly a consumer of the controller's change callback:
// the annotation engine itself has no network surface.
package share

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"InkNotes/internal/ink"

	"github.com/gorilla/websocket"
)

// Hub upgrades viewers to WebSocket and broadcasts the latest drawing as
// JSON (the persisted stroke shape) after every change. New viewers
// immediately receive the current snapshot; viewers whose writes fail are
// dropped.
//
// All connection writes happen under the hub mutex, which also keeps
// gorilla's one-concurrent-writer rule satisfied. That is plenty for a
// handful of LAN viewers.
type Hub struct {
	log      *slog.Logger
	upgrader websocket.Upgrader

	mu      sync.Mutex
	viewers map[*websocket.Conn]bool
	latest  []byte
}

// NewHub creates a hub logging through log, or silently when log is nil.
func NewHub(log *slog.Logger) *Hub {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Hub{
		log: log,
		upgrader: websocket.Upgrader{
			// Viewers connect from other devices on the LAN.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		viewers: make(map[*websocket.Conn]bool),
	}
}

// ServeHTTP upgrades the request, sends the current snapshot and keeps the
// viewer registered until its connection dies.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("viewer upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	h.mu.Lock()
	h.viewers[conn] = true
	if h.latest != nil {
		if err := conn.WriteMessage(websocket.TextMessage, h.latest); err != nil {
			delete(h.viewers, conn)
			h.mu.Unlock()
			conn.Close()
			return
		}
	}
	h.mu.Unlock()
	h.log.Info("viewer connected", "remote", conn.RemoteAddr())

	// Viewers are read-only; the read pump only exists to notice EOF and
	// answer control frames.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.drop(conn, err)
			return
		}
	}
}

// Publish broadcasts a drawing snapshot to all viewers. It is called from
// the UI event loop via the controller's change callback; the payload the
// callback hands over is already a deep copy, so marshaling here never
// races with the controller.
func (h *Hub) Publish(d ink.Drawing) {
	data, err := json.Marshal(d)
	if err != nil {
		h.log.Error("marshal drawing", "error", err)
		return
	}

	var failed []*websocket.Conn
	h.mu.Lock()
	h.latest = data
	for c := range h.viewers {
		if err := c.WriteMessage(websocket.TextMessage, data); err != nil {
			delete(h.viewers, c)
			failed = append(failed, c)
		}
	}
	h.mu.Unlock()

	for _, c := range failed {
		c.Close()
		h.log.Info("viewer dropped", "remote", c.RemoteAddr())
	}
}

// ViewerCount returns the number of connected viewers.
func (h *Hub) ViewerCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.viewers)
}

// Close disconnects all viewers.
func (h *Hub) Close() {
	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.viewers))
	for c := range h.viewers {
		conns = append(conns, c)
	}
	h.viewers = make(map[*websocket.Conn]bool)
	h.mu.Unlock()

	for _, c := range conns {
		c.Close()
	}
}

func (h *Hub) drop(conn *websocket.Conn, err error) {
	h.mu.Lock()
	_, present := h.viewers[conn]
	delete(h.viewers, conn)
	h.mu.Unlock()
	conn.Close()
	if present {
		h.log.Info("viewer disconnected", "remote", conn.RemoteAddr(), "reason", err)
	}
}
