// server/internal/socket/hub.go
package socket

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"a2z-ipm-api-server/config"
)

// ChangeEvent tells connected clients that a collection changed and which
// document moved, so they can refetch what they display.
type ChangeEvent struct {
	Collection string `json:"collection"`
	Action     string `json:"action"` // created, updated, deleted
	Key        string `json:"key"`
}

// Hub tracks every connected WebSocket client, keyed by user key. A user
// reconnecting replaces their previous connection.
type Hub struct {
	clients map[string]*websocket.Conn
	mu      sync.RWMutex
	log     *logrus.Logger
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*websocket.Conn),
		log:     config.GetLogger(),
	}
}

// Register adds a client connection to the hub.
func (h *Hub) Register(userKey string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[userKey] = conn
	h.log.WithField("userKey", userKey).Info("websocket client registered")
}

// Unregister removes a client from the hub.
func (h *Hub) Unregister(userKey string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[userKey]; ok {
		delete(h.clients, userKey)
		h.log.WithField("userKey", userKey).Info("websocket client unregistered")
	}
}

// Send delivers a message to one client. An offline client is not an error.
func (h *Hub) Send(userKey string, message []byte) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	conn, ok := h.clients[userKey]
	if !ok {
		return nil
	}
	return conn.WriteMessage(websocket.TextMessage, message)
}

// Broadcast pushes a change event to every connected client. Write failures
// are logged and skipped; the read loop will reap dead connections.
func (h *Hub) Broadcast(event ChangeEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		config.LogError(h.log, "socket", "Broadcast", "marshal change event", event, err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for userKey, conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.log.WithField("userKey", userKey).WithError(err).Warn("websocket write failed")
		}
	}
}
