// server/internal/api/handlers/websocket_handler.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"a2z-ipm-api-server/config"
	"a2z-ipm-api-server/internal/auth"
	"a2z-ipm-api-server/internal/socket"
)

// Maximum wait between client heartbeats.
const pongWait = 30 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WebSocketHandler struct {
	Hub  *socket.Hub
	Auth *auth.Service
}

// ServeWs upgrades the connection and keeps it registered until the client
// disappears. Browsers cannot set headers on WebSocket requests, so the
// token arrives as a query parameter instead.
func (h *WebSocketHandler) ServeWs(c *gin.Context) {
	tokenString := c.Query("token")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is required"})
		return
	}

	claims, err := h.Auth.ParseJWT(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}
	userKey := claims.UserKey

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		config.LogError(config.GetLogger(), "handlers", "ServeWs", "upgrade connection", userKey, err)
		return
	}

	h.Hub.Register(userKey, conn)

	defer func() {
		h.Hub.Unregister(userKey)
		conn.Close()
	}()

	conn.SetReadDeadline(time.Now().Add(pongWait))
	// A PING from the client extends the deadline; gorilla answers with PONG
	// on its own.
	conn.SetPingHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				config.GetLogger().WithError(err).Warn("websocket closed unexpectedly")
			}
			break
		}
	}
}
