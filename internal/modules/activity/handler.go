package activity

import (
	"net/http"

	jwtsvc "rampung/internal/pkg/jwt"
	"rampung/internal/pkg/logger"
	"rampung/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type Handler struct {
	hub *Hub
	jwt *jwtsvc.Service
}

func NewHandler(hub *Hub, jwt *jwtsvc.Service) *Handler {
	return &Handler{hub: hub, jwt: jwt}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/activity/ws", h.Serve)
}

// Serve upgrades the connection and parks it in the hub. The token travels
// as a query parameter because browsers cannot set headers on a websocket
// handshake.
func (h *Handler) Serve(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing token")
		return
	}
	claims, err := h.jwt.ValidateToken(token)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	h.hub.register(conn)
	logger.Log.Info("activity client connected", zap.Int64("admin_id", claims.AdminID))

	defer func() {
		h.hub.unregister(conn)
		logger.Log.Info("activity client disconnected", zap.Int64("admin_id", claims.AdminID))
	}()

	// The feed is one-way; the read loop only notices the client going away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
