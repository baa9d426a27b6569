package activity

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"rampung/internal/domain"
	jwtsvc "rampung/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T, hub *Hub, jwt *jwtsvc.Service) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(hub, jwt).RegisterRoutes(r.Group("/admin"))
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server, token string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/admin/activity/ws?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() != n {
		if time.Now().After(deadline) {
			t.Fatalf("expected %d clients, have %d", n, hub.ClientCount())
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestServe_RejectsBadToken(t *testing.T) {
	jwt := jwtsvc.New("test-secret", time.Hour)
	srv := startServer(t, NewHub(), jwt)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/admin/activity/ws?token=garbage"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestBroadcast_ReachesAllClients(t *testing.T) {
	jwt := jwtsvc.New("test-secret", time.Hour)
	token, err := jwt.GenerateToken(1, string(domain.RoleAdmin))
	require.NoError(t, err)

	hub := NewHub()
	srv := startServer(t, hub, jwt)

	first := dial(t, srv, token)
	second := dial(t, srv, token)
	waitForClients(t, hub, 2)

	hub.SubmissionCreated(&domain.Submission{
		PublicID:        "abc-123",
		Name:            "Rina Wijaya",
		TotalScore:      14,
		ComplexityLevel: domain.ComplexityMedium,
	})

	for _, conn := range []*websocket.Conn{first, second} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, msg, err := conn.ReadMessage()
		require.NoError(t, err)

		var ev Event
		require.NoError(t, json.Unmarshal(msg, &ev))
		assert.Equal(t, "submission.created", ev.Type)

		payload := ev.Payload.(map[string]any)
		assert.Equal(t, "abc-123", payload["id"])
		assert.Equal(t, float64(14), payload["total_score"])
		_, hasEmail := payload["email"]
		assert.False(t, hasEmail)
	}
}

func TestUnregister_OnDisconnect(t *testing.T) {
	jwt := jwtsvc.New("test-secret", time.Hour)
	token, err := jwt.GenerateToken(1, string(domain.RoleAdmin))
	require.NoError(t, err)

	hub := NewHub()
	srv := startServer(t, hub, jwt)

	conn := dial(t, srv, token)
	waitForClients(t, hub, 1)

	conn.Close()
	waitForClients(t, hub, 0)
}
