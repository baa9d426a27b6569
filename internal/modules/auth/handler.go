package auth

import (
	"errors"
	"net/http"

	"rampung/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the login endpoint outside the auth wall.
func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.POST("/auth/login", h.Login)
}

// RegisterProtectedRoutes mounts endpoints that need a valid token.
func (h *Handler) RegisterProtectedRoutes(r *gin.RouterGroup) {
	r.GET("/auth/me", h.Me)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Email and password are required")
		return
	}

	out, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, ErrInvalidCredentials) {
		response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
		return
	}
	if err != nil {
		response.Internal(c, "Failed to log in")
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) Me(c *gin.Context) {
	adminID := c.GetInt64("admin_id")
	if adminID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Not authenticated")
		return
	}

	user, err := h.service.Me(c.Request.Context(), adminID)
	if errors.Is(err, ErrInvalidCredentials) {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Account no longer exists")
		return
	}
	if err != nil {
		response.Internal(c, "Failed to load account")
		return
	}
	response.Success(c, http.StatusOK, user)
}
