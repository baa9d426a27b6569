package portfolio

import (
	"errors"
	"net/http"
	"strconv"

	"rampung/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes exposes the published portfolio to the website.
func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.GET("/portfolio", h.ListPublished)
	r.GET("/portfolio/:slug", h.GetPublished)
}

// RegisterAdminRoutes exposes full CRUD to the back office.
func (h *Handler) RegisterAdminRoutes(r *gin.RouterGroup) {
	r.GET("/portfolio", h.ListAll)
	r.POST("/portfolio", h.Create)
	r.GET("/portfolio/:id", h.Get)
	r.PUT("/portfolio/:id", h.Update)
	r.DELETE("/portfolio/:id", h.Delete)
}

func (h *Handler) ListPublished(c *gin.Context) {
	items, err := h.service.List(c.Request.Context(), true)
	if err != nil {
		response.Internal(c, "Failed to list portfolio")
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) GetPublished(c *gin.Context) {
	p, err := h.service.GetPublished(c.Request.Context(), c.Param("slug"))
	if errors.Is(err, ErrNotFound) {
		response.NotFound(c, "Portfolio item not found")
		return
	}
	if err != nil {
		response.Internal(c, "Failed to load portfolio item")
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) ListAll(c *gin.Context) {
	items, err := h.service.List(c.Request.Context(), false)
	if err != nil {
		response.Internal(c, "Failed to list portfolio")
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreatePortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	p, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err, "Failed to create portfolio item")
		return
	}
	response.Success(c, http.StatusCreated, p)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	p, err := h.service.Get(c.Request.Context(), id)
	if errors.Is(err, ErrNotFound) {
		response.NotFound(c, "Portfolio item not found")
		return
	}
	if err != nil {
		response.Internal(c, "Failed to load portfolio item")
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdatePortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	p, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err, "Failed to update portfolio item")
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	err := h.service.Delete(c.Request.Context(), id)
	if errors.Is(err, ErrNotFound) {
		response.NotFound(c, "Portfolio item not found")
		return
	}
	if err != nil {
		response.Internal(c, "Failed to delete portfolio item")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid portfolio payload", verr.Fields)
	case errors.Is(err, ErrSlugTaken):
		response.Error(c, http.StatusConflict, "SLUG_TAKEN", "Slug already in use")
	case errors.Is(err, ErrNotFound):
		response.NotFound(c, "Portfolio item not found")
	default:
		response.Internal(c, fallback)
	}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid portfolio id")
		return 0, false
	}
	return id, true
}
