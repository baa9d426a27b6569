package testimonial

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

func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.GET("/testimonials", h.ListPublished)
}

func (h *Handler) RegisterAdminRoutes(r *gin.RouterGroup) {
	r.GET("/testimonials", h.ListAll)
	r.POST("/testimonials", h.Create)
	r.GET("/testimonials/:id", h.Get)
	r.PUT("/testimonials/:id", h.Update)
	r.DELETE("/testimonials/:id", h.Delete)
}

func (h *Handler) ListPublished(c *gin.Context) {
	items, err := h.service.List(c.Request.Context(), true)
	if err != nil {
		response.Internal(c, "Failed to list testimonials")
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) ListAll(c *gin.Context) {
	items, err := h.service.List(c.Request.Context(), false)
	if err != nil {
		response.Internal(c, "Failed to list testimonials")
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	t, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err, "Failed to create testimonial")
		return
	}
	response.Success(c, http.StatusCreated, t)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	t, err := h.service.Get(c.Request.Context(), id)
	if errors.Is(err, ErrNotFound) {
		response.NotFound(c, "Testimonial not found")
		return
	}
	if err != nil {
		response.Internal(c, "Failed to load testimonial")
		return
	}
	response.Success(c, http.StatusOK, t)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	t, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err, "Failed to update testimonial")
		return
	}
	response.Success(c, http.StatusOK, t)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	err := h.service.Delete(c.Request.Context(), id)
	if errors.Is(err, ErrNotFound) {
		response.NotFound(c, "Testimonial not found")
		return
	}
	if err != nil {
		response.Internal(c, "Failed to delete testimonial")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid testimonial payload", verr.Fields)
	case errors.Is(err, ErrNotFound):
		response.NotFound(c, "Testimonial not found")
	default:
		response.Internal(c, fallback)
	}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid testimonial id")
		return 0, false
	}
	return id, true
}
