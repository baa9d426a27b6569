package admin

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"rampung/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/submissions", h.List)
	r.GET("/submissions/export", h.Export)
	r.GET("/submissions/:id", h.Get)
	r.PATCH("/submissions/:id", h.Update)
	r.DELETE("/submissions/:id", h.Delete)
	r.GET("/stats", h.Stats)
}

func (h *Handler) List(c *gin.Context) {
	var q ListSubmissionsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_QUERY", "Invalid query parameters")
		return
	}

	out, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		response.Internal(c, "Failed to list submissions")
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	sub, err := h.service.Get(c.Request.Context(), id)
	if errors.Is(err, ErrNotFound) {
		response.NotFound(c, "Submission not found")
		return
	}
	if err != nil {
		response.Internal(c, "Failed to load submission")
		return
	}
	response.Success(c, http.StatusOK, sub)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	sub, err := h.service.Update(c.Request.Context(), id, req)
	switch {
	case errors.Is(err, ErrNotFound):
		response.NotFound(c, "Submission not found")
	case errors.Is(err, ErrInvalidStatus):
		response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Unknown submission status")
	case errors.Is(err, ErrNoFields):
		response.Error(c, http.StatusBadRequest, "NO_FIELDS", "Request contains no updatable fields")
	case err != nil:
		response.Internal(c, "Failed to update submission")
	default:
		response.Success(c, http.StatusOK, sub)
	}
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	err := h.service.Delete(c.Request.Context(), id)
	if errors.Is(err, ErrNotFound) {
		response.NotFound(c, "Submission not found")
		return
	}
	if err != nil {
		response.Internal(c, "Failed to delete submission")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) Stats(c *gin.Context) {
	out, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Internal(c, "Failed to compute stats")
		return
	}
	response.Success(c, http.StatusOK, out)
}

// Export streams the filtered listing as a CSV attachment.
func (h *Handler) Export(c *gin.Context) {
	var q ListSubmissionsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_QUERY", "Invalid query parameters")
		return
	}

	data, err := h.service.ExportCSV(c.Request.Context(), q)
	if err != nil {
		response.Internal(c, "Failed to export submissions")
		return
	}

	filename := "submissions-" + time.Now().Format("2006-01-02") + ".csv"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid submission id")
		return 0, false
	}
	return id, true
}
