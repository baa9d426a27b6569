package diagnostic

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

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/diagnostic", h.Submit)
}

// Submit accepts a completed questionnaire draft, scores it and stores it.
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitDiagnosticRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	sub, err := h.service.Submit(c.Request.Context(), req.ToDraft())
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid submission", verr.Fields)
			return
		}
		response.Internal(c, "Failed to save submission")
		return
	}

	response.Success(c, http.StatusCreated, SubmitDiagnosticResponse{
		ID:              sub.PublicID,
		TotalScore:      sub.TotalScore,
		ComplexityLevel: sub.ComplexityLevel,
	})
}
