package insights

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"treasurebook-backend/internal/shared/server/respond"
)

// UnavailableMessage is shown when no report could be produced.
const UnavailableMessage = "Insights unavailable, please add more data"

// Handler wires HTTP handlers to the insights service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches insight routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/students/:id/insights", h.getInsights)
	rg.GET("/insights/rules", h.getRules)
}

func (h *Handler) getInsights(c *gin.Context) {
	studentID := strings.TrimSpace(c.Param("id"))
	if studentID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "student id is required", nil)
		return
	}
	c.Set("studentId", studentID)

	report, err := h.Svc.Generate(c.Request.Context(), studentID)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnavailable):
			respond.Error(c, http.StatusNotFound, "insights_unavailable", UnavailableMessage, nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate insights", nil)
		}
		return
	}
	respond.OK(c, report)
}

func (h *Handler) getRules(c *gin.Context) {
	respond.OK(c, h.Svc.Rules.Config())
}
