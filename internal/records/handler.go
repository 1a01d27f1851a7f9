package records

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"treasurebook-backend/internal/shared/metrics"
	"treasurebook-backend/internal/shared/server/respond"
)

// Handler exposes record ingest and listing for development and tests.
type Handler struct {
	Store Store
}

// NewHandler constructs a Handler.
func NewHandler(store Store) *Handler {
	return &Handler{Store: store}
}

// RegisterRoutes attaches record routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/students/:id/records/:collection", h.putRecord)
	rg.GET("/students/:id/records/:collection", h.listRecords)
}

func (h *Handler) putRecord(c *gin.Context) {
	studentID, coll, ok := h.params(c)
	if !ok {
		return
	}
	var rec Record
	if err := c.ShouldBindJSON(&rec); err != nil || rec == nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "body must be a JSON object", nil)
		return
	}
	if err := h.Store.Put(c.Request.Context(), studentID, coll, rec); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to store record", nil)
		return
	}
	metrics.IncRecordsStored()
	respond.JSON(c, http.StatusCreated, gin.H{
		"studentId":  studentID,
		"collection": coll,
	})
}

func (h *Handler) listRecords(c *gin.Context) {
	studentID, coll, ok := h.params(c)
	if !ok {
		return
	}
	recs, err := h.Store.List(c.Request.Context(), studentID, coll)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list records", nil)
		return
	}
	respond.OK(c, recs)
}

func (h *Handler) params(c *gin.Context) (string, Collection, bool) {
	studentID := strings.TrimSpace(c.Param("id"))
	if studentID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "student id is required", nil)
		return "", "", false
	}
	c.Set("studentId", studentID)
	coll, err := ParseCollection(c.Param("collection"))
	if err != nil {
		respond.Error(c, http.StatusNotFound, "not_found", "unknown collection", []map[string]string{
			{"field": "collection", "issue": "unknown"},
		})
		return "", "", false
	}
	c.Set("collection", string(coll))
	return studentID, coll, true
}
