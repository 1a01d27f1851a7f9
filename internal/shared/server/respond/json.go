package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSON writes payload as the response body with the given status.
func JSON(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}

// OK writes a 200 with the payload unwrapped. Insight reports, rule configs and record
// lists are returned as-is; only errors use the {"error": ...} envelope.
func OK(c *gin.Context, payload any) {
	JSON(c, http.StatusOK, payload)
}
