package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"treasurebook-backend/internal/shared/server/respond"
	"treasurebook-backend/internal/shared/telemetry"
)

// Recovery turns a handler panic into a 500 `internal` error body. The log line carries
// the student the request was for, when a handler recorded one before panicking.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			fields := map[string]any{
				"request_id": RequestIDFromContext(c),
				"error":      fmt.Sprint(rec),
				"stack":      string(debug.Stack()),
				"method":     c.Request.Method,
				"path":       c.Request.URL.Path,
				"route":      c.FullPath(),
			}
			if studentID := StudentIDFromContext(c); studentID != "" {
				fields["student_id"] = studentID
			}
			telemetry.Error("request.panic", fields)
			respond.Error(c, http.StatusInternalServerError, "internal", "Unexpected server error", nil)
			c.Abort()
		}()
		c.Next()
	}
}
