package respond

import (
	"github.com/gin-gonic/gin"

	"github.com/Rithb898/AI-Application-Assistant/internal/shared/telemetry"
)

// ErrorBody is the uniform error payload. Every failure response carries a
// short human-readable message and, where useful, a details string. Errors are
// never embedded in a 200 body.
type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Error sends a standardized error response and aborts the request.
func Error(c *gin.Context, status int, message, details string) {
	fields := map[string]any{
		"status":     status,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if userID := c.GetString("userId"); userID != "" {
		fields["user_id"] = userID
	}
	telemetry.Error("http.error", fields)

	c.AbortWithStatusJSON(status, ErrorBody{
		Error:   message,
		Details: details,
	})
}
