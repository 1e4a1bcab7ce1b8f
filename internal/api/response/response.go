// Package response owns the error wire format: {"error": ..., "details": ...}.
// Success payloads are endpoint-specific and written directly by controllers.
package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leon37/SavingsCoach/internal/apperr"
)

// Error writes a plain error body with the given status.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// Err is the terminal error formatter: typed errors keep their status,
// everything else is a 500. Details leak only outside release mode.
func Err(c *gin.Context, err error) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, appErr)
		return
	}

	slog.Error("request failed", "path", c.FullPath(), "err", err)
	body := gin.H{"error": "Internal server error"}
	if gin.Mode() != gin.ReleaseMode {
		body["details"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}
