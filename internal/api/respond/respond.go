// Package respond writes the uniform JSON envelopes used by every route.
package respond

import (
	"errors"
	"log/slog"
	"net/http"

	"portfolio-api/internal/apperror"

	"github.com/gin-gonic/gin"
)

// Status maps an error kind to its HTTP status.
func Status(err error) int {
	switch {
	case errors.Is(err, apperror.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrAuth):
		return http.StatusUnauthorized
	case errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrMethodNotAllowed):
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}

// Error writes {"error": msg} and aborts the chain. Client errors carry their
// own message; anything else is logged and reported as fallback.
func Error(c *gin.Context, log *slog.Logger, err error, fallback string) {
	status := Status(err)

	var appErr *apperror.AppError
	if status < http.StatusInternalServerError && errors.As(err, &appErr) {
		c.AbortWithStatusJSON(status, gin.H{"error": appErr.Message})
		return
	}

	if log == nil {
		log = slog.Default()
	}
	log.Error(fallback,
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.String("error", err.Error()),
	)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": fallback})
}

// Message aborts with a plain error message.
func Message(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

func OK(c *gin.Context, body any) {
	c.JSON(http.StatusOK, body)
}

// NotFound is the response for any path outside the route grammar.
func NotFound(c *gin.Context) {
	Message(c, http.StatusNotFound, "Not found")
}

// MethodNotAllowed is the response for a known path with the wrong verb.
func MethodNotAllowed(c *gin.Context) {
	Message(c, http.StatusMethodNotAllowed, "Method not allowed")
}
