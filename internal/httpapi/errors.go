package httpapi

import (
	"errors"
	"net/http"

	"github.com/alexanderramin/goaltrack/internal/analytics"
	"github.com/alexanderramin/goaltrack/internal/domain"
	"github.com/alexanderramin/goaltrack/internal/repository"
	"github.com/gin-gonic/gin"
)

func statusFor(err error) int {
	var ve *domain.ValidationError
	switch {
	case errors.Is(err, analytics.ErrInvalidInput), errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
