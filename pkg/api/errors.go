package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dyadlab/fabula/ent"
	"github.com/dyadlab/fabula/pkg/models"
	"github.com/dyadlab/fabula/pkg/services"
)

// writeError maps service errors onto HTTP status codes.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrNotFound) || ent.IsNotFound(err):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrInvalidInput) || services.IsValidationError(err):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, services.ErrUnauthorized):
		status = http.StatusForbidden
	case errors.Is(err, models.ErrNotImplemented):
		status = http.StatusNotImplemented
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
