package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyadlab/fabula/pkg/models"
	"github.com/dyadlab/fabula/pkg/services"
)

func TestWriteError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", fmt.Errorf("%w: batch b1", services.ErrNotFound), http.StatusNotFound},
		{"invalid input", fmt.Errorf("%w: bad strategy", services.ErrInvalidInput), http.StatusBadRequest},
		{"validation error", services.NewValidationError("actor_count", "must be >= 1"), http.StatusBadRequest},
		{"conflict", fmt.Errorf("%w: already paired", services.ErrConflict), http.StatusConflict},
		{"unauthorized", services.ErrUnauthorized, http.StatusForbidden},
		{"not implemented", fmt.Errorf("execution mode timed: %w", models.ErrNotImplemented), http.StatusNotImplemented},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)

			writeError(c, tt.err)

			assert.Equal(t, tt.status, rec.Code)
			require.Contains(t, rec.Header().Get("Content-Type"), "application/json")
			assert.Contains(t, rec.Body.String(), "error")
		})
	}
}
