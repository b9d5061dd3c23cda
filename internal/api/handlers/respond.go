package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/procureflow/backend-go/internal/nav"
	"github.com/procureflow/backend-go/internal/service"
	"github.com/procureflow/backend-go/internal/store"
	"github.com/rs/zerolog/log"
)

// fail maps domain errors onto HTTP statuses. Denials and not-founds are
// normal outcomes here, so only unexpected errors are logged loudly.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrForbidden), errors.Is(err, nav.ErrAccessDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, nav.ErrNotSignedIn):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

// positiveAmount validates the decimal-string amount fields.
func positiveAmount(amount string) bool {
	v, err := strconv.ParseFloat(amount, 64)

	return err == nil && v > 0
}
