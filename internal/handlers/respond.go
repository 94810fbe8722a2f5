package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"testprep-service/internal/models"
)

// userID returns the trusted user identifier injected by the gateway.
// Route middleware guarantees it is present on protected routes.
func userID(c *gin.Context) string {
	return c.GetHeader("X-User-ID")
}

func ok(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// fail translates domain errors into HTTP responses. Machine-readable codes
// are attached where clients branch on them.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrTestNotFound),
		errors.Is(err, models.ErrAttemptNotFound),
		errors.Is(err, models.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrAlreadyAttempted):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "You have already attempted this test",
			"code":  "ALREADY_ATTEMPTED",
		})
	case errors.Is(err, models.ErrTestInactive):
		c.JSON(http.StatusForbidden, gin.H{"error": "This test is currently inactive"})
	case errors.Is(err, models.ErrAccessDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
	case errors.Is(err, models.ErrEmptyTest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrIndexRequired):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Database index required",
			"code":  "INDEX_REQUIRED",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
