package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ListAccounts is the administrative read: one row per role membership.
// Route guards restrict it to admin identities.
func (h *HTTPHandler) ListAccounts(c *gin.Context) {
	if h.repo == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "account repository not available"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	summaries, err := h.authService.ListAccounts(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to list accounts")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load accounts"})
		return
	}

	c.JSON(http.StatusOK, summaries)
}
