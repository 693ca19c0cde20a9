package session

import (
	"errors"
	"net/http"
	"slices"

	"therapyhq/practice-api/internal"
	"therapyhq/practice-api/model"
	"therapyhq/practice-api/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func SessionEdit(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data sessionBody
	if err := c.ShouldBind(&data); err != nil || data.ScheduledAt.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "A scheduled_at timestamp is required",
			"requestID": requestID,
		})
		return
	}

	if data.Status != "" && !slices.Contains(validStatuses, data.Status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid session status provided",
			"requestID": requestID,
		})
		return
	}

	session, err := d.Store.UpdateSession(c.Request.Context(), model.Session{
		ID:          c.Param("id"),
		ScheduledAt: data.ScheduledAt,
		DurationMin: data.DurationMin,
		Status:      data.Status,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Session not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update session", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, session)
}
