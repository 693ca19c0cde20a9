// Package session exposes CRUD endpoints for scheduled sessions
package session

import (
	"net/http"
	"slices"
	"time"

	"therapyhq/practice-api/internal"
	"therapyhq/practice-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var validStatuses = []string{model.SessionPlanned, model.SessionInProgress, model.SessionDone}

type sessionBody struct {
	ScheduledAt time.Time `json:"scheduled_at"`
	DurationMin int       `json:"duration_min"`
	Status      string    `json:"status"`
}

func SessionCreate(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	clientID := c.Query("client_id")
	if clientID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "No client_id provided",
			"requestID": requestID,
		})
		return
	}

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

	ctx := c.Request.Context()

	if _, err := d.Store.GetClient(ctx, clientID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "Client not found",
			"requestID": requestID,
		})
		return
	}

	session, err := d.Store.CreateSession(ctx, model.Session{
		ClientID:    clientID,
		ScheduledAt: data.ScheduledAt,
		DurationMin: data.DurationMin,
		Status:      data.Status,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create session", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, session)
}
