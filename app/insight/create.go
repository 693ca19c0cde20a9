// Package insight exposes CRUD endpoints for AI-generated session insights
package insight

import (
	"net/http"
	"slices"

	"therapyhq/practice-api/internal"
	"therapyhq/practice-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var validKinds = []string{model.InsightSummary, model.InsightTrigger, model.InsightTodo}

type insightBody struct {
	Kind    string        `json:"kind"`
	Content model.JSONMap `json:"content_json"`
}

func InsightCreate(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "No session_id provided",
			"requestID": requestID,
		})
		return
	}

	var data insightBody
	if err := c.ShouldBind(&data); err != nil || data.Content == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "A content_json payload is required",
			"requestID": requestID,
		})
		return
	}

	if data.Kind != "" && !slices.Contains(validKinds, data.Kind) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid insight kind provided",
			"requestID": requestID,
		})
		return
	}

	ctx := c.Request.Context()

	if _, err := d.Store.GetSession(ctx, sessionID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "Session not found",
			"requestID": requestID,
		})
		return
	}

	insight, err := d.Store.CreateInsight(ctx, model.AIInsight{
		SessionID: sessionID,
		Kind:      data.Kind,
		Content:   data.Content,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create insight", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, insight)
}
