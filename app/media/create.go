// Package media exposes CRUD endpoints for session attachments plus the
// upload path that pushes the raw file to object storage
package media

import (
	"net/http"
	"slices"

	"therapyhq/practice-api/internal"
	"therapyhq/practice-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var validTypes = []string{model.MediaAudio, model.MediaVideo, model.MediaImage}

type mediaBody struct {
	Type          string        `json:"type"`
	URL           string        `json:"url"`
	Transcription model.JSONMap `json:"transcription"`
}

func MediaCreate(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "No session_id provided",
			"requestID": requestID,
		})
		return
	}

	var data mediaBody
	if err := c.ShouldBind(&data); err != nil || data.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "A url is required",
			"requestID": requestID,
		})
		return
	}

	if data.Type != "" && !slices.Contains(validTypes, data.Type) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid media type provided",
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

	media, err := d.Store.CreateMedia(ctx, model.Media{
		SessionID:     sessionID,
		Type:          data.Type,
		URL:           data.URL,
		Transcription: data.Transcription,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create media record", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, media)
}
