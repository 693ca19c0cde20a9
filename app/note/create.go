// Package note exposes CRUD endpoints for free-text session notes
package note

import (
	"net/http"

	"therapyhq/practice-api/internal"
	"therapyhq/practice-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type noteBody struct {
	SessionID *string `json:"session_id"`
	BodyMD    string  `json:"body_md"`
}

func NoteCreate(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	authorID := c.Query("author_id")
	if authorID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "No author_id provided",
			"requestID": requestID,
		})
		return
	}

	var data noteBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	ctx := c.Request.Context()

	if _, err := d.Store.GetUser(ctx, authorID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "User not found",
			"requestID": requestID,
		})
		return
	}

	// Notes may float free of any session, a nil session_id is fine
	if data.SessionID != nil {
		if _, err := d.Store.GetSession(ctx, *data.SessionID); err != nil {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Session not found",
				"requestID": requestID,
			})
			return
		}
	}

	note, err := d.Store.CreateNote(ctx, model.Note{
		SessionID: data.SessionID,
		AuthorID:  authorID,
		BodyMD:    data.BodyMD,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create note", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, note)
}
