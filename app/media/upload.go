package media

import (
	"net/http"

	"therapyhq/practice-api/internal"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MediaUpload streams a multipart attachment to object storage and points
// the media record's url at the stored object
func MediaUpload(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	if d.Uploader == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":     "Object storage is not configured",
			"requestID": requestID,
		})
		return
	}

	ctx := c.Request.Context()

	media, err := d.Store.GetMedia(ctx, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "Media not found",
			"requestID": requestID,
		})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "No file provided",
			"requestID": requestID,
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to open multipart file", zap.Error(err), zap.String("requestID", requestID))
		return
	}
	defer file.Close()

	url, err := d.Uploader.Do(file, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to store attachment",
			"requestID": requestID,
		})

		zap.L().Error("Failed to upload attachment", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	media.URL = url

	updated, err := d.Store.UpdateMedia(ctx, media)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update media record", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, updated)
}
