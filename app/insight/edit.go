package insight

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

func InsightEdit(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

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

	insight, err := d.Store.UpdateInsight(c.Request.Context(), model.AIInsight{
		ID:      c.Param("id"),
		Kind:    data.Kind,
		Content: data.Content,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Insight not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update insight", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, insight)
}
