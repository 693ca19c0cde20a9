package client

import (
	"errors"
	"net/http"

	"therapyhq/practice-api/internal"
	"therapyhq/practice-api/model"
	"therapyhq/practice-api/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func ClientEdit(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data clientBody
	if err := c.ShouldBind(&data); err != nil || data.FullName == "" || len(data.FullName) > 120 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Client name must be between 1 and 120 characters",
			"requestID": requestID,
		})
		return
	}

	client, err := d.Store.UpdateClient(c.Request.Context(), model.Client{
		ID:       c.Param("id"),
		FullName: data.FullName,
		Birthday: data.Birthday,
		Tags:     model.StringSlice(data.Tags),
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Client not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update client", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, client)
}
