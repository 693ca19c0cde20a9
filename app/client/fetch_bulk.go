package client

import (
	"net/http"
	"strconv"

	"therapyhq/practice-api/internal"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func ClientFetchBulk(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	tenantID := c.Query("tenant_id")
	if tenantID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "No tenant_id provided",
			"requestID": requestID,
		})
		return
	}

	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	clients, err := d.Store.ListClients(c.Request.Context(), tenantID, skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to list clients", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, clients)
}
