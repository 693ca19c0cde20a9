// Package client exposes CRUD endpoints for a tenant's clients
package client

import (
	"net/http"
	"time"

	"therapyhq/practice-api/internal"
	"therapyhq/practice-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type clientBody struct {
	FullName string     `json:"full_name"`
	Birthday *time.Time `json:"birthday"`
	Tags     []string   `json:"tags"`
}

func ClientCreate(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	tenantID := c.Query("tenant_id")
	if tenantID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "No tenant_id provided",
			"requestID": requestID,
		})
		return
	}

	var data clientBody
	if err := c.ShouldBind(&data); err != nil || data.FullName == "" || len(data.FullName) > 120 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Client name must be between 1 and 120 characters",
			"requestID": requestID,
		})
		return
	}

	ctx := c.Request.Context()

	if _, err := d.Store.GetTenant(ctx, tenantID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "Tenant not found",
			"requestID": requestID,
		})
		return
	}

	client, err := d.Store.CreateClient(ctx, model.Client{
		TenantID: tenantID,
		FullName: data.FullName,
		Birthday: data.Birthday,
		Tags:     model.StringSlice(data.Tags),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create client", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, client)
}
