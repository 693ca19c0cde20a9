// Package tenant exposes organization management endpoints
package tenant

import (
	"net/http"

	"therapyhq/practice-api/internal"
	"therapyhq/practice-api/model"
	"therapyhq/practice-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type createBody struct {
	Name string `json:"name"`
	Plan string `json:"plan"`
}

func TenantCreate(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data createBody
	if err := c.ShouldBind(&data); err != nil || data.Name == "" || len(data.Name) > 120 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Organization name must be between 1 and 120 characters",
			"requestID": requestID,
		})
		return
	}

	if err := validators.PlanValidator(data.Plan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	tenant, err := d.Store.CreateTenant(c.Request.Context(), model.Tenant{
		Name: data.Name,
		Plan: data.Plan,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create tenant", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, tenant)
}
