// Package user exposes the administrative user management endpoints.
// Self-service signup lives in the auth package.
package user

import (
	"errors"
	"net/http"

	"therapyhq/practice-api/internal"
	"therapyhq/practice-api/model"
	"therapyhq/practice-api/store"
	"therapyhq/practice-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type createBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Locale   string `json:"locale"`
}

// UserCreate adds a user to an existing tenant. Unlike self-registration
// the account comes out verified, an administrator vouched for it.
func UserCreate(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	tenantID := c.Query("tenant_id")
	if tenantID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "No tenant_id provided",
			"requestID": requestID,
		})
		return
	}

	var data createBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	if err := validators.EmailValidator(data.Email); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	if err := validators.PasswordValidator(data.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	if err := validators.RoleValidator(data.Role); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
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

	user, err := d.Store.CreateUserWithPassword(ctx, model.User{
		TenantID: tenantID,
		Email:    data.Email,
		Role:     data.Role,
		Locale:   data.Locale,
	}, data.Password)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     "Email already registered",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, user)
}
