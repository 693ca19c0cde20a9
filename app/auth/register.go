package auth

import (
	"errors"
	"net/http"

	"therapyhq/practice-api/internal"
	"therapyhq/practice-api/model"
	"therapyhq/practice-api/pkg/security"
	"therapyhq/practice-api/store"
	"therapyhq/practice-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Collisions on the verification token's unique index are close to
// impossible, the retry is there so one never turns into a 500
const tokenRetries = 3

type registerBody struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	TenantName string `json:"tenant_name"`
	Role       string `json:"role"`
	Locale     string `json:"locale"`
}

func Register(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data registerBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
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

	if data.TenantName == "" || len(data.TenantName) > 120 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Organization name must be between 1 and 120 characters",
			"requestID": requestID,
		})
		return
	}

	if data.Locale == "" {
		data.Locale = "en"
	}

	ctx := c.Request.Context()

	_, err := d.Store.GetUserByEmail(ctx, data.Email)
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Email already registered",
			"requestID": requestID,
		})
		return
	}

	if !errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to check if email is registered", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	// A registration always creates a fresh tenant, even when one with the
	// same display name exists. Deduping here would silently merge
	// unrelated organizations.
	tenant, err := d.Store.CreateTenant(ctx, model.Tenant{Name: data.TenantName})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create tenant", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	hash, err := d.Argon.GenerateFromPassword(data.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to hash password", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	var user model.User

	for attempt := 0; ; attempt++ {
		token, err := security.GenerateVerificationToken()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to generate verification token", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		user, err = d.Store.CreateUser(ctx, model.User{
			TenantID:          tenant.ID,
			Email:             data.Email,
			PasswordHash:      hash,
			Role:              data.Role,
			Locale:            data.Locale,
			Verified:          false,
			VerificationToken: &token,
		})
		if err == nil {
			break
		}

		// The email was free a moment ago, so a conflict here is a token
		// collision (or a racing registration, which a fresh token also
		// resolves into the right answer)
		if errors.Is(err, store.ErrConflict) && attempt < tokenRetries {
			continue
		}

		status := http.StatusInternalServerError
		msg := "Internal server error"

		if errors.Is(err, store.ErrConflict) {
			status = http.StatusBadRequest
			msg = "Email already registered"
		} else {
			zap.L().Error("Failed to create user", zap.Error(err), zap.String("requestID", requestID))
		}

		c.JSON(status, gin.H{
			"error":     msg,
			"requestID": requestID,
		})
		return
	}

	// Send failure is not fatal to registration, the user can ask for a
	// resend later
	if ok := d.Mailer.SendVerification(user.Email, *user.VerificationToken, tenant.Name); !ok {
		zap.L().Warn("Failed to send verification email", zap.String("requestID", requestID))
	}

	c.JSON(http.StatusCreated, ackResponse("User registered successfully. Please check your email for verification.", user))
}
