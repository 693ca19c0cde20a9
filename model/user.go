package model

import "time"

const (
	RoleTherapist = "therapist"
	RoleAssistant = "assistant"
	RoleOwner     = "owner"
)

type User struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	TenantID     string    `gorm:"not null;index" json:"tenant_id"`
	Email        string    `gorm:"unique;not null;index" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         string    `gorm:"not null" json:"role"`
	Locale       string    `gorm:"size:8;default:en" json:"locale"`
	Verified     bool      `gorm:"default:false;not null" json:"is_verified"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Single active token per unverified user. Cleared on verification,
	// replaced on resend.
	VerificationToken *string `gorm:"uniqueIndex" json:"-"`
}
