// Package model defines database models
package model

import "time"

const (
	PlanFree = "free"
	PlanPro  = "pro"
	PlanOrg  = "org"
)

type Tenant struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:120;not null" json:"name"`
	Plan      string    `gorm:"default:free" json:"plan"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Users []User `gorm:"foreignKey:TenantID" json:"-"`
}
