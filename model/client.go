package model

import "time"

type Client struct {
	ID        string      `gorm:"primaryKey" json:"id"`
	TenantID  string      `gorm:"not null;index" json:"tenant_id"`
	FullName  string      `gorm:"size:120;not null" json:"full_name"`
	Birthday  *time.Time  `json:"birthday,omitempty"`
	Tags      StringSlice `json:"tags"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
