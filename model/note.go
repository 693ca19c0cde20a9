package model

import "time"

type Note struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	SessionID *string   `gorm:"index" json:"session_id,omitempty"`
	AuthorID  string    `gorm:"not null;index" json:"author_id"`
	BodyMD    string    `json:"body_md"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
