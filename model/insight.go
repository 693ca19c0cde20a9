package model

import "time"

const (
	InsightSummary = "summary"
	InsightTrigger = "trigger"
	InsightTodo    = "todo"
)

type AIInsight struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	SessionID string    `gorm:"not null;index" json:"session_id"`
	Kind      string    `json:"kind"`
	Content   JSONMap   `gorm:"not null" json:"content_json"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
