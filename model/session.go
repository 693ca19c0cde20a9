package model

import "time"

const (
	SessionPlanned    = "planned"
	SessionInProgress = "in_progress"
	SessionDone       = "done"
)

type Session struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	ClientID    string    `gorm:"not null;index" json:"client_id"`
	ScheduledAt time.Time `gorm:"not null" json:"scheduled_at"`
	DurationMin int       `json:"duration_min"`
	Status      string    `gorm:"default:planned" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
