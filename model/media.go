package model

import "time"

const (
	MediaAudio = "audio"
	MediaVideo = "video"
	MediaImage = "image"
)

type Media struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	SessionID     string    `gorm:"not null;index" json:"session_id"`
	Type          string    `json:"type"`
	URL           string    `gorm:"not null" json:"url"`
	Transcription JSONMap   `json:"transcription,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
