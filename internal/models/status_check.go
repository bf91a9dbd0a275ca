package models

import "time"

// StatusCheck is a client liveness ping kept for frontend diagnostics.
type StatusCheck struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	ClientName string    `gorm:"not null" json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}
