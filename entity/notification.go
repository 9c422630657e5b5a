package entity

import "time"

type Notification struct {
	ID        string    `json:"notification_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
