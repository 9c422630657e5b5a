package entity

import "time"

const (
	AssistanceStatusPending  = "pending"
	AssistanceStatusResolved = "resolved"
)

type AssistanceRequest struct {
	ID         string    `json:"request_id"`
	UserID     string    `json:"user_id"`
	Subject    string    `json:"subject"`
	Issue      string    `json:"issue"`
	Status     string    `json:"status"`
	Resolution string    `json:"resolution,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	ResolvedAt time.Time `json:"resolved_at"`
}
