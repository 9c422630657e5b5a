package entity

import "time"

type Review struct {
	ID            string    `json:"review_id"`
	UserID        string    `json:"user_id"`
	PackageID     string    `json:"package_id"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
	AgentResponse string    `json:"agent_response,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
