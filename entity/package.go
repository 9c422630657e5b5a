package entity

import "time"

type TravelPackage struct {
	ID           string    `json:"package_id"`
	AgentID      string    `json:"agent_id"`
	Title        string    `json:"title"`
	Destination  string    `json:"destination"`
	Description  string    `json:"description"`
	AdultPrice   float64   `json:"adult_price"`
	ChildPrice   float64   `json:"child_price"`
	DurationDays int       `json:"duration_days"`
	ImageURL     string    `json:"image_url,omitempty"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
