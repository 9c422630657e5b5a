package entity

import "time"

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusPaid      = "paid"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

type Booking struct {
	ID              string    `json:"booking_id"`
	UserID          string    `json:"user_id"`
	PackageID       string    `json:"package_id"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	Adults          int       `json:"adults"`
	Children        int       `json:"children"`
	Infants         int       `json:"infants"`
	InsurancePlanID string    `json:"insurance_plan_id,omitempty"`
	TotalPrice      float64   `json:"total_price"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}
