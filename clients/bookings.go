package clients

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
	"trips/entity"
)

type BookingsClient struct {
	gateway *Gateway
}

func NewBookingsClient(gateway *Gateway) BookingsClient {
	return BookingsClient{
		gateway: gateway,
	}
}

type BookingRequest struct {
	UserID          string    `json:"user_id"`
	PackageID       string    `json:"package_id"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	Adults          int       `json:"adults"`
	Children        int       `json:"children"`
	Infants         int       `json:"infants"`
	InsurancePlanID string    `json:"insurance_plan_id,omitempty"`
	TotalPrice      float64   `json:"total_price"`
}

func (c BookingsClient) Create(ctx context.Context, req BookingRequest) (entity.Booking, error) {
	var booking entity.Booking
	if err := c.gateway.do(ctx, http.MethodPost, "/api/bookings", req, &booking); err != nil {
		return entity.Booking{}, fmt.Errorf("creating booking: %w", err)
	}

	return booking, nil
}

func (c BookingsClient) ListByUser(ctx context.Context, userID string) ([]entity.Booking, error) {
	path := "/api/bookings?" + url.Values{"user_id": {userID}}.Encode()

	var bookings []entity.Booking
	if err := c.gateway.do(ctx, http.MethodGet, path, nil, &bookings); err != nil {
		return nil, fmt.Errorf("listing bookings for user %s: %w", userID, err)
	}

	return bookings, nil
}

func (c BookingsClient) ListAll(ctx context.Context) ([]entity.Booking, error) {
	var bookings []entity.Booking
	if err := c.gateway.do(ctx, http.MethodGet, "/api/bookings", nil, &bookings); err != nil {
		return nil, fmt.Errorf("listing bookings: %w", err)
	}

	return bookings, nil
}

func (c BookingsClient) UpdateStatus(ctx context.Context, bookingID, status string) (entity.Booking, error) {
	req := struct {
		Status string `json:"status"`
	}{
		Status: status,
	}

	var booking entity.Booking
	if err := c.gateway.do(ctx, http.MethodPatch, "/api/bookings/"+bookingID+"/status", req, &booking); err != nil {
		return entity.Booking{}, fmt.Errorf("updating booking %s status to %s: %w", bookingID, status, err)
	}

	return booking, nil
}
