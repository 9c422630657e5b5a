package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"trips/clients"
	"trips/entity"
	"trips/payment"
)

type Publisher interface {
	Publish(ctx context.Context, event any) error
}

type SessionStore interface {
	Save(ctx context.Context, session entity.Session) error
	Get(ctx context.Context, token string) (entity.Session, error)
	Clear(ctx context.Context, token string) error
}

type WishlistStore interface {
	Toggle(ctx context.Context, userID, packageID string) ([]string, error)
	List(ctx context.Context, userID string) ([]string, error)
}

type NotificationsLister interface {
	List(ctx context.Context, userID string) ([]entity.Notification, error)
}

type PaymentProvider interface {
	Capture(ctx context.Context, bookingID string) (payment.Receipt, error)
}

type StatsProvider interface {
	AdminStats() entity.AdminStats
	AgentStats(agentID string) entity.AgentStats
}

type handler struct {
	users         clients.UsersClient
	packages      clients.PackagesClient
	bookings      clients.BookingsClient
	insurance     clients.InsuranceClient
	reviews       clients.ReviewsClient
	assistance    clients.AssistanceClient
	sessions      SessionStore
	wishlist      WishlistStore
	notifications NotificationsLister
	payments      PaymentProvider
	stats         StatsProvider
	publisher     Publisher
}

// httpError maps a failed gateway call onto the response: the backend's
// status and message pass through, anything else is a plain 502 with the
// cause kept internal.
func httpError(err error) error {
	var apiErr *clients.APIError
	if errors.As(err, &apiErr) {
		return &echo.HTTPError{
			Code:     apiErr.StatusCode,
			Message:  apiErr.Message,
			Internal: err,
		}
	}

	return &echo.HTTPError{
		Code:     http.StatusBadGateway,
		Message:  "backend service unavailable",
		Internal: err,
	}
}

func badRequest(message string, err error) error {
	return &echo.HTTPError{
		Code:     http.StatusBadRequest,
		Message:  message,
		Internal: err,
	}
}
