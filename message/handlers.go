package message

import (
	"context"
	"fmt"

	"trips/event"
)

type WishlistRefresher interface {
	Refresh(ctx context.Context, userID string) ([]string, error)
}

type DashboardRefresher interface {
	Kick()
}

type NotificationAppender interface {
	Append(ctx context.Context, userID, message string) error
}

type Handler struct {
	wishlist      WishlistRefresher
	dashboard     DashboardRefresher
	notifications NotificationAppender
}

func NewHandler(w WishlistRefresher, d DashboardRefresher, n NotificationAppender) Handler {
	return Handler{
		wishlist:      w,
		dashboard:     d,
		notifications: n,
	}
}

// SyncWishlist refreshes the local wishlist copy after a write, possibly on
// another instance.
func (h Handler) SyncWishlist(ctx context.Context, e *event.WishlistChanged) error {
	if _, err := h.wishlist.Refresh(ctx, e.UserID); err != nil {
		return fmt.Errorf("refreshing wishlist for user %s: %w", e.UserID, err)
	}

	return nil
}

func (h Handler) RefreshDashboardOnBooking(_ context.Context, _ *event.BookingMade) error {
	h.dashboard.Kick()
	return nil
}

func (h Handler) RefreshDashboardOnPayment(_ context.Context, _ *event.BookingPaid) error {
	h.dashboard.Kick()
	return nil
}

func (h Handler) NotifyBookingPaid(ctx context.Context, e *event.BookingPaid) error {
	text := fmt.Sprintf("Payment %s received for booking %s", e.PaymentID, e.BookingID)
	if err := h.notifications.Append(ctx, e.UserID, text); err != nil {
		return fmt.Errorf("recording payment notification: %w", err)
	}

	return nil
}

func (h Handler) NotifyAssistanceResolved(ctx context.Context, e *event.AssistanceResolved) error {
	text := "Your assistance request was resolved: " + e.Resolution
	if err := h.notifications.Append(ctx, e.UserID, text); err != nil {
		return fmt.Errorf("recording assistance notification: %w", err)
	}

	return nil
}
