// Package payment simulates the payment provider. There is no real gateway
// behind it: capture marks the booking paid, waits a fixed delay to mimic
// processing and hands back a synthetic payment id.
package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/lithammer/shortuuid/v3"

	"trips/entity"
	"trips/event"
)

const DefaultProcessingDelay = 2 * time.Second

type BookingMarker interface {
	UpdateStatus(ctx context.Context, bookingID, status string) (entity.Booking, error)
}

type Publisher interface {
	Publish(ctx context.Context, event any) error
}

type Receipt struct {
	PaymentID string  `json:"payment_id"`
	BookingID string  `json:"booking_id"`
	Amount    float64 `json:"amount"`
}

type MockProvider struct {
	bookings        BookingMarker
	publisher       Publisher
	processingDelay time.Duration
}

func NewMockProvider(bookings BookingMarker, publisher Publisher, processingDelay time.Duration) MockProvider {
	return MockProvider{
		bookings:        bookings,
		publisher:       publisher,
		processingDelay: processingDelay,
	}
}

func (p MockProvider) Capture(ctx context.Context, bookingID string) (Receipt, error) {
	booking, err := p.bookings.UpdateStatus(ctx, bookingID, entity.BookingStatusPaid)
	if err != nil {
		return Receipt{}, fmt.Errorf("marking booking paid: %w", err)
	}

	select {
	case <-time.After(p.processingDelay):
	case <-ctx.Done():
		return Receipt{}, ctx.Err()
	}

	receipt := Receipt{
		PaymentID: "pay_" + shortuuid.New(),
		BookingID: booking.ID,
		Amount:    booking.TotalPrice,
	}

	if err := p.publisher.Publish(ctx, event.NewBookingPaid(receipt.BookingID, booking.UserID, receipt.PaymentID)); err != nil {
		return Receipt{}, fmt.Errorf("publishing booking paid event: %w", err)
	}

	return receipt, nil
}
