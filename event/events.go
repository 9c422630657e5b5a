package event

import (
	"time"

	"github.com/ThreeDotsLabs/watermill"
)

type header struct {
	ID          string    `json:"id"`
	PublishedAt time.Time `json:"published_at"`
}

func newHeader() header {
	return header{
		ID:          watermill.NewUUID(),
		PublishedAt: time.Now().UTC(),
	}
}

type BookingMade struct {
	Header     header  `json:"header"`
	BookingID  string  `json:"booking_id"`
	UserID     string  `json:"user_id"`
	PackageID  string  `json:"package_id"`
	TotalPrice float64 `json:"total_price"`
}

func NewBookingMade(bookingID, userID, packageID string, totalPrice float64) BookingMade {
	return BookingMade{
		Header:     newHeader(),
		BookingID:  bookingID,
		UserID:     userID,
		PackageID:  packageID,
		TotalPrice: totalPrice,
	}
}

type BookingPaid struct {
	Header    header `json:"header"`
	BookingID string `json:"booking_id"`
	UserID    string `json:"user_id"`
	PaymentID string `json:"payment_id"`
}

func NewBookingPaid(bookingID, userID, paymentID string) BookingPaid {
	return BookingPaid{
		Header:    newHeader(),
		BookingID: bookingID,
		UserID:    userID,
		PaymentID: paymentID,
	}
}

// WishlistChanged mirrors a wishlist write so other service instances can
// refresh their local copy of the user's list.
type WishlistChanged struct {
	Header     header   `json:"header"`
	UserID     string   `json:"user_id"`
	PackageIDs []string `json:"package_ids"`
}

func NewWishlistChanged(userID string, packageIDs []string) WishlistChanged {
	return WishlistChanged{
		Header:     newHeader(),
		UserID:     userID,
		PackageIDs: packageIDs,
	}
}

type AssistanceResolved struct {
	Header     header `json:"header"`
	RequestID  string `json:"request_id"`
	UserID     string `json:"user_id"`
	Resolution string `json:"resolution"`
}

func NewAssistanceResolved(requestID, userID, resolution string) AssistanceResolved {
	return AssistanceResolved{
		Header:     newHeader(),
		RequestID:  requestID,
		UserID:     userID,
		Resolution: resolution,
	}
}
