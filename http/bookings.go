package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"trips/clients"
	"trips/entity"
	"trips/event"
	"trips/pricing"
)

type createBookingRequest struct {
	PackageID       string    `json:"package_id"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	Adults          int       `json:"adults"`
	Children        int       `json:"children"`
	Infants         int       `json:"infants"`
	InsurancePlanID string    `json:"insurance_plan_id"`
}

func (r createBookingRequest) validate() error {
	errs := fieldErrors{}
	if r.PackageID == "" {
		errs["package_id"] = "package id is required"
	}
	if r.Adults < 1 {
		errs["adults"] = "at least one adult is required"
	}
	if r.Children < 0 || r.Infants < 0 {
		errs["travellers"] = "traveller counts must not be negative"
	}
	if r.StartDate.IsZero() || r.EndDate.IsZero() {
		errs["dates"] = "start and end dates are required"
	} else if !r.EndDate.After(r.StartDate) {
		errs["dates"] = "end date must be after start date"
	}

	return errs.toHTTPError()
}

// CreateBooking is the checkout step: it prices the trip and sends the
// resulting total onward with the booking. The booking service owns
// acceptance of the total.
func (h handler) CreateBooking(c echo.Context) error {
	var request createBookingRequest
	if err := c.Bind(&request); err != nil {
		return badRequest("failed to parse request", err)
	}
	if err := request.validate(); err != nil {
		return err
	}

	ctx := c.Request().Context()

	pkg, err := h.packages.Get(ctx, request.PackageID)
	if err != nil {
		return httpError(err)
	}
	if !pkg.Active {
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "package is no longer available",
		}
	}

	var plan *entity.InsurancePlan
	if request.InsurancePlanID != "" {
		p, err := h.insurance.GetPlan(ctx, request.InsurancePlanID)
		if err != nil {
			return httpError(err)
		}
		plan = &p
	}

	quote := pricing.Calculate(pkg, pricing.Travellers{
		Adults:   request.Adults,
		Children: request.Children,
		Infants:  request.Infants,
	}, plan)

	sess := currentSession(c)
	booking, err := h.bookings.Create(ctx, clients.BookingRequest{
		UserID:          sess.UserID,
		PackageID:       request.PackageID,
		StartDate:       request.StartDate,
		EndDate:         request.EndDate,
		Adults:          request.Adults,
		Children:        request.Children,
		Infants:         request.Infants,
		InsurancePlanID: request.InsurancePlanID,
		TotalPrice:      quote.Total,
	})
	if err != nil {
		return httpError(err)
	}

	if err := h.publisher.Publish(ctx, event.NewBookingMade(booking.ID, sess.UserID, booking.PackageID, quote.Total)); err != nil {
		return &echo.HTTPError{
			Code:     http.StatusInternalServerError,
			Message:  http.StatusText(http.StatusInternalServerError),
			Internal: err,
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"booking": booking,
		"quote":   quote,
	})
}

func (h handler) ListOwnBookings(c echo.Context) error {
	bookings, err := h.bookings.ListByUser(c.Request().Context(), currentSession(c).UserID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, bookings)
}

func (h handler) ListAllBookings(c echo.Context) error {
	bookings, err := h.bookings.ListAll(c.Request().Context())
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, bookings)
}

type updateBookingStatusRequest struct {
	Status string `json:"status"`
}

func (h handler) UpdateBookingStatus(c echo.Context) error {
	var request updateBookingStatusRequest
	if err := c.Bind(&request); err != nil {
		return badRequest("failed to parse request", err)
	}

	switch request.Status {
	case entity.BookingStatusPending, entity.BookingStatusConfirmed, entity.BookingStatusPaid,
		entity.BookingStatusCompleted, entity.BookingStatusCancelled:
	default:
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "unknown booking status: " + request.Status,
		}
	}

	booking, err := h.bookings.UpdateStatus(c.Request().Context(), c.Param("id"), request.Status)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, booking)
}

// PayBooking runs the simulated payment step and returns the synthetic
// payment id with the confirmation.
func (h handler) PayBooking(c echo.Context) error {
	receipt, err := h.payments.Capture(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, receipt)
}
