package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"trips/clients"
	"trips/entity"
)

type createReviewRequest struct {
	PackageID string `json:"package_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

// CreateReview accepts a review only when the user has a completed booking
// for the package. The check reads the booking service and can race with a
// concurrent status change; the review service has the final say.
func (h handler) CreateReview(c echo.Context) error {
	var request createReviewRequest
	if err := c.Bind(&request); err != nil {
		return badRequest("failed to parse request", err)
	}

	errs := fieldErrors{}
	if request.PackageID == "" {
		errs["package_id"] = "package id is required"
	}
	if request.Rating < 1 || request.Rating > 5 {
		errs["rating"] = "rating must be between 1 and 5"
	}
	if err := errs.toHTTPError(); err != nil {
		return err
	}

	ctx := c.Request().Context()
	sess := currentSession(c)

	bookings, err := h.bookings.ListByUser(ctx, sess.UserID)
	if err != nil {
		return httpError(err)
	}

	var completed bool
	for _, booking := range bookings {
		if booking.PackageID == request.PackageID && booking.Status == entity.BookingStatusCompleted {
			completed = true
			break
		}
	}
	if !completed {
		return &echo.HTTPError{
			Code:    http.StatusForbidden,
			Message: "reviews require a completed booking for this package",
		}
	}

	review, err := h.reviews.Create(ctx, clients.ReviewRequest{
		UserID:    sess.UserID,
		PackageID: request.PackageID,
		Rating:    request.Rating,
		Comment:   request.Comment,
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, review)
}

func (h handler) ListPackageReviews(c echo.Context) error {
	reviews, err := h.reviews.ListByPackage(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, reviews)
}

type reviewResponseRequest struct {
	Response string `json:"response"`
}

func (h handler) RespondToReview(c echo.Context) error {
	var request reviewResponseRequest
	if err := c.Bind(&request); err != nil {
		return badRequest("failed to parse request", err)
	}
	if request.Response == "" {
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "response is required",
		}
	}

	review, err := h.reviews.Respond(c.Request().Context(), c.Param("id"), request.Response)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, review)
}
