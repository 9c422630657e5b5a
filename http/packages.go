package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"trips/clients"
)

func (h handler) ListPackages(c echo.Context) error {
	packages, err := h.packages.List(c.Request().Context())
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, packages)
}

func (h handler) GetPackage(c echo.Context) error {
	pkg, err := h.packages.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, pkg)
}

func (h handler) ListInsurancePlans(c echo.Context) error {
	plans, err := h.insurance.ListPlans(c.Request().Context())
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, plans)
}

type packageRequest struct {
	Title        string  `json:"title"`
	Destination  string  `json:"destination"`
	Description  string  `json:"description"`
	AdultPrice   float64 `json:"adult_price"`
	ChildPrice   float64 `json:"child_price"`
	DurationDays int     `json:"duration_days"`
	ImageURL     string  `json:"image_url"`
	Active       bool    `json:"active"`
}

func (r packageRequest) validate() error {
	errs := fieldErrors{}
	if r.Title == "" {
		errs["title"] = "title is required"
	}
	if r.Destination == "" {
		errs["destination"] = "destination is required"
	}
	if r.AdultPrice <= 0 {
		errs["adult_price"] = "adult price must be positive"
	}
	if r.ChildPrice < 0 {
		errs["child_price"] = "child price must not be negative"
	}
	if r.DurationDays <= 0 {
		errs["duration_days"] = "duration must be at least one day"
	}

	return errs.toHTTPError()
}

// CreatePackage creates a package owned by the calling agent.
func (h handler) CreatePackage(c echo.Context) error {
	var request packageRequest
	if err := c.Bind(&request); err != nil {
		return badRequest("failed to parse request", err)
	}
	if err := request.validate(); err != nil {
		return err
	}

	pkg, err := h.packages.Create(c.Request().Context(), clients.PackageRequest{
		AgentID:      currentSession(c).UserID,
		Title:        request.Title,
		Destination:  request.Destination,
		Description:  request.Description,
		AdultPrice:   request.AdultPrice,
		ChildPrice:   request.ChildPrice,
		DurationDays: request.DurationDays,
		ImageURL:     request.ImageURL,
		Active:       request.Active,
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, pkg)
}

func (h handler) UpdatePackage(c echo.Context) error {
	var request packageRequest
	if err := c.Bind(&request); err != nil {
		return badRequest("failed to parse request", err)
	}
	if err := request.validate(); err != nil {
		return err
	}

	pkg, err := h.packages.Update(c.Request().Context(), c.Param("id"), clients.PackageRequest{
		AgentID:      currentSession(c).UserID,
		Title:        request.Title,
		Destination:  request.Destination,
		Description:  request.Description,
		AdultPrice:   request.AdultPrice,
		ChildPrice:   request.ChildPrice,
		DurationDays: request.DurationDays,
		ImageURL:     request.ImageURL,
		Active:       request.Active,
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, pkg)
}

func (h handler) DeletePackage(c echo.Context) error {
	if err := h.packages.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h handler) GetWishlist(c echo.Context) error {
	packageIDs, err := h.wishlist.List(c.Request().Context(), currentSession(c).UserID)
	if err != nil {
		return &echo.HTTPError{
			Code:     http.StatusInternalServerError,
			Message:  http.StatusText(http.StatusInternalServerError),
			Internal: err,
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"package_ids": packageIDs})
}

// ToggleWishlist adds the package when absent and removes it when present.
func (h handler) ToggleWishlist(c echo.Context) error {
	packageIDs, err := h.wishlist.Toggle(c.Request().Context(), currentSession(c).UserID, c.Param("packageID"))
	if err != nil {
		return &echo.HTTPError{
			Code:     http.StatusInternalServerError,
			Message:  http.StatusText(http.StatusInternalServerError),
			Internal: err,
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"package_ids": packageIDs})
}
