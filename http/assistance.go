package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"trips/clients"
	"trips/entity"
	"trips/event"
)

type assistanceRequest struct {
	Subject string `json:"subject"`
	Issue   string `json:"issue"`
}

func (h handler) CreateAssistanceRequest(c echo.Context) error {
	var request assistanceRequest
	if err := c.Bind(&request); err != nil {
		return badRequest("failed to parse request", err)
	}

	errs := fieldErrors{}
	if request.Subject == "" {
		errs["subject"] = "subject is required"
	}
	if request.Issue == "" {
		errs["issue"] = "issue is required"
	}
	if err := errs.toHTTPError(); err != nil {
		return err
	}

	created, err := h.assistance.Create(c.Request().Context(), clients.AssistanceRequest{
		UserID:  currentSession(c).UserID,
		Subject: request.Subject,
		Issue:   request.Issue,
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, created)
}

type contactRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	ContactNumber string `json:"contact_number"`
	Subject       string `json:"subject"`
	Message       string `json:"message"`
}

// CreateContactRequest is the contact form; it validates the form fields and
// files the message as an assistance request.
func (h handler) CreateContactRequest(c echo.Context) error {
	var request contactRequest
	if err := c.Bind(&request); err != nil {
		return badRequest("failed to parse request", err)
	}

	errs := fieldErrors{}
	if request.Name == "" {
		errs["name"] = "name is required"
	}
	if msg := validateEmail(request.Email); msg != "" {
		errs["email"] = msg
	}
	if msg := validateContactNumber(request.ContactNumber); msg != "" {
		errs["contact_number"] = msg
	}
	if request.Message == "" {
		errs["message"] = "message is required"
	}
	if err := errs.toHTTPError(); err != nil {
		return err
	}

	subject := request.Subject
	if subject == "" {
		subject = "Contact form message from " + request.Name
	}

	created, err := h.assistance.Create(c.Request().Context(), clients.AssistanceRequest{
		UserID:  currentSession(c).UserID,
		Subject: subject,
		Issue:   request.Message,
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, created)
}

func (h handler) ListOwnAssistanceRequests(c echo.Context) error {
	requests, err := h.assistance.ListByUser(c.Request().Context(), currentSession(c).UserID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, requests)
}

func (h handler) ListAllAssistanceRequests(c echo.Context) error {
	requests, err := h.assistance.ListAll(c.Request().Context())
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, requests)
}

type resolveAssistanceRequest struct {
	Resolution string `json:"resolution"`
}

func (h handler) ResolveAssistanceRequest(c echo.Context) error {
	var request resolveAssistanceRequest
	if err := c.Bind(&request); err != nil {
		return badRequest("failed to parse request", err)
	}
	if request.Resolution == "" {
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "resolution is required",
		}
	}

	resolved, err := h.assistance.Resolve(c.Request().Context(), c.Param("id"), request.Resolution)
	if err != nil {
		return httpError(err)
	}

	// The user is notified only once the assistance service reports the
	// request resolved.
	if resolved.Status == entity.AssistanceStatusResolved {
		if err := h.publisher.Publish(c.Request().Context(), event.NewAssistanceResolved(resolved.ID, resolved.UserID, request.Resolution)); err != nil {
			return &echo.HTTPError{
				Code:     http.StatusInternalServerError,
				Message:  http.StatusText(http.StatusInternalServerError),
				Internal: err,
			}
		}
	}

	return c.JSON(http.StatusOK, resolved)
}
