package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"trips/clients"
	"trips/entity"
)

type registerRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	ContactNumber string `json:"contact_number"`
}

func (h handler) Register(c echo.Context) error {
	var request registerRequest
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
	if msg := validatePassword(request.Password); msg != "" {
		errs["password"] = msg
	}
	if msg := validateContactNumber(request.ContactNumber); msg != "" {
		errs["contact_number"] = msg
	}
	if err := errs.toHTTPError(); err != nil {
		return err
	}

	user, err := h.users.Register(c.Request().Context(), clients.RegisterRequest{
		Name:          request.Name,
		Email:         request.Email,
		Password:      request.Password,
		ContactNumber: request.ContactNumber,
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, user)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h handler) Login(c echo.Context) error {
	var request loginRequest
	if err := c.Bind(&request); err != nil {
		return badRequest("failed to parse request", err)
	}

	res, err := h.users.Login(c.Request().Context(), request.Email, request.Password)
	if err != nil {
		return httpError(err)
	}

	sess := entity.Session{
		Token:     res.Token,
		UserID:    res.User.ID,
		Name:      res.User.Name,
		Email:     res.User.Email,
		Role:      res.User.Role,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.sessions.Save(c.Request().Context(), sess); err != nil {
		return &echo.HTTPError{
			Code:     http.StatusInternalServerError,
			Message:  http.StatusText(http.StatusInternalServerError),
			Internal: err,
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"token": res.Token,
		"user":  res.User,
	})
}

func (h handler) Logout(c echo.Context) error {
	if err := h.sessions.Clear(c.Request().Context(), currentSession(c).Token); err != nil {
		return &echo.HTTPError{
			Code:     http.StatusInternalServerError,
			Message:  http.StatusText(http.StatusInternalServerError),
			Internal: err,
		}
	}

	return c.NoContent(http.StatusNoContent)
}

func (h handler) GetProfile(c echo.Context) error {
	user, err := h.users.CurrentUser(c.Request().Context())
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, user)
}

type updateProfileRequest struct {
	Name          string `json:"name"`
	ContactNumber string `json:"contact_number"`
}

// UpdateProfile changes the editable profile fields. The role never changes
// through this layer.
func (h handler) UpdateProfile(c echo.Context) error {
	var request updateProfileRequest
	if err := c.Bind(&request); err != nil {
		return badRequest("failed to parse request", err)
	}

	errs := fieldErrors{}
	if request.Name == "" {
		errs["name"] = "name is required"
	}
	if msg := validateContactNumber(request.ContactNumber); msg != "" {
		errs["contact_number"] = msg
	}
	if err := errs.toHTTPError(); err != nil {
		return err
	}

	user, err := h.users.UpdateProfile(c.Request().Context(), clients.UpdateProfileRequest{
		Name:          request.Name,
		ContactNumber: request.ContactNumber,
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, user)
}

func (h handler) ListUsers(c echo.Context) error {
	users, err := h.users.List(c.Request().Context(), c.QueryParam("name"), c.QueryParam("role"))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, users)
}
