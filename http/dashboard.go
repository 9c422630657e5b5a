package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GetAdminStats serves the latest dashboard snapshot. When the backing
// services have never answered, this returns the placeholder figures rather
// than failing, so the dashboard renders in demo environments.
func (h handler) GetAdminStats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.stats.AdminStats())
}

func (h handler) GetAgentStats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.stats.AgentStats(currentSession(c).UserID))
}

func (h handler) ListNotifications(c echo.Context) error {
	notifications, err := h.notifications.List(c.Request().Context(), currentSession(c).UserID)
	if err != nil {
		return &echo.HTTPError{
			Code:     http.StatusInternalServerError,
			Message:  http.StatusText(http.StatusInternalServerError),
			Internal: err,
		}
	}

	return c.JSON(http.StatusOK, notifications)
}
