package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/lithammer/shortuuid/v3"

	"trips/clients"
	"trips/entity"
	"trips/log"
	"trips/session"
)

const (
	headerKeyCorrelationID = "Correlation-ID"
	sessionContextKey      = "session"
)

func correlationIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		correlationID := c.Request().Header.Get(headerKeyCorrelationID)
		if correlationID == "" {
			correlationID = "gen_" + shortuuid.New()
		}

		ctx := log.ContextWithCorrelationID(c.Request().Context(), correlationID)
		c.SetRequest(c.Request().WithContext(ctx))
		c.Response().Header().Set(headerKeyCorrelationID, correlationID)

		return next(c)
	}
}

// requireSession resolves the bearer token to a stored session. The token is
// also attached to the request context so every downstream gateway call
// carries it.
func (h handler) requireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := bearerToken(c.Request())
		if token == "" {
			return &echo.HTTPError{
				Code:    http.StatusUnauthorized,
				Message: "missing bearer token",
			}
		}

		sess, err := h.sessions.Get(c.Request().Context(), token)
		if errors.Is(err, session.ErrNotAuthenticated) {
			return &echo.HTTPError{
				Code:    http.StatusUnauthorized,
				Message: "invalid or expired session",
			}
		}
		if err != nil {
			return &echo.HTTPError{
				Code:     http.StatusInternalServerError,
				Message:  http.StatusText(http.StatusInternalServerError),
				Internal: err,
			}
		}

		ctx := clients.WithToken(c.Request().Context(), token)
		c.SetRequest(c.Request().WithContext(ctx))
		c.Set(sessionContextKey, sess)

		return next(c)
	}
}

func requireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := currentSession(c)
			for _, role := range roles {
				if sess.Role == role {
					return next(c)
				}
			}

			return &echo.HTTPError{
				Code:    http.StatusForbidden,
				Message: "insufficient role",
			}
		}
	}
}

func currentSession(c echo.Context) entity.Session {
	sess, _ := c.Get(sessionContextKey).(entity.Session)
	return sess
}

func bearerToken(r *http.Request) string {
	authorization := r.Header.Get("Authorization")
	if !strings.HasPrefix(authorization, "Bearer ") {
		return ""
	}

	return strings.TrimPrefix(authorization, "Bearer ")
}
