package http

import (
	"net/http"
	"regexp"
	"unicode"

	"github.com/labstack/echo/v4"
)

var (
	contactNumberPattern = regexp.MustCompile(`^[1-9]\d{9,14}$`)
	emailPattern         = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// fieldErrors collects per-field validation messages for a form submission.
type fieldErrors map[string]string

func (e fieldErrors) toHTTPError() error {
	if len(e) == 0 {
		return nil
	}

	return &echo.HTTPError{
		Code: http.StatusBadRequest,
		Message: echo.Map{
			"message": "validation failed",
			"errors":  e,
		},
	}
}

// validatePassword enforces at least 8 characters with an upper-case letter,
// a lower-case letter, a digit and a special character.
func validatePassword(password string) string {
	if len(password) < 8 {
		return "password must be at least 8 characters"
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	if !hasUpper || !hasLower || !hasDigit || !hasSpecial {
		return "password must contain upper and lower case letters, a digit and a special character"
	}

	return ""
}

func validateContactNumber(contactNumber string) string {
	if !contactNumberPattern.MatchString(contactNumber) {
		return "contact number must be 10 to 15 digits and must not start with 0"
	}

	return ""
}

func validateEmail(email string) string {
	if !emailPattern.MatchString(email) {
		return "invalid email address"
	}

	return ""
}
