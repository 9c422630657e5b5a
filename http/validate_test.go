package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantOK   bool
	}{
		{name: "valid", password: "Str0ng!pass", wantOK: true},
		{name: "too short", password: "S0r!t", wantOK: false},
		{name: "missing upper case", password: "str0ng!pass", wantOK: false},
		{name: "missing lower case", password: "STR0NG!PASS", wantOK: false},
		{name: "missing digit", password: "Strong!pass", wantOK: false},
		{name: "missing special character", password: "Str0ngpass", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := validatePassword(tt.password)
			if tt.wantOK {
				assert.Empty(t, msg)
			} else {
				assert.NotEmpty(t, msg)
			}
		})
	}
}

func TestValidateContactNumber(t *testing.T) {
	tests := []struct {
		name   string
		number string
		wantOK bool
	}{
		{name: "ten digits", number: "9876543210", wantOK: true},
		{name: "fifteen digits", number: "987654321012345", wantOK: true},
		{name: "leading zero", number: "0876543210", wantOK: false},
		{name: "too short", number: "987654321", wantOK: false},
		{name: "too long", number: "9876543210123456", wantOK: false},
		{name: "non-digits", number: "98765abcde", wantOK: false},
		{name: "empty", number: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := validateContactNumber(tt.number)
			if tt.wantOK {
				assert.Empty(t, msg)
			} else {
				assert.NotEmpty(t, msg)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	assert.Empty(t, validateEmail("someone@example.com"))
	assert.NotEmpty(t, validateEmail("someone"))
	assert.NotEmpty(t, validateEmail("someone@"))
	assert.NotEmpty(t, validateEmail(""))
}
