package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anantsaxena14/campus-sphere/internal/pkg/apperrors"
)

func TestValidateEmailFormat(t *testing.T) {
	tests := []struct {
		name  string
		email string
		valid bool
	}{
		{"plain address", "john.doe@example.com", true},
		{"subdomain", "a.b@mail.university.edu", true},
		{"plus alias", "student+notes@example.com", true},
		{"surrounding spaces", "  john@example.com  ", true},
		{"missing at", "john.example.com", false},
		{"missing domain", "john@", false},
		{"missing tld", "john@example", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateEmailFormat(tt.email)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, apperrors.ErrInvalidEmail)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, validatePassword("password123"))
	assert.NoError(t, validatePassword("12345678"))
	assert.ErrorIs(t, validatePassword("short"), apperrors.ErrInvalidPassword)
	assert.ErrorIs(t, validatePassword(""), apperrors.ErrInvalidPassword)
}
