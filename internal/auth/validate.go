package auth

import (
	"errors"
	"regexp"
	"strings"
)

// Form validation rules mirror what the login and registration screens
// enforce before submitting. Messages are user-facing.

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	symbolPattern   = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
	lowerPattern    = regexp.MustCompile(`[a-z]`)
	upperPattern    = regexp.MustCompile(`[A-Z]`)
	digitPattern    = regexp.MustCompile(`[0-9]`)
)

// ValidateLogin checks the login form fields, returning the first
// validation failure.
func ValidateLogin(email, password string) error {
	if strings.TrimSpace(email) == "" {
		return errors.New("Email is required")
	}
	if !emailPattern.MatchString(strings.TrimSpace(email)) {
		return errors.New("Please enter a valid email address")
	}
	if password == "" {
		return errors.New("Password is required")
	}
	if len(password) < 6 {
		return errors.New("Password must be at least 6 characters")
	}
	return nil
}

// ValidateRegistration checks the registration form fields, returning the
// first validation failure.
func ValidateRegistration(username, email, password, confirm string) error {
	username = strings.TrimSpace(username)
	switch {
	case username == "":
		return errors.New("Username is required")
	case len(username) < 3:
		return errors.New("Username must be at least 3 characters")
	case len(username) > 20:
		return errors.New("Username must not exceed 20 characters")
	case !usernamePattern.MatchString(username):
		return errors.New("Username can only contain letters, numbers, and underscores")
	}

	if strings.TrimSpace(email) == "" {
		return errors.New("Email is required")
	}
	if !emailPattern.MatchString(strings.TrimSpace(email)) {
		return errors.New("Please enter a valid email address")
	}

	switch {
	case password == "":
		return errors.New("Password is required")
	case len(password) < 6:
		return errors.New("Password must be at least 6 characters")
	case !lowerPattern.MatchString(password):
		return errors.New("Password must contain at least one lowercase letter")
	case !upperPattern.MatchString(password):
		return errors.New("Password must contain at least one uppercase letter")
	case !digitPattern.MatchString(password):
		return errors.New("Password must contain at least one number")
	case !symbolPattern.MatchString(password):
		return errors.New("Password must contain at least one symbol")
	}

	if confirm == "" {
		return errors.New("Please confirm your password")
	}
	if confirm != password {
		return errors.New("Passwords must match")
	}
	return nil
}
