// Package auth implements authentication against a local account store,
// with an optional remote provider fallback for a fixed set of demo
// accounts.
package auth

import "errors"

// User is the profile attached to a session. Immutable once issued;
// replaced wholesale on login.
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Session pairs an opaque token with the profile it was issued for.
// Token and User are always set together and cleared together.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Validation failures are shown to users verbatim, hence the sentence
// casing.
var (
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrEmailRegistered    = errors.New("Email already registered")
	ErrUsernameTaken      = errors.New("Username already taken")
)
