package http

import "errors"

// Sentinel errors used when resolving the session cookie. Callers can match
// against them with [errors.Is]; both are treated as "no session".
var (
	// ErrNoSessionCookie is returned when the incoming request carries no
	// loginToken cookie at all.
	ErrNoSessionCookie = errors.New("no `loginToken` cookie")

	// ErrEmptySessionCookie is returned when the loginToken cookie is
	// present but holds an empty value.
	ErrEmptySessionCookie = errors.New("empty `loginToken` cookie")
)
