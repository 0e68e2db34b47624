package domain

import "errors"

var (
	// ErrNotFound is returned when a requested resource does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidInput is returned when input fails validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnauthorized is returned when credentials are missing or wrong.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrUpstreamUnavailable is returned when the content store or another
	// dependency cannot be reached or answers with an unexpected status.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)
