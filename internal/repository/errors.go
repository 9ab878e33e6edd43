// Package repository defines error types that are reused across the
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios: a missing
// catalog entry, or a booking session that never existed or has expired.
package repository

import "errors"

// ErrMovieNotFound is returned when no movie has the requested slug.
var ErrMovieNotFound = errors.New("movie not found")

// ErrSessionNotFound is returned when a booking session id is unknown or
// the session has been idle for longer than the store's TTL. Handlers
// should translate this into an HTTP 404 response.
var ErrSessionNotFound = errors.New("booking session not found")

// ErrConfirmationNotFound is returned when no confirmed booking exists
// for a session id.
var ErrConfirmationNotFound = errors.New("confirmation not found")
