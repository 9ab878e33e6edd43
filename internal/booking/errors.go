package booking

import "errors"

var (
	// ErrInvalidSelection is returned when a theater, showtime or seat is
	// not one of the session's options.
	ErrInvalidSelection = errors.New("invalid selection")
	// ErrInvalidTransition is returned when an operation is not allowed in
	// the session's current step.
	ErrInvalidTransition = errors.New("invalid transition")
)
