package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a payload reaches the service
	// with required fields absent. Handlers validate first, so hitting this
	// error indicates a transport-layer bug rather than bad client input.
	ErrInvalidDataProvided = errors.New("invalid data provided")
)
