package app

import "errors"

var (
	// ErrInvalidConfig wraps every configuration validation failure.
	ErrInvalidConfig = errors.New("app: invalid configuration")

	// ErrUnexpectedConfig is returned when the handler receives a foreign config type.
	ErrUnexpectedConfig = errors.New("app: unexpected config type")
)
