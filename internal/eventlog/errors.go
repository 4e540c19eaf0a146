package eventlog

import "errors"

var (
	// ErrUnknownType is returned by ParseType for an unrecognised logger type.
	ErrUnknownType = errors.New("eventlog: unknown logger type")
)
