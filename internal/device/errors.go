package device

import "errors"

var (
	// ErrUnknownKind is returned when a kind name does not match any variant.
	ErrUnknownKind = errors.New("device: unknown kind")
)
