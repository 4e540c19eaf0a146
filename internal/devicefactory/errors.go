package devicefactory

import "errors"

var (
	// ErrFactoryExists is returned when a name is registered twice.
	ErrFactoryExists = errors.New("devicefactory: factory already registered")

	// ErrUnknownFactory is returned when no factory matches a name or kind.
	ErrUnknownFactory = errors.New("devicefactory: unknown factory")
)
