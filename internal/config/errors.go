package config

import "errors"

// Configuration loading errors
var (
	// ErrConfigFileRead is returned when viper cannot read the config file.
	ErrConfigFileRead = errors.New("config: failed to read config file")

	// ErrConfigFileNotFound is returned when an explicitly named config file is missing.
	ErrConfigFileNotFound = errors.New("config: config file not found")

	// ErrConfigUnmarshal is returned when settings cannot be decoded into the target struct.
	ErrConfigUnmarshal = errors.New("config: failed to unmarshal config")
)

// Configuration validation errors
var (
	// ErrConfigNotPointer is returned when the target is not a non-nil pointer.
	ErrConfigNotPointer = errors.New("config: config must be a non-nil pointer")

	// ErrConfigNotStruct is returned when the target does not point to a struct.
	ErrConfigNotStruct = errors.New("config: config must be a pointer to struct")

	// ErrConfigFieldNotSet is returned when the ConfigFile field cannot be set.
	ErrConfigFieldNotSet = errors.New("config: ConfigFile field is not settable")

	// ErrConfigFieldNotString is returned when the ConfigFile field is not a string.
	ErrConfigFieldNotString = errors.New("config: ConfigFile field must be a string")
)
