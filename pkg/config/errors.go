package config

import "errors"

var (
	// ErrParsingConfig wraps the env parser error, such as a missing required
	// variable or a value that does not parse into its field.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrInvalidConfigType is returned when the loaded type is not a struct.
	ErrInvalidConfigType = errors.New("config type must be a struct")

	ErrConfigNotLoaded = errors.New("configuration has not been loaded")
	ErrNilPointer      = errors.New("nil pointer provided to config loader")

	// ErrLoadingEnvFile is returned when LoadEnv cannot read a .env file.
	ErrLoadingEnvFile = errors.New("failed to load env file")
)
