package config

import "errors"

// Validation errors returned when the bound configuration or the bootstrap
// options are incomplete or invalid.
var (
	// ErrInvalidHostConfigs indicates invalid listener settings (for
	// example, a port outside 1..65535 or a non-positive shutdown timeout).
	ErrInvalidHostConfigs = errors.New("invalid host configuration")
	// ErrInvalidTLSConfigs indicates that only one of the certificate and
	// key files is set.
	ErrInvalidTLSConfigs = errors.New("invalid tls configuration")
	// ErrInvalidStorageConfigs indicates an empty DSN while migrations are
	// required.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidLoggingConfigs indicates an unknown minimum log level.
	ErrInvalidLoggingConfigs = errors.New("invalid logging configuration")
	// ErrInvalidFeatureFlag indicates a features.* value that is not a
	// boolean.
	ErrInvalidFeatureFlag = errors.New("invalid feature flag")
	// ErrInvalidOptions indicates invalid bootstrap options.
	ErrInvalidOptions = errors.New("invalid bootstrap options")
)
