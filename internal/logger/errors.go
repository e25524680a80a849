package logger

import "errors"

// ErrUnknownLevel is returned by [ParseLevel] for names that do not map to a
// zerolog level.
var ErrUnknownLevel = errors.New("unknown log level")
