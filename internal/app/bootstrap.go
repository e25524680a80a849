package app

import (
	"errors"

	"github.com/MKhiriev/bootcamp-webapi/internal/config"
	"github.com/MKhiriev/bootcamp-webapi/internal/logger"
)

// Bootstrap parses the bootstrap options from args and the BOOTSTRAP_*
// environment and builds the bootstrap logger. An unusable log level fails
// with [ExitLogging] before any configuration work; every other option
// error fails with [ExitConfig].
func Bootstrap(args []string) (*config.Options, *logger.Logger, error) {
	opts, err := config.GetOptions(args)
	if err != nil {
		if errors.Is(err, logger.ErrUnknownLevel) {
			return nil, nil, &StageError{Stage: StageLogging, Code: ExitLogging, Err: err}
		}
		return nil, nil, &StageError{Stage: StageOptions, Code: ExitConfig, Err: err}
	}

	log, err := logger.NewBootstrapLogger(opts.LogLevel)
	if err != nil {
		return nil, nil, &StageError{Stage: StageLogging, Code: ExitLogging, Err: err}
	}
	return opts, log, nil
}
