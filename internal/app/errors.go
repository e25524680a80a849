package app

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/bootcamp-webapi/internal/server"
)

// ExitCode is the process exit status of a startup failure.
type ExitCode int

const (
	ExitOK          ExitCode = 0
	ExitLogging     ExitCode = 10
	ExitConfig      ExitCode = 11
	ExitPlaceholder ExitCode = 12
	ExitMigration   ExitCode = 13
	ExitHost        ExitCode = 14
)

// Pipeline stages that run before the host launcher. Launcher stages are
// reported with the names from the server package.
const (
	StageLogging      = "logging"
	StageOptions      = "options"
	StageSources      = "config-sources"
	StagePlaceholders = "placeholders"
)

// StageError is a fatal startup failure tagged with the stage it happened in
// and the exit code the process terminates with.
type StageError struct {
	Stage string
	Code  ExitCode
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// CodeOf returns the exit code for err. A nil error is [ExitOK]; an error
// without a stage is treated as a host failure.
func CodeOf(err error) ExitCode {
	if err == nil {
		return ExitOK
	}
	var stageErr *StageError
	if errors.As(err, &stageErr) {
		return stageErr.Code
	}
	return ExitHost
}

// StageOf returns the stage name carried by err, or "" when there is none.
func StageOf(err error) string {
	var stageErr *StageError
	if errors.As(err, &stageErr) {
		return stageErr.Stage
	}
	return ""
}

func fromLaunchError(err error) *StageError {
	var launchErr *server.LaunchError
	if !errors.As(err, &launchErr) {
		return &StageError{Stage: server.StageServe, Code: ExitHost, Err: err}
	}

	code := ExitHost
	switch launchErr.Stage {
	case server.StageBind:
		code = ExitConfig
	case server.StageInstallLogger:
		code = ExitLogging
	case server.StageMigration:
		code = ExitMigration
	}
	return &StageError{Stage: launchErr.Stage, Code: code, Err: launchErr.Err}
}
