// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"errors"
	"fmt"
)

var (
	errNoServersAreCreated = errors.New("no servers are created")
	errNotConfigured       = errors.New("host is not configured")
	errTLSMaterial         = errors.New("tls material is not readable")
)

// Launch stages reported in [LaunchError].
const (
	StageBind           = "bind-config"
	StageConfigure      = "configure"
	StageInstallLogger  = "install-logger"
	StageMigration      = "migration"
	StageAfterMigration = "after-migration"
	StageServe          = "serve"
)

// LaunchError tells which step of [Launcher.Run] failed.
type LaunchError struct {
	Stage string
	Err   error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("host launch failed at %s: %v", e.Stage, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}
