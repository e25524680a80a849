// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoServicesProvided is returned by NewHandlers when it is called without
// a service container. The host treats it as a fatal misconfiguration.
var errNoServicesProvided = errors.New("no services provided for handlers")
