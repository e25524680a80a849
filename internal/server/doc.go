// Package server wires and runs the application's transport servers.
//
// [Launcher] drives the startup sequence of a [Host]: typed configuration
// binding, host configuration, installation of the production logger, the
// migration gate and an optional after-migration hook. Only then does it
// enter the blocking serve loop. The chi/gRPC host returned by [NewServer]
// drains in-flight requests within host.shutdownTimeout once its context is
// canceled.
package server
