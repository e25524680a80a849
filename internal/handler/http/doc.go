// Package http implements the operational HTTP endpoints of the service:
// GET /health, GET /api/version/ and GET /api/features/.
//
// Every request passes through panic recovery, trace-id propagation, access
// logging and an optional token-bucket rate limiter before it reaches a
// handler.
package http
