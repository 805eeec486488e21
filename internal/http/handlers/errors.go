// Package handlers defines HTTP-layer error codes used by the JSON error
// envelope.
//
// Only adapter-level failures (unknown route, wrong method, unhealthy
// dependencies) use the envelope. Handler-core failures are written as plain
// text, see writeHandlerError.
package handlers

const (
	ErrCodeNotFound         = "not_found"
	ErrCodeMethodNotAllowed = "method_not_allowed"
	ErrCodeUnavailable      = "service_unavailable"
)
