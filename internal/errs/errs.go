// Package errs defines sentinel errors shared across the project.
package errs

import "errors"

var (
	ErrMetricNotFound       = errors.New("metric not found")
	ErrUnknownPressureLevel = errors.New("unknown memory pressure level")
	ErrMalformedOutput      = errors.New("malformed command output")
)
