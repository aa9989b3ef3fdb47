// Package generate turns a free-form prompt into a validated mob record by
// calling an Ollama model and repairing its output.
package generate

import "errors"

var (
	// ErrUnavailable indicates the generation service could not be reached.
	// It is surfaced immediately and never retried into a validation error.
	ErrUnavailable = errors.New("generation service unavailable")
	// ErrInvalidRecord indicates the model never produced a usable mob
	// record after repair and retries.
	ErrInvalidRecord = errors.New("generated content is not a valid mob record")
)
