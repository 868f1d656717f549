package quality

import "fmt"

// GenerationError reports a failure in the external text-generation step.
// The analysis itself succeeded up to that point, but the result cannot be
// assembled without the generated summary.
type GenerationError struct {
	Stage string
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s generation failed: %v", e.Stage, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
