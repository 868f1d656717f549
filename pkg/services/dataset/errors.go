package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrNoData means the input produced zero usable rows. Distinct from a
	// malformed-input failure so the caller can render a specific message.
	ErrNoData = errors.New("dataset contains no data")

	// ErrUnsupportedFormat means the file name matched neither CSV nor JSON.
	// Callers treat this as a no-data condition, since no rows are produced.
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
)

// MalformedInputError reports input that was recognized as CSV or JSON but
// could not be parsed as such.
type MalformedInputError struct {
	Format string
	Reason string
	Err    error
}

func (e *MalformedInputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed %s input: %s: %v", e.Format, e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed %s input: %s", e.Format, e.Reason)
}

func (e *MalformedInputError) Unwrap() error { return e.Err }
