package analytics

import (
	"errors"
	"fmt"
)

// ErrMissingLanguage is returned when an analytics call has no language code.
var ErrMissingLanguage = errors.New("language code is required")

// ErrSourceFailed indicates a required read against the data source failed.
// The whole aggregate fails with it; no partial result is returned.
type ErrSourceFailed struct {
	Source string
	Err    error
}

func (e *ErrSourceFailed) Error() string {
	return fmt.Sprintf("%s fetch failed: %v", e.Source, e.Err)
}

func (e *ErrSourceFailed) Unwrap() error { return e.Err }

// ErrInvalidPolicy indicates a policy file that could not be decoded or
// does not conform to the policy schema.
type ErrInvalidPolicy struct {
	Path string
	Err  error
}

func (e *ErrInvalidPolicy) Error() string {
	return fmt.Sprintf("invalid policy %s: %v", e.Path, e.Err)
}

func (e *ErrInvalidPolicy) Unwrap() error { return e.Err }
