package errors

import (
	"errors"
	"fmt"
)

// Common error types
var (
	// ErrMissingConfig indicates that a required configuration key is not set
	ErrMissingConfig = errors.New("missing required configuration")

	// ErrDependencyMissing indicates that a required external tool is not installed
	ErrDependencyMissing = errors.New("required dependency not installed")

	// ErrDatasetInvalid indicates that the dataset directory layout is incomplete
	ErrDatasetInvalid = errors.New("dataset structure invalid")

	// ErrAuthFailed indicates that authentication against Roboflow failed
	ErrAuthFailed = errors.New("authentication failed")

	// ErrCancelled indicates that the user declined an interactive prompt
	ErrCancelled = errors.New("cancelled by user")
)

// StageError ties a pipeline failure to the stage that produced it
type StageError struct {
	Stage string // Stage of the upload pipeline that failed
	Err   error  // Underlying error
}

// Error implements the error interface
func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

// Unwrap allows errors.Is and errors.As to work
func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError creates a new StageError
func NewStageError(stage string, err error) *StageError {
	return &StageError{
		Stage: stage,
		Err:   err,
	}
}

// IsCancelled checks if an error is a user cancellation
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}

// IsMissingConfig checks if an error is a missing configuration error
func IsMissingConfig(err error) bool {
	return errors.Is(err, ErrMissingConfig)
}
