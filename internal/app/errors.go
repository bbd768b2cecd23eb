package app

import "fmt"

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// ResolveFailed indicates option resolution failed.
	ResolveFailed AppErrorType = iota
	// ConflictCheckFailed indicates pre-flight conflict detection failed.
	ConflictCheckFailed
	// StepFailed indicates a scaffold pipeline step failed.
	StepFailed
)

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewResolveError creates an option resolution error.
func NewResolveError(message string, cause error) *AppError {
	return NewAppError(ResolveFailed, message, cause)
}

// NewStepError creates a pipeline step error.
func NewStepError(stepName string, cause error) *AppError {
	return NewAppError(StepFailed, fmt.Sprintf("step %q failed", stepName), cause)
}
