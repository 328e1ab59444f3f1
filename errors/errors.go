package errors

import "fmt"

// TrackerErrorType categorizes different kinds of tracker failures
type TrackerErrorType string

const (
	ValidationError  TrackerErrorType = "validation"
	CacheError       TrackerErrorType = "cache"
	PersistenceError TrackerErrorType = "persistence"
	ClockError       TrackerErrorType = "clock"
)

// TrackerError provides structured error information with a severity split:
// cache errors are fatal (id uniqueness across restarts is at stake), while
// persistence errors are degraded-but-continue (the in-memory result stands).
type TrackerError struct {
	Type    TrackerErrorType `json:"type"`
	Message string           `json:"message"`
	Fatal   bool             `json:"fatal"`
	Details map[string]any   `json:"details,omitempty"`
}

func (e *TrackerError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Constructor functions for common error types
func NewValidationError(message string, details ...map[string]any) *TrackerError {
	var d map[string]any
	if len(details) > 0 {
		d = details[0]
	}
	return &TrackerError{
		Type:    ValidationError,
		Message: message,
		Fatal:   false,
		Details: d,
	}
}

func NewCacheError(message string, details ...map[string]any) *TrackerError {
	var d map[string]any
	if len(details) > 0 {
		d = details[0]
	}
	return &TrackerError{
		Type:    CacheError,
		Message: message,
		Fatal:   true,
		Details: d,
	}
}

func NewPersistenceError(message string, details ...map[string]any) *TrackerError {
	var d map[string]any
	if len(details) > 0 {
		d = details[0]
	}
	return &TrackerError{
		Type:    PersistenceError,
		Message: message,
		Fatal:   false,
		Details: d,
	}
}

func NewClockError(message string, details ...map[string]any) *TrackerError {
	var d map[string]any
	if len(details) > 0 {
		d = details[0]
	}
	return &TrackerError{
		Type:    ClockError,
		Message: message,
		Fatal:   false,
		Details: d,
	}
}

// IsTrackerError checks if an error is a TrackerError and returns it
func IsTrackerError(err error) (*TrackerError, bool) {
	if trackerErr, ok := err.(*TrackerError); ok {
		return trackerErr, true
	}
	return nil, false
}
