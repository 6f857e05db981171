package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvariantViolation = errors.New("attendance invariant violated")
	ErrNotClockedIn       = errors.New("user is not clocked in")
	ErrUserRequired       = errors.New("user id is required")
)

// ServiceError reports a failed call to the time-tracking service.
// It covers network failures, non-success responses and malformed payloads.
type ServiceError struct {
	Err        error
	Op         string
	StatusCode int // 0 when no response was received
	UserID     string
}

func (e *ServiceError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s for user %s failed with status %d: %v", e.Op, e.UserID, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s for user %s failed: %v", e.Op, e.UserID, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}
