package domain

import (
	"fmt"
	"time"
)

// ClockStatus represents whether a user currently has an open session
type ClockStatus string

const (
	StatusClockedIn  ClockStatus = "clocked_in"
	StatusClockedOut ClockStatus = "clocked_out"
)

// Labels shown by the clock widget
const (
	LabelClockedIn  = "CLOCKED IN"
	LabelClockedOut = "CLOCKED OUT"
)

// Label returns the display label for the status
func (s ClockStatus) Label() string {
	if s == StatusClockedIn {
		return LabelClockedIn
	}
	return LabelClockedOut
}

// Attendance is the in-memory record of the current clock session.
// The zero value is clocked out with no start instant.
type Attendance struct {
	start  time.Time
	status ClockStatus
}

// NewAttendance returns a clocked out record
func NewAttendance() *Attendance {
	return &Attendance{status: StatusClockedOut}
}

// Status returns the current clock status
func (a *Attendance) Status() ClockStatus {
	if a.status == "" {
		return StatusClockedOut
	}
	return a.status
}

// ClockedIn reports whether a session is active
func (a *Attendance) ClockedIn() bool {
	return a.Status() == StatusClockedIn
}

// Start returns the start instant of the active session.
// ok is false when clocked out.
func (a *Attendance) Start() (start time.Time, ok bool) {
	if !a.ClockedIn() {
		return time.Time{}, false
	}
	return a.start, true
}

// BeginSession marks the record clocked in from start.
// Status and start instant change together or not at all.
func (a *Attendance) BeginSession(start time.Time) error {
	if a.ClockedIn() {
		return fmt.Errorf("%w: begin session while clocked in since %s",
			ErrInvariantViolation, a.start.Format(time.RFC3339))
	}
	a.start = start
	a.status = StatusClockedIn
	return nil
}

// EndSession marks the record clocked out and clears the start instant
func (a *Attendance) EndSession() error {
	if !a.ClockedIn() {
		return fmt.Errorf("%w: end session while clocked out", ErrInvariantViolation)
	}
	a.start = time.Time{}
	a.status = StatusClockedOut
	return nil
}

// Elapsed returns now minus the start instant, or false when clocked out.
// The duration may be negative when the service clock runs ahead.
func (a *Attendance) Elapsed(now time.Time) (time.Duration, bool) {
	start, ok := a.Start()
	if !ok {
		return 0, false
	}
	return now.Sub(start), true
}
