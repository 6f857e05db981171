package domain

import "time"

// TimeEntry is one clock-in/clock-out interval recorded by the time-tracking service
type TimeEntry struct {
	ClockIn  time.Time
	ClockOut *time.Time
	ID       string
	UserID   string
}

// IsOpen reports whether the entry has not been clocked out yet
func (e TimeEntry) IsOpen() bool {
	return e.ClockOut == nil
}

// Duration returns the length of the entry, measured up to now when still open
func (e TimeEntry) Duration(now time.Time) time.Duration {
	if e.ClockOut != nil {
		return e.ClockOut.Sub(e.ClockIn)
	}
	return now.Sub(e.ClockIn)
}
