package ports

import (
	"context"
	"time"

	"github.com/renato0307/punch/internal/domain"
)

// TimeTracker performs clock transitions against the time-tracking service
type TimeTracker interface {
	// ClockIn records a clock-in and returns the authoritative clock-in instant.
	// The instant may lie in the past when the service already had an open entry.
	ClockIn(ctx context.Context, userID string) (time.Time, error)

	// ClockOut closes the user's open entry
	ClockOut(ctx context.Context, userID string) error
}

// TimesheetReader reads recorded entries from the time-tracking service
type TimesheetReader interface {
	Current(ctx context.Context, userID string) (*domain.TimeEntry, error)
	List(ctx context.Context, userID string, limit int) ([]domain.TimeEntry, error)
}

// TimesheetClient is the composite client interface used by the CLI
type TimesheetClient interface {
	TimeTracker
	TimesheetReader
}
