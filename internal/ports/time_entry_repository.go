package ports

import (
	"context"
	"time"

	"github.com/renato0307/punch/internal/domain"
)

// TimeEntryReader reads stored time entries
type TimeEntryReader interface {
	// FindOpen returns the user's open entry, or nil when there is none
	FindOpen(ctx context.Context, userID string) (*domain.TimeEntry, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]domain.TimeEntry, error)
}

// TimeEntryWriter creates and closes time entries
type TimeEntryWriter interface {
	Create(ctx context.Context, entry domain.TimeEntry) error
	CloseEntry(ctx context.Context, id string, clockOut time.Time) error
}

// TimeEntryRepository is the composite interface
type TimeEntryRepository interface {
	TimeEntryReader
	TimeEntryWriter
	Close() error
}
