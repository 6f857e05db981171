package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/renato0307/punch/internal/domain"
	"github.com/renato0307/punch/internal/logging"
	"github.com/renato0307/punch/internal/ports"
)

// DefaultListLimit caps List when the caller passes no limit
const DefaultListLimit = 20

// TimesheetService records clock-in and clock-out events per user
type TimesheetService struct {
	clock ports.Clock
	mu    sync.Mutex // serializes find-then-write transitions
	repo  ports.TimeEntryRepository
}

// NewTimesheetService creates a new TimesheetService
func NewTimesheetService(repo ports.TimeEntryRepository, clock ports.Clock) *TimesheetService {
	if clock == nil {
		clock = SystemClock{}
	}
	return &TimesheetService{
		clock: clock,
		repo:  repo,
	}
}

// SystemClock is the wall clock
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ClockIn opens an entry for userID.
// An already open entry is returned unchanged, so repeated clock-ins are idempotent
// and the caller always sees the instant the session really started.
func (s *TimesheetService) ClockIn(ctx context.Context, userID string) (domain.TimeEntry, error) {
	if userID == "" {
		return domain.TimeEntry{}, domain.ErrUserRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	open, err := s.repo.FindOpen(ctx, userID)
	if err != nil {
		return domain.TimeEntry{}, fmt.Errorf("failed to find open entry: %w", err)
	}
	if open != nil {
		logging.Logger.Info("User already clocked in", "user_id", userID, "entry_id", open.ID)
		return *open, nil
	}

	entry := domain.TimeEntry{
		ClockIn: s.clock.Now().UTC(),
		ID:      uuid.NewString(),
		UserID:  userID,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return domain.TimeEntry{}, fmt.Errorf("failed to create entry: %w", err)
	}

	logging.Logger.Info("Clocked in", "user_id", userID, "entry_id", entry.ID)
	return entry, nil
}

// ClockOut closes the open entry for userID.
// Returns domain.ErrNotClockedIn when there is none.
func (s *TimesheetService) ClockOut(ctx context.Context, userID string) (domain.TimeEntry, error) {
	if userID == "" {
		return domain.TimeEntry{}, domain.ErrUserRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	open, err := s.repo.FindOpen(ctx, userID)
	if err != nil {
		return domain.TimeEntry{}, fmt.Errorf("failed to find open entry: %w", err)
	}
	if open == nil {
		return domain.TimeEntry{}, domain.ErrNotClockedIn
	}

	clockOut := s.clock.Now().UTC()
	if err := s.repo.CloseEntry(ctx, open.ID, clockOut); err != nil {
		return domain.TimeEntry{}, fmt.Errorf("failed to close entry %s: %w", open.ID, err)
	}
	open.ClockOut = &clockOut

	logging.Logger.Info("Clocked out", "user_id", userID, "entry_id", open.ID,
		"duration", open.Duration(clockOut).String())
	return *open, nil
}

// Current returns the open entry for userID, or nil when clocked out
func (s *TimesheetService) Current(ctx context.Context, userID string) (*domain.TimeEntry, error) {
	if userID == "" {
		return nil, domain.ErrUserRequired
	}
	return s.repo.FindOpen(ctx, userID)
}

// List returns the user's entries, newest first
func (s *TimesheetService) List(ctx context.Context, userID string, limit int) ([]domain.TimeEntry, error) {
	if userID == "" {
		return nil, domain.ErrUserRequired
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return s.repo.ListByUser(ctx, userID, limit)
}
