package storage

import (
	"github.com/renato0307/punch/internal/domain"
)

// timeEntryModelToDomain converts a TimeEntryModel (GORM) to domain.TimeEntry
func timeEntryModelToDomain(m TimeEntryModel) domain.TimeEntry {
	entry := domain.TimeEntry{
		ClockIn: m.ClockIn.UTC(),
		ID:      m.ID,
		UserID:  m.UserID,
	}
	if m.ClockOut != nil {
		clockOut := m.ClockOut.UTC()
		entry.ClockOut = &clockOut
	}
	return entry
}

// domainToTimeEntryModel converts a domain.TimeEntry to TimeEntryModel (GORM)
func domainToTimeEntryModel(e domain.TimeEntry) TimeEntryModel {
	model := TimeEntryModel{
		ClockIn: e.ClockIn.UTC(),
		ID:      e.ID,
		UserID:  e.UserID,
	}
	if e.ClockOut != nil {
		clockOut := e.ClockOut.UTC()
		model.ClockOut = &clockOut
	}
	return model
}
