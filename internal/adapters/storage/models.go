package storage

import "time"

// TimeEntryModel is the GORM model for time_entries table
type TimeEntryModel struct {
	ClockIn   time.Time  `gorm:"not null;index:idx_user_clock_in,priority:2"`
	ClockOut  *time.Time `gorm:"default:null"`
	CreatedAt time.Time
	ID        string `gorm:"primaryKey"`
	UpdatedAt time.Time
	UserID    string `gorm:"not null;index:idx_user_clock_in,priority:1"`
}

// TableName specifies the table name for GORM
func (TimeEntryModel) TableName() string { return "time_entries" }
