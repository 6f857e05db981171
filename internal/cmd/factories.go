package cmd

import (
	"errors"
	"time"

	adapterstorage "github.com/renato0307/punch/internal/adapters/storage"
	"github.com/renato0307/punch/internal/adapters/timetracker"
	"github.com/renato0307/punch/internal/logging"
	"github.com/renato0307/punch/internal/ports"
	"github.com/renato0307/punch/internal/services"
	"github.com/renato0307/punch/internal/version"
)

// ContainerConfig holds the resolved settings the container is built from
type ContainerConfig struct {
	RequestTimeout time.Duration
	ServiceURL     string
}

// Container holds all dependencies for the application
type Container struct {
	// Client of the time-tracking service, used by the clock and the read commands
	Client ports.TimesheetClient

	// Internal - for cleanup only
	entryRepo ports.TimeEntryRepository
}

// NewContainer creates a new Container with the service client wired.
// No I/O happens here; the database is opened by OpenTimesheet.
func NewContainer(cfg ContainerConfig) (*Container, error) {
	client, err := timetracker.NewClient(cfg.ServiceURL, timetracker.Options{
		Timeout:   cfg.RequestTimeout,
		UserAgent: "punch/" + version.Version,
	})
	if err != nil {
		return nil, err
	}

	return &Container{Client: client}, nil
}

// OpenTimesheet opens the timesheet database and returns the backend service over it
func (c *Container) OpenTimesheet(dbPath string) (*services.TimesheetService, error) {
	if c.entryRepo != nil {
		return nil, errors.New("timesheet database already open")
	}

	repo, err := adapterstorage.NewSQLiteRepository(dbPath)
	if err != nil {
		return nil, err
	}
	c.entryRepo = repo

	logging.Logger.Info("Timesheet service ready", "db_path", dbPath)
	return services.NewTimesheetService(repo, nil), nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.entryRepo != nil {
		return c.entryRepo.Close()
	}
	return nil
}
