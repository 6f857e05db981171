package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/alecthomas/kong"

	"github.com/renato0307/punch/internal/config"
	"github.com/renato0307/punch/internal/logging"
	"github.com/renato0307/punch/internal/version"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version        kong.VersionFlag `help:"Show version information"`
	Debug          bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile      string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles    int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	RequestTimeout int              `help:"Seconds before a request to the time-tracking service times out" default:"10" env:"PUNCH_REQUEST_TIMEOUT"`
	ServiceURL     string           `help:"Base URL of the time-tracking service" default:"http://127.0.0.1:8080" env:"PUNCH_SERVICE_URL"`
	User           string           `help:"User id to clock in and out" default:"1" short:"u" env:"PUNCH_USER"`

	Run      RunCmd      `cmd:"" help:"Start the clock (default)" default:"1"`
	Status   StatusCmd   `cmd:"status" help:"Show whether you are clocked in"`
	Entries  EntriesCmd  `cmd:"entries" help:"List recent time entries"`
	Serve    ServeCmd    `cmd:"serve" help:"Run the time-tracking HTTP service"`
	SSH      SSHCmd      `cmd:"ssh" help:"Serve the clock over SSH"`
	Setup    SetupCmd    `cmd:"setup" help:"Configure the service URL and user interactively"`
	Settings SettingsCmd `cmd:"settings" help:"Manage settings (meta, keys)"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	Stdout    io.Writer        `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// out returns where commands print their results
func (c *CLI) out() io.Writer {
	if c.Stdout != nil {
		return c.Stdout
	}
	return os.Stdout
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	c.applySettings()

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Exported so the storage layer and any child process log to the same file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("PUNCH_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("PUNCH_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv("PUNCH_MAX_LOG_FILES", strconv.Itoa(c.MaxLogFiles))
	}

	logging.Logger.Debug("Starting punch", "version", version.Info())

	container, err := NewContainer(ContainerConfig{
		RequestTimeout: time.Duration(c.RequestTimeout) * time.Second,
		ServiceURL:     c.ServiceURL,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// applySettings fills values left at their defaults from settings.json.
// Precedence: CLI flags > env vars > settings.json > defaults.
func (c *CLI) applySettings() {
	if c.settings == nil {
		return
	}

	if c.MaxLogFiles == logging.DefaultMaxLogFiles && !hasEnv("PUNCH_MAX_LOG_FILES") && c.settings.MaxLogFiles != nil {
		c.MaxLogFiles = *c.settings.MaxLogFiles
	}

	if !c.Debug && !hasEnv("PUNCH_DEBUG") && c.settings.Debug != nil && *c.settings.Debug {
		c.Debug = true
	}

	if c.ServiceURL == config.DefaultServiceURL && !hasEnv("PUNCH_SERVICE_URL") && c.settings.ServiceURL != "" {
		c.ServiceURL = c.settings.ServiceURL
	}

	if c.User == config.DefaultUserID && !hasEnv("PUNCH_USER") && c.settings.UserID != "" {
		c.User = c.settings.UserID
	}

	if c.RequestTimeout == config.DefaultRequestTimeoutSeconds && !hasEnv("PUNCH_REQUEST_TIMEOUT") && c.settings.RequestTimeoutSeconds != nil {
		c.RequestTimeout = *c.settings.RequestTimeoutSeconds
	}
}

func hasEnv(name string) bool {
	_, ok := os.LookupEnv(name)
	return ok
}

// keyBindings returns the validated key overrides from settings.json
func (c *CLI) keyBindings(defaults map[string][]string) (config.KeyBindingsConfig, error) {
	if c.settings == nil || c.settings.Keys == nil {
		return nil, nil
	}
	if err := c.settings.Keys.Validate(defaults); err != nil {
		return nil, fmt.Errorf("invalid key bindings in settings.json: %w", err)
	}
	logging.Logger.Debug("Custom key bindings loaded and validated")
	return c.settings.Keys, nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
