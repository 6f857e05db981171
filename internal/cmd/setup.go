package cmd

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/renato0307/punch/internal/config"
	"github.com/renato0307/punch/internal/logging"
)

// SetupCmd configures the service URL and user interactively
type SetupCmd struct{}

// setupAnswers holds the values edited in the setup form
type setupAnswers struct {
	Confirm    bool
	ServiceURL string
	Timeout    string
	UserID     string
}

// Run executes the setup command
func (s *SetupCmd) Run(cli *CLI) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	answers := setupAnswers{
		ServiceURL: cli.ServiceURL,
		Timeout:    strconv.Itoa(cli.RequestTimeout),
		UserID:     cli.User,
	}

	if err := newSetupForm(&answers).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Fprintln(cli.out(), "Setup cancelled")
			return nil
		}
		return fmt.Errorf("setup form failed: %w", err)
	}
	if !answers.Confirm {
		fmt.Fprintln(cli.out(), "Nothing saved")
		return nil
	}

	applySetupAnswers(settings, answers)
	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	logging.Logger.Info("Settings saved by setup",
		"service_url", settings.ServiceURL,
		"user_id", settings.UserID)
	fmt.Fprintf(cli.out(), "Saved %s\n", config.GetSettingsPath())
	return nil
}

func newSetupForm(answers *setupAnswers) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Time-tracking service URL").
				Value(&answers.ServiceURL).
				Validate(validateServiceURL),
			huh.NewInput().
				Title("User id").
				Description("The user you clock in and out as").
				Value(&answers.UserID).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("user id required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Request timeout (seconds)").
				Value(&answers.Timeout).
				Validate(validateTimeout),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Save settings?").
				Value(&answers.Confirm),
		),
	)
}

func validateServiceURL(s string) error {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("URL must start with http:// or https://")
	}
	if u.Host == "" {
		return errors.New("URL must include a host")
	}
	return nil
}

func validateTimeout(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return errors.New("timeout must be a positive number of seconds")
	}
	return nil
}

// applySetupAnswers copies validated answers into settings
func applySetupAnswers(settings *config.Settings, answers setupAnswers) {
	settings.ServiceURL = strings.TrimSpace(answers.ServiceURL)
	settings.UserID = strings.TrimSpace(answers.UserID)
	if n, err := strconv.Atoi(strings.TrimSpace(answers.Timeout)); err == nil && n > 0 {
		settings.RequestTimeoutSeconds = &n
	}
}
