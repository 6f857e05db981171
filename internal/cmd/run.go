package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/punch/internal/logging"
	"github.com/renato0307/punch/internal/ui"
)

// RunCmd starts the clock TUI
type RunCmd struct{}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	keys, err := cli.keyBindings(ui.GetDefaultKeyBindings())
	if err != nil {
		return err
	}

	clock := ui.NewClockModel(cli.Container.Client, cli.User, ui.ClockOptions{
		Keys:     keys,
		Subtitle: fmt.Sprintf("user %s @ %s", cli.User, cli.ServiceURL),
	})
	defer clock.Dispose()

	p := tea.NewProgram(clock,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	logging.Logger.Info("Starting clock", "user_id", cli.User, "service_url", cli.ServiceURL)
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}
