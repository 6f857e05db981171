package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/renato0307/punch/internal/domain"
	"github.com/renato0307/punch/internal/theme"
)

// StatusCmd shows whether the user is clocked in
type StatusCmd struct {
	Format string `help:"Output format: text or json" enum:"text,json" default:"text"`

	now func() time.Time `kong:"-"`
}

type statusOutput struct {
	ClockIn *time.Time `json:"clock_in,omitempty"`
	Elapsed string     `json:"elapsed"`
	Status  string     `json:"status"`
	UserID  string     `json:"user_id"`
}

// Run executes the status command
func (s *StatusCmd) Run(cli *CLI) error {
	entry, err := cli.Container.Client.Current(context.Background(), cli.User)
	if err != nil {
		return err
	}

	now := time.Now
	if s.now != nil {
		now = s.now
	}

	out := statusOutput{
		Elapsed: domain.ElapsedPlaceholder,
		Status:  domain.LabelClockedOut,
		UserID:  cli.User,
	}
	if entry != nil {
		clockIn := entry.ClockIn
		out.ClockIn = &clockIn
		out.Elapsed = domain.FormatElapsed(entry.Duration(now()))
		out.Status = domain.LabelClockedIn
	}

	w := cli.out()
	if s.Format == "json" {
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	if out.ClockIn == nil {
		fmt.Fprintf(w, "%s %s\n", theme.NormalStyle.Render(out.Status), out.Elapsed)
		return nil
	}
	fmt.Fprintf(w, "%s %s (since %s)\n",
		theme.OpenEntryStyle.Render(out.Status),
		out.Elapsed,
		out.ClockIn.Local().Format(entryTimeLayout))
	return nil
}
