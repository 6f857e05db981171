package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/renato0307/punch/internal/domain"
	"github.com/renato0307/punch/internal/theme"
)

const entryTimeLayout = "2006-01-02 15:04:05"

// EntriesCmd lists recent time entries
type EntriesCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Limit  int    `help:"Maximum number of entries to show" default:"10" short:"n"`

	now func() time.Time `kong:"-"`
}

type entryOutput struct {
	ClockIn  time.Time  `json:"clock_in"`
	ClockOut *time.Time `json:"clock_out,omitempty"`
	Duration string     `json:"duration"`
	ID       string     `json:"id"`
}

// Run executes the entries command
func (e *EntriesCmd) Run(cli *CLI) error {
	entries, err := cli.Container.Client.List(context.Background(), cli.User, e.Limit)
	if err != nil {
		return err
	}

	now := time.Now
	if e.now != nil {
		now = e.now
	}

	w := cli.out()
	if e.Format == "json" {
		out := make([]entryOutput, 0, len(entries))
		for _, entry := range entries {
			out = append(out, entryOutput{
				ClockIn:  entry.ClockIn,
				ClockOut: entry.ClockOut,
				Duration: domain.FormatElapsed(entry.Duration(now())),
				ID:       entry.ID,
			})
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	if len(entries) == 0 {
		fmt.Fprintf(w, "No time entries for user %s\n", cli.User)
		return nil
	}

	fmt.Fprintln(w, theme.HeaderStyle.Render(fmt.Sprintf("Time entries for user %s", cli.User)))
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "Clock In\tClock Out\tDuration")
	fmt.Fprintln(tw, "────────\t─────────\t────────")
	for _, entry := range entries {
		clockOut := "-"
		if entry.ClockOut != nil {
			clockOut = entry.ClockOut.Local().Format(entryTimeLayout)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n",
			entry.ClockIn.Local().Format(entryTimeLayout),
			clockOut,
			domain.FormatElapsed(entry.Duration(now())))
	}
	return tw.Flush()
}
