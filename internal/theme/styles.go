package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0, 0, 0)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 0, 1, 0)

	UserStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Clock widget styles
var (
	clockBase = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight).
			Border(lipgloss.RoundedBorder()).
			Align(lipgloss.Center).
			Width(18).
			Padding(0, 1)

	ClockedInStyle = clockBase.
			Background(ColorClockedIn).
			BorderForeground(ColorClockedInBorder)

	ClockedOutStyle = clockBase.
			Background(ColorClockedOut).
			BorderForeground(ColorClockedOut)

	// BusyStyle dims the widget while a clock request is in flight
	BusyStyle = clockBase.
			Faint(true).
			Foreground(ColorMuted).
			Background(ColorBusy).
			BorderForeground(ColorBusy)
)

// Table styles used by CLI output
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	OpenEntryStyle = lipgloss.NewStyle().
			Foreground(ColorClockedIn).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)
)
