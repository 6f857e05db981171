package ui

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/punch/internal/config"
	"github.com/renato0307/punch/internal/domain"
	"github.com/renato0307/punch/internal/logging"
	"github.com/renato0307/punch/internal/ports"
	"github.com/renato0307/punch/internal/theme"
	"github.com/renato0307/punch/internal/version"
)

// ClockView is the render-only view model of the clock widget
type ClockView struct {
	Disabled bool
	Elapsed  string
	Label    string
}

// ClockOptions configures a ClockModel
type ClockOptions struct {
	Clock    ports.Clock // defaults to the system clock
	Keys     config.KeyBindingsConfig
	Subtitle string // rendered under the widget, e.g. the user id
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// ClockModel is the attendance clock widget.
//
// All state changes happen inside Update, which bubbletea runs on a single
// goroutine. Service calls run as commands and report back via result
// messages. The busy flag guarantees at most one request in flight, so
// results are applied in the order their requests were issued.
type ClockModel struct {
	attendance *domain.Attendance
	busy       bool
	cancel     context.CancelFunc
	clock      ports.Clock
	ctx        context.Context // canceled on Dispose, aborts in-flight requests
	disposed   atomic.Bool
	elapsed    string
	help       help.Model
	keys       KeyMap
	subtitle   string
	ticker     *Ticker
	tracker    ports.TimeTracker
	userID     string
}

// NewClockModel mounts a clocked out widget for userID
func NewClockModel(tracker ports.TimeTracker, userID string, opts ClockOptions) *ClockModel {
	clock := opts.Clock
	if clock == nil {
		clock = systemClock{}
	}

	ctx, cancel := context.WithCancel(context.Background())

	logging.Logger.Debug("Clock widget mounted", "user_id", userID)

	return &ClockModel{
		attendance: domain.NewAttendance(),
		cancel:     cancel,
		clock:      clock,
		ctx:        ctx,
		elapsed:    domain.ElapsedPlaceholder,
		help:       help.New(),
		keys:       NewKeyMap(opts.Keys),
		subtitle:   opts.Subtitle,
		ticker:     NewTicker(TickInterval),
		tracker:    tracker,
		userID:     userID,
	}
}

func (m *ClockModel) Init() tea.Cmd {
	return nil
}

func (m *ClockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.disposed.Load() {
		// Late ticks and service results must not touch a disposed widget
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.ForceQuit), key.Matches(msg, m.keys.Quit):
			m.Dispose()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Toggle):
			return m, m.Toggle()
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			return m, m.Toggle()
		}

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case ToggleRequestedMsg:
		return m, m.Toggle()

	case clockInResultMsg:
		return m, m.handleClockInResult(msg)

	case clockOutResultMsg:
		m.handleClockOutResult(msg)
		return m, nil

	case TickMsg:
		accepted, next := m.ticker.Accept(msg)
		if !accepted {
			return m, nil
		}
		m.refreshElapsed()
		return m, next
	}

	return m, nil
}

// Toggle issues a clock-in or clock-out request depending on the current state.
// It is ignored while another request is in flight.
func (m *ClockModel) Toggle() tea.Cmd {
	if m.disposed.Load() {
		return nil
	}
	if m.busy {
		logging.Logger.Debug("Ignoring toggle while a clock request is in flight", "user_id", m.userID)
		return nil
	}

	m.busy = true
	if m.attendance.ClockedIn() {
		logging.Logger.Info("Requesting clock out", "user_id", m.userID)
		return m.clockOutCmd()
	}
	logging.Logger.Info("Requesting clock in", "user_id", m.userID)
	return m.clockInCmd()
}

func (m *ClockModel) clockInCmd() tea.Cmd {
	ctx, tracker, userID := m.ctx, m.tracker, m.userID
	return func() tea.Msg {
		start, err := tracker.ClockIn(ctx, userID)
		return clockInResultMsg{start: start, err: err}
	}
}

func (m *ClockModel) clockOutCmd() tea.Cmd {
	ctx, tracker, userID := m.ctx, m.tracker, m.userID
	return func() tea.Msg {
		return clockOutResultMsg{err: tracker.ClockOut(ctx, userID)}
	}
}

func (m *ClockModel) handleClockInResult(msg clockInResultMsg) tea.Cmd {
	if !m.busy {
		logging.Logger.Warn("Dropping clock in result with no request in flight", "user_id", m.userID)
		return nil
	}
	m.busy = false

	if msg.err != nil {
		// Nothing was applied before the call, so the widget stays clocked out
		logging.Logger.Error("Clock in failed", "user_id", m.userID, "error", msg.err)
		return nil
	}

	mustHold(m.attendance.BeginSession(msg.start))
	m.refreshElapsed()
	logging.Logger.Info("Clocked in", "user_id", m.userID, "start", msg.start)
	return m.ticker.Start()
}

func (m *ClockModel) handleClockOutResult(msg clockOutResultMsg) {
	if !m.busy {
		logging.Logger.Warn("Dropping clock out result with no request in flight", "user_id", m.userID)
		return
	}
	m.busy = false

	if msg.err != nil {
		// The session and its original start instant are kept
		logging.Logger.Error("Clock out failed", "user_id", m.userID, "error", msg.err)
		return
	}

	mustHold(m.attendance.EndSession())
	m.ticker.Stop()
	m.elapsed = domain.ElapsedPlaceholder
	logging.Logger.Info("Clocked out", "user_id", m.userID)
}

// refreshElapsed resamples the display from the start instant
func (m *ClockModel) refreshElapsed() {
	elapsed, ok := m.attendance.Elapsed(m.clock.Now())
	if !ok {
		m.elapsed = domain.ElapsedPlaceholder
		return
	}
	m.elapsed = domain.FormatElapsed(elapsed)
}

// mustHold panics on an attendance invariant violation. The busy flag makes
// these unreachable, so hitting one is a bug in the widget.
func mustHold(err error) {
	if err != nil {
		panic(err)
	}
}

// Dispose unmounts the widget: the ticker stops re-arming, pending results
// are dropped and in-flight requests are canceled. Safe to call more than
// once and from any goroutine.
func (m *ClockModel) Dispose() {
	if m.disposed.Swap(true) {
		return
	}
	m.cancel()
	logging.Logger.Debug("Clock widget disposed", "user_id", m.userID)
}

// Disposed reports whether Dispose was called
func (m *ClockModel) Disposed() bool {
	return m.disposed.Load()
}

// ClockView returns the current view model
func (m *ClockModel) ClockView() ClockView {
	return ClockView{
		Disabled: m.busy,
		Elapsed:  m.elapsed,
		Label:    m.attendance.Status().Label(),
	}
}

// Status returns the current clock status
func (m *ClockModel) Status() domain.ClockStatus {
	return m.attendance.Status()
}

// StartInstant returns the start of the active session, if any
func (m *ClockModel) StartInstant() (time.Time, bool) {
	return m.attendance.Start()
}

func (m *ClockModel) View() string {
	v := m.ClockView()

	style := theme.ClockedOutStyle
	switch {
	case v.Disabled:
		style = theme.BusyStyle
	case m.attendance.ClockedIn():
		style = theme.ClockedInStyle
	}

	var b strings.Builder
	b.WriteString(theme.TitleStyle.Render("punch"))
	b.WriteString("\n")
	b.WriteString(style.Render(lipgloss.JoinVertical(lipgloss.Center, v.Label, v.Elapsed)))
	b.WriteString("\n")
	if m.subtitle != "" {
		b.WriteString(theme.UserStyle.Render(m.subtitle))
		b.WriteString("\n")
	}
	b.WriteString(theme.HelpStyle.Render(m.help.View(m.keys)))
	b.WriteString("\n")
	b.WriteString(theme.VersionStyle.Render("punch " + version.Version))
	b.WriteString("\n")

	return b.String()
}
