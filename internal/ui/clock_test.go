package ui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/punch/internal/config"
	"github.com/renato0307/punch/internal/domain"
	portsmocks "github.com/renato0307/punch/internal/ports/mocks"
)

var t0 = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestClock(t *testing.T) (*ClockModel, *portsmocks.MockTimeTracker, *fakeClock) {
	t.Helper()
	tracker := portsmocks.NewMockTimeTracker(t)
	clock := &fakeClock{now: t0}
	m := NewClockModel(tracker, "1", ClockOptions{Clock: clock})
	t.Cleanup(m.Dispose)
	return m, tracker, clock
}

// send delivers msg and returns the resulting command
func send(m *ClockModel, msg tea.Msg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

// currentTick builds the tick the widget's running ticker is waiting for
func currentTick(m *ClockModel) TickMsg {
	return TickMsg{ID: m.ticker.ID(), tag: m.ticker.tag}
}

// clockIn drives a successful clock-in returning start
func clockIn(t *testing.T, m *ClockModel, tracker *portsmocks.MockTimeTracker, start time.Time) {
	t.Helper()
	tracker.EXPECT().ClockIn(mock.Anything, "1").Return(start, nil).Once()
	cmd := send(m, ToggleRequestedMsg{})
	require.NotNil(t, cmd)
	send(m, cmd())
	require.Equal(t, domain.StatusClockedIn, m.Status())
}

func assertView(t *testing.T, m *ClockModel, label, elapsed string, disabled bool) {
	t.Helper()
	assert.Equal(t, ClockView{Label: label, Elapsed: elapsed, Disabled: disabled}, m.ClockView())
}

func TestClockModel_MountsClockedOut(t *testing.T) {
	m, _, _ := newTestClock(t)

	assertView(t, m, "CLOCKED OUT", "--:--:--", false)
	_, ok := m.StartInstant()
	assert.False(t, ok)
	assert.Nil(t, m.Init())
}

func TestClockModel_ClockInOutScenario(t *testing.T) {
	m, tracker, clock := newTestClock(t)

	clockIn(t, m, tracker, t0)
	assertView(t, m, "CLOCKED IN", "00:00:00", false)
	assert.True(t, m.ticker.Running())

	for i := 0; i < 3; i++ {
		clock.Advance(time.Second)
		next := send(m, currentTick(m))
		assert.NotNil(t, next, "tick %d should re-arm", i)
	}
	assertView(t, m, "CLOCKED IN", "00:00:03", false)

	tracker.EXPECT().ClockOut(mock.Anything, "1").Return(nil).Once()
	cmd := send(m, ToggleRequestedMsg{})
	require.NotNil(t, cmd)
	assertView(t, m, "CLOCKED IN", "00:00:03", true)

	send(m, cmd())
	assertView(t, m, "CLOCKED OUT", "--:--:--", false)
	assert.False(t, m.ticker.Running())
}

func TestClockModel_StartComesFromServer(t *testing.T) {
	m, tracker, clock := newTestClock(t)
	// The service recorded the clock-in five seconds before the response arrived
	serverStart := t0.Add(-5 * time.Second)

	clockIn(t, m, tracker, serverStart)

	start, ok := m.StartInstant()
	require.True(t, ok)
	assert.True(t, serverStart.Equal(start))
	assertView(t, m, "CLOCKED IN", "00:00:05", false)

	clock.Advance(time.Second)
	send(m, currentTick(m))
	assert.Equal(t, "00:00:06", m.ClockView().Elapsed)
}

func TestClockModel_ElapsedRoundTrip(t *testing.T) {
	m, tracker, clock := newTestClock(t)
	clockIn(t, m, tracker, t0)

	clock.now = t0.Add(5000 * time.Millisecond)
	send(m, currentTick(m))

	assert.Equal(t, "00:00:05", m.ClockView().Elapsed)
}

func TestClockModel_MissedTicksSelfCorrect(t *testing.T) {
	m, tracker, clock := newTestClock(t)
	clockIn(t, m, tracker, t0)

	// Backgrounded for a minute, one tick delivered
	clock.Advance(61 * time.Second)
	send(m, currentTick(m))

	assert.Equal(t, "00:01:01", m.ClockView().Elapsed)
}

func TestClockModel_TogglesWhileBusyAreIgnored(t *testing.T) {
	m, tracker, _ := newTestClock(t)
	tracker.EXPECT().ClockIn(mock.Anything, "1").Return(t0, nil).Once()

	cmd := send(m, ToggleRequestedMsg{})
	require.NotNil(t, cmd)

	for i := 0; i < 5; i++ {
		assert.Nil(t, send(m, ToggleRequestedMsg{}))
		assert.Nil(t, m.Toggle())
	}
	assertView(t, m, "CLOCKED OUT", "--:--:--", true)

	send(m, cmd())
	assertView(t, m, "CLOCKED IN", "00:00:00", false)
	tracker.AssertNumberOfCalls(t, "ClockIn", 1)
}

func TestClockModel_OneRequestInFlightAcrossSequence(t *testing.T) {
	m, tracker, _ := newTestClock(t)
	inFlight := 0
	maxInFlight := 0
	track := func() {
		inFlight++
		if inFlight > maxInFlight {
			maxInFlight = inFlight
		}
	}
	tracker.EXPECT().ClockIn(mock.Anything, "1").RunAndReturn(func(context.Context, string) (time.Time, error) {
		track()
		return t0, nil
	})
	tracker.EXPECT().ClockOut(mock.Anything, "1").RunAndReturn(func(context.Context, string) error {
		track()
		return nil
	})

	var pending []tea.Cmd
	for i := 0; i < 20; i++ {
		if cmd := send(m, ToggleRequestedMsg{}); cmd != nil {
			pending = append(pending, cmd)
		}
		// Complete the request every third event
		if i%3 == 2 && len(pending) > 0 {
			require.Len(t, pending, 1)
			msg := pending[0]()
			pending = pending[:0]
			inFlight--
			send(m, msg)
		}
	}

	assert.Equal(t, 1, maxInFlight)
}

func TestClockModel_ClockInFailureReverts(t *testing.T) {
	m, tracker, _ := newTestClock(t)
	tracker.EXPECT().ClockIn(mock.Anything, "1").
		Return(time.Time{}, &domain.ServiceError{Op: "clock in", UserID: "1", Err: errors.New("connection refused")}).
		Once()

	cmd := send(m, ToggleRequestedMsg{})
	next := send(m, cmd())

	assert.Nil(t, next)
	assertView(t, m, "CLOCKED OUT", "--:--:--", false)
	assert.False(t, m.ticker.Running())

	// A new attempt is accepted immediately
	clockIn(t, m, tracker, t0)
	assertView(t, m, "CLOCKED IN", "00:00:00", false)
}

func TestClockModel_ClockOutFailureKeepsSession(t *testing.T) {
	m, tracker, clock := newTestClock(t)
	clockIn(t, m, tracker, t0)
	clock.Advance(10 * time.Second)
	send(m, currentTick(m))

	tracker.EXPECT().ClockOut(mock.Anything, "1").
		Return(&domain.ServiceError{Op: "clock out", UserID: "1", StatusCode: 500, Err: errors.New("boom")}).
		Once()
	cmd := send(m, ToggleRequestedMsg{})
	send(m, cmd())

	assertView(t, m, "CLOCKED IN", "00:00:10", false)
	start, ok := m.StartInstant()
	require.True(t, ok)
	assert.True(t, t0.Equal(start))

	// The display keeps ticking from the original start
	clock.Advance(time.Second)
	send(m, currentTick(m))
	assert.Equal(t, "00:00:11", m.ClockView().Elapsed)
}

func TestClockModel_StaleTickAfterClockOutIsDropped(t *testing.T) {
	m, tracker, clock := newTestClock(t)
	clockIn(t, m, tracker, t0)
	stale := currentTick(m)

	tracker.EXPECT().ClockOut(mock.Anything, "1").Return(nil).Once()
	cmd := send(m, ToggleRequestedMsg{})
	send(m, cmd())

	clock.Advance(time.Second)
	next := send(m, stale)

	assert.Nil(t, next)
	assertView(t, m, "CLOCKED OUT", "--:--:--", false)
}

func TestClockModel_ResultWithoutRequestIsDropped(t *testing.T) {
	m, _, _ := newTestClock(t)

	send(m, clockInResultMsg{start: t0})
	assertView(t, m, "CLOCKED OUT", "--:--:--", false)

	send(m, clockOutResultMsg{})
	assertView(t, m, "CLOCKED OUT", "--:--:--", false)
}

func TestClockModel_KeyAndMouseToggle(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.Msg
	}{
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}},
		{"left click", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, tracker, _ := newTestClock(t)
			tracker.EXPECT().ClockIn(mock.Anything, "1").Return(t0, nil).Once()

			cmd := send(m, tt.msg)
			require.NotNil(t, cmd)
			send(m, cmd())

			assert.Equal(t, domain.StatusClockedIn, m.Status())
		})
	}
}

func TestClockModel_OtherInputIgnored(t *testing.T) {
	m, _, _ := newTestClock(t)

	assert.Nil(t, send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}))
	assert.Nil(t, send(m, tea.MouseMsg{Action: tea.MouseActionMotion}))
	assert.Nil(t, send(m, tea.WindowSizeMsg{Width: 80, Height: 24}))
	assertView(t, m, "CLOCKED OUT", "--:--:--", false)
}

func TestClockModel_QuitDisposes(t *testing.T) {
	m, _, _ := newTestClock(t)

	cmd := send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.Disposed())
}

func TestClockModel_DisposeDropsLateResultsAndTicks(t *testing.T) {
	m, tracker, clock := newTestClock(t)
	clockIn(t, m, tracker, t0)
	tick := currentTick(m)

	tracker.EXPECT().ClockOut(mock.Anything, "1").RunAndReturn(func(ctx context.Context, _ string) error {
		return ctx.Err()
	}).Once()
	cmd := send(m, ToggleRequestedMsg{})
	require.NotNil(t, cmd)

	m.Dispose()
	m.Dispose() // idempotent

	// The in-flight request sees the canceled context
	msg := cmd()
	assert.ErrorIs(t, msg.(clockOutResultMsg).err, context.Canceled)

	send(m, msg)
	clock.Advance(time.Second)
	assert.Nil(t, send(m, tick))
	assert.Nil(t, m.Toggle())

	assert.Equal(t, domain.StatusClockedIn, m.Status())
	assert.Equal(t, "00:00:00", m.ClockView().Elapsed)
}

func TestClockModel_HelpToggle(t *testing.T) {
	m, _, _ := newTestClock(t)

	send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	assert.True(t, m.help.ShowAll)

	send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	assert.False(t, m.help.ShowAll)
}

func TestClockModel_CustomKeys(t *testing.T) {
	tracker := portsmocks.NewMockTimeTracker(t)
	m := NewClockModel(tracker, "1", ClockOptions{
		Clock: &fakeClock{now: t0},
		Keys:  config.KeyBindingsConfig{"toggle": {"t"}},
	})
	t.Cleanup(m.Dispose)
	tracker.EXPECT().ClockIn(mock.Anything, "1").Return(t0, nil).Once()

	assert.Nil(t, send(m, tea.KeyMsg{Type: tea.KeyEnter}))
	cmd := send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	require.NotNil(t, cmd)
	send(m, cmd())

	assert.Equal(t, domain.StatusClockedIn, m.Status())
}

func TestClockModel_View(t *testing.T) {
	m, tracker, _ := newTestClock(t)
	m.subtitle = "user 1"

	out := m.View()
	assert.Contains(t, out, "CLOCKED OUT")
	assert.Contains(t, out, "--:--:--")
	assert.Contains(t, out, "user 1")

	clockIn(t, m, tracker, t0.Add(-3661*time.Second))
	out = m.View()
	assert.Contains(t, out, "CLOCKED IN")
	assert.Contains(t, out, "01:01:01")
}

func TestClockModel_InvariantViolationPanics(t *testing.T) {
	assert.Panics(t, func() {
		mustHold(domain.ErrInvariantViolation)
	})
	assert.NotPanics(t, func() {
		mustHold(nil)
	})
}
