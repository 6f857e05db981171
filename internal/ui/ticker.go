package ui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickInterval is how often the elapsed time display is resampled
const TickInterval = time.Second

var lastTickerID atomic.Int64

func nextTickerID() int {
	return int(lastTickerID.Add(1))
}

// TickMsg is sent on every tick of a running Ticker
type TickMsg struct {
	ID   int
	Time time.Time
	tag  int
}

// Ticker schedules one tick per interval while running.
// Each Start bumps a generation tag so ticks scheduled before a Stop are
// dropped instead of re-arming, and each Ticker has its own id so several
// widgets can share one program.
type Ticker struct {
	id       int
	interval time.Duration
	running  bool
	tag      int
}

// NewTicker creates a stopped ticker
func NewTicker(interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = TickInterval
	}
	return &Ticker{
		id:       nextTickerID(),
		interval: interval,
	}
}

// ID returns the ticker's unique id
func (t *Ticker) ID() int {
	return t.id
}

// Running reports whether ticks are being scheduled
func (t *Ticker) Running() bool {
	return t.running
}

// Start begins a new tick sequence and returns the command for its first tick
func (t *Ticker) Start() tea.Cmd {
	t.running = true
	t.tag++
	return t.schedule()
}

// Stop ends the current sequence. Ticks already in flight are ignored.
func (t *Ticker) Stop() {
	t.running = false
	t.tag++
}

// Accept reports whether msg belongs to the current sequence.
// When it does, the returned command schedules the next tick.
func (t *Ticker) Accept(msg TickMsg) (bool, tea.Cmd) {
	if !t.running || msg.ID != t.id || msg.tag != t.tag {
		return false, nil
	}
	return true, t.schedule()
}

func (t *Ticker) schedule() tea.Cmd {
	id, tag := t.id, t.tag
	return tea.Tick(t.interval, func(now time.Time) tea.Msg {
		return TickMsg{ID: id, Time: now, tag: tag}
	})
}
