package ui

import "time"

// ToggleRequestedMsg asks the clock widget to clock in or out,
// depending on its current state
type ToggleRequestedMsg struct{}

// clockInResultMsg carries the outcome of a clock-in request
type clockInResultMsg struct {
	err   error
	start time.Time
}

// clockOutResultMsg carries the outcome of a clock-out request
type clockOutResultMsg struct {
	err error
}
