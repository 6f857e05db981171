package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendance_StartsClockedOut(t *testing.T) {
	a := NewAttendance()

	assert.Equal(t, StatusClockedOut, a.Status())
	assert.False(t, a.ClockedIn())
	_, ok := a.Start()
	assert.False(t, ok)
	_, ok = a.Elapsed(time.Now())
	assert.False(t, ok)
}

func TestAttendance_ZeroValueIsClockedOut(t *testing.T) {
	var a Attendance

	assert.Equal(t, StatusClockedOut, a.Status())
	assert.Equal(t, LabelClockedOut, a.Status().Label())
}

func TestAttendance_BeginAndEndSession(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	a := NewAttendance()

	require.NoError(t, a.BeginSession(start))
	assert.True(t, a.ClockedIn())
	assert.Equal(t, LabelClockedIn, a.Status().Label())

	got, ok := a.Start()
	require.True(t, ok)
	assert.True(t, start.Equal(got))

	elapsed, ok := a.Elapsed(start.Add(90 * time.Second))
	require.True(t, ok)
	assert.Equal(t, 90*time.Second, elapsed)

	require.NoError(t, a.EndSession())
	assert.False(t, a.ClockedIn())
	_, ok = a.Start()
	assert.False(t, ok)
}

func TestAttendance_BeginWhileClockedInViolatesInvariant(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	a := NewAttendance()
	require.NoError(t, a.BeginSession(start))

	err := a.BeginSession(start.Add(time.Hour))

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvariantViolation))
	// Original start instant is preserved
	got, _ := a.Start()
	assert.True(t, start.Equal(got))
}

func TestAttendance_EndWhileClockedOutViolatesInvariant(t *testing.T) {
	a := NewAttendance()

	err := a.EndSession()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvariantViolation)
	assert.Equal(t, StatusClockedOut, a.Status())
}

func TestAttendance_ElapsedCanBeNegative(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	a := NewAttendance()
	require.NoError(t, a.BeginSession(start))

	elapsed, ok := a.Elapsed(start.Add(-5 * time.Second))

	require.True(t, ok)
	assert.Equal(t, -5*time.Second, elapsed)
}

func TestServiceError(t *testing.T) {
	cause := errors.New("connection refused")

	withStatus := &ServiceError{Op: "clock in", UserID: "1", StatusCode: 500, Err: cause}
	assert.Equal(t, "clock in for user 1 failed with status 500: connection refused", withStatus.Error())
	assert.ErrorIs(t, withStatus, cause)

	noStatus := &ServiceError{Op: "clock out", UserID: "7", Err: cause}
	assert.Equal(t, "clock out for user 7 failed: connection refused", noStatus.Error())
}

func TestTimeEntry_Duration(t *testing.T) {
	in := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	out := in.Add(8 * time.Hour)

	closed := TimeEntry{ClockIn: in, ClockOut: &out}
	assert.False(t, closed.IsOpen())
	assert.Equal(t, 8*time.Hour, closed.Duration(in.Add(24*time.Hour)))

	open := TimeEntry{ClockIn: in}
	assert.True(t, open.IsOpen())
	assert.Equal(t, 30*time.Minute, open.Duration(in.Add(30*time.Minute)))
}
