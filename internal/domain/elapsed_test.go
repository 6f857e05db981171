package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Duration
		expected string
	}{
		{"zero", 0, "00:00:00"},
		{"seconds only", 5 * time.Second, "00:00:05"},
		{"one of each", 3661 * time.Second, "01:01:01"},
		{"hours not wrapped at a day", 90000 * time.Second, "25:00:00"},
		{"three digit hours", 360000 * time.Second, "100:00:00"},
		{"sub-second truncated", 2999 * time.Millisecond, "00:00:02"},
		{"just under a minute", 59 * time.Second, "00:00:59"},
		{"negative skew", -5 * time.Second, "-00:00:05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatElapsed(tt.input))
		})
	}
}
