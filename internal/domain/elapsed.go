package domain

import (
	"fmt"
	"time"
)

// ElapsedPlaceholder is displayed when no session is active
const ElapsedPlaceholder = "--:--:--"

// FormatElapsed renders a duration as HH:MM:SS using whole seconds.
// Hours are not wrapped at 24 and grow past two digits when needed.
// Negative durations (clock skew) are rendered with a leading minus sign.
func FormatElapsed(d time.Duration) string {
	total := int64(d / time.Second)
	sign := ""
	if total < 0 {
		sign = "-"
		total = -total
	}

	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	return fmt.Sprintf("%s%02d:%02d:%02d", sign, hours, minutes, seconds)
}
