package war

import (
	"fmt"
	"time"
)

// TimestampLayout is the Clash API timestamp format, e.g. 20240101T123000.000Z
const TimestampLayout = "20060102T150405.000Z"

// RemainingLabel accompanies every computed time remaining
const RemainingLabel = "remaining"

// CalculateTimeRemaining formats the time left until timestamp as "2h 30m" or "5m".
// Malformed timestamps and timestamps not strictly after now yield ok=false;
// upstream data is not always well formed so this never returns an error.
func CalculateTimeRemaining(timestamp string, now time.Time) (remaining, label string, ok bool) {
	target, err := time.Parse(TimestampLayout, timestamp)
	if err != nil {
		return "", "", false
	}

	diff := target.Sub(now)
	if diff <= 0 {
		return "", "", false
	}

	hours := int(diff.Hours())
	minutes := int(diff.Minutes()) % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes), RemainingLabel, true
	}
	return fmt.Sprintf("%dm", minutes), RemainingLabel, true
}
