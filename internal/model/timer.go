package model

import (
	"fmt"
	"time"
)

// TimerTask represents a single focus or break countdown
type TimerTask struct {
	ID         string
	Label      string
	Duration   time.Duration
	Status     TaskStatus
	StartedAt  time.Time // when countdown started
	FinishedAt time.Time // when countdown completed or was stopped
}

// Remaining returns how much of the countdown is left at now
func (tt *TimerTask) Remaining(now time.Time) time.Duration {
	if tt.Status.IsFinished() || tt.StartedAt.IsZero() {
		if tt.Status == TaskStatusPending {
			return tt.Duration
		}
		return 0
	}

	left := tt.Duration - now.Sub(tt.StartedAt)
	if left < 0 {
		return 0
	}
	return left
}

// GetRemainingString returns the remaining time as mm:ss or hh:mm:ss, or "—" when done
func (tt *TimerTask) GetRemainingString(now time.Time) string {
	left := tt.Remaining(now)
	if left <= 0 {
		return "—"
	}

	// Round up so a fresh 25m timer shows 25:00 rather than 24:59
	total := int((left + time.Second - 1) / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// GetDisplayTitle returns the label, falling back to the formatted duration
func (tt *TimerTask) GetDisplayTitle() string {
	if tt.Label != "" {
		return tt.Label
	}
	return tt.Duration.String()
}
