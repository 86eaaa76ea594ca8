package model

import (
	"testing"
	"time"
)

func TestTimerTask_GetRemainingString(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		duration time.Duration
		elapsed  time.Duration
		expected string
	}{
		{25 * time.Minute, 0, "25:00"},
		{25 * time.Minute, 90 * time.Second, "23:30"},
		{25 * time.Minute, 1500 * time.Millisecond, "24:59"},
		{2 * time.Hour, time.Minute, "01:59:00"},
		{time.Minute, time.Minute, "—"},
		{time.Minute, 2 * time.Minute, "—"},
	}

	for _, test := range tests {
		task := &TimerTask{
			Duration:  test.duration,
			Status:    TaskStatusRunning,
			StartedAt: start,
		}
		result := task.GetRemainingString(start.Add(test.elapsed))
		if result != test.expected {
			t.Errorf("GetRemainingString() duration=%v elapsed=%v = %s, expected %s",
				test.duration, test.elapsed, result, test.expected)
		}
	}
}

func TestTimerTask_RemainingByStatus(t *testing.T) {
	now := time.Now()

	pending := &TimerTask{Duration: 5 * time.Minute, Status: TaskStatusPending}
	if pending.Remaining(now) != 5*time.Minute {
		t.Errorf("Pending timer should report full duration, got %v", pending.Remaining(now))
	}

	stopped := &TimerTask{Duration: 5 * time.Minute, Status: TaskStatusStopped, StartedAt: now}
	if stopped.Remaining(now) != 0 {
		t.Errorf("Stopped timer should report zero, got %v", stopped.Remaining(now))
	}
}

func TestTimerTask_GetDisplayTitle(t *testing.T) {
	tests := []struct {
		label    string
		duration time.Duration
		expected string
	}{
		{"Focus", 25 * time.Minute, "Focus"},
		{"", 5 * time.Minute, "5m0s"},
	}

	for _, test := range tests {
		task := &TimerTask{Label: test.label, Duration: test.duration}
		result := task.GetDisplayTitle()
		if result != test.expected {
			t.Errorf("GetDisplayTitle() with label='%s' = '%s', expected '%s'", test.label, result, test.expected)
		}
	}
}
