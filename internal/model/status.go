package model

// TaskStatus represents the status of a focus or break timer
type TaskStatus string

const (
	// TaskStatusPending means the timer is created but not started
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusRunning means the timer is counting down
	TaskStatusRunning TaskStatus = "Running"

	// TaskStatusStopped means the timer was stopped by user
	TaskStatusStopped TaskStatus = "Stopped"

	// TaskStatusCompleted means the timer ran out
	TaskStatusCompleted TaskStatus = "Completed"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the timer has not finished yet
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusPending || ts == TaskStatusRunning
}

// IsFinished returns true if the task is in a finished state (completed or stopped)
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusStopped
}
