package timer

import (
	"time"

	"github.com/ytget/quickbar/internal/model"
)

// Timers defines the interface for the timer service.
type Timers interface {
	SetUpdateCallback(func(*model.TimerTask))
	SetCompletionCallback(func(*model.TimerTask))
	StartTimer(label string, duration time.Duration) (*model.TimerTask, error)
	StopTimer(id string) error
	StopAll() int
	GetTask(id string) (*model.TimerTask, bool)
	GetAllTasks() []*model.TimerTask
}
