package timer

import (
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/quickbar/internal/model"
)

// TaskIDPrefix prefixes every generated timer ID
const TaskIDPrefix = "timer-"

// Service handles focus and break countdowns
type Service struct {
	tasks      map[string]*model.TimerTask
	timers     map[string]*time.Timer
	tasksMutex sync.RWMutex
	onUpdate   func(*model.TimerTask) // callback for UI updates
	onComplete func(*model.TimerTask) // callback when a countdown runs out
	afterFunc  func(time.Duration, func()) *time.Timer
	now        func() time.Time
}

// NewService creates a new timer service
func NewService() *Service {
	return &Service{
		tasks:     make(map[string]*model.TimerTask),
		timers:    make(map[string]*time.Timer),
		afterFunc: time.AfterFunc,
		now:       time.Now,
	}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.TimerTask)) {
	s.tasksMutex.Lock()
	s.onUpdate = callback
	s.tasksMutex.Unlock()
}

// SetCompletionCallback sets the callback invoked when a countdown finishes on its own
func (s *Service) SetCompletionCallback(callback func(*model.TimerTask)) {
	s.tasksMutex.Lock()
	s.onComplete = callback
	s.tasksMutex.Unlock()
}

// StartTimer starts a countdown of the given duration
func (s *Service) StartTimer(label string, duration time.Duration) (*model.TimerTask, error) {
	if duration <= 0 {
		return nil, fmt.Errorf("timer duration must be positive, got %s", duration)
	}

	s.tasksMutex.Lock()

	// Check for a running timer with the same label
	for _, task := range s.tasks {
		if task.Label == label && task.Status.IsActive() {
			s.tasksMutex.Unlock()
			return nil, fmt.Errorf("timer already running: %s", label)
		}
	}

	task := &model.TimerTask{
		ID:        generateTaskID(),
		Label:     label,
		Duration:  duration,
		Status:    model.TaskStatusRunning,
		StartedAt: s.now(),
	}
	s.tasks[task.ID] = task
	s.timers[task.ID] = s.afterFunc(duration, func() { s.complete(task.ID) })
	started := snapshot(task)
	s.tasksMutex.Unlock()

	log.Printf("Timer %s started: %s for %s", started.ID, started.GetDisplayTitle(), duration)
	s.notifyUpdate(started)
	return started, nil
}

// StopTimer stops a running timer
func (s *Service) StopTimer(id string) error {
	s.tasksMutex.Lock()

	task, exists := s.tasks[id]
	if !exists {
		s.tasksMutex.Unlock()
		return fmt.Errorf("timer not found: %s", id)
	}

	if !task.Status.IsActive() {
		s.tasksMutex.Unlock()
		return fmt.Errorf("timer is not active: %s", task.Status)
	}

	s.finishLocked(task, model.TaskStatusStopped)
	stopped := snapshot(task)
	s.tasksMutex.Unlock()

	log.Printf("Timer %s stopped", id)
	s.notifyUpdate(stopped)
	return nil
}

// StopAll stops every active timer and returns how many were stopped
func (s *Service) StopAll() int {
	s.tasksMutex.Lock()
	var stopped []*model.TimerTask
	for _, task := range s.tasks {
		if task.Status.IsActive() {
			s.finishLocked(task, model.TaskStatusStopped)
			stopped = append(stopped, snapshot(task))
		}
	}
	s.tasksMutex.Unlock()

	for _, task := range stopped {
		s.notifyUpdate(task)
	}
	return len(stopped)
}

// GetTask returns a snapshot of a timer by ID
func (s *Service) GetTask(id string) (*model.TimerTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[id]
	if !exists {
		return nil, false
	}
	return snapshot(task), true
}

// GetAllTasks returns snapshots of all timers, oldest first
func (s *Service) GetAllTasks() []*model.TimerTask {
	s.tasksMutex.RLock()
	tasks := make([]*model.TimerTask, 0, len(s.tasks))
	for _, task := range s.tasks {
		tasks = append(tasks, snapshot(task))
	}
	s.tasksMutex.RUnlock()

	sort.SliceStable(tasks, func(i, j int) bool {
		if !tasks[i].StartedAt.Equal(tasks[j].StartedAt) {
			return tasks[i].StartedAt.Before(tasks[j].StartedAt)
		}
		return tasks[i].ID < tasks[j].ID
	})
	return tasks
}

// complete marks a countdown as finished once its timer fires
func (s *Service) complete(id string) {
	s.tasksMutex.Lock()
	task, exists := s.tasks[id]
	if !exists || !task.Status.IsActive() {
		s.tasksMutex.Unlock()
		return
	}
	s.finishLocked(task, model.TaskStatusCompleted)
	completed := snapshot(task)
	onComplete := s.onComplete
	s.tasksMutex.Unlock()

	log.Printf("Timer %s completed", id)
	s.notifyUpdate(completed)
	if onComplete != nil {
		onComplete(completed)
	}
}

// snapshot copies task so callers never share state with the timer goroutine.
// Caller holds tasksMutex.
func snapshot(task *model.TimerTask) *model.TimerTask {
	cp := *task
	return &cp
}

// finishLocked moves task to a terminal status. Caller holds tasksMutex.
func (s *Service) finishLocked(task *model.TimerTask, status model.TaskStatus) {
	if t, ok := s.timers[task.ID]; ok {
		t.Stop()
		delete(s.timers, task.ID)
	}
	task.Status = status
	task.FinishedAt = s.now()
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *model.TimerTask) {
	s.tasksMutex.RLock()
	onUpdate := s.onUpdate
	s.tasksMutex.RUnlock()

	if onUpdate != nil {
		onUpdate(task)
	}
}

// generateTaskID generates a unique timer ID using UUID v7
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}
