package timer

import (
	"strings"
	"testing"
	"time"

	"github.com/ytget/quickbar/internal/model"
)

// manualClock lets tests fire countdowns without waiting
type manualClock struct {
	now   time.Time
	fires map[time.Duration][]func()
}

func newTestService() (*Service, *manualClock) {
	clock := &manualClock{
		now:   time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC),
		fires: make(map[time.Duration][]func()),
	}

	s := NewService()
	s.now = func() time.Time { return clock.now }
	s.afterFunc = func(d time.Duration, f func()) *time.Timer {
		clock.fires[d] = append(clock.fires[d], f)
		// Never fires on its own; tests call fire()
		return time.AfterFunc(time.Hour, func() {})
	}
	return s, clock
}

func (c *manualClock) fire(d time.Duration) {
	c.now = c.now.Add(d)
	for _, f := range c.fires[d] {
		f()
	}
}

func TestNewService(t *testing.T) {
	service := NewService()

	if len(service.tasks) != 0 {
		t.Errorf("Expected empty tasks map, got %d items", len(service.tasks))
	}
}

func TestStartTimer(t *testing.T) {
	service, clock := newTestService()

	task, err := service.StartTimer("Focus", 25*time.Minute)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if task.Status != model.TaskStatusRunning {
		t.Errorf("Expected status Running, got %s", task.Status)
	}
	if !task.StartedAt.Equal(clock.now) {
		t.Errorf("Expected StartedAt %v, got %v", clock.now, task.StartedAt)
	}
	if !strings.HasPrefix(task.ID, TaskIDPrefix) {
		t.Errorf("Expected ID to start with '%s', got: %s", TaskIDPrefix, task.ID)
	}

	// Same label while running should fail
	if _, err := service.StartTimer("Focus", time.Minute); err == nil {
		t.Error("Expected error for duplicate running label, got nil")
	}

	// Different label should succeed
	if _, err := service.StartTimer("Break", 5*time.Minute); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
}

func TestStartTimer_InvalidDuration(t *testing.T) {
	service, _ := newTestService()

	for _, d := range []time.Duration{0, -time.Second} {
		if _, err := service.StartTimer("Focus", d); err == nil {
			t.Errorf("Expected error for duration %v, got nil", d)
		}
	}
}

func TestTimerCompletes(t *testing.T) {
	service, clock := newTestService()

	var completed *model.TimerTask
	service.SetCompletionCallback(func(task *model.TimerTask) {
		completed = task
	})

	task, err := service.StartTimer("Focus", 25*time.Minute)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	clock.fire(25 * time.Minute)

	got, _ := service.GetTask(task.ID)
	if got.Status != model.TaskStatusCompleted {
		t.Errorf("Expected status Completed, got %s", got.Status)
	}
	if completed == nil || completed.ID != task.ID || completed.Status != model.TaskStatusCompleted {
		t.Errorf("Expected completion callback to receive the completed task, got %+v", completed)
	}
	if !got.FinishedAt.Equal(clock.now) {
		t.Errorf("Expected FinishedAt %v, got %v", clock.now, got.FinishedAt)
	}

	// The task returned by StartTimer is a snapshot
	if task.Status != model.TaskStatusRunning {
		t.Errorf("Expected returned task to keep status Running, got %s", task.Status)
	}

	// Label is free again
	if _, err := service.StartTimer("Focus", time.Minute); err != nil {
		t.Errorf("Expected label to be reusable after completion, got %v", err)
	}
}

func TestStopTimer(t *testing.T) {
	service, clock := newTestService()

	completions := 0
	service.SetCompletionCallback(func(*model.TimerTask) { completions++ })

	task, _ := service.StartTimer("Break", 5*time.Minute)

	if err := service.StopTimer(task.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got, _ := service.GetTask(task.ID); got.Status != model.TaskStatusStopped {
		t.Errorf("Expected status Stopped, got %s", got.Status)
	}

	// A late fire must not flip a stopped timer to completed
	clock.fire(5 * time.Minute)
	if got, _ := service.GetTask(task.ID); got.Status != model.TaskStatusStopped {
		t.Errorf("Expected status to stay Stopped, got %s", got.Status)
	}
	if completions != 0 {
		t.Errorf("Expected no completion callbacks, got %d", completions)
	}

	if err := service.StopTimer(task.ID); err == nil {
		t.Error("Expected error stopping an inactive timer")
	}
	if err := service.StopTimer("timer-missing"); err == nil {
		t.Error("Expected error stopping an unknown timer")
	}
}

func TestStopAll(t *testing.T) {
	service, _ := newTestService()

	service.StartTimer("Focus", 25*time.Minute)
	service.StartTimer("Break", 5*time.Minute)

	if stopped := service.StopAll(); stopped != 2 {
		t.Errorf("Expected 2 timers stopped, got %d", stopped)
	}
	if stopped := service.StopAll(); stopped != 0 {
		t.Errorf("Expected 0 timers stopped on second call, got %d", stopped)
	}
}

func TestGetAllTasks_Ordered(t *testing.T) {
	service, clock := newTestService()

	first, _ := service.StartTimer("Focus", 25*time.Minute)
	clock.now = clock.now.Add(time.Second)
	second, _ := service.StartTimer("Break", 5*time.Minute)

	tasks := service.GetAllTasks()
	if len(tasks) != 2 {
		t.Fatalf("Expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].ID != first.ID || tasks[1].ID != second.ID {
		t.Error("Expected tasks ordered by start time")
	}

	if _, exists := service.GetTask(first.ID); !exists {
		t.Error("Expected task to exist")
	}
	if _, exists := service.GetTask("non-existing-id"); exists {
		t.Error("Expected task to not exist")
	}
}

func TestGetTask_ReturnsSnapshot(t *testing.T) {
	service, _ := newTestService()

	task, _ := service.StartTimer("Focus", time.Minute)
	got, _ := service.GetTask(task.ID)
	if got == task {
		t.Fatal("Expected GetTask to return a copy")
	}

	got.Status = model.TaskStatusCompleted
	if again, _ := service.GetTask(task.ID); again.Status != model.TaskStatusRunning {
		t.Errorf("Expected stored task to be unaffected, got %s", again.Status)
	}
}

// Run with -race: the real timer goroutine finishes the task while the
// caller keeps reading the list.
func TestGetAllTasks_ConcurrentWithCompletion(t *testing.T) {
	service := NewService()

	done := make(chan struct{})
	service.SetCompletionCallback(func(*model.TimerTask) { close(done) })

	if _, err := service.StartTimer("Focus", time.Millisecond); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		var status model.TaskStatus
		for _, task := range service.GetAllTasks() {
			status = task.Status
		}
		if status == model.TaskStatusCompleted {
			break
		}

		select {
		case <-deadline:
			t.Fatalf("Expected timer to complete, last status %s", status)
		default:
		}
		time.Sleep(100 * time.Microsecond)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Expected completion callback")
	}
}

func TestUpdateCallback(t *testing.T) {
	service, _ := newTestService()

	var statuses []model.TaskStatus
	service.SetUpdateCallback(func(task *model.TimerTask) {
		statuses = append(statuses, task.Status)
	})

	task, _ := service.StartTimer("Focus", time.Minute)
	service.StopTimer(task.ID)

	if len(statuses) != 2 {
		t.Fatalf("Expected 2 updates, got %d", len(statuses))
	}
	if statuses[0] != model.TaskStatusRunning || statuses[1] != model.TaskStatusStopped {
		t.Errorf("Unexpected update sequence: %v", statuses)
	}
}

func TestGenerateTaskID(t *testing.T) {
	id1 := generateTaskID()
	id2 := generateTaskID()

	if id1 == id2 {
		t.Error("Expected different task IDs")
	}

	// Check UUID format (timer- + 36 chars for UUID)
	if len(id1) != len(TaskIDPrefix)+36 {
		t.Errorf("Expected ID length %d, got %d for ID: %s", len(TaskIDPrefix)+36, len(id1), id1)
	}
}
