package ui

import (
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/quickbar/internal/model"
)

// TimerRow represents a compact timer row widget
type TimerRow struct {
	widget.BaseWidget

	task         *model.TimerTask
	localization *Localization
	now          func() time.Time

	// UI components
	titleLabel     *widget.Label
	statusLabel    *widget.Label
	remainingLabel *widget.Label
	stopBtn        *widget.Button
	content        fyne.CanvasObject

	onStop func(taskID string)
}

// NewTimerRow creates a new timer row widget
func NewTimerRow(localization *Localization) *TimerRow {
	tr := &TimerRow{
		localization: localization,
		now:          time.Now,
	}
	tr.ExtendBaseWidget(tr)
	tr.createUI()
	return tr
}

// SetOnStop sets the stop button callback
func (tr *TimerRow) SetOnStop(onStop func(taskID string)) {
	tr.onStop = onStop
}

// createUI builds the row layout
func (tr *TimerRow) createUI() {
	tr.titleLabel = widget.NewLabel("")
	tr.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	tr.titleLabel.Truncation = fyne.TextTruncateEllipsis

	tr.statusLabel = widget.NewLabel("")
	tr.statusLabel.Importance = widget.LowImportance

	tr.remainingLabel = widget.NewLabel(DashPlaceholder)
	tr.remainingLabel.TextStyle = fyne.TextStyle{Monospace: true}

	tr.stopBtn = widget.NewButton(IconStop, func() {
		if tr.task == nil || tr.onStop == nil {
			return
		}
		tr.onStop(tr.task.ID)
	})
	tr.stopBtn.Importance = widget.LowImportance

	right := container.NewHBox(
		container.NewGridWrap(fyne.NewSize(StatusLabelWidth, tr.statusLabel.MinSize().Height), tr.statusLabel),
		container.NewGridWrap(fyne.NewSize(RemainingLabelWidth, tr.remainingLabel.MinSize().Height), tr.remainingLabel),
		tr.stopBtn,
	)
	tr.content = container.NewBorder(nil, nil, widget.NewLabel(IconTimer), right, tr.titleLabel)
}

// UpdateTask updates the row with new timer data
func (tr *TimerRow) UpdateTask(task *model.TimerTask) {
	if task == nil {
		log.Printf("Warning: UpdateTask called with nil timer")
		return
	}
	tr.task = task

	tr.titleLabel.SetText(task.GetDisplayTitle())
	tr.statusLabel.SetText(task.Status.String())
	tr.remainingLabel.SetText(task.GetRemainingString(tr.now()))

	if task.Status.IsActive() {
		tr.stopBtn.Enable()
	} else {
		tr.stopBtn.Disable()
	}

	switch task.Status {
	case model.TaskStatusCompleted:
		tr.statusLabel.Importance = widget.SuccessImportance
	case model.TaskStatusStopped:
		tr.statusLabel.Importance = widget.LowImportance
	default:
		tr.statusLabel.Importance = widget.HighImportance
	}
	tr.statusLabel.Refresh()
}

// CreateRenderer implements fyne.Widget
func (tr *TimerRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(tr.content)
}
