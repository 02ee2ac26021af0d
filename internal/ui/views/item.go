package views

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tgienger/todolist/internal/models"
	"github.com/tgienger/todolist/internal/ui/styles"
)

// dueFormat renders due dates as day.month hour:minute on a 24-hour clock
const dueFormat = "02.01 15:04"

// CycleStatusIntent asks the list to move a task to its next status
type CycleStatusIntent struct {
	ID int64
}

// EditIntent asks the list to open the editor for a task
type EditIntent struct {
	Task models.Task
}

// DeleteIntent asks the list to delete a task
type DeleteIntent struct {
	ID int64
}

// TaskItem renders one task. It holds no state of its own; the list owns the task
// and receives the item's intents as messages.
type TaskItem struct {
	Task models.Task
}

// StatusClass maps a status to its display class, or "" for unknown values
func StatusClass(status models.Status) string {
	switch status {
	case models.StatusToDo:
		return "todo"
	case models.StatusInProgress:
		return "in-progress"
	case models.StatusDone:
		return "done"
	}
	return ""
}

// FormatDue formats a due date for display in local time
func FormatDue(due models.Timestamp) string {
	if !due.Set() {
		return ""
	}
	return due.Local().Format(dueFormat)
}

// CycleStatus emits the status-cycle intent for this task
func (i TaskItem) CycleStatus() tea.Cmd {
	id := i.Task.ID
	return func() tea.Msg { return CycleStatusIntent{ID: id} }
}

// Edit emits the edit intent carrying a copy of the task's current fields
func (i TaskItem) Edit() tea.Cmd {
	task := i.Task
	return func() tea.Msg { return EditIntent{Task: task} }
}

// Delete emits the delete intent for this task
func (i TaskItem) Delete() tea.Cmd {
	id := i.Task.ID
	return func() tea.Msg { return DeleteIntent{ID: id} }
}

// View renders the task as a title line followed by an optional description line
func (i TaskItem) View(s *styles.Styles, width int, selected bool, pending bool) string {
	task := i.Task

	status := s.ForStatusClass(StatusClass(task.Status)).Render(string(task.Status))
	if pending {
		status += s.TitleMuted.Render(" …")
	}

	parts := []string{task.Name}
	if due := FormatDue(task.DueDate); due != "" {
		parts = append(parts, s.TaskTime.Render(due))
	}
	parts = append(parts, status)
	titleLine := strings.Join(parts, "  ")

	lineStyle := s.ListItem.Width(width)
	if selected {
		lineStyle = s.ListSelected.Width(width)
	}

	lines := []string{lineStyle.Render(titleLine)}
	if task.Description != "" {
		lines = append(lines, lineStyle.Render(s.TaskDescription.Render(task.Description)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
