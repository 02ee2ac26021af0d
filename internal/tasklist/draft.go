// Package tasklist holds the client-side task state shared by the list views:
// the editable draft, its validation rules and the task collection.
package tasklist

import (
	"time"

	"github.com/tgienger/todolist/internal/models"
)

// DueLayout is the format used to edit due dates
const DueLayout = "2006-01-02 15:04"

// Field names a draft field
type Field string

const (
	FieldName        Field = "name"
	FieldDueDate     Field = "dueDate"
	FieldStatus      Field = "status"
	FieldDescription Field = "description"
)

// Fields lists the draft fields in form order
var Fields = []Field{FieldName, FieldDueDate, FieldStatus, FieldDescription}

// Draft is the task being created or edited. ID 0 means the task does not exist yet.
// Values are kept as typed so a half-entered date survives until validation.
type Draft struct {
	ID          int64  `json:"id"`
	Name        string `json:"name" validate:"required,min=2,max=60"`
	DueDate     string `json:"dueDate" validate:"omitempty,duedate,notpast"`
	Status      string `json:"status" validate:"required,taskstatus"`
	Description string `json:"description" validate:"omitempty,min=2,max=200"`
}

// DraftFromTask copies the fields of an existing task into a draft
func DraftFromTask(task models.Task) Draft {
	d := Draft{
		ID:          task.ID,
		Name:        task.Name,
		Status:      string(task.Status),
		Description: task.Description,
	}
	if task.DueDate.Set() {
		d.DueDate = task.DueDate.Local().Format(DueLayout)
	}
	return d
}

// IsNew reports whether submitting the draft creates a task
func (d Draft) IsNew() bool {
	return d.ID == 0
}

// Get returns the current value of field
func (d Draft) Get(field Field) string {
	switch field {
	case FieldName:
		return d.Name
	case FieldDueDate:
		return d.DueDate
	case FieldStatus:
		return d.Status
	case FieldDescription:
		return d.Description
	}
	return ""
}

// Set replaces the value of a single field. It reports false for unknown fields.
func (d *Draft) Set(field Field, value string) bool {
	switch field {
	case FieldName:
		d.Name = value
	case FieldDueDate:
		d.DueDate = value
	case FieldStatus:
		d.Status = value
	case FieldDescription:
		d.Description = value
	default:
		return false
	}
	return true
}

// Input converts the draft into an API payload. A missing status defaults to ToDo.
func (d Draft) Input() (models.TaskInput, error) {
	due, err := ParseDue(d.DueDate)
	if err != nil {
		return models.TaskInput{}, err
	}
	status := models.Status(d.Status)
	if status == "" {
		status = models.StatusToDo
	}
	return models.TaskInput{
		Name:        d.Name,
		Description: d.Description,
		DueDate:     due,
		Status:      status,
	}, nil
}

// ParseDue reads a due date as typed in the form
func ParseDue(s string) (models.Timestamp, error) {
	if t, err := time.ParseInLocation(DueLayout, s, time.Local); err == nil {
		return models.NewTimestamp(t), nil
	}
	return models.ParseTimestamp(s)
}
