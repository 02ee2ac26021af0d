package models

// Status is the workflow state of a task
type Status string

const (
	StatusToDo       Status = "ToDo"
	StatusInProgress Status = "InProgress"
	StatusDone       Status = "Done"
)

// Statuses lists every status in cycle order
var Statuses = []Status{StatusToDo, StatusInProgress, StatusDone}

// Valid reports whether s is one of the known statuses
func (s Status) Valid() bool {
	for _, st := range Statuses {
		if s == st {
			return true
		}
	}
	return false
}

// Next returns the status that follows s in the ToDo -> InProgress -> Done cycle.
// Unknown values restart the cycle at ToDo.
func (s Status) Next() Status {
	for i, st := range Statuses {
		if s == st {
			return Statuses[(i+1)%len(Statuses)]
		}
	}
	return StatusToDo
}

// Label returns a human readable name for the status
func (s Status) Label() string {
	switch s {
	case StatusToDo:
		return "To Do"
	case StatusInProgress:
		return "In Progress"
	case StatusDone:
		return "Done"
	}
	return string(s)
}

// Task represents a single task as stored by the task API
type Task struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	DueDate     Timestamp `json:"dueDate"`
	Status      Status    `json:"status"`
	Description string    `json:"description"`
}

// Completed reports whether the task belongs in the completed section
func (t Task) Completed() bool {
	return t.Status == StatusDone
}

// Input returns the writable fields of the task
func (t Task) Input() TaskInput {
	return TaskInput{
		Name:        t.Name,
		Description: t.Description,
		DueDate:     t.DueDate,
		Status:      t.Status,
	}
}

// TaskInput is the payload used to create or update a task
type TaskInput struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	DueDate     Timestamp `json:"dueDate"`
	Status      Status    `json:"status"`
}

// WithID builds the task the server would store for this input under id
func (in TaskInput) WithID(id int64) Task {
	return Task{
		ID:          id,
		Name:        in.Name,
		DueDate:     in.DueDate,
		Status:      in.Status,
		Description: in.Description,
	}
}
