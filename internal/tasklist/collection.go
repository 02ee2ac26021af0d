package tasklist

import (
	"slices"

	"github.com/tgienger/todolist/internal/models"
)

// Collection is the committed list of tasks, unique by ID.
// Methods never modify the receiver; they return an updated copy.
type Collection []models.Task

// NewCollection builds a collection from server data. A repeated ID replaces the earlier entry.
func NewCollection(tasks []models.Task) Collection {
	c := make(Collection, 0, len(tasks))
	for _, t := range tasks {
		c = c.With(t)
	}
	return c
}

// Index returns the position of the task with id, or -1
func (c Collection) Index(id int64) int {
	return slices.IndexFunc(c, func(t models.Task) bool { return t.ID == id })
}

// Find returns the task with id
func (c Collection) Find(id int64) (models.Task, bool) {
	i := c.Index(id)
	if i < 0 {
		return models.Task{}, false
	}
	return c[i], true
}

// Active returns the tasks that are not done, in collection order
func (c Collection) Active() []models.Task {
	var out []models.Task
	for _, t := range c {
		if !t.Completed() {
			out = append(out, t)
		}
	}
	return out
}

// Completed returns the done tasks, in collection order
func (c Collection) Completed() []models.Task {
	var out []models.Task
	for _, t := range c {
		if t.Completed() {
			out = append(out, t)
		}
	}
	return out
}

// With replaces the task with the same ID, or appends it
func (c Collection) With(task models.Task) Collection {
	out := slices.Clone(c)
	if i := out.Index(task.ID); i >= 0 {
		out[i] = task
		return out
	}
	return append(out, task)
}

// Replace swaps in task for the entry with the same ID. A missing ID leaves the collection as is.
func (c Collection) Replace(task models.Task) Collection {
	i := c.Index(task.ID)
	if i < 0 {
		return c
	}
	out := slices.Clone(c)
	out[i] = task
	return out
}

// Without removes the task with id
func (c Collection) Without(id int64) Collection {
	return slices.DeleteFunc(slices.Clone(c), func(t models.Task) bool { return t.ID == id })
}

// WithStatus changes only the status of the task with id
func (c Collection) WithStatus(id int64, status models.Status) Collection {
	i := c.Index(id)
	if i < 0 {
		return c
	}
	out := slices.Clone(c)
	out[i].Status = status
	return out
}
