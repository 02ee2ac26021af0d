package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tgienger/todolist/internal/models"
)

// ErrTaskNotFound is returned when no task has the requested ID
var ErrTaskNotFound = errors.New("task not found")

// scanner is satisfied by *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (models.Task, error) {
	var (
		t   models.Task
		due sql.NullTime
	)
	if err := s.Scan(&t.ID, &t.Name, &t.Description, &due, &t.Status); err != nil {
		return models.Task{}, err
	}
	if due.Valid {
		t.DueDate = models.NewTimestamp(due.Time)
	}
	return t, nil
}

// dueValue maps an absent due date to NULL
func dueValue(ts models.Timestamp) any {
	if !ts.Set() {
		return nil
	}
	return ts.Time
}

// CreateTask creates a new task
func (db *DB) CreateTask(ctx context.Context, in models.TaskInput) (*models.Task, error) {
	result, err := db.ExecContext(ctx, `
		INSERT INTO tasks (name, description, due_date, status) VALUES (?, ?, ?, ?)
	`, in.Name, in.Description, dueValue(in.DueDate), in.Status)
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return db.GetTask(ctx, id)
}

// GetTask retrieves a task by ID
func (db *DB) GetTask(ctx context.Context, id int64) (*models.Task, error) {
	row := db.QueryRowContext(ctx, `
		SELECT id, name, description, due_date, status
		FROM tasks WHERE id = ?
	`, id)
	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListTasks returns all tasks in creation order
func (db *DB) ListTasks(ctx context.Context) ([]models.Task, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, name, description, due_date, status
		FROM tasks
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// UpdateTask overwrites the writable fields of a task
func (db *DB) UpdateTask(ctx context.Context, id int64, in models.TaskInput) (*models.Task, error) {
	result, err := db.ExecContext(ctx, `
		UPDATE tasks SET name = ?, description = ?, due_date = ?, status = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, in.Name, in.Description, dueValue(in.DueDate), in.Status, id)
	if err != nil {
		return nil, fmt.Errorf("update task %d: %w", id, err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return nil, ErrTaskNotFound
	}
	return db.GetTask(ctx, id)
}

// DeleteTask deletes a task
func (db *DB) DeleteTask(ctx context.Context, id int64) error {
	result, err := db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return ErrTaskNotFound
	}
	return nil
}
