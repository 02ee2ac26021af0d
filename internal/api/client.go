// Package api is a client for the remote task API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/tgienger/todolist/internal/models"
)

// TaskPath is the collection path of the task API
const TaskPath = "/api/Task"

// ErrEmptyResponse is returned when a response that must carry a task has no body
var ErrEmptyResponse = errors.New("empty response body")

// Doer sends HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// StatusError is returned for responses outside the 2xx range
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
}

// Client talks to the task API
type Client struct {
	baseURL string
	http    Doer
}

// NewClient creates a client for the API rooted at baseURL
func NewClient(baseURL string, doer Doer) *Client {
	if doer == nil {
		doer = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    doer,
	}
}

// ListTasks fetches the full task collection
func (c *Client) ListTasks(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task
	found, err := c.do(ctx, http.MethodGet, TaskPath, nil, &tasks)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrEmptyResponse
	}
	return tasks, nil
}

// CreateTask creates a task and returns the stored record
func (c *Client) CreateTask(ctx context.Context, in models.TaskInput) (*models.Task, error) {
	var task models.Task
	found, err := c.do(ctx, http.MethodPost, TaskPath, in, &task)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrEmptyResponse
	}
	return &task, nil
}

// UpdateTask writes in to the task with the given id.
// The returned task is nil when the server answers with an empty body.
func (c *Client) UpdateTask(ctx context.Context, id int64, in models.TaskInput) (*models.Task, error) {
	return c.put(ctx, id, in)
}

// ReplaceTask sends the full record of task to the server
func (c *Client) ReplaceTask(ctx context.Context, task models.Task) (*models.Task, error) {
	return c.put(ctx, task.ID, task)
}

// DeleteTask deletes the task with the given id
func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, taskPath(id), nil, nil)
	return err
}

func (c *Client) put(ctx context.Context, id int64, body any) (*models.Task, error) {
	var task models.Task
	found, err := c.do(ctx, http.MethodPut, taskPath(id), body, &task)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &task, nil
}

func taskPath(id int64) string {
	return TaskPath + "/" + strconv.FormatInt(id, 10)
}

// do sends the request and decodes the response into out.
// It reports whether a non-empty body was decoded.
func (c *Client) do(ctx context.Context, method, path string, body, out any) (bool, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return false, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return false, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, &StatusError{Method: method, Path: path, StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("read %s %s: %w", method, path, err)
	}
	// Some servers answer writes with {} or whitespace instead of the record
	trimmed := bytes.TrimSpace(data)
	if out == nil || len(trimmed) == 0 || bytes.Equal(trimmed, []byte("{}")) {
		return false, nil
	}
	if err := json.Unmarshal(trimmed, out); err != nil {
		return false, fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return true, nil
}
