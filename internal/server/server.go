// Package server serves the task API over HTTP.
//
// Routes:
//
//	GET    /api/Task       list all tasks
//	POST   /api/Task       create a task
//	PUT    /api/Task/{id}  replace the writable fields of a task
//	DELETE /api/Task/{id}  delete a task
//	GET    /metrics        Prometheus metrics
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/tgienger/todolist/internal/db"
	"github.com/tgienger/todolist/internal/models"
)

// Store persists tasks. *db.DB implements it.
type Store interface {
	ListTasks(ctx context.Context) ([]models.Task, error)
	CreateTask(ctx context.Context, in models.TaskInput) (*models.Task, error)
	UpdateTask(ctx context.Context, id int64, in models.TaskInput) (*models.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}

// Config holds the server dependencies
type Config struct {
	Store     Store
	Log       *logrus.Logger
	Registry  *prometheus.Registry
	RateLimit float64
	RateBurst int
}

// taskRequest is the accepted body of create and update requests.
// Fields of a full task record that are not listed here, such as id, are ignored.
type taskRequest struct {
	Name        string           `json:"name" validate:"required,min=2,max=60"`
	Description string           `json:"description" validate:"omitempty,min=2,max=200"`
	DueDate     models.Timestamp `json:"dueDate"`
	Status      models.Status    `json:"status" validate:"omitempty,oneof=ToDo InProgress Done"`
}

func (r taskRequest) input() models.TaskInput {
	status := r.Status
	if status == "" {
		status = models.StatusToDo
	}
	return models.TaskInput{
		Name:        r.Name,
		Description: r.Description,
		DueDate:     r.DueDate,
		Status:      status,
	}
}

type handler struct {
	store    Store
	log      *logrus.Logger
	validate *validator.Validate
}

// New builds the HTTP handler for the task API
func New(cfg Config) http.Handler {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		return name
	})

	h := &handler{store: cfg.Store, log: cfg.Log, validate: validate}
	m := newMetrics(cfg.Registry)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/Task", h.listTasks)
	mux.HandleFunc("POST /api/Task", h.createTask)
	mux.HandleFunc("PUT /api/Task/{id}", h.updateTask)
	mux.HandleFunc("DELETE /api/Task/{id}", h.deleteTask)

	api := chain(mux,
		withRequestID,
		withLogging(cfg.Log),
		m.instrument,
		withRateLimit(cfg.RateLimit, cfg.RateBurst),
	)

	root := http.NewServeMux()
	root.Handle("/metrics", promhttp.HandlerFor(cfg.Registry, promhttp.HandlerOpts{}))
	root.Handle("/", api)
	return root
}

func (h *handler) listTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.store.ListTasks(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (h *handler) createTask(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}
	task, err := h.store.CreateTask(r.Context(), req.input())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

func (h *handler) updateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	req, ok := h.decode(w, r)
	if !ok {
		return
	}
	task, err := h.store.UpdateTask(r.Context(), id, req.input())
	if errors.Is(err, db.ErrTaskNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (h *handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	err := h.store.DeleteTask(r.Context(), id)
	if errors.Is(err, db.ErrTaskNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// decode reads and validates a task body. It writes the error response itself.
func (h *handler) decode(w http.ResponseWriter, r *http.Request) (taskRequest, bool) {
	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return req, false
	}
	if err := h.validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			writeError(w, http.StatusBadRequest, err.Error())
			return req, false
		}
		out := make(map[string]string, len(fieldErrs))
		for _, fe := range fieldErrs {
			out[fe.Field()] = validationMessage(fe)
		}
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": out})
		return req, false
	}
	return req, true
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters"
	case "max":
		return fe.Field() + " must be at most " + fe.Param() + " characters"
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	}
	return fe.Error()
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return 0, false
	}
	return id, true
}

func (h *handler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	h.log.WithFields(logrus.Fields{
		"request_id": RequestIDFromContext(r.Context()),
		"method":     r.Method,
		"path":       r.URL.Path,
	}).WithError(err).Error("task store failed")
	writeError(w, http.StatusInternalServerError, "internal server error")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
