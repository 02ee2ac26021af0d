package views

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tgienger/todolist/internal/api"
	"github.com/tgienger/todolist/internal/models"
	"github.com/tgienger/todolist/internal/tasklist"
)

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.Local)

type call struct {
	Method string
	Path   string
	Body   string
}

// fakeTaskServer is an in-process stand-in for the task API
type fakeTaskServer struct {
	mu        sync.Mutex
	tasks     []models.Task
	nextID    int64
	fail      map[string]int // method -> status code
	emptyPuts bool
	calls     []call
}

func (f *fakeTaskServer) Do(req *http.Request) (*http.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var body []byte
	if req.Body != nil {
		body, _ = io.ReadAll(req.Body)
	}
	f.calls = append(f.calls, call{Method: req.Method, Path: req.URL.Path, Body: string(body)})

	if code, ok := f.fail[req.Method]; ok {
		return respond(code, ""), nil
	}

	switch req.Method {
	case http.MethodGet:
		out, _ := json.Marshal(f.tasks)
		return respond(http.StatusOK, string(out)), nil
	case http.MethodPost:
		var in models.TaskInput
		if err := json.Unmarshal(body, &in); err != nil {
			return respond(http.StatusBadRequest, ""), nil
		}
		f.nextID++
		out, _ := json.Marshal(in.WithID(f.nextID))
		return respond(http.StatusCreated, string(out)), nil
	case http.MethodPut:
		if f.emptyPuts {
			return respond(http.StatusOK, ""), nil
		}
		var in models.TaskInput
		if err := json.Unmarshal(body, &in); err != nil {
			return respond(http.StatusBadRequest, ""), nil
		}
		id, _ := strconv.ParseInt(strings.TrimPrefix(req.URL.Path, api.TaskPath+"/"), 10, 64)
		out, _ := json.Marshal(in.WithID(id))
		return respond(http.StatusOK, string(out)), nil
	case http.MethodDelete:
		return respond(http.StatusNoContent, ""), nil
	}
	return respond(http.StatusMethodNotAllowed, ""), nil
}

func (f *fakeTaskServer) Calls() []call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]call(nil), f.calls...)
}

func respond(code int, body string) *http.Response {
	return &http.Response{
		StatusCode: code,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func newTestView(t *testing.T, server *fakeTaskServer) (*TaskListView, *test.Hook) {
	t.Helper()
	log, hook := test.NewNullLogger()
	client := api.NewClient("http://tasks.test", server)
	v := NewTaskListView(client, log, WithClock(func() time.Time { return testNow }), WithTimeout(time.Second))
	v.Update(tea.WindowSizeMsg{Width: 100, Height: 60})
	return v, hook
}

// drain runs cmd and feeds every resulting message back into the view
func drain(v *TaskListView, cmd tea.Cmd) {
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return
		}
		_, cmd = v.Update(msg)
	}
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(v *TaskListView, keys ...string) {
	for _, k := range keys {
		drain(v, updateCmd(v, keyPress(k)))
	}
}

func updateCmd(v *TaskListView, msg tea.Msg) tea.Cmd {
	_, cmd := v.Update(msg)
	return cmd
}

func loadedView(t *testing.T, tasks ...models.Task) (*TaskListView, *fakeTaskServer, *test.Hook) {
	t.Helper()
	server := &fakeTaskServer{tasks: tasks, nextID: 100}
	v, hook := newTestView(t, server)
	drain(v, v.Init())
	return v, server, hook
}

func testTask() models.Task {
	return models.Task{
		ID:          1,
		Name:        "Test Task",
		DueDate:     models.NewTimestamp(time.Date(2023, 12, 31, 0, 0, 0, 0, time.Local)),
		Status:      models.StatusToDo,
		Description: "This is a test task",
	}
}

func fillValidDraft(v *TaskListView) {
	v.ChangeDraftField(tasklist.FieldName, "New Task")
	v.ChangeDraftField(tasklist.FieldDueDate, "2026-12-31 23:59")
	v.ChangeDraftField(tasklist.FieldStatus, "ToDo")
	v.ChangeDraftField(tasklist.FieldDescription, "Description of the new task")
}

func TestLoadDisplaysTasks(t *testing.T) {
	v, server, _ := loadedView(t, testTask())

	assert.Equal(t, []call{{Method: http.MethodGet, Path: "/api/Task"}}, server.Calls())
	require.Len(t, v.Tasks(), 1)
	assert.Contains(t, v.View(), "Test Task")
}

func TestLoadFailureKeepsCollectionEmpty(t *testing.T) {
	server := &fakeTaskServer{tasks: []models.Task{testTask()}, fail: map[string]int{http.MethodGet: 500}}
	v, hook := newTestView(t, server)
	drain(v, v.Init())

	assert.Empty(t, v.Tasks())
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Equal(t, opLoad, hook.LastEntry().Data["op"])
	assert.Contains(t, v.View(), "Could not load tasks")
}

func TestSectionsPartitionByStatus(t *testing.T) {
	v, _, _ := loadedView(t,
		models.Task{ID: 1, Name: "Pending chore", Status: models.StatusToDo},
		models.Task{ID: 2, Name: "Finished chore", Status: models.StatusDone},
		models.Task{ID: 3, Name: "Ongoing chore", Status: models.StatusInProgress},
	)

	require.Len(t, v.Active(), 2)
	require.Len(t, v.Completed(), 1)
	assert.Equal(t, "Finished chore", v.Completed()[0].Name)

	out := v.View()
	completedAt := strings.Index(out, "Completed")
	require.Greater(t, completedAt, strings.Index(out, "Actual"))
	assert.Greater(t, strings.Index(out, "Finished chore"), completedAt)
	assert.Less(t, strings.Index(out, "Pending chore"), completedAt)
	assert.Less(t, strings.Index(out, "Ongoing chore"), completedAt)
}

func TestCycleStatusMakesOneUpdateCall(t *testing.T) {
	v, server, _ := loadedView(t, testTask())

	press(v, "space")

	calls := server.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, http.MethodPut, calls[1].Method)
	assert.Equal(t, "/api/Task/1", calls[1].Path)

	var sent models.Task
	require.NoError(t, json.Unmarshal([]byte(calls[1].Body), &sent))
	assert.Equal(t, int64(1), sent.ID)
	assert.Equal(t, "Test Task", sent.Name)
	assert.Equal(t, models.StatusInProgress, sent.Status)

	assert.Equal(t, models.StatusInProgress, v.Tasks()[0].Status)
}

func TestCycleStatusToDoneMovesTaskToCompleted(t *testing.T) {
	task := testTask()
	task.Status = models.StatusInProgress
	v, _, _ := loadedView(t, task)

	drain(v, v.CycleStatus(1))

	assert.Empty(t, v.Active())
	require.Len(t, v.Completed(), 1)
}

func TestCycleStatusFailureLeavesStatus(t *testing.T) {
	v, server, hook := loadedView(t, testTask())
	server.fail = map[string]int{http.MethodPut: 500}

	drain(v, v.CycleStatus(1))

	assert.Equal(t, models.StatusToDo, v.Tasks()[0].Status)
	assert.Equal(t, opCycle, hook.LastEntry().Data["op"])
	assert.Equal(t, int64(1), hook.LastEntry().Data["task_id"])
	assert.NotNil(t, v.CycleStatus(1), "a failed request does not block the next one")
}

func TestCycleStatusUnknownTask(t *testing.T) {
	v, server, hook := loadedView(t, testTask())

	assert.Nil(t, v.CycleStatus(42))
	assert.Len(t, server.Calls(), 1)
	assert.Equal(t, "task not found", hook.LastEntry().Message)
}

func TestCycleStatusIgnoresOverlappingRequests(t *testing.T) {
	v, _, hook := loadedView(t, testTask())

	first := v.CycleStatus(1)
	require.NotNil(t, first)
	assert.Nil(t, v.CycleStatus(1))
	assert.Nil(t, v.DeleteTask(1))
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)

	drain(v, first)
	assert.Equal(t, models.StatusInProgress, v.Tasks()[0].Status)
	assert.NotNil(t, v.CycleStatus(1))
}

func TestSubmitNewTask(t *testing.T) {
	v, server, _ := loadedView(t, testTask())

	press(v, "n")
	require.True(t, v.Editing())
	assert.Equal(t, "Add Task", v.FormTitle())
	assert.Equal(t, int64(0), v.Draft().ID)

	fillValidDraft(v)
	drain(v, v.SubmitDraft())

	calls := server.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, http.MethodPost, calls[1].Method)
	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(calls[1].Body), &payload))
	assert.Len(t, payload, 4)
	assert.Equal(t, "New Task", payload["name"])
	assert.Equal(t, "ToDo", payload["status"])

	assert.False(t, v.Editing())
	assert.Equal(t, tasklist.Draft{}, v.Draft())
	require.Len(t, v.Tasks(), 2)
	assert.Equal(t, int64(101), v.Tasks()[1].ID)
	assert.Contains(t, v.View(), "New Task")
}

func TestSubmitInvalidDraftStaysOpen(t *testing.T) {
	v, server, _ := loadedView(t)
	v.OpenCreate()
	v.ChangeDraftField(tasklist.FieldName, "N")
	v.ChangeDraftField(tasklist.FieldDueDate, "2020-01-01 10:00")

	assert.Nil(t, v.SubmitDraft())

	assert.True(t, v.Editing())
	assert.Len(t, server.Calls(), 1)
	assert.Equal(t, "Name cannot be less than 2 characters.", v.Errors()[tasklist.FieldName])
	assert.Equal(t, "End date cannot be in the past.", v.Errors()[tasklist.FieldDueDate])
	assert.Equal(t, "Status is required.", v.Errors()[tasklist.FieldStatus])
	assert.Contains(t, v.View(), "End date cannot be in the past.")
}

func TestSubmitFailureKeepsDraft(t *testing.T) {
	v, server, hook := loadedView(t, testTask())
	server.fail = map[string]int{http.MethodPost: 503}

	v.OpenCreate()
	fillValidDraft(v)
	draft := v.Draft()
	drain(v, v.SubmitDraft())

	assert.True(t, v.Editing())
	assert.Equal(t, draft, v.Draft())
	assert.Empty(t, v.Errors())
	assert.Len(t, v.Tasks(), 1)
	assert.Equal(t, opCreate, hook.LastEntry().Data["op"])
	assert.Contains(t, v.View(), "Could not add task")

	server.fail = nil
	drain(v, v.SubmitDraft())
	assert.False(t, v.Editing())
	assert.Len(t, v.Tasks(), 2)
}

func TestEditOpensEditorWithTaskFields(t *testing.T) {
	v, _, _ := loadedView(t, testTask())

	_, cmd := v.Update(keyPress("e"))
	require.NotNil(t, cmd)
	msg := cmd()
	require.IsType(t, EditIntent{}, msg)
	v.Update(msg)

	require.True(t, v.Editing())
	assert.Equal(t, "Edit Task", v.FormTitle())
	assert.Equal(t, tasklist.DraftFromTask(testTask()), v.Draft())

	out := v.View()
	assert.Contains(t, out, "Edit Task")
	assert.Contains(t, out, "Update Task")
	assert.NotContains(t, out, "Add Task")
}

func TestSubmitEditReplacesTask(t *testing.T) {
	v, server, _ := loadedView(t, testTask(), models.Task{ID: 2, Name: "Other", Status: models.StatusDone})
	server.emptyPuts = true

	v.Update(EditIntent{Task: v.Tasks()[0]})
	v.ChangeDraftField(tasklist.FieldName, "Renamed Task")
	v.ChangeDraftField(tasklist.FieldDueDate, "2026-06-01 08:00")
	drain(v, v.SubmitDraft())

	calls := server.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, http.MethodPut, calls[1].Method)
	assert.Equal(t, "/api/Task/1", calls[1].Path)

	assert.False(t, v.Editing())
	require.Len(t, v.Tasks(), 2)
	assert.Equal(t, int64(1), v.Tasks()[0].ID)
	assert.Equal(t, "Renamed Task", v.Tasks()[0].Name)
	assert.Equal(t, "Other", v.Tasks()[1].Name)
}

func TestDeleteTask(t *testing.T) {
	v, server, _ := loadedView(t, testTask())

	press(v, "d")
	assert.Contains(t, v.View(), "Delete Task?")
	press(v, "y")

	calls := server.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, call{Method: http.MethodDelete, Path: "/api/Task/1"}, calls[1])
	assert.Empty(t, v.Tasks())
	assert.NotContains(t, v.View(), "Test Task")
}

func TestDeleteFailureKeepsTask(t *testing.T) {
	v, server, hook := loadedView(t, testTask())
	server.fail = map[string]int{http.MethodDelete: 404}

	drain(v, updateCmd(v, DeleteIntent{ID: 1}))

	assert.Len(t, v.Tasks(), 1)
	assert.Equal(t, opDelete, hook.LastEntry().Data["op"])
}

func TestCloseDraftLeavesCollectionUnchanged(t *testing.T) {
	v, server, _ := loadedView(t, testTask(), models.Task{ID: 2, Name: "Other", Status: models.StatusDone})
	before, err := json.Marshal(v.Tasks())
	require.NoError(t, err)

	v.OpenEdit(v.Tasks()[0])
	v.ChangeDraftField(tasklist.FieldName, "Something else")
	press(v, "esc")

	assert.False(t, v.Editing())
	assert.Equal(t, tasklist.Draft{}, v.Draft())
	after, err := json.Marshal(v.Tasks())
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
	assert.Len(t, server.Calls(), 1)
}

func TestTypingFillsDraft(t *testing.T) {
	v, _, _ := loadedView(t)
	v.OpenCreate()

	press(v, "H", "i")
	assert.Equal(t, "Hi", v.Draft().Name)

	press(v, "tab", "tab", "right", "right")
	assert.Equal(t, "InProgress", v.Draft().Status)
	assert.Equal(t, "Hi", v.Draft().Name)
	assert.Empty(t, v.Draft().DueDate)
}

func TestReloadReplacesCollection(t *testing.T) {
	v, server, _ := loadedView(t, testTask())
	server.tasks = []models.Task{{ID: 5, Name: "Fresh", Status: models.StatusToDo}}

	press(v, "r")

	require.Len(t, v.Tasks(), 1)
	assert.Equal(t, "Fresh", v.Tasks()[0].Name)
}

func TestLateUpdateDoesNotRestoreRemovedTask(t *testing.T) {
	v, server, _ := loadedView(t, testTask())

	v.OpenEdit(v.Tasks()[0])
	v.ChangeDraftField(tasklist.FieldName, "Renamed")
	v.ChangeDraftField(tasklist.FieldDueDate, "2026-06-01 08:00")
	update := v.SubmitDraft()
	require.NotNil(t, update)
	press(v, "esc")

	assert.Nil(t, v.DeleteTask(1))
	assert.Nil(t, v.CycleStatus(1))

	server.tasks = []models.Task{}
	drain(v, v.Load())
	require.Empty(t, v.Tasks())

	drain(v, update)
	assert.Empty(t, v.Tasks())
	assert.NotNil(t, v.DeleteTask(1))
}

func TestSubmitEditRefusedWhileCycling(t *testing.T) {
	v, server, hook := loadedView(t, testTask())

	cycle := v.CycleStatus(1)
	require.NotNil(t, cycle)
	v.OpenEdit(v.Tasks()[0])
	v.ChangeDraftField(tasklist.FieldName, "Renamed")
	v.ChangeDraftField(tasklist.FieldDueDate, "2026-06-01 08:00")

	assert.Nil(t, v.SubmitDraft())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Contains(t, v.View(), "Task is busy, try again")

	drain(v, cycle)
	drain(v, v.SubmitDraft())
	assert.False(t, v.Editing())
	assert.Equal(t, "Renamed", v.Tasks()[0].Name)
	assert.Len(t, server.Calls(), 3)
}

func TestSubmitAfterAbandonedSubmit(t *testing.T) {
	v, server, _ := loadedView(t)

	v.OpenCreate()
	fillValidDraft(v)
	first := v.SubmitDraft()
	require.NotNil(t, first)
	assert.Nil(t, v.SubmitDraft(), "the same draft is not sent twice")
	press(v, "esc")

	v.OpenCreate()
	fillValidDraft(v)
	v.ChangeDraftField(tasklist.FieldName, "Second Task")
	second := v.SubmitDraft()
	require.NotNil(t, second)

	drain(v, second)
	assert.False(t, v.Editing())
	drain(v, first)
	assert.False(t, v.Editing())

	assert.Len(t, server.Calls(), 3)
	require.Len(t, v.Tasks(), 2)
	assert.Equal(t, "Second Task", v.Tasks()[0].Name)
}

func TestCursorFollowsCycledTask(t *testing.T) {
	v, _, _ := loadedView(t,
		models.Task{ID: 1, Name: "First", Status: models.StatusInProgress},
		models.Task{ID: 2, Name: "Second", Status: models.StatusToDo},
		models.Task{ID: 3, Name: "Third", Status: models.StatusDone},
	)

	press(v, "space")
	require.Len(t, v.Completed(), 2)

	selected, ok := v.selected()
	require.True(t, ok)
	assert.Equal(t, int64(1), selected.Task.ID)
	assert.Equal(t, 1, v.cursor)
}
