package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
	"github.com/tgienger/todolist/internal/models"
	"github.com/tgienger/todolist/internal/tasklist"
	"github.com/tgienger/todolist/internal/ui/keys"
	"github.com/tgienger/todolist/internal/ui/styles"
)

// clamp returns val clamped between minVal and maxVal
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// TaskAPI is the remote task store used by the list. *api.Client implements it.
type TaskAPI interface {
	ListTasks(ctx context.Context) ([]models.Task, error)
	CreateTask(ctx context.Context, in models.TaskInput) (*models.Task, error)
	UpdateTask(ctx context.Context, id int64, in models.TaskInput) (*models.Task, error)
	ReplaceTask(ctx context.Context, task models.Task) (*models.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}

// Edit form focus positions
const (
	focusName = iota
	focusDue
	focusStatus
	focusDescription
	focusSubmit
	focusCount
)

var fieldLabels = map[tasklist.Field]string{
	tasklist.FieldName:        "Title:",
	tasklist.FieldDueDate:     "Time:",
	tasklist.FieldStatus:      "Status:",
	tasklist.FieldDescription: "Description:",
}

// statusOptions are the choices of the status selector; "" is the unselected placeholder
var statusOptions = []models.Status{"", models.StatusToDo, models.StatusInProgress, models.StatusDone}

const (
	opLoad   = "load"
	opCycle  = "cycle_status"
	opCreate = "create"
	opUpdate = "update"
	opDelete = "delete"
)

// TaskListView shows the task list and owns the task collection and the edit draft
type TaskListView struct {
	client    TaskAPI
	log       logrus.FieldLogger
	validator *tasklist.Validator
	timeout   time.Duration
	styles    *styles.Styles
	keys      keys.KeyMap

	width  int
	height int

	tasks   tasklist.Collection
	loaded  bool
	cursor  int
	pending map[int64]bool // ids with a cycle, update or delete request in flight

	// Draft editor
	editing      bool
	draft        tasklist.Draft
	draftGen     int // bumped whenever a draft is opened
	errors       tasklist.Errors
	submits      map[int]bool // draft generations with a save in flight
	editName     textinput.Model
	editDue      textinput.Model
	editDesc     textarea.Model
	editFocusIdx int

	// Delete confirmation
	confirmingDelete bool
	deleteTarget     models.Task

	showHelpPopup bool

	statusText  string
	statusError bool
}

// Option customizes a TaskListView
type Option func(*TaskListView)

// WithTimeout bounds every request made by the view
func WithTimeout(d time.Duration) Option {
	return func(v *TaskListView) {
		if d > 0 {
			v.timeout = d
		}
	}
}

// WithClock sets the clock used to reject due dates in the past
func WithClock(now func() time.Time) Option {
	return func(v *TaskListView) {
		v.validator = tasklist.NewValidator(now)
	}
}

// NewTaskListView creates a new task list view
func NewTaskListView(client TaskAPI, log logrus.FieldLogger, opts ...Option) *TaskListView {
	editName := textinput.New()
	editName.Placeholder = "Task title"
	editName.CharLimit = 100

	editDue := textinput.New()
	editDue.Placeholder = tasklist.DueLayout
	editDue.CharLimit = 25

	editDesc := textarea.New()
	editDesc.Placeholder = "Description"
	editDesc.CharLimit = 400
	editDesc.SetWidth(50)
	editDesc.SetHeight(3)
	editDesc.ShowLineNumbers = false

	v := &TaskListView{
		client:    client,
		log:       log,
		validator: tasklist.NewValidator(time.Now),
		timeout:   10 * time.Second,
		styles:    styles.NewStyles(),
		keys:      keys.DefaultKeyMap(),
		pending:   map[int64]bool{},
		submits:   map[int]bool{},
		errors:    tasklist.Errors{},
		editName:  editName,
		editDue:   editDue,
		editDesc:  editDesc,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

type tasksLoadedMsg struct {
	tasks []models.Task
}

type statusChangedMsg struct {
	id     int64
	status models.Status
}

type taskSavedMsg struct {
	op   string
	gen  int
	task models.Task
}

type taskDeletedMsg struct {
	id int64
}

type requestFailedMsg struct {
	op  string
	id  int64
	gen int
	err error
}

// Init loads the task collection
func (v *TaskListView) Init() tea.Cmd {
	return v.Load()
}

// request wraps fn in a command that runs it with the view's timeout
func (v *TaskListView) request(fn func(ctx context.Context) tea.Msg) tea.Cmd {
	timeout := v.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return fn(ctx)
	}
}

// Load fetches the full task collection. On failure the current collection is kept.
func (v *TaskListView) Load() tea.Cmd {
	client := v.client
	return v.request(func(ctx context.Context) tea.Msg {
		tasks, err := client.ListTasks(ctx)
		if err != nil {
			return requestFailedMsg{op: opLoad, err: err}
		}
		return tasksLoadedMsg{tasks: tasks}
	})
}

// CycleStatus sends the task with its next status to the server.
// The local status changes only once the server accepts the update.
func (v *TaskListView) CycleStatus(id int64) tea.Cmd {
	log := v.log.WithFields(logrus.Fields{"op": opCycle, "task_id": id})
	if v.pending[id] {
		log.Warn("request already in flight for task")
		return nil
	}
	task, ok := v.tasks.Find(id)
	if !ok {
		log.Error("task not found")
		return nil
	}

	next := task.Status.Next()
	task.Status = next
	v.pending[id] = true

	client := v.client
	return v.request(func(ctx context.Context) tea.Msg {
		if _, err := client.ReplaceTask(ctx, task); err != nil {
			return requestFailedMsg{op: opCycle, id: id, err: err}
		}
		return statusChangedMsg{id: id, status: next}
	})
}

// DeleteTask deletes the task on the server, then removes it locally
func (v *TaskListView) DeleteTask(id int64) tea.Cmd {
	if v.pending[id] {
		v.log.WithFields(logrus.Fields{"op": opDelete, "task_id": id}).Warn("request already in flight for task")
		return nil
	}
	v.pending[id] = true

	client := v.client
	return v.request(func(ctx context.Context) tea.Msg {
		if err := client.DeleteTask(ctx, id); err != nil {
			return requestFailedMsg{op: opDelete, id: id, err: err}
		}
		return taskDeletedMsg{id: id}
	})
}

// OpenCreate opens the editor with an empty draft
func (v *TaskListView) OpenCreate() tea.Cmd {
	return v.openDraft(tasklist.Draft{})
}

// OpenEdit opens the editor with the fields of task
func (v *TaskListView) OpenEdit(task models.Task) tea.Cmd {
	return v.openDraft(tasklist.DraftFromTask(task))
}

func (v *TaskListView) openDraft(d tasklist.Draft) tea.Cmd {
	v.editing = true
	v.draft = d
	v.draftGen++
	v.errors = tasklist.Errors{}
	v.setStatus("", false)
	v.editName.SetValue(d.Name)
	v.editDue.SetValue(d.DueDate)
	v.editDesc.SetValue(d.Description)
	v.editFocusIdx = focusName
	return v.updateEditFocus()
}

// CloseDraft discards the draft and closes the editor
func (v *TaskListView) CloseDraft() {
	v.editing = false
	v.draft = tasklist.Draft{}
	v.errors = tasklist.Errors{}
	v.editName.Blur()
	v.editDue.Blur()
	v.editDesc.Blur()
}

// ChangeDraftField sets a single field of the draft and mirrors it in the form
func (v *TaskListView) ChangeDraftField(field tasklist.Field, value string) {
	if !v.draft.Set(field, value) {
		return
	}
	switch field {
	case tasklist.FieldName:
		v.editName.SetValue(value)
	case tasklist.FieldDueDate:
		v.editDue.SetValue(value)
	case tasklist.FieldDescription:
		v.editDesc.SetValue(value)
	}
}

// ValidateDraft checks the draft and records its field errors. It reports whether the draft is valid.
func (v *TaskListView) ValidateDraft() bool {
	v.errors = v.validator.Validate(v.draft)
	return len(v.errors) == 0
}

// SubmitDraft validates the draft and sends it to the server.
// A new draft is created, an existing one updated. The editor stays open until the server accepts it.
func (v *TaskListView) SubmitDraft() tea.Cmd {
	if v.submits[v.draftGen] {
		return nil
	}
	if !v.ValidateDraft() {
		return nil
	}
	in, err := v.draft.Input()
	if err != nil {
		v.errors[tasklist.FieldDueDate] = err.Error()
		return nil
	}

	gen := v.draftGen
	client := v.client

	if v.draft.IsNew() {
		v.submits[gen] = true
		return v.request(func(ctx context.Context) tea.Msg {
			task, err := client.CreateTask(ctx, in)
			if err != nil {
				return requestFailedMsg{op: opCreate, gen: gen, err: err}
			}
			return taskSavedMsg{op: opCreate, gen: gen, task: *task}
		})
	}

	id := v.draft.ID
	if v.pending[id] {
		v.log.WithFields(logrus.Fields{"op": opUpdate, "task_id": id}).Warn("request already in flight for task")
		v.setStatus("Task is busy, try again", true)
		return nil
	}
	v.pending[id] = true
	v.submits[gen] = true
	return v.request(func(ctx context.Context) tea.Msg {
		task, err := client.UpdateTask(ctx, id, in)
		if err != nil {
			return requestFailedMsg{op: opUpdate, id: id, gen: gen, err: err}
		}
		if task == nil {
			saved := in.WithID(id)
			task = &saved
		}
		task.ID = id
		return taskSavedMsg{op: opUpdate, gen: gen, task: *task}
	})
}

// Tasks returns the committed collection
func (v *TaskListView) Tasks() []models.Task {
	return v.tasks
}

// Active returns the tasks shown in the Actual section
func (v *TaskListView) Active() []models.Task {
	return v.tasks.Active()
}

// Completed returns the tasks shown in the Completed section
func (v *TaskListView) Completed() []models.Task {
	return v.tasks.Completed()
}

// Draft returns the task being edited
func (v *TaskListView) Draft() tasklist.Draft {
	return v.draft
}

// Editing reports whether the editor is open
func (v *TaskListView) Editing() bool {
	return v.editing
}

// Errors returns the field errors of the last validation
func (v *TaskListView) Errors() tasklist.Errors {
	return v.errors
}

// FormTitle is the heading of the editor
func (v *TaskListView) FormTitle() string {
	if v.draft.IsNew() {
		return "Add Task"
	}
	return "Edit Task"
}

// visible returns the tasks in display order: Actual first, then Completed
func (v *TaskListView) visible() []models.Task {
	return append(v.tasks.Active(), v.tasks.Completed()...)
}

func (v *TaskListView) selected() (TaskItem, bool) {
	tasks := v.visible()
	if v.cursor < 0 || v.cursor >= len(tasks) {
		return TaskItem{}, false
	}
	return TaskItem{Task: tasks[v.cursor]}, true
}

// follow moves the cursor to the row of the task with id, if it is shown
func (v *TaskListView) follow(id int64) {
	for i, t := range v.visible() {
		if t.ID == id {
			v.cursor = i
			return
		}
	}
	v.clampCursor()
}

func (v *TaskListView) clampCursor() {
	v.cursor = clamp(v.cursor, 0, max(0, len(v.tasks)-1))
}

func (v *TaskListView) setStatus(text string, isErr bool) {
	v.statusText = text
	v.statusError = isErr
}

// Update handles messages
func (v *TaskListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		inputWidth := clamp(styles.ContentWidth(v.width)-10, 20, 50)
		v.editName.Width = inputWidth
		v.editDue.Width = inputWidth
		v.editDesc.SetWidth(inputWidth)
		return v, nil

	case tasksLoadedMsg:
		v.tasks = tasklist.NewCollection(msg.tasks)
		v.loaded = true
		v.clampCursor()
		v.setStatus("", false)
		return v, nil

	case statusChangedMsg:
		delete(v.pending, msg.id)
		selected, ok := v.selected()
		v.tasks = v.tasks.WithStatus(msg.id, msg.status)
		if ok {
			v.follow(selected.Task.ID)
		}
		return v, nil

	case taskSavedMsg:
		delete(v.submits, msg.gen)
		if msg.op == opUpdate {
			delete(v.pending, msg.task.ID)
			// a task deleted while its update was in flight stays deleted
			v.tasks = v.tasks.Replace(msg.task)
		} else {
			v.tasks = v.tasks.With(msg.task)
		}
		if v.editing && v.draftGen == msg.gen {
			v.CloseDraft()
			v.follow(msg.task.ID)
		}
		v.setStatus("", false)
		return v, nil

	case taskDeletedMsg:
		delete(v.pending, msg.id)
		v.tasks = v.tasks.Without(msg.id)
		v.clampCursor()
		return v, nil

	case requestFailedMsg:
		v.handleFailure(msg)
		return v, nil

	case CycleStatusIntent:
		return v, v.CycleStatus(msg.ID)

	case EditIntent:
		return v, v.OpenEdit(msg.Task)

	case DeleteIntent:
		return v, v.DeleteTask(msg.ID)

	case tea.KeyMsg:
		// Handle help popup first - any key closes it
		if v.showHelpPopup {
			v.showHelpPopup = false
			return v, nil
		}

		if v.confirmingDelete {
			return v.updateConfirmDelete(msg)
		}

		if v.editing {
			return v.updateEditing(msg)
		}

		return v.updateNormal(msg)
	}

	return v, nil
}

// handleFailure logs a failed request. Local state is left as it was.
func (v *TaskListView) handleFailure(msg requestFailedMsg) {
	fields := logrus.Fields{"op": msg.op}
	if msg.id != 0 {
		fields["task_id"] = msg.id
	}
	v.log.WithFields(fields).WithError(msg.err).Error("task request failed")

	switch msg.op {
	case opCycle, opDelete:
		delete(v.pending, msg.id)
	case opUpdate:
		delete(v.pending, msg.id)
		delete(v.submits, msg.gen)
	case opCreate:
		delete(v.submits, msg.gen)
	}

	var text string
	switch msg.op {
	case opLoad:
		text = "Could not load tasks"
	case opCycle:
		text = "Could not change task status"
	case opCreate:
		text = "Could not add task"
	case opUpdate:
		text = "Could not update task"
	case opDelete:
		text = "Could not delete task"
	}
	v.setStatus(text, true)
}

func (v *TaskListView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Quit):
		return v, tea.Quit

	case key.Matches(msg, v.keys.Up):
		if v.cursor > 0 {
			v.cursor--
		}
		return v, nil

	case key.Matches(msg, v.keys.Down):
		if v.cursor < len(v.tasks)-1 {
			v.cursor++
		}
		return v, nil

	case key.Matches(msg, v.keys.Cycle):
		if item, ok := v.selected(); ok {
			return v, item.CycleStatus()
		}
		return v, nil

	case key.Matches(msg, v.keys.New):
		return v, v.OpenCreate()

	case key.Matches(msg, v.keys.Edit):
		if item, ok := v.selected(); ok {
			return v, item.Edit()
		}
		return v, nil

	case key.Matches(msg, v.keys.Delete):
		if item, ok := v.selected(); ok {
			v.confirmingDelete = true
			v.deleteTarget = item.Task
		}
		return v, nil

	case key.Matches(msg, v.keys.Reload):
		return v, v.Load()

	case key.Matches(msg, v.keys.Help):
		v.showHelpPopup = true
		return v, nil
	}

	return v, nil
}

func (v *TaskListView) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		v.confirmingDelete = false
		return v, TaskItem{Task: v.deleteTarget}.Delete()
	case "n", "N", "esc":
		v.confirmingDelete = false
		return v, nil
	}
	return v, nil
}

func (v *TaskListView) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.CloseDraft()
		return v, nil

	case key.Matches(msg, v.keys.Save):
		return v, v.SubmitDraft()

	case key.Matches(msg, v.keys.Tab):
		v.editFocusIdx = (v.editFocusIdx + 1) % focusCount
		return v, v.updateEditFocus()

	case msg.String() == "shift+tab":
		v.editFocusIdx = (v.editFocusIdx + focusCount - 1) % focusCount
		return v, v.updateEditFocus()

	case key.Matches(msg, v.keys.Enter):
		switch v.editFocusIdx {
		case focusName, focusDue, focusStatus:
			v.editFocusIdx++
			return v, v.updateEditFocus()
		case focusSubmit:
			return v, v.SubmitDraft()
		}
		// Enter in the description inserts a newline

	case v.editFocusIdx == focusStatus && key.Matches(msg, v.keys.Left):
		v.stepStatus(-1)
		return v, nil

	case v.editFocusIdx == focusStatus && (key.Matches(msg, v.keys.Right) || msg.String() == " "):
		v.stepStatus(1)
		return v, nil
	}

	var cmd tea.Cmd
	switch v.editFocusIdx {
	case focusName:
		v.editName, cmd = v.editName.Update(msg)
		v.draft.Set(tasklist.FieldName, v.editName.Value())
	case focusDue:
		v.editDue, cmd = v.editDue.Update(msg)
		v.draft.Set(tasklist.FieldDueDate, v.editDue.Value())
	case focusDescription:
		v.editDesc, cmd = v.editDesc.Update(msg)
		v.draft.Set(tasklist.FieldDescription, v.editDesc.Value())
	}
	return v, cmd
}

// stepStatus moves the status selector by dir, wrapping around
func (v *TaskListView) stepStatus(dir int) {
	idx := 0
	current := v.draft.Get(tasklist.FieldStatus)
	for i, s := range statusOptions {
		if string(s) == current {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(statusOptions)) % len(statusOptions)
	v.ChangeDraftField(tasklist.FieldStatus, string(statusOptions[idx]))
}

func (v *TaskListView) updateEditFocus() tea.Cmd {
	v.editName.Blur()
	v.editDue.Blur()
	v.editDesc.Blur()

	switch v.editFocusIdx {
	case focusName:
		return v.editName.Focus()
	case focusDue:
		return v.editDue.Focus()
	case focusDescription:
		return v.editDesc.Focus()
	}
	return nil
}

// View renders the view
func (v *TaskListView) View() string {
	if v.showHelpPopup {
		return v.renderHelpPopup()
	}

	if v.confirmingDelete {
		return v.renderDeleteConfirm()
	}

	if v.editing {
		return v.renderEditForm()
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render(fmt.Sprintf("Tasks (%d)", len(v.tasks))))
	b.WriteString("\n")
	b.WriteString(v.renderTaskList())
	b.WriteString("\n")
	b.WriteString(v.renderHelp())
	if v.statusText != "" {
		b.WriteString("\n")
		b.WriteString(v.renderStatus())
	}

	return styles.CenterView(b.String(), v.width, v.height)
}

func (v *TaskListView) renderTaskList() string {
	s := v.styles
	width := max(styles.ContentWidth(v.width)-4, 20)

	active := v.tasks.Active()
	completed := v.tasks.Completed()

	var sections []string
	idx := 0
	renderSection := func(title string, tasks []models.Task, empty string) {
		sections = append(sections, s.Section.Width(width).Render(title))
		if len(tasks) == 0 {
			sections = append(sections, s.TitleMuted.Padding(0, 2).Render(empty))
			return
		}
		for _, task := range tasks {
			item := TaskItem{Task: task}
			sections = append(sections, item.View(s, width, idx == v.cursor, v.pending[task.ID]))
			idx++
		}
	}

	emptyActive := "Nothing to do. Press 'n' to add a task."
	if !v.loaded {
		emptyActive = "Loading…"
	}
	renderSection("Actual", active, emptyActive)
	renderSection("Completed", completed, "No completed tasks.")

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *TaskListView) renderStatus() string {
	if v.statusError {
		return v.styles.StatusBarError.Render(v.statusText)
	}
	return v.styles.StatusBar.Render(v.statusText)
}

func (v *TaskListView) renderEditForm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	inputWidth := clamp(contentWidth-6, 20, 50)

	inputStyle := func(idx int) lipgloss.Style {
		if v.editFocusIdx == idx {
			return s.InputFocused
		}
		return s.Input
	}
	fieldError := func(field tasklist.Field) string {
		return s.FieldError.Render(v.errors[field])
	}

	submitLabel := "Add Task"
	if !v.draft.IsNew() {
		submitLabel = "Update Task"
	}
	btnStyle := s.Button
	if v.editFocusIdx == focusSubmit {
		btnStyle = s.ButtonFocused
	}
	if v.submits[v.draftGen] {
		submitLabel += " …"
	}

	lines := []string{s.Title.Render(v.FormTitle()), ""}
	for _, field := range tasklist.Fields {
		var input string
		switch field {
		case tasklist.FieldName:
			input = inputStyle(focusName).Width(inputWidth).Render(v.editName.View())
		case tasklist.FieldDueDate:
			input = inputStyle(focusDue).Width(inputWidth).Render(v.editDue.View())
		case tasklist.FieldStatus:
			input = inputStyle(focusStatus).Width(inputWidth).Render(v.renderStatusSelect())
		case tasklist.FieldDescription:
			input = inputStyle(focusDescription).Render(v.editDesc.View())
		}
		lines = append(lines, s.Label.Render(fieldLabels[field]), input, fieldError(field))
	}
	lines = append(lines, "", btnStyle.Render(submitLabel))
	if v.statusText != "" {
		lines = append(lines, v.renderStatus())
	}
	lines = append(lines, "", s.TitleMuted.Render("Tab: next • ←→: status • Ctrl+S: save • Esc: close"))

	form := lipgloss.JoinVertical(lipgloss.Left, lines...)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		form,
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *TaskListView) renderStatusSelect() string {
	status := models.Status(v.draft.Status)
	if status == "" {
		return v.styles.TitleMuted.Render("‹ Select status ›")
	}
	label := v.styles.ForStatusClass(StatusClass(status)).Render(status.Label())
	return "‹ " + label + " ›"
}

func (v *TaskListView) renderHelp() string {
	contentWidth := styles.ContentWidth(v.width)
	// At narrow widths, show hint to press ? for help
	if contentWidth > 0 && contentWidth < 50 {
		return v.styles.Help.Render(v.styles.HelpKey.Render("?") + " help")
	}

	return v.styles.Help.Render(
		fmt.Sprintf("%s status • %s new • %s edit • %s del • %s reload • %s quit",
			v.styles.HelpKey.Render("space"),
			v.styles.HelpKey.Render("n"),
			v.styles.HelpKey.Render("e"),
			v.styles.HelpKey.Render("d"),
			v.styles.HelpKey.Render("r"),
			v.styles.HelpKey.Render("q"),
		),
	)
}

func (v *TaskListView) renderHelpPopup() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	helpItems := []string{
		s.HelpKey.Render("↑↓") + "     move",
		s.HelpKey.Render("space") + "  cycle status",
		s.HelpKey.Render("n") + "      new task",
		s.HelpKey.Render("e") + "      edit task",
		s.HelpKey.Render("d") + "      delete task",
		s.HelpKey.Render("r") + "      reload",
		s.HelpKey.Render("q") + "      quit",
		"",
		s.TitleMuted.Render("Press any key to close"),
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		append([]string{s.Title.Render("Keyboard Shortcuts"), ""}, helpItems...)...,
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		s.Dialog.Render(content),
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *TaskListView) renderDeleteConfirm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	content := lipgloss.JoinVertical(lipgloss.Center,
		s.Title.Foreground(styles.Current.Error).Render("Delete Task?"),
		"",
		s.TitleMuted.Render(v.deleteTarget.Name),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center,
			s.ButtonPrimary.Render(" Y - Yes "),
			"  ",
			s.Button.Render(" N - No "),
		),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
	return styles.CenterView(centered, v.width, v.height)
}
