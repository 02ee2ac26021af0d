package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tgienger/todolist/internal/ui/views"
)

// App is the root model of the program
type App struct {
	taskList *views.TaskListView
	width    int
	height   int
}

// Creates a new application around the task list
func NewApp(taskList *views.TaskListView) *App {
	return &App{taskList: taskList}
}

func (a *App) Init() tea.Cmd {
	return a.taskList.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case tea.KeyMsg:
		// ctrl+c always quits, even while typing in the editor
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
	}

	_, cmd := a.taskList.Update(msg)
	return a, cmd
}

func (a *App) View() string {
	if a.width == 0 {
		return ""
	}
	return a.taskList.View()
}
