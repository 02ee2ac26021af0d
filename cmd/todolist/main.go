package main

import (
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tgienger/todolist/internal/api"
	"github.com/tgienger/todolist/internal/config"
	"github.com/tgienger/todolist/internal/logging"
	"github.com/tgienger/todolist/internal/ui"
	"github.com/tgienger/todolist/internal/ui/views"
)

// Version information set via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cfg, err := config.LoadClient(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(2)
	}
	if cfg.ShowVersion {
		fmt.Printf("todolist %s (commit: %s, built: %s)\n", version, commit, date)
		os.Exit(0)
	}

	logFile, err := logging.OpenFile(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	log, err := logging.New(cfg.LogLevel, logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}
	log.WithField("api", cfg.APIURL).Info("starting todolist")

	client := api.NewClient(cfg.APIURL, &http.Client{})
	taskList := views.NewTaskListView(client, log, views.WithTimeout(cfg.Timeout))

	// Create and run the application
	app := ui.NewApp(taskList)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		log.WithError(err).Error("program exited")
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}
