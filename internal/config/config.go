// Package config loads settings for the todolist client and the task API server.
// Values come from a .env file, then the environment, then command line flags.
package config

import (
	"errors"
	"flag"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Client configures the terminal client
type Client struct {
	APIURL      string
	Timeout     time.Duration
	LogFile     string
	LogLevel    string
	ShowVersion bool
}

// Server configures the task API server
type Server struct {
	Addr        string
	DBPath      string
	RateLimit   float64
	RateBurst   int
	LogLevel    string
	ShowVersion bool
}

// LoadClient reads the client configuration. args excludes the program name.
func LoadClient(args []string) (Client, error) {
	if err := loadDotEnv(); err != nil {
		return Client{}, err
	}

	logFile, err := defaultLogFile()
	if err != nil {
		return Client{}, err
	}

	var cfg Client
	flags := flag.NewFlagSet("todolist", flag.ContinueOnError)
	flags.StringVar(&cfg.APIURL, "api", getenv("TODO_API_URL", "http://localhost:5175"), "task API base URL")
	flags.DurationVar(&cfg.Timeout, "timeout", getdur("TODO_TIMEOUT", 10*time.Second), "request timeout")
	flags.StringVar(&cfg.LogFile, "log-file", getenv("TODO_LOG_FILE", logFile), "log file path")
	flags.StringVar(&cfg.LogLevel, "log-level", getenv("TODO_LOG_LEVEL", "info"), "log level")
	flags.BoolVar(&cfg.ShowVersion, "version", false, "print version and exit")
	if err := flags.Parse(args); err != nil {
		return Client{}, err
	}
	return cfg, nil
}

// LoadServer reads the server configuration. args excludes the program name.
func LoadServer(args []string) (Server, error) {
	if err := loadDotEnv(); err != nil {
		return Server{}, err
	}

	var cfg Server
	flags := flag.NewFlagSet("taskapi", flag.ContinueOnError)
	flags.StringVar(&cfg.Addr, "addr", getenv("TODO_ADDR", ":5175"), "listen address")
	flags.StringVar(&cfg.DBPath, "db", getenv("TODO_DB_PATH", ""), "sqlite database path (default: XDG data dir)")
	flags.Float64Var(&cfg.RateLimit, "rate", getfloat("TODO_RATE_LIMIT", 20), "requests per second")
	flags.IntVar(&cfg.RateBurst, "burst", getint("TODO_RATE_BURST", 40), "request burst")
	flags.StringVar(&cfg.LogLevel, "log-level", getenv("TODO_LOG_LEVEL", "info"), "log level")
	flags.BoolVar(&cfg.ShowVersion, "version", false, "print version and exit")
	if err := flags.Parse(args); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

// loadDotEnv applies .env from the working directory without overriding the environment
func loadDotEnv() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// defaultLogFile returns the log path under the XDG state directory
func defaultLogFile() (string, error) {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		stateDir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateDir, "todolist", "todolist.log"), nil
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getdur(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return def
	}
	return d
}

func getint(key string, def int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return n
}

func getfloat(key string, def float64) float64 {
	f, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return def
	}
	return f
}
