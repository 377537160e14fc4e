package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/jstrand/ritual/internal/cli"
	"github.com/jstrand/ritual/internal/config"
	"github.com/jstrand/ritual/internal/logger"
	"github.com/jstrand/ritual/internal/storage"
	"github.com/jstrand/ritual/internal/tracker"
)

var CLI struct {
	Version kong.VersionFlag
	Store   string `help:"Store file path (.json selects the JSON backend)." type:"path"`
	Config  string `help:"Config file path." type:"path"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init         cli.InitCmd         `cmd:"" help:"Initialize ritual storage."`
	Tui          cli.TuiCmd          `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Add          cli.AddCmd          `cmd:"" help:"Add a new habit."`
	Edit         cli.EditCmd         `cmd:"" help:"Edit an existing habit."`
	List         cli.ListCmd         `cmd:"" help:"List habits."`
	Done         cli.DoneCmd         `cmd:"" help:"Toggle a habit's completion for a day."`
	Log          cli.LogCmd          `cmd:"" help:"Show habit history (ASCII grid)."`
	Stats        cli.StatsCmd        `cmd:"" help:"Show aggregate statistics."`
	Achievements cli.AchievementsCmd `cmd:"" help:"Show achievements."`
	Delete       cli.DeleteCmd       `cmd:"" help:"Delete a habit and its history."`
	Clear        cli.ClearCmd        `cmd:"" help:"Clear all data."`
	Doctor       cli.DoctorCmd       `cmd:"" help:"Run health diagnostics."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("ritual"),
		kong.Description("Personal habit tracker with streaks, XP, and achievements"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	configPath := CLI.Config
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}
	fileCfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Flags win over the config file, which wins over XDG defaults.
	storePath := CLI.Store
	if storePath == "" && fileCfg.Store != nil {
		storePath = *fileCfg.Store
	}
	if storePath == "" {
		storePath = config.DefaultStorePath()
	}

	debug := CLI.Debug
	if !debug && fileCfg.Debug != nil {
		debug = *fileCfg.Debug
	}

	if err := logger.Setup(filepath.Dir(storePath), debug); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to set up logging: %v\n", err)
		os.Exit(1)
	}

	var store storage.Provider
	if strings.HasSuffix(storePath, ".json") {
		store = storage.NewJSONStore(storePath)
	} else {
		store = storage.NewSQLiteStore(storePath)
	}
	defer store.Close()

	weekStartName := ""
	if fileCfg.WeekStart != nil {
		weekStartName = *fileCfg.WeekStart
	}
	weekStart, err := config.ParseWeekStart(weekStartName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	appCtx := &cli.Context{
		Store:     store,
		Tracker:   tracker.New(tracker.NewBridge(store), nil),
		WeekStart: weekStart,
	}

	if err := ctx.Run(appCtx); err != nil {
		logger.Error("command failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
