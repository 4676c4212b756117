package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/lifelog-cli/internal/auth"
	"github.com/julianstephens/lifelog-cli/internal/cli"
	"github.com/julianstephens/lifelog-cli/internal/cli/backups"
	"github.com/julianstephens/lifelog-cli/internal/cli/system"
	"github.com/julianstephens/lifelog-cli/internal/coach"
	"github.com/julianstephens/lifelog-cli/internal/constants"
	"github.com/julianstephens/lifelog-cli/internal/keyring"
	"github.com/julianstephens/lifelog-cli/internal/logger"
	"github.com/julianstephens/lifelog-cli/internal/remote"
	"github.com/julianstephens/lifelog-cli/internal/storage"
	"github.com/julianstephens/lifelog-cli/internal/sync"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store file path." type:"path" default:"~/.config/lifelog/lifelog.db"`
	APIURL  string `help:"Sync server base URL." env:"LIFELOG_API_URL" default:"http://localhost:5000"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init    system.InitCmd   `cmd:"" help:"Initialize lifelog storage."`
	Tui     system.TuiCmd    `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Login   system.LoginCmd  `cmd:"" help:"Sign in to the sync server."`
	Logout  system.LogoutCmd `cmd:"" help:"Sign out and clear the saved session."`
	Whoami  system.WhoamiCmd `cmd:"" help:"Show the signed-in account."`
	Sync    cli.SyncCmd      `cmd:"" help:"Reconcile local data with the sync server."`
	Mood    cli.MoodCmd      `cmd:"" help:"Show or set today's mood."`
	Habit   cli.HabitCmd     `cmd:"" help:"Manage habits."`
	Journal cli.JournalCmd   `cmd:"" help:"Manage journal entries."`
	Task    cli.TaskCmd      `cmd:"" help:"Manage tasks."`
	Chat    cli.ChatCmd      `cmd:"" help:"Talk to the wellness coach."`
	Theme   cli.ThemeCmd     `cmd:"" help:"Show or switch the display theme."`
	Search  cli.SearchCmd    `cmd:"" help:"Search habits and journal entries."`
	Stats   cli.StatsCmd     `cmd:"" help:"Show activity, habit, and journal statistics."`
	Backup  struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a backup of the store."`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore the store from a backup."`
	} `cmd:"" help:"Manage store backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Offline-first life tracker: mood, habits, journal, tasks, and a wellness coach"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	// Determine storage type based on extension; any backend failure
	// degrades to memory instead of blocking the user.
	var durable storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		durable = storage.NewJSONStore(CLI.Config)
	} else {
		durable = storage.NewSQLiteStore(CLI.Config)
	}
	store := storage.NewFallback(durable)

	// A saved session makes every command sync; without one the app runs
	// entirely locally as a guest.
	var session auth.Session
	if s, err := keyring.GetSession(); err == nil {
		session = s
	} else if !errors.Is(err, keyring.ErrNotFound) {
		logger.Warn("failed to read saved session", "error", err)
	}

	var gateway remote.Gateway
	var replier coach.Replier = coach.Canned{}
	if session.Authenticated() {
		client := remote.NewClient(CLI.APIURL, session.Token)
		gateway = client
		replier = coach.NewRemote(client)
	}

	appCtx := &cli.Context{
		Store:  store,
		Engine: sync.New(store, gateway, replier, session),
		APIURL: CLI.APIURL,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
