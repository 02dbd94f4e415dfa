package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/streakr/internal/cli"
	"github.com/julianstephens/streakr/internal/cli/backups"
	"github.com/julianstephens/streakr/internal/cli/system"
	"github.com/julianstephens/streakr/internal/config"
	"github.com/julianstephens/streakr/internal/constants"
	"github.com/julianstephens/streakr/internal/errors"
	"github.com/julianstephens/streakr/internal/logger"
)

type CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Path to the TOML config file." type:"path" default:"~/.config/streakr/config.toml"`
	DB      string `name:"db" help:"SQLite path, PostgreSQL connection string or 'keyring'. Overrides the config file. PostgreSQL credentials must NOT be embedded in the connection string."`
	Debug   bool   `help:"Log at debug level and mirror logs to stderr."`

	Init   system.InitCmd `cmd:"" help:"Initialize streakr storage."`
	Tui    system.TuiCmd  `cmd:"" help:"Launch the habit dashboard." default:"1"`
	Menu   cli.MenuCmd    `cmd:"" help:"Run the interactive numbered menu."`
	Habit  cli.HabitCmd   `cmd:"" help:"Manage and check off habits."`
	Backup struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups (SQLite only)."`
	Keyring system.KeyringCmd `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		errors.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	var flags CLI
	parser, err := kong.New(&flags,
		kong.Name(constants.AppName),
		kong.Description("Habit tracker with streak analytics"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
		kong.Writers(stdout, os.Stderr),
	)
	if err != nil {
		return err
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(flags.Config)
	if err != nil {
		return err
	}
	if flags.DB != "" {
		cfg.Database = flags.DB
	}

	if err := logger.Init(logger.Config{
		Debug:  flags.Debug || cfg.Debug,
		LogDir: cfg.LogDir,
	}); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	command := ctx.Command()
	appCtx := &cli.Context{Out: stdout}

	// keyring commands never touch the database
	if !strings.HasPrefix(command, "keyring") {
		store, err := cli.OpenStore(cfg.Database)
		if err != nil {
			return err
		}
		defer store.Close()

		appCtx = cli.NewContext(store, stdout, nil)
		appCtx.AutoBackup = cfg.AutoBackup
		appCtx.ConfigPath = flags.Config
		appCtx.Database = cfg.Database

		// init creates the store itself
		if ctx.Selected() != nil && ctx.Selected().Name != "init" {
			if err := store.Load(); err != nil {
				return err
			}
		}
	}

	logger.Debug("Running command", "command", command)
	return ctx.Run(appCtx)
}
