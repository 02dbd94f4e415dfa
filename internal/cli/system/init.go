package system

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/streakr/internal/cli"
	"github.com/julianstephens/streakr/internal/config"
	"github.com/julianstephens/streakr/internal/storage/sqlite"
)

type InitCmd struct {
	Force  bool   `help:"Delete an existing SQLite database before initializing."`
	Source string `help:"Database path or connection string to copy habits from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if err := c.reset(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	ctx.Printf("Initialized streakr storage at: %s\n", ctx.Store.GetConfigPath())

	if err := writeDefaultConfig(ctx); err != nil {
		return err
	}

	if c.Source != "" {
		ctx.Printf("Copying habits from: %s\n", c.Source)
		if err := c.copyHabits(ctx); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// writeDefaultConfig saves a config file pointing at the initialized database
// unless one already exists.
func writeDefaultConfig(ctx *cli.Context) error {
	if ctx.ConfigPath == "" {
		return nil
	}
	path, err := config.ExpandPath(ctx.ConfigPath)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to access config file: %w", err)
	}

	cfg := config.Default()
	if ctx.Database != "" {
		cfg.Database = ctx.Database
	}
	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	ctx.Printf("Wrote config file: %s\n", path)
	return nil
}

func (c *InitCmd) reset(ctx *cli.Context) error {
	if _, ok := ctx.Store.(*sqlite.Store); !ok {
		return fmt.Errorf("--force is only supported for SQLite databases")
	}

	dbPath := ctx.Store.GetConfigPath()
	if c.Source != "" {
		absDB, errDB := filepath.Abs(dbPath)
		absSource, errSrc := filepath.Abs(c.Source)
		if errDB == nil && errSrc == nil && absDB == absSource {
			return fmt.Errorf("cannot use --force when source and destination are the same: %s", dbPath)
		}
	}

	if _, err := os.Stat(dbPath); err == nil {
		if err := ctx.Store.Close(); err != nil {
			return fmt.Errorf("failed to close existing database: %w", err)
		}
		if err := os.Remove(dbPath); err != nil {
			return fmt.Errorf("failed to delete existing database: %w", err)
		}
		ctx.Printf("Deleted existing database at: %s\n", dbPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to access existing database: %w", err)
	}
	return nil
}

// copyHabits loads every habit, completions included, from the source store
// and re-inserts it into the destination.
func (c *InitCmd) copyHabits(ctx *cli.Context) error {
	source, err := cli.OpenStore(c.Source)
	if err != nil {
		return err
	}
	defer source.Close()
	if err := source.Load(); err != nil {
		return fmt.Errorf("failed to load source database: %w", err)
	}

	habits, err := source.GetAllHabits()
	if err != nil {
		return fmt.Errorf("failed to read habits from source: %w", err)
	}

	completions := 0
	for _, h := range habits {
		if err := ctx.Store.AddHabit(h); err != nil {
			return fmt.Errorf("failed to add habit %q: %w", h.Name, err)
		}
		completions += len(h.Completions)
	}
	ctx.Printf("  Copied %d habits (%d completions)\n", len(habits), completions)
	return nil
}
