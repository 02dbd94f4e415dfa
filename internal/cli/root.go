package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/julianstephens/streakr/internal/backup"
	"github.com/julianstephens/streakr/internal/config"
	"github.com/julianstephens/streakr/internal/constants"
	"github.com/julianstephens/streakr/internal/keyring"
	"github.com/julianstephens/streakr/internal/logger"
	"github.com/julianstephens/streakr/internal/storage"
	"github.com/julianstephens/streakr/internal/storage/postgres"
	"github.com/julianstephens/streakr/internal/storage/sqlite"
	"github.com/julianstephens/streakr/internal/tracker"
)

type Context struct {
	Store      storage.Provider
	Tracker    *tracker.Tracker
	Out        io.Writer
	AutoBackup bool
	// ConfigPath and Database record where settings came from so init can
	// write a starter config file
	ConfigPath string
	Database   string
}

// NewContext wires a tracker over store. A nil now uses the wall clock.
func NewContext(store storage.Provider, out io.Writer, now func() time.Time) *Context {
	if out == nil {
		out = os.Stdout
	}
	return &Context{
		Store:   store,
		Tracker: tracker.New(store, now),
		Out:     out,
	}
}

func (c *Context) Printf(format string, args ...any) {
	fmt.Fprintf(c.Out, format, args...)
}

func (c *Context) Println(args ...any) {
	fmt.Fprintln(c.Out, args...)
}

// PerformAutomaticBackup snapshots a SQLite store when auto backups are
// enabled. Failures are logged, never returned.
func (c *Context) PerformAutomaticBackup() {
	if !c.AutoBackup {
		return
	}
	if _, ok := c.Store.(*sqlite.Store); !ok {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// OpenStore picks a backend for the configured database setting: "keyring"
// reads a PostgreSQL connection string from the OS keyring, postgres URLs and
// DSNs select PostgreSQL, anything else is a SQLite file path.
func OpenStore(database string) (storage.Provider, error) {
	if database == constants.KeyringDatabase {
		connStr, err := keyring.GetConnectionString()
		if err != nil {
			if errors.Is(err, keyring.ErrNotFound) {
				return nil, fmt.Errorf("no connection string in keyring; run '%s keyring set' first", constants.AppName)
			}
			return nil, err
		}
		logger.Debug("Using PostgreSQL connection string from keyring")
		return postgres.New(connStr), nil
	}

	if isPostgres(database) {
		if _, err := postgres.ValidateConnString(database); err != nil {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, fmt.Errorf("%w: store the connection string with '%s keyring set' or use .pgpass", err, constants.AppName)
			}
			return nil, err
		}
		return postgres.New(database), nil
	}

	path, err := config.ExpandPath(database)
	if err != nil {
		return nil, err
	}
	return sqlite.NewStore(path), nil
}

func isPostgres(database string) bool {
	return postgres.IsConnString(database) || strings.Contains(database, "host=")
}

// ParseTimestamp accepts RFC3339 or a bare YYYY-MM-DD date. Today's date
// resolves to now; any other date resolves to the last instant of that day.
func ParseTimestamp(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return now, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	day, err := time.ParseInLocation(constants.DateFormat, s, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q (expected RFC3339 or YYYY-MM-DD)", s)
	}
	if y, m, d := now.Date(); day.Year() == y && day.Month() == m && day.Day() == d {
		return now, nil
	}
	return time.Date(day.Year(), day.Month(), day.Day()+1, 0, 0, 0, 0, now.Location()).
		Add(-time.Nanosecond), nil
}
