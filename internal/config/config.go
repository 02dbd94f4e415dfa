package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/julianstephens/streakr/internal/constants"
)

// Config is the on-disk TOML configuration. Environment variables take
// precedence over file values.
type Config struct {
	Database   string `toml:"database"`    // STREAKR_DATABASE (SQLite path, postgres URL or "keyring")
	Debug      bool   `toml:"debug"`       // STREAKR_DEBUG
	AutoBackup bool   `toml:"auto_backup"` // STREAKR_AUTO_BACKUP
	LogDir     string `toml:"log_dir,omitempty"`
}

func Default() Config {
	return Config{
		Database: constants.DefaultDBPath,
	}
}

// Load reads the config file at path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	expanded, err := ExpandPath(path)
	if err != nil {
		return Config{}, err
	}

	if _, err := toml.DecodeFile(expanded, &cfg); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("failed to read config %s: %w", expanded, err)
	}

	cfg.Database = envOrDefault(constants.EnvDatabase, cfg.Database)
	if cfg.Debug, err = envBool(constants.EnvDebug, cfg.Debug); err != nil {
		return Config{}, err
	}
	if cfg.AutoBackup, err = envBool(constants.EnvAutoBackup, cfg.AutoBackup); err != nil {
		return Config{}, err
	}

	if cfg.Database == "" {
		cfg.Database = constants.DefaultDBPath
	}
	if cfg.LogDir == "" {
		cfg.LogDir = filepath.Join(filepath.Dir(expanded), constants.LogDirName)
	}
	if cfg.LogDir, err = ExpandPath(cfg.LogDir); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func Save(path string, cfg Config) error {
	expanded, err := ExpandPath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.OpenFile(expanded, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

// ExpandPath replaces a leading "~" with the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
