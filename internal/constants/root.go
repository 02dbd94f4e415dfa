package constants

const (
	AppName            = "streakr"
	DefaultKeyringUser = "database-connection"
	DefaultConfigDir   = "~/.config/streakr"
	DefaultConfigPath  = "~/.config/streakr/config.toml"
	DefaultDBPath      = "~/.config/streakr/streakr.db"
	Version            = "v0.3.0"

	// KeyringDatabase is the database setting that defers to the OS keyring
	KeyringDatabase = "keyring"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// DisplayTimeFormat is used when printing completion timestamps
	DisplayTimeFormat = "2006-01-02 15:04"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "streakr-"
	BackupFileSuffix = ".db"

	// Log constants
	LogDirName  = "logs"
	LogFileName = "streakr.log"

	// Environment overrides
	EnvDatabase   = "STREAKR_DATABASE"
	EnvDebug      = "STREAKR_DEBUG"
	EnvAutoBackup = "STREAKR_AUTO_BACKUP"
)
