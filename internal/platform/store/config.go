package store

import "time"

// Config aggregates per backend configuration
type Config struct {
	AppName string

	SQLite SQLiteConfig
}

// SQLiteConfig configures the embedded database
type SQLiteConfig struct {
	// Path is a file path or ":memory:". Empty disables the backend
	Path string

	// BusyTimeout is how long a writer waits on a locked database (default 5s)
	BusyTimeout time.Duration

	// SlowQuery marks statements at or above this duration as warn (0 disables)
	SlowQuery time.Duration

	// LogSQL logs every statement at debug level
	LogSQL bool
}
