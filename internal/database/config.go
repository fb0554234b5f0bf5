package database

import (
	"fmt"
	"time"
)

// DatabaseConfig holds the SQL connection settings for the kv_entries table
type DatabaseConfig struct {
	// Driver specifies the database driver (postgres, sqlite)
	Driver string

	// URL is a full postgres connection string; it wins over the parts below
	URL string

	// PostgreSQL-specific configuration
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	// SQLite-specific configuration
	Path string

	// Connection retry behaviour, defaults apply when zero
	MaxRetries int
	RetryDelay time.Duration
}

// String returns a string representation with sensitive data masked
func (c *DatabaseConfig) String() string {
	return fmt.Sprintf("DatabaseConfig{Driver: %s, Host: %s, Port: %s, User: %s, Password: [REDACTED], Name: %s, SSLMode: %s, Path: %s}",
		c.Driver, c.Host, c.Port, c.User, c.Name, c.SSLMode, c.Path)
}

// DSN builds a Data Source Name string based on the driver
func (c *DatabaseConfig) DSN() string {
	switch c.Driver {
	case "postgres", "postgresql":
		if c.URL != "" {
			return c.URL
		}
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
	case "sqlite", "":
		return c.Path
	default:
		return ""
	}
}

// retryDelays returns the wait before each retry, doubling from RetryDelay
func (c *DatabaseConfig) retryDelays() []time.Duration {
	retries := c.MaxRetries
	if retries <= 0 {
		retries = 5
	}
	base := c.RetryDelay
	if base <= 0 {
		base = time.Second
	}
	delays := make([]time.Duration, retries)
	for i := range delays {
		delays[i] = base << i
	}
	return delays
}
