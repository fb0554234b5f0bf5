package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/franciscosanchezn/truckplate-api/internal/database"
	"github.com/franciscosanchezn/truckplate-api/internal/media"
	"github.com/franciscosanchezn/truckplate-api/internal/storage"
	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	environment := GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(logrus.DebugLevel)
	case "production":
		log.SetLevel(logrus.ErrorLevel)
	default:
		// Default to info level for other environments
		log.SetLevel(logrus.InfoLevel)
	}
}

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Env  string `json:"env"`
	Port int    `json:"port"`
	Host string `json:"host"`

	// Logging configuration
	LogLevel string `json:"log_level"`

	// Storage configuration
	StorageDriver string `json:"storage_driver"`
	StoragePrefix string `json:"storage_prefix"`
	DatabaseURL   string `json:"database_url"`
	DBHost        string `json:"db_host"`
	DBPort        string `json:"db_port"`
	DBName        string `json:"db_name"`
	DBUser        string `json:"db_user"`
	DBPassword    string `json:"db_password"`
	DBSSLMode     string `json:"db_sslmode"`
	DBPath        string `json:"db_path"`
	RedisURL      string `json:"redis_url"`

	// Behaviour
	LoadDelay          time.Duration `json:"load_delay"`
	SaveTimeout        time.Duration `json:"save_timeout"`
	ToastDuration      time.Duration `json:"toast_duration"`
	DefaultDisplayName string        `json:"default_display_name"`

	// Invoice image storage
	ImageStore      string `json:"image_store"`
	S3Endpoint      string `json:"s3_endpoint"`
	S3AccessKey     string `json:"s3_access_key"`
	S3SecretKey     string `json:"s3_secret_key"`
	S3Bucket        string `json:"s3_bucket"`
	S3PublicBaseURL string `json:"s3_public_base_url"`
	MaxUploadMB     int    `json:"max_upload_mb"`

	// HTTP edge
	CORSOrigins    []string `json:"cors_origins"`
	RateLimitRPS   float64  `json:"rate_limit_rps"`
	RateLimitBurst int      `json:"rate_limit_burst"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Env: %s, Port: %d, Host: %s, LogLevel: %s, StorageDriver: %s, StoragePrefix: %s, DatabaseURL: %s, DBHost: %s, DBName: %s, DBUser: %s, DBPassword: [REDACTED], DBPath: %s, RedisURL: %s, LoadDelay: %s, SaveTimeout: %s, ToastDuration: %s, ImageStore: %s, S3Bucket: %s, S3AccessKey: %s, S3SecretKey: [REDACTED], MaxUploadMB: %d, CORSOrigins: %v, RateLimitRPS: %g, RateLimitBurst: %d}",
		c.Env, c.Port, c.Host, c.LogLevel, c.StorageDriver, c.StoragePrefix, maskDatabaseURL(c.DatabaseURL),
		c.DBHost, c.DBName, c.DBUser, c.DBPath, maskDatabaseURL(c.RedisURL), c.LoadDelay, c.SaveTimeout, c.ToastDuration,
		c.ImageStore, c.S3Bucket, maskKey(c.S3AccessKey), c.MaxUploadMB, c.CORSOrigins, c.RateLimitRPS, c.RateLimitBurst)
}

// maskDatabaseURL masks password in database URL
func maskDatabaseURL(dbURL string) string {
	if dbURL == "" {
		return ""
	}

	parsed, err := url.Parse(dbURL)
	if err != nil {
		return "[REDACTED_INVALID_URL]"
	}

	if parsed.User != nil {
		if _, hasPassword := parsed.User.Password(); hasPassword {
			parsed.User = url.UserPassword(parsed.User.Username(), "[REDACTED]")
		}
	}

	return parsed.String()
}

// maskKey keeps the first four characters of an access key
func maskKey(key string) string {
	if len(key) <= 4 {
		if key == "" {
			return ""
		}
		return "****"
	}
	return key[:4] + "****"
}

// Database returns the SQL settings for the gorm backed storage drivers
func (c *Config) Database() database.DatabaseConfig {
	return database.DatabaseConfig{
		Driver:   c.StorageDriver,
		URL:      c.DatabaseURL,
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		Name:     c.DBName,
		SSLMode:  c.DBSSLMode,
		Path:     c.DBPath,
	}
}

// Storage returns the key-value backend options
func (c *Config) Storage() storage.Options {
	return storage.Options{
		Driver:   c.StorageDriver,
		Database: c.Database(),
		RedisURL: c.RedisURL,
		Prefix:   c.StoragePrefix,
	}
}

// Media returns the invoice image store options
func (c *Config) Media() media.Options {
	return media.Options{
		Driver:   c.ImageStore,
		MaxBytes: int64(c.MaxUploadMB) << 20,
		S3: media.S3Config{
			Endpoint:      c.S3Endpoint,
			AccessKey:     c.S3AccessKey,
			SecretKey:     c.S3SecretKey,
			Bucket:        c.S3Bucket,
			PublicBaseURL: c.S3PublicBaseURL,
		},
	}
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// It also validates formats like DATABASE_URL, REDIS_URL and the storage drivers
// Returns an error if any required environment variable is missing or invalid
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config := &Config{
		Env:                GetEnvWithDefault("APP_ENV", "development"),
		Port:               port,
		Host:               GetEnvWithDefault("APP_HOST", "localhost"),
		LogLevel:           GetEnvWithDefault("LOG_LEVEL", "info"),
		StorageDriver:      strings.ToLower(GetEnvWithDefault("STORAGE_DRIVER", storage.DriverSQLite)),
		StoragePrefix:      GetEnvAsType("STORAGE_PREFIX", "truckplate_"),
		DatabaseURL:        GetEnvWithDefault("DATABASE_URL", ""),
		DBHost:             GetEnvWithDefault("DB_HOST", "localhost"),
		DBPort:             GetEnvWithDefault("DB_PORT", "5432"),
		DBName:             GetEnvWithDefault("DB_NAME", "truckplate"),
		DBUser:             GetEnvWithDefault("DB_USER", "postgres"),
		DBPassword:         GetEnvWithDefault("DB_PASSWORD", ""),
		DBSSLMode:          GetEnvWithDefault("DB_SSLMODE", "disable"),
		DBPath:             GetEnvWithDefault("DB_PATH", "truckplate.db"),
		RedisURL:           GetEnvWithDefault("REDIS_URL", "redis://localhost:6379/0"),
		LoadDelay:          GetEnvAsType("LOAD_DELAY", 800*time.Millisecond),
		SaveTimeout:        GetEnvAsType("SAVE_TIMEOUT", 5*time.Second),
		ToastDuration:      GetEnvAsType("TOAST_DURATION", 3*time.Second),
		DefaultDisplayName: GetEnvWithDefault("DEFAULT_DISPLAY_NAME", "Chef Maria"),
		ImageStore:         strings.ToLower(GetEnvWithDefault("IMAGE_STORE", media.DriverInline)),
		S3Endpoint:         GetEnvWithDefault("S3_ENDPOINT", ""),
		S3AccessKey:        GetEnvWithDefault("S3_ACCESS_KEY", ""),
		S3SecretKey:        GetEnvWithDefault("S3_SECRET_KEY", ""),
		S3Bucket:           GetEnvWithDefault("S3_BUCKET", ""),
		S3PublicBaseURL:    GetEnvWithDefault("S3_PUBLIC_BASE_URL", ""),
		MaxUploadMB:        GetEnvAsType("MAX_UPLOAD_MB", 10),
		CORSOrigins:        splitList(GetEnvWithDefault("CORS_ORIGINS", "*")),
		RateLimitRPS:       GetEnvAsType("RATE_LIMIT_RPS", 20.0),
		RateLimitBurst:     GetEnvAsType("RATE_LIMIT_BURST", 40),
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

func (c *Config) validate() error {
	if !storage.ValidDriver(c.StorageDriver) {
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", c.StorageDriver)
	}
	if c.DatabaseURL != "" {
		// validate URL with net/url
		if _, err := url.ParseRequestURI(c.DatabaseURL); err != nil {
			return fmt.Errorf("invalid DATABASE_URL format: %w", err)
		}
	}
	if c.StorageDriver == storage.DriverRedis {
		if _, err := url.ParseRequestURI(c.RedisURL); err != nil {
			return fmt.Errorf("invalid REDIS_URL format: %w", err)
		}
	}
	switch c.ImageStore {
	case media.DriverInline:
	case media.DriverS3:
		if c.S3Bucket == "" || c.S3PublicBaseURL == "" {
			return errors.New("S3_BUCKET and S3_PUBLIC_BASE_URL are required when IMAGE_STORE is s3")
		}
	default:
		return fmt.Errorf("unsupported IMAGE_STORE %q", c.ImageStore)
	}
	if c.MaxUploadMB <= 0 {
		return errors.New("MAX_UPLOAD_MB must be positive")
	}
	if c.LoadDelay < 0 || c.ToastDuration <= 0 {
		return errors.New("LOAD_DELAY must not be negative and TOAST_DURATION must be positive")
	}
	if c.SaveTimeout <= 0 {
		return errors.New("SAVE_TIMEOUT must be positive")
	}
	return nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Warnf("Environment variable %s not set, using default value: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case float64:
		floatValue, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return defaultValue
		}
		return any(floatValue).(T)
	case time.Duration:
		durationValue, err := time.ParseDuration(value)
		if err != nil {
			return defaultValue
		}
		return any(durationValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}
