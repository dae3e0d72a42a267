// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, catalog, search, sessions and logging

package config

import (
	"errors"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Catalog points at the course-listing endpoint
	Catalog CatalogConfig

	// Search tunes the engine
	Search SearchConfig

	// Session configures where session inputs are persisted
	Session SessionConfig

	// Log configures the structured logger
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is the number of requests allowed per RateWindow per client
	RateLimit int

	// RateWindow is the rate limit window
	RateWindow time.Duration
}

// CatalogConfig holds course catalog endpoint configuration
type CatalogConfig struct {
	// BaseURL is the full URL of the paginated course-listing endpoint
	BaseURL string

	// Timeout bounds each catalog request
	Timeout time.Duration

	// Status filters listings by course status; empty sends none
	Status string
}

// SearchConfig holds engine tunables
type SearchConfig struct {
	Debounce       time.Duration
	SearchPageSize int
	LatestPageSize int
	SectionSize    int

	// Interests narrows the recommended section to these categories
	Interests []string
}

// SessionConfig holds session store configuration
type SessionConfig struct {
	// Store specifies the backend (memory/redis/sqlite)
	Store string

	// TTL is how long idle session inputs are kept
	TTL time.Duration

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// SQLitePath is the database file for the sqlite store
	SQLitePath string
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int

	// KeyPrefix namespaces every key
	KeyPrefix string
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string
	Format string
	File   string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:       getEnvOrDefault("PORT", "8000"),
			RateLimit:  getEnvAsIntOrDefault("RATE_LIMIT", 100),
			RateWindow: time.Duration(getEnvAsIntOrDefault("RATE_WINDOW_SECONDS", 60)) * time.Second,
		},
		Catalog: CatalogConfig{
			BaseURL: getEnvOrDefault("CATALOG_BASE_URL", "http://localhost:3000/api/courses"),
			Timeout: time.Duration(getEnvAsIntOrDefault("CATALOG_TIMEOUT_SECONDS", 10)) * time.Second,
			Status:  getEnvOrDefault("CATALOG_STATUS", "Published"),
		},
		Search: SearchConfig{
			Debounce:       time.Duration(getEnvAsIntOrDefault("SEARCH_DEBOUNCE_MS", 300)) * time.Millisecond,
			SearchPageSize: getEnvAsIntOrDefault("SEARCH_PAGE_SIZE", 12),
			LatestPageSize: getEnvAsIntOrDefault("LATEST_PAGE_SIZE", 5),
			SectionSize:    getEnvAsIntOrDefault("SECTION_SIZE", 4),
			Interests:      getEnvAsListOrDefault("RECOMMENDED_CATEGORIES", nil),
		},
		Session: SessionConfig{
			Store: getEnvOrDefault("SESSION_STORE", "memory"),
			TTL:   time.Duration(getEnvAsIntOrDefault("SESSION_TTL_SECONDS", 1800)) * time.Second,
			Redis: RedisConfig{
				Address:   getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password:  getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:        getEnvAsIntOrDefault("REDIS_DB", 0),
				KeyPrefix: getEnvOrDefault("REDIS_KEY_PREFIX", "course-search:"),
			},
			SQLitePath: getEnvOrDefault("SQLITE_PATH", "sessions.db"),
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "json"),
			File:   getEnvOrDefault("LOG_FILE", ""),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsListOrDefault splits a comma-separated variable, dropping blanks
func getEnvAsListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if u, err := url.Parse(c.Catalog.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New("catalog base URL must be an absolute URL")
	}

	if c.Catalog.Timeout <= 0 {
		return errors.New("catalog timeout must be positive")
	}

	if c.Search.Debounce < 0 {
		return errors.New("search debounce cannot be negative")
	}

	if c.Search.SearchPageSize < 1 || c.Search.LatestPageSize < 1 || c.Search.SectionSize < 1 {
		return errors.New("page and section sizes must be at least 1")
	}

	switch c.Session.Store {
	case "memory":
	case "redis":
		if c.Session.Redis.Address == "" {
			return errors.New("redis address cannot be empty when using redis session store")
		}
	case "sqlite":
		if c.Session.SQLitePath == "" {
			return errors.New("sqlite path cannot be empty when using sqlite session store")
		}
	default:
		return errors.New("session store must be 'memory', 'redis' or 'sqlite'")
	}

	if c.Session.TTL <= 0 {
		return errors.New("session TTL must be positive")
	}

	return nil
}
