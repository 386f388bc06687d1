package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultConfigPath is where settings are read from unless overridden
const DefaultConfigPath = "./config/settings.yaml"

// Load reads defaults, a local .env file, environment overrides and the
// settings file at path into viper, then validates the result.
func Load(path string) error {
	setDefaults()

	// A missing .env is the normal case outside local development
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error reading .env file: %w", err)
	}

	viper.SetEnvPrefix("VIDCODE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	cleaned := filepath.Clean(path)
	viper.SetConfigFile(cleaned)
	if err := viper.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) && !os.IsNotExist(err) {
			return fmt.Errorf("error reading config file %s: %w", cleaned, err)
		}
	}

	if err := validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// GetConfig returns the current configuration as a struct
// Load must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	switch driver := viper.GetString("database.driver"); driver {
	case DriverSQLite:
		if viper.GetString("database.path") == "" {
			return fmt.Errorf("database.path is required for the sqlite driver")
		}
	case DriverMySQL:
		if viper.GetString("database.mysql.name") == "" {
			return fmt.Errorf("database.mysql.name is required for the mysql driver")
		}
	default:
		return fmt.Errorf("unsupported database driver: %q", driver)
	}

	if viper.GetString("storage.upload_dir") == "" {
		return fmt.Errorf("storage.upload_dir is required")
	}

	// Auto-correct invalid limiter settings
	if viper.GetInt("rate_limiting.rps") <= 0 {
		viper.Set("rate_limiting.rps", 10)
	}
	if viper.GetInt("rate_limiting.burst") <= 0 {
		viper.Set("rate_limiting.burst", 20)
	}

	return nil
}

var slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// ValidSlug reports whether s can be used as a project slug
func ValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	switch c.Database.Driver {
	case DriverSQLite, "":
		// An empty path opens an in-memory database
	case DriverMySQL:
		if c.Database.MySQL.Name == "" {
			return fmt.Errorf("database.mysql.name is required for the mysql driver")
		}
	default:
		return fmt.Errorf("unsupported database driver: %q", c.Database.Driver)
	}

	if c.RateLimiting.RPS <= 0 {
		c.RateLimiting.RPS = 10
	}
	if c.RateLimiting.Burst <= 0 {
		c.RateLimiting.Burst = 20
	}

	return nil
}

func setDefaults() {
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)
	viper.SetDefault("server.max_body_bytes", 1048576)

	// Database defaults
	viper.SetDefault("database.driver", DriverSQLite)
	viper.SetDefault("database.path", "./data/database.db")
	viper.SetDefault("database.max_connections", 10)
	viper.SetDefault("database.max_idle_connections", 5)
	viper.SetDefault("database.connection_max_lifetime", 30*time.Minute)
	viper.SetDefault("database.log_queries", false)
	viper.SetDefault("database.mysql.host", "localhost")
	viper.SetDefault("database.mysql.port", 3306)
	viper.SetDefault("database.mysql.user", "vidcode")
	viper.SetDefault("database.mysql.password", "")
	viper.SetDefault("database.mysql.name", "vidcode")

	// Storage defaults
	viper.SetDefault("storage.upload_dir", "./data/uploads")
	viper.SetDefault("storage.max_upload_size", 32<<20)
	viper.SetDefault("storage.stale_upload_age", time.Hour)
	viper.SetDefault("storage.cleanup_interval", 15*time.Minute)

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.enabled", true)
	viper.SetDefault("rate_limiting.rps", 10)
	viper.SetDefault("rate_limiting.burst", 20)
	viper.SetDefault("rate_limiting.ttl", 10*time.Minute)

	// Security defaults
	viper.SetDefault("security.cors_origins", []string{"*"})

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "console")

	// Monitoring defaults
	viper.SetDefault("monitoring.enabled", true)
	viper.SetDefault("monitoring.metrics_path", "/metrics")
}
