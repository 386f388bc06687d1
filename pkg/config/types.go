package config

import "time"

// Supported database drivers
const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// Config represents the complete application configuration
type Config struct {
	Environment  string           `mapstructure:"environment"`
	Server       ServerConfig     `mapstructure:"server"`
	Database     DatabaseConfig   `mapstructure:"database"`
	Storage      StorageConfig    `mapstructure:"storage"`
	RateLimiting RateLimitConfig  `mapstructure:"rate_limiting"`
	Security     SecurityConfig   `mapstructure:"security"`
	Logging      LoggingConfig    `mapstructure:"logging"`
	Monitoring   MonitoringConfig `mapstructure:"monitoring"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Driver                string        `mapstructure:"driver"`
	Path                  string        `mapstructure:"path"`
	MaxConnections        int           `mapstructure:"max_connections"`
	MaxIdleConnections    int           `mapstructure:"max_idle_connections"`
	ConnectionMaxLifetime time.Duration `mapstructure:"connection_max_lifetime"`
	LogQueries            bool          `mapstructure:"log_queries"`
	MySQL                 MySQLConfig   `mapstructure:"mysql"`
}

// MySQLConfig contains connection settings used when Driver is "mysql"
type MySQLConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
}

// StorageConfig contains upload storage settings
type StorageConfig struct {
	UploadDir       string        `mapstructure:"upload_dir"`
	MaxUploadSize   int64         `mapstructure:"max_upload_size"`
	StaleUploadAge  time.Duration `mapstructure:"stale_upload_age"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// RateLimitConfig contains per-client rate limiting settings
type RateLimitConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	RPS     int           `mapstructure:"rps"`
	Burst   int           `mapstructure:"burst"`
	TTL     time.Duration `mapstructure:"ttl"`
}

// SecurityConfig contains security settings
type SecurityConfig struct {
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// MonitoringConfig contains monitoring settings
type MonitoringConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	MetricsPath string `mapstructure:"metrics_path"`
}
