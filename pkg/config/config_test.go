package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
		wantErr bool
		check   func(t *testing.T)
	}{
		{
			name: "load from settings file",
			content: `
server:
  host: "127.0.0.1"
  port: 9000
storage:
  upload_dir: "./uploads-test"
`,
			check: func(t *testing.T) {
				assert.Equal(t, 9000, GetInt("server.port"))
				assert.Equal(t, "./uploads-test", GetString("storage.upload_dir"))
			},
		},
		{
			name: "environment variable override",
			content: `
server:
  port: 8080
`,
			env: map[string]string{"VIDCODE_SERVER_PORT": "9090"},
			check: func(t *testing.T) {
				assert.Equal(t, 9090, GetInt("server.port"))
			},
		},
		{
			name: "missing settings file uses defaults",
			check: func(t *testing.T) {
				assert.Equal(t, 8080, GetInt("server.port"))
				assert.Equal(t, DriverSQLite, GetString("database.driver"))
				assert.True(t, GetBool("monitoring.enabled"))
				assert.Equal(t, time.Hour, GetDuration("storage.stale_upload_age"))
			},
		},
		{
			name: "invalid port",
			content: `
server:
  port: 70000
`,
			wantErr: true,
		},
		{
			name: "unsupported driver",
			content: `
database:
  driver: "oracle"
`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			defer viper.Reset()

			path := filepath.Join(t.TempDir(), "settings.yaml")
			if tt.content != "" {
				require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			err := Load(path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			if tt.check != nil {
				tt.check(t)
			}
		})
	}
}

func TestGetConfig(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	require.NoError(t, Load(filepath.Join(t.TempDir(), "missing.yaml")))

	cfg, err := GetConfig()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "./data/uploads", cfg.Storage.UploadDir)
	assert.Equal(t, 3306, cfg.Database.MySQL.Port)
	assert.Equal(t, "/metrics", cfg.Monitoring.MetricsPath)
	assert.Equal(t, 15*time.Minute, cfg.Storage.CleanupInterval)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name: "valid sqlite config",
			config: &Config{
				Server:   ServerConfig{Host: "localhost", Port: 8080},
				Database: DatabaseConfig{Driver: DriverSQLite, Path: "./data/database.db"},
			},
		},
		{
			name:    "invalid port",
			config:  &Config{Server: ServerConfig{Port: 0}},
			wantErr: true,
		},
		{
			name: "mysql without database name",
			config: &Config{
				Server:   ServerConfig{Port: 8080},
				Database: DatabaseConfig{Driver: DriverMySQL},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 10, tt.config.RateLimiting.RPS)
		})
	}
}

func TestValidSlug(t *testing.T) {
	assert.True(t, ValidSlug("tiktok-2024"))
	assert.True(t, ValidSlug("a"))
	assert.False(t, ValidSlug(""))
	assert.False(t, ValidSlug("-leading"))
	assert.False(t, ValidSlug("Upper"))
	assert.False(t, ValidSlug("has space"))
}
