package database

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/killallgit/vidcode-api/internal/models"
	"github.com/killallgit/vidcode-api/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name   string
		dbPath string
	}{
		{name: "in-memory database", dbPath: ":memory:"},
		{name: "empty path is in-memory", dbPath: ""},
		{name: "file database in nested directory", dbPath: filepath.Join(t.TempDir(), "nested", "test.db")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, err := Initialize(tt.dbPath, false)
			require.NoError(t, err)
			require.NotNil(t, conn)
			defer conn.Close()

			assert.NoError(t, conn.HealthCheck())
		})
	}
}

func TestOpen(t *testing.T) {
	t.Run("sqlite driver", func(t *testing.T) {
		conn, err := Open(config.DatabaseConfig{
			Driver:         config.DriverSQLite,
			Path:           filepath.Join(t.TempDir(), "app.db"),
			MaxConnections: 4,
		})
		require.NoError(t, err)
		defer conn.Close()

		sqlDB, err := conn.DB.DB()
		require.NoError(t, err)
		assert.Equal(t, 4, sqlDB.Stats().MaxOpenConnections)
	})

	t.Run("unsupported driver", func(t *testing.T) {
		_, err := Open(config.DatabaseConfig{Driver: "oracle"})
		assert.Error(t, err)
	})
}

func TestMySQLDSN(t *testing.T) {
	dsn := mysqlDSN(config.MySQLConfig{
		Host:     "db.internal",
		Port:     3307,
		User:     "coder",
		Password: "secret",
		Name:     "vidcode",
	})

	assert.True(t, strings.HasPrefix(dsn, "coder:secret@tcp(db.internal:3307)/vidcode?"), dsn)
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "charset=utf8mb4")
}

func TestDB_Close(t *testing.T) {
	conn, err := Initialize(":memory:", false)
	require.NoError(t, err)

	require.NoError(t, conn.Close())
	assert.Error(t, conn.HealthCheck(), "HealthCheck should fail after database is closed")
}

func TestDB_HealthCheckNil(t *testing.T) {
	var conn *DB
	assert.Error(t, conn.HealthCheck())
}

func TestDB_MigrateAll(t *testing.T) {
	conn, err := Initialize(":memory:", false)
	require.NoError(t, err)
	defer conn.Close()

	before, err := conn.TableStatus()
	require.NoError(t, err)
	for table, exists := range before {
		assert.False(t, exists, "table %s should not exist yet", table)
	}

	require.NoError(t, conn.MigrateAll())

	after, err := conn.TableStatus()
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{
		"projects":      true,
		"project_files": true,
		"coders":        true,
		"results":       true,
	}, after)
}

func TestDB_ResultKeyIsUnique(t *testing.T) {
	conn, err := Initialize(":memory:", false)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.MigrateAll())

	project := models.Project{Slug: "demo", Name: "Demo"}
	require.NoError(t, conn.Create(&project).Error)
	coder := models.Coder{ProjectID: project.ID, Name: "ann"}
	require.NoError(t, conn.Create(&coder).Error)

	first := models.Result{ProjectID: project.ID, CoderID: coder.ID, VideoID: "v1", Status: models.StatusDraft}
	require.NoError(t, conn.Omit("Coder").Create(&first).Error)

	second := models.Result{ProjectID: project.ID, CoderID: coder.ID, VideoID: "v1", Status: models.StatusSubmitted}
	assert.Error(t, conn.Omit("Coder").Create(&second).Error)

	err = conn.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&models.Result{}).Where("id = ?", first.ID).Update("notes", "x").Error
	})
	assert.NoError(t, err)
}
