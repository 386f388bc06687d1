package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/killallgit/vidcode-api/internal/models"
	"github.com/killallgit/vidcode-api/pkg/config"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
}

// Open connects using the configured driver and applies pool settings
func Open(cfg config.DatabaseConfig) (*DB, error) {
	switch cfg.Driver {
	case config.DriverMySQL:
		db, err := gorm.Open(gormmysql.Open(mysqlDSN(cfg.MySQL)), gormConfig(cfg.LogQueries))
		if err != nil {
			return nil, fmt.Errorf("failed to connect to mysql: %w", err)
		}
		return configurePool(db, cfg)
	case config.DriverSQLite, "":
		conn, err := Initialize(cfg.Path, cfg.LogQueries)
		if err != nil {
			return nil, err
		}
		if isMemory(cfg.Path) {
			return conn, nil
		}
		return configurePool(conn.DB, cfg)
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.Driver)
	}
}

// Initialize creates a new SQLite connection. An empty path or ":memory:"
// opens a private in-memory database pinned to a single connection.
func Initialize(dbPath string, verbose bool) (*DB, error) {
	if !isMemory(dbPath) {
		dir := filepath.Dir(dbPath)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
	}

	dsn := dbPath
	if isMemory(dbPath) {
		dsn = ":memory:"
	}

	db, err := gorm.Open(sqlite.Open(dsn), gormConfig(verbose))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	if isMemory(dbPath) {
		// Every pooled connection would otherwise see its own empty database
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	return &DB{DB: db}, nil
}

func isMemory(path string) bool {
	return path == "" || path == ":memory:"
}

func gormConfig(verbose bool) *gorm.Config {
	logLevel := logger.Error
	if verbose {
		logLevel = logger.Info
	}
	return &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

func mysqlDSN(cfg config.MySQLConfig) string {
	mc := mysql.NewConfig()
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	mc.Net = "tcp"
	mc.Addr = cfg.Host + ":" + strconv.Itoa(cfg.Port)
	mc.DBName = cfg.Name
	mc.ParseTime = true
	mc.Params = map[string]string{"charset": "utf8mb4"}
	return mc.FormatDSN()
}

func configurePool(db *gorm.DB, cfg config.DatabaseConfig) (*DB, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying SQL database: %w", err)
	}
	if cfg.MaxIdleConnections > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConnections)
	}
	if cfg.MaxConnections > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	}
	if cfg.ConnectionMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnectionMaxLifetime)
	}
	return &DB{DB: db}, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying SQL database: %w", err)
	}
	return sqlDB.Close()
}

// HealthCheck verifies the database connection is working
func (db *DB) HealthCheck() error {
	if db == nil || db.DB == nil {
		return fmt.Errorf("database not initialized")
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

// AutoMigrate runs GORM auto migration for the provided models
func (db *DB) AutoMigrate(models ...any) error {
	if err := db.DB.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}
	log.Debug().Int("models", len(models)).Msg("database migrated")
	return nil
}

// MigrateAll migrates every application model
func (db *DB) MigrateAll() error {
	return db.AutoMigrate(models.All()...)
}

// TableStatus reports, per application table, whether it exists
func (db *DB) TableStatus() (map[string]bool, error) {
	status := make(map[string]bool)
	for _, m := range models.All() {
		stmt := &gorm.Statement{DB: db.DB}
		if err := stmt.Parse(m); err != nil {
			return nil, fmt.Errorf("parsing model: %w", err)
		}
		status[stmt.Schema.Table] = db.Migrator().HasTable(m)
	}
	return status, nil
}
