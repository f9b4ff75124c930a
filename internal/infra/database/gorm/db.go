package gorm

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"todo-tracker/internal/domain/entity"
	"todo-tracker/pkg/resource"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config describes how to reach the relational store.
type Config struct {
	Driver       string
	Host         string
	Port         string
	Username     string
	Password     string
	Database     string
	Schema       string
	Path         string
	MaxOpenConns int
}

// ConfigFromProperties reads the app.db.* properties.
func ConfigFromProperties() Config {
	return Config{
		Driver:       resource.GetString("app.db.driver"),
		Host:         resource.GetString("app.db.host"),
		Port:         resource.GetString("app.db.port"),
		Username:     resource.GetString("app.db.username"),
		Password:     resource.GetString("app.db.password"),
		Database:     resource.GetString("app.db.database"),
		Schema:       resource.GetString("app.db.schema"),
		Path:         resource.GetString("app.db.path"),
		MaxOpenConns: resource.GetInt("app.db.max-open-conns"),
	}
}

// Open connects to the configured database and sizes its connection pool.
func Open(config Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	maxOpenConns := config.MaxOpenConns

	switch config.Driver {
	case DriverPostgres, "":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable search_path=%s",
			config.Host, config.Username, config.Password, config.Database, config.Port, config.Schema)
		dialector = postgres.Open(dsn)
	case DriverSQLite:
		if err := registerSQLiteFunctions(); err != nil {
			return nil, fmt.Errorf("failed to register sqlite functions: %w", err)
		}
		dialector = sqlite.Open(config.Path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
		// SQLite serialises writers; an in-memory database also lives on a single connection.
		maxOpenConns = 1
	default:
		return nil, fmt.Errorf("unsupported database driver %q", config.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         newLogger(zapWriter{}),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if maxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(maxOpenConns)
		sqlDB.SetMaxIdleConns(maxOpenConns)
	}
	if config.Driver != DriverSQLite {
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
	}

	return db, nil
}

// Migrate creates or updates the tables of every persisted entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Project{},
		&entity.Todo{},
		&entity.Session{},
	)
}
