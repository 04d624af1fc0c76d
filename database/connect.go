package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rpupo63/editorial-backend/errs"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"
)

const (
	TypePostgres = "postgres"
	TypeSQLite   = "sqlite"
)

// ConnConfig describes how to reach the primary database and an optional read replica.
type ConnConfig struct {
	Type       string
	DSN        string // postgres DSN or sqlite file path
	ReplicaDSN string
	LogLevel   logger.LogLevel
}

// Open connects with gorm, checks the connection and registers the replica when configured.
func Open(cfg ConnConfig) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg.Type, cfg.DSN)
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if level == 0 {
		level = logger.Warn
	}
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             2 * time.Second,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		PrepareStmt:    false,
		Logger:         newLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, errs.NewDatabaseError("connect to", "database", err)
	}

	// Test database connection
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		return nil, errs.NewDatabaseError("connect to", "database", err)
	}

	if cfg.ReplicaDSN != "" {
		replica, err := dialectorFor(cfg.Type, cfg.ReplicaDSN)
		if err != nil {
			return nil, err
		}
		if err := db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: []gorm.Dialector{replica},
			Policy:   dbresolver.RandomPolicy{},
		})); err != nil {
			return nil, fmt.Errorf("registering read replica: %w", err)
		}
	}

	return db, nil
}

func dialectorFor(dbType, dsn string) (gorm.Dialector, error) {
	if dsn == "" {
		return nil, errs.NewMissingRequiredFieldError("dsn")
	}

	switch dbType {
	case TypePostgres:
		return postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), nil
	case TypeSQLite:
		return sqlite.Open(SQLiteDSN(dsn)), nil
	default:
		return nil, errs.NewInvalidFieldError("DB_TYPE", fmt.Sprintf("unsupported database type %q", dbType))
	}
}

// SQLiteDSN turns a file path into a DSN with foreign key enforcement switched on.
func SQLiteDSN(path string) string {
	return path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}
