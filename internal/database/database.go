package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"truebalance-be-svc/internal/config"
	"truebalance-be-svc/internal/models"
	"truebalance-be-svc/pkg/logger"
)

// Database wraps the gorm connection
type Database struct {
	DB *gorm.DB
}

// NewDatabase opens a PostgreSQL connection pool
func NewDatabase(cfg *config.DatabaseConfig, log *logger.Logger) (*Database, error) {
	return Open(postgres.Open(cfg.GetDSN()), cfg, log)
}

// Open opens a connection through the given dialector and applies pool settings
func Open(dialector gorm.Dialector, cfg *config.DatabaseConfig, log *logger.Logger) (*Database, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: NewGormLogger(log),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpen := cfg.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 25
	}
	maxIdle := cfg.MaxIdleConns
	if maxIdle <= 0 {
		maxIdle = 5
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(60 * time.Minute)

	return &Database{DB: db}, nil
}

// AutoMigrate creates or updates the bill tables
func (d *Database) AutoMigrate() error {
	return d.DB.AutoMigrate(
		&models.Bill{},
		&models.Installment{},
	)
}

// Close closes the database connection
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// NewGormLogger returns a gorm logger writing through logrus at a level matching the service logger
func NewGormLogger(log *logger.Logger) gormlogger.Interface {
	level := gormlogger.Warn
	switch log.GetLevel().String() {
	case "debug", "trace":
		level = gormlogger.Info
	case "error", "fatal", "panic":
		level = gormlogger.Error
	}

	return gormlogger.New(
		log.WithField("component", "gorm"),
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		},
	)
}
