package database

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"villa-be-svc/internal/config"
	"villa-be-svc/internal/models"
	"villa-be-svc/pkg/logger"
)

// Database wraps the gorm connection
type Database struct {
	DB *gorm.DB
}

// NewDatabase opens a PostgreSQL connection and configures the pool
func NewDatabase(cfg *config.DatabaseConfig, log *logger.Logger) (*Database, error) {
	gormLog := gormlogger.New(log, gormlogger.Config{
		SlowThreshold:             500 * time.Millisecond,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
	})

	db, err := gorm.Open(postgres.Open(cfg.GetDSN()), &gorm.Config{
		Logger: gormLog,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Database{DB: db}, nil
}

// AutoMigrate creates or updates the tables used by the service and seeds the default roles
func (d *Database) AutoMigrate() error {
	// The role link table goes before users so the many2many relation reuses it
	if err := d.DB.AutoMigrate(
		&models.Role{},
		&models.UserRoleLink{},
		&models.User{},
		&models.Resident{},
		&models.SchedulerLog{},
	); err != nil {
		return err
	}
	return d.SeedRoles(models.RoleAdmin, models.RoleResident)
}

// SeedRoles inserts the named roles that do not exist yet
func (d *Database) SeedRoles(names ...string) error {
	now := time.Now()
	for _, name := range names {
		var role models.Role
		err := d.DB.Where("name = ?", name).First(&role).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to look up role %s: %w", name, err)
		}

		role = models.Role{
			DocumentID:  uuid.NewString(),
			Name:        name,
			Description: fmt.Sprintf("Default %s role", name),
			Type:        name,
			PublishedAt: &now,
		}
		if err := d.DB.Create(&role).Error; err != nil {
			return fmt.Errorf("failed to seed role %s: %w", name, err)
		}
	}
	return nil
}

// Close closes the underlying connection pool
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
