package repository

import (
	"villa-be-svc/internal/models"

	"gorm.io/gorm"
)

// LogSchedulerRepository defines the interface for scheduler log data operations
type LogSchedulerRepository interface {
	CreateLogScheduler(log *models.SchedulerLog) error
}

// logSchedulerRepository implements LogSchedulerRepository
type logSchedulerRepository struct {
	db *gorm.DB
}

// NewLogSchedulerRepository creates a new instance of LogSchedulerRepository
func NewLogSchedulerRepository(db *gorm.DB) LogSchedulerRepository {
	return &logSchedulerRepository{
		db: db,
	}
}

// CreateLogScheduler creates a new scheduler log record
func (r *logSchedulerRepository) CreateLogScheduler(log *models.SchedulerLog) error {
	return r.db.Create(log).Error
}
