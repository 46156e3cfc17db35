package scheduler

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"villa-be-svc/internal/locale"
	"villa-be-svc/internal/models"
	"villa-be-svc/internal/models/response"
	"villa-be-svc/internal/repository"
	"villa-be-svc/pkg/logger"
)

// BirthdayJobCode identifies the monthly birthday report in log_schedullers
const BirthdayJobCode = "MONTHLY_BIRTHDAY_REPORT"

// BirthdayFinder finds residents by birth month name
type BirthdayFinder interface {
	FilterByMonth(month string) ([]*response.ResidentNameAndID, error)
}

// BirthdayScheduler runs the monthly birthday report
type BirthdayScheduler struct {
	residents        BirthdayFinder
	logSchedulerRepo repository.LogSchedulerRepository
	months           *locale.MonthNames
	location         *time.Location
	logger           *logger.Logger
	cron             *cron.Cron
	cronExpression   string
	now              func() time.Time
}

// NewBirthdayScheduler creates a new birthday scheduler
func NewBirthdayScheduler(
	residents BirthdayFinder,
	logSchedulerRepo repository.LogSchedulerRepository,
	months *locale.MonthNames,
	location *time.Location,
	logger *logger.Logger,
	cronExpression string,
) *BirthdayScheduler {
	if location == nil {
		location = time.UTC
	}

	// Create cron with seconds precision
	c := cron.New(cron.WithSeconds(), cron.WithLocation(location))

	return &BirthdayScheduler{
		residents:        residents,
		logSchedulerRepo: logSchedulerRepo,
		months:           months,
		location:         location,
		logger:           logger,
		cron:             c,
		cronExpression:   cronExpression,
		now:              time.Now,
	}
}

// Start schedules the report and starts the cron runner
func (s *BirthdayScheduler) Start() error {
	s.logger.Info("Starting birthday scheduler...")

	// Cron format: "seconds minutes hours day-of-month month day-of-week"
	s.logger.WithField("cron_expression", s.cronExpression).Info("Scheduling birthday report job")
	if _, err := s.cron.AddFunc(s.cronExpression, s.runMonthlyBirthdayReport); err != nil {
		return fmt.Errorf("failed to schedule birthday report job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("Birthday scheduler started successfully")

	return nil
}

// Stop waits for a running job to finish and stops the scheduler
func (s *BirthdayScheduler) Stop() {
	s.logger.Info("Stopping birthday scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Birthday scheduler stopped successfully")
}

// runMonthlyBirthdayReport lists the residents born in the current month
func (s *BirthdayScheduler) runMonthlyBirthdayReport() {
	now := s.now().In(s.location)
	runID := uuid.New().String()

	s.logScheduler(runID, "Starting scheduled birthday report", models.SchedulerStatusStart, now)

	month := s.months.Name(now.Month())
	s.logScheduler(runID, fmt.Sprintf("Finding residents born in %s", month), models.SchedulerStatusRunning, now)

	residents, err := s.residents.FilterByMonth(month)
	if err != nil {
		s.logScheduler(runID, fmt.Sprintf("Failed to find birthdays: %v", err), models.SchedulerStatusFailed, now)
		s.logger.WithError(err).WithField("month", month).Error("Failed to run birthday report")
		return
	}

	residentsJSON, _ := json.Marshal(residents)
	s.logScheduler(runID, fmt.Sprintf("%d residents born in %s: %s", len(residents), month, string(residentsJSON)), models.SchedulerStatusSuccess, now)

	s.logger.WithFields(map[string]interface{}{
		"month": month,
		"count": len(residents),
	}).Info("Birthday report completed")
}

// logScheduler records one status change of a run
func (s *BirthdayScheduler) logScheduler(runID, message, status string, at time.Time) {
	entry := &models.SchedulerLog{
		DocumentID:       runID,
		SchedullerCode:   BirthdayJobCode,
		Message:          message,
		StatusScheduller: status,
		CreatedAt:        at,
		UpdatedAt:        at,
	}

	if err := s.logSchedulerRepo.CreateLogScheduler(entry); err != nil {
		s.logger.WithError(err).WithField("status", status).Error("Failed to create scheduler log entry")
		return
	}
	s.logger.WithField("status", status).WithField("document_id", runID).Debug("Scheduler log entry created")
}
