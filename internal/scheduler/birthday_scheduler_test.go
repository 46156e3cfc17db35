package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"villa-be-svc/internal/locale"
	"villa-be-svc/internal/models"
	"villa-be-svc/internal/models/response"
	"villa-be-svc/pkg/logger"
)

type MockBirthdayFinder struct {
	mock.Mock
}

func (m *MockBirthdayFinder) FilterByMonth(month string) ([]*response.ResidentNameAndID, error) {
	args := m.Called(month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*response.ResidentNameAndID), args.Error(1)
}

// recordingLogRepository keeps every scheduler log entry
type recordingLogRepository struct {
	entries []*models.SchedulerLog
	err     error
}

func (r *recordingLogRepository) CreateLogScheduler(log *models.SchedulerLog) error {
	r.entries = append(r.entries, log)
	return r.err
}

func (r *recordingLogRepository) statuses() []string {
	var statuses []string
	for _, e := range r.entries {
		statuses = append(statuses, e.StatusScheduller)
	}
	return statuses
}

func newTestScheduler(t *testing.T, finder *MockBirthdayFinder, logs *recordingLogRepository) *BirthdayScheduler {
	t.Helper()
	months, err := locale.NewMonthNames("pt-BR")
	require.NoError(t, err)

	s := NewBirthdayScheduler(finder, logs, months, time.UTC, logger.NewNop(), "0 0 6 1 * *")
	s.now = func() time.Time { return time.Date(2026, time.March, 1, 6, 0, 0, 0, time.UTC) }
	return s
}

func TestBirthdayScheduler_Success(t *testing.T) {
	finder := new(MockBirthdayFinder)
	logs := &recordingLogRepository{}
	s := newTestScheduler(t, finder, logs)

	finder.On("FilterByMonth", "março").Return([]*response.ResidentNameAndID{{Name: "Joao", ID: 2}}, nil)

	s.runMonthlyBirthdayReport()

	assert.Equal(t, []string{models.SchedulerStatusStart, models.SchedulerStatusRunning, models.SchedulerStatusSuccess}, logs.statuses())
	runID := logs.entries[0].DocumentID
	assert.Len(t, runID, 36)
	for _, e := range logs.entries {
		assert.Equal(t, runID, e.DocumentID)
		assert.Equal(t, BirthdayJobCode, e.SchedullerCode)
	}
	assert.Contains(t, logs.entries[2].Message, `1 residents born in março`)
	assert.Contains(t, logs.entries[2].Message, `"name":"Joao"`)
	finder.AssertExpectations(t)
}

func TestBirthdayScheduler_Failure(t *testing.T) {
	finder := new(MockBirthdayFinder)
	logs := &recordingLogRepository{}
	s := newTestScheduler(t, finder, logs)

	finder.On("FilterByMonth", "março").Return(nil, errors.New("database is down"))

	s.runMonthlyBirthdayReport()

	assert.Equal(t, []string{models.SchedulerStatusStart, models.SchedulerStatusRunning, models.SchedulerStatusFailed}, logs.statuses())
	assert.Contains(t, logs.entries[2].Message, "database is down")
}

func TestBirthdayScheduler_LogFailureDoesNotStopRun(t *testing.T) {
	finder := new(MockBirthdayFinder)
	logs := &recordingLogRepository{err: errors.New("insert failed")}
	s := newTestScheduler(t, finder, logs)

	finder.On("FilterByMonth", "março").Return([]*response.ResidentNameAndID{}, nil)

	s.runMonthlyBirthdayReport()

	assert.Len(t, logs.entries, 3)
	finder.AssertExpectations(t)
}

func TestBirthdayScheduler_StartRejectsBadExpression(t *testing.T) {
	months, err := locale.NewMonthNames("pt-BR")
	require.NoError(t, err)

	s := NewBirthdayScheduler(new(MockBirthdayFinder), &recordingLogRepository{}, months, nil, logger.NewNop(), "not a cron")
	assert.Error(t, s.Start())
}

func TestBirthdayScheduler_StartAndStop(t *testing.T) {
	months, err := locale.NewMonthNames("pt-BR")
	require.NoError(t, err)

	s := NewBirthdayScheduler(new(MockBirthdayFinder), &recordingLogRepository{}, months, time.UTC, logger.NewNop(), "0 0 6 1 * *")
	require.NoError(t, s.Start())
	assert.Len(t, s.cron.Entries(), 1)
	s.Stop()
}
