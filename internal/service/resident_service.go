package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"villa-be-svc/internal/locale"
	"villa-be-svc/internal/metrics"
	"villa-be-svc/internal/models"
	"villa-be-svc/internal/models/response"
	"villa-be-svc/internal/repository"
	"villa-be-svc/internal/validator"
	"villa-be-svc/pkg/logger"
	"villa-be-svc/pkg/utils"
)

// CreateResidentRequest is the payload of resident creation. It is also the
// shape returned by GetByID, where Password is always empty.
type CreateResidentRequest struct {
	Name        string           `json:"name" example:"Maria"`
	LastName    string           `json:"last_name" example:"Silva"`
	NationalID  string           `json:"national_id" example:"123.456.789-09"`
	Income      *decimal.Decimal `json:"income" swaggertype:"string" example:"3500.00"`
	DateOfBirth *models.Date     `json:"date_of_birth" swaggertype:"string" example:"1990-01-15"`
	Email       string           `json:"email" example:"maria.silva@example.com"`
	Password    string           `json:"password,omitempty" example:"s3cret!"`
	Roles       []string         `json:"roles" example:"RESIDENT"`
}

// AccountLinker creates the login account of a resident and binds it to the record
type AccountLinker interface {
	Create(resident *models.Resident, email, password string, roles []string) error
}

// ResidentService defines the interface for resident business logic
type ResidentService interface {
	Create(req *CreateResidentRequest) (*response.CreateResidentResponse, error)
	ListResidents() ([]*response.ResidentNameAndID, error)
	GetAll() ([]*response.ResidentResponse, error)
	GetByID(id uint) (*CreateResidentRequest, error)
	FilterByName(name string) ([]*response.ResidentNameAndID, error)
	DeleteByID(id uint) error
	FilterByMonth(month string) ([]*response.ResidentNameAndID, error)
	FilterByAge(minAge *int) ([]*response.ResidentNameAndID, error)
	ExportResidents() ([]byte, string, error)
}

// residentService implements ResidentService
type residentService struct {
	residentRepo repository.ResidentRepository
	accounts     AccountLinker
	months       *locale.MonthNames
	location     *time.Location
	metrics      metrics.MetricsCollector
	logger       *logger.Logger
	now          func() time.Time
}

// NewResidentService creates a new instance of ResidentService.
// months and location decide how birth months are named and what "today" is.
func NewResidentService(
	residentRepo repository.ResidentRepository,
	accounts AccountLinker,
	months *locale.MonthNames,
	location *time.Location,
	collector metrics.MetricsCollector,
	logger *logger.Logger,
) ResidentService {
	if location == nil {
		location = time.UTC
	}
	if collector == nil {
		collector = metrics.NopCollector{}
	}
	return &residentService{
		residentRepo: residentRepo,
		accounts:     accounts,
		months:       months,
		location:     location,
		metrics:      collector,
		logger:       logger,
		now:          time.Now,
	}
}

// today returns the current calendar date in the configured location
func (s *residentService) today() models.Date {
	return models.DateOf(s.now().In(s.location))
}

// Create validates the request, links a login account and persists the resident
func (s *residentService) Create(req *CreateResidentRequest) (*response.CreateResidentResponse, error) {
	if err := s.validateCreate(req); err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			s.metrics.RecordValidationFailure(ve.Field)
		}
		s.logger.WithError(err).Warn("Resident create request rejected")
		return nil, err
	}

	resident := &models.Resident{
		DocumentID:  uuid.New().String(),
		Name:        req.Name,
		LastName:    req.LastName,
		NationalID:  req.NationalID,
		Income:      *req.Income,
		DateOfBirth: models.DateOf(req.DateOfBirth.Time),
		Email:       req.Email,
	}

	roles := utils.DedupeAndTrim(req.Roles)
	if err := s.accounts.Create(resident, req.Email, req.Password, roles); err != nil {
		s.logger.WithError(err).WithField("email", req.Email).Error("Failed to link resident account")
		return nil, err
	}

	if err := s.residentRepo.Save(resident); err != nil {
		s.logger.WithError(err).WithField("document_id", resident.DocumentID).Error("Failed to save resident")
		return nil, fmt.Errorf("failed to save resident: %w", err)
	}

	s.metrics.RecordResidentCreated()
	s.logger.WithFields(map[string]interface{}{
		"resident_id": resident.ID,
		"document_id": resident.DocumentID,
		"roles":       roles,
	}).Info("Resident created successfully")

	return &response.CreateResidentResponse{
		ID:         resident.ID,
		DocumentID: resident.DocumentID,
		Name:       resident.Name,
		LastName:   resident.LastName,
		Email:      resident.Email,
	}, nil
}

// validateCreate checks the request fields in a fixed order and stops at the first failure
func (s *residentService) validateCreate(req *CreateResidentRequest) error {
	if req == nil {
		return invalidArgument("request", "request body is required")
	}
	if !validator.IsValidNationalID(req.NationalID) {
		return invalidArgument("national_id", "invalid national ID: expected format 000.000.000-00")
	}
	if !validator.IsValidName(req.Name) {
		return invalidArgument("name", "invalid name: must contain only letters, no digits or blank spaces")
	}
	if !validator.IsValidName(req.LastName) {
		return invalidArgument("last_name", "invalid last name: must contain only letters, no digits or blank spaces")
	}
	if req.Income == nil {
		return invalidArgument("income", "income is required")
	}
	if !req.Income.IsPositive() {
		return invalidArgument("income", "income must be greater than zero")
	}
	if req.DateOfBirth == nil || req.DateOfBirth.IsZero() {
		return invalidArgument("date_of_birth", "date of birth is required")
	}
	if models.DateOf(req.DateOfBirth.Time).After(s.today().Time) {
		return invalidArgument("date_of_birth", "date of birth cannot be after today")
	}
	return nil
}

// ListResidents returns the (name, id) projection of every resident
func (s *residentService) ListResidents() ([]*response.ResidentNameAndID, error) {
	residents, err := s.residentRepo.FindAllNameAndID()
	if err != nil {
		s.logger.WithError(err).Error("Failed to list residents")
		return nil, err
	}

	s.logger.WithField("count", len(residents)).Info("Residents listed successfully")
	return residents, nil
}

// GetAll returns every resident record
func (s *residentService) GetAll() ([]*response.ResidentResponse, error) {
	residents, err := s.residentRepo.FindAll()
	if err != nil {
		s.logger.WithError(err).Error("Failed to get residents")
		return nil, err
	}

	result := make([]*response.ResidentResponse, 0, len(residents))
	for _, r := range residents {
		result = append(result, &response.ResidentResponse{
			ID:          r.ID,
			DocumentID:  r.DocumentID,
			Name:        r.Name,
			LastName:    r.LastName,
			NationalID:  r.NationalID,
			Income:      r.Income.StringFixed(2),
			DateOfBirth: r.DateOfBirth.String(),
			Email:       r.Email,
			UserID:      r.UserID,
		})
	}

	s.logger.WithField("count", len(result)).Info("Residents retrieved successfully")
	return result, nil
}

// GetByID returns the resident in request shape, with roles from its account and no password
func (s *residentService) GetByID(id uint) (*CreateResidentRequest, error) {
	if id == 0 {
		s.logger.WithField("resident_id", id).Error("Invalid resident ID")
		return nil, invalidArgument("id", "resident ID is required")
	}

	resident, err := s.residentRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.WithField("resident_id", id).Warn("Resident not found")
		return nil, ErrResidentNotFound
	}
	if err != nil {
		s.logger.WithError(err).WithField("resident_id", id).Error("Failed to get resident")
		return nil, err
	}

	income := resident.Income
	dateOfBirth := resident.DateOfBirth
	roles := resident.RoleNames()
	if roles == nil {
		roles = []string{}
	}

	return &CreateResidentRequest{
		Name:        resident.Name,
		LastName:    resident.LastName,
		NationalID:  resident.NationalID,
		Income:      &income,
		DateOfBirth: &dateOfBirth,
		Email:       resident.Email,
		Roles:       roles,
	}, nil
}

// FilterByName returns residents whose name contains the given text, ignoring case
func (s *residentService) FilterByName(name string) ([]*response.ResidentNameAndID, error) {
	if name == "" {
		return nil, invalidArgument("name", "name filter is required")
	}

	residents, err := s.residentRepo.FindByName(name)
	if err != nil {
		s.logger.WithError(err).WithField("name", name).Error("Failed to filter residents by name")
		return nil, err
	}
	return residents, nil
}

// DeleteByID removes a resident. A missing resident is not an error.
func (s *residentService) DeleteByID(id uint) error {
	if id == 0 {
		s.logger.WithField("resident_id", id).Error("Invalid resident ID")
		return invalidArgument("id", "resident ID is required")
	}

	if err := s.residentRepo.DeleteByID(id); err != nil {
		s.logger.WithError(err).WithField("resident_id", id).Error("Failed to delete resident")
		return err
	}

	s.logger.WithField("resident_id", id).Info("Resident deleted successfully")
	return nil
}

// FilterByMonth returns residents born in the named month. The name is read in
// the configured locale and compared ignoring case; an unknown name matches nobody.
func (s *residentService) FilterByMonth(month string) ([]*response.ResidentNameAndID, error) {
	if month == "" {
		return nil, invalidArgument("month", "month is required")
	}

	residents, err := s.residentRepo.FindAll()
	if err != nil {
		s.logger.WithError(err).WithField("month", month).Error("Failed to filter residents by month")
		return nil, err
	}

	result := make([]*response.ResidentNameAndID, 0)
	for _, r := range residents {
		if r.DateOfBirth.IsZero() {
			continue
		}
		if s.months.Matches(r.DateOfBirth.Month(), month) {
			result = append(result, &response.ResidentNameAndID{Name: r.Name, ID: r.ID})
		}
	}

	s.logger.WithFields(map[string]interface{}{
		"month": month,
		"count": len(result),
	}).Info("Residents filtered by month")
	return result, nil
}

// FilterByAge returns residents whose age in whole years is at least minAge
func (s *residentService) FilterByAge(minAge *int) ([]*response.ResidentNameAndID, error) {
	if minAge == nil {
		return nil, invalidArgument("min_age", "minimum age is required")
	}

	residents, err := s.residentRepo.FindAll()
	if err != nil {
		s.logger.WithError(err).WithField("min_age", *minAge).Error("Failed to filter residents by age")
		return nil, err
	}

	today := s.today()
	result := make([]*response.ResidentNameAndID, 0)
	for _, r := range residents {
		if r.DateOfBirth.IsZero() {
			continue
		}
		if wholeYearsBetween(today, r.DateOfBirth) >= *minAge {
			result = append(result, &response.ResidentNameAndID{Name: r.Name, ID: r.ID})
		}
	}

	s.logger.WithFields(map[string]interface{}{
		"min_age": *minAge,
		"count":   len(result),
	}).Info("Residents filtered by age")
	return result, nil
}

// wholeYearsBetween returns the magnitude of the whole years in the calendar
// period from start to end. A month only counts once its day-of-month is reached.
func wholeYearsBetween(start, end models.Date) int {
	totalMonths := (end.Year()*12 + int(end.Month())) - (start.Year()*12 + int(start.Month()))
	days := end.Day() - start.Day()
	if totalMonths > 0 && days < 0 {
		totalMonths--
	} else if totalMonths < 0 && days > 0 {
		totalMonths++
	}

	years := totalMonths / 12
	if years < 0 {
		return -years
	}
	return years
}
