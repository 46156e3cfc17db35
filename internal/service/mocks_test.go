package service

import (
	"time"

	"github.com/stretchr/testify/mock"

	"villa-be-svc/internal/models"
	"villa-be-svc/internal/models/response"
)

// MockResidentRepository is a mock implementation of repository.ResidentRepository
type MockResidentRepository struct {
	mock.Mock
}

func (m *MockResidentRepository) Save(resident *models.Resident) error {
	args := m.Called(resident)
	return args.Error(0)
}

func (m *MockResidentRepository) FindByID(id uint) (*models.Resident, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Resident), args.Error(1)
}

func (m *MockResidentRepository) FindAll() ([]*models.Resident, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Resident), args.Error(1)
}

func (m *MockResidentRepository) FindAllNameAndID() ([]*response.ResidentNameAndID, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*response.ResidentNameAndID), args.Error(1)
}

func (m *MockResidentRepository) FindByName(name string) ([]*response.ResidentNameAndID, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*response.ResidentNameAndID), args.Error(1)
}

func (m *MockResidentRepository) DeleteByID(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockAccountLinker is a mock implementation of AccountLinker
type MockAccountLinker struct {
	mock.Mock
}

func (m *MockAccountLinker) Create(resident *models.Resident, email, password string, roles []string) error {
	args := m.Called(resident, email, password, roles)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUserWithRoles(user *models.User, roleIDs []uint) error {
	args := m.Called(user, roleIDs)
	return args.Error(0)
}

func (m *MockUserRepository) GetRolesByNames(names []string) ([]*models.Role, error) {
	args := m.Called(names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Role), args.Error(1)
}

func (m *MockUserRepository) GetUserByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(username string) (bool, error) {
	args := m.Called(username)
	return args.Bool(0), args.Error(1)
}

// MockCredentialsLookup is a mock implementation of CredentialsLookup
type MockCredentialsLookup struct {
	mock.Mock
}

func (m *MockCredentialsLookup) GetUser(username string) (*models.UserCredentials, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserCredentials), args.Error(1)
}

// recordingCollector counts metric calls
type recordingCollector struct {
	created  int
	failures []string
}

func (c *recordingCollector) RecordResidentCreated() { c.created++ }

func (c *recordingCollector) RecordValidationFailure(field string) {
	c.failures = append(c.failures, field)
}

func (c *recordingCollector) RecordHTTPRequest(string, string, int, time.Duration) {}
