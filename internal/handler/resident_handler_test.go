package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"villa-be-svc/internal/auth"
	"villa-be-svc/internal/models"
	"villa-be-svc/internal/models/response"
	"villa-be-svc/internal/service"
	"villa-be-svc/pkg/logger"
	"villa-be-svc/pkg/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// MockResidentService is a mock implementation of service.ResidentService
type MockResidentService struct {
	mock.Mock
}

func (m *MockResidentService) Create(req *service.CreateResidentRequest) (*response.CreateResidentResponse, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.CreateResidentResponse), args.Error(1)
}

func (m *MockResidentService) ListResidents() ([]*response.ResidentNameAndID, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*response.ResidentNameAndID), args.Error(1)
}

func (m *MockResidentService) GetAll() ([]*response.ResidentResponse, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*response.ResidentResponse), args.Error(1)
}

func (m *MockResidentService) GetByID(id uint) (*service.CreateResidentRequest, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CreateResidentRequest), args.Error(1)
}

func (m *MockResidentService) FilterByName(name string) ([]*response.ResidentNameAndID, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*response.ResidentNameAndID), args.Error(1)
}

func (m *MockResidentService) DeleteByID(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockResidentService) FilterByMonth(month string) ([]*response.ResidentNameAndID, error) {
	args := m.Called(month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*response.ResidentNameAndID), args.Error(1)
}

func (m *MockResidentService) FilterByAge(minAge *int) ([]*response.ResidentNameAndID, error) {
	args := m.Called(minAge)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*response.ResidentNameAndID), args.Error(1)
}

func (m *MockResidentService) ExportResidents() ([]byte, string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

// MockAuthService is a mock implementation of service.AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Authenticated(ctx context.Context) *auth.Principal {
	return auth.PrincipalFromContext(ctx)
}

func (m *MockAuthService) LoadUserByUsername(username string) (*models.UserCredentials, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserCredentials), args.Error(1)
}

func (m *MockAuthService) Login(email, password string) (*response.LoginResponse, error) {
	args := m.Called(email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.LoginResponse), args.Error(1)
}

type testServer struct {
	router    *gin.Engine
	residents *MockResidentService
	auth      *MockAuthService
	tokens    *auth.TokenService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	s := &testServer{
		router:    gin.New(),
		residents: new(MockResidentService),
		auth:      new(MockAuthService),
		tokens:    auth.NewTokenService("test-secret", "villa-test", time.Hour),
	}
	SetupRoutes(s.router, s.residents, s.auth, s.tokens, nil, models.RoleAdmin, logger.NewNop())
	return s
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}, roles ...string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if roles != nil {
		token, err := s.tokens.Issue(auth.Principal{Username: "tester@villa.dev", Roles: roles})
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func envelope(t *testing.T, w *httptest.ResponseRecorder) utils.APIResponse {
	t.Helper()
	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestCreateResident(t *testing.T) {
	s := newTestServer(t)

	s.residents.On("Create", mock.MatchedBy(func(req *service.CreateResidentRequest) bool {
		return req.Name == "Maria" && req.Income.String() == "3500.5" && req.DateOfBirth.String() == "1990-01-15"
	})).Return(&response.CreateResidentResponse{ID: 1, Name: "Maria"}, nil)

	body := map[string]interface{}{
		"name":          "Maria",
		"last_name":     "Silva",
		"national_id":   "123.456.789-09",
		"income":        "3500.50",
		"date_of_birth": "1990-01-15",
		"email":         "maria@example.com",
		"password":      "s3cret!",
		"roles":         []string{"RESIDENT"},
	}
	w := s.do(t, http.MethodPost, "/api/v1/residents", body, "ADMIN")

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := envelope(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "Resident created successfully", resp.Message)
	s.residents.AssertExpectations(t)
}

func TestCreateResident_ValidationError(t *testing.T) {
	s := newTestServer(t)

	s.residents.On("Create", mock.Anything).
		Return(nil, &service.ValidationError{Field: "income", Message: "income must be greater than zero"})

	w := s.do(t, http.MethodPost, "/api/v1/residents", map[string]interface{}{"income": "0"}, "ADMIN")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "income must be greater than zero", envelope(t, w).Message)
}

func TestCreateResident_MalformedBody(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/v1/residents", map[string]interface{}{"date_of_birth": "15/01/1990"}, "ADMIN")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	s.residents.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateResident_RequiresAdmin(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/v1/residents", map[string]interface{}{}, "RESIDENT")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(t, http.MethodPost, "/api/v1/residents", map[string]interface{}{})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	s.residents.AssertNotCalled(t, "Create", mock.Anything)
}

func TestListResidents_EmptyIsArray(t *testing.T) {
	s := newTestServer(t)

	s.residents.On("ListResidents").Return(nil, nil)

	w := s.do(t, http.MethodGet, "/api/v1/residents", nil, "RESIDENT")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"Residents retrieved successfully","data":[]}`, w.Body.String())
}

func TestGetResident(t *testing.T) {
	s := newTestServer(t)

	s.residents.On("GetByID", uint(7)).Return(&service.CreateResidentRequest{Name: "Maria", Roles: []string{"RESIDENT"}}, nil)
	s.residents.On("GetByID", uint(8)).Return(nil, service.ErrResidentNotFound)
	s.residents.On("GetByID", uint(9)).Return(nil, errors.New("connection refused"))

	w := s.do(t, http.MethodGet, "/api/v1/residents/7", nil, "RESIDENT")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "password")

	w = s.do(t, http.MethodGet, "/api/v1/residents/8", nil, "RESIDENT")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodGet, "/api/v1/residents/9", nil, "RESIDENT")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = s.do(t, http.MethodGet, "/api/v1/residents/abc", nil, "RESIDENT")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFilterEndpoints(t *testing.T) {
	s := newTestServer(t)

	match := []*response.ResidentNameAndID{{Name: "Maria", ID: 1}}
	s.residents.On("FilterByName", "mar").Return(match, nil)
	s.residents.On("FilterByMonth", "janeiro").Return(match, nil)
	s.residents.On("FilterByAge", mock.MatchedBy(func(v *int) bool { return v != nil && *v == 30 })).Return(match, nil)
	s.residents.On("FilterByAge", (*int)(nil)).Return(nil, &service.ValidationError{Field: "min_age", Message: "minimum age is required"})

	for _, path := range []string{
		"/api/v1/residents/filter?name=mar",
		"/api/v1/residents/birthdays?month=janeiro",
		"/api/v1/residents/age?min_age=30",
	} {
		w := s.do(t, http.MethodGet, path, nil, "RESIDENT")
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), `"name":"Maria"`, path)
	}

	w := s.do(t, http.MethodGet, "/api/v1/residents/age", nil, "RESIDENT")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/api/v1/residents/age?min_age=thirty", nil, "RESIDENT")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteResident(t *testing.T) {
	s := newTestServer(t)

	s.residents.On("DeleteByID", uint(5)).Return(nil)

	w := s.do(t, http.MethodDelete, "/api/v1/residents/5", nil, "ADMIN")
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodDelete, "/api/v1/residents/5", nil, "RESIDENT")
	assert.Equal(t, http.StatusForbidden, w.Code)

	s.residents.AssertNumberOfCalls(t, "DeleteByID", 1)
}

func TestExportResidents(t *testing.T) {
	s := newTestServer(t)

	s.residents.On("ExportResidents").Return([]byte("xlsx-bytes"), "residents_export_20261017_120000.xlsx", nil)

	w := s.do(t, http.MethodGet, "/api/v1/residents/export", nil, "ADMIN")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=residents_export_20261017_120000.xlsx", w.Header().Get("Content-Disposition"))
	assert.Equal(t, "xlsx-bytes", w.Body.String())
}

func TestLoginAndMe(t *testing.T) {
	s := newTestServer(t)

	s.auth.On("Login", "admin@villa.dev", "changeme").
		Return(&response.LoginResponse{AccessToken: "token", TokenType: "Bearer", Username: "admin@villa.dev"}, nil)
	s.auth.On("Login", "admin@villa.dev", "wrong").Return(nil, service.ErrInvalidCredentials)

	w := s.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{"email": "admin@villa.dev", "password": "changeme"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"access_token":"token"`)

	w = s.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{"email": "admin@villa.dev", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{"email": "admin@villa.dev"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/api/v1/auth/me", nil, "ADMIN")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"Principal retrieved successfully","data":{"username":"tester@villa.dev","roles":["ADMIN"]}}`, w.Body.String())
}

func TestHealthCheck(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
