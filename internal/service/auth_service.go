package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"villa-be-svc/internal/auth"
	"villa-be-svc/internal/models"
	"villa-be-svc/internal/models/response"
	"villa-be-svc/pkg/logger"
)

// CredentialsLookup loads stored credentials by username
type CredentialsLookup interface {
	GetUser(username string) (*models.UserCredentials, error)
}

// AuthService resolves principals and authenticates logins
type AuthService interface {
	Authenticated(ctx context.Context) *auth.Principal
	LoadUserByUsername(username string) (*models.UserCredentials, error)
	Login(email, password string) (*response.LoginResponse, error)
}

type authService struct {
	users  CredentialsLookup
	tokens *auth.TokenService
	logger *logger.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(users CredentialsLookup, tokens *auth.TokenService, logger *logger.Logger) AuthService {
	return &authService{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

// Authenticated returns the principal of the current request, or nil when there is none
func (s *authService) Authenticated(ctx context.Context) *auth.Principal {
	return auth.PrincipalFromContext(ctx)
}

// LoadUserByUsername loads credentials and roles. Any failure is reported as
// ErrUsernameNotFound carrying the underlying message.
func (s *authService) LoadUserByUsername(username string) (*models.UserCredentials, error) {
	creds, err := s.users.GetUser(username)
	if err != nil {
		return nil, &notFoundError{kind: ErrUsernameNotFound, cause: err}
	}
	return creds, nil
}

// Login verifies the password and issues an access token
func (s *authService) Login(email, password string) (*response.LoginResponse, error) {
	creds, err := s.LoadUserByUsername(email)
	if err != nil {
		s.logger.WithError(err).WithField("username", email).Warn("Login failed")
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(password)); err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			s.logger.WithError(err).WithField("username", email).Error("Failed to verify password")
		} else {
			s.logger.WithField("username", email).Warn("Login failed: wrong password")
		}
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(auth.Principal{Username: creds.Username, Roles: creds.Roles})
	if err != nil {
		s.logger.WithError(err).WithField("username", email).Error("Failed to issue token")
		return nil, err
	}

	s.logger.WithField("username", creds.Username).Info("User logged in successfully")

	return &response.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.tokens.ExpiresIn().Seconds()),
		Username:    creds.Username,
		Roles:       creds.Roles,
	}, nil
}
