package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"villa-be-svc/internal/models"
	"villa-be-svc/internal/repository"
	"villa-be-svc/pkg/logger"
	"villa-be-svc/pkg/utils"
)

const localProvider = "local"

// UserService manages login accounts. It is the AccountLinker used on resident creation.
type UserService interface {
	Create(resident *models.Resident, email, password string, roles []string) error
	GetUser(username string) (*models.UserCredentials, error)
	EnsureAdmin(email, password string) error
}

// userService implements UserService interface
type userService struct {
	userRepo   repository.UserRepository
	logger     *logger.Logger
	bcryptCost int
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepo:   userRepo,
		logger:     logger,
		bcryptCost: bcrypt.DefaultCost,
	}
}

// Create opens an account named after the email, grants it the roles and
// binds it to the resident
func (s *userService) Create(resident *models.Resident, email, password string, roles []string) error {
	if resident == nil {
		return invalidArgument("resident", "resident is required")
	}

	user, err := s.createAccount(email, password, roles)
	if err != nil {
		return err
	}

	resident.UserID = &user.ID
	resident.User = user

	s.logger.WithFields(map[string]interface{}{
		"user_id":  user.ID,
		"username": user.Username,
		"roles":    user.RoleNames(),
	}).Info("Resident account created successfully")

	return nil
}

// GetUser loads the credentials of an account. Blocked accounts are reported as errors.
func (s *userService) GetUser(username string) (*models.UserCredentials, error) {
	user, err := s.userRepo.GetUserByUsername(username)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.WithError(err).WithField("username", username).Error("Failed to get user")
		}
		return nil, err
	}

	if user.IsBlocked() {
		s.logger.WithField("username", username).Warn("Blocked user lookup")
		return nil, fmt.Errorf("account %s is blocked", username)
	}

	return &models.UserCredentials{
		Username:     user.Username,
		PasswordHash: user.Password,
		Roles:        user.RoleNames(),
	}, nil
}

// EnsureAdmin creates an ADMIN account with the given credentials unless the username is taken
func (s *userService) EnsureAdmin(email, password string) error {
	exists, err := s.userRepo.ExistsByUsername(email)
	if err != nil {
		return fmt.Errorf("failed to check admin account: %w", err)
	}
	if exists {
		s.logger.WithField("username", email).Debug("Bootstrap admin already exists")
		return nil
	}

	user, err := s.createAccount(email, password, []string{models.RoleAdmin})
	if err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id":  user.ID,
		"username": user.Username,
	}).Info("Bootstrap admin created")
	return nil
}

func (s *userService) createAccount(email, password string, roles []string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, invalidArgument("email", "email is required")
	}
	if password == "" {
		return nil, invalidArgument("password", "password is required")
	}

	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, strings.ToUpper(role))
	}
	names = utils.DedupeAndTrim(names)
	if len(names) == 0 {
		return nil, invalidArgument("roles", "at least one role is required")
	}

	exists, err := s.userRepo.ExistsByUsername(email)
	if err != nil {
		s.logger.WithError(err).WithField("username", email).Error("Failed to check username")
		return nil, err
	}
	if exists {
		return nil, invalidArgument("email", "an account with this email already exists")
	}

	found, err := s.userRepo.GetRolesByNames(names)
	if err != nil {
		s.logger.WithError(err).WithField("roles", names).Error("Failed to get roles")
		return nil, err
	}
	if missing := missingRoles(names, found); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRole, strings.Join(missing, ", "))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, invalidArgument("password", "password is too long")
		}
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	confirmed := true
	blocked := false
	user := &models.User{
		DocumentID: uuid.New().String(),
		Username:   email,
		Email:      email,
		Provider:   localProvider,
		Password:   string(hash),
		Confirmed:  &confirmed,
		Blocked:    &blocked,
	}

	roleIDs := make([]uint, 0, len(found))
	for _, role := range found {
		roleIDs = append(roleIDs, role.ID)
		user.Roles = append(user.Roles, *role)
	}

	if err := s.userRepo.CreateUserWithRoles(user, roleIDs); err != nil {
		s.logger.WithError(err).WithField("username", email).Error("Failed to create user")
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// missingRoles returns the requested names that have no matching role
func missingRoles(requested []string, found []*models.Role) []string {
	known := make(map[string]struct{}, len(found))
	for _, role := range found {
		known[role.Name] = struct{}{}
	}

	var missing []string
	for _, name := range requested {
		if _, ok := known[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}
