package repository

import (
	"errors"

	"gorm.io/gorm"

	"villa-be-svc/internal/models"
)

// UserRepository defines the interface for login account data operations
type UserRepository interface {
	CreateUserWithRoles(user *models.User, roleIDs []uint) error
	GetRolesByNames(names []string) ([]*models.Role, error)
	GetUserByUsername(username string) (*models.User, error)
	ExistsByUsername(username string) (bool, error)
}

// userRepository implements UserRepository
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

// CreateUserWithRoles inserts the user and its role links in one transaction
func (r *userRepository) CreateUserWithRoles(user *models.User, roleIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Roles").Create(user).Error; err != nil {
			return err
		}

		if len(roleIDs) == 0 {
			return nil
		}

		links := make([]*models.UserRoleLink, 0, len(roleIDs))
		for i, roleID := range roleIDs {
			links = append(links, &models.UserRoleLink{
				UserID:  user.ID,
				RoleID:  roleID,
				UserOrd: float64(i + 1),
			})
		}
		return tx.Create(&links).Error
	})
}

// GetRolesByNames retrieves the roles whose names are in the given list
func (r *userRepository) GetRolesByNames(names []string) ([]*models.Role, error) {
	var roles []*models.Role

	if len(names) == 0 {
		return roles, nil
	}

	err := r.db.Where("name IN ?", names).Order("id").Find(&roles).Error
	if err != nil {
		return nil, err
	}

	return roles, nil
}

// GetUserByUsername retrieves a user with its roles.
// Returns gorm.ErrRecordNotFound when no row matches.
func (r *userRepository) GetUserByUsername(username string) (*models.User, error) {
	var user models.User

	err := r.db.Preload("Roles").Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// ExistsByUsername reports whether an account already uses the username
func (r *userRepository) ExistsByUsername(username string) (bool, error) {
	var user models.User

	err := r.db.Select("id").Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}
