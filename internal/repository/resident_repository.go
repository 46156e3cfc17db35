package repository

import (
	"strings"

	"gorm.io/gorm"

	"villa-be-svc/internal/models"
	"villa-be-svc/internal/models/response"
)

// ResidentRepository defines the interface for resident data operations
type ResidentRepository interface {
	Save(resident *models.Resident) error
	FindByID(id uint) (*models.Resident, error)
	FindAll() ([]*models.Resident, error)
	FindAllNameAndID() ([]*response.ResidentNameAndID, error)
	FindByName(name string) ([]*response.ResidentNameAndID, error)
	DeleteByID(id uint) error
}

// residentRepository implements ResidentRepository
type residentRepository struct {
	db *gorm.DB
}

// NewResidentRepository creates a new instance of ResidentRepository
func NewResidentRepository(db *gorm.DB) ResidentRepository {
	return &residentRepository{
		db: db,
	}
}

// Save inserts a new resident and fills in its generated ID
func (r *residentRepository) Save(resident *models.Resident) error {
	return r.db.Omit("User").Create(resident).Error
}

// FindByID retrieves a resident with its linked account and roles.
// Returns gorm.ErrRecordNotFound when no row matches.
func (r *residentRepository) FindByID(id uint) (*models.Resident, error) {
	var resident models.Resident

	err := r.db.Preload("User.Roles").First(&resident, id).Error
	if err != nil {
		return nil, err
	}

	return &resident, nil
}

// FindAll retrieves every resident ordered by ID
func (r *residentRepository) FindAll() ([]*models.Resident, error) {
	var residents []*models.Resident

	err := r.db.Order("id").Find(&residents).Error
	if err != nil {
		return nil, err
	}

	return residents, nil
}

// FindAllNameAndID retrieves the (name, id) projection of every resident
func (r *residentRepository) FindAllNameAndID() ([]*response.ResidentNameAndID, error) {
	var residents []*response.ResidentNameAndID

	err := r.db.Model(&models.Resident{}).
		Select("name, id").
		Order("id").
		Scan(&residents).Error
	if err != nil {
		return nil, err
	}

	return residents, nil
}

// FindByName retrieves the (name, id) projection of residents whose name
// contains the given text, ignoring case
func (r *residentRepository) FindByName(name string) ([]*response.ResidentNameAndID, error) {
	var residents []*response.ResidentNameAndID

	err := r.db.Model(&models.Resident{}).
		Select("name, id").
		Where("name ILIKE ?", "%"+escapeLike(name)+"%").
		Order("id").
		Scan(&residents).Error
	if err != nil {
		return nil, err
	}

	return residents, nil
}

// DeleteByID removes the resident with the given ID. Deleting a missing ID is not an error.
func (r *residentRepository) DeleteByID(id uint) error {
	return r.db.Delete(&models.Resident{}, id).Error
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes LIKE wildcards in user input
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
