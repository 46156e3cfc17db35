package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Resident represents the residents table
type Resident struct {
	ID          uint            `json:"id" gorm:"primarykey"`
	DocumentID  string          `json:"document_id" gorm:"column:document_id;size:36;uniqueIndex"`
	Name        string          `json:"name" gorm:"column:name;not null"`
	LastName    string          `json:"last_name" gorm:"column:last_name;not null"`
	NationalID  string          `json:"national_id" gorm:"column:national_id;size:14;not null"`
	Income      decimal.Decimal `json:"income" gorm:"column:income;type:numeric(15,2);not null"`
	DateOfBirth Date            `json:"date_of_birth" gorm:"column:date_of_birth;not null"`
	Email       string          `json:"email" gorm:"column:email"`
	UserID      *uint           `json:"user_id" gorm:"column:user_id;index"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	// Relationships
	User *User `json:"-" gorm:"foreignKey:UserID"`
}

// TableName sets the insert table name for Resident
func (Resident) TableName() string {
	return "residents"
}

// RoleNames returns the role names of the linked account, if loaded
func (r *Resident) RoleNames() []string {
	if r.User == nil {
		return nil
	}
	return r.User.RoleNames()
}
