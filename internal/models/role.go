package models

import (
	"time"
)

// Well-known role names seeded on migration
const (
	RoleAdmin    = "ADMIN"
	RoleResident = "RESIDENT"
)

// Role represents the up_roles table
type Role struct {
	ID          uint       `json:"id" gorm:"primarykey"`
	DocumentID  string     `json:"document_id" gorm:"column:document_id"`
	Name        string     `json:"name" gorm:"column:name;uniqueIndex"`
	Description string     `json:"description" gorm:"column:description"`
	Type        string     `json:"type" gorm:"column:type"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	PublishedAt *time.Time `json:"published_at"`
}

// TableName sets the insert table name for Role
func (Role) TableName() string {
	return "up_roles"
}
