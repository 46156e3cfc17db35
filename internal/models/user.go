package models

import (
	"time"
)

// User represents the up_users table holding login accounts
type User struct {
	ID          uint       `json:"id" gorm:"primarykey"`
	DocumentID  string     `json:"document_id" gorm:"column:document_id"`
	Username    string     `json:"username" gorm:"column:username;uniqueIndex"`
	Email       string     `json:"email" gorm:"column:email"`
	Provider    string     `json:"provider" gorm:"column:provider"`
	Password    string     `json:"-" gorm:"column:password"`
	Confirmed   *bool      `json:"confirmed" gorm:"column:confirmed"`
	Blocked     *bool      `json:"blocked" gorm:"column:blocked"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	PublishedAt *time.Time `json:"published_at"`
	// Relationships
	Roles []Role `json:"roles,omitempty" gorm:"many2many:up_users_role_lnk;joinForeignKey:user_id;joinReferences:role_id"`
}

// TableName sets the insert table name for User
func (User) TableName() string {
	return "up_users"
}

// RoleNames returns the names of the loaded roles
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, role := range u.Roles {
		names = append(names, role.Name)
	}
	return names
}

// IsBlocked reports whether the account has been blocked
func (u *User) IsBlocked() bool {
	return u.Blocked != nil && *u.Blocked
}
