package models

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAgent    UserRole = "agent"
)

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"size:100;uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Hidden from JSON
	Role         UserRole  `json:"role" gorm:"type:varchar(20);not null;default:'customer';check:role IN ('customer','agent')"`
	Avatar       *string   `json:"avatar" gorm:"size:255"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Relationships
	Posts      []Post      `json:"posts,omitempty" gorm:"foreignKey:UserID"`
	SavedPosts []SavedPost `json:"saved_posts,omitempty" gorm:"foreignKey:UserID"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}

// BeforeCreate is a GORM hook that runs before creating a user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.Role == "" {
		u.Role = RoleCustomer
	}
	return nil
}

// IsValidRole checks if the user role is valid
func (u *User) IsValidRole() bool {
	switch u.Role {
	case RoleCustomer, RoleAgent:
		return true
	default:
		return false
	}
}

// IsAgent checks if the user is an agent
func (u *User) IsAgent() bool {
	return u.Role == RoleAgent
}

// IsCustomer checks if the user is a customer
func (u *User) IsCustomer() bool {
	return u.Role == RoleCustomer
}

// UserSummary is the public profile shape embedded in other responses
type UserSummary struct {
	ID       uint    `json:"id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Avatar   *string `json:"avatar"`
}

// Summary returns the public profile fields of a user
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Avatar:   u.Avatar,
	}
}
