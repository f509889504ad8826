package models

import (
	"time"
)

// UserRole defines the closed set of roles in the system
type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleEmployee UserRole = "employee"
	RoleManager  UserRole = "manager"
	RoleAdmin    UserRole = "admin"
	RoleSupplier UserRole = "supplier"
)

// ValidRole reports whether r is one of the five known roles.
func ValidRole(r UserRole) bool {
	switch r {
	case RoleCustomer, RoleEmployee, RoleManager, RoleAdmin, RoleSupplier:
		return true
	}
	return false
}

type User struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	FirstName         string    `json:"first_name" gorm:"not null"`
	LastName          string    `json:"last_name" gorm:"not null"`
	Email             string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash      string    `json:"-" gorm:"not null"`
	Phone             string    `json:"phone"`
	Role              UserRole  `json:"role" gorm:"not null;default:'customer'"`
	BranchID          *uint     `json:"branch_id"`
	Branch            *Branch   `json:"branch,omitempty" gorm:"foreignKey:BranchID"`
	IsActive          bool      `json:"is_active" gorm:"default:true"`
	IsVerified        bool      `json:"is_verified" gorm:"default:false"`
	VerificationToken string    `json:"-"`
	ResetToken        string    `json:"-"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
