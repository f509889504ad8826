package models

import "time"

// BranchStatus marks whether a branch currently accepts orders
type BranchStatus string

const (
	BranchActive   BranchStatus = "active"
	BranchInactive BranchStatus = "inactive"
)

type Branch struct {
	ID         uint         `json:"id" gorm:"primaryKey"`
	BranchName string       `json:"branch_name" gorm:"uniqueIndex;not null"`
	Address    string       `json:"address"`
	City       string       `json:"city"`
	State      string       `json:"state"`
	Phone      string       `json:"phone"`
	Status     BranchStatus `json:"status" gorm:"not null;default:'active'"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}
