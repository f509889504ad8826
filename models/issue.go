package models

import "time"

// IssueStatus only ever moves forward: open → in_progress → resolved
type IssueStatus string

const (
	IssueOpen       IssueStatus = "open"
	IssueInProgress IssueStatus = "in_progress"
	IssueResolved   IssueStatus = "resolved"
)

type Issue struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	OrderID     uint        `json:"order_id" gorm:"not null"`
	Order       *Order      `json:"order,omitempty" gorm:"foreignKey:OrderID"`
	ReporterID  uint        `json:"reporter_id" gorm:"not null"`
	Reporter    *User       `json:"reporter,omitempty" gorm:"foreignKey:ReporterID"`
	Description string      `json:"description" gorm:"not null"`
	Status      IssueStatus `json:"status" gorm:"not null;default:'open'"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
