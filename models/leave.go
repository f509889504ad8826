package models

import "time"

type LeaveStatus string

const (
	LeavePending  LeaveStatus = "pending"
	LeaveApproved LeaveStatus = "approved"
	LeaveRejected LeaveStatus = "rejected"
)

type Leave struct {
	ID         uint        `json:"id" gorm:"primaryKey"`
	EmployeeID uint        `json:"employee_id" gorm:"not null"`
	Employee   *User       `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
	LeaveType  string      `json:"leave_type" gorm:"not null"`
	StartDate  time.Time   `json:"start_date" gorm:"not null"`
	EndDate    time.Time   `json:"end_date" gorm:"not null"`
	Reason     string      `json:"reason"`
	Status     LeaveStatus `json:"status" gorm:"not null;default:'pending'"`
	ApprovedBy *uint       `json:"approved_by"`
	ApprovedAt *time.Time  `json:"approved_at"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// CalcLeaveDays returns the inclusive number of calendar days between
// start and end: a leave from Jan 1 to Jan 3 is 3 days.
func CalcLeaveDays(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// Days is the inclusive duration of the leave in calendar days.
func (l *Leave) Days() int {
	return CalcLeaveDays(l.StartDate, l.EndDate)
}
