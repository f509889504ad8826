package models

import "time"

// RequestStatus represents the state of an employee inventory draw request
type RequestStatus string

const (
	RequestPending            RequestStatus = "pending"
	RequestApproved           RequestStatus = "approved"
	RequestRejected           RequestStatus = "rejected"
	RequestFulfilled          RequestStatus = "fulfilled"
	RequestPartiallyFulfilled RequestStatus = "partially_fulfilled"
)

// EmployeeRequest is an employee's draw of inventory against one of
// their assigned orders. Managers review it, admins or suppliers fulfill it.
type EmployeeRequest struct {
	ID              uint          `json:"id" gorm:"primaryKey"`
	OrderID         uint          `json:"order_id" gorm:"not null"`
	Order           *Order        `json:"order,omitempty" gorm:"foreignKey:OrderID"`
	EmployeeID      uint          `json:"employee_id" gorm:"not null"`
	Employee        *User         `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
	Items           []RequestItem `json:"items,omitempty" gorm:"foreignKey:RequestID"`
	Status          RequestStatus `json:"status" gorm:"not null;default:'pending'"`
	RejectionReason string        `json:"rejection_reason"`
	ReviewedBy      *uint         `json:"reviewed_by"`
	FulfilledBy     *uint         `json:"fulfilled_by"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

type RequestItem struct {
	ID                uint           `json:"id" gorm:"primaryKey"`
	RequestID         uint           `json:"request_id" gorm:"not null"`
	InventoryItemID   uint           `json:"inventory_item_id" gorm:"not null"`
	InventoryItem     *InventoryItem `json:"inventory_item,omitempty" gorm:"foreignKey:InventoryItemID"`
	Quantity          int            `json:"quantity" gorm:"not null"`
	DeliveredQuantity int            `json:"delivered_quantity" gorm:"default:0"`
}
