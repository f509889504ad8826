package models

import "time"

// OrderStatus represents the processing state of a laundry order.
// The payment flag is orthogonal: an order can be finished and still unpaid.
type OrderStatus string

const (
	StatusNotStarted OrderStatus = "not_started"
	StatusProcessing OrderStatus = "processing"
	StatusFinished   OrderStatus = "finished"
)

type Order struct {
	ID                 uint                 `json:"id" gorm:"primaryKey"`
	UserID             uint                 `json:"user_id" gorm:"not null"`
	User               *User                `json:"user,omitempty" gorm:"foreignKey:UserID"`
	BranchID           uint                 `json:"branch_id" gorm:"not null"`
	Branch             *Branch              `json:"branch,omitempty" gorm:"foreignKey:BranchID"`
	Items              []OrderItem          `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	TotalPrice         float64              `json:"total_price"`
	Status             OrderStatus          `json:"status" gorm:"not null;default:'not_started'"`
	IsPaid             bool                 `json:"is_paid" gorm:"default:false"`
	PaymentType        string               `json:"payment_type"`
	AssignedEmployeeID *uint                `json:"assigned_employee_id"`
	AssignedEmployee   *User                `json:"assigned_employee,omitempty" gorm:"foreignKey:AssignedEmployeeID"`
	DeliveryOption     string               `json:"delivery_option"`
	SpecialRequests    string               `json:"special_requests"`
	StatusHistory      []OrderStatusHistory `json:"status_history,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt          time.Time            `json:"created_at"`
	UpdatedAt          time.Time            `json:"updated_at"`
}

type OrderItem struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	OrderID  uint    `json:"order_id" gorm:"not null"`
	Name     string  `json:"name" gorm:"not null"`
	Price    float64 `json:"price" gorm:"not null"` // snapshot price at time of order
	Quantity int     `json:"quantity" gorm:"not null"`
}

// OrderStatusHistory records every status change for the audit trail
type OrderStatusHistory struct {
	ID         uint        `json:"id" gorm:"primaryKey"`
	OrderID    uint        `json:"order_id" gorm:"not null"`
	FromStatus OrderStatus `json:"from_status"`
	ToStatus   OrderStatus `json:"to_status" gorm:"not null"`
	ChangedBy  uint        `json:"changed_by"` // user ID who triggered the transition
	Note       string      `json:"note"`
	CreatedAt  time.Time   `json:"created_at"`
}
