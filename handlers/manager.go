package handlers

import (
	"net/http"
	"time"

	"laundry-api/config"
	"laundry-api/middleware"
	"laundry-api/models"
	"laundry-api/statemachine"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// GetBranchOrders returns the order board for the manager's branch, with a
// per-status summary. Supports ?status= and ?unassigned=true filters.
func GetBranchOrders(c *gin.Context) {
	query := config.DB.Preload("Items").Preload("User").Preload("AssignedEmployee")

	if branchID, ok := middleware.GetBranchID(c); ok {
		query = query.Where("branch_id = ?", branchID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if c.Query("unassigned") == "true" {
		query = query.Where("assigned_employee_id IS NULL")
	}

	var orders []models.Order
	query.Order("created_at desc").Find(&orders)

	summary := map[string]int{}
	for _, o := range orders {
		summary[string(o.Status)]++
	}

	respondOK(c, http.StatusOK, gin.H{
		"order_summary": summary,
		"count":         len(orders),
		"orders":        orders,
	}, "")
}

type AssignOrderRequest struct {
	EmployeeID uint `json:"employee_id" binding:"required"`
}

// AssignOrder gives an unassigned order to an employee and starts
// processing. Both fields change in a single UPDATE guarded on the order
// still being unassigned, so when two managers race the loser gets a 409
// instead of silently overwriting.
func AssignOrder(c *gin.Context) {
	managerID := middleware.GetUserID(c)
	orderID := c.Param("id")

	var order models.Order
	if err := config.DB.First(&order, orderID).Error; err != nil {
		respondError(c, http.StatusNotFound, "Order not found")
		return
	}
	if branchID, ok := middleware.GetBranchID(c); ok && order.BranchID != branchID {
		respondError(c, http.StatusForbidden, "This order belongs to another branch")
		return
	}

	var req AssignOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var employee models.User
	if err := config.DB.First(&employee, req.EmployeeID).Error; err != nil {
		respondError(c, http.StatusNotFound, "Employee not found")
		return
	}
	if employee.Role != models.RoleEmployee {
		respondError(c, http.StatusUnprocessableEntity, "Assignee must have the employee role")
		return
	}
	if !employee.IsActive {
		respondError(c, http.StatusUnprocessableEntity, "Employee account is deactivated")
		return
	}

	if err := statemachine.Orders.CanTransition(order.Status, models.StatusProcessing, models.RoleManager); err != nil {
		respondErrorData(c, http.StatusUnprocessableEntity, gin.H{
			"current_status":    order.Status,
			"valid_next_states": statemachine.Orders.ValidTransitionsFrom(order.Status),
		}, err.Error())
		return
	}

	res := config.DB.Model(&models.Order{}).
		Where("id = ? AND status = ? AND assigned_employee_id IS NULL", order.ID, models.StatusNotStarted).
		Updates(map[string]interface{}{
			"status":               models.StatusProcessing,
			"assigned_employee_id": req.EmployeeID,
		})
	if res.Error != nil {
		respondError(c, http.StatusInternalServerError, "Failed to assign order")
		return
	}
	if res.RowsAffected == 0 {
		respondError(c, http.StatusConflict, "Order has already been assigned")
		return
	}

	history := models.OrderStatusHistory{
		OrderID:    order.ID,
		FromStatus: models.StatusNotStarted,
		ToStatus:   models.StatusProcessing,
		ChangedBy:  managerID,
		Note:       "Assigned to " + employee.FirstName + " " + employee.LastName,
	}
	config.DB.Create(&history)

	config.DB.Preload("Items").Preload("AssignedEmployee").First(&order, order.ID)
	respondOK(c, http.StatusOK, gin.H{"order": order}, "Order assigned")
}

// MarkPaid flips the payment flag. It is one-way and idempotent: marking a
// paid order paid again succeeds without change.
func MarkPaid(c *gin.Context) {
	orderID := c.Param("id")

	var order models.Order
	if err := config.DB.First(&order, orderID).Error; err != nil {
		respondError(c, http.StatusNotFound, "Order not found")
		return
	}
	if branchID, ok := middleware.GetBranchID(c); ok && order.BranchID != branchID {
		respondError(c, http.StatusForbidden, "This order belongs to another branch")
		return
	}

	if order.IsPaid {
		respondOK(c, http.StatusOK, gin.H{"order": order}, "Order is already marked paid")
		return
	}

	config.DB.Model(&order).Update("is_paid", true)
	config.DB.First(&order, order.ID)
	respondOK(c, http.StatusOK, gin.H{"order": order}, "Order marked paid")
}

// ListRequests returns inventory requests for review, newest first.
// Supports ?status= filtering.
func ListRequests(c *gin.Context) {
	query := config.DB.Preload("Items.InventoryItem").Preload("Employee").Preload("Order")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	var requests []models.EmployeeRequest
	query.Order("created_at desc").Find(&requests)
	respondOK(c, http.StatusOK, gin.H{"count": len(requests), "requests": requests}, "")
}

// ApproveRequest moves a pending inventory request to approved
func ApproveRequest(c *gin.Context) {
	decideRequest(c, models.RequestApproved, "")
}

type RejectRequestRequest struct {
	Reason string `json:"reason"`
}

// RejectRequest moves a pending inventory request to rejected
func RejectRequest(c *gin.Context) {
	var req RejectRequestRequest
	_ = c.ShouldBindJSON(&req) // body is optional
	decideRequest(c, models.RequestRejected, req.Reason)
}

func decideRequest(c *gin.Context, decision models.RequestStatus, reason string) {
	reviewerID := middleware.GetUserID(c)
	actor := middleware.GetRole(c)
	requestID := c.Param("id")

	var request models.EmployeeRequest
	if err := config.DB.First(&request, requestID).Error; err != nil {
		respondError(c, http.StatusNotFound, "Request not found")
		return
	}

	if err := statemachine.Requests.CanTransition(request.Status, decision, actor); err != nil {
		respondErrorData(c, http.StatusUnprocessableEntity, gin.H{
			"current_status":    request.Status,
			"valid_next_states": statemachine.Requests.ValidTransitionsFrom(request.Status),
		}, err.Error())
		return
	}

	updates := map[string]interface{}{
		"status":      decision,
		"reviewed_by": reviewerID,
	}
	if decision == models.RequestRejected {
		updates["rejection_reason"] = reason
	}
	config.DB.Model(&request).Updates(updates)

	config.DB.Preload("Items.InventoryItem").Preload("Employee").First(&request, request.ID)
	respondOK(c, http.StatusOK, gin.H{"request": request}, "Request "+string(decision))
}

// ListLeaves returns leave requests for review. Supports ?status=.
func ListLeaves(c *gin.Context) {
	query := config.DB.Preload("Employee")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	var leaves []models.Leave
	query.Order("created_at desc").Find(&leaves)
	respondOK(c, http.StatusOK, gin.H{"count": len(leaves), "leaves": leaves}, "")
}

// ApproveLeave decides a pending leave request. Shared by manager and
// admin routes; the acting role comes from the token claims.
func ApproveLeave(c *gin.Context) {
	decideLeave(c, models.LeaveApproved)
}

// RejectLeave decides a pending leave request
func RejectLeave(c *gin.Context) {
	decideLeave(c, models.LeaveRejected)
}

func decideLeave(c *gin.Context, decision models.LeaveStatus) {
	deciderID := middleware.GetUserID(c)
	actor := middleware.GetRole(c)
	leaveID := c.Param("id")

	var leave models.Leave
	if err := config.DB.First(&leave, leaveID).Error; err != nil {
		respondError(c, http.StatusNotFound, "Leave request not found")
		return
	}

	if err := statemachine.Leaves.CanTransition(leave.Status, decision, actor); err != nil {
		respondErrorData(c, http.StatusUnprocessableEntity, gin.H{
			"current_status":    leave.Status,
			"valid_next_states": statemachine.Leaves.ValidTransitionsFrom(leave.Status),
		}, err.Error())
		return
	}

	now := time.Now()
	config.DB.Model(&leave).Updates(map[string]interface{}{
		"status":      decision,
		"approved_by": deciderID,
		"approved_at": now,
	})

	config.DB.Preload("Employee").First(&leave, leave.ID)
	respondOK(c, http.StatusOK, gin.H{"leave": leave}, "Leave "+string(decision))
}

type RegisterStaffRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Phone     string `json:"phone"`
}

// RegisterEmployee creates an employee account in the manager's branch.
// Staff accounts skip email verification.
func RegisterEmployee(c *gin.Context) {
	var req RegisterStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var existing models.User
	if result := config.DB.Where("email = ?", req.Email).First(&existing); result.Error == nil {
		respondError(c, http.StatusConflict, "Email already registered")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user := models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: string(hash),
		Phone:        req.Phone,
		Role:         models.RoleEmployee,
		IsActive:     true,
		IsVerified:   true,
	}
	if branchID, ok := middleware.GetBranchID(c); ok {
		user.BranchID = &branchID
	}
	if err := config.DB.Create(&user).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to create employee")
		return
	}

	respondOK(c, http.StatusCreated, gin.H{"user": userSummary(&user)}, "Employee account created")
}
