package handlers

import (
	"net/http"
	"time"

	"laundry-api/config"
	"laundry-api/middleware"
	"laundry-api/models"
	"laundry-api/statemachine"

	"github.com/gin-gonic/gin"
)

// GetAssignedOrders returns all orders assigned to the logged-in employee
func GetAssignedOrders(c *gin.Context) {
	employeeID := middleware.GetUserID(c)
	var orders []models.Order
	config.DB.Preload("Items").Preload("User").Preload("Branch").
		Where("assigned_employee_id = ?", employeeID).
		Order("updated_at desc").
		Find(&orders)
	respondOK(c, http.StatusOK, gin.H{"count": len(orders), "orders": orders}, "")
}

// FinishOrder transitions processing → finished. Only the assigned
// employee may do it; payment state is untouched.
func FinishOrder(c *gin.Context) {
	employeeID := middleware.GetUserID(c)
	orderID := c.Param("id")

	var order models.Order
	if err := config.DB.First(&order, orderID).Error; err != nil {
		respondError(c, http.StatusNotFound, "Order not found")
		return
	}
	if order.AssignedEmployeeID == nil || *order.AssignedEmployeeID != employeeID {
		respondError(c, http.StatusForbidden, "You are not the assigned employee for this order")
		return
	}

	if err := statemachine.Orders.CanTransition(order.Status, models.StatusFinished, models.RoleEmployee); err != nil {
		respondErrorData(c, http.StatusUnprocessableEntity, gin.H{
			"current_status":    order.Status,
			"valid_next_states": statemachine.Orders.ValidTransitionsFrom(order.Status),
		}, err.Error())
		return
	}

	prevStatus := order.Status
	config.DB.Model(&order).Update("status", models.StatusFinished)

	history := models.OrderStatusHistory{
		OrderID:    order.ID,
		FromStatus: prevStatus,
		ToStatus:   models.StatusFinished,
		ChangedBy:  employeeID,
		Note:       "Order finished by employee",
	}
	config.DB.Create(&history)

	config.DB.Preload("Items").Preload("User").First(&order, order.ID)
	respondOK(c, http.StatusOK, gin.H{"order": order}, "Order marked finished")
}

type CreateRequestRequest struct {
	OrderID uint `json:"order_id" binding:"required"`
	Items   []struct {
		InventoryItemID uint `json:"inventory_item_id" binding:"required"`
		Quantity        int  `json:"quantity"`
	} `json:"items" binding:"required"`
}

// CreateRequest opens an inventory draw request against one of the
// employee's assigned orders. Item validation happens before any row is
// written: an empty list or a non-positive quantity never reaches the DB.
func CreateRequest(c *gin.Context) {
	employeeID := middleware.GetUserID(c)

	var req CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if len(req.Items) == 0 {
		respondError(c, http.StatusBadRequest, "Request must contain at least one item")
		return
	}
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			respondError(c, http.StatusBadRequest, "Item quantities must be greater than zero")
			return
		}
	}

	var order models.Order
	if err := config.DB.First(&order, req.OrderID).Error; err != nil {
		respondError(c, http.StatusNotFound, "Order not found")
		return
	}
	if order.AssignedEmployeeID == nil || *order.AssignedEmployeeID != employeeID {
		respondError(c, http.StatusForbidden, "You can only request inventory for your assigned orders")
		return
	}

	var requestItems []models.RequestItem
	for _, item := range req.Items {
		var inv models.InventoryItem
		if err := config.DB.First(&inv, item.InventoryItemID).Error; err != nil {
			respondError(c, http.StatusBadRequest, "Inventory item not found")
			return
		}
		requestItems = append(requestItems, models.RequestItem{
			InventoryItemID: inv.ID,
			Quantity:        item.Quantity,
		})
	}

	request := models.EmployeeRequest{
		OrderID:    req.OrderID,
		EmployeeID: employeeID,
		Items:      requestItems,
		Status:     models.RequestPending,
	}
	if err := config.DB.Create(&request).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to create request")
		return
	}

	config.DB.Preload("Items.InventoryItem").First(&request, request.ID)
	respondOK(c, http.StatusCreated, gin.H{"request": request}, "Inventory request submitted")
}

// GetMyRequests returns the employee's inventory requests
func GetMyRequests(c *gin.Context) {
	employeeID := middleware.GetUserID(c)
	var requests []models.EmployeeRequest
	config.DB.Preload("Items.InventoryItem").Preload("Order").
		Where("employee_id = ?", employeeID).
		Order("created_at desc").
		Find(&requests)
	respondOK(c, http.StatusOK, gin.H{"count": len(requests), "requests": requests}, "")
}

type CreateLeaveRequest struct {
	LeaveType string `json:"leave_type" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Reason    string `json:"reason"`
}

// CreateLeave submits a leave request. Dates are YYYY-MM-DD and the range
// must satisfy start ≤ end.
func CreateLeave(c *gin.Context) {
	employeeID := middleware.GetUserID(c)

	var req CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid start_date, expected YYYY-MM-DD")
		return
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid end_date, expected YYYY-MM-DD")
		return
	}
	if end.Before(start) {
		respondError(c, http.StatusBadRequest, "start_date must be on or before end_date")
		return
	}

	leave := models.Leave{
		EmployeeID: employeeID,
		LeaveType:  req.LeaveType,
		StartDate:  start,
		EndDate:    end,
		Reason:     req.Reason,
		Status:     models.LeavePending,
	}
	if err := config.DB.Create(&leave).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to create leave request")
		return
	}

	respondOK(c, http.StatusCreated, gin.H{"leave": leave, "days": leave.Days()}, "Leave request submitted")
}

// GetMyLeaves returns the employee's leave requests
func GetMyLeaves(c *gin.Context) {
	employeeID := middleware.GetUserID(c)
	var leaves []models.Leave
	config.DB.Where("employee_id = ?", employeeID).
		Order("created_at desc").
		Find(&leaves)
	respondOK(c, http.StatusOK, gin.H{"count": len(leaves), "leaves": leaves}, "")
}

// DeleteLeave removes one of the employee's own leave requests.
// Only pending leaves are deletable — a decided leave is a record.
func DeleteLeave(c *gin.Context) {
	employeeID := middleware.GetUserID(c)
	leaveID := c.Param("id")

	var leave models.Leave
	if err := config.DB.First(&leave, leaveID).Error; err != nil {
		respondError(c, http.StatusNotFound, "Leave request not found")
		return
	}
	if leave.EmployeeID != employeeID {
		respondError(c, http.StatusForbidden, "This leave request does not belong to you")
		return
	}
	if leave.Status != models.LeavePending {
		respondError(c, http.StatusUnprocessableEntity, "Only pending leave requests can be deleted")
		return
	}

	config.DB.Delete(&leave)
	respondOK(c, http.StatusOK, nil, "Leave request deleted")
}
