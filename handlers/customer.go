package handlers

import (
	"net/http"

	"laundry-api/config"
	"laundry-api/middleware"
	"laundry-api/models"

	"github.com/gin-gonic/gin"
)

type PlaceOrderRequest struct {
	BranchID        uint   `json:"branch_id" binding:"required"`
	PaymentType     string `json:"payment_type"`
	DeliveryOption  string `json:"delivery_option"`
	SpecialRequests string `json:"special_requests"`
	Items           []struct {
		Name     string  `json:"name" binding:"required"`
		Price    float64 `json:"price" binding:"required,gt=0"`
		Quantity int     `json:"quantity" binding:"required,min=1"`
	} `json:"items" binding:"required,min=1"`
}

// PlaceOrder creates a new laundry order (customer only)
func PlaceOrder(c *gin.Context) {
	customerID := middleware.GetUserID(c)

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var branch models.Branch
	if err := config.DB.First(&branch, req.BranchID).Error; err != nil {
		respondError(c, http.StatusNotFound, "Branch not found")
		return
	}
	if branch.Status != models.BranchActive {
		respondError(c, http.StatusBadRequest, "Branch '"+branch.BranchName+"' is currently inactive")
		return
	}

	var orderItems []models.OrderItem
	var total float64
	for _, reqItem := range req.Items {
		total += reqItem.Price * float64(reqItem.Quantity)
		orderItems = append(orderItems, models.OrderItem{
			Name:     reqItem.Name,
			Price:    reqItem.Price,
			Quantity: reqItem.Quantity,
		})
	}

	order := models.Order{
		UserID:          customerID,
		BranchID:        req.BranchID,
		Status:          models.StatusNotStarted,
		TotalPrice:      total,
		PaymentType:     req.PaymentType,
		DeliveryOption:  req.DeliveryOption,
		SpecialRequests: req.SpecialRequests,
		Items:           orderItems,
	}
	if err := config.DB.Create(&order).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to place order")
		return
	}

	history := models.OrderStatusHistory{
		OrderID:   order.ID,
		ToStatus:  models.StatusNotStarted,
		ChangedBy: customerID,
		Note:      "Order placed by customer",
	}
	config.DB.Create(&history)

	config.DB.Preload("Items").Preload("Branch").First(&order, order.ID)

	respondOK(c, http.StatusCreated, gin.H{"order": order}, "Order placed successfully")
}

// GetMyOrders returns all orders for the logged-in customer
func GetMyOrders(c *gin.Context) {
	customerID := middleware.GetUserID(c)
	var orders []models.Order
	config.DB.Preload("Items").Preload("Branch").Preload("AssignedEmployee").
		Where("user_id = ?", customerID).
		Order("created_at desc").
		Find(&orders)
	respondOK(c, http.StatusOK, gin.H{"count": len(orders), "orders": orders}, "")
}

// GetOrderDetail returns a single order's full detail with history
func GetOrderDetail(c *gin.Context) {
	customerID := middleware.GetUserID(c)
	orderID := c.Param("id")

	var order models.Order
	if err := config.DB.
		Preload("Items").
		Preload("Branch").
		Preload("AssignedEmployee").
		Preload("StatusHistory").
		First(&order, orderID).Error; err != nil {
		respondError(c, http.StatusNotFound, "Order not found")
		return
	}
	if order.UserID != customerID {
		respondError(c, http.StatusForbidden, "This order does not belong to you")
		return
	}

	respondOK(c, http.StatusOK, gin.H{"order": order}, "")
}

type ReportIssueRequest struct {
	OrderID     uint   `json:"order_id" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// ReportIssue opens an issue against one of the customer's own orders
func ReportIssue(c *gin.Context) {
	customerID := middleware.GetUserID(c)

	var req ReportIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var order models.Order
	if err := config.DB.First(&order, req.OrderID).Error; err != nil {
		respondError(c, http.StatusNotFound, "Order not found")
		return
	}
	if order.UserID != customerID {
		respondError(c, http.StatusForbidden, "You can only report issues on your own orders")
		return
	}

	issue := models.Issue{
		OrderID:     req.OrderID,
		ReporterID:  customerID,
		Description: req.Description,
		Status:      models.IssueOpen,
	}
	if err := config.DB.Create(&issue).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to report issue")
		return
	}

	respondOK(c, http.StatusCreated, gin.H{"issue": issue}, "Issue reported")
}

// GetMyIssues returns the customer's reported issues
func GetMyIssues(c *gin.Context) {
	customerID := middleware.GetUserID(c)
	var issues []models.Issue
	config.DB.Preload("Order").
		Where("reporter_id = ?", customerID).
		Order("created_at desc").
		Find(&issues)
	respondOK(c, http.StatusOK, gin.H{"count": len(issues), "issues": issues}, "")
}
