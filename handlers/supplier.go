package handlers

import (
	"net/http"

	"laundry-api/config"
	"laundry-api/middleware"
	"laundry-api/models"
	"laundry-api/statemachine"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetApprovedRequests shows the fulfillment queue: requests a manager has
// approved but nobody has fulfilled yet
func GetApprovedRequests(c *gin.Context) {
	var requests []models.EmployeeRequest
	config.DB.Preload("Items.InventoryItem").Preload("Employee").Preload("Order").
		Where("status = ?", models.RequestApproved).
		Order("created_at asc").
		Find(&requests)
	respondOK(c, http.StatusOK, gin.H{"count": len(requests), "requests": requests}, "")
}

type FulfillRequestRequest struct {
	Items []struct {
		ItemID            uint `json:"item_id" binding:"required"`
		DeliveredQuantity int  `json:"delivered_quantity"`
	} `json:"items"`
}

// FulfillRequest delivers an approved inventory request and decrements
// stock. With no body every line is delivered in full; a body with lower
// delivered quantities ends the request as partially_fulfilled. Shared by
// the supplier and admin routes.
func FulfillRequest(c *gin.Context) {
	fulfillerID := middleware.GetUserID(c)
	actor := middleware.GetRole(c)
	requestID := c.Param("id")

	var request models.EmployeeRequest
	if err := config.DB.Preload("Items.InventoryItem").First(&request, requestID).Error; err != nil {
		respondError(c, http.StatusNotFound, "Request not found")
		return
	}

	var req FulfillRequestRequest
	_ = c.ShouldBindJSON(&req) // body is optional

	// Resolve delivered quantity per request line
	delivered := map[uint]int{}
	for _, item := range request.Items {
		delivered[item.ID] = item.Quantity
	}
	for _, d := range req.Items {
		if _, ok := delivered[d.ItemID]; !ok {
			respondError(c, http.StatusBadRequest, "Unknown request item in fulfillment")
			return
		}
		if d.DeliveredQuantity < 0 {
			respondError(c, http.StatusBadRequest, "Delivered quantities cannot be negative")
			return
		}
		delivered[d.ItemID] = d.DeliveredQuantity
	}

	partial := false
	for _, item := range request.Items {
		if delivered[item.ID] > item.Quantity {
			respondError(c, http.StatusBadRequest, "Cannot deliver more than was requested")
			return
		}
		if delivered[item.ID] < item.Quantity {
			partial = true
		}
		if item.InventoryItem != nil && item.InventoryItem.StockQuantity < delivered[item.ID] {
			respondError(c, http.StatusUnprocessableEntity,
				"Insufficient stock for '"+item.InventoryItem.Name+"'")
			return
		}
	}

	target := models.RequestFulfilled
	if partial {
		target = models.RequestPartiallyFulfilled
	}

	if err := statemachine.Requests.CanTransition(request.Status, target, actor); err != nil {
		respondErrorData(c, http.StatusUnprocessableEntity, gin.H{
			"current_status":    request.Status,
			"valid_next_states": statemachine.Requests.ValidTransitionsFrom(request.Status),
		}, err.Error())
		return
	}

	for _, item := range request.Items {
		qty := delivered[item.ID]
		config.DB.Model(&models.RequestItem{}).Where("id = ?", item.ID).
			Update("delivered_quantity", qty)
		config.DB.Model(&models.InventoryItem{}).Where("id = ?", item.InventoryItemID).
			Update("stock_quantity", gorm.Expr("stock_quantity - ?", qty))
	}

	config.DB.Model(&request).Updates(map[string]interface{}{
		"status":       target,
		"fulfilled_by": fulfillerID,
	})

	config.DB.Preload("Items.InventoryItem").Preload("Employee").First(&request, request.ID)
	respondOK(c, http.StatusOK, gin.H{"request": request}, "Request "+string(target))
}
