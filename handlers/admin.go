package handlers

import (
	"net/http"

	"laundry-api/config"
	"laundry-api/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// ── Branch management ───────────────────────────────────────────────────────

type CreateBranchRequest struct {
	BranchName string `json:"branch_name" binding:"required"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	Phone      string `json:"phone"`
}

// CreateBranch adds a new service location
func CreateBranch(c *gin.Context) {
	var req CreateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	branch := models.Branch{
		BranchName: req.BranchName,
		Address:    req.Address,
		City:       req.City,
		State:      req.State,
		Phone:      req.Phone,
		Status:     models.BranchActive,
	}
	if err := config.DB.Create(&branch).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to create branch")
		return
	}
	respondOK(c, http.StatusCreated, gin.H{"branch": branch}, "Branch created")
}

// AdminListBranches returns all branches regardless of status
func AdminListBranches(c *gin.Context) {
	var branches []models.Branch
	config.DB.Order("branch_name asc").Find(&branches)
	respondOK(c, http.StatusOK, gin.H{"count": len(branches), "branches": branches}, "")
}

// UpdateBranch edits branch details (safe fields only)
func UpdateBranch(c *gin.Context) {
	var branch models.Branch
	if err := config.DB.First(&branch, c.Param("id")).Error; err != nil {
		respondError(c, http.StatusNotFound, "Branch not found")
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	allowed := map[string]bool{"branch_name": true, "address": true, "city": true, "state": true, "phone": true}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	config.DB.Model(&branch).Updates(update)
	respondOK(c, http.StatusOK, gin.H{"branch": branch}, "Branch updated")
}

// ToggleBranch flips a branch between active and inactive
func ToggleBranch(c *gin.Context) {
	var branch models.Branch
	if err := config.DB.First(&branch, c.Param("id")).Error; err != nil {
		respondError(c, http.StatusNotFound, "Branch not found")
		return
	}

	next := models.BranchActive
	if branch.Status == models.BranchActive {
		next = models.BranchInactive
	}
	config.DB.Model(&branch).Update("status", next)
	branch.Status = next
	respondOK(c, http.StatusOK, gin.H{"branch": branch}, "Branch status set to "+string(next))
}

// ── Users ───────────────────────────────────────────────────────────────────

// AdminListUsers returns all users, optionally filtered by ?role=
func AdminListUsers(c *gin.Context) {
	query := config.DB.Preload("Branch")
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	var users []models.User
	query.Find(&users)
	respondOK(c, http.StatusOK, gin.H{"count": len(users), "users": users}, "")
}

type CreateUserRequest struct {
	FirstName string          `json:"first_name" binding:"required"`
	LastName  string          `json:"last_name" binding:"required"`
	Email     string          `json:"email" binding:"required,email"`
	Password  string          `json:"password" binding:"required,min=6"`
	Phone     string          `json:"phone"`
	Role      models.UserRole `json:"role" binding:"required"`
	BranchID  *uint           `json:"branch_id"`
}

// AdminCreateUser creates an account with any role, including managers and
// supplier-role users
func AdminCreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if !models.ValidRole(req.Role) {
		respondError(c, http.StatusBadRequest, "Invalid role. Must be: customer, employee, manager, admin, or supplier")
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
		Role:         req.Role,
		BranchID:     req.BranchID,
		IsActive:     true,
		IsVerified:   true,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}
	respondOK(c, http.StatusCreated, gin.H{"user": userSummary(&user)}, "User created")
}

// ── Supplier reference data ─────────────────────────────────────────────────

type SupplierRequest struct {
	Name          string `json:"name" binding:"required"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
}

// CreateSupplier records a supply company
func CreateSupplier(c *gin.Context) {
	var req SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	supplier := models.Supplier{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		IsActive:      true,
	}
	if err := config.DB.Create(&supplier).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to create supplier")
		return
	}
	respondOK(c, http.StatusCreated, gin.H{"supplier": supplier}, "Supplier created")
}

// ListSuppliers returns supplier records
func ListSuppliers(c *gin.Context) {
	var suppliers []models.Supplier
	config.DB.Order("name asc").Find(&suppliers)
	respondOK(c, http.StatusOK, gin.H{"count": len(suppliers), "suppliers": suppliers}, "")
}

// UpdateSupplier edits supplier details
func UpdateSupplier(c *gin.Context) {
	var supplier models.Supplier
	if err := config.DB.First(&supplier, c.Param("id")).Error; err != nil {
		respondError(c, http.StatusNotFound, "Supplier not found")
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	allowed := map[string]bool{
		"name": true, "contact_person": true, "email": true,
		"phone": true, "address": true, "city": true, "state": true, "is_active": true,
	}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	config.DB.Model(&supplier).Updates(update)
	respondOK(c, http.StatusOK, gin.H{"supplier": supplier}, "Supplier updated")
}

// DeleteSupplier removes a supplier record
func DeleteSupplier(c *gin.Context) {
	var supplier models.Supplier
	if err := config.DB.First(&supplier, c.Param("id")).Error; err != nil {
		respondError(c, http.StatusNotFound, "Supplier not found")
		return
	}
	config.DB.Delete(&supplier)
	respondOK(c, http.StatusOK, nil, "Supplier deleted")
}

// ── Inventory ───────────────────────────────────────────────────────────────

type InventoryItemRequest struct {
	Name          string `json:"name" binding:"required"`
	Unit          string `json:"unit"`
	StockQuantity int    `json:"stock_quantity" binding:"min=0"`
	ReorderLevel  int    `json:"reorder_level" binding:"min=0"`
}

// CreateInventoryItem adds a stock item
func CreateInventoryItem(c *gin.Context) {
	var req InventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	item := models.InventoryItem{
		Name:          req.Name,
		Unit:          req.Unit,
		StockQuantity: req.StockQuantity,
		ReorderLevel:  req.ReorderLevel,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to create inventory item")
		return
	}
	respondOK(c, http.StatusCreated, gin.H{"item": item}, "Inventory item created")
}

// ListInventory returns all stock items, flagging those at or below their
// reorder level. ?low_stock=true narrows to just those.
func ListInventory(c *gin.Context) {
	var items []models.InventoryItem
	query := config.DB.Order("name asc")
	if c.Query("low_stock") == "true" {
		query = query.Where("stock_quantity <= reorder_level")
	}
	query.Find(&items)

	lowStock := 0
	for _, item := range items {
		if item.StockQuantity <= item.ReorderLevel {
			lowStock++
		}
	}
	respondOK(c, http.StatusOK, gin.H{"count": len(items), "low_stock_count": lowStock, "items": items}, "")
}

// UpdateInventoryItem edits a stock item
func UpdateInventoryItem(c *gin.Context) {
	var item models.InventoryItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		respondError(c, http.StatusNotFound, "Inventory item not found")
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	allowed := map[string]bool{"name": true, "unit": true, "stock_quantity": true, "reorder_level": true}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	config.DB.Model(&item).Updates(update)
	respondOK(c, http.StatusOK, gin.H{"item": item}, "Inventory item updated")
}

// DeleteInventoryItem removes a stock item
func DeleteInventoryItem(c *gin.Context) {
	var item models.InventoryItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		respondError(c, http.StatusNotFound, "Inventory item not found")
		return
	}
	config.DB.Delete(&item)
	respondOK(c, http.StatusOK, nil, "Inventory item deleted")
}

// ── Orders overview ─────────────────────────────────────────────────────────

// AdminGetAllOrders returns orders across every branch with filters and a
// revenue summary. Revenue counts paid orders only — status and payment are
// independent, so a finished order may still be outstanding.
func AdminGetAllOrders(c *gin.Context) {
	query := config.DB.Preload("Items").Preload("User").Preload("Branch").Preload("AssignedEmployee")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if branchID := c.Query("branch_id"); branchID != "" {
		query = query.Where("branch_id = ?", branchID)
	}
	if customerID := c.Query("customer_id"); customerID != "" {
		query = query.Where("user_id = ?", customerID)
	}

	var orders []models.Order
	query.Order("created_at desc").Find(&orders)

	summary := map[string]int{}
	var totalRevenue, outstanding float64
	for _, o := range orders {
		summary[string(o.Status)]++
		if o.IsPaid {
			totalRevenue += o.TotalPrice
		} else {
			outstanding += o.TotalPrice
		}
	}

	respondOK(c, http.StatusOK, gin.H{
		"order_summary":       summary,
		"total_revenue":       totalRevenue,
		"outstanding_balance": outstanding,
		"count":               len(orders),
		"orders":              orders,
	}, "")
}
