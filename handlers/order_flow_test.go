package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"laundry-api/config"
	"laundry-api/models"
)

func TestOrderLifecycle(t *testing.T) {
	r := setupAPI(t)
	branch := createBranch(t, "Downtown")
	customer := createUser(t, models.RoleCustomer, "cust@example.com", nil)
	manager := createUser(t, models.RoleManager, "mgr@example.com", &branch.ID)
	employee := createUser(t, models.RoleEmployee, "emp@example.com", &branch.ID)
	stranger := createUser(t, models.RoleEmployee, "emp2@example.com", &branch.ID)

	// Customer places an order
	w, env := do(t, r, http.MethodPost, "/api/customer/orders", authToken(t, &customer), map[string]any{
		"branch_id":    branch.ID,
		"payment_type": "cash",
		"items": []map[string]any{
			{"name": "Wash & Fold", "price": 12.5, "quantity": 2},
			{"name": "Dry Cleaning", "price": 8.0, "quantity": 1},
		},
	})
	wantStatus(t, w, http.StatusCreated)
	orderID := entityID(t, env, "order")

	var order models.Order
	config.DB.First(&order, orderID)
	if order.Status != models.StatusNotStarted {
		t.Fatalf("new order status = %s, want not_started", order.Status)
	}
	if order.TotalPrice != 33.0 {
		t.Fatalf("total = %v, want 33.0", order.TotalPrice)
	}
	if order.AssignedEmployeeID != nil {
		t.Fatal("new order must be unassigned")
	}

	// Manager assigns: status and assignee change together
	w, _ = do(t, r, http.MethodPut, fmt.Sprintf("/api/manager/orders/%d/assign", orderID),
		authToken(t, &manager), map[string]any{"employee_id": employee.ID})
	wantStatus(t, w, http.StatusOK)

	config.DB.First(&order, orderID)
	if order.Status != models.StatusProcessing {
		t.Fatalf("status after assign = %s, want processing", order.Status)
	}
	if order.AssignedEmployeeID == nil || *order.AssignedEmployeeID != employee.ID {
		t.Fatalf("assignee = %v, want %d", order.AssignedEmployeeID, employee.ID)
	}

	// A second assignment is an illegal transition
	w, env = do(t, r, http.MethodPut, fmt.Sprintf("/api/manager/orders/%d/assign", orderID),
		authToken(t, &manager), map[string]any{"employee_id": stranger.ID})
	wantStatus(t, w, http.StatusUnprocessableEntity)
	if env.Success {
		t.Fatal("re-assign must fail")
	}

	// Only the assigned employee can finish
	w, _ = do(t, r, http.MethodPut, fmt.Sprintf("/api/employee/orders/%d/finish", orderID),
		authToken(t, &stranger), nil)
	wantStatus(t, w, http.StatusForbidden)

	w, _ = do(t, r, http.MethodPut, fmt.Sprintf("/api/employee/orders/%d/finish", orderID),
		authToken(t, &employee), nil)
	wantStatus(t, w, http.StatusOK)

	config.DB.First(&order, orderID)
	if order.Status != models.StatusFinished {
		t.Fatalf("status after finish = %s, want finished", order.Status)
	}
	if order.IsPaid {
		t.Fatal("finishing must not touch the payment flag")
	}

	// Finishing again hits the terminal state
	w, _ = do(t, r, http.MethodPut, fmt.Sprintf("/api/employee/orders/%d/finish", orderID),
		authToken(t, &employee), nil)
	wantStatus(t, w, http.StatusUnprocessableEntity)

	// Payment is orthogonal and idempotent
	w, _ = do(t, r, http.MethodPut, fmt.Sprintf("/api/manager/orders/%d/mark-paid", orderID),
		authToken(t, &manager), nil)
	wantStatus(t, w, http.StatusOK)

	w, env = do(t, r, http.MethodPut, fmt.Sprintf("/api/manager/orders/%d/mark-paid", orderID),
		authToken(t, &manager), nil)
	wantStatus(t, w, http.StatusOK)
	if !env.Success {
		t.Fatal("marking an already-paid order paid must not error")
	}
	config.DB.First(&order, orderID)
	if !order.IsPaid {
		t.Fatal("is_paid should remain true")
	}

	// The audit trail recorded every transition
	var historyCount int64
	config.DB.Model(&models.OrderStatusHistory{}).Where("order_id = ?", orderID).Count(&historyCount)
	if historyCount != 3 { // placed, assigned, finished
		t.Fatalf("history rows = %d, want 3", historyCount)
	}
}

// Two managers can race for the same unassigned order; the UPDATE's guard
// makes the loser's write a no-op and the handler reports the conflict.
func TestAssignOrderConflict(t *testing.T) {
	r := setupAPI(t)
	branch := createBranch(t, "Uptown")
	customer := createUser(t, models.RoleCustomer, "cust@example.com", nil)
	manager := createUser(t, models.RoleManager, "mgr@example.com", &branch.ID)
	employee := createUser(t, models.RoleEmployee, "emp@example.com", &branch.ID)

	order := models.Order{UserID: customer.ID, BranchID: branch.ID, Status: models.StatusNotStarted}
	config.DB.Create(&order)

	// Simulate the lost race: another manager's assignment landed between
	// this handler's read and its write.
	config.DB.Model(&order).Update("assigned_employee_id", employee.ID)

	w, env := do(t, r, http.MethodPut, fmt.Sprintf("/api/manager/orders/%d/assign", order.ID),
		authToken(t, &manager), map[string]any{"employee_id": employee.ID})
	wantStatus(t, w, http.StatusConflict)
	if env.Success {
		t.Fatal("lost race must surface as a conflict")
	}
}

func TestAssignValidation(t *testing.T) {
	r := setupAPI(t)
	branch := createBranch(t, "Midtown")
	otherBranch := createBranch(t, "Elsewhere")
	customer := createUser(t, models.RoleCustomer, "cust@example.com", nil)
	manager := createUser(t, models.RoleManager, "mgr@example.com", &branch.ID)

	order := models.Order{UserID: customer.ID, BranchID: branch.ID, Status: models.StatusNotStarted}
	config.DB.Create(&order)

	// Assignee must exist
	w, _ := do(t, r, http.MethodPut, fmt.Sprintf("/api/manager/orders/%d/assign", order.ID),
		authToken(t, &manager), map[string]any{"employee_id": 999})
	wantStatus(t, w, http.StatusNotFound)

	// Assignee must hold the employee role
	w, _ = do(t, r, http.MethodPut, fmt.Sprintf("/api/manager/orders/%d/assign", order.ID),
		authToken(t, &manager), map[string]any{"employee_id": customer.ID})
	wantStatus(t, w, http.StatusUnprocessableEntity)

	// Managers only touch their own branch's orders
	foreign := models.Order{UserID: customer.ID, BranchID: otherBranch.ID, Status: models.StatusNotStarted}
	config.DB.Create(&foreign)
	employee := createUser(t, models.RoleEmployee, "emp@example.com", &branch.ID)
	w, _ = do(t, r, http.MethodPut, fmt.Sprintf("/api/manager/orders/%d/assign", foreign.ID),
		authToken(t, &manager), map[string]any{"employee_id": employee.ID})
	wantStatus(t, w, http.StatusForbidden)

	// Nothing changed on the spurned orders
	var check models.Order
	config.DB.First(&check, order.ID)
	if check.Status != models.StatusNotStarted || check.AssignedEmployeeID != nil {
		t.Fatal("failed assignments must leave the order untouched")
	}
}

func TestRoleGuardOnOrderRoutes(t *testing.T) {
	r := setupAPI(t)
	customer := createUser(t, models.RoleCustomer, "cust@example.com", nil)

	// Customers cannot reach the manager board
	w, env := do(t, r, http.MethodGet, "/api/manager/orders", authToken(t, &customer), nil)
	wantStatus(t, w, http.StatusForbidden)
	if env.Success {
		t.Fatal("guard rejection must have success=false")
	}

	// No token at all: authentication, not authorization, fails
	w, _ = do(t, r, http.MethodGet, "/api/manager/orders", "", nil)
	wantStatus(t, w, http.StatusUnauthorized)
}

func TestPlaceOrderValidation(t *testing.T) {
	r := setupAPI(t)
	branch := createBranch(t, "Downtown")
	customer := createUser(t, models.RoleCustomer, "cust@example.com", nil)

	// Inactive branch refuses orders
	config.DB.Model(&models.Branch{}).Where("id = ?", branch.ID).Update("status", models.BranchInactive)
	w, _ := do(t, r, http.MethodPost, "/api/customer/orders", authToken(t, &customer), map[string]any{
		"branch_id": branch.ID,
		"items":     []map[string]any{{"name": "Wash", "price": 5.0, "quantity": 1}},
	})
	wantStatus(t, w, http.StatusBadRequest)

	// Empty item list never reaches the database
	config.DB.Model(&models.Branch{}).Where("id = ?", branch.ID).Update("status", models.BranchActive)
	w, _ = do(t, r, http.MethodPost, "/api/customer/orders", authToken(t, &customer), map[string]any{
		"branch_id": branch.ID,
		"items":     []map[string]any{},
	})
	wantStatus(t, w, http.StatusBadRequest)

	var count int64
	config.DB.Model(&models.Order{}).Count(&count)
	if count != 0 {
		t.Fatalf("rejected orders must not be stored, found %d", count)
	}
}
