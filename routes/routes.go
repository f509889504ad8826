package routes

import (
	"laundry-api/handlers"
	"laundry-api/middleware"
	"laundry-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth & account recovery
		public.POST("/users/register", handlers.Register)
		public.POST("/users/login", handlers.Login)
		public.POST("/users/forgot-password", handlers.ForgotPassword)
		public.POST("/users/reset-password", handlers.ResetPassword)
		public.POST("/users/verify-account", handlers.VerifyAccount)
		public.POST("/users/resend-verification", handlers.ResendVerification)

		// Branch directory (no auth needed)
		public.GET("/branches", handlers.ListBranches)

		// Lifecycle info (great for docs/Postman)
		public.GET("/lifecycles", handlers.GetLifecycles)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
		auth.GET("/user/:id", handlers.GetUser)
	}

	// ── Customer routes ────────────────────────────────────────────
	customer := r.Group("/api/customer")
	customer.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleCustomer))
	{
		customer.POST("/orders", handlers.PlaceOrder)
		customer.GET("/orders", handlers.GetMyOrders)
		customer.GET("/orders/:id", handlers.GetOrderDetail)
		customer.POST("/issues", handlers.ReportIssue)
		customer.GET("/issues", handlers.GetMyIssues)
	}

	// ── Employee routes ────────────────────────────────────────────
	employee := r.Group("/api/employee")
	employee.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleEmployee))
	{
		employee.GET("/orders", handlers.GetAssignedOrders)
		employee.PUT("/orders/:id/finish", handlers.FinishOrder)

		employee.POST("/requests", handlers.CreateRequest)
		employee.GET("/requests", handlers.GetMyRequests)

		employee.POST("/leaves", handlers.CreateLeave)
		employee.GET("/leaves", handlers.GetMyLeaves)
		employee.DELETE("/leaves/:id", handlers.DeleteLeave)

		employee.GET("/issues", handlers.ListIssues)
		employee.PUT("/issues/:id/advance", handlers.AdvanceIssue)
	}

	// ── Manager routes ─────────────────────────────────────────────
	manager := r.Group("/api/manager")
	manager.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleManager))
	{
		manager.GET("/orders", handlers.GetBranchOrders)
		manager.PUT("/orders/:id/assign", handlers.AssignOrder)
		manager.PUT("/orders/:id/mark-paid", handlers.MarkPaid)

		manager.GET("/requests", handlers.ListRequests)
		manager.PUT("/requests/:id/approve", handlers.ApproveRequest)
		manager.PUT("/requests/:id/reject", handlers.RejectRequest)

		manager.GET("/leaves", handlers.ListLeaves)
		manager.PUT("/leaves/:id/approve", handlers.ApproveLeave)
		manager.PUT("/leaves/:id/reject", handlers.RejectLeave)

		manager.GET("/issues", handlers.ListIssues)
		manager.PUT("/issues/:id/advance", handlers.AdvanceIssue)

		manager.POST("/employees", handlers.RegisterEmployee)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.POST("/branches", handlers.CreateBranch)
		admin.GET("/branches", handlers.AdminListBranches)
		admin.PUT("/branches/:id", handlers.UpdateBranch)
		admin.PUT("/branches/:id/toggle", handlers.ToggleBranch)

		admin.GET("/users", handlers.AdminListUsers)
		admin.POST("/users", handlers.AdminCreateUser)

		admin.POST("/suppliers", handlers.CreateSupplier)
		admin.GET("/suppliers", handlers.ListSuppliers)
		admin.PUT("/suppliers/:id", handlers.UpdateSupplier)
		admin.DELETE("/suppliers/:id", handlers.DeleteSupplier)

		admin.POST("/inventory", handlers.CreateInventoryItem)
		admin.GET("/inventory", handlers.ListInventory)
		admin.PUT("/inventory/:id", handlers.UpdateInventoryItem)
		admin.DELETE("/inventory/:id", handlers.DeleteInventoryItem)

		admin.GET("/orders", handlers.AdminGetAllOrders)

		admin.GET("/requests", handlers.ListRequests)
		admin.PUT("/requests/:id/fulfill", handlers.FulfillRequest)

		admin.GET("/leaves", handlers.ListLeaves)
		admin.PUT("/leaves/:id/approve", handlers.ApproveLeave)
		admin.PUT("/leaves/:id/reject", handlers.RejectLeave)

		admin.GET("/issues", handlers.ListIssues)
		admin.PUT("/issues/:id/advance", handlers.AdvanceIssue)
	}

	// ── Supplier routes ────────────────────────────────────────────
	supplier := r.Group("/api/supplier")
	supplier.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleSupplier))
	{
		supplier.GET("/requests", handlers.GetApprovedRequests)
		supplier.PUT("/requests/:id/fulfill", handlers.FulfillRequest)
	}
}
