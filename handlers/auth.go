package handlers

import (
	"log"
	"net/http"
	"strconv"

	"laundry-api/config"
	"laundry-api/middleware"
	"laundry-api/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Phone     string `json:"phone"`
	BranchID  *uint  `json:"branch_id"`
}

type LoginRequest struct {
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required"`
	Role     models.UserRole `json:"role" binding:"required"`
}

func userSummary(user *models.User) gin.H {
	return gin.H{
		"id":          user.ID,
		"first_name":  user.FirstName,
		"last_name":   user.LastName,
		"email":       user.Email,
		"role":        user.Role,
		"branch_id":   user.BranchID,
		"is_verified": user.IsVerified,
	}
}

// Register creates a customer account. Staff and supplier accounts are
// created by managers and admins through their own endpoints.
func Register(c *gin.Context) {
	var req RegisterRequest
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
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Email:             req.Email,
		PasswordHash:      string(hash),
		Phone:             req.Phone,
		Role:              models.RoleCustomer,
		BranchID:          req.BranchID,
		IsActive:          true,
		VerificationToken: uuid.NewString(),
	}
	if err := config.DB.Create(&user).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	// No mailer configured — the token is logged for the operator
	log.Printf("verification token for %s: %s", user.Email, user.VerificationToken)

	token, err := middleware.GenerateToken(&user)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	respondOK(c, http.StatusCreated, gin.H{"token": token, "user": userSummary(&user)},
		"Account created successfully")
}

// Login authenticates a user for a specific role and returns a role-scoped
// JWT. The role in the request must match the account's role, so a customer
// credential can never open a manager session.
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if !models.ValidRole(req.Role) {
		respondError(c, http.StatusBadRequest, "Invalid role. Must be: customer, employee, manager, admin, or supplier")
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if user.Role != req.Role {
		respondError(c, http.StatusUnauthorized, "Account does not have the '"+string(req.Role)+"' role")
		return
	}
	if !user.IsActive {
		respondError(c, http.StatusForbidden, "Account is deactivated")
		return
	}

	token, err := middleware.GenerateToken(&user)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	respondOK(c, http.StatusOK, gin.H{"token": token, "user": userSummary(&user)}, "Login successful")
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ForgotPassword issues a reset token. The response is the same whether or
// not the email exists, so the endpoint cannot be used to probe accounts.
func ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err == nil {
		token := uuid.NewString()
		config.DB.Model(&user).Update("reset_token", token)
		log.Printf("password reset token for %s: %s", user.Email, token)
	}

	respondOK(c, http.StatusOK, nil, "If the email is registered, a reset token has been issued")
}

type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// ResetPassword consumes a reset token and replaces the password
func ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var user models.User
	if err := config.DB.Where("email = ? AND reset_token = ?", req.Email, req.Token).First(&user).Error; err != nil || req.Token == "" {
		respondError(c, http.StatusUnauthorized, "Invalid reset token")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}
	config.DB.Model(&user).Updates(map[string]interface{}{
		"password_hash": string(hash),
		"reset_token":   "",
	})

	respondOK(c, http.StatusOK, nil, "Password updated successfully")
}

type VerifyAccountRequest struct {
	Email string `json:"email" binding:"required,email"`
	Token string `json:"token" binding:"required"`
}

// VerifyAccount consumes the emailed verification token
func VerifyAccount(c *gin.Context) {
	var req VerifyAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var user models.User
	if err := config.DB.Where("email = ? AND verification_token = ?", req.Email, req.Token).First(&user).Error; err != nil || req.Token == "" {
		respondError(c, http.StatusUnauthorized, "Invalid verification token")
		return
	}
	if user.IsVerified {
		respondOK(c, http.StatusOK, nil, "Account is already verified")
		return
	}
	config.DB.Model(&user).Updates(map[string]interface{}{
		"is_verified":        true,
		"verification_token": "",
	})

	respondOK(c, http.StatusOK, nil, "Account verified successfully")
}

// ResendVerification regenerates the verification token for an unverified account
func ResendVerification(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err == nil && !user.IsVerified {
		token := uuid.NewString()
		config.DB.Model(&user).Update("verification_token", token)
		log.Printf("verification token for %s: %s", user.Email, token)
	}

	respondOK(c, http.StatusOK, nil, "If the account is unverified, a new token has been issued")
}

// GetProfile returns the authenticated user's own record
func GetProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var user models.User
	if err := config.DB.Preload("Branch").First(&user, userID).Error; err != nil {
		respondError(c, http.StatusNotFound, "User not found")
		return
	}
	respondOK(c, http.StatusOK, gin.H{"user": user}, "")
}

// GetUser resolves a user by id for session hydration. Callers may fetch
// their own record; managers and admins may fetch anyone's.
func GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	callerID := middleware.GetUserID(c)
	callerRole := middleware.GetRole(c)
	if uint(id) != callerID && callerRole != models.RoleManager && callerRole != models.RoleAdmin {
		respondError(c, http.StatusForbidden, "You can only fetch your own record")
		return
	}

	var user models.User
	if err := config.DB.Preload("Branch").First(&user, uint(id)).Error; err != nil {
		respondError(c, http.StatusNotFound, "User not found")
		return
	}
	respondOK(c, http.StatusOK, gin.H{"user": user}, "")
}
