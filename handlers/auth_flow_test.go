package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"laundry-api/config"
	"laundry-api/models"
)

func TestRegisterAndLogin(t *testing.T) {
	r := setupAPI(t)

	w, env := do(t, r, http.MethodPost, "/api/users/register", "", map[string]any{
		"first_name": "Ada",
		"last_name":  "Lovelace",
		"email":      "ada@example.com",
		"password":   "secret123",
	})
	wantStatus(t, w, http.StatusCreated)
	if !env.Success {
		t.Fatalf("register should succeed: %s", env.Message)
	}
	user, _ := env.Data["user"].(map[string]any)
	if user["role"] != "customer" {
		t.Fatalf("public registration must create customers, got %v", user["role"])
	}

	// Duplicate email
	w, _ = do(t, r, http.MethodPost, "/api/users/register", "", map[string]any{
		"first_name": "Ada", "last_name": "L", "email": "ada@example.com", "password": "secret123",
	})
	wantStatus(t, w, http.StatusConflict)

	// Wrong password
	w, env = do(t, r, http.MethodPost, "/api/users/login", "", map[string]any{
		"email": "ada@example.com", "password": "wrong", "role": "customer",
	})
	wantStatus(t, w, http.StatusUnauthorized)
	if env.Success {
		t.Fatal("failed login must have success=false")
	}

	// Wrong role: a customer credential never opens another role's session
	w, _ = do(t, r, http.MethodPost, "/api/users/login", "", map[string]any{
		"email": "ada@example.com", "password": "secret123", "role": "manager",
	})
	wantStatus(t, w, http.StatusUnauthorized)

	w, env = do(t, r, http.MethodPost, "/api/users/login", "", map[string]any{
		"email": "ada@example.com", "password": "secret123", "role": "customer",
	})
	wantStatus(t, w, http.StatusOK)
	if env.Data["token"] == "" {
		t.Fatal("login should return a token")
	}
}

func TestGetUserScoping(t *testing.T) {
	r := setupAPI(t)
	customer := createUser(t, models.RoleCustomer, "c@example.com", nil)
	other := createUser(t, models.RoleCustomer, "other@example.com", nil)
	manager := createUser(t, models.RoleManager, "m@example.com", nil)

	// Own record resolves
	w, env := do(t, r, http.MethodGet, fmt.Sprintf("/api/user/%d", customer.ID), authToken(t, &customer), nil)
	wantStatus(t, w, http.StatusOK)
	if !env.Success {
		t.Fatalf("own record fetch failed: %s", env.Message)
	}

	// Someone else's record is off limits for customers
	w, _ = do(t, r, http.MethodGet, fmt.Sprintf("/api/user/%d", other.ID), authToken(t, &customer), nil)
	wantStatus(t, w, http.StatusForbidden)

	// Managers may hydrate anyone
	w, _ = do(t, r, http.MethodGet, fmt.Sprintf("/api/user/%d", other.ID), authToken(t, &manager), nil)
	wantStatus(t, w, http.StatusOK)

	// Unknown id
	w, _ = do(t, r, http.MethodGet, "/api/user/999", authToken(t, &manager), nil)
	wantStatus(t, w, http.StatusNotFound)
}

func TestPasswordResetFlow(t *testing.T) {
	r := setupAPI(t)
	createUser(t, models.RoleCustomer, "reset@example.com", nil)

	w, _ := do(t, r, http.MethodPost, "/api/users/forgot-password", "", map[string]any{
		"email": "reset@example.com",
	})
	wantStatus(t, w, http.StatusOK)

	// Same answer for unknown emails — no account probing
	w, env := do(t, r, http.MethodPost, "/api/users/forgot-password", "", map[string]any{
		"email": "nobody@example.com",
	})
	wantStatus(t, w, http.StatusOK)
	if !env.Success {
		t.Fatal("forgot-password must not reveal whether the email exists")
	}

	var user models.User
	config.DB.Where("email = ?", "reset@example.com").First(&user)
	if user.ResetToken == "" {
		t.Fatal("reset token should be stored")
	}

	// Wrong token rejected
	w, _ = do(t, r, http.MethodPost, "/api/users/reset-password", "", map[string]any{
		"email": "reset@example.com", "token": "bogus", "new_password": "newpass123",
	})
	wantStatus(t, w, http.StatusUnauthorized)

	w, _ = do(t, r, http.MethodPost, "/api/users/reset-password", "", map[string]any{
		"email": "reset@example.com", "token": user.ResetToken, "new_password": "newpass123",
	})
	wantStatus(t, w, http.StatusOK)

	// New password works, token is consumed
	w, _ = do(t, r, http.MethodPost, "/api/users/login", "", map[string]any{
		"email": "reset@example.com", "password": "newpass123", "role": "customer",
	})
	wantStatus(t, w, http.StatusOK)

	config.DB.Where("email = ?", "reset@example.com").First(&user)
	if user.ResetToken != "" {
		t.Fatal("reset token should be cleared after use")
	}
}

func TestAccountVerificationFlow(t *testing.T) {
	r := setupAPI(t)

	w, _ := do(t, r, http.MethodPost, "/api/users/register", "", map[string]any{
		"first_name": "New", "last_name": "User", "email": "new@example.com", "password": "secret123",
	})
	wantStatus(t, w, http.StatusCreated)

	var user models.User
	config.DB.Where("email = ?", "new@example.com").First(&user)
	if user.IsVerified {
		t.Fatal("fresh registrations start unverified")
	}
	if user.VerificationToken == "" {
		t.Fatal("registration should issue a verification token")
	}

	w, _ = do(t, r, http.MethodPost, "/api/users/verify-account", "", map[string]any{
		"email": "new@example.com", "token": "bogus",
	})
	wantStatus(t, w, http.StatusUnauthorized)

	w, _ = do(t, r, http.MethodPost, "/api/users/verify-account", "", map[string]any{
		"email": "new@example.com", "token": user.VerificationToken,
	})
	wantStatus(t, w, http.StatusOK)

	config.DB.Where("email = ?", "new@example.com").First(&user)
	if !user.IsVerified {
		t.Fatal("account should be verified")
	}

	// Resend on a verified account is a no-op but still answers 200
	w, _ = do(t, r, http.MethodPost, "/api/users/resend-verification", "", map[string]any{
		"email": "new@example.com",
	})
	wantStatus(t, w, http.StatusOK)
}
