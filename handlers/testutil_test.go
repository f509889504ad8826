package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"laundry-api/config"
	"laundry-api/middleware"
	"laundry-api/models"
	"laundry-api/routes"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const testPassword = "password123"

type envelope struct {
	Success bool           `json:"success"`
	Data    map[string]any `json:"data"`
	Message string         `json:"message"`
}

// setupAPI opens a fresh database in a temp dir and builds the full router,
// so every test runs against the real route/middleware chain.
func setupAPI(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.InitDB(filepath.Join(t.TempDir(), "test.db"))
	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func createBranch(t *testing.T, name string) models.Branch {
	t.Helper()
	branch := models.Branch{BranchName: name, City: "Springfield", Status: models.BranchActive}
	if err := config.DB.Create(&branch).Error; err != nil {
		t.Fatalf("create branch: %v", err)
	}
	return branch
}

func createUser(t *testing.T, role models.UserRole, email string, branchID *uint) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := models.User{
		FirstName:    "Test",
		LastName:     string(role),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		BranchID:     branchID,
		IsActive:     true,
		IsVerified:   true,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func authToken(t *testing.T, user *models.User) string {
	t.Helper()
	token, err := middleware.GenerateToken(user)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

func do(t *testing.T, r *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func wantStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("status = %d, want %d (body: %s)", w.Code, want, w.Body.String())
	}
}

// entityID digs an id out of envelope data, e.g. entityID(t, env, "order")
func entityID(t *testing.T, env envelope, key string) uint {
	t.Helper()
	entity, ok := env.Data[key].(map[string]any)
	if !ok {
		t.Fatalf("no %q in response data: %+v", key, env.Data)
	}
	id, ok := entity["id"].(float64)
	if !ok {
		t.Fatalf("no id in %q: %+v", key, entity)
	}
	return uint(id)
}
