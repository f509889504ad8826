package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"laundry-api/models"

	"github.com/glebarez/sqlite"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config holds the runtime settings. Values come from config.yaml when
// present; environment variables override the file; hard-coded fallbacks
// cover everything else so the binary runs with no setup.
type Config struct {
	Port          string `yaml:"port"`
	DatabasePath  string `yaml:"database_path"`
	JWTSecret     string `yaml:"jwt_secret"`
	TokenTTLHours int    `yaml:"token_ttl_hours"`
}

var DB *gorm.DB

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "laundry_super_secret_2024"))

// TokenTTL is how long issued tokens stay valid
var TokenTTL = 24 * time.Hour

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads config.yaml (if it exists) and applies env overrides.
func Load(path string) *Config {
	cfg := &Config{
		Port:          "8080",
		DatabasePath:  "laundry.db",
		JWTSecret:     string(JWTSecret),
		TokenTTLHours: 24,
	}

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatal("Failed to parse config file:", err)
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("DATABASE_PATH"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("TOKEN_TTL_HOURS"); v != "" {
		if hours, err := strconv.Atoi(v); err == nil && hours > 0 {
			cfg.TokenTTLHours = hours
		}
	}

	JWTSecret = []byte(cfg.JWTSecret)
	TokenTTL = time.Duration(cfg.TokenTTLHours) * time.Hour
	return cfg
}

func InitDB(path string) {
	var err error
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.User{},
		&models.Branch{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderStatusHistory{},
		&models.InventoryItem{},
		&models.Supplier{},
		&models.EmployeeRequest{},
		&models.RequestItem{},
		&models.Leave{},
		&models.Issue{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("Database connected and migrated successfully")
}
