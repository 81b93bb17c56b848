package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/yeremiapane/foodpoint-pos/utils"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port    string
	GinMode string

	DBDriver string // sqlite, sqlite-purego, mysql, postgres
	DBDSN    string

	UploadDir     string
	MaxUploadMB   int64
	AllowedOrigin string

	LogLevel string

	RateLimitRPS   float64
	RateLimitBurst int

	RecordSaleOnPayment bool
	RestaurantName      string
}

// Load reads .env (if present) and the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		utils.InfoLogger.Warnf(".env file not loaded: %v", err)
	}

	cfg := Config{
		Port:           getenv("PORT", "8080"),
		GinMode:        os.Getenv("GIN_MODE"),
		DBDriver:       strings.ToLower(getenv("DB_DRIVER", "sqlite")),
		DBDSN:          getenv("DB_DSN", "foodpoint.db"),
		UploadDir:      getenv("UPLOAD_DIR", "/uploads"),
		AllowedOrigin:  getenv("ALLOWED_ORIGIN", "http://localhost:5173"),
		LogLevel:       getenv("LOG_LEVEL", "info"),
		RestaurantName: getenv("RESTAURANT_NAME", "FoodPoint"),
	}

	var err error
	if cfg.MaxUploadMB, err = int64Env("MAX_UPLOAD_MB", 10); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitRPS, err = floatEnv("RATE_LIMIT_RPS", 50); err != nil {
		return Config{}, err
	}
	burst, err := int64Env("RATE_LIMIT_BURST", 100)
	if err != nil {
		return Config{}, err
	}
	cfg.RateLimitBurst = int(burst)
	if cfg.RecordSaleOnPayment, err = boolEnv("RECORD_SALE_ON_PAYMENT", false); err != nil {
		return Config{}, err
	}

	switch cfg.DBDriver {
	case DriverSQLite, DriverSQLitePureGo, DriverMySQL, DriverPostgres:
	default:
		return Config{}, fmt.Errorf("DB_DRIVER %q is not supported", cfg.DBDriver)
	}
	if cfg.MaxUploadMB <= 0 {
		return Config{}, fmt.Errorf("MAX_UPLOAD_MB must be positive")
	}

	return cfg, nil
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func int64Env(key string, def int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}

func floatEnv(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return f, nil
}

func boolEnv(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be true or false: %w", key, err)
	}
	return b, nil
}
