package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// DevJWTSecret signs tokens when JWT_SECRET is unset outside production.
	DevJWTSecret = "dev-secret-change-me"

	ShapeTags  = "tags"
	ShapeItems = "items"

	UploadLocal = "local"
	UploadS3    = "s3"

	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	Env             string
	ServerPort      string
	LogLevel        string
	DBDriver        string
	MySQLDSN        string
	SQLitePath      string
	DBLogLevel      string
	ResetDB         bool
	RedisAddr       string
	RedisDB         int
	RedisPass       string
	JWTSecret       string
	AllowedOrigins  []string
	OutfitShape     string
	UploadBackend   string
	UploadDir       string
	S3Bucket        string
	S3Region        string
	S3PublicBaseURL string
}

// Load builds Config from environment with sensible defaults. A .env file in
// the working directory is read first when present.
func Load() *Config {
	_ = godotenv.Load()

	env := getEnv("APP_ENV", "development")
	secret := os.Getenv("JWT_SECRET")
	if secret == "" && env != "production" {
		secret = DevJWTSecret
	}

	return &Config{
		Env:             env,
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		DBDriver:        strings.ToLower(getEnv("DB_DRIVER", DriverMySQL)),
		MySQLDSN:        getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/wardrobe?charset=utf8mb4&parseTime=True&loc=Local"),
		SQLitePath:      getEnv("SQLITE_PATH", "wardrobe.db"),
		DBLogLevel:      getEnv("DB_LOG_LEVEL", "warn"),
		ResetDB:         os.Getenv("RESET_DB") == "true",
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:         getEnvInt("REDIS_DB", 0),
		RedisPass:       os.Getenv("REDIS_PASSWORD"),
		JWTSecret:       secret,
		AllowedOrigins:  getEnvList("FRONTEND_URL", []string{"http://localhost:5173"}),
		OutfitShape:     strings.ToLower(getEnv("OUTFIT_SHAPE", ShapeTags)),
		UploadBackend:   strings.ToLower(getEnv("UPLOAD_BACKEND", UploadLocal)),
		UploadDir:       getEnv("UPLOAD_DIR", "uploads"),
		S3Bucket:        os.Getenv("S3_BUCKET"),
		S3Region:        getEnv("S3_REGION", "us-east-1"),
		S3PublicBaseURL: strings.TrimRight(os.Getenv("S3_PUBLIC_BASE_URL"), "/"),
	}
}

// IsProd reports whether the service runs in production.
func (c *Config) IsProd() bool {
	return c.Env == "production"
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required in production")
	}
	switch c.DBDriver {
	case DriverMySQL, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	switch c.OutfitShape {
	case ShapeTags, ShapeItems:
	default:
		return fmt.Errorf("unsupported OUTFIT_SHAPE %q", c.OutfitShape)
	}
	switch c.UploadBackend {
	case UploadLocal:
	case UploadS3:
		if c.S3Bucket == "" {
			return fmt.Errorf("S3_BUCKET is required when UPLOAD_BACKEND=s3")
		}
	default:
		return fmt.Errorf("unsupported UPLOAD_BACKEND %q", c.UploadBackend)
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

// getEnvList splits a comma separated variable, dropping blanks and trailing slashes.
func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, p := range strings.Split(v, ",") {
		if o := strings.TrimRight(strings.TrimSpace(p), "/"); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
