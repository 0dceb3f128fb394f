package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	Server   ServerConfig
	CORS     CORSConfig
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

// JWTConfig is handed to the token service at construction and never mutated
// afterwards.
type JWTConfig struct {
	Secret             string
	Issuer             string
	Audience           string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
}

type ServerConfig struct {
	Port    string
	GinMode string
}

type CORSConfig struct {
	AllowedOrigins []string
}

func LoadConfig() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	config := &Config{
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "3306"),
			User:     getEnv("DB_USER", "root"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "attendance_management"),
		},
		JWT: JWTConfig{
			Secret:             getEnv("JWT_SECRET", "your-signing-secret-key"),
			Issuer:             getEnv("JWT_ISSUER", "academic-attendance-backend"),
			Audience:           getEnv("JWT_AUDIENCE", "academic-attendance-clients"),
			AccessTokenExpiry:  time.Duration(parseInt(getEnv("ACCESS_TOKEN_EXPIRY_MINUTES", "15"), 15)) * time.Minute,
			RefreshTokenExpiry: time.Duration(parseInt(getEnv("REFRESH_TOKEN_EXPIRY_DAYS", "7"), 7)) * 24 * time.Hour,
		},
		Server: ServerConfig{
			Port:    getEnv("PORT", "8080"),
			GinMode: getEnv("GIN_MODE", "debug"),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		},
	}

	return config
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseInt(s string, defaultValue int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		fmt.Printf("Warning: Invalid integer value '%s', using default %d\n", s, defaultValue)
		return defaultValue
	}
	return n
}

func parseOrigins(s string) []string {
	origins := []string{}
	for _, origin := range strings.Split(s, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
