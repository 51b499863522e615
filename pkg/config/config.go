package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	JWT     JWTConfig
	SMTP    SMTPConfig
	Admin   AdminConfig
}

type ServerConfig struct {
	Port string
}

type StorageConfig struct {
	DataDir    string
	UploadsDir string
	MediaDir   string
}

type JWTConfig struct {
	Secret string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type AdminConfig struct {
	// Email is where requirement match alerts go.
	Email string
}

func Load() *Config {
	godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
		},
		Storage: StorageConfig{
			DataDir:    getEnv("DATA_DIR", "./data"),
			UploadsDir: getEnv("UPLOADS_DIR", "./uploads"),
			MediaDir:   getEnv("MEDIA_DIR", "./media"),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", ""),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", "smtp.gmail.com"),
			Port:     getEnvInt("SMTP_PORT", 587),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", "Property Listings <noreply@property-listings.local>"),
		},
		Admin: AdminConfig{
			Email: getEnv("ADMIN_EMAIL", "admin@property-listings.local"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
