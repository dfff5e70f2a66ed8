package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string

	// Photo storage
	PhotoStorage   string // "disk" or "s3"
	PhotoDir       string
	PhotoURLPrefix string
	S3Endpoint     string
	S3Region       string
	S3Bucket       string
	S3AccessKey    string
	S3SecretKey    string
}

func Load() *Config {
	// .env is optional, real env vars win
	_ = godotenv.Load()

	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "dialogue"),
		DBPassword: getEnv("DB_PASSWORD", "dialogue_dev_password"),
		DBName:     getEnv("DB_NAME", "dialogue"),
		JWTSecret:  getEnv("JWT_SECRET", "dev-secret-change-me"),

		PhotoStorage:   getEnv("PHOTO_STORAGE", "disk"),
		PhotoDir:       getEnv("PHOTO_DIR", "uploads"),
		PhotoURLPrefix: getEnv("PHOTO_URL_PREFIX", "/uploads/"),
		S3Endpoint:     getEnv("S3_ENDPOINT", ""),
		S3Region:       getEnv("S3_REGION", "us-east-1"),
		S3Bucket:       getEnv("S3_BUCKET", "dialogue-photos"),
		S3AccessKey:    getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey:    getEnv("S3_SECRET_KEY", ""),
	}
}

func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

func getEnv(key, fallback string) string {
	val, exists := os.LookupEnv(key)

	if exists {
		return val
	}

	return fallback
}
