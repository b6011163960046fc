package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string
	Port     string
	DBPath   string
	LogLevel string

	// BodyLimit caps request bodies. Five base64 images need room.
	BodyLimit int

	Cloudinary Cloudinary
}

// Cloudinary holds the image host credentials. Either URL or the three
// separate params must be set.
type Cloudinary struct {
	URL           string
	CloudName     string
	APIKey        string
	APISecret     string
	Folder        string
	UploadTimeout time.Duration
}

// Load reads .env when present and then the process environment.
func Load() Config {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	return Config{
		AppEnv:    getEnv("APP_ENV", "development"),
		Port:      getEnv("APP_PORT", getEnv("PORT", "3000")),
		DBPath:    getEnv("DB_PATH", "database.db"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		BodyLimit: getEnvInt("BODY_LIMIT", 50*1024*1024),
		Cloudinary: Cloudinary{
			URL:           os.Getenv("CLOUDINARY_URL"),
			CloudName:     os.Getenv("CLOUDINARY_CLOUD_NAME"),
			APIKey:        os.Getenv("CLOUDINARY_API_KEY"),
			APISecret:     os.Getenv("CLOUDINARY_API_SECRET"),
			Folder:        getEnv("CLOUDINARY_FOLDER", "catalog"),
			UploadTimeout: getEnvDuration("UPLOAD_TIMEOUT", 60*time.Second),
		},
	}
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return defaultValue
	}
	return v
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return defaultValue
	}
	return v
}
