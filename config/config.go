package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string
	AppMode string

	UploadDir      string
	MaxUploadBytes int64

	S3Region     string
	S3Bucket     string
	S3AccessKey  string
	S3SecretKey  string
	S3Endpoint   string
	S3PublicBase string

	GoogleKeyfile         string
	GoogleCredentialsJSON string
	SpreadsheetName       string

	SummaryStrategy string
	GenAIKey        string
	GenAIModel      string

	RedisHost     string
	RedisPort     string
	RedisPassword string

	DraftTTLMin     int
	SubmitLimit     int
	SubmitWindowSec int

	AdminJWTSecret string
}

func LoadConfig() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		AppPort: getEnv("APP_PORT", "8080"),
		AppMode: getEnv("APP_MODE", "debug"),

		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadBytes: int64(getEnvAsInt("MAX_UPLOAD_MB", 16)) * 1024 * 1024,

		S3Region:     getEnv("S3_REGION", ""),
		S3Bucket:     getEnv("S3_BUCKET", ""),
		S3AccessKey:  getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey:  getEnv("S3_SECRET_KEY", ""),
		S3Endpoint:   getEnv("S3_ENDPOINT", ""),
		S3PublicBase: getEnv("S3_PUBLIC_BASE", ""),

		GoogleKeyfile:         getEnv("GOOGLE_KEYFILE", "service-account.json"),
		GoogleCredentialsJSON: getEnv("GOOGLE_CREDENTIALS_JSON", ""),
		SpreadsheetName:       getEnv("SPREADSHEET_NAME", "FestFusion Data"),

		SummaryStrategy: getEnv("SUMMARY_STRATEGY", "template"),
		GenAIKey:        getEnv("GENAI_API_KEY", ""),
		GenAIModel:      getEnv("GENAI_MODEL", "gemini-2.0-flash"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		DraftTTLMin:     getEnvAsInt("DRAFT_TTL_MIN", 60),
		SubmitLimit:     getEnvAsInt("SUBMIT_LIMIT", 10),
		SubmitWindowSec: getEnvAsInt("SUBMIT_WINDOW_SEC", 60),

		AdminJWTSecret: getEnv("ADMIN_JWT_SECRET", ""),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
