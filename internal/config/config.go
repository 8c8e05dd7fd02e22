package config

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

// MaxBodyBytes caps JSON request bodies. Profile pictures arrive inline as
// base64 data URIs, so the ceiling has to be generous.
const MaxBodyBytes = 15 << 20 // 15 MB

type MediaConfig struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Region          string
	PublicBaseURL   string
}

type Config struct {
	DB_URL         string
	Port           string
	JWTSecret      string
	Environment    string
	FrontendOrigin string
	CorsConfig     cors.Options
	Media          MediaConfig
}

var Envs = initConfig()

func initConfig() Config {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("No", envFile, "file found")
	}

	frontendOrigin := getEnv("FRONTEND_ORIGIN", "http://localhost:5173")

	return Config{
		DB_URL:         getEnv("DB_URL", ""),
		Port:           getEnv("PORT", "5001"),
		JWTSecret:      getEnv("JWT_SECRET", "not-so-secret-now-is-it?"),
		Environment:    getEnv("ENV", "development"),
		FrontendOrigin: frontendOrigin,
		CorsConfig:     CorsConfig(frontendOrigin),
		Media: MediaConfig{
			AccountID:       getEnv("MEDIA_ACCOUNT_ID", ""),
			AccessKeyID:     getEnv("MEDIA_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("MEDIA_SECRET_ACCESS_KEY", ""),
			BucketName:      getEnv("MEDIA_BUCKET_NAME", "murmur-avatars"),
			Region:          getEnv("MEDIA_REGION", "auto"),
			PublicBaseURL:   getEnv("MEDIA_PUBLIC_BASE_URL", ""),
		},
	}
}

// Gets the env by key or fallbacks
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// CorsConfig restricts the API to the single frontend origin. Credentials
// must stay enabled or the browser drops the session cookie.
func CorsConfig(origin string) cors.Options {
	return cors.Options{
		AllowedOrigins:   []string{origin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}
}
