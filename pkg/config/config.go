package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	AppEnv       string
	IsProduction bool

	Port         string
	AIServiceURL string
	UploadDir    string

	DBDriver string
	DBDSN    string

	// runtime tunables
	AITimeoutSeconds       int
	AnswerCacheTTLSeconds  int
	AnswerCacheMaxItems    int
	RateLimitWindowSeconds int
	RateLimitCapacity      int
)

func init() {
	// .env is a convenience for local runs; the host environment wins in
	// production and the file is optional everywhere.
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("[config] no .env file loaded: %v", err)
		}
	}

	AppEnv = os.Getenv("APP_ENV")
	if AppEnv == "" {
		AppEnv = "staging"
	}
	IsProduction = AppEnv == "production"

	Port = envOr("PORT", "5000")
	AIServiceURL = envOr("AI_SERVICE_URL", "http://127.0.0.1:8000")
	UploadDir = envOr("UPLOAD_DIR", "./uploads")

	DBDriver = envOr("DB_DRIVER", "sqlite")
	DBDSN = envOr("DB_DSN", "app.db")

	AITimeoutSeconds = atoiOr(os.Getenv("AI_TIMEOUT_SECONDS"), 60)
	AnswerCacheTTLSeconds = atoiOr(os.Getenv("ANSWER_CACHE_TTL_SECONDS"), 600)
	AnswerCacheMaxItems = atoiOr(os.Getenv("ANSWER_CACHE_MAX_ITEMS"), 500)
	RateLimitWindowSeconds = atoiOr(os.Getenv("RATE_LIMIT_WINDOW_SECONDS"), 10)
	RateLimitCapacity = atoiOr(os.Getenv("RATE_LIMIT_CAPACITY"), 5)

	log.Printf("[config] AppEnv=%s DBDriver=%s AIServiceURL=%s", AppEnv, DBDriver, AIServiceURL)
	log.Printf("[config] AITimeout=%ds cacheTTL=%ds cacheMax=%d rateLimit window=%ds capacity=%d",
		AITimeoutSeconds, AnswerCacheTTLSeconds, AnswerCacheMaxItems, RateLimitWindowSeconds, RateLimitCapacity)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}
