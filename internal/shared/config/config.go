package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Default model identifiers. Each is independently overridable via env.
const (
	defaultGeneratePrimary  = "gemini-2.5-flash-preview-05-20"
	defaultGenerateFallback = "gemini-2.0-flash-lite-001"
	defaultParsePrimary     = "gemini-2.0-flash-lite-001"
	defaultParseFallback    = "gemini-2.5-flash-preview-05-20"
	defaultRegenerateModel  = "gemini-2.5-flash-preview-05-20"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string
	DatabaseURL     string

	ObjectStoreType string
	LocalStoreDir   string
	AWSRegion       string
	S3Bucket        string
	S3Prefix        string

	GeminiAPIKey     string
	GeneratePrimary  string
	GenerateFallback string
	ParsePrimary     string
	ParseFallback    string
	RegenerateModel  string
	LLMTimeout       time.Duration

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
	UIRedirectURL      string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := os.Getenv("DATABASE_URL")

	if env == "production" && dbURL == "" {
		log.Printf("DATABASE_URL is required in production")
	}

	return Config{
		Port:            getEnv("PORT", "8080"),
		Env:             env,
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000")),
		DatabaseURL:     dbURL,

		ObjectStoreType: normalizeStoreType(getEnv("OBJECT_STORE", "local")),
		LocalStoreDir:   getEnv("LOCAL_STORE_DIR", "./data"),
		AWSRegion:       getEnv("AWS_REGION", ""),
		S3Bucket:        getEnv("S3_BUCKET", ""),
		S3Prefix:        getEnv("S3_PREFIX", ""),

		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		GeneratePrimary:  getEnv("PRIMARY_MODEL", defaultGeneratePrimary),
		GenerateFallback: getEnv("FALLBACK_MODEL", defaultGenerateFallback),
		ParsePrimary:     getEnv("PARSE_PRIMARY_MODEL", defaultParsePrimary),
		ParseFallback:    getEnv("PARSE_FALLBACK_MODEL", defaultParseFallback),
		RegenerateModel:  getEnv("REGENERATE_MODEL", defaultRegenerateModel),
		LLMTimeout:       llmTimeout(),

		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURL:  getEnv("GOOGLE_REDIRECT_URL", ""),
		UIRedirectURL:      getEnv("UI_REDIRECT_URL", ""),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func llmTimeout() time.Duration {
	if raw := strings.TrimSpace(os.Getenv("LLM_TIMEOUT_SECONDS")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			return time.Duration(parsed) * time.Second
		}
	}
	return 30 * time.Second
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	default:
		return "local"
	}
}
