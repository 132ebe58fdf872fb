package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Upload limits
	MaxUploadBytes int64 // per-file upload size limit
	MaxCodeFiles   int   // maximum number of code files per analysis

	// Extraction
	PreviewPages int // number of PDF pages extracted, 0 = all

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default: "Reprocheck"
	SiteTagline string // env: SITE_TAGLINE
	SiteFooter  string // env: SITE_FOOTER
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:            getEnv("ENV", "development"),
		ServerAddr:     getEnv("SERVER_ADDR", ":3000"),
		BaseURL:        getEnv("BASE_URL", "http://localhost:3000"),
		CORSOrigins:    getEnv("CORS_ORIGINS", ""),
		MaxUploadBytes: getEnvInt64("MAX_UPLOAD_BYTES", 16<<20),
		MaxCodeFiles:   getEnvInt("MAX_CODE_FILES", 20),
		PreviewPages:   getEnvInt("PDF_PREVIEW_PAGES", 2),

		SiteTitle:   getEnv("SITE_TITLE", "Reprocheck"),
		SiteTagline: getEnv("SITE_TAGLINE", "Check your paper against your code"),
		SiteFooter:  getEnv("SITE_FOOTER", "Reprocheck - ML reproducibility audit"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}
