package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"blog/pkg/models"

	"github.com/joho/godotenv"
)

var (
	ContentPath = "./content"
	PublicPath  = "./public"
	SiteURL     = "/site/"

	// Language settings
	DefaultLanguage = "en"
	Languages       = []string{"en"}

	// Publication settings
	PreviewFuture = false

	// Server settings
	Port          = "8080"
	SessionSecret = "change-me"
	SessionName   = "blog-search"
	LogLevel      = "info"
)

func Init() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	// Helper to get env with default
	getEnv := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fallback
	}

	ContentPath = getEnv("CONTENT_PATH", "./content")
	PublicPath = getEnv("PUBLIC_PATH", "./public")

	DefaultLanguage = getEnv("DEFAULT_LANGUAGE", "en")
	Languages = SplitList(getEnv("LANGUAGES", DefaultLanguage))

	Port = getEnv("PORT", "8080")
	SessionSecret = getEnv("SESSION_SECRET", "change-me")
	LogLevel = getEnv("LOG_LEVEL", "info")

	PreviewFuture = false
	if val, err := strconv.ParseBool(getEnv("PREVIEW_FUTURE", "false")); err == nil {
		PreviewFuture = val
	}
}

// SplitList splits a comma separated env value, dropping blanks.
func SplitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ApplySite fills language settings from the site file. Values set through
// the environment win.
func ApplySite(site *models.SiteConfig) {
	if site == nil {
		return
	}
	if os.Getenv("DEFAULT_LANGUAGE") == "" && site.DefaultLanguage != "" {
		DefaultLanguage = site.DefaultLanguage
	}
	if os.Getenv("LANGUAGES") == "" && len(site.Languages) > 0 {
		Languages = site.Languages
	}
}
