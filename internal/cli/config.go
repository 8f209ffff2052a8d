package cli

import (
	"log"
	"os"
	"path/filepath"
	"time"
)

func envOr(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func defaultDBPath() string {
	return envOr("DB_PATH", filepath.Join("data", "febra.db"))
}

func defaultLocalesDir() string {
	return envOr("LOCALES_DIR", filepath.Join("internal", "i18n", "locales"))
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}
