package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	DBDSN    string
	MediaDir string
	LogFile  string

	// Fallback map center (Tunis) when the caller supplies no position.
	DefaultLat float64
	DefaultLng float64
}

func Load() Config {
	// .env is optional; real env vars win.
	_ = godotenv.Load()

	cfg := Config{
		Port:       getenv("PORT", "8080"),
		DBDSN:      getenv("DB_DSN", "pharmafinder.db"),
		MediaDir:   getenv("MEDIA_DIR", "./web/media"),
		LogFile:    getenv("LOG_FILE", "./pharmafinder.log"),
		DefaultLat: getfloat("DEFAULT_LAT", 36.8065),
		DefaultLng: getfloat("DEFAULT_LNG", 10.1815),
	}
	log.Printf("[config] PORT=%s DB_DSN=%s MEDIA_DIR=%s LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.MediaDir, cfg.LogFile)
	return cfg
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getfloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("[config] ignoring bad %s=%q", key, v)
	}
	return def
}
