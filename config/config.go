package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port       string
	Timezone   string
	DBPath     string
	DBDSN      string // MySQL DSN; when set it wins over DBPath
	JWTSecret  string
	TokenHours int
	SeedAdmin  bool
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:       get("PORT", "3001"),
		Timezone:   get("TZ", "Asia/Kolkata"),
		DBPath:     get("DB_PATH", "logitrack.db"),
		DBDSN:      get("DB_DSN", ""),
		JWTSecret:  get("API_SECRET", "logitrack-secret"),
		TokenHours: 12,
		SeedAdmin:  get("SEED_ADMIN", "true") == "true",
	}
	if v, err := strconv.Atoi(get("TOKEN_HOURS", "12")); err == nil && v > 0 {
		cfg.TokenHours = v
	}
	log.Printf("[cfg] port=%s db=%s dsn_set=%v", cfg.Port, cfg.DBPath, cfg.DBDSN != "")
	return cfg
}
