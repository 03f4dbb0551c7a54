package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Get returns the environment value for key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Int reads a positive integer. Malformed values are logged and fall back.
func Int(key string, fallback int) int {
	raw := Get(key, "")
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		log.Printf("config ignored key=%s raw=%q reason=not a positive integer fallback=%d", key, raw, fallback)
		return fallback
	}
	return n
}

// Duration reads a time.ParseDuration value such as "10m". Zero is allowed.
func Duration(key string, fallback time.Duration) time.Duration {
	raw := Get(key, "")
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		log.Printf("config ignored key=%s raw=%q reason=not a duration fallback=%s", key, raw, fallback)
		return fallback
	}
	return d
}

// Server holds the settings of cmd/server.
type Server struct {
	Port            string
	DBPath          string
	DatabaseURL     string
	SeedPath        string
	TankersPath     string
	RedisURL        string
	SummaryCacheTTL time.Duration
	SummaryWorkers  int
}

func LoadServer() Server {
	return Server{
		Port:            Get("PORT", "8080"),
		DBPath:          Get("DB_PATH", "data/app.db"),
		DatabaseURL:     Get("DATABASE_URL", ""),
		SeedPath:        Get("SEED_PATH", "data/seeds/dataset.json"),
		TankersPath:     Get("TANKERS_PATH", ""),
		RedisURL:        Get("REDIS_URL", ""),
		SummaryCacheTTL: Duration("SUMMARY_CACHE_TTL", 10*time.Minute),
		SummaryWorkers:  Int("SUMMARY_WORKERS", 4),
	}
}

// Driver picks Postgres when DATABASE_URL is set, SQLite otherwise.
func (s Server) Driver() (driver, dsn string) {
	if s.DatabaseURL != "" {
		return "pgx", s.DatabaseURL
	}
	return "sqlite", s.DBPath
}

func (s Server) String() string {
	driver, _ := s.Driver()
	return fmt.Sprintf("port=%s driver=%s seed=%s tankers=%q redis=%t cache_ttl=%s workers=%d",
		s.Port, driver, s.SeedPath, s.TankersPath, s.RedisURL != "", s.SummaryCacheTTL, s.SummaryWorkers)
}
