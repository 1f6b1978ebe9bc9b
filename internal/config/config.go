// internal/config/config.go
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the kiosk reads from the environment.
type Config struct {
	Port string

	// DataSource selects the backing store: "postgres" or "file".
	DataSource  string
	DatabaseURL string
	DataDir     string

	ShopName string

	JWTSecret         string
	JWTExpiresMinutes int

	GatewayLatency time.Duration
	ChargeTimeout  time.Duration

	// OTLPEndpoint enables trace export when set.
	OTLPEndpoint string
}

// Load reads the environment, with .env as a fallback for local runs.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		DataSource:        getEnv("DATA_SOURCE", "file"),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		DataDir:           getEnv("DATA_DIR", "data"),
		ShopName:          getEnv("SHOP_NAME", "OOP Caffee"),
		JWTSecret:         getEnv("JWT_SECRET", "dev-secret-change-me"),
		JWTExpiresMinutes: getEnvInt("JWT_EXPIRES_MINUTES", 480),
		GatewayLatency:    getEnvDuration("GATEWAY_LATENCY", 2*time.Second),
		ChargeTimeout:     getEnvDuration("CHARGE_TIMEOUT", 15*time.Second),
		OTLPEndpoint:      getEnv("OTLP_ENDPOINT", ""),
	}

	switch cfg.DataSource {
	case "postgres":
		if cfg.DatabaseURL == "" {
			log.Fatal("DATABASE_URL is required when DATA_SOURCE=postgres")
		}
	case "file":
	default:
		log.Fatalf("unknown DATA_SOURCE %q (want postgres or file)", cfg.DataSource)
	}

	return cfg
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
