package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Store driver names accepted in STORE_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
	DriverMemory   = "memory"
)

// Config contains runtime configuration required by the service.
type Config struct {
	Addr            string
	StoreDriver     string
	DBURL           string
	MongoURI        string
	MongoDatabase   string
	MongoCollection string
	SaveTimeout     time.Duration
}

// Load reads values from environment variables.
//
//	HTTP_ADDR        listen address            (default ":8080")
//	STORE_DRIVER     postgres | mongo | memory (default "postgres")
//	DB_URL           Postgres URL, required for the postgres driver
//	MONGO_URI        Mongo URI                 (default "mongodb://mongo:27017")
//	MONGO_DB         Mongo database            (default "surveys")
//	MONGO_COLLECTION Mongo collection          (default "responses")
//	SAVE_TIMEOUT     per-save deadline         (default "5s")
func Load() (Config, error) {
	driver := strings.TrimSpace(os.Getenv("STORE_DRIVER"))
	if driver == "" {
		driver = DriverPostgres
	}

	cfg := Config{
		Addr:            envOrDefault("HTTP_ADDR", ":8080"),
		StoreDriver:     driver,
		DBURL:           strings.TrimSpace(os.Getenv("DB_URL")),
		MongoURI:        envOrDefault("MONGO_URI", "mongodb://mongo:27017"),
		MongoDatabase:   envOrDefault("MONGO_DB", "surveys"),
		MongoCollection: envOrDefault("MONGO_COLLECTION", "responses"),
		SaveTimeout:     5 * time.Second,
	}

	switch driver {
	case DriverPostgres:
		if cfg.DBURL == "" {
			return Config{}, errors.New("DB_URL required for the postgres driver")
		}
	case DriverMongo, DriverMemory:
	default:
		return Config{}, fmt.Errorf("unknown STORE_DRIVER %q", driver)
	}

	if raw := strings.TrimSpace(os.Getenv("SAVE_TIMEOUT")); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil || parsed <= 0 {
			return Config{}, fmt.Errorf("SAVE_TIMEOUT must be a positive duration, got %q", raw)
		}
		cfg.SaveTimeout = parsed
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
