package main

import (
	"log"

	"github.com/mirraashid/survey-response-service/internal/config"
	"github.com/mirraashid/survey-response-service/internal/httpserver"
	"github.com/mirraashid/survey-response-service/internal/store"
)

// main boots the service: config → store → schema → HTTP server.
func main() {
	// Load runtime config from environment (STORE_DRIVER, DB_URL, ...).
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Construct the store once and hand it down explicitly; handlers never
	// reach for a process-wide connection.
	st, err := newStore(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer st.Close()

	// Build HTTP router (probes + submission API).
	router := httpserver.NewRouter(cfg, st)

	log.Printf("server started on %s (store driver: %s)", cfg.Addr, cfg.StoreDriver)
	log.Fatal(router.Run(cfg.Addr))
}

// newStore selects and initializes the configured backend.
func newStore(cfg config.Config) (store.Store, error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		pg, err := store.NewPostgresStore(cfg.DBURL)
		if err != nil {
			return nil, err
		}
		// Ensure required tables exist so `docker compose up --build` is enough.
		if err := pg.EnsureSchema(); err != nil {
			pg.Close()
			return nil, err
		}
		return pg, nil
	case config.DriverMongo:
		return store.NewMongoStore(cfg.MongoURI, cfg.MongoDatabase, cfg.MongoCollection)
	default:
		return store.NewMemoryStore(), nil
	}
}
