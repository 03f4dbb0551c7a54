package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"
	"water-distribution-service/internal/adapters/cache"
	"water-distribution-service/internal/adapters/repositories"
	"water-distribution-service/internal/api"
	"water-distribution-service/internal/config"
	"water-distribution-service/internal/platform/db"
	"water-distribution-service/internal/ports"
	"water-distribution-service/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (SQLite or Postgres, SQL or Redis cache) behind
// ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg := config.LoadServer()
	log.Printf("config %s", cfg)

	catalog, err := config.LoadTankerCatalog(cfg.TankersPath)
	if err != nil {
		log.Fatal(err)
	}

	driver, dsn := cfg.Driver()
	conn, dialect, err := db.Open(driver, dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	// Initialize schema and seed reference data on startup.
	if err := initAndSeed(conn, dialect, cfg.SeedPath); err != nil {
		log.Fatal(err)
	}

	repo := repositories.NewSQLRepository(conn, dialect)
	planner := services.NewPlanner(repo, repo, catalog)
	planner.Workers = cfg.SummaryWorkers

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	summaryCache, closeCache, err := openSummaryCache(ctx, cfg, conn, dialect)
	cancel()
	if err != nil {
		log.Fatal(err)
	}
	defer closeCache()
	planner.Cache = summaryCache

	router := api.NewRouter(planner)

	log.Printf("Server listening addr=:%s", cfg.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func initAndSeed(conn *sql.DB, dialect db.Dialect, seedPath string) error {
	if err := repositories.InitSchema(conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(conn, dialect, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}

// openSummaryCache prefers Redis when REDIS_URL is set and falls back to the
// summary_cache table. SQL entries are purged since the reference data was just
// reseeded; Redis keys are namespaced by the dataset fingerprint instead.
func openSummaryCache(ctx context.Context, cfg config.Server, conn *sql.DB, dialect db.Dialect) (ports.SummaryCache, func(), error) {
	if cfg.RedisURL != "" {
		version, err := repositories.DatasetFingerprint(cfg.SeedPath)
		if err != nil {
			return nil, nil, err
		}
		rc, err := cache.NewRedisSummaryCache(ctx, cfg.RedisURL, version, cfg.SummaryCacheTTL)
		if err != nil {
			return nil, nil, err
		}
		log.Printf("summary cache backend=redis ttl=%s namespace=%s", cfg.SummaryCacheTTL, version)
		return rc, func() { rc.Close() }, nil
	}

	sc := cache.NewSQLSummaryCache(conn, dialect, cfg.SummaryCacheTTL)
	if err := sc.InitSchema(ctx); err != nil {
		return nil, nil, err
	}
	if err := sc.Purge(ctx); err != nil {
		return nil, nil, err
	}
	log.Printf("summary cache backend=sql ttl=%s", cfg.SummaryCacheTTL)
	return sc, func() {}, nil
}
