package main

import (
	"database/sql"
	"log"
	"os"
	"strings"
	"water-distribution-service/internal/adapters/repositories"
	"water-distribution-service/internal/config"
	"water-distribution-service/internal/platform/db"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	conn, dialect, err := db.Open("pgx", databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	seedPath := config.Get("SEED_PATH", "data/seeds/dataset.json")
	if err := initAndSeed(conn, dialect, seedPath); err != nil {
		log.Fatal(err)
	}
}

func initAndSeed(conn *sql.DB, dialect db.Dialect, seedPath string) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(conn); err != nil {
		return err
	}
	log.Println("Schema ready.")

	log.Printf("Seeding database from %s...", seedPath)
	if err := repositories.SeedFromJSON(conn, dialect, seedPath); err != nil {
		return err
	}
	log.Println("Seeding complete.")

	return nil
}
