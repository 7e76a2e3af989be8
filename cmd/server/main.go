package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	"delivery-agent-service/internal/adapters/repositories"
	"delivery-agent-service/internal/api"
	"delivery-agent-service/internal/config"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires the SQLite run store behind its port and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	mapsDir := config.Get("MAPS_DIR", "data/maps")
	defaultMap := config.Get("DEFAULT_MAP", "small.map")
	port := config.Get("PORT", "8080")

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Initialize the run-history schema on startup for local runs.
	if err := repositories.InitSchema(db); err != nil {
		log.Fatal(err)
	}

	repo := repositories.NewSqliteRunRepository(db)
	router := api.NewRouter(repo, mapsDir, defaultMap)

	// The write timeout leaves headroom for large-map simulations.
	log.Printf("Server listening addr=:%s maps=%s", port, mapsDir)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}
