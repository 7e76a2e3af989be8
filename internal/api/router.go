package api

import (
	"net/http"

	"delivery-agent-service/internal/api/handlers"
	"delivery-agent-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware of
// concrete adapters).
func NewRouter(repo ports.RunRepository, mapsDir, defaultMap string) http.Handler {
	mux := http.NewServeMux()

	simHandler := &handlers.SimulationHandler{
		Repo:       repo,
		MapsDir:    mapsDir,
		DefaultMap: defaultMap,
	}
	benchHandler := &handlers.BenchmarkHandler{
		MapsDir:    mapsDir,
		DefaultMap: defaultMap,
	}
	runsHandler := &handlers.RunsHandler{Repo: repo}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/simulations", simHandler.Run)
	mux.HandleFunc("/benchmarks", benchHandler.Run)
	mux.HandleFunc("/runs", runsHandler.List)

	return loggingMiddleware(mux)
}
