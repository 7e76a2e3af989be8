package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"delivery-agent-service/internal/api/dto"
	"delivery-agent-service/internal/ports"
	"delivery-agent-service/internal/services"
)

type SimulationHandler struct {
	Repo       ports.RunRepository
	MapsDir    string
	DefaultMap string
}

// Run plans and executes one delivery simulation and returns its outcome.
func (h *SimulationHandler) Run(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.SimulationRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	mapPath, ok := resolveMapPath(h.MapsDir, req.Map, h.DefaultMap)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "invalid map name")
		return
	}

	if req.FuelCapacity < 0 {
		writeError(w, r, http.StatusBadRequest, "fuel_capacity must not be negative")
		return
	}
	if req.MaxSteps < 0 || req.MaxSteps > 100000 {
		writeError(w, r, http.StatusBadRequest, "max_steps must be between 0 and 100000")
		return
	}

	svcReq := services.RunSimulationRequest{
		MapPath:      mapPath,
		Strategy:     req.Algorithm,
		Heuristic:    req.Heuristic,
		FuelCapacity: req.FuelCapacity,
		MaxSteps:     req.MaxSteps,
		Seed:         req.Seed,
	}

	res, err := services.RunSimulation(r.Context(), svcReq, h.Repo)
	if err != nil {
		log.Printf("run simulation failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	path := make([]dto.CellResponse, 0, len(res.Status.Path))
	for _, p := range res.Status.Path {
		path = append(path, dto.CellResponse{X: p.X, Y: p.Y})
	}

	writeJSON(w, r, http.StatusOK, dto.SimulationResponse{
		RunID:         res.RunID,
		Map:           res.MapName,
		Algorithm:     res.Strategy,
		Heuristic:     res.Heuristic,
		FinalState:    res.FinalState,
		DeliveredIDs:  res.Status.Delivered,
		TotalPackages: res.TotalPackages,
		TotalCost:     res.Status.TotalCost,
		TotalTime:     res.Status.TotalTime,
		FuelRemaining: res.Status.FuelRemaining,
		PlannedSteps:  res.PlannedSteps,
		Path:          path,
	})
}

// resolveMapPath confines the requested map name to the maps directory. Only
// bare file names are accepted; path separators and traversal are rejected.
func resolveMapPath(mapsDir, name, fallback string) (string, bool) {
	if strings.TrimSpace(name) == "" {
		name = fallback
	}
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", false
	}
	return filepath.Join(mapsDir, name), true
}
