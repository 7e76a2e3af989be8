package handlers

import (
	"log"
	"net/http"
	"strconv"

	"delivery-agent-service/internal/api/dto"
	"delivery-agent-service/internal/ports"
)

type RunsHandler struct {
	Repo ports.RunRepository
}

// List returns the most recent simulation runs, newest first.
func (h *RunsHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > 200 {
			writeError(w, r, http.StatusBadRequest, "limit must be between 1 and 200")
			return
		}
		limit = v
	}

	runs, err := h.Repo.ListRuns(r.Context(), limit)
	if err != nil {
		log.Printf("list runs failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListRunsResponse{Runs: make([]dto.RunResponse, 0, len(runs))}
	for _, rec := range runs {
		res.Runs = append(res.Runs, dto.RunResponse{
			RunID:          rec.RunID,
			MapName:        rec.MapName,
			Strategy:       rec.Strategy,
			Heuristic:      rec.Heuristic,
			DeliveredCount: rec.DeliveredCount,
			TotalCost:      rec.TotalCost,
			TotalTime:      rec.TotalTime,
			FuelRemaining:  rec.FuelRemaining,
			PathLength:     rec.PathLength,
			FinalState:     rec.FinalState,
			CreatedAt:      rec.CreatedAt,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
