package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"delivery-agent-service/internal/api/dto"
	"delivery-agent-service/internal/services"
)

type BenchmarkHandler struct {
	MapsDir    string
	DefaultMap string
}

// Run benchmarks every search strategy over a map's start cell and its
// first package destination.
func (h *BenchmarkHandler) Run(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.BenchmarkRequest

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

	results, err := services.BenchmarkMap(mapPath)
	if err != nil {
		log.Printf("benchmark failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.BenchmarkResponse{
		Map:     req.Map,
		Results: make([]dto.BenchmarkEntryResponse, 0, len(results)),
	}
	for _, b := range results {
		res.Results = append(res.Results, dto.BenchmarkEntryResponse{
			Name:           b.Name,
			PathFound:      b.PathFound,
			PathLength:     b.PathLength,
			TotalCost:      b.TotalCost,
			NodesExpanded:  b.NodesExpanded,
			DurationMicros: b.Duration.Microseconds(),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
