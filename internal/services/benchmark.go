package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"delivery-agent-service/internal/adapters/mapfile"
	"delivery-agent-service/internal/domain"
	"delivery-agent-service/internal/ports"
	"delivery-agent-service/internal/search"
	"delivery-agent-service/internal/world"
)

// BenchmarkResult reports one strategy's performance over a start/goal pair.
type BenchmarkResult struct {
	Name          string
	PathFound     bool
	PathLength    int
	TotalCost     int
	NodesExpanded int
	Duration      time.Duration
}

// BenchmarkSearch runs every search strategy over the same start/goal pair
// and reports per-strategy diagnostics.
func BenchmarkSearch(w *world.GridWorld, start, goal domain.Position) []BenchmarkResult {
	finders := []struct {
		name   string
		finder ports.PathFinder
	}{
		{"bfs", search.NewBFS(w)},
		{"ucs", search.NewUniformCost(w)},
		{"astar-manhattan", search.NewAStar(w, "manhattan")},
		{"astar-euclidean", search.NewAStar(w, "euclidean")},
		{"astar-chebyshev", search.NewAStar(w, "chebyshev")},
	}

	out := make([]BenchmarkResult, 0, len(finders))
	for _, f := range finders {
		began := time.Now()
		path, ok := f.finder.Search(start, goal)
		elapsed := time.Since(began)

		res := BenchmarkResult{
			Name:          f.name,
			PathFound:     ok,
			NodesExpanded: f.finder.NodesExpanded(),
			Duration:      elapsed,
		}
		if ok {
			res.PathLength = len(path)
			for _, p := range path[1:] {
				res.TotalCost += w.TerrainCost(p)
			}
		}
		out = append(out, res)
	}
	return out
}

// BenchmarkMap loads a map and benchmarks every strategy from the map's
// start cell to the lowest-id package's destination.
func BenchmarkMap(mapPath string) ([]BenchmarkResult, error) {
	w, err := mapfile.Load(mapPath)
	if err != nil {
		return nil, fmt.Errorf("benchmark map: %w", err)
	}

	if len(w.Packages) == 0 {
		return nil, errors.New("benchmark map: map has no packages")
	}

	ids := make([]int, 0, len(w.Packages))
	for id := range w.Packages {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	goal := w.Packages[ids[0]]

	return BenchmarkSearch(w, w.Start, goal), nil
}
