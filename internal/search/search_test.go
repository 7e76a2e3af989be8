package search

import (
	"testing"

	"delivery-agent-service/internal/domain"
	"delivery-agent-service/internal/ports"
	"delivery-agent-service/internal/world"
)

func openGrid(size int) *world.GridWorld {
	return world.New(size, size)
}

func pathCost(w *world.GridWorld, p domain.Path) int {
	total := 0
	for _, pos := range p[1:] {
		total += w.TerrainCost(pos)
	}
	return total
}

func TestAllStrategiesOnOpenGrid(t *testing.T) {
	w := openGrid(5)
	start := domain.Position{X: 0, Y: 0}
	goal := domain.Position{X: 4, Y: 4}

	finders := map[string]ports.PathFinder{
		"bfs":             NewBFS(w),
		"ucs":             NewUniformCost(w),
		"astar-manhattan": NewAStar(w, "manhattan"),
		"astar-euclidean": NewAStar(w, "euclidean"),
		"astar-chebyshev": NewAStar(w, "chebyshev"),
	}

	for name, finder := range finders {
		path, ok := finder.Search(start, goal)
		if !ok {
			t.Fatalf("%s: no path found", name)
		}
		if path[0] != start {
			t.Errorf("%s: first cell = %v, want %v", name, path[0], start)
		}
		if path[len(path)-1] != goal {
			t.Errorf("%s: last cell = %v, want %v", name, path[len(path)-1], goal)
		}
		// 8 moves on a 5x5 grid: 9 cells.
		if len(path) != 9 {
			t.Errorf("%s: path length = %d, want 9", name, len(path))
		}
		if finder.NodesExpanded() == 0 {
			t.Errorf("%s: nodes expanded = 0, want > 0", name)
		}
	}
}

func TestUCSAndAStarCostOptimal(t *testing.T) {
	// A mud band down column 2 makes the straight route expensive.
	w := openGrid(6)
	for y := 0; y < 5; y++ {
		w.SetTerrain(domain.Position{X: 2, Y: y}, world.MudCost)
	}

	start := domain.Position{X: 0, Y: 0}
	goal := domain.Position{X: 5, Y: 0}

	ucsPath, ok := NewUniformCost(w).Search(start, goal)
	if !ok {
		t.Fatal("ucs: no path found")
	}
	ucsCost := pathCost(w, ucsPath)

	for _, h := range []string{"manhattan", "euclidean", "chebyshev"} {
		astarPath, ok := NewAStar(w, h).Search(start, goal)
		if !ok {
			t.Fatalf("astar-%s: no path found", h)
		}
		if got := pathCost(w, astarPath); got > ucsCost {
			t.Errorf("astar-%s cost = %d, worse than ucs cost %d", h, got, ucsCost)
		}
	}
}

func TestUnknownHeuristicDegradesToUniformCost(t *testing.T) {
	w := openGrid(6)
	w.SetTerrain(domain.Position{X: 1, Y: 0}, world.MudCost)

	start := domain.Position{X: 0, Y: 0}
	goal := domain.Position{X: 5, Y: 5}

	ucsPath, ok := NewUniformCost(w).Search(start, goal)
	if !ok {
		t.Fatal("ucs: no path found")
	}

	zeroPath, ok := NewAStar(w, "bogus").Search(start, goal)
	if !ok {
		t.Fatal("astar-bogus: no path found")
	}

	if got, want := pathCost(w, zeroPath), pathCost(w, ucsPath); got != want {
		t.Fatalf("zero-heuristic cost = %d, want ucs cost %d", got, want)
	}
}

func TestUnreachableGoalIsNotAnError(t *testing.T) {
	// Wall across the whole grid.
	w := openGrid(5)
	for x := 0; x < 5; x++ {
		w.AddStaticObstacle(domain.Position{X: x, Y: 2})
	}

	start := domain.Position{X: 0, Y: 0}
	goal := domain.Position{X: 4, Y: 4}

	for name, finder := range map[string]ports.PathFinder{
		"bfs":   NewBFS(w),
		"ucs":   NewUniformCost(w),
		"astar": NewAStar(w, "manhattan"),
	} {
		if path, ok := finder.Search(start, goal); ok {
			t.Errorf("%s: found path %v across a solid wall", name, path)
		}
	}
}

func TestSearchCollectsPackages(t *testing.T) {
	w := openGrid(5)
	w.AddPackage(7, domain.Position{X: 2, Y: 0})

	path, ok := NewBFS(w).Search(domain.Position{X: 0, Y: 0}, domain.Position{X: 4, Y: 0})
	if !ok {
		t.Fatal("no path found")
	}

	// The straight route passes the package cell; the node expansion contract
	// records it along the way, which the multi-goal planner relies on.
	found := false
	for _, p := range path {
		if p == (domain.Position{X: 2, Y: 0}) {
			found = true
		}
	}
	if !found {
		t.Fatalf("path %v does not pass the package cell", path)
	}
}

func TestStrategyByName(t *testing.T) {
	w := openGrid(3)

	if _, ok := ByName("bfs", "", w).(*BFS); !ok {
		t.Error("ByName(bfs) did not return a BFS")
	}
	if _, ok := ByName("ucs", "", w).(*UniformCost); !ok {
		t.Error("ByName(ucs) did not return a UniformCost")
	}
	if _, ok := ByName("astar", "manhattan", w).(*AStar); !ok {
		t.Error("ByName(astar) did not return an AStar")
	}
	if _, ok := ByName("unknown", "manhattan", w).(*AStar); !ok {
		t.Error("ByName(unknown) did not fall back to AStar")
	}
}

func TestHeuristics(t *testing.T) {
	a := domain.Position{X: 0, Y: 0}
	b := domain.Position{X: 3, Y: 4}

	if got := Manhattan(a, b); got != 7 {
		t.Errorf("Manhattan = %v, want 7", got)
	}
	if got := Euclidean(a, b); got != 5 {
		t.Errorf("Euclidean = %v, want 5", got)
	}
	if got := Chebyshev(a, b); got != 4 {
		t.Errorf("Chebyshev = %v, want 4", got)
	}
	if got := HeuristicByName("nope")(a, b); got != 0 {
		t.Errorf("unknown heuristic = %v, want 0", got)
	}
}
