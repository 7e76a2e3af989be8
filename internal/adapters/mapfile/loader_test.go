package mapfile

import (
	"path/filepath"
	"strings"
	"testing"

	"delivery-agent-service/internal/domain"
	"delivery-agent-service/internal/world"
)

const sampleMap = `# sample
SIZE:
4 3
START:
0 0
PACKAGES:
1:3:2 2:1:1
TERRAIN:
1 1 2 2
1 3 3 1
1 1 1 1
OBSTACLES:
STATIC: 2:0 3:1
DYNAMIC:patrol:1:2:right:2
DYNAMIC:guard:0:1:down
`

func TestParseSampleMap(t *testing.T) {
	w, err := Parse(strings.NewReader(sampleMap))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if w.Width != 4 || w.Height != 3 {
		t.Fatalf("size = %dx%d, want 4x3", w.Width, w.Height)
	}
	if w.Start != (domain.Position{X: 0, Y: 0}) {
		t.Errorf("start = %v, want (0,0)", w.Start)
	}

	if len(w.Packages) != 2 {
		t.Fatalf("packages = %v, want 2 entries", w.Packages)
	}
	if w.Packages[1] != (domain.Position{X: 3, Y: 2}) {
		t.Errorf("package 1 = %v, want (3,2)", w.Packages[1])
	}
	if w.Packages[2] != (domain.Position{X: 1, Y: 1}) {
		t.Errorf("package 2 = %v, want (1,1)", w.Packages[2])
	}

	// Rows are assigned top-to-bottom.
	if got := w.TerrainCost(domain.Position{X: 2, Y: 0}); got != world.GrassCost {
		t.Errorf("terrain (2,0) = %d, want %d", got, world.GrassCost)
	}
	if got := w.TerrainCost(domain.Position{X: 1, Y: 1}); got != world.MudCost {
		t.Errorf("terrain (1,1) = %d, want %d", got, world.MudCost)
	}
	if got := w.TerrainCost(domain.Position{X: 0, Y: 2}); got != world.RoadCost {
		t.Errorf("terrain (0,2) = %d, want %d", got, world.RoadCost)
	}

	if !w.IsBlocked(domain.Position{X: 2, Y: 0}, 5) {
		t.Error("static obstacle (2,0) not blocked")
	}
	if !w.IsBlocked(domain.Position{X: 3, Y: 1}, 0) {
		t.Error("static obstacle (3,1) not blocked")
	}
	if w.DynamicObstacleCount() != 2 {
		t.Errorf("dynamic obstacles = %d, want 2", w.DynamicObstacleCount())
	}
}

func TestParseSkipsMalformedLines(t *testing.T) {
	input := `SIZE:
5 5
not a size line
START:
1 1
x y
PACKAGES:
bogus 1:2:2 9:not:numeric
OBSTACLES:
STATIC: 3 4:4 1:1
DYNAMIC:broken
DYNAMIC:ok:0:0:up:3
`
	w, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if w.Width != 5 || w.Height != 5 {
		t.Errorf("size = %dx%d, want 5x5", w.Width, w.Height)
	}
	if w.Start != (domain.Position{X: 1, Y: 1}) {
		t.Errorf("start = %v, want (1,1)", w.Start)
	}
	if len(w.Packages) != 1 {
		t.Fatalf("packages = %v, want only the valid token", w.Packages)
	}
	if w.StaticObstacleCount() != 2 {
		t.Errorf("static obstacles = %d, want 2", w.StaticObstacleCount())
	}
	if w.DynamicObstacleCount() != 1 {
		t.Errorf("dynamic obstacles = %d, want 1", w.DynamicObstacleCount())
	}
}

func TestParseDynamicDefaults(t *testing.T) {
	input := `SIZE:
3 3
OBSTACLES:
DYNAMIC:walker:1:1:left
`
	w, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if w.DynamicObstacleCount() != 1 {
		t.Fatalf("dynamic obstacles = %d, want 1", w.DynamicObstacleCount())
	}

	// Default interval is 1: first step is taken at t=0.
	if w.IsBlocked(domain.Position{X: 1, Y: 1}, 0) {
		t.Error("walker still at start cell at t=0")
	}
	if !w.IsBlocked(domain.Position{X: 0, Y: 1}, 0) {
		t.Error("walker not at (0,1) at t=0")
	}
}

func TestParseTruncatesOversizedTerrain(t *testing.T) {
	input := `SIZE:
2 2
TERRAIN:
3 3 3 3
3 3 3 3
3 3 3 3
`
	w, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if w.Width != 2 || w.Height != 2 {
		t.Fatalf("size = %dx%d, want 2x2", w.Width, w.Height)
	}
	if got := w.TerrainCost(domain.Position{X: 1, Y: 1}); got != world.MudCost {
		t.Errorf("terrain (1,1) = %d, want %d", got, world.MudCost)
	}
	// Out-of-grid cells still report the impassable sentinel.
	if got := w.TerrainCost(domain.Position{X: 2, Y: 2}); got != world.ImpassableCost {
		t.Errorf("terrain (2,2) = %d, want %d", got, world.ImpassableCost)
	}
}

func TestLoadFixture(t *testing.T) {
	w, err := Load(filepath.Join("testdata", "demo.map"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if w.Width != 5 || w.Height != 4 {
		t.Fatalf("size = %dx%d, want 5x4", w.Width, w.Height)
	}
	if w.Packages[1] != (domain.Position{X: 4, Y: 3}) {
		t.Errorf("package 1 = %v, want (4,3)", w.Packages[1])
	}
	if got := w.TerrainCost(domain.Position{X: 3, Y: 3}); got != world.MudCost {
		t.Errorf("terrain (3,3) = %d, want %d", got, world.MudCost)
	}
	if !w.IsBlocked(domain.Position{X: 2, Y: 0}, 0) {
		t.Error("static obstacle (2,0) not blocked")
	}
	if w.DynamicObstacleCount() != 1 {
		t.Errorf("dynamic obstacles = %d, want 1", w.DynamicObstacleCount())
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("does-not-exist.map"); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
