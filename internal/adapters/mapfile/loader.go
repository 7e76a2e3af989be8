// Package mapfile loads grid worlds from the sectioned text map format:
//
//	SIZE:
//	10 10
//	START:
//	0 0
//	PACKAGES:
//	1:5:5 2:8:2
//	TERRAIN:
//	1 1 2 3 ...
//	OBSTACLES:
//	STATIC: 3:3 4:4
//	DYNAMIC:patrol:2:2:right:2
//
// Blank lines and lines starting with '#' are ignored. Unrecognized sections
// and malformed lines are skipped rather than failing the load, so a
// partially valid file still produces a usable world.
package mapfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"delivery-agent-service/internal/domain"
	"delivery-agent-service/internal/world"
)

// Load reads and parses a map file.
func Load(path string) (*world.GridWorld, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load map: %w", err)
	}
	defer f.Close()

	w, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("load map %q: %w", path, err)
	}
	return w, nil
}

type mapSpec struct {
	width, height int
	start         domain.Position
	packages      map[int]domain.Position
	terrain       [][]int
	static        []domain.Position
	dynamic       []*world.DynamicObstacle
}

// Parse reads the map format from r and builds a grid world.
func Parse(r io.Reader) (*world.GridWorld, error) {
	sp := mapSpec{width: 1, height: 1, packages: make(map[int]domain.Position)}

	section := ""
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasSuffix(line, ":") && !strings.Contains(strings.TrimSuffix(line, ":"), ":") {
			section = strings.ToUpper(strings.TrimSuffix(line, ":"))
			continue
		}

		switch section {
		case "SIZE":
			sp.parseSize(line)
		case "START":
			sp.parseStart(line)
		case "PACKAGES":
			sp.parsePackages(line)
		case "TERRAIN":
			sp.parseTerrainRow(line)
		case "OBSTACLES":
			sp.parseObstacle(line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("parse map: %w", err)
	}

	return sp.build(), nil
}

func (sp *mapSpec) parseSize(line string) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return
	}
	w, err1 := strconv.Atoi(fields[0])
	h, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil || w < 1 || h < 1 {
		return
	}
	sp.width, sp.height = w, h
}

func (sp *mapSpec) parseStart(line string) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return
	}
	x, err1 := strconv.Atoi(fields[0])
	y, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil {
		return
	}
	sp.start = domain.Position{X: x, Y: y}
}

// parsePackages handles whitespace-separated id:x:y tokens.
func (sp *mapSpec) parsePackages(line string) {
	for _, token := range strings.Fields(line) {
		parts := strings.Split(token, ":")
		if len(parts) != 3 {
			continue
		}
		id, err1 := strconv.Atoi(parts[0])
		x, err2 := strconv.Atoi(parts[1])
		y, err3 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil || err3 != nil {
			continue
		}
		sp.packages[id] = domain.Position{X: x, Y: y}
	}
}

// parseTerrainRow appends one row of cell costs. Rows are assigned
// top-to-bottom in file order; extra rows or columns beyond the declared
// size are dropped at build time.
func (sp *mapSpec) parseTerrainRow(line string) {
	fields := strings.Fields(line)
	row := make([]int, 0, len(fields))
	for _, f := range fields {
		cost, err := strconv.Atoi(f)
		if err != nil || cost < 0 {
			return
		}
		row = append(row, cost)
	}
	sp.terrain = append(sp.terrain, row)
}

func (sp *mapSpec) parseObstacle(line string) {
	switch {
	case strings.HasPrefix(line, "STATIC:"):
		for _, token := range strings.Fields(strings.TrimPrefix(line, "STATIC:")) {
			parts := strings.Split(token, ":")
			if len(parts) != 2 {
				continue
			}
			x, err1 := strconv.Atoi(parts[0])
			y, err2 := strconv.Atoi(parts[1])
			if err1 != nil || err2 != nil {
				continue
			}
			sp.static = append(sp.static, domain.Position{X: x, Y: y})
		}

	case strings.HasPrefix(line, "DYNAMIC:"):
		// DYNAMIC:name:x:y:direction[:interval]
		parts := strings.Split(strings.TrimPrefix(line, "DYNAMIC:"), ":")
		if len(parts) < 4 {
			return
		}
		name := strings.TrimSpace(parts[0])
		x, err1 := strconv.Atoi(strings.TrimSpace(parts[1]))
		y, err2 := strconv.Atoi(strings.TrimSpace(parts[2]))
		dir, okDir := domain.ParseDirection(strings.ToLower(strings.TrimSpace(parts[3])))
		if name == "" || err1 != nil || err2 != nil || !okDir {
			return
		}
		interval := 1
		if len(parts) > 4 {
			if v, err := strconv.Atoi(strings.TrimSpace(parts[4])); err == nil && v >= 1 {
				interval = v
			}
		}
		sp.dynamic = append(sp.dynamic, world.NewDynamicObstacle(
			name,
			domain.Position{X: x, Y: y},
			[]domain.Direction{dir},
			interval,
		))
	}
}

func (sp *mapSpec) build() *world.GridWorld {
	w := world.New(sp.width, sp.height)
	w.Start = sp.start

	for y, row := range sp.terrain {
		if y >= sp.height {
			break
		}
		for x, cost := range row {
			if x >= sp.width {
				break
			}
			w.SetTerrain(domain.Position{X: x, Y: y}, cost)
		}
	}
	for id, dest := range sp.packages {
		w.AddPackage(id, dest)
	}
	for _, p := range sp.static {
		w.AddStaticObstacle(p)
	}
	for _, o := range sp.dynamic {
		w.AddDynamicObstacle(o)
	}
	return w
}
