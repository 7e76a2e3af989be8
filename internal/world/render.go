package world

import (
	"strconv"
	"strings"

	"delivery-agent-service/internal/domain"
)

// Render returns a text view of the grid at the given time. A marks the agent
// (when non-nil), X a blocked cell, D a delivery point, S the start cell;
// every other cell shows its terrain cost ('#' for costs above one digit).
func (w *GridWorld) Render(agent *domain.Position, time int) string {
	deliveries := make(map[domain.Position]struct{}, len(w.Packages))
	for _, dest := range w.Packages {
		deliveries[dest] = struct{}{}
	}

	var b strings.Builder
	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			if x > 0 {
				b.WriteByte(' ')
			}

			p := domain.Position{X: x, Y: y}
			switch {
			case agent != nil && *agent == p:
				b.WriteByte('A')
			case w.IsBlocked(p, time):
				b.WriteByte('X')
			case hasKey(deliveries, p):
				b.WriteByte('D')
			case p == w.Start:
				b.WriteByte('S')
			default:
				cost := w.TerrainCost(p)
				if cost > 9 {
					b.WriteByte('#')
				} else {
					b.WriteString(strconv.Itoa(cost))
				}
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func hasKey(set map[domain.Position]struct{}, p domain.Position) bool {
	_, ok := set[p]
	return ok
}
