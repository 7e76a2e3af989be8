package world

import "delivery-agent-service/internal/domain"

// DynamicObstacle is a cell occupant that advances one step of its cyclic
// pattern every Interval ticks. It carries no mutable position: PositionAt
// replays the pattern from t=0 on every call, so predictions at times the
// simulation has not yet reached are deterministic and repeatable. Display
// code wanting a "current" position calls the same function.
type DynamicObstacle struct {
	Name     string
	Start    domain.Position
	Pattern  []domain.Direction
	Interval int
}

// NewDynamicObstacle builds an obstacle. Intervals below 1 are clamped to 1.
func NewDynamicObstacle(name string, start domain.Position, pattern []domain.Direction, interval int) *DynamicObstacle {
	if interval < 1 {
		interval = 1
	}
	return &DynamicObstacle{
		Name:     name,
		Start:    start,
		Pattern:  pattern,
		Interval: interval,
	}
}

// PositionAt predicts the obstacle's cell at absolute time t. The obstacle
// takes its first pattern step at t=0 and one further step each time another
// Interval ticks elapse.
func (o *DynamicObstacle) PositionAt(t int) domain.Position {
	if len(o.Pattern) == 0 || t < 0 {
		return o.Start
	}

	steps := t / o.Interval
	pos := o.Start
	for i := 0; i <= steps; i++ {
		dx, dy := o.Pattern[i%len(o.Pattern)].Delta()
		pos.X += dx
		pos.Y += dy
	}
	return pos
}
