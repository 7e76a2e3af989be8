package repair

import (
	"math/rand"
	"testing"

	"delivery-agent-service/internal/domain"
	"delivery-agent-service/internal/world"
)

func fixedRng() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func straightPath(length int) domain.Path {
	p := make(domain.Path, 0, length)
	for x := 0; x < length; x++ {
		p = append(p, domain.Position{X: x, Y: 0})
	}
	return p
}

func TestScorerPenalizesBlockedSteps(t *testing.T) {
	w := world.New(10, 10)
	s := Scorer{World: w, BlockPenalty: DefaultBlockPenalty}

	clear := straightPath(5)
	if got := s.Score(clear); got != 4 {
		t.Fatalf("clear path score = %d, want 4", got)
	}

	w.AddStaticObstacle(domain.Position{X: 2, Y: 0})
	if got := s.Score(clear); got != 4+DefaultBlockPenalty {
		t.Fatalf("blocked path score = %d, want %d", got, 4+DefaultBlockPenalty)
	}

	if got := s.Score(nil); got <= s.Score(clear) {
		t.Fatalf("empty path score = %d, must exceed any real candidate", got)
	}
}

func TestScorerIgnoresStartCell(t *testing.T) {
	w := world.New(5, 5)
	w.SetTerrain(domain.Position{X: 0, Y: 0}, world.MudCost)
	s := Scorer{World: w}

	// Only steps after the first are charged.
	if got := s.Score(straightPath(3)); got != 2 {
		t.Fatalf("score = %d, want 2", got)
	}
}

func TestHillClimberPreservesEndpoints(t *testing.T) {
	w := world.New(8, 8)
	w.AddStaticObstacle(domain.Position{X: 3, Y: 0})

	initial := straightPath(7)
	hc := NewHillClimber(w, fixedRng())

	start := domain.Position{X: 0, Y: 0}
	goal := domain.Position{X: 6, Y: 0}

	repaired, ok := hc.Repair(start, goal, initial)
	if !ok {
		t.Fatal("repair failed on a routable grid")
	}
	if repaired[0] != start || repaired[len(repaired)-1] != goal {
		t.Fatalf("endpoints changed: %v .. %v", repaired[0], repaired[len(repaired)-1])
	}
	if got, limit := hc.Scorer.Score(repaired), hc.Scorer.Score(initial); got > limit {
		t.Fatalf("repaired score = %d, worse than initial %d", got, limit)
	}
}

func TestHillClimberRoutesAroundObstacle(t *testing.T) {
	w := world.New(8, 8)
	w.AddStaticObstacle(domain.Position{X: 3, Y: 0})

	hc := NewHillClimber(w, fixedRng())
	repaired, ok := hc.Repair(domain.Position{X: 0, Y: 0}, domain.Position{X: 6, Y: 0}, straightPath(7))
	if !ok {
		t.Fatal("repair failed")
	}

	// The detour mechanism must be able to beat the blocked straight line.
	if got := hc.Scorer.Score(repaired); got >= DefaultBlockPenalty {
		t.Fatalf("repaired score = %d, still carries a block penalty", got)
	}
	for _, p := range repaired {
		if p == (domain.Position{X: 3, Y: 0}) {
			t.Fatalf("repaired path %v still crosses the obstacle", repaired)
		}
	}
}

func TestHillClimberSeedsWhenInitialEmpty(t *testing.T) {
	w := world.New(6, 6)
	hc := NewHillClimber(w, fixedRng())

	start := domain.Position{X: 0, Y: 0}
	goal := domain.Position{X: 5, Y: 5}

	repaired, ok := hc.Repair(start, goal, nil)
	if !ok {
		t.Fatal("repair with empty initial failed on an open grid")
	}
	if repaired[0] != start || repaired[len(repaired)-1] != goal {
		t.Fatalf("endpoints = %v .. %v", repaired[0], repaired[len(repaired)-1])
	}
}

func TestHillClimberUnreachableGoal(t *testing.T) {
	w := world.New(5, 5)
	for y := 0; y < 5; y++ {
		w.AddStaticObstacle(domain.Position{X: 2, Y: y})
	}

	hc := NewHillClimber(w, fixedRng())
	path, ok := hc.Repair(domain.Position{X: 0, Y: 0}, domain.Position{X: 4, Y: 0}, nil)
	if ok {
		t.Fatalf("repair crossed a solid wall: %v", path)
	}
	if path != nil {
		t.Fatalf("failed repair returned a path: %v", path)
	}
}

func TestAnnealerPreservesEndpoints(t *testing.T) {
	w := world.New(8, 8)
	initial := straightPath(7)

	an := NewAnnealer(w, fixedRng())
	start := domain.Position{X: 0, Y: 0}
	goal := domain.Position{X: 6, Y: 0}

	repaired, ok := an.Repair(start, goal, initial)
	if !ok {
		t.Fatal("repair failed")
	}
	if repaired[0] != start || repaired[len(repaired)-1] != goal {
		t.Fatalf("endpoints changed: %v .. %v", repaired[0], repaired[len(repaired)-1])
	}
	if got, limit := an.Scorer.Score(repaired), an.Scorer.Score(initial); got > limit {
		t.Fatalf("repaired score = %d, worse than initial %d", got, limit)
	}
}

func TestAnnealerSeedsWhenInitialEmpty(t *testing.T) {
	w := world.New(6, 6)
	an := NewAnnealer(w, fixedRng())

	start := domain.Position{X: 0, Y: 0}
	goal := domain.Position{X: 5, Y: 0}

	repaired, ok := an.Repair(start, goal, nil)
	if !ok {
		t.Fatal("repair with empty initial failed on an open grid")
	}
	if repaired[0] != start || repaired[len(repaired)-1] != goal {
		t.Fatalf("endpoints = %v .. %v", repaired[0], repaired[len(repaired)-1])
	}
}

func TestAnnealerUnreachableGoal(t *testing.T) {
	w := world.New(5, 5)
	for y := 0; y < 5; y++ {
		w.AddStaticObstacle(domain.Position{X: 2, Y: y})
	}

	an := NewAnnealer(w, fixedRng())
	if path, ok := an.Repair(domain.Position{X: 0, Y: 0}, domain.Position{X: 4, Y: 0}, nil); ok {
		t.Fatalf("repair crossed a solid wall: %v", path)
	}
}

func TestRepairDeterministicWithSeed(t *testing.T) {
	w := world.New(8, 8)
	w.AddStaticObstacle(domain.Position{X: 3, Y: 0})
	initial := straightPath(7)

	first, ok1 := NewHillClimber(w, rand.New(rand.NewSource(7))).Repair(initial[0], initial[len(initial)-1], initial)
	second, ok2 := NewHillClimber(w, rand.New(rand.NewSource(7))).Repair(initial[0], initial[len(initial)-1], initial)

	if ok1 != ok2 || len(first) != len(second) {
		t.Fatalf("same seed, different outcomes: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("same seed, different paths at %d: %v vs %v", i, first, second)
		}
	}
}
