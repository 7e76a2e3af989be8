package main

import (
	"context"
	"database/sql"
	"flag"
	"log"

	"delivery-agent-service/internal/adapters/mapfile"
	"delivery-agent-service/internal/adapters/repositories"
	"delivery-agent-service/internal/agent"
	"delivery-agent-service/internal/config"
	"delivery-agent-service/internal/domain"
	"delivery-agent-service/internal/ports"
	"delivery-agent-service/internal/services"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// cmd/agent runs one delivery simulation (or a search benchmark) from the
// command line. Flags override scenario-file values, which override the
// built-in defaults. When DB_PATH is set the run is recorded in the same
// SQLite store the server reads.
func main() {
	var (
		cfgPath   = flag.String("config", "", "YAML scenario file with simulation defaults")
		mapPath   = flag.String("map", "data/maps/small.map", "map file to load")
		algorithm = flag.String("algorithm", "astar", "search algorithm: bfs, ucs, or astar")
		heuristic = flag.String("heuristic", "manhattan", "heuristic for astar: manhattan, euclidean, or chebyshev")
		fuel      = flag.Int("fuel", agent.DefaultFuelCapacity, "fuel capacity")
		maxSteps  = flag.Int("max-steps", services.DefaultMaxSteps, "maximum execution steps")
		seed      = flag.Int64("seed", 0, "random seed for the repair engines (0 = time-based)")
		benchmark = flag.Bool("benchmark", false, "benchmark all search strategies instead of simulating")
		show      = flag.Bool("show", false, "render the grid after the run")
	)
	flag.Parse()

	if err := godotenv.Load(); err == nil {
		log.Println("Loaded .env")
	}

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if *cfgPath != "" {
		sc, err := config.LoadScenario(*cfgPath)
		if err != nil {
			log.Fatal(err)
		}
		if !set["map"] && sc.Map != "" {
			*mapPath = sc.Map
		}
		if !set["algorithm"] && sc.Algorithm != "" {
			*algorithm = sc.Algorithm
		}
		if !set["heuristic"] && sc.Heuristic != "" {
			*heuristic = sc.Heuristic
		}
		if !set["fuel"] && sc.FuelCapacity > 0 {
			*fuel = sc.FuelCapacity
		}
		if !set["max-steps"] && sc.MaxSteps > 0 {
			*maxSteps = sc.MaxSteps
		}
		if !set["seed"] && sc.Seed != 0 {
			*seed = sc.Seed
		}
	}

	if *benchmark {
		runBenchmark(*mapPath)
		return
	}

	runSimulation(*mapPath, *algorithm, *heuristic, *fuel, *maxSteps, *seed, *show)
}

func runBenchmark(mapPath string) {
	results, err := services.BenchmarkMap(mapPath)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("benchmark map=%s", mapPath)
	for _, r := range results {
		log.Printf(
			"strategy=%s found=%t path_length=%d total_cost=%d nodes_expanded=%d dur=%s",
			r.Name, r.PathFound, r.PathLength, r.TotalCost, r.NodesExpanded, r.Duration,
		)
	}
}

func runSimulation(mapPath, algorithm, heuristic string, fuel, maxSteps int, seed int64, show bool) {
	var repo ports.RunRepository
	if dbPath := config.Get("DB_PATH", ""); dbPath != "" {
		db, err := sql.Open("sqlite", dbPath)
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()
		if err := repositories.InitSchema(db); err != nil {
			log.Fatal(err)
		}
		repo = repositories.NewSqliteRunRepository(db)
	}

	req := services.RunSimulationRequest{
		MapPath:      mapPath,
		Strategy:     algorithm,
		Heuristic:    heuristic,
		FuelCapacity: fuel,
		MaxSteps:     maxSteps,
		Seed:         seed,
	}

	res, err := services.RunSimulation(context.Background(), req, repo)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf(
		"result map=%s algorithm=%s heuristic=%s state=%s delivered=%d/%d total_cost=%d total_time=%d fuel_remaining=%d",
		res.MapName, res.Strategy, res.Heuristic, res.FinalState,
		len(res.Status.Delivered), res.TotalPackages,
		res.Status.TotalCost, res.Status.TotalTime, res.Status.FuelRemaining,
	)
	if res.RunID != 0 {
		log.Printf("run recorded id=%d", res.RunID)
	}

	if show {
		w, err := mapfile.Load(mapPath)
		if err != nil {
			log.Fatal(err)
		}
		final := res.Status.Path[len(res.Status.Path)-1]
		pos := domain.Position{X: final.X, Y: final.Y}
		log.Printf("final grid at tick=%d:\n%s", res.Status.TotalTime, w.Render(&pos, res.Status.TotalTime))
	}
}
