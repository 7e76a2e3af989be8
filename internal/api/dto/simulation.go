package dto

type SimulationRequest struct {
	Map          string `json:"map"`
	Algorithm    string `json:"algorithm"`
	Heuristic    string `json:"heuristic"`
	FuelCapacity int    `json:"fuel_capacity"`
	MaxSteps     int    `json:"max_steps"`
	Seed         int64  `json:"seed"`
}

type CellResponse struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type SimulationResponse struct {
	RunID         int64          `json:"run_id,omitempty"`
	Map           string         `json:"map"`
	Algorithm     string         `json:"algorithm"`
	Heuristic     string         `json:"heuristic"`
	FinalState    string         `json:"final_state"`
	DeliveredIDs  []int          `json:"delivered_ids"`
	TotalPackages int            `json:"total_packages"`
	TotalCost     int            `json:"total_cost"`
	TotalTime     int            `json:"total_time"`
	FuelRemaining int            `json:"fuel_remaining"`
	PlannedSteps  int            `json:"planned_steps"`
	Path          []CellResponse `json:"path"`
}
