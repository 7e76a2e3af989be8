package dto

import "time"

type RunResponse struct {
	RunID          int64     `json:"run_id"`
	MapName        string    `json:"map_name"`
	Strategy       string    `json:"strategy"`
	Heuristic      string    `json:"heuristic"`
	DeliveredCount int       `json:"delivered_count"`
	TotalCost      int       `json:"total_cost"`
	TotalTime      int       `json:"total_time"`
	FuelRemaining  int       `json:"fuel_remaining"`
	PathLength     int       `json:"path_length"`
	FinalState     string    `json:"final_state"`
	CreatedAt      time.Time `json:"created_at"`
}

type ListRunsResponse struct {
	Runs []RunResponse `json:"runs"`
}
