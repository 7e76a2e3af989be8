package dto

type BenchmarkRequest struct {
	Map string `json:"map"`
}

type BenchmarkEntryResponse struct {
	Name           string `json:"name"`
	PathFound      bool   `json:"path_found"`
	PathLength     int    `json:"path_length"`
	TotalCost      int    `json:"total_cost"`
	NodesExpanded  int    `json:"nodes_expanded"`
	DurationMicros int64  `json:"duration_micros"`
}

type BenchmarkResponse struct {
	Map     string                   `json:"map"`
	Results []BenchmarkEntryResponse `json:"results"`
}
