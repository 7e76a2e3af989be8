package domain

// Path is an ordered sequence of positions produced by a single search. The
// first element is the search's start cell, the last is its goal.
type Path []Position

// Route is a concatenation of paths covering multiple delivery goals in
// visitation order. Its first element is the planning origin.
type Route []Position

// DeliveryStatus is the outcome record of one route execution attempt.
type DeliveryStatus struct {
	// Delivered holds the ids of packages delivered, in ascending order.
	Delivered []int
	// TotalCost is the terrain cost accumulated over every step taken.
	TotalCost int
	// TotalTime is the number of ticks elapsed during execution.
	TotalTime int
	// Path is the realized sequence of cells actually traversed, starting at
	// the cell the agent occupied when execution began.
	Path []Position
	// FuelRemaining is the fuel left when execution ended.
	FuelRemaining int
}
