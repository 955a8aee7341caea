package model

import "time"

// Inventory holds the raw currency counts read from the play server.
type Inventory struct {
	Gold   int64 // gold chests
	Silver int64 // silver chests
	Gems   int64 // red rubies

	FetchedAt time.Time
}

// BuffAggregate is the result of scanning the payload for contract buffs.
type BuffAggregate struct {
	// Total is the summed BSC value (amount × weight) of all recognized buffs.
	Total int64
	// Breakdown maps each recognized buff id to its summed raw amount.
	Breakdown map[int64]int64
}
