package model

import "time"

// Currency identifies one of the three convertible resources.
type Currency string

const (
	CurrencyGold   Currency = "gold"
	CurrencySilver Currency = "silver"
	CurrencyGems   Currency = "gems"
)

// CurrencyBlock is one single-currency progress bar: raw units held vs the
// raw units of this currency alone that would close the remaining gap.
type CurrencyBlock struct {
	Currency Currency
	Title    string
	Raw      int64 // current raw count
	RawGoal  int64 // raw units needed to reach the BSC goal single-handedly
	Ratio    int64 // raw units per 1 BSC
	BSC      int64 // current normalized contribution
}

// Segment is one colored portion of the stacked bar, in BSC units.
type Segment struct {
	Label string
	Value int64
}

// Snapshot is the complete, internally consistent output of one run.
// All four displayed blocks are derived from this single pass.
type Snapshot struct {
	Goal      int64
	Base      int64 // BSC from contract buffs
	Total     int64 // Base + sum of currency contributions
	Remaining int64 // max(Goal - Total, 0)

	Blocks    [3]CurrencyBlock // gold, silver, gems
	Segments  [4]Segment       // base, gold, silver, gems
	Breakdown map[int64]int64  // recognized buff id -> summed amount

	GeneratedAt time.Time
}

// Complete reports whether the goal has been reached.
func (s *Snapshot) Complete() bool {
	return s.Goal <= 0 || s.Total >= s.Goal
}
