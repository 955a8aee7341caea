package calculator

// Allocation holds the shared remaining gap and the per-currency goals
// derived from it. All three raw goals are computed against the same
// Remaining value, which keeps the displayed bars mutually consistent.
type Allocation struct {
	Total     int64 // base + gold + silver + gems, in BSC
	Remaining int64 // max(goal - Total, 0)

	GoldGoalRaw   int64
	SilverGoalRaw int64
	GemsGoalRaw   int64
}

// Allocate computes, for each currency, how many raw units of that currency
// alone would close the remaining gap toward goal, holding the other
// contributions fixed: needed_i = remaining + own contribution, scaled back
// to raw units by the currency's ratio.
//
// With goal <= 0 the remaining gap is zero and every bar reads complete.
func Allocate(goal, base, goldBSC, silverBSC, gemsBSC int64) Allocation {
	total := base + goldBSC + silverBSC + gemsBSC

	remaining := goal - total
	if remaining < 0 {
		remaining = 0
	}

	return Allocation{
		Total:         total,
		Remaining:     remaining,
		GoldGoalRaw:   ToRaw(remaining+goldBSC, RatioGold),
		SilverGoalRaw: ToRaw(remaining+silverBSC, RatioSilver),
		GemsGoalRaw:   ToRaw(remaining+gemsBSC, RatioGems),
	}
}
