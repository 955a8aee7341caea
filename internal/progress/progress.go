// Package progress assembles the four displayed blocks from one computation
// pass, so the three single-currency bars and the stacked bar always agree
// on the same total and remaining gap.
package progress

import (
	"time"

	"github.com/Extraversi0n/road-to-brivJ/internal/calculator"
	"github.com/Extraversi0n/road-to-brivJ/internal/model"
)

// Build computes the complete snapshot for one run.
func Build(inv *model.Inventory, buffs model.BuffAggregate, goal int64) *model.Snapshot {
	goldBSC := calculator.ToBSC(inv.Gold, calculator.RatioGold)
	silverBSC := calculator.ToBSC(inv.Silver, calculator.RatioSilver)
	gemsBSC := calculator.ToBSC(inv.Gems, calculator.RatioGems)

	alloc := calculator.Allocate(goal, buffs.Total, goldBSC, silverBSC, gemsBSC)

	return &model.Snapshot{
		Goal:      goal,
		Base:      buffs.Total,
		Total:     alloc.Total,
		Remaining: alloc.Remaining,
		Blocks: [3]model.CurrencyBlock{
			{Currency: model.CurrencyGold, Title: "Gold-Chests", Raw: inv.Gold, RawGoal: alloc.GoldGoalRaw, Ratio: calculator.RatioGold, BSC: goldBSC},
			{Currency: model.CurrencySilver, Title: "Silver-Chests", Raw: inv.Silver, RawGoal: alloc.SilverGoalRaw, Ratio: calculator.RatioSilver, BSC: silverBSC},
			{Currency: model.CurrencyGems, Title: "Gems", Raw: inv.Gems, RawGoal: alloc.GemsGoalRaw, Ratio: calculator.RatioGems, BSC: gemsBSC},
		},
		Segments: [4]model.Segment{
			{Label: "BSC", Value: buffs.Total},
			{Label: "Gold", Value: goldBSC},
			{Label: "Silver", Value: silverBSC},
			{Label: "Gems", Value: gemsBSC},
		},
		Breakdown:   buffs.Breakdown,
		GeneratedAt: time.Now(),
	}
}

// SegmentWidths distributes the stacked bar's pixel budget across segments,
// left to right in their fixed order. Each width is round(barWidth·val/goal)
// clamped to the remaining budget; a positive value that rounds to zero gets
// a one-pixel sliver so it stays visible; allocation stops once the bar is
// full. With a goal of zero or less nothing is drawn.
func SegmentWidths(segments []model.Segment, goal int64, barWidth int) []int {
	widths := make([]int, len(segments))
	if goal <= 0 || barWidth <= 0 {
		return widths
	}
	used := 0
	for i, seg := range segments {
		if seg.Value <= 0 {
			continue
		}
		remaining := barWidth - used
		if remaining <= 0 {
			break
		}
		w := int(float64(barWidth)*float64(seg.Value)/float64(goal) + 0.5)
		if w > remaining {
			w = remaining
		}
		if w <= 0 {
			w = 1
		}
		widths[i] = w
		used += w
	}
	return widths
}
