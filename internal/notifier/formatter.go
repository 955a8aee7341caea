package notifier

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Extraversi0n/road-to-brivJ/internal/calculator"
	"github.com/Extraversi0n/road-to-brivJ/internal/model"
)

// FormatProgressReport formats a snapshot into a Telegram message.
func FormatProgressReport(snap *model.Snapshot) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("⚒️ <b>Road to Briv</b> | %s\n\n", snap.GeneratedAt.Format("2006-01-02 15:04")))

	b.WriteString(fmt.Sprintf("Total: %s / %s BSC (%s)\n",
		calculator.FormatUnits(snap.Total), calculator.FormatUnits(snap.Goal),
		calculator.Percent(snap.Total, snap.Goal)))
	b.WriteString(fmt.Sprintf("Remaining: %s BSC\n\n", calculator.FormatUnits(snap.Remaining)))

	b.WriteString("📦 <b>Contributions:</b>\n")
	for _, seg := range snap.Segments {
		b.WriteString(fmt.Sprintf("  %s: %s BSC\n", seg.Label, calculator.FormatUnits(seg.Value)))
	}
	b.WriteString("\n")

	if line := formatBreakdown(snap.Breakdown); line != "" {
		b.WriteString(fmt.Sprintf("Contracts held: %s\n\n", line))
	}

	b.WriteString("🎯 <b>Single-currency goals:</b>\n")
	for _, block := range snap.Blocks {
		b.WriteString(fmt.Sprintf("  %s: %s / %s (%s)\n",
			block.Title,
			calculator.FormatUnits(block.Raw), calculator.FormatUnits(block.RawGoal),
			calculator.Percent(block.Raw, block.RawGoal)))
	}

	if snap.Complete() {
		b.WriteString("\n🎉 Goal reached!")
	}

	return b.String()
}

// formatBreakdown lists held contract counts by buff id, smallest id first,
// skipping ids the player holds none of.
func formatBreakdown(breakdown map[int64]int64) string {
	ids := make([]int64, 0, len(breakdown))
	for id, n := range breakdown {
		if n > 0 {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return ""
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d×%s", id, calculator.FormatUnits(breakdown[id]))
	}
	return strings.Join(parts, ", ")
}
