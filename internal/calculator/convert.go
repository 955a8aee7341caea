package calculator

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// Conversion ratios: raw units of a currency per 1 BSC.
const (
	RatioGold   int64 = 1
	RatioSilver int64 = 10
	RatioGems   int64 = 500
)

// ToBSC converts a raw currency count to normalized BSC units using integer
// floor division. Ratios are compile-time constants and always positive.
func ToBSC(raw, ratio int64) int64 {
	if raw <= 0 {
		return 0
	}
	return raw / ratio
}

// ToRaw converts normalized BSC units back to raw currency units.
func ToRaw(bsc, ratio int64) int64 {
	return bsc * ratio
}

// Percent formats progress toward a goal as a display percentage.
// A goal of zero or less means nothing is needed and reads as complete.
// Trailing ".0" is stripped ("62.0%" -> "62%").
func Percent(value, goal int64) string {
	if goal <= 0 {
		return "100%"
	}
	p := float64(value) / float64(goal) * 100.0
	if p > 100.0 {
		p = 100.0
	}
	s := fmt.Sprintf("%.1f%%", p)
	if strings.HasSuffix(s, ".0%") {
		return s[:len(s)-3] + "%"
	}
	return s
}

// FormatUnits renders an integer with dot thousands separators, matching the
// overlay's European number style ("15.360.005").
func FormatUnits(n int64) string {
	return strings.ReplaceAll(humanize.Comma(n), ",", ".")
}
