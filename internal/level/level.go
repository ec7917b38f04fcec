// Package level converts lifetime XP totals into levels.
//
// Level 1 spans [0, 100) XP and every later level is 20% wider than the one
// before it, truncated to whole XP. The functions are pure and defined for
// all inputs; negative XP counts as zero.
package level

import "math"

// BaseSpan is the XP width of level 1.
const BaseSpan = 100

// growth is the per-level span multiplier.
const growth = 1.2

// SpanForLevel returns the XP width of the given level.
func SpanForLevel(level int) int {
	if level < 1 {
		return 0
	}
	// The epsilon keeps exact products (120, 144) from landing a hair
	// under the integer and truncating one short.
	return int(BaseSpan*math.Pow(growth, float64(level-1)) + 1e-9)
}

// FloorForLevel returns the cumulative XP at which the given level begins.
// FloorForLevel(1) is 0.
func FloorForLevel(level int) int {
	total := 0
	for l := 1; l < level; l++ {
		total += SpanForLevel(l)
	}
	return total
}

// ForXP returns the level for a lifetime XP total. Levels start at 1.
func ForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	level := 1
	floor := 0
	for {
		span := SpanForLevel(level)
		if xp < floor+span {
			return level
		}
		floor += span
		level++
	}
}

// Progress returns the level for the XP total and how far through that
// level's span it sits, as a fraction clamped to [0, 1].
func Progress(xp int) (level int, fraction float64) {
	if xp < 0 {
		xp = 0
	}
	level = ForXP(xp)
	span := SpanForLevel(level)
	fraction = float64(xp-FloorForLevel(level)) / float64(span)
	fraction = math.Min(math.Max(fraction, 0), 1)
	return level, fraction
}
