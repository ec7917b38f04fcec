package level

import (
	"math"
	"testing"
)

func TestSpanForLevel(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 100},
		{2, 120},
		{3, 144},
		{4, 172},
		{5, 207},
		{6, 248},
		{0, 0},
		{-1, 0},
	}
	for _, tt := range tests {
		if got := SpanForLevel(tt.level); got != tt.want {
			t.Errorf("SpanForLevel(%d): got %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestFloorForLevel(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 0},
		{2, 100},
		{3, 220},
		{4, 364},
		{5, 536},
		{6, 743},
	}
	for _, tt := range tests {
		if got := FloorForLevel(tt.level); got != tt.want {
			t.Errorf("FloorForLevel(%d): got %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestForXP(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{1, 1},
		{99, 1},
		{100, 2},
		{219, 2},
		{220, 3},
		{363, 3},
		{364, 4},
		{-50, 1},
	}
	for _, tt := range tests {
		if got := ForXP(tt.xp); got != tt.want {
			t.Errorf("ForXP(%d): got %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestForXP_Monotonic(t *testing.T) {
	prev := ForXP(0)
	for xp := 1; xp <= 2000; xp++ {
		cur := ForXP(xp)
		if cur < prev {
			t.Fatalf("ForXP not monotonic: ForXP(%d)=%d < ForXP(%d)=%d", xp, cur, xp-1, prev)
		}
		prev = cur
	}
}

func TestForXP_ConsistentWithFloor(t *testing.T) {
	for xp := 0; xp <= 2000; xp++ {
		lvl := ForXP(xp)
		if xp < FloorForLevel(lvl) {
			t.Fatalf("xp %d below floor of its own level %d", xp, lvl)
		}
		if xp >= FloorForLevel(lvl+1) {
			t.Fatalf("xp %d at or past floor of level %d", xp, lvl+1)
		}
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		xp        int
		wantLevel int
		wantFrac  float64
	}{
		{0, 1, 0.0},
		{50, 1, 0.5},
		{99, 1, 0.99},
		{100, 2, 0.0},
		{160, 2, 0.5},
		{-10, 1, 0.0},
	}
	for _, tt := range tests {
		lvl, frac := Progress(tt.xp)
		if lvl != tt.wantLevel {
			t.Errorf("Progress(%d): got level %d, want %d", tt.xp, lvl, tt.wantLevel)
		}
		if math.Abs(frac-tt.wantFrac) > 1e-9 {
			t.Errorf("Progress(%d): got fraction %f, want %f", tt.xp, frac, tt.wantFrac)
		}
	}
}

func TestProgress_FractionBounds(t *testing.T) {
	for xp := 0; xp <= 2000; xp++ {
		_, frac := Progress(xp)
		if frac < 0 || frac > 1 {
			t.Fatalf("Progress(%d): fraction %f out of [0, 1]", xp, frac)
		}
	}
}
