package streak

import (
	"testing"
	"time"

	"github.com/starpathlabs/starpath/internal/progress"
)

func date(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestCheckTransitions(t *testing.T) {
	tests := []struct {
		name        string
		state       progress.StreakState
		today       string
		wantCount   int
		wantCounted bool
	}{
		{
			name:        "first ever check",
			state:       progress.StreakState{},
			today:       "2026-03-10",
			wantCount:   1,
			wantCounted: true,
		},
		{
			name:        "same day is a no-op",
			state:       progress.StreakState{Count: 4, LastActiveDate: "2026-03-10"},
			today:       "2026-03-10",
			wantCount:   4,
			wantCounted: false,
		},
		{
			name:        "yesterday extends",
			state:       progress.StreakState{Count: 4, LastActiveDate: "2026-03-09"},
			today:       "2026-03-10",
			wantCount:   5,
			wantCounted: true,
		},
		{
			name:        "two day gap resets",
			state:       progress.StreakState{Count: 12, LastActiveDate: "2026-03-07"},
			today:       "2026-03-10",
			wantCount:   1,
			wantCounted: true,
		},
		{
			name:        "month boundary",
			state:       progress.StreakState{Count: 3, LastActiveDate: "2026-02-28"},
			today:       "2026-03-01",
			wantCount:   4,
			wantCounted: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, res := Check(tt.state, date(tt.today))
			if res.Counted != tt.wantCounted {
				t.Errorf("counted = %v, want %v", res.Counted, tt.wantCounted)
			}
			if res.Count != tt.wantCount {
				t.Errorf("count = %d, want %d", res.Count, tt.wantCount)
			}
			if next.Count != tt.wantCount {
				t.Errorf("state count = %d, want %d", next.Count, tt.wantCount)
			}
			if res.Counted && next.LastActiveDate != tt.today {
				t.Errorf("last active = %q, want %q", next.LastActiveDate, tt.today)
			}
		})
	}
}

func TestCheckReachesMilestone(t *testing.T) {
	// Streak at 6, active yesterday: today's check lands on day 7.
	state := progress.StreakState{Count: 6, LastActiveDate: "2026-03-09"}

	next, res := Check(state, date("2026-03-10"))
	if res.Count != 7 {
		t.Errorf("count = %d, want 7", res.Count)
	}
	if res.Milestone != 7 {
		t.Errorf("milestone = %d, want 7", res.Milestone)
	}
	if next.Count != 7 {
		t.Errorf("state count = %d, want 7", next.Count)
	}
}

func TestCheckNonMilestoneDay(t *testing.T) {
	state := progress.StreakState{Count: 7, LastActiveDate: "2026-03-09"}

	_, res := Check(state, date("2026-03-10"))
	if res.Milestone != 0 {
		t.Errorf("milestone = %d, want 0 on day 8", res.Milestone)
	}
}

func TestCheckPreservesClaimsOnReset(t *testing.T) {
	state := progress.StreakState{
		Count:             14,
		LastActiveDate:    "2026-03-01",
		ClaimedMilestones: []int{7, 14},
	}

	next, res := Check(state, date("2026-03-10"))
	if res.Count != 1 {
		t.Fatalf("count = %d, want reset to 1", res.Count)
	}
	if len(next.ClaimedMilestones) != 2 {
		t.Errorf("claimed milestones = %v, want preserved {7, 14}", next.ClaimedMilestones)
	}
}

func TestIsMilestone(t *testing.T) {
	tests := []struct {
		count int
		want  bool
	}{
		{0, false},
		{1, false},
		{6, false},
		{7, true},
		{8, false},
		{14, true},
		{21, true},
		{28, true},
		{35, true},
		{70, true},
	}

	for _, tt := range tests {
		if got := IsMilestone(tt.count); got != tt.want {
			t.Errorf("IsMilestone(%d) = %v, want %v", tt.count, got, tt.want)
		}
	}
}

func TestNextMilestone(t *testing.T) {
	tests := []struct {
		current int
		want    int
	}{
		{0, 7},
		{6, 7},
		{7, 14},
		{20, 21},
		{27, 28},
		{28, 35},
		{30, 35},
		{100, 105},
	}

	for _, tt := range tests {
		if got := NextMilestone(tt.current); got != tt.want {
			t.Errorf("NextMilestone(%d) = %d, want %d", tt.current, got, tt.want)
		}
	}
}
