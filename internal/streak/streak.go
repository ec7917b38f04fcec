// Package streak keeps the consecutive-day engagement counter and its
// milestone rewards. The day transition itself is a pure function so it
// can be tested without a clock.
package streak

import (
	"time"

	"github.com/starpathlabs/starpath/internal/progress"
)

// MilestoneInterval is the day spacing of streak milestones.
const MilestoneInterval = 7

// Result describes what a streak check did.
type Result struct {
	Counted   bool // false when today was already counted
	Count     int  // streak length after the check
	Milestone int  // milestone day reached by this check (0 if none)
}

// Check applies the daily streak transition for today. Same day is a
// no-op, yesterday extends the streak, anything older resets it to 1.
// Claimed milestone flags survive resets: each milestone reward is
// claimable at most once.
func Check(s progress.StreakState, today time.Time) (progress.StreakState, Result) {
	date := today.Format(time.DateOnly)
	yesterday := today.AddDate(0, 0, -1).Format(time.DateOnly)

	if s.LastActiveDate == date {
		return s, Result{Counted: false, Count: s.Count}
	}

	next := s
	if s.LastActiveDate == yesterday {
		next.Count = s.Count + 1
	} else {
		next.Count = 1
	}
	next.LastActiveDate = date

	res := Result{Counted: true, Count: next.Count}
	if IsMilestone(next.Count) {
		res.Milestone = next.Count
	}
	return next, res
}

// IsMilestone reports whether a streak length lands on a milestone day.
func IsMilestone(count int) bool {
	return count > 0 && count%MilestoneInterval == 0
}

// NextMilestone returns the next milestone day above the current streak.
func NextMilestone(current int) int {
	milestones := []int{7, 14, 21, 28}
	for _, m := range milestones {
		if m > current {
			return m
		}
	}
	// Beyond 28, one every week.
	return ((current / MilestoneInterval) + 1) * MilestoneInterval
}
