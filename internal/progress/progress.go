// Package progress holds the per-learner progress document and the store
// contract it is persisted through.
package progress

import (
	"maps"
	"slices"
	"time"
)

// StreakState tracks the daily check-in streak. LastActiveDate is a local
// calendar day formatted as 2006-01-02.
type StreakState struct {
	Count             int    `json:"count"`
	LastActiveDate    string `json:"last_active_date"`
	ClaimedMilestones []int  `json:"claimed_milestones"`
}

// Claimed reports whether the given milestone day was already claimed.
func (s StreakState) Claimed(milestone int) bool {
	return slices.Contains(s.ClaimedMilestones, milestone)
}

// UserProgress is the progress document for one wallet identity. Set-valued
// fields are append-only; counters only grow.
type UserProgress struct {
	UserID           string            `json:"user_id"`
	CompletedModules []string          `json:"completed_modules"`
	CurrentModuleID  string            `json:"current_module_id"`
	CurrentGalaxyID  int               `json:"current_galaxy_id"`
	XP               int               `json:"xp"`
	UnlockedGalaxies []int             `json:"unlocked_galaxies"`
	TokensEarned     int               `json:"tokens_earned"`
	TokensSpent      int               `json:"tokens_spent"`
	Cosmetics        []string          `json:"cosmetics"`
	Equipped         map[string]string `json:"equipped"`
	Streak           StreakState       `json:"streak"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// NewUserProgress returns the starting document for a first-time learner:
// nothing completed, the first module current, its galaxy unlocked.
func NewUserProgress(userID, firstModuleID string, firstGalaxyID int) *UserProgress {
	return &UserProgress{
		UserID:           userID,
		CompletedModules: []string{},
		CurrentModuleID:  firstModuleID,
		CurrentGalaxyID:  firstGalaxyID,
		UnlockedGalaxies: []int{firstGalaxyID},
		Cosmetics:        []string{},
		Equipped:         map[string]string{},
	}
}

// Completed reports whether the module id is in the completed set.
func (p *UserProgress) Completed(moduleID string) bool {
	return slices.Contains(p.CompletedModules, moduleID)
}

// CompletedSet returns the completed modules as a lookup set.
func (p *UserProgress) CompletedSet() map[string]bool {
	set := make(map[string]bool, len(p.CompletedModules))
	for _, id := range p.CompletedModules {
		set[id] = true
	}
	return set
}

// GalaxyUnlocked reports whether the galaxy id is in the explicit unlock set.
func (p *UserProgress) GalaxyUnlocked(galaxyID int) bool {
	return slices.Contains(p.UnlockedGalaxies, galaxyID)
}

// Owns reports whether the cosmetic id is in the owned set.
func (p *UserProgress) Owns(cosmeticID string) bool {
	return slices.Contains(p.Cosmetics, cosmeticID)
}

// TokenBalance returns the spendable token balance.
func (p *UserProgress) TokenBalance() int {
	return p.TokensEarned - p.TokensSpent
}

// Clone returns a deep copy of the document.
func (p *UserProgress) Clone() *UserProgress {
	out := *p
	out.CompletedModules = slices.Clone(p.CompletedModules)
	out.UnlockedGalaxies = slices.Clone(p.UnlockedGalaxies)
	out.Cosmetics = slices.Clone(p.Cosmetics)
	out.Equipped = maps.Clone(p.Equipped)
	out.Streak.ClaimedMilestones = slices.Clone(p.Streak.ClaimedMilestones)
	return &out
}
