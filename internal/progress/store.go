package progress

import (
	"context"
	"errors"
	"fmt"
	"strconv"
)

// ErrNotFound reports that no progress document exists for the user.
var ErrNotFound = errors.New("progress not found")

// UnavailableError reports that the store could not be reached after all
// retry attempts. The caller's local copy is the only live one until a
// later sync succeeds.
type UnavailableError struct {
	Op       string
	Attempts int
	Err      error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("progress store unavailable after %d attempts (%s): %v", e.Attempts, e.Op, e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// Field names for Store operations. The document is field-addressed so
// concurrent writers merge instead of overwriting each other.
//
// Scalar fields (Set/Increment) carry their native Go type: int counters,
// string pointers, map[string]string for equipped, time.Time for updated_at.
// Set fields (AppendToSet) carry string members; numeric sets travel as
// decimal strings (IntMember).
const (
	FieldCompletedModules  = "completed_modules"
	FieldCurrentModuleID   = "current_module_id"
	FieldCurrentGalaxyID   = "current_galaxy_id"
	FieldXP                = "xp"
	FieldUnlockedGalaxies  = "unlocked_galaxies"
	FieldTokensEarned      = "tokens_earned"
	FieldTokensSpent       = "tokens_spent"
	FieldCosmetics         = "cosmetics"
	FieldEquipped          = "equipped"
	FieldStreakCount       = "streak_count"
	FieldStreakLastActive  = "streak_last_active"
	FieldClaimedMilestones = "claimed_milestones"
	FieldUpdatedAt         = "updated_at"
)

// Store is the persistence contract for progress documents. Implementations
// are expected to be safe for concurrent use, and every write operation
// creates the document if it does not exist yet.
type Store interface {
	// Get returns the document for userID, or ErrNotFound.
	Get(ctx context.Context, userID string) (*UserProgress, error)

	// Set merges the given scalar fields into the document. Fields not
	// named keep their value.
	Set(ctx context.Context, userID string, fields map[string]any) error

	// AppendToSet adds members to a set-valued field as one atomic union.
	AppendToSet(ctx context.Context, userID, field string, members ...string) error

	// Increment atomically adds delta to a numeric field.
	Increment(ctx context.Context, userID, field string, delta int) error
}

// IntMember encodes a numeric set member for AppendToSet.
func IntMember(v int) string {
	return strconv.Itoa(v)
}

// ParseIntMember decodes a numeric set member.
func ParseIntMember(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad numeric set member %q: %w", s, err)
	}
	return v, nil
}
