package progress

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"
)

// MemStore is an in-memory Store. It backs offline play when no remote is
// configured and doubles as the fake every store-facing test runs against.
type MemStore struct {
	mu   sync.RWMutex
	docs map[string]*UserProgress
}

func NewMemStore() *MemStore {
	return &MemStore{docs: make(map[string]*UserProgress)}
}

func (s *MemStore) Get(ctx context.Context, userID string) (*UserProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[userID]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}
	return doc.Clone(), nil
}

func (s *MemStore) Set(ctx context.Context, userID string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.upsert(userID)
	for field, value := range fields {
		if err := applyScalar(doc, field, value); err != nil {
			return err
		}
	}
	return nil
}

func (s *MemStore) AppendToSet(ctx context.Context, userID, field string, members ...string) error {
	if len(members) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.upsert(userID)
	switch field {
	case FieldCompletedModules:
		doc.CompletedModules = unionStrings(doc.CompletedModules, members)
	case FieldCosmetics:
		doc.Cosmetics = unionStrings(doc.Cosmetics, members)
	case FieldUnlockedGalaxies:
		ids, err := parseIntMembers(members)
		if err != nil {
			return err
		}
		doc.UnlockedGalaxies = unionInts(doc.UnlockedGalaxies, ids)
	case FieldClaimedMilestones:
		ids, err := parseIntMembers(members)
		if err != nil {
			return err
		}
		doc.Streak.ClaimedMilestones = unionInts(doc.Streak.ClaimedMilestones, ids)
	default:
		return fmt.Errorf("field %q is not a set", field)
	}
	return nil
}

func (s *MemStore) Increment(ctx context.Context, userID, field string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.upsert(userID)
	switch field {
	case FieldXP:
		doc.XP += delta
	case FieldTokensEarned:
		doc.TokensEarned += delta
	case FieldTokensSpent:
		doc.TokensSpent += delta
	case FieldStreakCount:
		doc.Streak.Count += delta
	default:
		return fmt.Errorf("field %q is not a counter", field)
	}
	return nil
}

// Put replaces the whole document. Intended for seeding tests.
func (s *MemStore) Put(doc *UserProgress) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[doc.UserID] = doc.Clone()
}

// upsert returns the live document, creating an empty one on first write.
// Callers hold the write lock.
func (s *MemStore) upsert(userID string) *UserProgress {
	doc, ok := s.docs[userID]
	if !ok {
		doc = &UserProgress{UserID: userID, Equipped: map[string]string{}}
		s.docs[userID] = doc
	}
	return doc
}

// applyScalar merges one scalar field into the document, checking that the
// value carries the field's native type.
func applyScalar(doc *UserProgress, field string, value any) error {
	switch field {
	case FieldCurrentModuleID:
		v, ok := value.(string)
		if !ok {
			return badFieldType(field, value)
		}
		doc.CurrentModuleID = v
	case FieldCurrentGalaxyID:
		v, ok := value.(int)
		if !ok {
			return badFieldType(field, value)
		}
		doc.CurrentGalaxyID = v
	case FieldXP:
		v, ok := value.(int)
		if !ok {
			return badFieldType(field, value)
		}
		doc.XP = v
	case FieldTokensEarned:
		v, ok := value.(int)
		if !ok {
			return badFieldType(field, value)
		}
		doc.TokensEarned = v
	case FieldTokensSpent:
		v, ok := value.(int)
		if !ok {
			return badFieldType(field, value)
		}
		doc.TokensSpent = v
	case FieldStreakCount:
		v, ok := value.(int)
		if !ok {
			return badFieldType(field, value)
		}
		doc.Streak.Count = v
	case FieldStreakLastActive:
		v, ok := value.(string)
		if !ok {
			return badFieldType(field, value)
		}
		doc.Streak.LastActiveDate = v
	case FieldEquipped:
		v, ok := value.(map[string]string)
		if !ok {
			return badFieldType(field, value)
		}
		doc.Equipped = maps.Clone(v)
	case FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return badFieldType(field, value)
		}
		doc.UpdatedAt = v
	default:
		return fmt.Errorf("unknown scalar field %q", field)
	}
	return nil
}

func badFieldType(field string, value any) error {
	return fmt.Errorf("field %q: unexpected value type %T", field, value)
}

func unionStrings(existing []string, members []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, m := range existing {
		seen[m] = true
	}
	for _, m := range members {
		if !seen[m] {
			existing = append(existing, m)
			seen[m] = true
		}
	}
	return existing
}

func unionInts(existing []int, members []int) []int {
	out := existing
	for _, m := range members {
		if !slices.Contains(out, m) {
			out = append(out, m)
		}
	}
	slices.Sort(out)
	return out
}

func parseIntMembers(members []string) ([]int, error) {
	out := make([]int, len(members))
	for i, m := range members {
		v, err := ParseIntMember(m)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
