package progress

import (
	"testing"
	"time"
)

func TestRedisKeyLayout(t *testing.T) {
	s := &RedisStore{prefix: "starpath"}
	if got := s.userKey("0xabc"); got != "starpath:user:0xabc" {
		t.Errorf("got user key %q", got)
	}
	if got := s.setKey("0xabc", FieldCompletedModules); got != "starpath:user:0xabc:completed_modules" {
		t.Errorf("got set key %q", got)
	}
}

func TestScalarCodec_RoundTrip(t *testing.T) {
	at := time.Date(2026, 8, 21, 9, 30, 0, 0, time.UTC)
	equipped := map[string]string{"ship": "nova-cruiser"}

	fields := map[string]any{
		FieldCurrentModuleID:  "gas-and-fees",
		FieldCurrentGalaxyID:  3,
		FieldXP:               420,
		FieldTokensEarned:     88,
		FieldTokensSpent:      30,
		FieldStreakCount:      7,
		FieldStreakLastActive: "2026-08-21",
		FieldEquipped:         equipped,
		FieldUpdatedAt:        at,
	}

	doc := &UserProgress{Equipped: map[string]string{}}
	for field, value := range fields {
		raw, err := encodeScalar(field, value)
		if err != nil {
			t.Fatalf("encode %s: %v", field, err)
		}
		if err := decodeScalar(doc, field, raw); err != nil {
			t.Fatalf("decode %s: %v", field, err)
		}
	}

	if doc.CurrentModuleID != "gas-and-fees" || doc.CurrentGalaxyID != 3 {
		t.Errorf("pointer fields wrong: %q galaxy %d", doc.CurrentModuleID, doc.CurrentGalaxyID)
	}
	if doc.XP != 420 || doc.TokensEarned != 88 || doc.TokensSpent != 30 {
		t.Errorf("counters wrong: xp=%d earned=%d spent=%d", doc.XP, doc.TokensEarned, doc.TokensSpent)
	}
	if doc.Streak.Count != 7 || doc.Streak.LastActiveDate != "2026-08-21" {
		t.Errorf("streak wrong: %+v", doc.Streak)
	}
	if doc.Equipped["ship"] != "nova-cruiser" {
		t.Errorf("equipped wrong: %v", doc.Equipped)
	}
	if !doc.UpdatedAt.Equal(at) {
		t.Errorf("got updated_at %v, want %v", doc.UpdatedAt, at)
	}
}

func TestDecodeScalar_SkipsUnknownField(t *testing.T) {
	doc := &UserProgress{}
	if err := decodeScalar(doc, "future_field", "whatever"); err != nil {
		t.Errorf("unknown fields should be skipped, got error: %v", err)
	}
}

func TestDecodeScalar_BadNumber(t *testing.T) {
	doc := &UserProgress{}
	if err := decodeScalar(doc, FieldXP, "not-a-number"); err == nil {
		t.Error("expected error for unparseable counter")
	}
}

func TestEncodeScalar_RejectsUnknownType(t *testing.T) {
	if _, err := encodeScalar(FieldXP, 3.14); err == nil {
		t.Error("expected error for unsupported value type")
	}
}
