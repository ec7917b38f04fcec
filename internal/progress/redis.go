package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// RedisConfig configures the hosted progress store.
type RedisConfig struct {
	Addr        string
	Prefix      string
	DialTimeout time.Duration
}

// DefaultRedisConfig resolves Redis settings from the environment. An empty
// Addr means no remote is configured.
func DefaultRedisConfig() RedisConfig {
	cfg := RedisConfig{
		Addr:        strings.TrimSpace(os.Getenv("STARPATH_REDIS_ADDR")),
		Prefix:      strings.TrimSpace(os.Getenv("STARPATH_REDIS_PREFIX")),
		DialTimeout: 5 * time.Second,
	}
	if cfg.Prefix == "" {
		cfg.Prefix = "starpath"
	}
	return cfg
}

// RedisStore is the hosted Store. Scalar fields live in one hash per user
// and each set field in its own Redis set, so every contract operation maps
// onto a single atomic Redis command.
type RedisStore struct {
	rdb    *goredis.Client
	prefix string
}

func NewRedisStore(cfg RedisConfig) (*RedisStore, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("redis address required")
	}
	if cfg.Prefix == "" {
		cfg.Prefix = "starpath"
	}
	timeout := cfg.DialTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		DialTimeout: timeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisStore{rdb: rdb, prefix: cfg.Prefix}, nil
}

func (s *RedisStore) Close() error { return s.rdb.Close() }

func (s *RedisStore) userKey(userID string) string {
	return fmt.Sprintf("%s:user:%s", s.prefix, userID)
}

func (s *RedisStore) setKey(userID, field string) string {
	return fmt.Sprintf("%s:user:%s:%s", s.prefix, userID, field)
}

func (s *RedisStore) Get(ctx context.Context, userID string) (*UserProgress, error) {
	pipe := s.rdb.Pipeline()
	hash := pipe.HGetAll(ctx, s.userKey(userID))
	completed := pipe.SMembers(ctx, s.setKey(userID, FieldCompletedModules))
	unlocked := pipe.SMembers(ctx, s.setKey(userID, FieldUnlockedGalaxies))
	cosmetics := pipe.SMembers(ctx, s.setKey(userID, FieldCosmetics))
	claimed := pipe.SMembers(ctx, s.setKey(userID, FieldClaimedMilestones))
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("redis get %s: %w", userID, err)
	}

	if len(hash.Val()) == 0 && len(completed.Val()) == 0 && len(unlocked.Val()) == 0 {
		return nil, fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}

	doc := &UserProgress{UserID: userID, Equipped: map[string]string{}}
	for field, raw := range hash.Val() {
		if err := decodeScalar(doc, field, raw); err != nil {
			return nil, fmt.Errorf("redis get %s: %w", userID, err)
		}
	}

	doc.CompletedModules = sortedStrings(completed.Val())
	doc.Cosmetics = sortedStrings(cosmetics.Val())

	galaxyIDs, err := parseIntMembers(unlocked.Val())
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", userID, err)
	}
	slices.Sort(galaxyIDs)
	doc.UnlockedGalaxies = galaxyIDs

	milestones, err := parseIntMembers(claimed.Val())
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", userID, err)
	}
	slices.Sort(milestones)
	doc.Streak.ClaimedMilestones = milestones

	return doc, nil
}

func (s *RedisStore) Set(ctx context.Context, userID string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	kv := make([]any, 0, len(fields)*2)
	for field, value := range fields {
		raw, err := encodeScalar(field, value)
		if err != nil {
			return err
		}
		kv = append(kv, field, raw)
	}
	if err := s.rdb.HSet(ctx, s.userKey(userID), kv...).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", userID, err)
	}
	return nil
}

func (s *RedisStore) AppendToSet(ctx context.Context, userID, field string, members ...string) error {
	if len(members) == 0 {
		return nil
	}
	vals := make([]any, len(members))
	for i, m := range members {
		vals[i] = m
	}
	if err := s.rdb.SAdd(ctx, s.setKey(userID, field), vals...).Err(); err != nil {
		return fmt.Errorf("redis append %s %s: %w", userID, field, err)
	}
	return nil
}

func (s *RedisStore) Increment(ctx context.Context, userID, field string, delta int) error {
	if err := s.rdb.HIncrBy(ctx, s.userKey(userID), field, int64(delta)).Err(); err != nil {
		return fmt.Errorf("redis increment %s %s: %w", userID, field, err)
	}
	return nil
}

// encodeScalar renders a scalar field value for the hash.
func encodeScalar(field string, value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case int:
		return strconv.Itoa(v), nil
	case time.Time:
		return v.UTC().Format(time.RFC3339Nano), nil
	case map[string]string:
		raw, err := json.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("field %q: %w", field, err)
		}
		return string(raw), nil
	default:
		return "", fmt.Errorf("field %q: unexpected value type %T", field, value)
	}
}

// decodeScalar maps one hash field onto the document. Unknown fields are
// skipped so older binaries can read documents written by newer ones.
func decodeScalar(doc *UserProgress, field, raw string) error {
	switch field {
	case FieldCurrentModuleID:
		doc.CurrentModuleID = raw
	case FieldCurrentGalaxyID:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("field %q: %w", field, err)
		}
		doc.CurrentGalaxyID = v
	case FieldXP:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("field %q: %w", field, err)
		}
		doc.XP = v
	case FieldTokensEarned:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("field %q: %w", field, err)
		}
		doc.TokensEarned = v
	case FieldTokensSpent:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("field %q: %w", field, err)
		}
		doc.TokensSpent = v
	case FieldStreakCount:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("field %q: %w", field, err)
		}
		doc.Streak.Count = v
	case FieldStreakLastActive:
		doc.Streak.LastActiveDate = raw
	case FieldEquipped:
		if raw == "" {
			return nil
		}
		if err := json.Unmarshal([]byte(raw), &doc.Equipped); err != nil {
			return fmt.Errorf("field %q: %w", field, err)
		}
	case FieldUpdatedAt:
		t, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return fmt.Errorf("field %q: %w", field, err)
		}
		doc.UpdatedAt = t
	}
	return nil
}

func sortedStrings(in []string) []string {
	out := slices.Clone(in)
	slices.Sort(out)
	return out
}
