package curriculum

import (
	"strings"
	"testing"
)

const validCurriculumJSON = `{
  "version": "1.0.0",
  "galaxies": [
    {
      "id": 1,
      "name": "Alpha",
      "modules": [
        {"id": "a1", "title": "A1", "description": "first", "xp": 10, "tokens": 2},
        {"id": "a2", "title": "A2", "xp": 20, "tokens": 4, "challenge": true}
      ]
    },
    {
      "id": 2,
      "name": "Beta",
      "modules": [
        {"id": "b1", "title": "B1", "xp": 30, "tokens": 6}
      ]
    }
  ]
}`

func TestLoadJSON_Valid(t *testing.T) {
	g, err := LoadJSON([]byte(validCurriculumJSON))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.ModuleCount() != 3 {
		t.Errorf("got %d modules, want 3", g.ModuleCount())
	}

	m, err := g.Module("a2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Ordinal != 1 {
		t.Errorf("got ordinal %d, want 1 (assigned from position)", m.Ordinal)
	}
	if !m.HasChallenge {
		t.Error("a2 should carry a challenge")
	}
	if m.XPReward != 20 || m.TokenReward != 4 {
		t.Errorf("got rewards xp=%d tokens=%d, want xp=20 tokens=4", m.XPReward, m.TokenReward)
	}
}

func TestLoadJSON_SchemaViolation(t *testing.T) {
	// Module missing the required title.
	bad := strings.Replace(validCurriculumJSON, `"title": "B1", `, "", 1)
	_, err := LoadJSON([]byte(bad))
	if err == nil {
		t.Fatal("expected schema validation error, got nil")
	}
	if !strings.Contains(err.Error(), "schema validation failed") {
		t.Errorf("error should mention schema validation, got: %v", err)
	}
}

func TestLoadJSON_UnknownField(t *testing.T) {
	bad := strings.Replace(validCurriculumJSON, `"xp": 30`, `"xp": 30, "bonus": 1`, 1)
	_, err := LoadJSON([]byte(bad))
	if err == nil {
		t.Fatal("expected schema validation error for unknown field, got nil")
	}
}

func TestLoadJSON_VersionTooOld(t *testing.T) {
	old := strings.Replace(validCurriculumJSON, `"version": "1.0.0"`, `"version": "0.9.0"`, 1)
	_, err := LoadJSON([]byte(old))
	if err == nil {
		t.Fatal("expected version error, got nil")
	}
	if !strings.Contains(err.Error(), "older than the minimum") {
		t.Errorf("error should mention the minimum version, got: %v", err)
	}
}

func TestLoadJSON_InvalidSemver(t *testing.T) {
	// Leading zeros pass the schema pattern but are not valid semver.
	bad := strings.Replace(validCurriculumJSON, `"version": "1.0.0"`, `"version": "01.0.0"`, 1)
	_, err := LoadJSON([]byte(bad))
	if err == nil {
		t.Fatal("expected semver error, got nil")
	}
	if !strings.Contains(err.Error(), "not a valid semver") {
		t.Errorf("error should mention semver, got: %v", err)
	}
}

func TestLoadJSON_MalformedJSON(t *testing.T) {
	_, err := LoadJSON([]byte(`{"version": `))
	if err == nil {
		t.Fatal("expected parse error, got nil")
	}
}

func TestDefault_SeedLoads(t *testing.T) {
	g := Default()
	if g == nil {
		t.Fatal("Default returned nil")
	}
	if _, err := g.Module("objects-ownership"); err != nil {
		t.Errorf("seed should contain objects-ownership: %v", err)
	}
}
